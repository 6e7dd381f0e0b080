package handlers

import (
	"errors"
	"net/http"

	"auth_backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type registerInput struct {
	Username        string `json:"username" binding:"required" example:"ana"`
	Email           string `json:"email" binding:"required" example:"ana@x.com"`
	Phone           string `json:"phone" binding:"required" example:"5511999999999"`
	Password        string `json:"password" binding:"required" example:"s3cret"`
	ConfirmPassword string `json:"confirmPassword" binding:"required" example:"s3cret"`
}

type loginInput struct {
	Email    string `json:"email" binding:"required" example:"ana@x.com"`
	Password string `json:"password" binding:"required" example:"s3cret"`
}

type successResponse struct {
	Success bool `json:"success" example:"true"`
}

type loginResponse struct {
	Success  bool   `json:"success" example:"true"`
	Username string `json:"username" example:"ana"`
}

type errorResponse struct {
	Error string `json:"error" example:"fill all fields"`
}

// bindJSONOr tries to bind the request body into dst and, on failure, writes
// 400 with the endpoint's own message. Returns false if the request was handled.
func (h *Handler) bindJSONOr(c *gin.Context, dst any, onFail *service.Error) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return true
	}

	if h.log != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			missing := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				missing = append(missing, fe.Field())
			}
			h.log.Infow("request_missing_fields", "path", c.FullPath(), "fields", missing)
		} else {
			h.log.Infow("request_bad_body", "path", c.FullPath(), "err", err)
		}
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": onFail.Message})
	return false
}

// @Summary      Register a user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input  body      registerInput  true  "Registration form"
// @Success      200    {object}  successResponse
// @Failure      400    {object}  errorResponse
// @Failure      500    {object}  errorResponse
// @Router       /register [post]
func (h *Handler) register(c *gin.Context) {
	var input registerInput
	if ok := h.bindJSONOr(c, &input, service.ErrMissingFields); !ok {
		return
	}

	err := h.services.Register(c.Request.Context(), service.RegisterParams{
		Username:        input.Username,
		Email:           input.Email,
		Phone:           input.Phone,
		Password:        input.Password,
		ConfirmPassword: input.ConfirmPassword,
	})
	if err != nil {
		h.respondError(c, "auth_register_failed", err, "email", input.Email)
		return
	}

	if h.log != nil {
		h.log.Infow("auth_registered", "email", input.Email)
	}
	c.JSON(http.StatusOK, successResponse{Success: true})
}

// @Summary      Log in
// @Description  Checks the credential. No session or token is issued.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input  body      loginInput  true  "Credentials"
// @Success      200    {object}  loginResponse
// @Failure      400    {object}  errorResponse
// @Failure      500    {object}  errorResponse
// @Router       /login [post]
func (h *Handler) login(c *gin.Context) {
	var input loginInput
	if ok := h.bindJSONOr(c, &input, service.ErrMissingFields); !ok {
		return
	}

	username, err := h.services.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		h.respondError(c, "auth_login_failed", err, "email", input.Email)
		return
	}

	c.JSON(http.StatusOK, loginResponse{Success: true, Username: username})
}
