package handlers

import (
	"net/http"

	"auth_backend/internal/service"

	"github.com/gin-gonic/gin"
)

type forgotPasswordInput struct {
	Email string `json:"email" binding:"required" example:"ana@x.com"`
}

type verifyCodeInput struct {
	Email string `json:"email" binding:"required" example:"ana@x.com"`
	Code  string `json:"code" binding:"required" example:"123456"`
}

// @Summary      Send a reset code
// @Description  Replaces any previous code for the email and mails a new 6-digit one.
// @Tags         reset
// @Accept       json
// @Produce      json
// @Param        input  body      forgotPasswordInput  true  "Account email"
// @Success      200    {object}  successResponse
// @Failure      400    {object}  errorResponse
// @Failure      502    {object}  errorResponse
// @Failure      500    {object}  errorResponse
// @Router       /forgot-password [post]
func (h *Handler) forgotPassword(c *gin.Context) {
	var input forgotPasswordInput
	if ok := h.bindJSONOr(c, &input, service.ErrEmailRequired); !ok {
		return
	}

	if _, err := h.services.Issue(c.Request.Context(), input.Email); err != nil {
		h.respondError(c, "reset_code_issue_failed", err, "email", input.Email)
		return
	}

	if h.log != nil {
		h.log.Infow("reset_code_sent", "email", input.Email)
	}
	c.JSON(http.StatusOK, successResponse{Success: true})
}

// @Summary      Check a reset code
// @Description  The code stays valid after a successful check.
// @Tags         reset
// @Accept       json
// @Produce      json
// @Param        input  body      verifyCodeInput  true  "Email and code"
// @Success      200    {object}  successResponse
// @Failure      400    {object}  errorResponse
// @Failure      500    {object}  errorResponse
// @Router       /verify-code [post]
func (h *Handler) verifyCode(c *gin.Context) {
	var input verifyCodeInput
	if ok := h.bindJSONOr(c, &input, service.ErrInvalidCode); !ok {
		return
	}

	valid, err := h.services.Verify(c.Request.Context(), input.Email, input.Code)
	if err != nil {
		h.respondError(c, "reset_code_verify_failed", err, "email", input.Email)
		return
	}
	if !valid {
		h.respondError(c, "reset_code_rejected", service.ErrInvalidCode, "email", input.Email)
		return
	}

	c.JSON(http.StatusOK, successResponse{Success: true})
}
