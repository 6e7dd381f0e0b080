package handlers

import (
	"auth_backend/internal/logger"
	"auth_backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "auth_backend/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Options holds the HTTP-only settings.
type Options struct {
	// StaticDir is served for unmatched GET requests. Empty disables it.
	StaticDir string
	// AllowOrigins lists CORS origins; "*" allows any. Empty disables CORS.
	AllowOrigins []string
}

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	opts     Options
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, opts Options) *Handler {
	return &Handler{services: services, log: log, opts: opts}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestMetrics, h.requestLogger)
	if mw := h.corsMiddleware(); mw != nil {
		router.Use(mw)
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", h.health)

	h.registerAuthRoutes(router)
	h.registerResetRoutes(router)

	router.NoRoute(h.staticOrNotFound)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	r.POST("/register", h.register)
	r.POST("/login", h.login)
}

func (h *Handler) registerResetRoutes(r *gin.Engine) {
	r.POST("/forgot-password", h.forgotPassword)
	r.POST("/verify-code", h.verifyCode)
}
