// Package httpapi implements routing paths. Each services in own file.
package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/plm-management-toolkit/gateway/config"
	v1 "github.com/plm-management-toolkit/gateway/internal/controller/httpapi/v1"
	"github.com/plm-management-toolkit/gateway/internal/usecase"
	"github.com/plm-management-toolkit/gateway/pkg/logger"
)

// NewRouter -.
func NewRouter(handler *gin.Engine, l logger.Interface, t usecase.Usecases, cfg *config.Config) {
	// Options
	handler.Use(gin.Logger())
	handler.Use(gin.Recovery())
	handler.Use(RequestID())

	// Public routes
	authRoute := v1.NewAuthRoute(t.Auth, l)
	handler.POST("/api/v1/auth/login", authRoute.Login)

	// K8s probe
	handler.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })

	// Prometheus metrics
	handler.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// version info
	vr := v1.NewVersionRoute(cfg)
	handler.GET("/version", vr.VersionHandler)

	// Protected routes using JWT middleware
	protected := handler.Group("/api", authRoute.JWTAuthMiddleware())

	h := protected.Group("/v1")
	{
		h.POST("/auth/logout", authRoute.Logout)
		h.POST("/auth/refresh", authRoute.Refresh)
		v1.NewItemRoutes(h, t.Items, l)
		v1.NewSearchRoutes(h, t.Search, l)
	}
}
