package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/plm-management-toolkit/gateway/config"
)

// VersionRoute reports the running build.
type VersionRoute struct {
	cfg *config.Config
}

// NewVersionRoute -.
func NewVersionRoute(cfg *config.Config) *VersionRoute {
	return &VersionRoute{cfg: cfg}
}

// VersionHandler returns the application name and version.
func (r *VersionRoute) VersionHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    r.cfg.App.Name,
		"version": r.cfg.App.Version,
	})
}
