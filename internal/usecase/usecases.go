// Package usecase wires the domain use cases to their remote repositories.
package usecase

import (
	"github.com/plm-management-toolkit/gateway/config"
	"github.com/plm-management-toolkit/gateway/internal/cache"
	"github.com/plm-management-toolkit/gateway/internal/repository/teamcenter"
	"github.com/plm-management-toolkit/gateway/internal/usecase/auth"
	"github.com/plm-management-toolkit/gateway/internal/usecase/items"
	"github.com/plm-management-toolkit/gateway/internal/usecase/search"
	"github.com/plm-management-toolkit/gateway/pkg/logger"
)

// Usecases -.
type Usecases struct {
	Auth   *auth.UseCase
	Items  *items.UseCase
	Search *search.UseCase
}

// NewUseCases -.
func NewUseCases(cfg *config.Config, log logger.Interface) *Usecases {
	factory := teamcenter.NewFactory(cfg, log)
	store := cache.NewFromConfig(cfg)

	return &Usecases{
		Auth:   auth.New(factory, log, []byte(cfg.Auth.JWTKey), cfg.Auth.JWTExpiration),
		Items:  items.New(factory, log),
		Search: search.New(factory, store, log),
	}
}
