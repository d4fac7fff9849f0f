// Package search applies the business rules for search and saved-query
// execution.
package search

import (
	"context"

	"github.com/plm-management-toolkit/gateway/internal/cache"
	dto "github.com/plm-management-toolkit/gateway/internal/entity/dto/v1"
	"github.com/plm-management-toolkit/gateway/internal/repository/teamcenter"
	"github.com/plm-management-toolkit/gateway/pkg/gatewayerrors"
	"github.com/plm-management-toolkit/gateway/pkg/logger"
)

const (
	// MaxResultsLimit caps every search before dispatch; callers asking for
	// more are clamped, not rejected.
	MaxResultsLimit = 1000

	// DefaultMaxResults applies when the caller leaves the bound unset.
	DefaultMaxResults = 50
)

// Teamcenter builds a search repository bound to the caller's remote session.
type Teamcenter interface {
	SetupSearchRepository(remoteSession string) teamcenter.Search
}

// UseCase -.
type UseCase struct {
	tc    Teamcenter
	cache *cache.Cache
	log   logger.Interface
}

// New -.
func New(tc Teamcenter, c *cache.Cache, log logger.Interface) *UseCase {
	return &UseCase{tc: tc, cache: c, log: log}
}

var (
	ErrSearchUseCase = gatewayerrors.New("SearchUseCase")
	ErrEmptyQuery    = dto.NotValidError{Console: gatewayerrors.NewWithMessage("SearchUseCase", "Search query is required.")}
	ErrEmptyType     = dto.NotValidError{Console: gatewayerrors.NewWithMessage("SearchUseCase", "Object type is required.")}
	ErrEmptyItemID   = dto.NotValidError{Console: gatewayerrors.NewWithMessage("SearchUseCase", "Item ID is required.")}
	ErrEmptyName     = dto.NotValidError{Console: gatewayerrors.NewWithMessage("SearchUseCase", "Saved query name is required.")}
)

// Execute runs a search. The max-results bound is defaulted and clamped here,
// so the dispatched remote payload always carries the effective value.
func (uc *UseCase) Execute(ctx context.Context, remoteSession string, query dto.SearchQuery) (*dto.SearchResult, error) {
	if query.Query == "" {
		return nil, ErrEmptyQuery
	}

	query.MaxResults = uc.boundMaxResults(query.MaxResults)

	repo := uc.tc.SetupSearchRepository(remoteSession)

	result, err := repo.Execute(ctx, query)
	if err != nil {
		return nil, err
	}

	uc.log.Info("search - query %q found %d", query.Query, result.TotalFound)

	return result, nil
}

// ByType searches for objects of a given type.
func (uc *UseCase) ByType(ctx context.Context, remoteSession, objectType string, maxResults int) (*dto.SearchResult, error) {
	if objectType == "" {
		return nil, ErrEmptyType
	}

	repo := uc.tc.SetupSearchRepository(remoteSession)

	return repo.ByType(ctx, objectType, uc.boundMaxResults(maxResults))
}

// ByItemID searches items by item id, wildcards included.
func (uc *UseCase) ByItemID(ctx context.Context, remoteSession, itemID string) (*dto.SearchResult, error) {
	if itemID == "" {
		return nil, ErrEmptyItemID
	}

	repo := uc.tc.SetupSearchRepository(remoteSession)

	return repo.ByItemID(ctx, itemID)
}

// SavedQueries lists the saved queries available on the remote system. The
// catalog changes rarely, so it is cached per session for a short TTL.
func (uc *UseCase) SavedQueries(ctx context.Context, remoteSession string) ([]dto.SavedQuery, error) {
	key := cache.MakeSavedQueriesKey(remoteSession)
	if cached, ok := uc.cache.Get(key); ok {
		if queries, ok := cached.([]dto.SavedQuery); ok {
			return queries, nil
		}
	}

	repo := uc.tc.SetupSearchRepository(remoteSession)

	queries, err := repo.SavedQueries(ctx)
	if err != nil {
		return nil, err
	}

	uc.cache.Set(key, queries)

	return queries, nil
}

// ExecuteSavedQuery runs a saved query by name with optional parameters.
func (uc *UseCase) ExecuteSavedQuery(ctx context.Context, remoteSession, name string, entries map[string]string) (*dto.SearchResult, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	repo := uc.tc.SetupSearchRepository(remoteSession)

	result, err := repo.ExecuteSavedQuery(ctx, name, entries)
	if err != nil {
		return nil, err
	}

	uc.log.Info("search - saved query %q found %d", name, result.TotalFound)

	return result, nil
}

func (uc *UseCase) boundMaxResults(requested int) int {
	if requested <= 0 {
		return DefaultMaxResults
	}

	if requested > MaxResultsLimit {
		uc.log.Warn("search - max results clamped from %d to %d", requested, MaxResultsLimit)

		return MaxResultsLimit
	}

	return requested
}
