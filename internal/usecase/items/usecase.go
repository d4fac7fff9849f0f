// Package items applies the business rules for item operations and wraps
// repository errors with domain context.
package items

import (
	"context"
	"errors"

	dto "github.com/plm-management-toolkit/gateway/internal/entity/dto/v1"
	"github.com/plm-management-toolkit/gateway/internal/repository/teamcenter"
	"github.com/plm-management-toolkit/gateway/pkg/gatewayerrors"
	"github.com/plm-management-toolkit/gateway/pkg/logger"
)

// Teamcenter builds an item repository bound to the caller's remote session.
type Teamcenter interface {
	SetupItemRepository(remoteSession string) teamcenter.Items
}

// UseCase -.
type UseCase struct {
	tc  Teamcenter
	log logger.Interface
}

// New -.
func New(tc Teamcenter, log logger.Interface) *UseCase {
	return &UseCase{tc: tc, log: log}
}

// NotFoundError is the service-level "item does not exist", distinct from the
// remote's own 404 kind: it is also raised when a pre-check read fails before
// an update or delete.
type NotFoundError struct {
	Console gatewayerrors.GatewayError
}

var (
	ErrItemsUseCase = gatewayerrors.New("ItemsUseCase")
	ErrNotFound     = NotFoundError{Console: gatewayerrors.NewWithMessage("ItemsUseCase", "Item not found.")}
	ErrEmptyItemID  = dto.NotValidError{Console: gatewayerrors.NewWithMessage("ItemsUseCase", "Item ID is required.")}
	ErrEmptyUID     = dto.NotValidError{Console: gatewayerrors.NewWithMessage("ItemsUseCase", "UID is required.")}
	ErrEmptyUpdate  = dto.NotValidError{Console: gatewayerrors.NewWithMessage("ItemsUseCase", "Nothing to update.")}
	ErrBadCreate    = dto.NotValidError{Console: gatewayerrors.NewWithMessage("ItemsUseCase", "Item ID and name are required; the id may only contain letters, digits, hyphens and underscores.")}
)

func (e NotFoundError) Error() string { return e.Console.Error() }

func (e NotFoundError) Wrap(call, function string, err error) NotFoundError {
	e.Console = e.Console.Wrap(call, function, err)

	return e
}

// Get fetches an item by item id.
func (uc *UseCase) Get(ctx context.Context, remoteSession, itemID string) (*dto.Item, error) {
	if itemID == "" {
		return nil, ErrEmptyItemID
	}

	repo := uc.tc.SetupItemRepository(remoteSession)

	item, err := repo.GetByItemID(ctx, itemID)
	if err != nil {
		var nfErr teamcenter.NotFoundError
		if errors.As(err, &nfErr) {
			return nil, ErrNotFound.Wrap("Get", "repo.GetByItemID", err)
		}

		return nil, err
	}

	return item, nil
}

// GetByUID fetches an item by its remote UID.
func (uc *UseCase) GetByUID(ctx context.Context, remoteSession, uid string) (*dto.Item, error) {
	if uid == "" {
		return nil, ErrEmptyUID
	}

	repo := uc.tc.SetupItemRepository(remoteSession)

	item, err := repo.GetByUID(ctx, uid)
	if err != nil {
		var nfErr teamcenter.NotFoundError
		if errors.As(err, &nfErr) {
			return nil, ErrNotFound.Wrap("GetByUID", "repo.GetByUID", err)
		}

		return nil, err
	}

	return item, nil
}

// Create validates the request and creates a new item. Validation also runs
// here, not just at binding, because the rules are business rules rather than
// transport concerns.
func (uc *UseCase) Create(ctx context.Context, remoteSession string, req dto.CreateItemRequest) (*dto.Item, error) {
	if req.ItemID == "" || req.Name == "" || !dto.ValidItemID(req.ItemID) {
		return nil, ErrBadCreate
	}

	repo := uc.tc.SetupItemRepository(remoteSession)

	item, err := repo.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	uc.log.Info("items - created %s (uid %s)", item.ItemID, item.ID)

	return item, nil
}

// Update applies a partial update. An empty update fails before any remote
// call; a missing item surfaces as the domain not-found kind via the
// pre-check read.
func (uc *UseCase) Update(ctx context.Context, remoteSession, itemID string, req dto.UpdateItemRequest) (*dto.Item, error) {
	if itemID == "" {
		return nil, ErrEmptyItemID
	}

	if req.IsEmpty() {
		return nil, ErrEmptyUpdate
	}

	if _, err := uc.Get(ctx, remoteSession, itemID); err != nil {
		return nil, err
	}

	repo := uc.tc.SetupItemRepository(remoteSession)

	item, err := repo.Update(ctx, itemID, req)
	if err != nil {
		return nil, err
	}

	uc.log.Info("items - updated %s", itemID)

	return item, nil
}

// Delete removes an item after verifying it exists.
func (uc *UseCase) Delete(ctx context.Context, remoteSession, itemID string) error {
	if itemID == "" {
		return ErrEmptyItemID
	}

	if _, err := uc.Get(ctx, remoteSession, itemID); err != nil {
		return err
	}

	repo := uc.tc.SetupItemRepository(remoteSession)

	if err := repo.Delete(ctx, itemID); err != nil {
		return err
	}

	uc.log.Info("items - deleted %s", itemID)

	return nil
}

// GetRevisions lists all revisions of an item.
func (uc *UseCase) GetRevisions(ctx context.Context, remoteSession, itemID string) ([]dto.ItemRevision, error) {
	if itemID == "" {
		return nil, ErrEmptyItemID
	}

	repo := uc.tc.SetupItemRepository(remoteSession)

	revisions, err := repo.GetRevisions(ctx, itemID)
	if err != nil {
		var nfErr teamcenter.NotFoundError
		if errors.As(err, &nfErr) {
			return nil, ErrNotFound.Wrap("GetRevisions", "repo.GetRevisions", err)
		}

		return nil, err
	}

	return revisions, nil
}
