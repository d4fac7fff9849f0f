package teamcenter

import (
	"context"
	"net/url"

	"github.com/plm-management-toolkit/gateway/internal/entity"
	dto "github.com/plm-management-toolkit/gateway/internal/entity/dto/v1"
)

// Items is the item-facing surface of the remote system. Implemented by
// ItemRepository; usecases depend on this interface so tests can swap it out.
type Items interface {
	GetByItemID(ctx context.Context, itemID string) (*dto.Item, error)
	GetByUID(ctx context.Context, uid string) (*dto.Item, error)
	Create(ctx context.Context, req dto.CreateItemRequest) (*dto.Item, error)
	Update(ctx context.Context, itemID string, req dto.UpdateItemRequest) (*dto.Item, error)
	Delete(ctx context.Context, itemID string) error
	GetRevisions(ctx context.Context, itemID string) ([]dto.ItemRevision, error)
}

// ItemRepository implements item CRUD against the fixed remote endpoints.
type ItemRepository struct {
	client *Client
}

var _ Items = (*ItemRepository)(nil)

// NewItemRepository -.
func NewItemRepository(client *Client) *ItemRepository {
	return &ItemRepository{client: client}
}

// GetByItemID fetches an item by its item id (e.g. "000123").
func (r *ItemRepository) GetByItemID(ctx context.Context, itemID string) (*dto.Item, error) {
	var obj entity.Object

	path := r.client.Endpoints().Items + "/" + url.PathEscape(itemID)
	if err := r.client.Get(ctx, path, &obj); err != nil {
		return nil, err
	}

	return itemFromObject(&obj), nil
}

// GetByUID fetches an item by its remote UID.
func (r *ItemRepository) GetByUID(ctx context.Context, uid string) (*dto.Item, error) {
	var obj entity.Object

	path := r.client.Endpoints().Items + "?uid=" + url.QueryEscape(uid)
	if err := r.client.Get(ctx, path, &obj); err != nil {
		return nil, err
	}

	return itemFromObject(&obj), nil
}

// Create creates a new item from the property payload built by the codec.
func (r *ItemRepository) Create(ctx context.Context, req dto.CreateItemRequest) (*dto.Item, error) {
	var obj entity.Object

	if err := r.client.Post(ctx, r.client.Endpoints().Items, CreatePayload(req), &obj); err != nil {
		return nil, err
	}

	return itemFromObject(&obj), nil
}

// Update applies a partial update to an existing item.
func (r *ItemRepository) Update(ctx context.Context, itemID string, req dto.UpdateItemRequest) (*dto.Item, error) {
	var obj entity.Object

	path := r.client.Endpoints().Items + "/" + url.PathEscape(itemID)
	if err := r.client.Put(ctx, path, UpdatePayload(req), &obj); err != nil {
		return nil, err
	}

	return itemFromObject(&obj), nil
}

// Delete removes an item.
func (r *ItemRepository) Delete(ctx context.Context, itemID string) error {
	path := r.client.Endpoints().Items + "/" + url.PathEscape(itemID)

	if err := r.client.Delete(ctx, path); err != nil {
		return err
	}

	r.client.log.Info("teamcenter - item %s deleted", itemID)

	return nil
}

// GetRevisions fetches all revisions of an item.
func (r *ItemRepository) GetRevisions(ctx context.Context, itemID string) ([]dto.ItemRevision, error) {
	var objs []entity.Object

	path := r.client.Endpoints().Items + "/" + url.PathEscape(itemID) + "/revisions"
	if err := r.client.Get(ctx, path, &objs); err != nil {
		return nil, err
	}

	revisions := make([]dto.ItemRevision, len(objs))
	for i := range objs {
		revisions[i] = revisionFromObject(&objs[i])
	}

	return revisions, nil
}
