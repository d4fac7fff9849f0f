package teamcenter

import (
	"context"
	"net/url"
	"sort"

	"github.com/plm-management-toolkit/gateway/internal/entity"
	dto "github.com/plm-management-toolkit/gateway/internal/entity/dto/v1"
)

// typeFilterKey is the remote filter-map key for object-type filtering.
const typeFilterKey = "WorkspaceObject.object_type"

// Search is the query-facing surface of the remote system.
type Search interface {
	Execute(ctx context.Context, query dto.SearchQuery) (*dto.SearchResult, error)
	ByType(ctx context.Context, objectType string, maxResults int) (*dto.SearchResult, error)
	ByItemID(ctx context.Context, itemID string) (*dto.SearchResult, error)
	SavedQueries(ctx context.Context) ([]dto.SavedQuery, error)
	ExecuteSavedQuery(ctx context.Context, name string, entries map[string]string) (*dto.SearchResult, error)
}

// SearchRepository implements search and saved-query execution against the
// fixed remote endpoints.
type SearchRepository struct {
	client *Client
}

var _ Search = (*SearchRepository)(nil)

// NewSearchRepository -.
func NewSearchRepository(client *Client) *SearchRepository {
	return &SearchRepository{client: client}
}

// Execute runs a search with the given criteria.
func (r *SearchRepository) Execute(ctx context.Context, query dto.SearchQuery) (*dto.SearchResult, error) {
	var resp entity.SearchResponse

	if err := r.client.Post(ctx, r.client.Endpoints().Search, buildSearchRequest(query), &resp); err != nil {
		return nil, err
	}

	return searchResultFromResponse(&resp), nil
}

// ByType searches for objects of a given type.
func (r *SearchRepository) ByType(ctx context.Context, objectType string, maxResults int) (*dto.SearchResult, error) {
	return r.Execute(ctx, dto.SearchQuery{
		Query:      "type:" + objectType,
		Type:       objectType,
		MaxResults: maxResults,
	})
}

// ByItemID searches items by item id, wildcards included (e.g. "000*").
func (r *SearchRepository) ByItemID(ctx context.Context, itemID string) (*dto.SearchResult, error) {
	return r.Execute(ctx, dto.SearchQuery{
		Query: "item_id:" + itemID,
		Type:  defaultItemType,
	})
}

// SavedQueries lists the saved queries available on the remote system.
func (r *SearchRepository) SavedQueries(ctx context.Context) ([]dto.SavedQuery, error) {
	var raw []entity.SavedQuery

	if err := r.client.Get(ctx, r.client.Endpoints().SavedQueries, &raw); err != nil {
		return nil, err
	}

	queries := make([]dto.SavedQuery, len(raw))
	for i, sq := range raw {
		queries[i] = savedQueryFromWire(sq)
	}

	return queries, nil
}

// ExecuteSavedQuery runs a saved query by name with optional parameters.
func (r *SearchRepository) ExecuteSavedQuery(ctx context.Context, name string, entries map[string]string) (*dto.SearchResult, error) {
	var resp entity.SearchResponse

	path := r.client.Endpoints().SavedQueries + "/" + url.PathEscape(name)
	if err := r.client.Post(ctx, path, buildSavedQueryRequest(entries), &resp); err != nil {
		return nil, err
	}

	return searchResultFromResponse(&resp), nil
}

// buildSearchRequest maps the caller's criteria to the remote filter
// structure.
func buildSearchRequest(query dto.SearchQuery) entity.SearchRequest {
	input := entity.SearchInput{
		SearchCriteria: query.Query,
		MaxToReturn:    query.MaxResults,
	}

	if query.Type != "" {
		input.SearchFilterMap = map[string][]string{
			typeFilterKey: {query.Type},
		}
	}

	if len(query.Properties) > 0 {
		input.AttributesToInflate = query.Properties
	}

	return entity.SearchRequest{SearchInput: input}
}

// buildSavedQueryRequest converts the entries map to the remote's ordered
// key/value list. Keys are sorted so the outbound body is deterministic.
func buildSavedQueryRequest(entries map[string]string) entity.SavedQueryRequest {
	if len(entries) == 0 {
		return entity.SavedQueryRequest{}
	}

	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	wire := make([]entity.QueryEntry, len(keys))
	for i, key := range keys {
		wire[i] = entity.QueryEntry{Key: key, Value: entries[key]}
	}

	return entity.SavedQueryRequest{Entries: wire}
}

// searchResultFromResponse flattens the remote response. hasMore is derived
// from the remote counters and is advisory only.
func searchResultFromResponse(resp *entity.SearchResponse) *dto.SearchResult {
	items := make([]dto.SearchResultItem, len(resp.Objects))
	for i := range resp.Objects {
		items[i] = searchItemFromObject(&resp.Objects[i])
	}

	return &dto.SearchResult{
		TotalFound: resp.TotalFound,
		Items:      items,
		HasMore:    resp.TotalFound > resp.TotalLoaded,
	}
}

// savedQueryFromWire normalizes the remote's inconsistent saved-query field
// naming.
func savedQueryFromWire(sq entity.SavedQuery) dto.SavedQuery {
	name := sq.Name
	if name == "" {
		name = sq.QueryName
	}

	description := sq.Description
	if description == "" {
		description = sq.QueryDesc
	}

	queryType := sq.QueryType
	if queryType == "" {
		queryType = "Unknown"
	}

	return dto.SavedQuery{
		UID:         sq.UID,
		Name:        name,
		Description: description,
		QueryType:   queryType,
	}
}
