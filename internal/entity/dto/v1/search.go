package dto

// SearchQuery are the caller-facing search criteria.
type SearchQuery struct {
	Query      string   `json:"query" binding:"required" example:"item_id:000*"`
	Type       string   `json:"type,omitempty" example:"Item"`
	MaxResults int      `json:"maxResults,omitempty" example:"50"`
	Properties []string `json:"properties,omitempty"`
}

// SearchResult is a capped page of search hits. HasMore is advisory: it is
// derived from the remote's totalFound/totalLoaded counters, whose pagination
// semantics are opaque beyond this flag.
type SearchResult struct {
	TotalFound int                `json:"totalFound" example:"128"`
	Items      []SearchResultItem `json:"items"`
	HasMore    bool               `json:"hasMore" example:"true"`
}

// SearchResultItem is one search hit with its scalar property values.
type SearchResultItem struct {
	UID        string                 `json:"uid"`
	Type       string                 `json:"type"`
	Properties map[string]interface{} `json:"properties"`
}

// SavedQuery describes a stored query on the remote system.
type SavedQuery struct {
	UID         string `json:"uid"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	QueryType   string `json:"queryType" example:"Item"`
}

// SavedQueryExecution carries the parameters for executing a saved query.
type SavedQueryExecution struct {
	Entries map[string]string `json:"entries,omitempty"`
}
