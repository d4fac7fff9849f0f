// Package entity defines the wire-level structures exchanged with the remote
// PLM system. These mirror the remote REST dialect verbatim; the flattened,
// caller-facing shapes live in entity/dto.
package entity

// Property is the remote per-attribute representation. DBValues carries the
// raw stored values, UIValues the display formatting. A property can be
// present with an empty DBValues slice, which means "set but empty" as opposed
// to never returned.
type Property struct {
	DBValues []interface{} `json:"dbValues"`
	UIValues []string      `json:"uiValues"`
	Type     string        `json:"type,omitempty"`
}

// PropertyBag maps property names to their values for one remote object.
type PropertyBag map[string]Property

// Object is the remote representation of any workspace object (Item,
// ItemRevision, search hit).
type Object struct {
	UID        string      `json:"uid"`
	Type       string      `json:"type"`
	Properties PropertyBag `json:"properties,omitempty"`
	Revisions  []Object    `json:"revisions,omitempty"`
}

// Credentials is the body of the remote session creation request.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthRequest wraps credentials the way the remote session endpoint expects.
type AuthRequest struct {
	Credentials Credentials `json:"credentials"`
}

// AuthResponse is the remote session creation response. SessionID is the
// opaque remote session identifier all subsequent calls authenticate with.
type AuthResponse struct {
	SessionID string       `json:"sessionId"`
	User      *SessionUser `json:"user,omitempty"`
}

// SessionUser is the remote user metadata returned on login.
type SessionUser struct {
	UID       string `json:"uid"`
	UserID    string `json:"userId"`
	UserName  string `json:"userName"`
	GroupID   string `json:"groupId,omitempty"`
	GroupName string `json:"groupName,omitempty"`
	Role      string `json:"role,omitempty"`
}

// SearchInput is the filter structure of the remote query endpoint.
type SearchInput struct {
	SearchCriteria      string              `json:"searchCriteria"`
	MaxToReturn         int                 `json:"maxToReturn"`
	SearchFilterMap     map[string][]string `json:"searchFilterMap,omitempty"`
	AttributesToInflate []string            `json:"attributesToInflate,omitempty"`
}

// SearchRequest is the remote query request body.
type SearchRequest struct {
	SearchInput SearchInput `json:"searchInput"`
}

// SearchResponse is the remote query response. TotalLoaded is how many
// objects the remote actually returned in this page.
type SearchResponse struct {
	TotalFound  int      `json:"totalFound"`
	TotalLoaded int      `json:"totalLoaded"`
	Objects     []Object `json:"objects"`
}

// SavedQuery is the remote saved-query descriptor. The remote is inconsistent
// about field naming, so both variants are decoded.
type SavedQuery struct {
	UID         string `json:"uid"`
	Name        string `json:"name"`
	QueryName   string `json:"query_name"`
	Description string `json:"description"`
	QueryDesc   string `json:"query_desc"`
	QueryType   string `json:"query_type"`
}

// QueryEntry is one key/value parameter of a saved-query execution.
type QueryEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// SavedQueryRequest is the remote saved-query execution body.
type SavedQueryRequest struct {
	Entries []QueryEntry `json:"entries,omitempty"`
}
