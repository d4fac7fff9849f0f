package dto

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

// itemIDRegex matches alphanumeric characters, hyphens, and underscores.
var itemIDRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Item is the flattened, caller-facing view of a remote Item. ID is the
// remote UID; optional fields are pointers so "property never returned" stays
// distinguishable from an empty value.
type Item struct {
	ID               string                 `json:"id" example:"SR9ijGn4phPDfA"`
	ItemID           string                 `json:"itemId" example:"000123"`
	Name             string                 `json:"name" example:"Bracket"`
	Description      *string                `json:"description,omitempty"`
	Type             string                 `json:"type" example:"Item"`
	Revisions        []ItemRevision         `json:"revisions,omitempty"`
	Properties       map[string]interface{} `json:"properties,omitempty"`
	CreatedDate      *time.Time             `json:"createdDate,omitempty"`
	LastModifiedDate *time.Time             `json:"lastModifiedDate,omitempty"`
	OwningUser       *string                `json:"owningUser,omitempty"`
}

// ItemRevision is the flattened view of a remote ItemRevision.
type ItemRevision struct {
	ID               string                 `json:"id"`
	RevisionID       string                 `json:"revisionId" example:"A"`
	Name             string                 `json:"name"`
	Description      *string                `json:"description,omitempty"`
	Properties       map[string]interface{} `json:"properties,omitempty"`
	CreatedDate      *time.Time             `json:"createdDate,omitempty"`
	LastModifiedDate *time.Time             `json:"lastModifiedDate,omitempty"`
}

// CreateItemRequest -.
type CreateItemRequest struct {
	ItemID      string                 `json:"itemId" binding:"required,itemid" example:"000123"`
	Name        string                 `json:"name" binding:"required" example:"Bracket"`
	Description string                 `json:"description,omitempty"`
	Type        string                 `json:"type,omitempty" example:"Item"` // defaults to "Item"
	Properties  map[string]interface{} `json:"properties,omitempty"`
}

// UpdateItemRequest carries a partial update. Only non-empty fields are sent
// to the remote; an update with nothing set is rejected before any remote
// call.
type UpdateItemRequest struct {
	Name        string                 `json:"name,omitempty"`
	Description string                 `json:"description,omitempty"`
	Properties  map[string]interface{} `json:"properties,omitempty"`
}

// IsEmpty reports whether the update carries no fields at all.
func (r UpdateItemRequest) IsEmpty() bool {
	return r.Name == "" && r.Description == "" && len(r.Properties) == 0
}

// ValidateItemID validates that a field contains only alphanumeric characters, hyphens, and underscores.
func ValidateItemID(fl validator.FieldLevel) bool {
	return itemIDRegex.MatchString(fl.Field().String())
}

// ValidItemID reports whether s is a well-formed item id. Used by the service
// layer for ids that arrive outside of body binding.
func ValidItemID(s string) bool {
	return itemIDRegex.MatchString(s)
}
