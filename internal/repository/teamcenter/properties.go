package teamcenter

import (
	"time"

	"github.com/plm-management-toolkit/gateway/internal/entity"
	dto "github.com/plm-management-toolkit/gateway/internal/entity/dto/v1"
)

// Fixed remote property names used by the create/update payload mapping.
const (
	propItemID       = "item_id"
	propItemRevID    = "item_revision_id"
	propObjectName   = "object_name"
	propObjectDesc   = "object_desc"
	propItemType     = "item_type"
	propCreationDate = "creation_date"
	propLastModDate  = "last_mod_date"
	propOwningUser   = "owning_user"

	defaultItemType = "Item"
)

// dateLayouts are tried in order when extracting date properties. The remote
// emits ISO-8601 but older deployments drop the zone offset.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ExtractScalar returns the first stored value for name. ok is false when the
// bag lacks the key or the key's stored-value sequence is empty.
func ExtractScalar(bag entity.PropertyBag, name string) (interface{}, bool) {
	prop, exists := bag[name]
	if !exists || len(prop.DBValues) == 0 {
		return nil, false
	}

	return prop.DBValues[0], true
}

// ExtractString is ExtractScalar narrowed to string-valued properties.
func ExtractString(bag entity.PropertyBag, name string) (string, bool) {
	value, ok := ExtractScalar(bag, name)
	if !ok {
		return "", false
	}

	s, isString := value.(string)
	if !isString {
		return "", false
	}

	return s, true
}

// ExtractAllScalars collapses every property to its first stored value. Keys
// with an empty stored-value sequence map to nil rather than being dropped,
// so callers can distinguish "present but empty" from "never returned".
func ExtractAllScalars(bag entity.PropertyBag) map[string]interface{} {
	if len(bag) == 0 {
		return map[string]interface{}{}
	}

	flat := make(map[string]interface{}, len(bag))

	for name, prop := range bag {
		if len(prop.DBValues) > 0 {
			flat[name] = prop.DBValues[0]
		} else {
			flat[name] = nil
		}
	}

	return flat
}

// ExtractDate extracts a date property. Absent properties and unparseable
// date strings both yield nil; the remote's date formatting is not worth
// failing a read over.
func ExtractDate(bag entity.PropertyBag, name string) *time.Time {
	value, ok := ExtractString(bag, name)
	if !ok {
		return nil
	}

	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return &ts
		}
	}

	return nil
}

// CreatePayload maps the fixed domain fields to their remote property names
// and splices any free-form properties in afterward. A free-form key that
// collides with a fixed name wins; callers can intentionally override
// item_type this way.
func CreatePayload(req dto.CreateItemRequest) map[string]interface{} {
	itemType := req.Type
	if itemType == "" {
		itemType = defaultItemType
	}

	payload := map[string]interface{}{
		propItemID:     req.ItemID,
		propObjectName: req.Name,
		propObjectDesc: req.Description,
		propItemType:   itemType,
	}

	for key, value := range req.Properties {
		payload[key] = value
	}

	return payload
}

// UpdatePayload emits only the fields present in the partial update. An
// update with zero resulting keys is the caller's validation problem, not the
// codec's.
func UpdatePayload(req dto.UpdateItemRequest) map[string]interface{} {
	payload := map[string]interface{}{}

	if req.Name != "" {
		payload[propObjectName] = req.Name
	}

	if req.Description != "" {
		payload[propObjectDesc] = req.Description
	}

	for key, value := range req.Properties {
		payload[key] = value
	}

	return payload
}

// itemFromObject flattens a remote Item object into the caller-facing shape.
func itemFromObject(obj *entity.Object) *dto.Item {
	itemID, _ := ExtractString(obj.Properties, propItemID)
	name, _ := ExtractString(obj.Properties, propObjectName)

	item := &dto.Item{
		ID:               obj.UID,
		ItemID:           itemID,
		Name:             name,
		Description:      extractOptionalString(obj.Properties, propObjectDesc),
		Type:             obj.Type,
		Properties:       ExtractAllScalars(obj.Properties),
		CreatedDate:      ExtractDate(obj.Properties, propCreationDate),
		LastModifiedDate: ExtractDate(obj.Properties, propLastModDate),
		OwningUser:       extractOptionalString(obj.Properties, propOwningUser),
	}

	if len(obj.Revisions) > 0 {
		item.Revisions = make([]dto.ItemRevision, len(obj.Revisions))
		for i := range obj.Revisions {
			item.Revisions[i] = revisionFromObject(&obj.Revisions[i])
		}
	}

	return item
}

// revisionFromObject flattens a remote ItemRevision object.
func revisionFromObject(obj *entity.Object) dto.ItemRevision {
	revisionID, _ := ExtractString(obj.Properties, propItemRevID)
	name, _ := ExtractString(obj.Properties, propObjectName)

	return dto.ItemRevision{
		ID:               obj.UID,
		RevisionID:       revisionID,
		Name:             name,
		Description:      extractOptionalString(obj.Properties, propObjectDesc),
		Properties:       ExtractAllScalars(obj.Properties),
		CreatedDate:      ExtractDate(obj.Properties, propCreationDate),
		LastModifiedDate: ExtractDate(obj.Properties, propLastModDate),
	}
}

// searchItemFromObject flattens one search hit.
func searchItemFromObject(obj *entity.Object) dto.SearchResultItem {
	return dto.SearchResultItem{
		UID:        obj.UID,
		Type:       obj.Type,
		Properties: ExtractAllScalars(obj.Properties),
	}
}

func extractOptionalString(bag entity.PropertyBag, name string) *string {
	value, ok := ExtractString(bag, name)
	if !ok {
		return nil
	}

	return &value
}
