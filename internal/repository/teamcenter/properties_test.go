package teamcenter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plm-management-toolkit/gateway/internal/entity"
	dto "github.com/plm-management-toolkit/gateway/internal/entity/dto/v1"
)

func bag(values map[string][]interface{}) entity.PropertyBag {
	b := entity.PropertyBag{}
	for name, dbValues := range values {
		b[name] = entity.Property{DBValues: dbValues}
	}

	return b
}

func TestExtractScalar(t *testing.T) {
	t.Parallel()

	b := bag(map[string][]interface{}{
		"item_id":     {"000123"},
		"object_name": {"Bracket", "ignored second value"},
		"empty_prop":  {},
	})

	value, ok := ExtractScalar(b, "item_id")
	assert.True(t, ok)
	assert.Equal(t, "000123", value)

	value, ok = ExtractScalar(b, "object_name")
	assert.True(t, ok)
	assert.Equal(t, "Bracket", value)

	// Present with an empty value sequence reads as absent for scalar access.
	_, ok = ExtractScalar(b, "empty_prop")
	assert.False(t, ok)

	_, ok = ExtractScalar(b, "never_returned")
	assert.False(t, ok)
}

func TestExtractAllScalars(t *testing.T) {
	t.Parallel()

	b := bag(map[string][]interface{}{
		"item_id":    {"000123"},
		"empty_prop": {},
	})

	flat := ExtractAllScalars(b)

	assert.Equal(t, "000123", flat["item_id"])

	// The key survives with a nil value, distinguishable from a missing key.
	value, present := flat["empty_prop"]
	assert.True(t, present)
	assert.Nil(t, value)

	_, present = flat["never_returned"]
	assert.False(t, present)

	assert.Empty(t, ExtractAllScalars(nil))
}

func TestExtractDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		want  *time.Time
	}{
		{
			name:  "rfc3339",
			value: "2024-03-15T10:30:00Z",
			want:  timePtr(time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)),
		},
		{
			name:  "no zone offset",
			value: "2024-03-15T10:30:00",
			want:  timePtr(time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)),
		},
		{
			name:  "date only",
			value: "2024-03-15",
			want:  timePtr(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)),
		},
		{
			name:  "garbage yields nil, not an error",
			value: "not a date",
			want:  nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			b := bag(map[string][]interface{}{"creation_date": {tc.value}})

			got := ExtractDate(b, "creation_date")
			if tc.want == nil {
				assert.Nil(t, got)
			} else {
				require.NotNil(t, got)
				assert.True(t, tc.want.Equal(*got))
			}
		})
	}

	assert.Nil(t, ExtractDate(entity.PropertyBag{}, "creation_date"))
}

func TestCreatePayload(t *testing.T) {
	t.Parallel()

	payload := CreatePayload(dto.CreateItemRequest{
		ItemID:      "000123",
		Name:        "Bracket",
		Description: "Mounting bracket",
	})

	assert.Equal(t, "000123", payload["item_id"])
	assert.Equal(t, "Bracket", payload["object_name"])
	assert.Equal(t, "Mounting bracket", payload["object_desc"])
	assert.Equal(t, "Item", payload["item_type"])
}

func TestCreatePayload_FreeFormOverridesFixed(t *testing.T) {
	t.Parallel()

	payload := CreatePayload(dto.CreateItemRequest{
		ItemID: "000123",
		Name:   "Bracket",
		Properties: map[string]interface{}{
			"item_type":   "Design",
			"custom_prop": 42,
		},
	})

	// Free-form keys win on collision.
	assert.Equal(t, "Design", payload["item_type"])
	assert.Equal(t, 42, payload["custom_prop"])
	assert.Equal(t, "000123", payload["item_id"])
}

func TestUpdatePayload_PresentFieldsOnly(t *testing.T) {
	t.Parallel()

	payload := UpdatePayload(dto.UpdateItemRequest{
		Name: "Renamed",
	})

	assert.Equal(t, map[string]interface{}{"object_name": "Renamed"}, payload)

	payload = UpdatePayload(dto.UpdateItemRequest{
		Description: "New description",
		Properties:  map[string]interface{}{"custom_prop": "x"},
	})

	assert.NotContains(t, payload, "object_name")
	assert.Equal(t, "New description", payload["object_desc"])
	assert.Equal(t, "x", payload["custom_prop"])
}

func TestItemFromObject(t *testing.T) {
	t.Parallel()

	obj := &entity.Object{
		UID:  "SR9ijGn4phPDfA",
		Type: "Item",
		Properties: bag(map[string][]interface{}{
			"item_id":       {"000123"},
			"object_name":   {"Bracket"},
			"creation_date": {"2024-03-15T10:30:00Z"},
		}),
	}

	item := itemFromObject(obj)

	assert.Equal(t, "SR9ijGn4phPDfA", item.ID)
	assert.Equal(t, "000123", item.ItemID)
	assert.Equal(t, "Bracket", item.Name)
	// object_desc was never returned; that is not an error, just nil.
	assert.Nil(t, item.Description)
	require.NotNil(t, item.CreatedDate)
	assert.Nil(t, item.OwningUser)
}

func TestRevisionFromObject(t *testing.T) {
	t.Parallel()

	rev := revisionFromObject(&entity.Object{
		UID: "RevUID1",
		Properties: bag(map[string][]interface{}{
			"item_revision_id": {"A"},
			"object_name":      {"Bracket"},
		}),
	})

	assert.Equal(t, "RevUID1", rev.ID)
	assert.Equal(t, "A", rev.RevisionID)
	assert.Equal(t, "Bracket", rev.Name)
}

func timePtr(ts time.Time) *time.Time {
	return &ts
}
