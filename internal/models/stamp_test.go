package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStampGeneratesUniqueIDs(t *testing.T) {
	s1 := NewStamp()
	s2 := NewStamp()

	assert.NotEmpty(t, s1.UniqueID)
	assert.NotEmpty(t, s2.UniqueID)
	assert.NotEqual(t, s1.UniqueID, s2.UniqueID)
}

func TestStampDecodeDefaultsMissingFields(t *testing.T) {
	// Older catalog documents predate the keywords field.
	raw := `{
		"unique_id": "stamp-001",
		"name": "Penny Black",
		"country": "United Kingdom",
		"dates": "1840"
	}`

	var stamp Stamp
	require.NoError(t, json.Unmarshal([]byte(raw), &stamp))

	assert.Equal(t, "stamp-001", stamp.UniqueID)
	assert.Equal(t, "Penny Black", stamp.Name)
	assert.Equal(t, "United Kingdom", stamp.Country)
	assert.Equal(t, "1840", stamp.Dates)
	assert.Equal(t, "", stamp.Keywords)
	assert.Equal(t, "", stamp.ImagePath)
	assert.Equal(t, "", stamp.Comments)
	assert.Equal(t, "", stamp.CatalogueIDs)
	assert.Equal(t, "", stamp.CollectionNumber)
}

func TestStampRequestToStampLeavesIDUnset(t *testing.T) {
	req := StampRequest{
		Name:             "Inverted Jenny",
		Country:          "USA",
		Dates:            "1918",
		Keywords:         "aviation, error",
		CollectionNumber: "001",
	}

	stamp := req.ToStamp()

	assert.Empty(t, stamp.UniqueID)
	assert.Equal(t, "Inverted Jenny", stamp.Name)
	assert.Equal(t, "USA", stamp.Country)
	assert.Equal(t, "1918", stamp.Dates)
	assert.Equal(t, "aviation, error", stamp.Keywords)
	assert.Equal(t, "001", stamp.CollectionNumber)
}

func TestNewCatalogDocumentMetadata(t *testing.T) {
	doc := NewCatalogDocument([]Stamp{{UniqueID: "s1", Name: "Penny Black"}})

	assert.Equal(t, CatalogVersion, doc.Metadata.Version)
	assert.NotEmpty(t, doc.Metadata.LastModified)
	require.Len(t, doc.Stamps, 1)
	assert.Equal(t, "Penny Black", doc.Stamps[0].Name)
}
