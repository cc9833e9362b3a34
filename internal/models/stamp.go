package models

import (
	"time"

	"github.com/google/uuid"
)

// Stamp represents a single stamp entry in the collection.
// All descriptive fields are free text; missing keys in older catalog
// documents decode to the empty string, so consumers can assume non-nil text.
type Stamp struct {
	UniqueID         string `json:"unique_id"`
	Name             string `json:"name"`
	Country          string `json:"country"`
	ImagePath        string `json:"image_path"`
	Dates            string `json:"dates"`
	Comments         string `json:"comments"`
	CatalogueIDs     string `json:"catalogue_ids"`
	CollectionNumber string `json:"collection_number"`
	Keywords         string `json:"keywords"`
}

// NewStamp creates an empty stamp with a freshly generated unique ID.
func NewStamp() Stamp {
	return Stamp{UniqueID: uuid.NewString()}
}

// StampRequest represents the form data for creating or updating a stamp.
// The unique ID is never taken from the client; the store assigns or
// preserves it.
type StampRequest struct {
	Name             string `json:"name"`
	Country          string `json:"country"`
	ImagePath        string `json:"image_path"`
	Dates            string `json:"dates"`
	Comments         string `json:"comments"`
	CatalogueIDs     string `json:"catalogue_ids"`
	CollectionNumber string `json:"collection_number"`
	Keywords         string `json:"keywords"`
}

// ToStamp builds a stamp from the request, leaving UniqueID empty for the
// caller to assign.
func (r StampRequest) ToStamp() Stamp {
	return Stamp{
		Name:             r.Name,
		Country:          r.Country,
		ImagePath:        r.ImagePath,
		Dates:            r.Dates,
		Comments:         r.Comments,
		CatalogueIDs:     r.CatalogueIDs,
		CollectionNumber: r.CollectionNumber,
		Keywords:         r.Keywords,
	}
}

// CatalogMetadata describes the persisted catalog document.
type CatalogMetadata struct {
	Version      string `json:"version"`
	LastModified string `json:"last_modified"`
}

// CatalogDocument is the on-disk JSON envelope for a catalog file.
type CatalogDocument struct {
	Stamps   []Stamp         `json:"stamps"`
	Metadata CatalogMetadata `json:"metadata"`
}

// CatalogVersion is the document format version written on save.
const CatalogVersion = "1.0"

// NewCatalogDocument wraps a stamp list in the persisted envelope with
// current metadata.
func NewCatalogDocument(stamps []Stamp) CatalogDocument {
	return CatalogDocument{
		Stamps: stamps,
		Metadata: CatalogMetadata{
			Version:      CatalogVersion,
			LastModified: time.Now().Format(time.RFC3339),
		},
	}
}
