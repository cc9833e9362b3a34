package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/stampworks/stampkeeper/internal/models"
)

// ErrNoPath is returned by Save when neither an explicit path nor a bound
// catalog file is available.
var ErrNoPath = errors.New("no catalog file path set")

// Catalog is the in-memory stamp collection with JSON file persistence.
// Insertion order is the canonical display order. A dirty flag tracks
// unsaved mutations; only the mutation methods below ever touch it.
type Catalog struct {
	mu       sync.RWMutex
	stamps   []models.Stamp
	filePath string
	modified bool
}

// NewCatalog creates an empty, clean catalog with no bound file.
func NewCatalog() *Catalog {
	return &Catalog{}
}

// Add appends a stamp to the collection. Duplicate names or image paths are
// allowed; duplicate detection is advisory and exposed separately.
func (c *Catalog) Add(stamp models.Stamp) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stamps = append(c.stamps, stamp)
	c.modified = true
}

// Update replaces the stamp with the given ID, preserving that ID regardless
// of what the replacement carries. Reports whether a match was found; the
// catalog is untouched otherwise.
func (c *Catalog) Update(id string, stamp models.Stamp) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.stamps {
		if c.stamps[i].UniqueID == id {
			stamp.UniqueID = id
			c.stamps[i] = stamp
			c.modified = true
			return true
		}
	}
	return false
}

// Delete removes the stamp with the given ID. Reports whether a match was
// found.
func (c *Catalog) Delete(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.stamps {
		if c.stamps[i].UniqueID == id {
			c.stamps = append(c.stamps[:i], c.stamps[i+1:]...)
			c.modified = true
			return true
		}
	}
	return false
}

// Get retrieves a stamp by its unique ID.
func (c *Catalog) Get(id string) (models.Stamp, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, stamp := range c.stamps {
		if stamp.UniqueID == id {
			return stamp, true
		}
	}
	return models.Stamp{}, false
}

// All returns a copy of the collection in insertion order. Mutating the
// returned slice never affects the catalog.
func (c *Catalog) All() []models.Stamp {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.copyStamps()
}

func (c *Catalog) copyStamps() []models.Stamp {
	out := make([]models.Stamp, len(c.stamps))
	copy(out, c.stamps)
	return out
}

// Search returns the stamps containing the query as a case-insensitive
// substring in any text field. A blank query returns the full collection.
func (c *Catalog) Search(query string) []models.Stamp {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.searchLocked(query)
}

func (c *Catalog) searchLocked(query string) []models.Stamp {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return c.copyStamps()
	}
	results := make([]models.Stamp, 0)
	for _, stamp := range c.stamps {
		fields := []string{
			stamp.Name,
			stamp.Country,
			stamp.Dates,
			stamp.CollectionNumber,
			stamp.CatalogueIDs,
			stamp.Keywords,
			stamp.Comments,
		}
		for _, field := range fields {
			if strings.Contains(strings.ToLower(field), q) {
				results = append(results, stamp)
				break
			}
		}
	}
	return results
}

// Filter applies text search, country and decade filters in succession, each
// narrowing the previous result. An empty country or decade label means no
// filtering on that axis; the decade label "Unknown" (or any label that does
// not parse) selects only stamps whose dates cannot be parsed.
func (c *Catalog) Filter(query, country, decadeLabel string) []models.Stamp {
	c.mu.RLock()
	defer c.mu.RUnlock()

	results := c.searchLocked(query)

	if country != "" {
		narrowed := make([]models.Stamp, 0, len(results))
		for _, stamp := range results {
			if stamp.Country == country {
				narrowed = append(narrowed, stamp)
			}
		}
		results = narrowed
	}

	if decadeLabel != "" {
		decade, known := models.ParseDecadeLabel(decadeLabel)
		narrowed := make([]models.Stamp, 0, len(results))
		for _, stamp := range results {
			year, ok := models.ParseYear(stamp.Dates)
			if known {
				if ok && models.Decade(year) == decade {
					narrowed = append(narrowed, stamp)
				}
			} else if !ok {
				narrowed = append(narrowed, stamp)
			}
		}
		results = narrowed
	}

	return results
}

// CountByCountry returns the number of stamps per country. Blank or
// whitespace-only countries are grouped under "Unknown". The map is
// unordered; display ordering is a presentation concern.
func (c *Catalog) CountByCountry() map[string]int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	stats := make(map[string]int)
	for _, stamp := range c.stamps {
		country := stamp.Country
		if strings.TrimSpace(country) == "" {
			country = models.UnknownLabel
		}
		stats[country]++
	}
	return stats
}

// CountByDecade returns the number of stamps per decade label, e.g. "1840s".
// Stamps whose dates cannot be parsed are grouped under "Unknown".
func (c *Catalog) CountByDecade() map[string]int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	stats := make(map[string]int)
	for _, stamp := range c.stamps {
		stats[models.DecadeLabelFor(stamp.Dates)]++
	}
	return stats
}

// TotalCount returns the number of stamps in the collection.
func (c *Catalog) TotalCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.stamps)
}

// IsNameInUse reports whether any stamp other than excludeID has exactly the
// given name. The check is case-sensitive and does not trim; a blank name is
// never in use. Advisory only: the catalog itself accepts duplicates.
func (c *Catalog) IsNameInUse(name, excludeID string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, stamp := range c.stamps {
		if stamp.UniqueID != excludeID && stamp.Name == name {
			return true
		}
	}
	return false
}

// IsImagePathInUse reports whether any stamp other than excludeID references
// exactly the given image path. Same advisory semantics as IsNameInUse.
func (c *Catalog) IsImagePathInUse(path, excludeID string) bool {
	if strings.TrimSpace(path) == "" {
		return false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, stamp := range c.stamps {
		if stamp.UniqueID != excludeID && stamp.ImagePath == path {
			return true
		}
	}
	return false
}

// Load reads a catalog document from the given path. A missing file is not
// an error: it starts a new, empty catalog bound to that path. On any read or
// parse failure the in-memory state is left untouched.
func (c *Catalog) Load(path string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			c.stamps = nil
			c.filePath = path
			c.modified = false
			log.Info().Str("path", path).Msg("Catalog file does not exist, starting empty catalog")
			return nil
		}
		return fmt.Errorf("failed to read catalog file: %w", err)
	}

	var doc models.CatalogDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse catalog file: %w", err)
	}

	c.stamps = doc.Stamps
	c.filePath = path
	c.modified = false
	log.Info().Str("path", path).Int("stamps", len(c.stamps)).Msg("Catalog loaded")
	return nil
}

// Save writes the catalog document to the given path, or to the bound path
// when path is empty. On success the catalog is bound to the path used and
// the dirty flag is cleared. With no path available nothing is written and
// ErrNoPath is returned.
func (c *Catalog) Save(path string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	savePath := path
	if savePath == "" {
		savePath = c.filePath
	}
	if savePath == "" {
		return ErrNoPath
	}

	doc := models.NewCatalogDocument(c.copyStamps())
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	if err := os.WriteFile(savePath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write catalog file: %w", err)
	}

	c.filePath = savePath
	c.modified = false
	log.Info().Str("path", savePath).Int("stamps", len(c.stamps)).Msg("Catalog saved")
	return nil
}

// Clear empties the collection, unbinds the catalog file and resets the
// dirty flag.
func (c *Catalog) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stamps = nil
	c.filePath = ""
	c.modified = false
}

// Modified reports whether there are unsaved changes since the last
// successful load, save or clear.
func (c *Catalog) Modified() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.modified
}

// Path returns the currently bound catalog file path, or "" when unbound.
func (c *Catalog) Path() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}
