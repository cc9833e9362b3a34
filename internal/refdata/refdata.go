// Package refdata loads the static philatelic reference data shipped with
// the application: historical country names and the British Empire /
// Commonwealth membership list. These lookups are read-only and independent
// of the catalog's consistency guarantees.
package refdata

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// CountryName maps a historical country name to its current one, with the
// year range during which the previous name was in use.
type CountryName struct {
	CurrentName  string `json:"current_name"`
	PreviousName string `json:"previous_name"`
	YearRange    string `json:"year_range"`
}

// LoadCountryNames reads the historical country-name records from a JSON
// file.
func LoadCountryNames(path string) ([]CountryName, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read country names file: %w", err)
	}
	var names []CountryName
	if err := json.Unmarshal(data, &names); err != nil {
		return nil, fmt.Errorf("failed to parse country names file: %w", err)
	}
	return names, nil
}

// LoadCommonwealth reads the British Empire / Commonwealth country list from
// a JSON file.
func LoadCommonwealth(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read commonwealth file: %w", err)
	}
	var countries []string
	if err := json.Unmarshal(data, &countries); err != nil {
		return nil, fmt.Errorf("failed to parse commonwealth file: %w", err)
	}
	return countries, nil
}

// PreviousNames returns the historical names recorded for a current country
// name. The match is case-insensitive.
func PreviousNames(names []CountryName, current string) []CountryName {
	out := []CountryName{}
	for _, n := range names {
		if strings.EqualFold(n.CurrentName, current) {
			out = append(out, n)
		}
	}
	return out
}
