package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseYear(t *testing.T) {
	tests := []struct {
		name  string
		input string
		year  int
		ok    bool
	}{
		{"single year", "1840", 1840, true},
		{"single year with whitespace", "  1840  ", 1840, true},
		{"hyphen range", "1840-1850", 1845, true},
		{"hyphen range with spaces", "1840 - 1850", 1845, true},
		{"hyphen range floor midpoint", "1840-1851", 1845, true},
		{"to range", "1840 to 1850", 1845, true},
		{"to range uppercase", "1840 TO 1850", 1845, true},
		{"circa prefix", "circa 1840", 1840, true},
		{"circa uppercase", "Circa 1840", 1840, true},
		{"ca. prefix", "ca. 1840", 1840, true},
		{"c. prefix", "c. 1840", 1840, true},
		{"circa with range", "circa 1840-1850", 1845, true},
		{"empty", "", 0, false},
		{"whitespace only", "   ", 0, false},
		{"not a date", "not a date", 0, false},
		{"two digit year", "40", 0, false},
		{"five digit number", "18400", 0, false},
		{"trailing text", "1840 approx", 0, false},
		{"word unknown", "unknown", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			year, ok := ParseYear(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.year, year)
			}
		})
	}
}

func TestDecade(t *testing.T) {
	assert.Equal(t, 1840, Decade(1845))
	assert.Equal(t, 1840, Decade(1840))
	assert.Equal(t, 1840, Decade(1849))
	assert.Equal(t, 1850, Decade(1850))
	assert.Equal(t, 2000, Decade(2009))
}

func TestDecadeLabel(t *testing.T) {
	assert.Equal(t, "1840s", DecadeLabel(1840))
	assert.Equal(t, "1900s", DecadeLabel(1900))
}

func TestParseDecadeLabel(t *testing.T) {
	decade, ok := ParseDecadeLabel("1840s")
	assert.True(t, ok)
	assert.Equal(t, 1840, decade)

	_, ok = ParseDecadeLabel("Unknown")
	assert.False(t, ok)

	_, ok = ParseDecadeLabel("not a decade")
	assert.False(t, ok)

	_, ok = ParseDecadeLabel("")
	assert.False(t, ok)
}

func TestDecadeLabelFor(t *testing.T) {
	assert.Equal(t, "1840s", DecadeLabelFor("1845"))
	assert.Equal(t, "1850s", DecadeLabelFor("1850-1860"))
	assert.Equal(t, "1870s", DecadeLabelFor("circa 1870"))
	assert.Equal(t, "Unknown", DecadeLabelFor("invalid"))
	assert.Equal(t, "Unknown", DecadeLabelFor(""))
}
