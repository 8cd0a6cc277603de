// Package seed loads the reference categories and reduction tips.
package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
)

//go:embed defaults.json
var defaultData []byte

// Data is the reference document: categories with their suggestions.
type Data struct {
	Categories []Category `json:"categories"`
}

// Category is one activity category and its tips.
type Category struct {
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Suggestions []Suggestion `json:"suggestions"`
}

// Suggestion is a tip with an optional reduction estimate in kg CO2e.
// The estimate may be written as a JSON number or a decimal string.
type Suggestion struct {
	Tip               string              `json:"tip"`
	ReductionEstimate decimal.NullDecimal `json:"reduction_estimate"`
}

// Estimate returns the reduction estimate as a float, or nil when absent.
func (s Suggestion) Estimate() *float64 {
	if !s.ReductionEstimate.Valid {
		return nil
	}
	v := s.ReductionEstimate.Decimal.InexactFloat64()
	return &v
}

// Default returns the embedded reference data.
func Default() (*Data, error) {
	return Parse(defaultData)
}

// LoadFile reads reference data from path; an empty path yields the embedded defaults.
func LoadFile(path string) (*Data, error) {
	if path == "" {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(raw)
}

// Parse decodes and validates a reference document.
func Parse(raw []byte) (*Data, error) {
	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}

	seen := make(map[string]bool, len(data.Categories))
	for i := range data.Categories {
		c := &data.Categories[i]
		c.Name = strings.TrimSpace(c.Name)
		if c.Name == "" {
			return nil, fmt.Errorf("seed category %d: name is required", i)
		}
		if seen[c.Name] {
			return nil, fmt.Errorf("seed category %q: duplicate name", c.Name)
		}
		seen[c.Name] = true
		for j := range c.Suggestions {
			c.Suggestions[j].Tip = strings.TrimSpace(c.Suggestions[j].Tip)
			if c.Suggestions[j].Tip == "" {
				return nil, fmt.Errorf("seed category %q suggestion %d: tip is required", c.Name, j)
			}
		}
	}
	return &data, nil
}
