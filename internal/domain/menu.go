package domain

import (
	"fmt"
	"strings"
)

// MaxCategoryDepth is the number of category levels a menu item can carry
const MaxCategoryDepth = 5

// Flag is a boolean that also accepts the spreadsheet-style "TRUE"/"FALSE" strings
type Flag bool

// UnmarshalJSON accepts true, false, "TRUE", "FALSE" (any case) and null
func (f *Flag) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	raw = strings.Trim(raw, `"`)
	switch strings.ToLower(raw) {
	case "true", "1":
		*f = true
	case "false", "0", "", "null":
		*f = false
	default:
		return fmt.Errorf("%w: invalid boolean flag %q", ErrInvalidInput, raw)
	}
	return nil
}

// MenuItem is a single dish as ingested from a restaurant menu
type MenuItem struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Description  string  `json:"description"`
	RestaurantID string  `json:"restaurantId"`
	Category1    string  `json:"category1,omitempty"`
	Category2    string  `json:"category2,omitempty"`
	Category3    string  `json:"category3,omitempty"`
	Category4    string  `json:"category4,omitempty"`
	Category5    string  `json:"category5,omitempty"`
	Vegan        Flag    `json:"vegan"`
	Vegetarian   Flag    `json:"vegetarian"`
	GlutenFree   Flag    `json:"glutenFree"`
	Score        float64 `json:"score"`
	Picture      string  `json:"picture,omitempty"`
	Recommend    Flag    `json:"recommend"`
}

// Levels returns the item's category labels in order, stopping at the first empty level
func (m MenuItem) Levels() []string {
	raw := [MaxCategoryDepth]string{m.Category1, m.Category2, m.Category3, m.Category4, m.Category5}
	levels := make([]string, 0, MaxCategoryDepth)
	for _, label := range raw {
		if label == "" {
			break
		}
		levels = append(levels, label)
	}
	return levels
}
