package cli

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/masarhq/masar/internal/models"
)

// ValidateColorHex validates that a color string is in valid hex format #RRGGBB
func ValidateColorHex(color string) error {
	matched, err := regexp.MatchString(`^#[0-9A-Fa-f]{6}$`, color)
	if err != nil {
		return fmt.Errorf("error validating color: %w", err)
	}
	if !matched {
		return fmt.Errorf("color must be in hex format #RRGGBB (e.g., #FF0000), got: %s", color)
	}
	return nil
}

// ParseGender maps a gender string to its model value
func ParseGender(gender string) (models.Gender, error) {
	g := models.Gender(strings.ToLower(gender))
	if !g.Valid() {
		return "", fmt.Errorf("invalid gender '%s' (must be: male, female)", gender)
	}
	return g, nil
}

// ParseCategory maps a category string to its model value
func ParseCategory(category string) (models.Category, error) {
	c := models.Category(strings.ToLower(category))
	if !c.Valid() {
		return "", fmt.Errorf("invalid category '%s' (must be: helpfulness, respect, teamwork, excellence, lesson, deduction)", category)
	}
	return c, nil
}

// ParseTimeUnit maps a time unit string to its model value
func ParseTimeUnit(unit string) (models.TimeUnit, error) {
	u := models.TimeUnit(strings.ToLower(unit))
	if !u.Valid() {
		return "", fmt.Errorf("invalid time unit '%s' (must be: day, week, month)", unit)
	}
	return u, nil
}

// ParseDate parses a YYYY-MM-DD date string, defaulting to today when empty
func ParseDate(date string) (time.Time, error) {
	if date == "" {
		return time.Now(), nil
	}
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date '%s' (must be YYYY-MM-DD)", date)
	}
	return t, nil
}
