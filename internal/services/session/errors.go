package session

import (
	"errors"
	"fmt"

	"github.com/masarhq/masar/internal/models"
)

// Session-related errors
var (
	// Validation errors
	ErrEmptyName       = errors.New("name cannot be empty")
	ErrInvalidTimeUnit = errors.New("time unit must be day, week or month")
	ErrInvalidDuration = fmt.Errorf("duration must be between %d and %d", models.MinSheetDuration, models.MaxSheetDuration)
	ErrInvalidMarkType = errors.New("mark type is not in the marking config")
	ErrEmptyConfigID   = errors.New("marking config id cannot be empty")
	ErrNoMarks         = errors.New("marking config needs at least one mark definition")

	// Business logic errors
	ErrSectionNotFound = errors.New("section not found")
	ErrSheetNotFound   = errors.New("session sheet not found")
	ErrConfigNotFound  = errors.New("marking config not found")
)
