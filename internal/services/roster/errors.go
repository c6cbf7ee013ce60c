package roster

import "errors"

// Roster-related errors
var (
	// Validation errors
	ErrEmptyName       = errors.New("name cannot be empty")
	ErrNameTooLong     = errors.New("name cannot exceed 50 characters")
	ErrInvalidColor    = errors.New("invalid color format (must be hex color like #FFFFFF)")
	ErrInvalidGender   = errors.New("gender must be male or female")
	ErrInvalidCategory = errors.New("unknown recognition category")
	ErrZeroPoints      = errors.New("points must be non-zero")

	// Business logic errors
	ErrGradeNotFound   = errors.New("grade not found")
	ErrSectionNotFound = errors.New("section not found")
	ErrStudentNotFound = errors.New("student not found")
)
