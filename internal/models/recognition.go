package models

import "time"

// Category classifies a point award or deduction
type Category string

const (
	CategoryHelpfulness Category = "helpfulness"
	CategoryRespect     Category = "respect"
	CategoryTeamwork    Category = "teamwork"
	CategoryExcellence  Category = "excellence"

	// CategoryLesson is used for automatic awards from lesson progress;
	// it feeds total points but no category counter
	CategoryLesson Category = "lesson"

	// CategoryDeduction is used for point removal; like lesson it bypasses
	// the category counters
	CategoryDeduction Category = "deduction"
)

// RecognitionCategories are the four counters tracked per student
var RecognitionCategories = []Category{
	CategoryHelpfulness,
	CategoryRespect,
	CategoryTeamwork,
	CategoryExcellence,
}

// Valid reports whether c is a recognized category
func (c Category) Valid() bool {
	switch c {
	case CategoryHelpfulness, CategoryRespect, CategoryTeamwork,
		CategoryExcellence, CategoryLesson, CategoryDeduction:
		return true
	}
	return false
}

// Counts reports whether awards in this category feed a per-category counter
func (c Category) Counts() bool {
	switch c {
	case CategoryHelpfulness, CategoryRespect, CategoryTeamwork, CategoryExcellence:
		return true
	}
	return false
}

// DefaultReason returns the fallback log reason for a category, used when
// the caller provides none
func (c Category) DefaultReason() string {
	switch c {
	case CategoryHelpfulness:
		return "Helping others"
	case CategoryRespect:
		return "Showing respect"
	case CategoryTeamwork:
		return "Great teamwork"
	case CategoryExcellence:
		return "Excellent work"
	case CategoryLesson:
		return "Lesson completed"
	case CategoryDeduction:
		return "Points deducted"
	}
	return ""
}

// RecognitionLog is an append-only record of a single point change.
// Points holds the raw signed delta, before any clamping applied to the
// student's running total.
type RecognitionLog struct {
	ID        int64     `json:"id"`
	StudentID int64     `json:"student_id"`
	Category  Category  `json:"category"`
	Points    int       `json:"points"`
	Reason    string    `json:"reason"`
	Date      time.Time `json:"date"`
}
