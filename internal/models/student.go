package models

// Gender of a student
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Valid reports whether g is a recognized gender value
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// Student represents a single student enrolled in a section.
// GradeID is a denormalized copy of the owning section's grade, fixed at
// creation time. Sections are never moved to a different grade, so the copy
// cannot drift.
//
// TotalPoints never goes below zero; the four category counters are
// unclamped and may go negative.
type Student struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Gender    Gender `json:"gender"`
	SectionID int64  `json:"section_id"`
	GradeID   int64  `json:"grade_id"`

	AvatarLevel int `json:"avatar_level"`
	TotalPoints int `json:"total_points"`

	HelpfulnessPoints int `json:"helpfulness_points"`
	RespectPoints     int `json:"respect_points"`
	TeamworkPoints    int `json:"teamwork_points"`
	ExcellencePoints  int `json:"excellence_points"`
}
