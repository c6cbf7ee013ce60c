package models

// Section represents a classroom/division within a grade
type Section struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	GradeID int64  `json:"grade_id"`
}
