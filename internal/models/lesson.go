package models

import "time"

// Lesson is a catalog entry in the global lesson list.
// Lessons are not owned by any grade or section.
type Lesson struct {
	ID           int64  `json:"id"`
	UnitName     string `json:"unit_name"`
	LessonNumber int    `json:"lesson_number"`
	LessonName   string `json:"lesson_name"`
}

// LessonProgress records one evaluation of a student on a lesson.
// Writes append rather than overwrite; reads take the most recent by date.
// CalculatedPoints is the sum of the three star ratings (max 15) and is
// awarded to the student automatically on save.
type LessonProgress struct {
	ID        int64 `json:"id"`
	StudentID int64 `json:"student_id"`
	LessonID  int64 `json:"lesson_id"`

	// Star ratings, 1..5 each
	Participation int `json:"participation"`
	Comprehension int `json:"comprehension"`
	Excellence    int `json:"excellence"`

	Notes            string    `json:"notes"`
	CalculatedPoints int       `json:"calculated_points"`
	Date             time.Time `json:"date"`
}
