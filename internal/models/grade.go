package models

// Grade represents a school year cohort (e.g., "Grade 3")
// A grade owns sections, which in turn own students
type Grade struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Color      string `json:"color"` // Hex color code (e.g., "#FFE5E5")
	Icon       string `json:"icon"`
	OrderIndex int    `json:"order_index"`

	// Derived counts, recomputed on every read and never authoritative
	StudentCount int `json:"studentCount"`
	SectionCount int `json:"sectionCount"`
}
