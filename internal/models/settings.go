package models

// TeacherProfile holds the app owner's display settings
type TeacherProfile struct {
	Name    string `json:"name"`
	Subject string `json:"subject"`
}

// DefaultTeacherProfile is returned when no profile has been saved yet
func DefaultTeacherProfile() TeacherProfile {
	return TeacherProfile{Name: "Teacher", Subject: "General"}
}

// ReportTemplateConfig toggles which sections a parent report shows
type ReportTemplateConfig struct {
	ShowEngagement bool `json:"showEngagement"`
	ShowNotes      bool `json:"showNotes"`
	ShowPoints     bool `json:"showPoints"`
}

// ReportTemplate is a saved parent-report layout. At most one template is
// the default at any time.
type ReportTemplate struct {
	ID        string               `json:"id"`
	Name      string               `json:"name"`
	Config    ReportTemplateConfig `json:"config"`
	IsDefault bool                 `json:"isDefault"`
}
