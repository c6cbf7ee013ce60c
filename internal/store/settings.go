package store

import "github.com/masarhq/masar/internal/models"

// TeacherProfile returns the saved profile, or the default when none exists
func (s *Store) TeacherProfile() models.TeacherProfile {
	return s.profile
}

// UpdateTeacherProfile saves the app owner's display settings
func (s *Store) UpdateTeacherProfile(name, subject string) error {
	s.profile = models.TeacherProfile{Name: name, Subject: subject}
	return s.persist()
}

// ReportTemplates returns every saved report template
func (s *Store) ReportTemplates() []models.ReportTemplate {
	out := make([]models.ReportTemplate, len(s.templates))
	copy(out, s.templates)
	return out
}

// SaveReportTemplate upserts a template by id. Saving a default template
// clears the default flag on every other template so at most one default
// exists.
func (s *Store) SaveReportTemplate(t models.ReportTemplate) error {
	if t.IsDefault {
		for i := range s.templates {
			s.templates[i].IsDefault = false
		}
	}
	for i := range s.templates {
		if s.templates[i].ID == t.ID {
			s.templates[i] = t
			return s.persist()
		}
	}
	s.templates = append(s.templates, t)
	return s.persist()
}

// DeleteReportTemplate removes a template by id
func (s *Store) DeleteReportTemplate(id string) error {
	s.templates = filter(s.templates, func(t models.ReportTemplate) bool {
		return t.ID != id
	})
	return s.persist()
}
