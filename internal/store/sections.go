package store

import "github.com/masarhq/masar/internal/models"

// Sections returns the sections belonging to one grade
func (s *Store) Sections(gradeID int64) []models.Section {
	var out []models.Section
	for _, sec := range s.sections {
		if sec.GradeID == gradeID {
			out = append(out, sec)
		}
	}
	return out
}

// AllSections returns every section across all grades
func (s *Store) AllSections() []models.Section {
	out := make([]models.Section, len(s.sections))
	copy(out, s.sections)
	return out
}

// Section returns a single section by id
func (s *Store) Section(id int64) (models.Section, bool) {
	for _, sec := range s.sections {
		if sec.ID == id {
			return sec, true
		}
	}
	return models.Section{}, false
}

// AddSection creates a section under the given grade
func (s *Store) AddSection(gradeID int64, name string) (models.Section, error) {
	section := models.Section{
		ID:      s.nextID(),
		Name:    name,
		GradeID: gradeID,
	}
	s.sections = append(s.sections, section)
	return section, s.persist()
}

// DeleteSection removes a section and cascades to its students, their logs
// and lesson progress, and any session sheet attached to the section
func (s *Store) DeleteSection(id int64) error {
	studentIDs := make(map[int64]bool)
	for _, st := range s.students {
		if st.SectionID == id {
			studentIDs[st.ID] = true
		}
	}

	s.logs = filter(s.logs, func(l models.RecognitionLog) bool {
		return !studentIDs[l.StudentID]
	})
	s.progress = filter(s.progress, func(p models.LessonProgress) bool {
		return !studentIDs[p.StudentID]
	})
	s.sessions = filter(s.sessions, func(sh models.SessionSheet) bool {
		return sh.SectionID != id
	})
	s.students = filter(s.students, func(st models.Student) bool {
		return st.SectionID != id
	})
	s.sections = filter(s.sections, func(sec models.Section) bool {
		return sec.ID != id
	})

	return s.persist()
}
