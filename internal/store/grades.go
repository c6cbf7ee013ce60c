package store

import "github.com/masarhq/masar/internal/models"

// Grades returns all grades with their derived section and student counts
func (s *Store) Grades() []models.Grade {
	out := make([]models.Grade, len(s.grades))
	for i, g := range s.grades {
		g.SectionCount = 0
		g.StudentCount = 0
		for _, sec := range s.sections {
			if sec.GradeID == g.ID {
				g.SectionCount++
			}
		}
		for _, st := range s.students {
			if st.GradeID == g.ID {
				g.StudentCount++
			}
		}
		out[i] = g
	}
	return out
}

// Grade returns a single grade by id
func (s *Store) Grade(id int64) (models.Grade, bool) {
	for _, g := range s.grades {
		if g.ID == id {
			return g, true
		}
	}
	return models.Grade{}, false
}

// AddGrade creates a grade appended at the end of the display order
func (s *Store) AddGrade(name, color, icon string) (models.Grade, error) {
	grade := models.Grade{
		ID:         s.nextID(),
		Name:       name,
		Color:      color,
		Icon:       icon,
		OrderIndex: len(s.grades) + 1,
	}
	s.grades = append(s.grades, grade)
	return grade, s.persist()
}

// UpdateGrade edits a grade's display fields. Unknown ids are a no-op.
func (s *Store) UpdateGrade(id int64, name, color, icon string) error {
	for i := range s.grades {
		if s.grades[i].ID != id {
			continue
		}
		s.grades[i].Name = name
		s.grades[i].Color = color
		s.grades[i].Icon = icon
		return s.persist()
	}
	return nil
}

// DeleteGrade removes a grade and cascades over everything it transitively
// owns: session sheets of its sections, logs and lesson progress of its
// students, the students, the sections, and finally the grade itself.
// Filters run against the section/student sets captured before any
// collection is mutated, so no orphan references survive.
func (s *Store) DeleteGrade(id int64) error {
	sectionIDs := make(map[int64]bool)
	for _, sec := range s.sections {
		if sec.GradeID == id {
			sectionIDs[sec.ID] = true
		}
	}
	studentIDs := make(map[int64]bool)
	for _, st := range s.students {
		if st.GradeID == id {
			studentIDs[st.ID] = true
		}
	}

	s.sessions = filter(s.sessions, func(sh models.SessionSheet) bool {
		return !sectionIDs[sh.SectionID]
	})
	s.logs = filter(s.logs, func(l models.RecognitionLog) bool {
		return !studentIDs[l.StudentID]
	})
	s.progress = filter(s.progress, func(p models.LessonProgress) bool {
		return !studentIDs[p.StudentID]
	})
	s.students = filter(s.students, func(st models.Student) bool {
		return st.GradeID != id
	})
	s.sections = filter(s.sections, func(sec models.Section) bool {
		return sec.GradeID != id
	})
	s.grades = filter(s.grades, func(g models.Grade) bool {
		return g.ID != id
	})

	return s.persist()
}

// filter returns the elements of in for which keep is true
func filter[T any](in []T, keep func(T) bool) []T {
	out := in[:0:0]
	for _, v := range in {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}
