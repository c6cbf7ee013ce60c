package store

import "github.com/masarhq/masar/internal/models"

// StudentsBySection returns the current roster of one section
func (s *Store) StudentsBySection(sectionID int64) []models.Student {
	var out []models.Student
	for _, st := range s.students {
		if st.SectionID == sectionID {
			out = append(out, st)
		}
	}
	return out
}

// AllStudents returns every student across all sections
func (s *Store) AllStudents() []models.Student {
	out := make([]models.Student, len(s.students))
	copy(out, s.students)
	return out
}

// Student returns a single student by id
func (s *Store) Student(id int64) (models.Student, bool) {
	for _, st := range s.students {
		if st.ID == id {
			return st, true
		}
	}
	return models.Student{}, false
}

// AddStudent enrolls a student in a section. GradeID is the denormalized
// grade of the owning section, fixed here at creation time. New students
// start at level 1 with zero points everywhere.
func (s *Store) AddStudent(name string, gender models.Gender, sectionID, gradeID int64) (models.Student, error) {
	student := models.Student{
		ID:          s.nextID(),
		Name:        name,
		Gender:      gender,
		SectionID:   sectionID,
		GradeID:     gradeID,
		AvatarLevel: 1,
	}
	s.students = append(s.students, student)
	return student, s.persist()
}

// DeleteStudent removes a student, their logs and lesson progress, and
// scrubs their marks from every session sheet. Marks are embedded in the
// sheets rather than a collection of their own, so this is a nested filter
// over all sheets.
func (s *Store) DeleteStudent(id int64) error {
	s.logs = filter(s.logs, func(l models.RecognitionLog) bool {
		return l.StudentID != id
	})
	s.progress = filter(s.progress, func(p models.LessonProgress) bool {
		return p.StudentID != id
	})
	for i := range s.sessions {
		s.sessions[i].Marks = filter(s.sessions[i].Marks, func(m models.SessionMark) bool {
			return m.StudentID != id
		})
	}
	s.students = filter(s.students, func(st models.Student) bool {
		return st.ID != id
	})

	return s.persist()
}
