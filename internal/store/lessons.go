package store

import (
	"sort"

	"github.com/masarhq/masar/internal/models"
)

// AllLessons returns the global lesson catalog
func (s *Store) AllLessons() []models.Lesson {
	out := make([]models.Lesson, len(s.lessons))
	copy(out, s.lessons)
	return out
}

// LessonInfo returns a catalog entry by id
func (s *Store) LessonInfo(id int64) (models.Lesson, bool) {
	for _, l := range s.lessons {
		if l.ID == id {
			return l, true
		}
	}
	return models.Lesson{}, false
}

// AddLessons bulk-imports catalog entries. Each item gets its own id even
// when the whole batch lands in the same millisecond.
func (s *Store) AddLessons(lessons []models.Lesson) ([]models.Lesson, error) {
	added := make([]models.Lesson, 0, len(lessons))
	for _, l := range lessons {
		l.ID = s.nextID()
		added = append(added, l)
	}
	s.lessons = append(s.lessons, added...)
	return added, s.persist()
}

// SaveLessonProgress records an evaluation of a student on a lesson and
// awards the calculated points to the student under the lesson category.
// Entries append rather than overwrite; StudentLessonProgress reads back the
// most recent by date.
func (s *Store) SaveLessonProgress(p models.LessonProgress) error {
	p.ID = s.nextID()
	if p.Date.IsZero() {
		p.Date = s.now()
	}
	s.progress = append(s.progress, p)

	if _, err := s.AddPoints(p.StudentID, p.CalculatedPoints, models.CategoryLesson, ""); err != nil {
		return err
	}
	return s.persist()
}

// StudentLessonProgress returns the most recent progress entry for a
// (student, lesson) pair
func (s *Store) StudentLessonProgress(studentID, lessonID int64) (models.LessonProgress, bool) {
	var entries []models.LessonProgress
	for _, e := range s.progress {
		if e.StudentID == studentID && e.LessonID == lessonID {
			entries = append(entries, e)
		}
	}
	if len(entries) == 0 {
		return models.LessonProgress{}, false
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
	return entries[0], true
}

// StudentProgress returns every progress entry recorded for a student
func (s *Store) StudentProgress(studentID int64) []models.LessonProgress {
	var out []models.LessonProgress
	for _, e := range s.progress {
		if e.StudentID == studentID {
			out = append(out, e)
		}
	}
	return out
}
