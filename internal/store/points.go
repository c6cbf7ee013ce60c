package store

import (
	"sort"

	"github.com/masarhq/masar/internal/models"
)

// AddPoints is the single path that mutates student score state. It adds
// points to the running total (floored at zero after the addition), feeds
// the matching category counter for the four recognition categories
// (unclamped), recomputes the avatar level from the clamped total, and
// appends a log row recording the raw signed delta.
//
// An unknown student id is a no-op returning (nil, nil).
func (s *Store) AddPoints(studentID int64, points int, category models.Category, reason string) (*models.Student, error) {
	idx := -1
	for i := range s.students {
		if s.students[i].ID == studentID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, nil
	}

	st := &s.students[idx]
	st.TotalPoints += points
	if st.TotalPoints < 0 {
		st.TotalPoints = 0
	}

	if category.Counts() {
		switch category {
		case models.CategoryHelpfulness:
			st.HelpfulnessPoints += points
		case models.CategoryRespect:
			st.RespectPoints += points
		case models.CategoryTeamwork:
			st.TeamworkPoints += points
		case models.CategoryExcellence:
			st.ExcellencePoints += points
		}
	}

	st.AvatarLevel = models.LevelForPoints(st.TotalPoints, st.AvatarLevel)

	if reason == "" {
		reason = category.DefaultReason()
	}
	s.logs = append(s.logs, models.RecognitionLog{
		ID:        s.nextID(),
		StudentID: studentID,
		Category:  category,
		Points:    points,
		Reason:    reason,
		Date:      s.now(),
	})

	updated := *st
	return &updated, s.persist()
}

// BulkAddPoints applies AddPoints to every student currently in the section.
// Each student's update is atomic on its own; there is no batching.
func (s *Store) BulkAddPoints(sectionID int64, points int, category models.Category, reason string) error {
	var firstErr error
	for _, st := range s.StudentsBySection(sectionID) {
		if _, err := s.AddPoints(st.ID, points, category, reason); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Logs returns a student's recognition history, most recent first.
// Entries with equal dates keep insertion order.
func (s *Store) Logs(studentID int64) []models.RecognitionLog {
	var out []models.RecognitionLog
	for _, l := range s.logs {
		if l.StudentID == studentID {
			out = append(out, l)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}
