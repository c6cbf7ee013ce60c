package store

import (
	"fmt"
	"sort"
	"time"

	"github.com/masarhq/masar/internal/models"
)

// SessionsBySection returns a section's sheets, newest first
func (s *Store) SessionsBySection(sectionID int64) []models.SessionSheet {
	var out []models.SessionSheet
	for _, sh := range s.sessions {
		if sh.SectionID == sectionID {
			out = append(out, cloneSheet(sh))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// SessionSheet returns a sheet snapshot by id
func (s *Store) SessionSheet(id int64) (models.SessionSheet, bool) {
	for _, sh := range s.sessions {
		if sh.ID == id {
			return cloneSheet(sh), true
		}
	}
	return models.SessionSheet{}, false
}

// CreateSessionSheet generates a sheet with duration columns starting at
// startDate. Columns are fixed at creation; rows are always the section's
// current roster, so they are not stored at all.
func (s *Store) CreateSessionSheet(sectionID int64, name string, unit models.TimeUnit, duration int, startDate time.Time, markingConfigID string) (models.SessionSheet, error) {
	sheet := models.SessionSheet{
		ID:              s.nextID(),
		SectionID:       sectionID,
		Name:            name,
		TimeUnit:        unit,
		Duration:        duration,
		StartDate:       startDate.Format("2006-01-02"),
		MarkingConfigID: markingConfigID,
		Columns:         generateColumns(unit, duration, startDate),
		Marks:           []models.SessionMark{},
		CreatedAt:       s.now(),
	}
	s.sessions = append(s.sessions, sheet)
	return cloneSheet(sheet), s.persist()
}

// generateColumns builds the fixed column sequence for a sheet
func generateColumns(unit models.TimeUnit, duration int, start time.Time) []models.SessionColumn {
	cols := make([]models.SessionColumn, 0, duration)
	for i := 0; i < duration; i++ {
		col := models.SessionColumn{Index: i, Label: fmt.Sprintf("%d", i+1)}
		switch unit {
		case models.TimeUnitDay:
			d := start.AddDate(0, 0, i)
			col.Date = fmt.Sprintf("%d/%d", d.Day(), int(d.Month()))
			col.Label = col.Date
		case models.TimeUnitWeek:
			d := start.AddDate(0, 0, i*7)
			col.Date = fmt.Sprintf("%d/%d", d.Day(), int(d.Month()))
			col.Label = fmt.Sprintf("Week %d", i+1)
		case models.TimeUnitMonth:
			d := start.AddDate(0, i, 0)
			col.Date = d.Month().String()
			col.Label = col.Date
		}
		cols = append(cols, col)
	}
	return cols
}

// Mark returns the mark type stored at (studentID, column) under context,
// or false when the cell is empty in that context
func (s *Store) Mark(sheetID, studentID int64, column int, context string) (string, bool) {
	for _, sh := range s.sessions {
		if sh.ID != sheetID {
			continue
		}
		for _, m := range sh.Marks {
			if m.StudentID == studentID && m.ColumnIndex == column && m.Context == context {
				return m.Type, true
			}
		}
		return "", false
	}
	return "", false
}

// SetMark records markType at (studentID, column) under context, replacing
// any existing mark for the same composite key. An empty markType clears the
// cell. Unknown sheet ids are a no-op.
func (s *Store) SetMark(sheetID, studentID int64, column int, markType, context string) error {
	idx := -1
	for i := range s.sessions {
		if s.sessions[i].ID == sheetID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil
	}

	sheet := &s.sessions[idx]
	for i, m := range sheet.Marks {
		if m.StudentID != studentID || m.ColumnIndex != column || m.Context != context {
			continue
		}
		if markType == "" {
			sheet.Marks = append(sheet.Marks[:i], sheet.Marks[i+1:]...)
		} else {
			sheet.Marks[i].Type = markType
		}
		return s.persist()
	}

	if markType == "" {
		return nil
	}
	sheet.Marks = append(sheet.Marks, models.SessionMark{
		StudentID:   studentID,
		ColumnIndex: column,
		Type:        markType,
		Context:     context,
	})
	return s.persist()
}

// CycleMark advances the cell at (studentID, column) through cfg's mark
// sequence: empty to the first type, last type back to empty. The cycle is a
// pure function of cfg's order; marks stored under other contexts are
// untouched. Returns the new mark type ("" when the cell was cleared).
func (s *Store) CycleMark(sheetID, studentID int64, column int, cfg models.MarkingConfig) (string, error) {
	current, _ := s.Mark(sheetID, studentID, column, cfg.ID)
	next := cfg.NextMark(current)
	return next, s.SetMark(sheetID, studentID, column, next, cfg.ID)
}

// StudentSheetTotal sums the weights of a student's marks on a sheet under
// cfg's vocabulary. Empty cells and orphaned mark types contribute zero.
func (s *Store) StudentSheetTotal(sheetID, studentID int64, cfg models.MarkingConfig) float64 {
	var total float64
	for _, sh := range s.sessions {
		if sh.ID != sheetID {
			continue
		}
		for _, m := range sh.Marks {
			if m.StudentID == studentID && m.Context == cfg.ID {
				total += cfg.Weight(m.Type)
			}
		}
	}
	return total
}

// cloneSheet deep-copies a sheet so callers cannot reach into the stored
// columns or marks
func cloneSheet(sh models.SessionSheet) models.SessionSheet {
	out := sh
	out.Columns = make([]models.SessionColumn, len(sh.Columns))
	copy(out.Columns, sh.Columns)
	out.Marks = make([]models.SessionMark, len(sh.Marks))
	copy(out.Marks, sh.Marks)
	return out
}
