package store_test

import (
	"testing"
	"time"

	"github.com/masarhq/masar/internal/models"
	"github.com/masarhq/masar/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func sheetStart() time.Time {
	return time.Date(2025, 9, 7, 0, 0, 0, 0, time.UTC)
}

func TestCreateSessionSheetDayColumns(t *testing.T) {
	s := testutil.NewStore(t)
	r := testutil.SeedRoster(t, s, 1)

	sheet, err := s.CreateSessionSheet(r.Section.ID, "Week 1", models.TimeUnitDay, 5, sheetStart(), "attendance")
	assert.NoError(t, err)

	assert.Len(t, sheet.Columns, 5)
	assert.Equal(t, 0, sheet.Columns[0].Index)
	assert.Equal(t, "7/9", sheet.Columns[0].Label)
	assert.Equal(t, "11/9", sheet.Columns[4].Label)
	assert.Equal(t, "2025-09-07", sheet.StartDate)
}

func TestCreateSessionSheetWeekColumns(t *testing.T) {
	s := testutil.NewStore(t)
	r := testutil.SeedRoster(t, s, 1)

	sheet, err := s.CreateSessionSheet(r.Section.ID, "Term", models.TimeUnitWeek, 3, sheetStart(), "attendance")
	assert.NoError(t, err)

	assert.Equal(t, "Week 1", sheet.Columns[0].Label)
	assert.Equal(t, "7/9", sheet.Columns[0].Date)
	assert.Equal(t, "Week 3", sheet.Columns[2].Label)
	assert.Equal(t, "21/9", sheet.Columns[2].Date)
}

func TestCreateSessionSheetMonthColumns(t *testing.T) {
	s := testutil.NewStore(t)
	r := testutil.SeedRoster(t, s, 1)

	sheet, err := s.CreateSessionSheet(r.Section.ID, "Year", models.TimeUnitMonth, 3, sheetStart(), "attendance")
	assert.NoError(t, err)

	assert.Equal(t, "September", sheet.Columns[0].Label)
	assert.Equal(t, "October", sheet.Columns[1].Label)
	assert.Equal(t, "November", sheet.Columns[2].Label)
}

func TestSessionsBySectionNewestFirst(t *testing.T) {
	s := testutil.NewStore(t)
	r := testutil.SeedRoster(t, s, 1)

	first, _ := s.CreateSessionSheet(r.Section.ID, "first", models.TimeUnitDay, 2, sheetStart(), "attendance")
	second, _ := s.CreateSessionSheet(r.Section.ID, "second", models.TimeUnitDay, 2, sheetStart(), "attendance")

	sheets := s.SessionsBySection(r.Section.ID)
	assert.Len(t, sheets, 2)
	assert.Equal(t, second.ID, sheets[0].ID)
	assert.Equal(t, first.ID, sheets[1].ID)
}

// Cycling is click count mod (markCount+1): with three marks, four clicks
// return the cell to empty
func TestCycleMarkWrapsToEmpty(t *testing.T) {
	s := testutil.NewStore(t)
	r := testutil.SeedRoster(t, s, 1)
	st := r.Students[0]

	cfg := models.MarkingConfig{
		ID: "attendance",
		Marks: []models.MarkDefinition{
			{Type: "present", Weight: 1},
			{Type: "absent", Weight: 0},
			{Type: "late", Weight: 0.5},
		},
	}
	sheet, _ := s.CreateSessionSheet(r.Section.ID, "test", models.TimeUnitDay, 5, sheetStart(), cfg.ID)

	want := []string{"present", "absent", "late", ""}
	for click, w := range want {
		got, err := s.CycleMark(sheet.ID, st.ID, 0, cfg)
		assert.NoError(t, err)
		assert.Equalf(t, w, got, "click %d", click+1)
	}

	_, found := s.Mark(sheet.ID, st.ID, 0, cfg.ID)
	assert.False(t, found, "cell should be empty after a full cycle")
}

// Marks under different contexts at the same coordinate are independent
func TestMarksIndependentPerContext(t *testing.T) {
	s := testutil.NewStore(t)
	r := testutil.SeedRoster(t, s, 1)
	st := r.Students[0]

	attendance, ok := s.MarkingConfig("attendance")
	assert.True(t, ok)
	homework, ok := s.MarkingConfig("homework")
	assert.True(t, ok)

	sheet, _ := s.CreateSessionSheet(r.Section.ID, "grid", models.TimeUnitDay, 5, sheetStart(), attendance.ID)

	_, err := s.CycleMark(sheet.ID, st.ID, 2, attendance)
	assert.NoError(t, err)

	// The homework context still sees an empty cell at the same coordinate
	_, found := s.Mark(sheet.ID, st.ID, 2, homework.ID)
	assert.False(t, found)

	got, err := s.CycleMark(sheet.ID, st.ID, 2, homework)
	assert.NoError(t, err)
	assert.Equal(t, "hw_done", got)

	// And the attendance mark is unchanged by the homework cycle
	mark, found := s.Mark(sheet.ID, st.ID, 2, attendance.ID)
	assert.True(t, found)
	assert.Equal(t, "present", mark)
}

func TestSetMarkReplaceAndClear(t *testing.T) {
	s := testutil.NewStore(t)
	r := testutil.SeedRoster(t, s, 1)
	st := r.Students[0]

	sheet, _ := s.CreateSessionSheet(r.Section.ID, "grid", models.TimeUnitDay, 3, sheetStart(), "attendance")

	assert.NoError(t, s.SetMark(sheet.ID, st.ID, 1, "present", "attendance"))
	assert.NoError(t, s.SetMark(sheet.ID, st.ID, 1, "late", "attendance"))

	mark, found := s.Mark(sheet.ID, st.ID, 1, "attendance")
	assert.True(t, found)
	assert.Equal(t, "late", mark)

	assert.NoError(t, s.SetMark(sheet.ID, st.ID, 1, "", "attendance"))
	_, found = s.Mark(sheet.ID, st.ID, 1, "attendance")
	assert.False(t, found)
}

func TestSetMarkUnknownSheetIsNoop(t *testing.T) {
	s := testutil.NewStore(t)
	r := testutil.SeedRoster(t, s, 1)

	assert.NoError(t, s.SetMark(999, r.Students[0].ID, 0, "present", "attendance"))
}

func TestStudentSheetTotalWeights(t *testing.T) {
	s := testutil.NewStore(t)
	r := testutil.SeedRoster(t, s, 1)
	st := r.Students[0]

	cfg, _ := s.MarkingConfig("attendance")
	sheet, _ := s.CreateSessionSheet(r.Section.ID, "grid", models.TimeUnitDay, 5, sheetStart(), cfg.ID)

	assert.NoError(t, s.SetMark(sheet.ID, st.ID, 0, "present", cfg.ID)) // weight 1
	assert.NoError(t, s.SetMark(sheet.ID, st.ID, 1, "late", cfg.ID))    // weight 0.5
	assert.NoError(t, s.SetMark(sheet.ID, st.ID, 2, "absent", cfg.ID))  // weight 0

	assert.InDelta(t, 1.5, s.StudentSheetTotal(sheet.ID, st.ID, cfg), 1e-9)
}

// A mark whose type was later removed from the config totals as zero and is
// not deleted from the sheet
func TestOrphanedMarksTotalAsZero(t *testing.T) {
	s := testutil.NewStore(t)
	r := testutil.SeedRoster(t, s, 1)
	st := r.Students[0]

	cfg, _ := s.MarkingConfig("attendance")
	sheet, _ := s.CreateSessionSheet(r.Section.ID, "grid", models.TimeUnitDay, 5, sheetStart(), cfg.ID)

	assert.NoError(t, s.SetMark(sheet.ID, st.ID, 0, "present", cfg.ID))
	assert.NoError(t, s.SetMark(sheet.ID, st.ID, 1, "late", cfg.ID))

	// Remove "late" from the vocabulary
	trimmed := cfg
	trimmed.Marks = []models.MarkDefinition{cfg.Marks[0], cfg.Marks[1]} // present, absent
	assert.NoError(t, s.UpdateMarkingConfig(trimmed))

	updated, _ := s.MarkingConfig("attendance")

	// The stored mark survives the config edit...
	mark, found := s.Mark(sheet.ID, st.ID, 1, cfg.ID)
	assert.True(t, found)
	assert.Equal(t, "late", mark)

	// ...but contributes nothing to the total
	assert.InDelta(t, 1.0, s.StudentSheetTotal(sheet.ID, st.ID, updated), 1e-9)
}

func TestSessionSheetSnapshotIsolation(t *testing.T) {
	s := testutil.NewStore(t)
	r := testutil.SeedRoster(t, s, 1)

	sheet, _ := s.CreateSessionSheet(r.Section.ID, "grid", models.TimeUnitDay, 3, sheetStart(), "attendance")

	// Mutating a returned snapshot must not affect the stored sheet
	snap, _ := s.SessionSheet(sheet.ID)
	snap.Columns[0].Label = "tampered"
	snap.Marks = append(snap.Marks, models.SessionMark{StudentID: 1, Type: "present", Context: "attendance"})

	fresh, _ := s.SessionSheet(sheet.ID)
	assert.NotEqual(t, "tampered", fresh.Columns[0].Label)
	assert.Empty(t, fresh.Marks)
}
