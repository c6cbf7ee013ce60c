package store_test

import (
	"testing"
	"time"

	"github.com/masarhq/masar/internal/models"
	"github.com/masarhq/masar/internal/storage"
	"github.com/masarhq/masar/internal/store"
	"github.com/masarhq/masar/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every mutation writes through to the blob store, so a second store built
// over the same blobs must reproduce an identical snapshot, nested columns
// and marks included
func TestReloadReproducesSnapshot(t *testing.T) {
	blobs := storage.NewMemoryStore()
	s := testutil.NewStoreWithBlobs(t, blobs)
	r := testutil.SeedRoster(t, s, 3)

	_, err := s.AddPoints(r.Students[0].ID, 25, models.CategoryHelpfulness, "peer tutoring")
	require.NoError(t, err)
	_, err = s.AddPoints(r.Students[1].ID, -5, models.CategoryDeduction, "")
	require.NoError(t, err)

	lessons, err := s.AddLessons([]models.Lesson{
		{UnitName: "Unit 1", LessonNumber: 1, LessonName: "Intro"},
	})
	require.NoError(t, err)
	require.NoError(t, s.SaveLessonProgress(models.LessonProgress{
		StudentID: r.Students[2].ID, LessonID: lessons[0].ID, CalculatedPoints: 9,
	}))

	cfg, ok := s.MarkingConfig("attendance")
	require.True(t, ok)
	sheet, err := s.CreateSessionSheet(r.Section.ID, "Week 1", models.TimeUnitDay, 5, sheetStart(), cfg.ID)
	require.NoError(t, err)
	_, err = s.CycleMark(sheet.ID, r.Students[0].ID, 2, cfg)
	require.NoError(t, err)
	require.NoError(t, s.SetMark(sheet.ID, r.Students[1].ID, 4, "late", cfg.ID))

	require.NoError(t, s.UpdateTeacherProfile("Ms. Rania", "Science"))
	require.NoError(t, s.SaveReportTemplate(models.ReportTemplate{
		ID: "weekly", Name: "Weekly summary", IsDefault: true,
	}))

	reloaded, err := store.New(blobs)
	require.NoError(t, err)

	assert.Equal(t, s.Grades(), reloaded.Grades())
	assert.Equal(t, s.AllSections(), reloaded.AllSections())
	assert.Equal(t, s.AllStudents(), reloaded.AllStudents())
	assert.Equal(t, s.AllLessons(), reloaded.AllLessons())
	assert.Equal(t, s.MarkingConfigs(), reloaded.MarkingConfigs())
	assert.Equal(t, s.TeacherProfile(), reloaded.TeacherProfile())
	assert.Equal(t, s.ReportTemplates(), reloaded.ReportTemplates())

	for _, st := range r.Students {
		assert.Equal(t, s.Logs(st.ID), reloaded.Logs(st.ID))
		assert.Equal(t, s.StudentProgress(st.ID), reloaded.StudentProgress(st.ID))
	}

	before, ok := s.SessionSheet(sheet.ID)
	require.True(t, ok)
	after, ok := reloaded.SessionSheet(sheet.ID)
	require.True(t, ok)
	assert.Equal(t, before.Columns, after.Columns)
	assert.Equal(t, before.Marks, after.Marks)
}

// Ids are milliseconds since the epoch with a monotonic bump, so entities
// created inside the same millisecond still get distinct ids
func TestNextIDMonotonicWithinSameMillisecond(t *testing.T) {
	frozen := sheetStart()
	s, err := store.New(storage.NewMemoryStore(), store.WithClock(func() time.Time { return frozen }))
	require.NoError(t, err)

	g, err := s.AddGrade("Grade 1", "#FFE5E5", "book")
	require.NoError(t, err)
	sec, err := s.AddSection(g.ID, "1-A")
	require.NoError(t, err)
	st, err := s.AddStudent("Sami", models.GenderMale, sec.ID, g.ID)
	require.NoError(t, err)

	assert.Greater(t, sec.ID, g.ID)
	assert.Greater(t, st.ID, sec.ID)
}
