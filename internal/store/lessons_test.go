package store_test

import (
	"testing"
	"time"

	"github.com/masarhq/masar/internal/models"
	"github.com/masarhq/masar/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestAddLessonsBulkUniqueIDs(t *testing.T) {
	s := testutil.NewStore(t)

	batch := []models.Lesson{
		{UnitName: "Unit 1", LessonNumber: 1, LessonName: "Intro"},
		{UnitName: "Unit 1", LessonNumber: 2, LessonName: "Basics"},
		{UnitName: "Unit 2", LessonNumber: 1, LessonName: "Review"},
	}
	added, err := s.AddLessons(batch)
	assert.NoError(t, err)
	assert.Len(t, added, 3)

	seen := map[int64]bool{}
	for _, l := range added {
		assert.False(t, seen[l.ID], "bulk import must not reuse ids")
		seen[l.ID] = true
	}

	assert.Len(t, s.AllLessons(), 3)

	info, ok := s.LessonInfo(added[1].ID)
	assert.True(t, ok)
	assert.Equal(t, "Basics", info.LessonName)

	_, ok = s.LessonInfo(999)
	assert.False(t, ok)
}

// Saving progress awards the calculated points under the lesson category,
// which bypasses the four counters
func TestSaveLessonProgressAwardsPoints(t *testing.T) {
	s := testutil.NewStore(t)
	r := testutil.SeedRoster(t, s, 1)
	st := r.Students[0]

	err := s.SaveLessonProgress(models.LessonProgress{
		StudentID:        st.ID,
		LessonID:         1,
		Participation:    5,
		Comprehension:    4,
		Excellence:       3,
		Notes:            "good session",
		CalculatedPoints: 12,
	})
	assert.NoError(t, err)

	got, _ := s.Student(st.ID)
	assert.Equal(t, 12, got.TotalPoints)
	assert.Equal(t, 0, got.ExcellencePoints)

	logs := s.Logs(st.ID)
	assert.Len(t, logs, 1)
	assert.Equal(t, models.CategoryLesson, logs[0].Category)
	assert.Equal(t, 12, logs[0].Points)
}

// Progress entries append; reads return the most recent by date
func TestStudentLessonProgressLatestByDate(t *testing.T) {
	s := testutil.NewStore(t)
	r := testutil.SeedRoster(t, s, 1)
	st := r.Students[0]

	early := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)
	late := time.Date(2025, 9, 8, 10, 0, 0, 0, time.UTC)

	assert.NoError(t, s.SaveLessonProgress(models.LessonProgress{
		StudentID: st.ID, LessonID: 7, Notes: "first attempt",
		CalculatedPoints: 6, Date: early,
	}))
	assert.NoError(t, s.SaveLessonProgress(models.LessonProgress{
		StudentID: st.ID, LessonID: 7, Notes: "second attempt",
		CalculatedPoints: 12, Date: late,
	}))

	got, ok := s.StudentLessonProgress(st.ID, 7)
	assert.True(t, ok)
	assert.Equal(t, "second attempt", got.Notes)

	// Both entries remain in history
	assert.Len(t, s.StudentProgress(st.ID), 2)

	_, ok = s.StudentLessonProgress(st.ID, 8)
	assert.False(t, ok)
}
