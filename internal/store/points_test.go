package store_test

import (
	"testing"

	"github.com/masarhq/masar/internal/models"
	"github.com/masarhq/masar/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestAddPointsUpdatesTotalsAndLevel(t *testing.T) {
	s := testutil.NewStore(t)
	r := testutil.SeedRoster(t, s, 1)
	st := r.Students[0]

	updated, err := s.AddPoints(st.ID, 60, models.CategoryHelpfulness, "helped a classmate")
	assert.NoError(t, err)
	assert.NotNil(t, updated)

	assert.Equal(t, 60, updated.TotalPoints)
	assert.Equal(t, 60, updated.HelpfulnessPoints)
	assert.Equal(t, 2, updated.AvatarLevel) // 60 lands in band 51..150

	logs := s.Logs(st.ID)
	assert.Len(t, logs, 1)
	assert.Equal(t, 60, logs[0].Points)
	assert.Equal(t, "helped a classmate", logs[0].Reason)
}

// Total points floor at zero; the log still records the raw delta
func TestAddPointsClampsTotalAtZero(t *testing.T) {
	s := testutil.NewStore(t)
	r := testutil.SeedRoster(t, s, 1)
	st := r.Students[0]

	_, err := s.AddPoints(st.ID, 5, models.CategoryRespect, "")
	assert.NoError(t, err)
	updated, err := s.AddPoints(st.ID, -50, models.CategoryDeduction, "")
	assert.NoError(t, err)

	assert.Equal(t, 0, updated.TotalPoints)
	assert.Equal(t, 1, updated.AvatarLevel)

	logs := s.Logs(st.ID)
	assert.Len(t, logs, 2)
	assert.Equal(t, -50, logs[0].Points) // newest first, raw value preserved
}

// Category counters are never floor-clamped the way total points are.
func TestCategoryCountersGoNegative(t *testing.T) {
	s := testutil.NewStore(t)
	r := testutil.SeedRoster(t, s, 1)
	st := r.Students[0]

	updated, err := s.AddPoints(st.ID, -10, models.CategoryTeamwork, "")
	assert.NoError(t, err)

	assert.Equal(t, 0, updated.TotalPoints)
	assert.Equal(t, -10, updated.TeamworkPoints)
}

func TestLessonAndDeductionBypassCounters(t *testing.T) {
	s := testutil.NewStore(t)
	r := testutil.SeedRoster(t, s, 1)
	st := r.Students[0]

	_, err := s.AddPoints(st.ID, 15, models.CategoryLesson, "")
	assert.NoError(t, err)
	updated, err := s.AddPoints(st.ID, -3, models.CategoryDeduction, "")
	assert.NoError(t, err)

	assert.Equal(t, 12, updated.TotalPoints)
	assert.Equal(t, 0, updated.HelpfulnessPoints)
	assert.Equal(t, 0, updated.RespectPoints)
	assert.Equal(t, 0, updated.TeamworkPoints)
	assert.Equal(t, 0, updated.ExcellencePoints)
}

func TestAddPointsDefaultReason(t *testing.T) {
	s := testutil.NewStore(t)
	r := testutil.SeedRoster(t, s, 1)

	_, err := s.AddPoints(r.Students[0].ID, 2, models.CategoryExcellence, "")
	assert.NoError(t, err)

	logs := s.Logs(r.Students[0].ID)
	assert.Equal(t, models.CategoryExcellence.DefaultReason(), logs[0].Reason)
}

func TestAddPointsUnknownStudentIsNoop(t *testing.T) {
	s := testutil.NewStore(t)
	testutil.SeedRoster(t, s, 1)

	updated, err := s.AddPoints(424242, 10, models.CategoryRespect, "")
	assert.NoError(t, err)
	assert.Nil(t, updated)
	assert.Empty(t, s.Logs(424242))
}

// Repeated negative deltas can never drive a total below zero
func TestTotalPointsNeverNegative(t *testing.T) {
	s := testutil.NewStore(t)
	r := testutil.SeedRoster(t, s, 1)
	st := r.Students[0]

	deltas := []int{-5, 10, -100, 3, -1, -1, -1, 2, -50}
	for _, d := range deltas {
		updated, err := s.AddPoints(st.ID, d, models.CategoryDeduction, "")
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, updated.TotalPoints, 0)
	}
}

func TestBulkAddPoints(t *testing.T) {
	s := testutil.NewStore(t)
	r := testutil.SeedRoster(t, s, 3)

	outsider, _ := s.AddGrade("Grade 4", "#E5FFE5", "star")
	outsiderSec, _ := s.AddSection(outsider.ID, "4-A")
	outsiderStudent, _ := s.AddStudent("Zane", models.GenderMale, outsiderSec.ID, outsider.ID)

	assert.NoError(t, s.BulkAddPoints(r.Section.ID, 5, models.CategoryTeamwork, "group project"))

	for _, st := range r.Students {
		got, _ := s.Student(st.ID)
		assert.Equal(t, 5, got.TotalPoints)
		assert.Equal(t, 5, got.TeamworkPoints)
		assert.Len(t, s.Logs(st.ID), 1) // one log row per student
	}

	got, _ := s.Student(outsiderStudent.ID)
	assert.Equal(t, 0, got.TotalPoints)
}

func TestLogsNewestFirst(t *testing.T) {
	s := testutil.NewStore(t)
	r := testutil.SeedRoster(t, s, 1)
	st := r.Students[0]

	for i, reason := range []string{"first", "second", "third"} {
		_, err := s.AddPoints(st.ID, i+1, models.CategoryRespect, reason)
		assert.NoError(t, err)
	}

	logs := s.Logs(st.ID)
	assert.Len(t, logs, 3)
	assert.Equal(t, "third", logs[0].Reason)
	assert.Equal(t, "first", logs[2].Reason)
}
