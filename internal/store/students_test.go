package store_test

import (
	"testing"

	"github.com/masarhq/masar/internal/models"
	"github.com/masarhq/masar/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestAddStudentDefaults(t *testing.T) {
	s := testutil.NewStore(t)
	r := testutil.SeedRoster(t, s, 0)

	st, err := s.AddStudent("Ali", models.GenderMale, r.Section.ID, r.Grade.ID)
	assert.NoError(t, err)

	assert.Equal(t, 1, st.AvatarLevel)
	assert.Equal(t, 0, st.TotalPoints)
	assert.Equal(t, 0, st.HelpfulnessPoints)
	assert.Equal(t, 0, st.RespectPoints)
	assert.Equal(t, 0, st.TeamworkPoints)
	assert.Equal(t, 0, st.ExcellencePoints)
	assert.Equal(t, r.Grade.ID, st.GradeID)
}

func TestStudentLookupMissing(t *testing.T) {
	s := testutil.NewStore(t)
	_, ok := s.Student(12345)
	assert.False(t, ok)
}

// TestDeleteStudentScrubsSessionMarks verifies the nested filter over every
// sheet: marks are embedded in sheets, not a collection of their own
func TestDeleteStudentScrubsSessionMarks(t *testing.T) {
	s := testutil.NewStore(t)
	r := testutil.SeedRoster(t, s, 2)
	victim, other := r.Students[0], r.Students[1]

	_, err := s.AddPoints(victim.ID, 10, models.CategoryHelpfulness, "")
	assert.NoError(t, err)
	assert.NoError(t, s.SaveLessonProgress(models.LessonProgress{
		StudentID: victim.ID, LessonID: 1,
		Participation: 4, Comprehension: 4, Excellence: 4, CalculatedPoints: 12,
	}))

	start := testutil.Clock()()
	sheet1, _ := s.CreateSessionSheet(r.Section.ID, "attendance", models.TimeUnitDay, 5, start, "attendance")
	sheet2, _ := s.CreateSessionSheet(r.Section.ID, "homework", models.TimeUnitDay, 5, start, "homework")

	assert.NoError(t, s.SetMark(sheet1.ID, victim.ID, 0, "present", "attendance"))
	assert.NoError(t, s.SetMark(sheet2.ID, victim.ID, 1, "hw_done", "homework"))
	assert.NoError(t, s.SetMark(sheet1.ID, other.ID, 0, "absent", "attendance"))

	assert.NoError(t, s.DeleteStudent(victim.ID))

	_, ok := s.Student(victim.ID)
	assert.False(t, ok)
	assert.Empty(t, s.Logs(victim.ID))
	assert.Empty(t, s.StudentProgress(victim.ID))

	// Victim's marks are gone from every sheet
	_, found := s.Mark(sheet1.ID, victim.ID, 0, "attendance")
	assert.False(t, found)
	_, found = s.Mark(sheet2.ID, victim.ID, 1, "homework")
	assert.False(t, found)

	// The other student's mark survives
	mark, found := s.Mark(sheet1.ID, other.ID, 0, "attendance")
	assert.True(t, found)
	assert.Equal(t, "absent", mark)
}
