package store_test

import (
	"testing"

	"github.com/masarhq/masar/internal/models"
	"github.com/masarhq/masar/internal/store"
	"github.com/masarhq/masar/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCalculateLevelProgress(t *testing.T) {
	s := testutil.NewStore(t)

	p := s.CalculateLevelProgress(0)
	assert.Equal(t, 1, p.CurrentLevel)
	assert.Equal(t, 51, p.NextThreshold)
	assert.Equal(t, 51, p.Remaining)
	assert.Equal(t, 0.0, p.Percent)

	p = s.CalculateLevelProgress(100)
	assert.Equal(t, 2, p.CurrentLevel)
	assert.Equal(t, 151, p.NextThreshold)
	assert.Equal(t, 51, p.Remaining)
	assert.InDelta(t, 49.49, p.Percent, 0.01) // (100-51)/(150-51)*100

	p = s.CalculateLevelProgress(50)
	assert.Equal(t, 1, p.CurrentLevel)
	assert.Equal(t, 100.0, p.Percent)

	p = s.CalculateLevelProgress(3000)
	assert.Equal(t, 10, p.CurrentLevel)
}

// Rank is computed within the student's grade, not their section
func TestStudentRankGradeScoped(t *testing.T) {
	s := testutil.NewStore(t)
	r := testutil.SeedRoster(t, s, 2)

	secB, _ := s.AddSection(r.Grade.ID, "3-B")
	rival, _ := s.AddStudent("Rival", models.GenderFemale, secB.ID, r.Grade.ID)

	otherGrade, _ := s.AddGrade("Grade 4", "#E5FFE5", "star")
	otherSec, _ := s.AddSection(otherGrade.ID, "4-A")
	champion, _ := s.AddStudent("Champion", models.GenderMale, otherSec.ID, otherGrade.ID)

	_, _ = s.AddPoints(r.Students[0].ID, 30, models.CategoryRespect, "")
	_, _ = s.AddPoints(rival.ID, 50, models.CategoryRespect, "")
	_, _ = s.AddPoints(champion.ID, 900, models.CategoryRespect, "")

	rank := s.StudentRank(r.Students[0].ID)
	assert.Equal(t, 2, rank.Rank) // rival in the sibling section outranks them
	assert.Equal(t, 3, rank.Total)

	rank = s.StudentRank(rival.ID)
	assert.Equal(t, 1, rank.Rank)

	// Champion's 900 points in another grade never enter this pool
	rank = s.StudentRank(champion.ID)
	assert.Equal(t, 1, rank.Rank)
	assert.Equal(t, 1, rank.Total)
}

func TestStudentRankUnknown(t *testing.T) {
	s := testutil.NewStore(t)
	assert.Equal(t, 0, s.StudentRank(999).Rank)
	assert.Equal(t, 0, s.StudentRank(999).Total)
}

// Points [50,10,80,80,30]: top 3 must be the two 80s then the 50, with ties
// holding insertion order
func TestTopStudents(t *testing.T) {
	s := testutil.NewStore(t)
	r := testutil.SeedRoster(t, s, 5)

	points := []int{50, 10, 80, 80, 30}
	for i, p := range points {
		_, err := s.AddPoints(r.Students[i].ID, p, models.CategoryExcellence, "")
		assert.NoError(t, err)
	}

	top := s.TopStudents(3, 0)
	assert.Len(t, top, 3)
	assert.Equal(t, 80, top[0].TotalPoints)
	assert.Equal(t, 80, top[1].TotalPoints)
	assert.Equal(t, 50, top[2].TotalPoints)

	// Stable tie order: the 80 inserted first comes first
	assert.Equal(t, r.Students[2].ID, top[0].ID)
	assert.Equal(t, r.Students[3].ID, top[1].ID)
}

func TestTopStudentsSectionScoped(t *testing.T) {
	s := testutil.NewStore(t)
	r := testutil.SeedRoster(t, s, 2)

	secB, _ := s.AddSection(r.Grade.ID, "3-B")
	best, _ := s.AddStudent("Best", models.GenderFemale, secB.ID, r.Grade.ID)
	_, _ = s.AddPoints(best.ID, 500, models.CategoryExcellence, "")
	_, _ = s.AddPoints(r.Students[0].ID, 10, models.CategoryExcellence, "")

	top := s.TopStudents(5, r.Section.ID)
	assert.Len(t, top, 2)
	assert.Equal(t, r.Students[0].ID, top[0].ID)
}

func TestDistribution(t *testing.T) {
	s := testutil.NewStore(t)
	r := testutil.SeedRoster(t, s, 2)

	_, _ = s.AddPoints(r.Students[0].ID, 30, models.CategoryHelpfulness, "")
	_, _ = s.AddPoints(r.Students[0].ID, 20, models.CategoryRespect, "")
	_, _ = s.AddPoints(r.Students[1].ID, 30, models.CategoryTeamwork, "")
	_, _ = s.AddPoints(r.Students[1].ID, 20, models.CategoryExcellence, "")

	d := s.Distribution(r.Section.ID)
	assert.Equal(t, 30, d.Helpfulness)
	assert.Equal(t, 20, d.Respect)
	assert.Equal(t, 30, d.Teamwork)
	assert.Equal(t, 20, d.Excellence)
}

// Independently rounded percentages may not sum to exactly 100; they must
// stay within a few points of it
func TestDistributionRoundingDrift(t *testing.T) {
	s := testutil.NewStore(t)
	r := testutil.SeedRoster(t, s, 1)

	_, _ = s.AddPoints(r.Students[0].ID, 1, models.CategoryHelpfulness, "")
	_, _ = s.AddPoints(r.Students[0].ID, 1, models.CategoryRespect, "")
	_, _ = s.AddPoints(r.Students[0].ID, 1, models.CategoryTeamwork, "")

	d := s.Distribution(0)
	sum := d.Helpfulness + d.Respect + d.Teamwork + d.Excellence
	assert.InDelta(t, 100, sum, 3)
}

func TestDistributionZeroPointsIsAllZeros(t *testing.T) {
	s := testutil.NewStore(t)
	testutil.SeedRoster(t, s, 3)

	d := s.Distribution(0)
	assert.Equal(t, store.BehaviorDistribution{}, d)
}

func TestSectionStats(t *testing.T) {
	s := testutil.NewStore(t)
	r := testutil.SeedRoster(t, s, 2)

	_, _ = s.AddPoints(r.Students[0].ID, 10, models.CategoryHelpfulness, "")
	_, _ = s.AddPoints(r.Students[1].ID, 15, models.CategoryRespect, "")

	stats, ok := s.SectionStatsFor(r.Section.ID)
	assert.True(t, ok)
	assert.Equal(t, 13, stats.AveragePoints) // round(12.5)
	assert.Equal(t, 2, stats.StudentCount)
	assert.Equal(t, "3-A", stats.Name)
}

func TestSectionStatsEmptySection(t *testing.T) {
	s := testutil.NewStore(t)
	r := testutil.SeedRoster(t, s, 0)

	stats, ok := s.SectionStatsFor(r.Section.ID)
	assert.True(t, ok)
	assert.Equal(t, 0, stats.AveragePoints)
	assert.Equal(t, 0, stats.StudentCount)
}

func TestSectionStatsUnknownSection(t *testing.T) {
	s := testutil.NewStore(t)
	_, ok := s.SectionStatsFor(777)
	assert.False(t, ok)
}

func TestClassAveragePoints(t *testing.T) {
	s := testutil.NewStore(t)
	r := testutil.SeedRoster(t, s, 2)

	assert.Equal(t, 0, s.ClassAveragePoints(999)) // empty grade

	_, _ = s.AddPoints(r.Students[0].ID, 10, models.CategoryRespect, "")
	_, _ = s.AddPoints(r.Students[1].ID, 21, models.CategoryRespect, "")
	assert.Equal(t, 16, s.ClassAveragePoints(r.Grade.ID)) // round(15.5)
}

func TestStudentBadges(t *testing.T) {
	s := testutil.NewStore(t)
	r := testutil.SeedRoster(t, s, 1)
	st := r.Students[0]

	badges := s.StudentBadges(st.ID)
	assert.Len(t, badges, len(models.BadgeCatalog))
	for _, b := range badges {
		assert.False(t, b.Earned, "fresh student should have no badges")
	}

	_, err := s.AddPoints(st.ID, 120, models.CategoryHelpfulness, "")
	assert.NoError(t, err)

	earned := map[string]bool{}
	for _, b := range s.StudentBadges(st.ID) {
		earned[b.Badge.ID] = b.Earned
	}
	assert.True(t, earned["first_10"])
	assert.True(t, earned["points_100"])
	assert.True(t, earned["helpfulness_50"])
	assert.False(t, earned["points_500"])
	assert.False(t, earned["level_5"])
}

func TestStudentStats(t *testing.T) {
	s := testutil.NewStore(t)
	r := testutil.SeedRoster(t, s, 1)

	_, _ = s.AddPoints(r.Students[0].ID, 7, models.CategoryTeamwork, "")

	stats, ok := s.StudentStatsFor(r.Students[0].ID)
	assert.True(t, ok)
	assert.Equal(t, 7, stats.TotalPoints)
	assert.Equal(t, 7, stats.Breakdown["teamwork"])
	assert.Equal(t, 0, stats.Breakdown["respect"])

	_, ok = s.StudentStatsFor(4242)
	assert.False(t, ok)
}
