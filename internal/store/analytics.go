package store

import (
	"math"
	"sort"

	"github.com/masarhq/masar/internal/models"
)

// Rank is a student's 1-based standing within their grade
type Rank struct {
	Rank  int `json:"rank"`
	Total int `json:"total"`
}

// BehaviorDistribution holds each category's share of all recognition
// points, as independently rounded integer percentages. The four values are
// not guaranteed to sum to exactly 100.
type BehaviorDistribution struct {
	Helpfulness int `json:"helpfulness"`
	Respect     int `json:"respect"`
	Teamwork    int `json:"teamwork"`
	Excellence  int `json:"excellence"`
}

// SectionStats summarizes one section
type SectionStats struct {
	ID            int64                `json:"id"`
	Name          string               `json:"name"`
	AveragePoints int                  `json:"averagePoints"`
	StudentCount  int                  `json:"studentCount"`
	Distribution  BehaviorDistribution `json:"distribution"`
}

// StudentStats summarizes one student's point state
type StudentStats struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	TotalPoints int            `json:"totalPoints"`
	Level       int            `json:"level"`
	Breakdown   map[string]int `json:"breakdown"`
}

// CalculateLevelProgress locates the band containing points and reports how
// far through it the total has advanced. The defensive fallback (level 10,
// fully complete) cannot trigger for clamped totals since the last band is
// effectively unbounded.
func (s *Store) CalculateLevelProgress(points int) models.LevelProgress {
	for _, b := range models.LevelThresholds {
		if points < b.Min || points > b.Max {
			continue
		}
		pct := float64(points-b.Min) / float64(b.Max-b.Min) * 100
		pct = math.Max(0, math.Min(100, pct))
		return models.LevelProgress{
			CurrentLevel:  b.Level,
			NextThreshold: b.Max + 1,
			Remaining:     b.Max + 1 - points,
			Percent:       pct,
		}
	}
	return models.LevelProgress{CurrentLevel: 10, NextThreshold: 99999, Remaining: 0, Percent: 100}
}

// StudentRank ranks a student within their grade's whole student population
// (not just their section) by total points descending. Ties keep insertion
// order (stable sort); an unknown student yields {0, 0}.
func (s *Store) StudentRank(studentID int64) Rank {
	student, ok := s.Student(studentID)
	if !ok {
		return Rank{}
	}

	var pool []models.Student
	for _, st := range s.students {
		if st.GradeID == student.GradeID {
			pool = append(pool, st)
		}
	}
	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].TotalPoints > pool[j].TotalPoints
	})

	for i, st := range pool {
		if st.ID == studentID {
			return Rank{Rank: i + 1, Total: len(pool)}
		}
	}
	return Rank{Total: len(pool)}
}

// TopStudents returns the highest-scoring students, all sections pooled when
// sectionID is zero. Ties keep insertion order.
func (s *Store) TopStudents(limit int, sectionID int64) []models.Student {
	var pool []models.Student
	if sectionID != 0 {
		pool = s.StudentsBySection(sectionID)
	} else {
		pool = s.AllStudents()
	}

	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].TotalPoints > pool[j].TotalPoints
	})
	if len(pool) > limit {
		pool = pool[:limit]
	}
	return pool
}

// Distribution sums the four category counters across the population (one
// section, or everyone when sectionID is zero) and expresses each as a
// rounded percentage of the grand total. A zero grand total is substituted
// with 1, yielding all zeros instead of dividing by zero.
func (s *Store) Distribution(sectionID int64) BehaviorDistribution {
	var pool []models.Student
	if sectionID != 0 {
		pool = s.StudentsBySection(sectionID)
	} else {
		pool = s.students
	}

	var help, respect, team, exc int
	for _, st := range pool {
		help += st.HelpfulnessPoints
		respect += st.RespectPoints
		team += st.TeamworkPoints
		exc += st.ExcellencePoints
	}

	total := help + respect + team + exc
	if total == 0 {
		total = 1
	}
	pct := func(n int) int {
		return int(math.Round(float64(n) / float64(total) * 100))
	}
	return BehaviorDistribution{
		Helpfulness: pct(help),
		Respect:     pct(respect),
		Teamwork:    pct(team),
		Excellence:  pct(exc),
	}
}

// SectionStatsFor summarizes a section. A section with no students returns
// zeroed stats, not an error; an unknown section returns false.
func (s *Store) SectionStatsFor(sectionID int64) (SectionStats, bool) {
	section, ok := s.Section(sectionID)
	if !ok {
		return SectionStats{}, false
	}

	stats := SectionStats{ID: sectionID, Name: section.Name}
	students := s.StudentsBySection(sectionID)
	if len(students) == 0 {
		return stats, true
	}

	sum := 0
	for _, st := range students {
		sum += st.TotalPoints
	}
	stats.AveragePoints = int(math.Round(float64(sum) / float64(len(students))))
	stats.StudentCount = len(students)
	stats.Distribution = s.Distribution(sectionID)
	return stats, true
}

// StudentStatsFor summarizes one student's points and category breakdown
func (s *Store) StudentStatsFor(studentID int64) (StudentStats, bool) {
	st, ok := s.Student(studentID)
	if !ok {
		return StudentStats{}, false
	}
	return StudentStats{
		ID:          st.ID,
		Name:        st.Name,
		TotalPoints: st.TotalPoints,
		Level:       st.AvatarLevel,
		Breakdown: map[string]int{
			"helpfulness": st.HelpfulnessPoints,
			"respect":     st.RespectPoints,
			"teamwork":    st.TeamworkPoints,
			"excellence":  st.ExcellencePoints,
		},
	}, true
}

// ClassAveragePoints returns the rounded mean of total points across a
// grade's students, or zero for an empty grade
func (s *Store) ClassAveragePoints(gradeID int64) int {
	var sum, n int
	for _, st := range s.students {
		if st.GradeID == gradeID {
			sum += st.TotalPoints
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return int(math.Round(float64(sum) / float64(n)))
}

// StudentBadges evaluates the full badge catalog against a student's current
// counters. Earned reflects current state only; nothing is persisted and a
// badge "un-earns" if the counters later drop below its threshold.
func (s *Store) StudentBadges(studentID int64) []models.EarnedBadge {
	st, ok := s.Student(studentID)
	if !ok {
		return nil
	}
	out := make([]models.EarnedBadge, 0, len(models.BadgeCatalog))
	for _, b := range models.BadgeCatalog {
		out = append(out, models.EarnedBadge{Badge: b, Earned: b.Earned(st)})
	}
	return out
}
