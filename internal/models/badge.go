package models

// BadgeKind selects which student counter a badge threshold applies to
type BadgeKind string

const (
	BadgeKindTotalPoints BadgeKind = "total_points"
	BadgeKindHelpfulness BadgeKind = "helpfulness"
	BadgeKindLevel       BadgeKind = "level"
)

// Badge is a static achievement definition. Badges are never persisted:
// earned state is recomputed from the student's current counters on every
// read, so a badge reflects current state, not historical achievement.
type Badge struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Color       string    `json:"color"`
	Kind        BadgeKind `json:"-"`
	Threshold   int       `json:"-"`
}

// Earned evaluates the badge predicate against a student snapshot
func (b Badge) Earned(s Student) bool {
	switch b.Kind {
	case BadgeKindTotalPoints:
		return s.TotalPoints >= b.Threshold
	case BadgeKindHelpfulness:
		return s.HelpfulnessPoints >= b.Threshold
	case BadgeKindLevel:
		return s.AvatarLevel >= b.Threshold
	}
	return false
}

// EarnedBadge pairs a catalog badge with its evaluation for one student
type EarnedBadge struct {
	Badge  Badge `json:"badge"`
	Earned bool  `json:"earned"`
}

// BadgeCatalog is the fixed badge list evaluated for every student
var BadgeCatalog = []Badge{
	{
		ID:          "first_10",
		Name:        "Bright Start",
		Description: "Earn your first 10 points",
		Icon:        "star",
		Color:       "#FCD34D",
		Kind:        BadgeKindTotalPoints,
		Threshold:   10,
	},
	{
		ID:          "points_100",
		Name:        "Hard Worker",
		Description: "Reach 100 points",
		Icon:        "medal",
		Color:       "#60A5FA",
		Kind:        BadgeKindTotalPoints,
		Threshold:   100,
	},
	{
		ID:          "points_500",
		Name:        "Outstanding",
		Description: "Reach 500 points",
		Icon:        "trophy",
		Color:       "#A78BFA",
		Kind:        BadgeKindTotalPoints,
		Threshold:   500,
	},
	{
		ID:          "helpfulness_50",
		Name:        "Big Heart",
		Description: "50 helpfulness points",
		Icon:        "heart",
		Color:       "#34D399",
		Kind:        BadgeKindHelpfulness,
		Threshold:   50,
	},
	{
		ID:          "level_5",
		Name:        "Young Leader",
		Description: "Reach level 5",
		Icon:        "crown",
		Color:       "#F472B6",
		Kind:        BadgeKindLevel,
		Threshold:   5,
	},
}
