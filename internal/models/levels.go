package models

// LevelBand maps a contiguous range of total points to an avatar level.
// Bands are non-overlapping and cover 0..infinity (the last band's Max acts
// as an open upper bound).
type LevelBand struct {
	Level int
	Min   int
	Max   int
}

// LevelThresholds is the fixed level ladder
var LevelThresholds = []LevelBand{
	{Level: 1, Min: 0, Max: 50},
	{Level: 2, Min: 51, Max: 150},
	{Level: 3, Min: 151, Max: 300},
	{Level: 4, Min: 301, Max: 500},
	{Level: 5, Min: 501, Max: 750},
	{Level: 6, Min: 751, Max: 1050},
	{Level: 7, Min: 1051, Max: 1400},
	{Level: 8, Min: 1401, Max: 1800},
	{Level: 9, Min: 1801, Max: 2250},
	{Level: 10, Min: 2251, Max: 99999},
}

// LevelForPoints returns the level whose band contains points.
// Falls back to the given current level if no band matches, which cannot
// happen for non-negative clamped totals.
func LevelForPoints(points, current int) int {
	for _, b := range LevelThresholds {
		if points >= b.Min && points <= b.Max {
			return b.Level
		}
	}
	return current
}

// LevelProgress describes how far a point total has advanced through its band
type LevelProgress struct {
	CurrentLevel  int     `json:"currentLevel"`
	NextThreshold int     `json:"nextThreshold"`
	Remaining     int     `json:"remaining"`
	Percent       float64 `json:"percent"`
}
