package models

import "time"

// TimeUnit is the granularity of session sheet columns
type TimeUnit string

const (
	TimeUnitDay   TimeUnit = "day"
	TimeUnitWeek  TimeUnit = "week"
	TimeUnitMonth TimeUnit = "month"
)

// Valid reports whether u is a recognized time unit
func (u TimeUnit) Valid() bool {
	return u == TimeUnitDay || u == TimeUnitWeek || u == TimeUnitMonth
}

// Session sheet duration bounds (column count)
const (
	MinSheetDuration = 1
	MaxSheetDuration = 55
)

// SessionColumn is one pre-generated column of a session sheet.
// Columns are generated once at sheet creation and never change.
type SessionColumn struct {
	Index int    `json:"index"`
	Label string `json:"label"`
	Date  string `json:"date,omitempty"`
}

// SessionMark is one recorded cell value on a session sheet grid.
// The composite key is (StudentID, ColumnIndex, Context): the context is the
// marking config id the mark was recorded under, so the same cell coordinate
// can hold independent values per vocabulary (attendance vs homework).
type SessionMark struct {
	StudentID   int64  `json:"student_id"`
	ColumnIndex int    `json:"column_index"`
	Type        string `json:"type"`
	Context     string `json:"context"`
}

// SessionSheet is a generated grid: rows are the owning section's current
// student list (not snapshotted), columns a fixed sequence of time periods.
type SessionSheet struct {
	ID              int64           `json:"id"`
	SectionID       int64           `json:"section_id"`
	Name            string          `json:"name"`
	TimeUnit        TimeUnit        `json:"time_unit"`
	Duration        int             `json:"duration"`
	StartDate       string          `json:"start_date"`
	MarkingConfigID string          `json:"marking_config_id"`
	Columns         []SessionColumn `json:"columns"`
	Marks           []SessionMark   `json:"marks"`
	CreatedAt       time.Time       `json:"created_at"`
}
