package models

// MarkDefinition is one entry in a marking vocabulary.
// Cells cycle through definitions in slice order; Weight only affects
// scoring totals, never the cycle order.
type MarkDefinition struct {
	Type   string  `json:"type"`
	Label  string  `json:"label"`
	Symbol string  `json:"symbol"`
	Color  string  `json:"color"`
	Weight float64 `json:"weight"`
}

// MarkingConfig is a named, ordered vocabulary of mark types (a preset).
// Unlike the other entities it is identified by string id.
type MarkingConfig struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Marks    []MarkDefinition `json:"marks"`
	MaxScore float64          `json:"max_score"`
}

// NextMark returns the mark type that follows current in the cycle:
// empty advances to the first definition, the last definition wraps back to
// empty (not to the first). A type no longer present in the config is
// treated as empty, so orphaned marks re-enter the cycle at the start.
func (c MarkingConfig) NextMark(current string) string {
	if len(c.Marks) == 0 {
		return ""
	}
	if current == "" {
		return c.Marks[0].Type
	}
	for i, m := range c.Marks {
		if m.Type != current {
			continue
		}
		if i == len(c.Marks)-1 {
			return ""
		}
		return c.Marks[i+1].Type
	}
	return c.Marks[0].Type
}

// Weight returns the scoring weight of a mark type, or 0 for types absent
// from the config (orphaned marks total as if the cell were empty)
func (c MarkingConfig) Weight(markType string) float64 {
	for _, m := range c.Marks {
		if m.Type == markType {
			return m.Weight
		}
	}
	return 0
}

// DefaultMarkingPresets returns the built-in marking vocabularies used to
// seed a fresh store and to restore on reset
func DefaultMarkingPresets() []MarkingConfig {
	return []MarkingConfig{
		{
			ID:       "attendance",
			Name:     "Attendance",
			MaxScore: 1,
			Marks: []MarkDefinition{
				{Type: "present", Label: "Present", Symbol: "✓", Color: "#10B981", Weight: 1},
				{Type: "absent", Label: "Absent", Symbol: "✗", Color: "#EF4444", Weight: 0},
				{Type: "late", Label: "Late", Symbol: "⏰", Color: "#F59E0B", Weight: 0.5},
				{Type: "excused", Label: "Excused", Symbol: "📝", Color: "#3B82F6", Weight: 0},
			},
		},
		{
			ID:       "homework",
			Name:     "Homework",
			MaxScore: 1,
			Marks: []MarkDefinition{
				{Type: "hw_done", Label: "Done", Symbol: "⭐", Color: "#10B981", Weight: 1},
				{Type: "hw_late", Label: "Incomplete", Symbol: "⚠️", Color: "#F59E0B", Weight: 0.5},
				{Type: "hw_miss", Label: "Missing", Symbol: "❌", Color: "#EF4444", Weight: 0},
			},
		},
	}
}
