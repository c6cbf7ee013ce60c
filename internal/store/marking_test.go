package store_test

import (
	"testing"

	"github.com/masarhq/masar/internal/models"
	"github.com/masarhq/masar/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMarkingConfigsSeededWithDefaults(t *testing.T) {
	s := testutil.NewStore(t)

	configs := s.MarkingConfigs()
	assert.Len(t, configs, 2)

	attendance, ok := s.MarkingConfig("attendance")
	assert.True(t, ok)
	assert.Len(t, attendance.Marks, 4)

	_, ok = s.MarkingConfig("quiz")
	assert.False(t, ok)
}

func TestUpdateMarkingConfigUpsert(t *testing.T) {
	s := testutil.NewStore(t)

	custom := models.MarkingConfig{
		ID:       "quiz",
		Name:     "Quiz scores",
		MaxScore: 2,
		Marks: []models.MarkDefinition{
			{Type: "full", Label: "Full", Symbol: "A", Color: "#10B981", Weight: 2},
			{Type: "half", Label: "Half", Symbol: "B", Color: "#F59E0B", Weight: 1},
		},
	}
	assert.NoError(t, s.UpdateMarkingConfig(custom))
	assert.Len(t, s.MarkingConfigs(), 3)

	custom.Name = "Quiz"
	assert.NoError(t, s.UpdateMarkingConfig(custom))
	assert.Len(t, s.MarkingConfigs(), 3)

	got, ok := s.MarkingConfig("quiz")
	assert.True(t, ok)
	assert.Equal(t, "Quiz", got.Name)
}

// Reset replaces the entire preset collection, not just edited built-ins.
// A custom preset disappears too.
func TestResetMarkingConfigsIsGlobal(t *testing.T) {
	s := testutil.NewStore(t)

	assert.NoError(t, s.UpdateMarkingConfig(models.MarkingConfig{
		ID: "quiz", Name: "Quiz",
		Marks: []models.MarkDefinition{{Type: "full", Weight: 1}},
	}))

	// Mangle a built-in as well
	attendance, _ := s.MarkingConfig("attendance")
	attendance.Marks = attendance.Marks[:1]
	assert.NoError(t, s.UpdateMarkingConfig(attendance))

	assert.NoError(t, s.ResetMarkingConfigs())

	configs := s.MarkingConfigs()
	assert.Len(t, configs, 2)
	_, ok := s.MarkingConfig("quiz")
	assert.False(t, ok, "global reset discards custom presets")

	restored, _ := s.MarkingConfig("attendance")
	assert.Len(t, restored.Marks, 4)
}

func TestMarkingConfigSnapshotIsolation(t *testing.T) {
	s := testutil.NewStore(t)

	snap, _ := s.MarkingConfig("attendance")
	snap.Marks[0].Weight = 99

	fresh, _ := s.MarkingConfig("attendance")
	assert.Equal(t, 1.0, fresh.Marks[0].Weight)
}
