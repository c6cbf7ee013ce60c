package store

import "github.com/masarhq/masar/internal/models"

// MarkingConfigs returns every marking preset
func (s *Store) MarkingConfigs() []models.MarkingConfig {
	out := make([]models.MarkingConfig, len(s.presets))
	for i, p := range s.presets {
		out[i] = clonePreset(p)
	}
	return out
}

// MarkingConfig returns a preset by string id
func (s *Store) MarkingConfig(id string) (models.MarkingConfig, bool) {
	for _, p := range s.presets {
		if p.ID == id {
			return clonePreset(p), true
		}
	}
	return models.MarkingConfig{}, false
}

// UpdateMarkingConfig replaces the preset with cfg's id, or appends cfg as a
// new preset. Editing a vocabulary never rewrites marks already recorded on
// sheets: marks whose type disappears from the config become orphaned and
// total as zero.
func (s *Store) UpdateMarkingConfig(cfg models.MarkingConfig) error {
	for i := range s.presets {
		if s.presets[i].ID == cfg.ID {
			s.presets[i] = cfg
			return s.persist()
		}
	}
	s.presets = append(s.presets, cfg)
	return s.persist()
}

// ResetMarkingConfigs replaces the entire preset collection with the
// built-in defaults. This is a global reset: custom presets are discarded
// too, not just edits to the built-in ones.
func (s *Store) ResetMarkingConfigs() error {
	s.presets = models.DefaultMarkingPresets()
	return s.persist()
}

func clonePreset(p models.MarkingConfig) models.MarkingConfig {
	out := p
	out.Marks = make([]models.MarkDefinition, len(p.Marks))
	copy(out.Marks, p.Marks)
	return out
}
