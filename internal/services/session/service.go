package session

import (
	"fmt"
	"time"

	"github.com/masarhq/masar/internal/models"
	"github.com/masarhq/masar/internal/store"
)

// Service defines all session sheet and marking preset operations
type Service interface {
	// Read operations
	ListSheets(sectionID int64) ([]models.SessionSheet, error)
	GetSheet(id int64) (models.SessionSheet, error)
	GetMark(sheetID, studentID int64, column int, configID string) (string, bool, error)
	SheetTotal(sheetID, studentID int64, configID string) (float64, error)
	ListConfigs() []models.MarkingConfig
	GetConfig(id string) (models.MarkingConfig, error)

	// Write operations
	CreateSheet(req CreateSheetRequest) (models.SessionSheet, error)
	SetMark(sheetID, studentID int64, column int, markType, configID string) error
	CycleMark(sheetID, studentID int64, column int, configID string) (string, error)
	SaveConfig(cfg models.MarkingConfig) error
	ResetConfigs() error
}

// CreateSheetRequest encapsulates data for creating a session sheet
type CreateSheetRequest struct {
	SectionID       int64
	Name            string
	TimeUnit        models.TimeUnit
	Duration        int
	StartDate       time.Time
	MarkingConfigID string
}

// service implements Service interface
type service struct {
	store *store.Store
}

// NewService creates a new session service
func NewService(st *store.Store) Service {
	return &service{store: st}
}

// ListSheets retrieves a section's sheets, newest first
func (s *service) ListSheets(sectionID int64) ([]models.SessionSheet, error) {
	if _, ok := s.store.Section(sectionID); !ok {
		return nil, ErrSectionNotFound
	}
	return s.store.SessionsBySection(sectionID), nil
}

// GetSheet retrieves one sheet snapshot
func (s *service) GetSheet(id int64) (models.SessionSheet, error) {
	sheet, ok := s.store.SessionSheet(id)
	if !ok {
		return models.SessionSheet{}, ErrSheetNotFound
	}
	return sheet, nil
}

// GetMark retrieves the mark at a cell under one config's context
func (s *service) GetMark(sheetID, studentID int64, column int, configID string) (string, bool, error) {
	if _, ok := s.store.SessionSheet(sheetID); !ok {
		return "", false, ErrSheetNotFound
	}
	mark, found := s.store.Mark(sheetID, studentID, column, configID)
	return mark, found, nil
}

// SheetTotal sums a student's mark weights on a sheet under one config
func (s *service) SheetTotal(sheetID, studentID int64, configID string) (float64, error) {
	cfg, ok := s.store.MarkingConfig(configID)
	if !ok {
		return 0, ErrConfigNotFound
	}
	if _, ok := s.store.SessionSheet(sheetID); !ok {
		return 0, ErrSheetNotFound
	}
	return s.store.StudentSheetTotal(sheetID, studentID, cfg), nil
}

// ListConfigs retrieves every marking preset
func (s *service) ListConfigs() []models.MarkingConfig {
	return s.store.MarkingConfigs()
}

// GetConfig retrieves one marking preset
func (s *service) GetConfig(id string) (models.MarkingConfig, error) {
	cfg, ok := s.store.MarkingConfig(id)
	if !ok {
		return models.MarkingConfig{}, ErrConfigNotFound
	}
	return cfg, nil
}

// CreateSheet validates and creates a session sheet
func (s *service) CreateSheet(req CreateSheetRequest) (models.SessionSheet, error) {
	if req.Name == "" {
		return models.SessionSheet{}, ErrEmptyName
	}
	if !req.TimeUnit.Valid() {
		return models.SessionSheet{}, ErrInvalidTimeUnit
	}
	if req.Duration < models.MinSheetDuration || req.Duration > models.MaxSheetDuration {
		return models.SessionSheet{}, ErrInvalidDuration
	}
	if _, ok := s.store.Section(req.SectionID); !ok {
		return models.SessionSheet{}, ErrSectionNotFound
	}
	if _, ok := s.store.MarkingConfig(req.MarkingConfigID); !ok {
		return models.SessionSheet{}, ErrConfigNotFound
	}

	sheet, err := s.store.CreateSessionSheet(req.SectionID, req.Name, req.TimeUnit, req.Duration, req.StartDate, req.MarkingConfigID)
	if err != nil {
		return models.SessionSheet{}, fmt.Errorf("failed to create session sheet: %w", err)
	}
	return sheet, nil
}

// SetMark records or clears a cell value. A non-empty mark type must belong
// to the config's vocabulary.
func (s *service) SetMark(sheetID, studentID int64, column int, markType, configID string) error {
	cfg, ok := s.store.MarkingConfig(configID)
	if !ok {
		return ErrConfigNotFound
	}
	if _, ok := s.store.SessionSheet(sheetID); !ok {
		return ErrSheetNotFound
	}
	if markType != "" && !hasMarkType(cfg, markType) {
		return ErrInvalidMarkType
	}
	if err := s.store.SetMark(sheetID, studentID, column, markType, configID); err != nil {
		return fmt.Errorf("failed to set mark: %w", err)
	}
	return nil
}

// CycleMark advances a cell through the config's mark sequence and returns
// the new value ("" when the cell was cleared)
func (s *service) CycleMark(sheetID, studentID int64, column int, configID string) (string, error) {
	cfg, ok := s.store.MarkingConfig(configID)
	if !ok {
		return "", ErrConfigNotFound
	}
	if _, ok := s.store.SessionSheet(sheetID); !ok {
		return "", ErrSheetNotFound
	}
	next, err := s.store.CycleMark(sheetID, studentID, column, cfg)
	if err != nil {
		return "", fmt.Errorf("failed to cycle mark: %w", err)
	}
	return next, nil
}

// SaveConfig validates and upserts a marking preset. Already-recorded marks
// are never rewritten; types removed from the vocabulary become orphaned.
func (s *service) SaveConfig(cfg models.MarkingConfig) error {
	if cfg.ID == "" {
		return ErrEmptyConfigID
	}
	if cfg.Name == "" {
		return ErrEmptyName
	}
	if len(cfg.Marks) == 0 {
		return ErrNoMarks
	}
	if err := s.store.UpdateMarkingConfig(cfg); err != nil {
		return fmt.Errorf("failed to save marking config: %w", err)
	}
	return nil
}

// ResetConfigs restores the built-in presets, discarding custom ones
func (s *service) ResetConfigs() error {
	if err := s.store.ResetMarkingConfigs(); err != nil {
		return fmt.Errorf("failed to reset marking configs: %w", err)
	}
	return nil
}

// hasMarkType reports whether markType is in cfg's vocabulary
func hasMarkType(cfg models.MarkingConfig, markType string) bool {
	for _, m := range cfg.Marks {
		if m.Type == markType {
			return true
		}
	}
	return false
}
