// Package store implements the classroom data store: in-memory entity
// collections with cascade-aware mutations, derived analytics, and the
// session sheet mark grid. Every mutation ends with a full persist of all
// collections to the blob store, so durable state is always either the old
// snapshot or the new one, never a mix.
package store

import (
	"log/slog"
	"time"

	"github.com/masarhq/masar/internal/models"
	"github.com/masarhq/masar/internal/storage"
)

// Blob keys, one per persisted collection
const (
	keyGrades          = "masar_grades_v2"
	keySections        = "masar_sections_v2"
	keyStudents        = "masar_students_v2"
	keyLogs            = "masar_logs_v2"
	keyLessonsProgress = "masar_lessons_progress_v2"
	keyLessons         = "masar_lesson_definitions_v2"
	keySessions        = "masar_sessions_v2"
	keyMarkingPresets  = "masar_marking_presets_v2"
	keyReportTemplates = "masar_report_templates_v2"
	keyTeacherProfile  = "masar_teacher_profile_v2"
)

var collectionKeys = []string{
	keyGrades, keySections, keyStudents, keyLogs, keyLessonsProgress,
	keyLessons, keySessions, keyMarkingPresets, keyReportTemplates,
	keyTeacherProfile,
}

// Store owns every entity collection. It is single-writer and synchronous:
// callers pass primitive arguments in and get snapshot copies back, never
// references into the collections.
type Store struct {
	blobs storage.BlobStore

	grades    []models.Grade
	sections  []models.Section
	students  []models.Student
	logs      []models.RecognitionLog
	progress  []models.LessonProgress
	lessons   []models.Lesson
	sessions  []models.SessionSheet
	presets   []models.MarkingConfig
	templates []models.ReportTemplate
	profile   models.TeacherProfile

	now    func() time.Time
	lastID int64
}

// Option configures Store construction
type Option func(*Store)

// WithClock overrides the wall clock, used by tests for deterministic ids
// and dates
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New loads every collection from the blob store, substituting empty
// defaults for keys that have never been written. Marking presets fall back
// to the built-in vocabularies.
func New(blobs storage.BlobStore, opts ...Option) (*Store, error) {
	s := &Store{
		blobs:   blobs,
		now:     time.Now,
		profile: models.DefaultTeacherProfile(),
	}
	for _, opt := range opts {
		opt(s)
	}

	loads := []struct {
		key  string
		dest any
	}{
		{keyGrades, &s.grades},
		{keySections, &s.sections},
		{keyStudents, &s.students},
		{keyLogs, &s.logs},
		{keyLessonsProgress, &s.progress},
		{keyLessons, &s.lessons},
		{keySessions, &s.sessions},
		{keyReportTemplates, &s.templates},
		{keyTeacherProfile, &s.profile},
	}
	for _, l := range loads {
		if _, err := blobs.Load(l.key, l.dest); err != nil {
			return nil, err
		}
	}

	found, err := blobs.Load(keyMarkingPresets, &s.presets)
	if err != nil {
		return nil, err
	}
	if !found {
		s.presets = models.DefaultMarkingPresets()
	}

	return s, nil
}

// persist writes every collection back to the blob store. Memory has already
// been mutated when this runs; on failure memory is ahead of durable state
// until the next successful save.
func (s *Store) persist() error {
	saves := []struct {
		key   string
		value any
	}{
		{keyGrades, s.grades},
		{keySections, s.sections},
		{keyStudents, s.students},
		{keyLogs, s.logs},
		{keyLessonsProgress, s.progress},
		{keyLessons, s.lessons},
		{keySessions, s.sessions},
		{keyMarkingPresets, s.presets},
		{keyReportTemplates, s.templates},
		{keyTeacherProfile, s.profile},
	}

	var firstErr error
	for _, sv := range saves {
		if err := s.blobs.Save(sv.key, sv.value); err != nil {
			slog.Error("failed to persist collection", "key", sv.key, "error", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// nextID issues a unique id based on current unix milliseconds. Same-
// millisecond calls bump past the last issued id so bulk inserts stay unique.
func (s *Store) nextID() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// ResetAll deletes every persisted key and re-seeds the in-memory
// collections with their empty defaults
func (s *Store) ResetAll() error {
	var firstErr error
	for _, key := range collectionKeys {
		if err := s.blobs.Delete(key); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	s.grades = nil
	s.sections = nil
	s.students = nil
	s.logs = nil
	s.progress = nil
	s.lessons = nil
	s.sessions = nil
	s.presets = models.DefaultMarkingPresets()
	s.templates = nil
	s.profile = models.DefaultTeacherProfile()

	return firstErr
}
