// Package testutil provides shared fixtures for store and service tests
package testutil

import (
	"testing"
	"time"

	"github.com/masarhq/masar/internal/models"
	"github.com/masarhq/masar/internal/storage"
	"github.com/masarhq/masar/internal/store"
)

// Clock returns a deterministic clock that advances one millisecond per
// call, so ids and dates are unique and strictly increasing in tests
func Clock() func() time.Time {
	base := time.Date(2025, 9, 1, 8, 0, 0, 0, time.UTC)
	n := 0
	return func() time.Time {
		n++
		return base.Add(time.Duration(n) * time.Millisecond)
	}
}

// NewStore builds a store over an in-memory blob store with the
// deterministic clock
func NewStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.New(storage.NewMemoryStore(), store.WithClock(Clock()))
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	return s
}

// NewStoreWithBlobs builds a store over the given blob store, used by
// persistence round-trip tests
func NewStoreWithBlobs(t *testing.T, blobs storage.BlobStore) *store.Store {
	t.Helper()
	s, err := store.New(blobs, store.WithClock(Clock()))
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	return s
}

// Roster is a small seeded class hierarchy used across tests
type Roster struct {
	Grade    models.Grade
	Section  models.Section
	Students []models.Student
}

// SeedRoster creates one grade with one section and n students
func SeedRoster(t *testing.T, s *store.Store, n int) Roster {
	t.Helper()

	grade, err := s.AddGrade("Grade 3", "#FFE5E5", "book")
	if err != nil {
		t.Fatalf("failed to seed grade: %v", err)
	}
	section, err := s.AddSection(grade.ID, "3-A")
	if err != nil {
		t.Fatalf("failed to seed section: %v", err)
	}

	names := []string{"Ali", "Sara", "Omar", "Lina", "Yousef", "Hana", "Karim", "Nour"}
	students := make([]models.Student, 0, n)
	for i := 0; i < n; i++ {
		gender := models.GenderMale
		if i%2 == 1 {
			gender = models.GenderFemale
		}
		st, err := s.AddStudent(names[i%len(names)], gender, section.ID, grade.ID)
		if err != nil {
			t.Fatalf("failed to seed student: %v", err)
		}
		students = append(students, st)
	}

	return Roster{Grade: grade, Section: section, Students: students}
}
