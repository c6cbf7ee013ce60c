package roster

import (
	"fmt"
	"regexp"

	"github.com/masarhq/masar/internal/models"
	"github.com/masarhq/masar/internal/store"
)

// Hex color regex pattern
var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Service defines all roster-related business operations: grades, sections,
// students, and point awards
type Service interface {
	// Read operations
	ListGrades() []models.Grade
	ListSections(gradeID int64) ([]models.Section, error)
	ListStudents(sectionID int64) ([]models.Student, error)
	GetStudent(id int64) (models.Student, error)
	GetLogs(studentID int64) ([]models.RecognitionLog, error)

	// Write operations
	CreateGrade(req CreateGradeRequest) (models.Grade, error)
	UpdateGrade(req UpdateGradeRequest) error
	DeleteGrade(id int64) error
	CreateSection(gradeID int64, name string) (models.Section, error)
	DeleteSection(id int64) error
	EnrollStudent(req EnrollStudentRequest) (models.Student, error)
	RemoveStudent(id int64) error
	AwardPoints(req AwardRequest) (models.Student, error)
	AwardSection(sectionID int64, points int, category models.Category, reason string) error
}

// CreateGradeRequest encapsulates data for creating a grade
type CreateGradeRequest struct {
	Name  string
	Color string // Hex color like #FF5733
	Icon  string
}

// UpdateGradeRequest encapsulates data for updating a grade
type UpdateGradeRequest struct {
	ID    int64
	Name  *string
	Color *string
	Icon  *string
}

// EnrollStudentRequest encapsulates data for enrolling a student. The grade
// is derived from the section, never supplied by the caller.
type EnrollStudentRequest struct {
	Name      string
	Gender    models.Gender
	SectionID int64
}

// AwardRequest encapsulates a point award for one student
type AwardRequest struct {
	StudentID int64
	Points    int
	Category  models.Category
	Reason    string
}

// service implements Service interface
type service struct {
	store *store.Store
}

// NewService creates a new roster service
func NewService(st *store.Store) Service {
	return &service{store: st}
}

// ListGrades retrieves all grades with derived counts
func (s *service) ListGrades() []models.Grade {
	return s.store.Grades()
}

// ListSections retrieves the sections of one grade
func (s *service) ListSections(gradeID int64) ([]models.Section, error) {
	if _, ok := s.store.Grade(gradeID); !ok {
		return nil, ErrGradeNotFound
	}
	return s.store.Sections(gradeID), nil
}

// ListStudents retrieves the roster of one section
func (s *service) ListStudents(sectionID int64) ([]models.Student, error) {
	if _, ok := s.store.Section(sectionID); !ok {
		return nil, ErrSectionNotFound
	}
	return s.store.StudentsBySection(sectionID), nil
}

// GetStudent retrieves one student
func (s *service) GetStudent(id int64) (models.Student, error) {
	st, ok := s.store.Student(id)
	if !ok {
		return models.Student{}, ErrStudentNotFound
	}
	return st, nil
}

// GetLogs retrieves a student's recognition history, newest first
func (s *service) GetLogs(studentID int64) ([]models.RecognitionLog, error) {
	if _, ok := s.store.Student(studentID); !ok {
		return nil, ErrStudentNotFound
	}
	return s.store.Logs(studentID), nil
}

// CreateGrade creates a new grade with validation
func (s *service) CreateGrade(req CreateGradeRequest) (models.Grade, error) {
	if err := validateName(req.Name); err != nil {
		return models.Grade{}, err
	}
	if !hexColorRegex.MatchString(req.Color) {
		return models.Grade{}, ErrInvalidColor
	}

	grade, err := s.store.AddGrade(req.Name, req.Color, req.Icon)
	if err != nil {
		return models.Grade{}, fmt.Errorf("failed to create grade: %w", err)
	}
	return grade, nil
}

// UpdateGrade updates an existing grade's display fields
func (s *service) UpdateGrade(req UpdateGradeRequest) error {
	existing, ok := s.store.Grade(req.ID)
	if !ok {
		return ErrGradeNotFound
	}

	if req.Name != nil {
		if err := validateName(*req.Name); err != nil {
			return err
		}
	}
	if req.Color != nil && !hexColorRegex.MatchString(*req.Color) {
		return ErrInvalidColor
	}

	name := existing.Name
	if req.Name != nil {
		name = *req.Name
	}
	color := existing.Color
	if req.Color != nil {
		color = *req.Color
	}
	icon := existing.Icon
	if req.Icon != nil {
		icon = *req.Icon
	}

	if err := s.store.UpdateGrade(req.ID, name, color, icon); err != nil {
		return fmt.Errorf("failed to update grade: %w", err)
	}
	return nil
}

// DeleteGrade deletes a grade and everything it owns
func (s *service) DeleteGrade(id int64) error {
	if _, ok := s.store.Grade(id); !ok {
		return ErrGradeNotFound
	}
	if err := s.store.DeleteGrade(id); err != nil {
		return fmt.Errorf("failed to delete grade: %w", err)
	}
	return nil
}

// CreateSection creates a section under an existing grade
func (s *service) CreateSection(gradeID int64, name string) (models.Section, error) {
	if err := validateName(name); err != nil {
		return models.Section{}, err
	}
	if _, ok := s.store.Grade(gradeID); !ok {
		return models.Section{}, ErrGradeNotFound
	}

	section, err := s.store.AddSection(gradeID, name)
	if err != nil {
		return models.Section{}, fmt.Errorf("failed to create section: %w", err)
	}
	return section, nil
}

// DeleteSection deletes a section and everything it owns
func (s *service) DeleteSection(id int64) error {
	if _, ok := s.store.Section(id); !ok {
		return ErrSectionNotFound
	}
	if err := s.store.DeleteSection(id); err != nil {
		return fmt.Errorf("failed to delete section: %w", err)
	}
	return nil
}

// EnrollStudent enrolls a student in a section, deriving the grade from the
// section so the two can never disagree
func (s *service) EnrollStudent(req EnrollStudentRequest) (models.Student, error) {
	if err := validateName(req.Name); err != nil {
		return models.Student{}, err
	}
	if !req.Gender.Valid() {
		return models.Student{}, ErrInvalidGender
	}
	section, ok := s.store.Section(req.SectionID)
	if !ok {
		return models.Student{}, ErrSectionNotFound
	}

	student, err := s.store.AddStudent(req.Name, req.Gender, section.ID, section.GradeID)
	if err != nil {
		return models.Student{}, fmt.Errorf("failed to enroll student: %w", err)
	}
	return student, nil
}

// RemoveStudent deletes a student and scrubs their marks and history
func (s *service) RemoveStudent(id int64) error {
	if _, ok := s.store.Student(id); !ok {
		return ErrStudentNotFound
	}
	if err := s.store.DeleteStudent(id); err != nil {
		return fmt.Errorf("failed to remove student: %w", err)
	}
	return nil
}

// AwardPoints validates and applies a point award to one student
func (s *service) AwardPoints(req AwardRequest) (models.Student, error) {
	if err := validateAward(req.Points, req.Category); err != nil {
		return models.Student{}, err
	}

	updated, err := s.store.AddPoints(req.StudentID, req.Points, req.Category, req.Reason)
	if err != nil {
		return models.Student{}, fmt.Errorf("failed to award points: %w", err)
	}
	if updated == nil {
		return models.Student{}, ErrStudentNotFound
	}
	return *updated, nil
}

// AwardSection applies the same award to every student in a section
func (s *service) AwardSection(sectionID int64, points int, category models.Category, reason string) error {
	if err := validateAward(points, category); err != nil {
		return err
	}
	if _, ok := s.store.Section(sectionID); !ok {
		return ErrSectionNotFound
	}
	if err := s.store.BulkAddPoints(sectionID, points, category, reason); err != nil {
		return fmt.Errorf("failed to award section: %w", err)
	}
	return nil
}

// validateName checks the shared name rules
func validateName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if len(name) > 50 {
		return ErrNameTooLong
	}
	return nil
}

// validateAward checks the shared award rules
func validateAward(points int, category models.Category) error {
	if points == 0 {
		return ErrZeroPoints
	}
	if !category.Valid() {
		return ErrInvalidCategory
	}
	return nil
}
