package store_test

import (
	"testing"

	"github.com/masarhq/masar/internal/models"
	"github.com/masarhq/masar/internal/storage"
	"github.com/masarhq/masar/internal/store"
	"github.com/masarhq/masar/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestTeacherProfileDefaultAndUpdate(t *testing.T) {
	s := testutil.NewStore(t)

	assert.Equal(t, models.DefaultTeacherProfile(), s.TeacherProfile())

	assert.NoError(t, s.UpdateTeacherProfile("Ms. Rania", "Science"))
	assert.Equal(t, "Ms. Rania", s.TeacherProfile().Name)
	assert.Equal(t, "Science", s.TeacherProfile().Subject)
}

func TestSaveReportTemplateSingleDefault(t *testing.T) {
	s := testutil.NewStore(t)

	assert.NoError(t, s.SaveReportTemplate(models.ReportTemplate{
		ID: "a", Name: "Full report", IsDefault: true,
	}))
	assert.NoError(t, s.SaveReportTemplate(models.ReportTemplate{
		ID: "b", Name: "Short report", IsDefault: true,
	}))

	defaults := 0
	for _, tpl := range s.ReportTemplates() {
		if tpl.IsDefault {
			defaults++
			assert.Equal(t, "b", tpl.ID)
		}
	}
	assert.Equal(t, 1, defaults)
}

func TestDeleteReportTemplate(t *testing.T) {
	s := testutil.NewStore(t)

	assert.NoError(t, s.SaveReportTemplate(models.ReportTemplate{ID: "a", Name: "A"}))
	assert.NoError(t, s.DeleteReportTemplate("a"))
	assert.Empty(t, s.ReportTemplates())

	// Deleting a missing template is fine
	assert.NoError(t, s.DeleteReportTemplate("a"))
}

func TestResetAllClearsEverything(t *testing.T) {
	blobs := storage.NewMemoryStore()
	s := testutil.NewStoreWithBlobs(t, blobs)
	r := testutil.SeedRoster(t, s, 2)
	_, err := s.AddPoints(r.Students[0].ID, 10, models.CategoryRespect, "")
	assert.NoError(t, err)
	assert.NoError(t, s.UpdateTeacherProfile("Ms. Rania", "Science"))

	assert.NoError(t, s.ResetAll())

	assert.Empty(t, s.Grades())
	assert.Empty(t, s.AllStudents())
	assert.Equal(t, models.DefaultTeacherProfile(), s.TeacherProfile())
	assert.Len(t, s.MarkingConfigs(), 2)

	// A store reopened over the same blobs starts empty too
	reloaded, err := store.New(blobs)
	assert.NoError(t, err)
	assert.Empty(t, reloaded.Grades())
}
