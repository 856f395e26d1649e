package services

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/yigit/collegeadmin/internal/app/models"
	"github.com/yigit/collegeadmin/internal/config"
)

func newTestCampus(t *testing.T) *Campus {
	t.Helper()
	return NewCampus(models.CollegeInfo{Name: "Test College", Address: "Test Road"}, config.CampusDelays{}, zerolog.Nop())
}

func newTestStudent(id, name, branch string) *models.Student {
	return &models.Student{ID: id, RollNo: "R" + id, Name: name, Year: 1, Branch: branch}
}
