package services

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/collegeadmin/internal/app/models"
)

func TestAcademic_AssignGrade(t *testing.T) {
	ac := NewAcademic("Academic Block", zerolog.Nop())
	faculty := &models.Faculty{ID: "F1", Name: "Dr. Singh", Department: "CSE"}
	amit := newTestStudent("S1", "Amit", "CSE")

	t.Run("creates missing structure", func(t *testing.T) {
		out := ac.AssignGrade(faculty, amit, 2, 1, "Data Structures", "A")
		assert.Equal(t, models.OutcomeOK, out.Status)

		grades, ok := ac.Grades("S1")
		require.True(t, ok)
		assert.Equal(t, models.GradeBook{2: {1: {"Data Structures": "A"}}}, grades)
	})

	t.Run("overwrites the same key", func(t *testing.T) {
		ac.AssignGrade(faculty, amit, 2, 1, "Data Structures", "B+")

		grades, ok := ac.Grades("S1")
		require.True(t, ok)
		assert.Equal(t, "B+", grades[2][1]["Data Structures"])
		assert.Len(t, grades[2][1], 1)
	})

	t.Run("faculty from another department is allowed", func(t *testing.T) {
		other := &models.Faculty{ID: "F2", Name: "Prof. Agarwal", Department: "ECE"}
		out := ac.AssignGrade(other, amit, 2, 1, "Signals", "A")
		assert.Equal(t, models.OutcomeOK, out.Status)
	})
}

func TestAcademic_GradesAreCopies(t *testing.T) {
	ac := NewAcademic("Academic Block", zerolog.Nop())
	amit := newTestStudent("S1", "Amit", "CSE")
	ac.AssignGrade(nil, amit, 1, 1, "Maths", "A")

	grades, ok := ac.Grades("S1")
	require.True(t, ok)
	grades[1][1]["Maths"] = "F"

	again, _ := ac.Grades("S1")
	assert.Equal(t, "A", again[1][1]["Maths"])

	_, ok = ac.Grades("S404")
	assert.False(t, ok)
}

func TestAcademic_SubjectGradesAndUpdate(t *testing.T) {
	ac := NewAcademic("Academic Block", zerolog.Nop())
	amit := newTestStudent("S1", "Amit", "CSE")
	riya := newTestStudent("S2", "Riya", "ECE")

	ac.AssignGrade(nil, riya, 1, 2, "Maths", "B")
	ac.AssignGrade(nil, amit, 1, 1, "Maths", "A")
	ac.AssignGrade(nil, amit, 1, 1, "Physics", "C")

	assert.Equal(t, []models.SubjectGrade{
		{StudentID: "S1", Year: 1, Semester: 1, Grade: "A"},
		{StudentID: "S2", Year: 1, Semester: 2, Grade: "B"},
	}, ac.SubjectGrades("Maths"))
	assert.Empty(t, ac.SubjectGrades("Chemistry"))

	ac.UpdateGrades(amit, models.GradeBook{3: {1: {"Compilers": "O"}}})
	grades, ok := ac.Grades("S1")
	require.True(t, ok)
	assert.Equal(t, models.GradeBook{3: {1: {"Compilers": "O"}}}, grades)
}
