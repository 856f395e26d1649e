package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidGrade(t *testing.T) {
	for _, grade := range []string{"O", "A", "A+", "B-", "E", "F"} {
		assert.True(t, ValidGrade(grade), grade)
	}
	for _, grade := range []string{"", "F+", "G", "a", "A++", "AB"} {
		assert.False(t, ValidGrade(grade), grade)
	}
}

func TestRegister(t *testing.T) {
	v := validator.New()
	require.NoError(t, Register(v))

	type form struct {
		Grade string `validate:"grade"`
		Phone string `validate:"omitempty,phone"`
	}

	assert.NoError(t, v.Struct(form{Grade: "B+", Phone: "9000000001"}))
	assert.NoError(t, v.Struct(form{Grade: "A"}))
	assert.Error(t, v.Struct(form{Grade: "Z"}))
	assert.Error(t, v.Struct(form{Grade: "A", Phone: "12345"}))
}
