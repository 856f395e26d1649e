package validation

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Validation rule patterns
var (
	// GradePattern accepts O, A to E with an optional + or -, and F
	GradePattern = `^(O|A|B|C|D|E)[+-]?$|^F$`

	// PhonePattern accepts a 10 digit number
	PhonePattern = `^\d{10}$`
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Grade *regexp.Regexp
	Phone *regexp.Regexp
}{
	Grade: regexp.MustCompile(GradePattern),
	Phone: regexp.MustCompile(PhonePattern),
}

// Rules maps each custom binding tag to its check
var Rules = map[string]validator.Func{
	"grade": patternRule(CompiledPatterns.Grade),
	"phone": patternRule(CompiledPatterns.Phone),
}

func patternRule(pattern *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return pattern.MatchString(fl.Field().String())
	}
}

// Register adds every custom tag to v
func Register(v *validator.Validate) error {
	for tag, fn := range Rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("registering %q: %w", tag, err)
		}
	}
	return nil
}

// ValidGrade reports whether grade is a recognised letter grade
func ValidGrade(grade string) bool {
	return CompiledPatterns.Grade.MatchString(grade)
}
