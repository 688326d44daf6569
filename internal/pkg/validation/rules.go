package validation

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Validation rule patterns
var (
	// TimeOfDayPattern matches zero-padded 24-hour "HH:MM" strings
	TimeOfDayPattern = `^([01]\d|2[0-3]):[0-5]\d$`

	// DatePattern matches calendar dates in "YYYY-MM-DD" form
	DatePattern = `^\d{4}-\d{2}-\d{2}$`
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	TimeOfDay *regexp.Regexp
	Date      *regexp.Regexp
}{
	TimeOfDay: regexp.MustCompile(TimeOfDayPattern),
	Date:      regexp.MustCompile(DatePattern),
}

// IsTimeOfDay reports whether s is a well-formed zero-padded "HH:MM" string
func IsTimeOfDay(s string) bool {
	return CompiledPatterns.TimeOfDay.MatchString(s)
}

// RegisterRules attaches custom rules to gin's binding validator. Call once
// during bootstrap.
func RegisterRules() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return IsTimeOfDay(fl.Field().String())
	})
}
