package validate

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func init() {
	Validate = validator.New(validator.WithRequiredStructEnabled())

	// notblank rejects strings that are empty once trimmed, which the
	// builtin required tag does not catch ("   " passes required).
	Validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	// pastdate accepts dates up to and including today. Comparison is at
	// day granularity so an entry dated today stays valid until midnight.
	Validate.RegisterValidation("pastdate", func(fl validator.FieldLevel) bool {
		t, ok := fl.Field().Interface().(time.Time)
		if !ok {
			return false
		}
		ty, tm, td := t.Date()
		ny, nm, nd := time.Now().Date()
		day := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
		today := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)
		return !day.After(today)
	})
}

// Violation is one broken field constraint.
type Violation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ValidationError reports every constraint an entity breaks, not just the
// first one, so the UI can mark all offending fields in a single round trip.
type ValidationError struct {
	Violations []Violation `json:"violations"`
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.Message
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Entity checks v against its declared field constraints and converts the
// outcome into a *ValidationError.
func Entity(v any) error {
	err := Validate.Struct(v)
	if err == nil {
		return nil
	}

	var ferrs validator.ValidationErrors
	if !errors.As(err, &ferrs) {
		return err
	}

	ve := &ValidationError{}
	for _, fe := range ferrs {
		rule := fe.Tag()
		if p := fe.Param(); p != "" {
			rule = rule + "=" + p
		}
		ve.Violations = append(ve.Violations, Violation{
			Field:   fe.Field(),
			Rule:    rule,
			Message: fmt.Sprintf("%s violates %s", fe.Field(), rule),
		})
	}
	return ve
}
