package service

import (
	"fmt"
	"regexp"
	"strings"
)

// FieldError reports a single failed field constraint.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors is the structured result of input validation. Services
// return it as an error; controllers render it as a 400 with details.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return "invalid input: " + strings.Join(msgs, "; ")
}

// OrNil returns the collected errors, or nil when everything passed.
func (e FieldErrors) OrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

var phonePattern = regexp.MustCompile(`^\d{10}$`)

// ValidPhone reports whether s is exactly ten digits.
func ValidPhone(s string) bool {
	return phonePattern.MatchString(s)
}

func validateCoordinates(errs FieldErrors, longitude, latitude float64) FieldErrors {
	if longitude < -180 || longitude > 180 {
		errs = append(errs, FieldError{"longitude", "must be between -180 and 180"})
	}
	if latitude < -90 || latitude > 90 {
		errs = append(errs, FieldError{"latitude", "must be between -90 and 90"})
	}
	return errs
}
