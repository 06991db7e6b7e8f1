package models

import "time"

// DateOrderMessage is the fixed message surfaced when a start date falls after
// the end date. Same wording for all three record types.
const DateOrderMessage = "Start date cannot be after end date."

// ValidationError is a field-level domain validation failure.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidateDateOrder rejects start > end. Absent dates pass, the calculators
// report those as unavailable instead.
func ValidateDateOrder(field string, start, end *time.Time) error {
	if start != nil && end != nil && start.After(*end) {
		return &ValidationError{Field: field, Message: DateOrderMessage}
	}
	return nil
}
