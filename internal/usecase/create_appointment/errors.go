package create_appointment

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is the sentinel every field validation failure unwraps to.
	ErrValidation = errors.New("create_appointment: validation failed")

	// ErrDateNotBookable is returned when the date is in the past, a Sunday
	// or blocked by the admins.
	ErrDateNotBookable = errors.New("create_appointment: date is not bookable")

	// ErrInvalidTimeSlot is returned when the start time is not one of the
	// shop's fixed slots.
	ErrInvalidTimeSlot = errors.New("create_appointment: invalid time slot")

	// ErrSlotNotAvailable is returned when the slot is already taken.
	ErrSlotNotAvailable = errors.New("create_appointment: slot is not available")

	// ErrInternal is returned on internal usecase failures.
	ErrInternal = errors.New("create_appointment: internal error")
)

// ValidationError carries the customer-facing message for one rejected field.
// Messages are in Portuguese because they are rendered verbatim in the
// booking form.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s - %s", ErrValidation, e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
