package domain

import (
	"time"

	"github.com/google/uuid"
)

// ServiceType is an entry of the repair service catalog. Types with extra
// options (e.g. screen part grades) require the customer to pick exactly one
// option when booking.
type ServiceType struct {
	ID           uuid.UUID
	Name         string
	ExtraOptions []string
	Order        int  // display position, unique among active types
	Active       bool // inactive types stay stored but are hidden from new bookings
	CreatedAt    time.Time
}

// RequiresOption reports whether booking this service demands an extra option.
func (s *ServiceType) RequiresOption() bool {
	return len(s.ExtraOptions) > 0
}

// HasOption reports whether option is one of the allowed extra options.
func (s *ServiceType) HasOption(option string) bool {
	for _, o := range s.ExtraOptions {
		if o == option {
			return true
		}
	}
	return false
}
