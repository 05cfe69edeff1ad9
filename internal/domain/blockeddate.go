package domain

import (
	"time"

	"github.com/google/uuid"
)

// BlockedDate is a calendar day staff excluded from booking. Sundays are
// never stored here; they are blocked implicitly by the availability rules.
type BlockedDate struct {
	ID        uuid.UUID
	Date      time.Time
	Reason    *string
	CreatedAt time.Time
}
