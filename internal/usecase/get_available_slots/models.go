package get_available_slots

import (
	"time"

	"github.com/newcase/agendamento-service/pkg/types"
)

// Request asks for the slot grid of one calendar day.
type Request struct {
	Date time.Time
}

// Response carries the full fixed slot grid for the day. The grid always has
// one entry per daily slot; on a non-bookable day every entry is unavailable.
type Response struct {
	Date     time.Time
	Bookable bool   // date gate verdict: not past, not Sunday, not blocked
	Slots    []Slot // always len(domain.DailySlots) entries, in order
}

// Slot is one entry of the day grid.
type Slot struct {
	StartTime types.TimeString
	Available bool
}
