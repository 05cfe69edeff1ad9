package domain

import "github.com/newcase/agendamento-service/pkg/types"

// DailySlots is the fixed enumeration of bookable times: two shifts of
// 30-minute slots with lunch excluded. The shop books against this list only;
// it is not configuration.
var DailySlots = []types.TimeString{
	"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	"13:00", "13:30", "14:00", "14:30", "15:00", "15:30",
	"16:00", "16:30", "17:00", "17:30",
}

// DaySlot is one entry of the daily enumeration annotated with occupancy.
// Occupied slots remain visible to the customer but cannot be selected.
type DaySlot struct {
	StartTime types.TimeString
	Occupied  bool
}
