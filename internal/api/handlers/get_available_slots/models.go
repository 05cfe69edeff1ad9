package get_available_slots

import (
	"time"

	"github.com/newcase/agendamento-service/internal/domain"
	getAvailableSlots "github.com/newcase/agendamento-service/internal/usecase/get_available_slots"
)

// DaySlotsResponse HTTP response model: the fixed slot grid of one day.
type DaySlotsResponse struct {
	Date     string `json:"data"`
	Bookable bool   `json:"disponivel"`
	Slots    []Slot `json:"slots"`
}

// Slot is one grid entry.
type Slot struct {
	StartTime string `json:"horario"`
	Available bool   `json:"disponivel"`
}

// ToUseCaseRequest builds the use case request from the date query parameter.
func ToUseCaseRequest(dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{Date: date}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP response.
func FromUseCaseResponse(resp *getAvailableSlots.Response) *DaySlotsResponse {
	slots := make([]Slot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = Slot{
			StartTime: slot.StartTime.String(),
			Available: slot.Available,
		}
	}

	return &DaySlotsResponse{
		Date:     resp.Date.Format(domain.DateFormat),
		Bookable: resp.Bookable,
		Slots:    slots,
	}
}
