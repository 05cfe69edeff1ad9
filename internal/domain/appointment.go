package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/newcase/agendamento-service/pkg/types"
)

// AppointmentStatus represents the repair stage of an appointment.
// Values are the customer-facing labels, staff-driven only.
type AppointmentStatus string

const (
	StatusAwaitingAnalysis AppointmentStatus = "Aguardando análise"
	StatusInAnalysis       AppointmentStatus = "Em análise"
	StatusAwaitingPart     AppointmentStatus = "Aguardando peça"
	StatusInRepair         AppointmentStatus = "Em reparo"
	StatusReadyForPickup   AppointmentStatus = "Pronto para retirada"
)

// AllStatuses lists every recognized status value.
var AllStatuses = []AppointmentStatus{
	StatusAwaitingAnalysis,
	StatusInAnalysis,
	StatusAwaitingPart,
	StatusInRepair,
	StatusReadyForPickup,
}

// IsValid reports whether s is a recognized status value.
func (s AppointmentStatus) IsValid() bool {
	for _, valid := range AllStatuses {
		if s == valid {
			return true
		}
	}
	return false
}

// Appointment represents a scheduled repair service request.
type Appointment struct {
	ID   uuid.UUID
	Code string // 6-char upper-case customer lookup code, assigned at creation

	CustomerName       string
	Phone              string
	DeviceModel        string
	ServiceName        string
	ProblemDescription string

	Date      time.Time        // booked calendar day, no time component
	StartTime types.TimeString // booked slot from the fixed daily enumeration

	EstimatedDelivery time.Time // Date + DeliveryEstimateDays

	Status    AppointmentStatus
	CreatedAt time.Time
}
