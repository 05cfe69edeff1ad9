package create_appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/newcase/agendamento-service/pkg/types"
)

// Request carries the booking form as the customer submitted it.
type Request struct {
	CustomerName       string           // Nome completo
	Phone              string           // Telefone de contato
	DeviceModel        string           // Modelo do celular
	ServiceName        string           // Tipo de serviço (catalog name)
	SelectedOption     *string          // Opção extra, when the service has options
	ProblemDescription string           // Descrição do problema
	Date               time.Time        // Data do agendamento (date only)
	StartTime          types.TimeString // Horário do slot, e.g. "09:30"
}

// Response is the confirmed appointment returned to the customer.
type Response struct {
	ID                 uuid.UUID
	Code               string // 6-char lookup code the customer keeps
	CustomerName       string
	Phone              string
	DeviceModel        string
	ServiceName        string
	ProblemDescription string // composed with the selected option, if any
	Date               time.Time
	StartTime          types.TimeString
	EstimatedDelivery  time.Time
	Status             string
	CreatedAt          time.Time
}
