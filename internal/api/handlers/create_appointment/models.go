package create_appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/newcase/agendamento-service/internal/domain"
	createAppointment "github.com/newcase/agendamento-service/internal/usecase/create_appointment"
	"github.com/newcase/agendamento-service/pkg/types"
)

// CreateAppointmentRequest HTTP request model. JSON keys match the booking
// form field names.
type CreateAppointmentRequest struct {
	CustomerName       string  `json:"nome"`
	Phone              string  `json:"telefone"`
	DeviceModel        string  `json:"modelo_celular"`
	ServiceName        string  `json:"tipo_servico"`
	SelectedOption     *string `json:"opcao_extra,omitempty"`
	ProblemDescription string  `json:"descricao_problema"`
	Date               string  `json:"data_agendamento"`    // "2025-12-01"
	StartTime          string  `json:"horario_agendamento"` // "09:30"
}

// AppointmentResponse HTTP response model.
type AppointmentResponse struct {
	ID                 uuid.UUID `json:"id"`
	Code               string    `json:"codigo_cliente"`
	CustomerName       string    `json:"nome"`
	Phone              string    `json:"telefone"`
	DeviceModel        string    `json:"modelo_celular"`
	ServiceName        string    `json:"tipo_servico"`
	ProblemDescription string    `json:"descricao_problema"`
	Date               string    `json:"data_agendamento"`
	StartTime          string    `json:"horario_agendamento"`
	EstimatedDelivery  string    `json:"data_entrega_prevista"`
	Status             string    `json:"status"`
	CreatedAt          string    `json:"created_at"`
}

// ToUseCaseRequest converts the HTTP request into the use case model,
// parsing the date and time strings.
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		CustomerName:       r.CustomerName,
		Phone:              r.Phone,
		DeviceModel:        r.DeviceModel,
		ServiceName:        r.ServiceName,
		SelectedOption:     r.SelectedOption,
		ProblemDescription: r.ProblemDescription,
		Date:               date,
		StartTime:          startTime,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP response.
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:                 resp.ID,
		Code:               resp.Code,
		CustomerName:       resp.CustomerName,
		Phone:              resp.Phone,
		DeviceModel:        resp.DeviceModel,
		ServiceName:        resp.ServiceName,
		ProblemDescription: resp.ProblemDescription,
		Date:               resp.Date.Format(domain.DateFormat),
		StartTime:          resp.StartTime.String(),
		EstimatedDelivery:  resp.EstimatedDelivery.Format(domain.DateFormat),
		Status:             resp.Status,
		CreatedAt:          resp.CreatedAt.Format(time.RFC3339),
	}
}
