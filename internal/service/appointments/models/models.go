package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/newcase/agendamento-service/internal/domain"
)

// Request models

// UpdateStatusRequest moves an appointment along the repair pipeline.
type UpdateStatusRequest struct {
	UserID string `json:"-"`
	Status string `json:"status"`
}

// DeleteManyRequest removes a batch of appointments at once.
type DeleteManyRequest struct {
	UserID string      `json:"-"`
	IDs    []uuid.UUID `json:"ids"`
}

// Response models

// AppointmentResponse mirrors the stored appointment row. JSON keys follow
// the Portuguese column names the admin panel and booking form exchange.
type AppointmentResponse struct {
	ID                 uuid.UUID `json:"id"`
	Code               string    `json:"codigo_cliente"`
	CustomerName       string    `json:"nome"`
	Phone              string    `json:"telefone"`
	DeviceModel        string    `json:"modelo_celular"`
	ServiceName        string    `json:"tipo_servico"`
	ProblemDescription string    `json:"descricao_problema"`
	Date               string    `json:"data_agendamento"`      // "2025-12-01"
	StartTime          string    `json:"horario_agendamento"`   // "09:30"
	EstimatedDelivery  string    `json:"data_entrega_prevista"` // "2025-12-04"
	Status             string    `json:"status"`
	CreatedAt          string    `json:"created_at"` // RFC 3339
}

// AppointmentListResponse wraps the admin listing.
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// FromDomainAppointment converts a domain appointment to the response model.
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:                 a.ID,
		Code:               a.Code,
		CustomerName:       a.CustomerName,
		Phone:              a.Phone,
		DeviceModel:        a.DeviceModel,
		ServiceName:        a.ServiceName,
		ProblemDescription: a.ProblemDescription,
		Date:               a.Date.Format(domain.DateFormat),
		StartTime:          a.StartTime.String(),
		EstimatedDelivery:  a.EstimatedDelivery.Format(domain.DateFormat),
		Status:             string(a.Status),
		CreatedAt:          a.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainAppointmentList converts a domain slice to the list response.
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	out := make([]AppointmentResponse, 0, len(appointments))
	for _, a := range appointments {
		out = append(out, *FromDomainAppointment(a))
	}

	return &AppointmentListResponse{
		Appointments: out,
		Total:        len(out),
	}
}
