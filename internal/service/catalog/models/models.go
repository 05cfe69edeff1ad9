package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/newcase/agendamento-service/internal/domain"
)

// Request models

// CreateServiceTypeRequest adds a catalog entry.
type CreateServiceTypeRequest struct {
	UserID       string   `json:"-"`
	Name         string   `json:"nome"`
	ExtraOptions []string `json:"opcoes_extras,omitempty"`
}

// UpdateServiceTypeRequest renames an entry or replaces its extra options.
type UpdateServiceTypeRequest struct {
	UserID       string   `json:"-"`
	Name         string   `json:"nome"`
	ExtraOptions []string `json:"opcoes_extras,omitempty"`
}

// SetActiveRequest toggles an entry's visibility for new bookings.
type SetActiveRequest struct {
	UserID string `json:"-"`
	Active bool   `json:"ativo"`
}

// Move directions for reordering the catalog.
const (
	MoveUp   = "up"
	MoveDown = "down"
)

// MoveRequest swaps an entry with its neighbor in display order.
type MoveRequest struct {
	UserID    string `json:"-"`
	Direction string `json:"direction"`
}

// Response models

// ServiceTypeResponse mirrors a catalog row. JSON keys follow the Portuguese
// column names the booking form and admin panel exchange.
type ServiceTypeResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"nome"`
	ExtraOptions []string  `json:"opcoes_extras"`
	Order        int       `json:"ordem"`
	Active       bool      `json:"ativo"`
	CreatedAt    string    `json:"created_at"`
}

// ServiceTypeListResponse wraps a catalog listing.
type ServiceTypeListResponse struct {
	ServiceTypes []ServiceTypeResponse `json:"service_types"`
	Total        int                   `json:"total"`
}

// FromDomainServiceType converts a domain entry to the response model.
func FromDomainServiceType(st *domain.ServiceType) *ServiceTypeResponse {
	options := st.ExtraOptions
	if options == nil {
		options = []string{}
	}

	return &ServiceTypeResponse{
		ID:           st.ID,
		Name:         st.Name,
		ExtraOptions: options,
		Order:        st.Order,
		Active:       st.Active,
		CreatedAt:    st.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainServiceTypeList converts a domain slice to the list response.
func FromDomainServiceTypeList(serviceTypes []*domain.ServiceType) *ServiceTypeListResponse {
	out := make([]ServiceTypeResponse, 0, len(serviceTypes))
	for _, st := range serviceTypes {
		out = append(out, *FromDomainServiceType(st))
	}

	return &ServiceTypeListResponse{
		ServiceTypes: out,
		Total:        len(out),
	}
}
