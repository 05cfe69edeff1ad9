package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/newcase/agendamento-service/internal/domain"
)

// Request models

// BlockDateRequest adds a date to the closure blocklist.
type BlockDateRequest struct {
	UserID string    `json:"-"`
	Date   time.Time `json:"-"`
	Reason *string   `json:"motivo,omitempty"`
}

// Response models

// BlockedDateResponse mirrors a blocklist row. JSON keys follow the
// Portuguese column names the admin panel exchanges.
type BlockedDateResponse struct {
	ID        uuid.UUID `json:"id"`
	Date      string    `json:"data"` // "2025-12-25"
	Reason    *string   `json:"motivo,omitempty"`
	CreatedAt string    `json:"created_at"`
}

// BlockedDateListResponse wraps the blocklist listing.
type BlockedDateListResponse struct {
	BlockedDates []BlockedDateResponse `json:"blocked_dates"`
	Total        int                   `json:"total"`
}

// FromDomainBlockedDate converts a domain entry to the response model.
func FromDomainBlockedDate(b *domain.BlockedDate) *BlockedDateResponse {
	return &BlockedDateResponse{
		ID:        b.ID,
		Date:      b.Date.Format(domain.DateFormat),
		Reason:    b.Reason,
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainBlockedDateList converts a domain slice to the list response.
func FromDomainBlockedDateList(blocked []*domain.BlockedDate) *BlockedDateListResponse {
	out := make([]BlockedDateResponse, 0, len(blocked))
	for _, b := range blocked {
		out = append(out, *FromDomainBlockedDate(b))
	}

	return &BlockedDateListResponse{
		BlockedDates: out,
		Total:        len(out),
	}
}
