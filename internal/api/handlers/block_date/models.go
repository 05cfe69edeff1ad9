package block_date

import (
	"time"

	"github.com/newcase/agendamento-service/internal/domain"
	"github.com/newcase/agendamento-service/internal/service/calendar/models"
)

// BlockDateRequest HTTP request model.
type BlockDateRequest struct {
	Date   string  `json:"data"` // "2025-12-25"
	Reason *string `json:"motivo,omitempty"`
}

// ToServiceRequest parses the date and builds the service request.
func (r *BlockDateRequest) ToServiceRequest(userID string) (*models.BlockDateRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &models.BlockDateRequest{
		UserID: userID,
		Date:   date,
		Reason: r.Reason,
	}, nil
}
