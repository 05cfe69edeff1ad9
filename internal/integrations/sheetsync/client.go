package sheetsync

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/newcase/agendamento-service/internal/domain"
)

// Client pushes confirmed appointments to the shop's spreadsheet webhook.
type Client struct {
	webhookURL string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a spreadsheet relay client.
func NewClient(webhookURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		webhookURL: webhookURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Push sends one appointment row to the webhook.
func (c *Client) Push(ctx context.Context, appointment *domain.Appointment) error {
	row := AppointmentRow{
		Code:         appointment.Code,
		CustomerName: appointment.CustomerName,
		Phone:        appointment.Phone,
		DeviceModel:  appointment.DeviceModel,
		ServiceName:  appointment.ServiceName,
		Description:  appointment.ProblemDescription,
		Date:         appointment.Date.Format(domain.DateFormat),
		StartTime:    appointment.StartTime.String(),
		Status:       string(appointment.Status),
		DeliveryDate: appointment.EstimatedDelivery.Format(domain.DateFormat),
		CreatedAt:    appointment.CreatedAt.Format(time.RFC3339),
	}

	body, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal payload: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	return nil
}

// PushAsync relays the appointment in the background. The booking is already
// committed by the time this runs, so failures are logged and never surfaced
// to the customer.
func (c *Client) PushAsync(appointment *domain.Appointment, timeout time.Duration) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := c.Push(ctx, appointment); err != nil {
			c.log.Error("Sheet relay failed for appointment code=%s: %v", appointment.Code, err)
			return
		}

		c.log.Info("Sheet relay done for appointment code=%s", appointment.Code)
	}()
}
