package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/newcase/agendamento-service/internal/domain"
)

// UseCase returns the slot grid the booking form renders for one day.
type UseCase struct {
	appointmentRepo AppointmentRepository
	blockedDateRepo BlockedDateRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates the slot-grid use case.
func NewUseCase(
	appointmentRepo AppointmentRepository,
	blockedDateRepo BlockedDateRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		blockedDateRepo: blockedDateRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute computes the day grid. Reads run outside a transaction; the answer
// is advisory and the booking flow re-checks the slot before inserting.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s", req.Date.Format(domain.DateFormat))

	// 1. Validation.
	if req.Date.IsZero() {
		uc.logger.Warn("GetAvailableSlots: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Current time for the date gate.
	now := uc.timeProvider.Now()

	// 3. Date gate.
	blockedEntries, err := uc.blockedDateRepo.List(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to load blocked dates: %v", err)
		return nil, fmt.Errorf("%w: failed to load blocked dates: %v", ErrInternal, err)
	}

	blocked := make([]domain.BlockedDate, 0, len(blockedEntries))
	for _, b := range blockedEntries {
		blocked = append(blocked, *b)
	}

	bookable := domain.IsDateBookable(req.Date, now, blocked)

	// 4. On a closed day the grid is returned fully unavailable so the form
	// can still render it greyed out.
	if !bookable {
		uc.logger.Info("GetAvailableSlots: date %s is not bookable", req.Date.Format(domain.DateFormat))
		return buildResponse(req.Date, false, domain.BuildDaySlots(nil)), nil
	}

	// 5. Occupancy for the day.
	bookedTimes, err := uc.appointmentRepo.ListBookedTimes(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list booked times: %v", err)
		return nil, fmt.Errorf("%w: failed to list booked times: %v", ErrInternal, err)
	}

	daySlots := domain.BuildDaySlots(bookedTimes)

	uc.logger.Info("GetAvailableSlots: date=%s, %d booked of %d slots",
		req.Date.Format(domain.DateFormat), len(bookedTimes), len(daySlots))

	return buildResponse(req.Date, true, daySlots), nil
}

// buildResponse maps the annotated day grid onto the response model. A slot
// is only offered when the whole day passed the date gate.
func buildResponse(date time.Time, bookable bool, daySlots []domain.DaySlot) *Response {
	slots := make([]Slot, len(daySlots))
	for i, s := range daySlots {
		slots[i] = Slot{
			StartTime: s.StartTime,
			Available: bookable && !s.Occupied,
		}
	}

	return &Response{
		Date:     date,
		Bookable: bookable,
		Slots:    slots,
	}
}
