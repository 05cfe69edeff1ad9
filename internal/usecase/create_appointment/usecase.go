package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/newcase/agendamento-service/internal/domain"
	appointmentRepo "github.com/newcase/agendamento-service/internal/infra/storage/appointment"
)

// relayTimeout bounds the background push to the spreadsheet webhook.
const relayTimeout = 15 * time.Second

// UseCase creates a customer appointment.
type UseCase struct {
	appointmentRepo AppointmentRepository
	serviceTypeRepo ServiceTypeRepository
	blockedDateRepo BlockedDateRepository
	sheetRelay      SheetRelay
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates the appointment-creation use case.
func NewUseCase(
	appointmentRepo AppointmentRepository,
	serviceTypeRepo ServiceTypeRepository,
	blockedDateRepo BlockedDateRepository,
	sheetRelay SheetRelay,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		serviceTypeRepo: serviceTypeRepo,
		blockedDateRepo: blockedDateRepo,
		sheetRelay:      sheetRelay,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute runs the booking flow. The slot re-check and the insert share a
// serializable transaction, and the unique constraint on (date, time) backs
// them up, so two customers can never hold the same slot.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: service=%s, date=%s, time=%s",
		req.ServiceName, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Field validation, first failure wins.
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Current time for the date gate.
	now := uc.timeProvider.Now()

	// 3. Match the service against the active catalog.
	catalog, err := uc.serviceTypeRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to load service catalog: %v", err)
		return nil, fmt.Errorf("%w: failed to load service catalog: %v", ErrInternal, err)
	}

	service, err := validateServiceSelection(req, catalog)
	if err != nil {
		uc.logger.Warn("CreateAppointment: service selection rejected: %v", err)
		return nil, err
	}

	// 4. Date gate: past, Sunday or blocked dates are not bookable.
	blockedEntries, err := uc.blockedDateRepo.List(ctx)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to load blocked dates: %v", err)
		return nil, fmt.Errorf("%w: failed to load blocked dates: %v", ErrInternal, err)
	}

	blocked := make([]domain.BlockedDate, 0, len(blockedEntries))
	for _, b := range blockedEntries {
		blocked = append(blocked, *b)
	}

	if !domain.IsDateBookable(req.Date, now, blocked) {
		uc.logger.Warn("CreateAppointment: date %s is not bookable", req.Date.Format(domain.DateFormat))
		return nil, ErrDateNotBookable
	}

	// 5. The time must come from the fixed daily enumeration.
	if !domain.IsValidSlot(req.StartTime) {
		uc.logger.Warn("CreateAppointment: %s is not a valid slot", req.StartTime)
		return nil, ErrInvalidTimeSlot
	}

	appointment := &domain.Appointment{
		CustomerName:       req.CustomerName,
		Phone:              req.Phone,
		DeviceModel:        req.DeviceModel,
		ServiceName:        service.Name,
		ProblemDescription: composeDescription(req, service),
		Date:               req.Date,
		StartTime:          req.StartTime,
		EstimatedDelivery:  domain.EstimateDelivery(req.Date),
		Status:             domain.StatusAwaitingAnalysis,
	}

	var result *domain.Appointment

	// 6. Re-check the slot and insert inside a serializable transaction.
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		bookedTimes, err := uc.appointmentRepo.ListBookedTimes(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to list booked times: %v", err)
			return fmt.Errorf("%w: failed to list booked times: %v", ErrInternal, err)
		}

		if !domain.IsSlotBookable(req.Date, now, req.StartTime, blocked, bookedTimes) {
			uc.logger.Warn("CreateAppointment: slot %s on %s already taken",
				req.StartTime, req.Date.Format(domain.DateFormat))
			return ErrSlotNotAvailable
		}

		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateAppointment: slot %s on %s lost to a concurrent booking",
					req.StartTime, req.Date.Format(domain.DateFormat))
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: created appointment code=%s, id=%s", result.Code, result.ID)

	// 7. Relay to the spreadsheet in the background. The booking is already
	// committed; a relay failure never reaches the customer.
	uc.sheetRelay.PushAsync(result, relayTimeout)

	return &Response{
		ID:                 result.ID,
		Code:               result.Code,
		CustomerName:       result.CustomerName,
		Phone:              result.Phone,
		DeviceModel:        result.DeviceModel,
		ServiceName:        result.ServiceName,
		ProblemDescription: result.ProblemDescription,
		Date:               result.Date,
		StartTime:          result.StartTime,
		EstimatedDelivery:  result.EstimatedDelivery,
		Status:             string(result.Status),
		CreatedAt:          result.CreatedAt,
	}, nil
}
