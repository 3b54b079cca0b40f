package book_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m1shk4/HMS-AppointmentGateway/internal/domain"
	"github.com/m1shk4/HMS-AppointmentGateway/internal/integrations/hospitalapi"
	"github.com/m1shk4/HMS-AppointmentGateway/internal/service/catalog"
	"github.com/m1shk4/HMS-AppointmentGateway/internal/slotsheet"
)

// UseCase submits a booking for a selected slot.
type UseCase struct {
	doctors      DoctorSource
	hospital     HospitalClient
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the booking use case.
func NewUseCase(doctors DoctorSource, hospital HospitalClient, logger Logger) *UseCase {
	return &UseCase{
		doctors:      doctors,
		hospital:     hospital,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute validates the selection, re-checks the slot against the current
// sheet, submits the booking upstream, and returns the regenerated sheet
// with the confirmed (time, token) pair folded in locally.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookAppointment: patient=%d, department=%d, doctor=%d, date=%s, time=%s",
		req.PatientID, req.DepartmentID, req.DoctorID, req.Date.Format(domain.DateFormat), req.StartTime)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookAppointment: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	if slotsheet.IsDateInPast(req.Date, now) {
		uc.logger.Warn("BookAppointment: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrDateInPast
	}

	doctor, err := uc.doctors.DoctorByID(ctx, req.AccessToken, req.DepartmentID, req.DoctorID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrDoctorNotFound), errors.Is(err, catalog.ErrDepartmentNotFound):
			uc.logger.Warn("BookAppointment: doctor id=%d not found in department id=%d", req.DoctorID, req.DepartmentID)
			return nil, ErrDoctorNotFound
		case errors.Is(err, catalog.ErrUnauthorized):
			return nil, ErrUnauthorized
		default:
			uc.logger.Error("BookAppointment: failed to resolve doctor id=%d: %v", req.DoctorID, err)
			return nil, fmt.Errorf("%w: failed to resolve doctor: %v", ErrInternal, err)
		}
	}

	token, err := slotToken(doctor.ConsultationTime, req.StartTime)
	if err != nil {
		uc.logger.Warn("BookAppointment: time %s is not on the grid of doctor id=%d (consultation %s)",
			req.StartTime, doctor.ID, doctor.ConsultationTime)
		return nil, err
	}

	booked, err := uc.hospital.GetBookedAppointments(ctx, req.AccessToken, req.DoctorID, req.Date)
	if err != nil {
		uc.logger.Error("BookAppointment: failed to get booked appointments for doctor=%d: %v", req.DoctorID, err)
		return nil, fmt.Errorf("%w: failed to get booked appointments: %v", ErrInternal, err)
	}

	sheet := slotsheet.Generate(doctor.ConsultationTime, booked, req.Date, now)

	if err := uc.checkSlot(sheet, booked, token, req, now); err != nil {
		return nil, err
	}

	appointment, err := uc.hospital.BookAppointment(ctx, req.AccessToken, domain.BookingRequest{
		PatientID:      req.PatientID,
		DepartmentID:   req.DepartmentID,
		DoctorID:       req.DoctorID,
		RegistrationID: req.RegistrationID,
		Date:           req.Date,
		StartTime:      req.StartTime,
	})
	if err != nil {
		switch {
		case errors.Is(err, hospitalapi.ErrUnauthorized):
			return nil, ErrUnauthorized
		case errors.Is(err, hospitalapi.ErrBookingRejected):
			// Preserve the rejection so the handler can surface the
			// upstream message verbatim.
			uc.logger.Warn("BookAppointment: upstream rejected booking for doctor=%d: %v", req.DoctorID, err)
			return nil, err
		default:
			uc.logger.Error("BookAppointment: failed to submit booking for doctor=%d: %v", req.DoctorID, err)
			return nil, fmt.Errorf("%w: failed to submit booking: %v", ErrInternal, err)
		}
	}

	if appointment == nil {
		uc.logger.Error("BookAppointment: upstream returned no appointment for doctor=%d", req.DoctorID)
		return nil, fmt.Errorf("%w: upstream returned no appointment", ErrInternal)
	}

	// Fold the confirmed pair into the local booked set so the returned
	// sheet shows the slot as taken without a second upstream fetch.
	booked = append(booked, domain.BookedAppointment{
		Time:  req.StartTime,
		Token: appointment.TokenNumber,
	})

	slots := slotsheet.Generate(doctor.ConsultationTime, booked, req.Date, now)
	if appointment.TokenNumber > domain.SlotsPerSheet {
		// The booked slot is the extension token, which the plain
		// projection does not carry.
		slots = slotsheet.Extend(slots)
		extra := &slots[domain.SlotsPerSheet]
		extra.IsBooked = slotsheet.IsBooked(extra, booked)
	}

	uc.logger.Info("BookAppointment: booked appointment id=%d, token=%d, doctor=%d, date=%s, time=%s",
		appointment.ID, appointment.TokenNumber, req.DoctorID, req.Date.Format(domain.DateFormat), req.StartTime)

	return &Response{
		AppointmentID: appointment.ID,
		TokenNumber:   appointment.TokenNumber,
		DoctorID:      req.DoctorID,
		Date:          req.Date,
		StartTime:     req.StartTime,
		Slots:         slots,
		AllTaken:      slotsheet.AllTaken(slots),
	}, nil
}

// checkSlot verifies the selected token is still selectable on the current
// sheet. The extension token is only legal once the regular sheet is full.
func (uc *UseCase) checkSlot(sheet []domain.Slot, booked []domain.BookedAppointment, token int, req *Request, now time.Time) error {
	if token <= domain.SlotsPerSheet {
		slot := sheet[token-1]
		if slot.IsBooked {
			uc.logger.Warn("BookAppointment: slot token=%d already booked, doctor=%d", token, req.DoctorID)
			return ErrSlotTaken
		}
		if slot.IsExpired {
			uc.logger.Warn("BookAppointment: slot token=%d expired, doctor=%d", token, req.DoctorID)
			return ErrSlotExpired
		}
		return nil
	}

	// Extension token.
	if !slotsheet.AllTaken(sheet) {
		uc.logger.Warn("BookAppointment: extension token=%d requested on a non-full sheet, doctor=%d", token, req.DoctorID)
		return ErrSheetNotFull
	}

	extra := slotsheet.Extend(sheet)[domain.SlotsPerSheet]
	if slotsheet.IsBooked(&extra, booked) {
		return ErrSlotTaken
	}
	if slotsheet.IsSameDay(req.Date, now) &&
		extra.StartTime.MinutesSinceMidnight() < now.Hour()*60+now.Minute() {
		return ErrSlotExpired
	}

	return nil
}
