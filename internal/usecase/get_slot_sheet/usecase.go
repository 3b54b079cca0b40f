package get_slot_sheet

import (
	"context"
	"errors"
	"fmt"

	"github.com/m1shk4/HMS-AppointmentGateway/internal/domain"
	"github.com/m1shk4/HMS-AppointmentGateway/internal/service/catalog"
	"github.com/m1shk4/HMS-AppointmentGateway/internal/slotsheet"
)

// UseCase projects a doctor's slot sheet for one date.
type UseCase struct {
	doctors      DoctorSource
	hospital     HospitalClient
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the slot sheet use case.
func NewUseCase(doctors DoctorSource, hospital HospitalClient, logger Logger) *UseCase {
	return &UseCase{
		doctors:      doctors,
		hospital:     hospital,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute builds the slot sheet: resolves the doctor, loads the booked
// (time, token) pairs, and projects the 50-token sheet. With req.Extend it
// appends the extra token, which is only legal on a fully taken sheet.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetSlotSheet: department=%d, doctor=%d, date=%s, extend=%t",
		req.DepartmentID, req.DoctorID, req.Date.Format(domain.DateFormat), req.Extend)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetSlotSheet: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	if slotsheet.IsDateInPast(req.Date, now) {
		uc.logger.Warn("GetSlotSheet: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrDateInPast
	}

	doctor, err := uc.doctors.DoctorByID(ctx, req.AccessToken, req.DepartmentID, req.DoctorID)
	if err != nil {
		return nil, uc.mapCatalogError(req, err)
	}

	booked, err := uc.hospital.GetBookedAppointments(ctx, req.AccessToken, req.DoctorID, req.Date)
	if err != nil {
		uc.logger.Error("GetSlotSheet: failed to get booked appointments for doctor=%d: %v", req.DoctorID, err)
		return nil, fmt.Errorf("%w: failed to get booked appointments: %v", ErrInternal, err)
	}

	slots := slotsheet.Generate(doctor.ConsultationTime, booked, req.Date, now)
	full := slotsheet.AllTaken(slots)

	if req.Extend {
		if !full {
			uc.logger.Warn("GetSlotSheet: extension requested but sheet has free slots, doctor=%d", req.DoctorID)
			return nil, ErrSheetNotFull
		}
		slots = slotsheet.Extend(slots)
	}

	uc.logger.Info("GetSlotSheet: doctor=%d, date=%s, booked=%d, all_taken=%t",
		req.DoctorID, req.Date.Format(domain.DateFormat), len(booked), full)

	return &Response{
		DoctorID: req.DoctorID,
		Date:     req.Date,
		Slots:    slots,
		AllTaken: full,
	}, nil
}

func (uc *UseCase) mapCatalogError(req *Request, err error) error {
	switch {
	case errors.Is(err, catalog.ErrDoctorNotFound):
		uc.logger.Warn("GetSlotSheet: doctor id=%d not found in department id=%d", req.DoctorID, req.DepartmentID)
		return ErrDoctorNotFound
	case errors.Is(err, catalog.ErrDepartmentNotFound):
		uc.logger.Warn("GetSlotSheet: department id=%d not found", req.DepartmentID)
		return ErrDepartmentNotFound
	case errors.Is(err, catalog.ErrUnauthorized):
		return ErrUnauthorized
	default:
		uc.logger.Error("GetSlotSheet: failed to resolve doctor id=%d: %v", req.DoctorID, err)
		return fmt.Errorf("%w: failed to resolve doctor: %v", ErrInternal, err)
	}
}
