package billing

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/m1shk4/HMS-AppointmentGateway/internal/domain"
	"github.com/m1shk4/HMS-AppointmentGateway/internal/service/catalog"
)

// Service computes consultation bill estimates server-side.
// Totals are never left to the client: the GST rate comes from the upstream
// doctor record when present and from the configured default otherwise.
type Service struct {
	doctors        DoctorSource
	serviceCharge  float64
	defaultGSTRate float64
	log            Logger
}

// NewService creates a billing service with the configured service charge
// and default GST rate (percent).
func NewService(doctors DoctorSource, serviceCharge, defaultGSTRate float64, log Logger) *Service {
	return &Service{
		doctors:        doctors,
		serviceCharge:  serviceCharge,
		defaultGSTRate: defaultGSTRate,
		log:            log,
	}
}

// Estimate computes the bill breakdown for a consultation with the given
// doctor: consultation fee + service charge + GST on their sum.
func (s *Service) Estimate(ctx context.Context, token string, departmentID, doctorID int64) (*domain.BillEstimate, error) {
	if departmentID <= 0 {
		return nil, fmt.Errorf("%w: departmentID must be positive", ErrInvalidInput)
	}
	if doctorID <= 0 {
		return nil, fmt.Errorf("%w: doctorID must be positive", ErrInvalidInput)
	}

	doctor, err := s.doctors.DoctorByID(ctx, token, departmentID, doctorID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrDoctorNotFound), errors.Is(err, catalog.ErrDepartmentNotFound):
			return nil, ErrDoctorNotFound
		case errors.Is(err, catalog.ErrUnauthorized):
			return nil, ErrUnauthorized
		default:
			s.log.Error("Estimate: failed to resolve doctor id=%d: %v", doctorID, err)
			return nil, fmt.Errorf("%w: failed to resolve doctor: %v", ErrInternal, err)
		}
	}

	gstRate := s.defaultGSTRate
	if doctor.GSTRatePercent != nil {
		gstRate = *doctor.GSTRatePercent
	}

	taxable := doctor.ConsultationFee + s.serviceCharge
	gstAmount := roundPaise(taxable * gstRate / 100)

	estimate := &domain.BillEstimate{
		DoctorID:        doctor.ID,
		ConsultationFee: doctor.ConsultationFee,
		ServiceCharge:   s.serviceCharge,
		GSTRatePercent:  gstRate,
		GSTAmount:       gstAmount,
		Total:           roundPaise(taxable + gstAmount),
	}

	s.log.Info("Estimate: doctor=%d fee=%.2f charge=%.2f gst=%.2f%% total=%.2f",
		doctor.ID, estimate.ConsultationFee, estimate.ServiceCharge, estimate.GSTRatePercent, estimate.Total)

	return estimate, nil
}

// roundPaise rounds a currency amount to two decimal places.
func roundPaise(v float64) float64 {
	return math.Round(v*100) / 100
}
