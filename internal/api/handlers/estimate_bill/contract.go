package estimate_bill

import (
	"context"

	"github.com/m1shk4/HMS-AppointmentGateway/internal/domain"
)

type BillingService interface {
	Estimate(ctx context.Context, token string, departmentID, doctorID int64) (*domain.BillEstimate, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
