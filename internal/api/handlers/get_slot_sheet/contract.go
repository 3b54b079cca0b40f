package get_slot_sheet

import (
	"context"

	getSlotSheet "github.com/m1shk4/HMS-AppointmentGateway/internal/usecase/get_slot_sheet"
)

type GetSlotSheetUseCase interface {
	Execute(ctx context.Context, req *getSlotSheet.Request) (*getSlotSheet.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
