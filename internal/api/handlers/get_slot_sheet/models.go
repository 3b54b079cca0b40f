package get_slot_sheet

import (
	"github.com/m1shk4/HMS-AppointmentGateway/internal/domain"
	getSlotSheet "github.com/m1shk4/HMS-AppointmentGateway/internal/usecase/get_slot_sheet"
)

// SlotResponse HTTP response model
type SlotResponse struct {
	Token     int    `json:"token"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	IsBooked  bool   `json:"isBooked"`
	IsExpired bool   `json:"isExpired"`
}

// SlotSheetResponse HTTP response model
type SlotSheetResponse struct {
	DoctorID int64          `json:"doctorId"`
	Date     string         `json:"date"`
	AllTaken bool           `json:"allTaken"`
	Slots    []SlotResponse `json:"slots"`
}

// FromUseCaseResponse converts the use case response into the HTTP response
func FromUseCaseResponse(resp *getSlotSheet.Response) *SlotSheetResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			Token:     s.Token,
			StartTime: s.StartTime.String(),
			EndTime:   s.EndTime.String(),
			IsBooked:  s.IsBooked,
			IsExpired: s.IsExpired,
		})
	}

	return &SlotSheetResponse{
		DoctorID: resp.DoctorID,
		Date:     resp.Date.Format(domain.DateFormat),
		AllTaken: resp.AllTaken,
		Slots:    slots,
	}
}
