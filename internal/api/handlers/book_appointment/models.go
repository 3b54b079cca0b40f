package book_appointment

import (
	"time"

	"github.com/m1shk4/HMS-AppointmentGateway/internal/domain"
	bookAppointment "github.com/m1shk4/HMS-AppointmentGateway/internal/usecase/book_appointment"
	"github.com/m1shk4/HMS-AppointmentGateway/pkg/types"
)

// BookAppointmentRequest HTTP request model
type BookAppointmentRequest struct {
	PatientID      int64  `json:"patientId"`
	DepartmentID   int64  `json:"departmentId"`
	DoctorID       int64  `json:"doctorId"`
	RegistrationID string `json:"registrationId"`
	Date           string `json:"date"`      // "2025-06-10"
	StartTime      string `json:"startTime"` // "09:15"
}

// SlotResponse HTTP response model
type SlotResponse struct {
	Token     int    `json:"token"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	IsBooked  bool   `json:"isBooked"`
	IsExpired bool   `json:"isExpired"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	AppointmentID int64          `json:"appointmentId"`
	TokenNumber   int            `json:"tokenNumber"`
	DoctorID      int64          `json:"doctorId"`
	Date          string         `json:"date"`
	StartTime     string         `json:"startTime"`
	AllTaken      bool           `json:"allTaken"`
	Slots         []SlotResponse `json:"slots"`
}

// ToUseCaseRequest converts the HTTP request into the use case model,
// parsing the date and start time
func (r *BookAppointmentRequest) ToUseCaseRequest(accessToken string) (*bookAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &bookAppointment.Request{
		AccessToken:    accessToken,
		PatientID:      r.PatientID,
		DepartmentID:   r.DepartmentID,
		DoctorID:       r.DoctorID,
		RegistrationID: r.RegistrationID,
		Date:           date,
		StartTime:      startTime,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP response
func FromUseCaseResponse(resp *bookAppointment.Response) *AppointmentResponse {
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

	return &AppointmentResponse{
		AppointmentID: resp.AppointmentID,
		TokenNumber:   resp.TokenNumber,
		DoctorID:      resp.DoctorID,
		Date:          resp.Date.Format(domain.DateFormat),
		StartTime:     resp.StartTime.String(),
		AllTaken:      resp.AllTaken,
		Slots:         slots,
	}
}
