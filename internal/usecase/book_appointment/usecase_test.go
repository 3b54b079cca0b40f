package book_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m1shk4/HMS-AppointmentGateway/internal/domain"
	"github.com/m1shk4/HMS-AppointmentGateway/internal/integrations/hospitalapi"
	"github.com/m1shk4/HMS-AppointmentGateway/pkg/types"
)

var (
	day      = time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	otherDay = time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)
)

func at(d time.Time, hour, minute int) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, d.Location())
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type mockDoctors struct {
	doctor *domain.Doctor
	err    error
}

func (m *mockDoctors) DoctorByID(ctx context.Context, token string, departmentID, doctorID int64) (*domain.Doctor, error) {
	return m.doctor, m.err
}

type mockHospital struct {
	booked []domain.BookedAppointment

	appointment *domain.Appointment
	bookErr     error

	fetchCalls int
	bookCalls  int
	lastBooked domain.BookingRequest
}

func (m *mockHospital) GetBookedAppointments(ctx context.Context, token string, doctorID int64, date time.Time) ([]domain.BookedAppointment, error) {
	m.fetchCalls++
	return m.booked, nil
}

func (m *mockHospital) BookAppointment(ctx context.Context, token string, req domain.BookingRequest) (*domain.Appointment, error) {
	m.bookCalls++
	m.lastBooked = req
	return m.appointment, m.bookErr
}

func newTestUseCase(doctors *mockDoctors, hospital *mockHospital, now time.Time) *UseCase {
	uc := NewUseCase(doctors, hospital, nopLogger{})
	uc.timeProvider = fixedTime{now: now}
	return uc
}

func validRequest() *Request {
	return &Request{
		AccessToken:    "tok",
		PatientID:      12,
		DepartmentID:   7,
		DoctorID:       3,
		RegistrationID: "REG-042",
		Date:           day,
		StartTime:      "09:15",
	}
}

func TestExecute(t *testing.T) {
	doctors := &mockDoctors{doctor: &domain.Doctor{ID: 3, DepartmentID: 7, ConsultationTime: "09:00"}}
	hospital := &mockHospital{
		booked:      []domain.BookedAppointment{{Time: "09:05", Token: 2}},
		appointment: &domain.Appointment{ID: 501, TokenNumber: 4},
	}

	uc := newTestUseCase(doctors, hospital, at(day, 9, 0))

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(501), resp.AppointmentID)
	assert.Equal(t, 4, resp.TokenNumber)
	assert.Equal(t, 1, hospital.bookCalls)
	assert.Equal(t, "REG-042", hospital.lastBooked.RegistrationID)

	// The returned sheet is regenerated from a single fetch with the
	// confirmed pair folded in, not refetched after booking.
	assert.Equal(t, 1, hospital.fetchCalls)
	require.Len(t, resp.Slots, domain.SlotsPerSheet)
	assert.True(t, resp.Slots[1].IsBooked)
	assert.True(t, resp.Slots[3].IsBooked)
	assert.True(t, resp.Slots[4].IsFree())
}

func TestExecuteValidation(t *testing.T) {
	hospital := &mockHospital{}
	uc := newTestUseCase(&mockDoctors{}, hospital, at(day, 9, 0))

	cases := []struct {
		name   string
		mutate func(*Request)
		want   error
	}{
		{"no patient", func(r *Request) { r.PatientID = 0 }, ErrMissingPatient},
		{"no department", func(r *Request) { r.DepartmentID = 0 }, ErrMissingDepartment},
		{"no doctor", func(r *Request) { r.DoctorID = 0 }, ErrMissingDoctor},
		{"no date", func(r *Request) { r.Date = time.Time{} }, ErrMissingDate},
		{"no slot", func(r *Request) { r.StartTime = "" }, ErrMissingSlot},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	assert.Zero(t, hospital.fetchCalls)
	assert.Zero(t, hospital.bookCalls)
}

func TestExecuteDateInPast(t *testing.T) {
	hospital := &mockHospital{}
	uc := newTestUseCase(&mockDoctors{}, hospital, at(otherDay, 9, 0))

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDateInPast)
	assert.Zero(t, hospital.fetchCalls)
}

func TestExecuteOffGridTime(t *testing.T) {
	doctors := &mockDoctors{doctor: &domain.Doctor{ID: 3, ConsultationTime: "09:00"}}
	hospital := &mockHospital{}
	uc := newTestUseCase(doctors, hospital, at(day, 9, 0))

	for _, start := range []string{"09:17", "08:55", "13:15"} {
		req := validRequest()
		req.StartTime = types.TimeString(start)

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidSlot, "start=%s", start)
	}

	assert.Zero(t, hospital.fetchCalls)
	assert.Zero(t, hospital.bookCalls)
}

func TestExecuteSlotTaken(t *testing.T) {
	doctors := &mockDoctors{doctor: &domain.Doctor{ID: 3, ConsultationTime: "09:00"}}
	hospital := &mockHospital{booked: []domain.BookedAppointment{{Time: "09:15", Token: 4}}}
	uc := newTestUseCase(doctors, hospital, at(day, 9, 0))

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Zero(t, hospital.bookCalls)
}

func TestExecuteSlotTakenByTokenOnly(t *testing.T) {
	doctors := &mockDoctors{doctor: &domain.Doctor{ID: 3, ConsultationTime: "09:00"}}
	hospital := &mockHospital{booked: []domain.BookedAppointment{{Time: "11:00", Token: 4}}}
	uc := newTestUseCase(doctors, hospital, at(day, 9, 0))

	// 09:15 is token 4, which is held by a record with a different time.
	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecuteSlotExpired(t *testing.T) {
	doctors := &mockDoctors{doctor: &domain.Doctor{ID: 3, ConsultationTime: "09:00"}}
	hospital := &mockHospital{}
	uc := newTestUseCase(doctors, hospital, at(day, 9, 30))

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotExpired)
	assert.Zero(t, hospital.bookCalls)
}

func TestExecuteExtensionRequiresFullSheet(t *testing.T) {
	doctors := &mockDoctors{doctor: &domain.Doctor{ID: 3, ConsultationTime: "09:00"}}
	hospital := &mockHospital{}
	uc := newTestUseCase(doctors, hospital, at(day, 9, 0))

	req := validRequest()
	req.StartTime = "13:10" // token 51 on a 09:00 grid

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSheetNotFull)
	assert.Zero(t, hospital.bookCalls)
}

func TestExecuteExtensionOnFullSheet(t *testing.T) {
	booked := make([]domain.BookedAppointment, domain.SlotsPerSheet)
	for i := range booked {
		booked[i] = domain.BookedAppointment{Token: i + 1}
	}

	doctors := &mockDoctors{doctor: &domain.Doctor{ID: 3, ConsultationTime: "09:00"}}
	hospital := &mockHospital{
		booked:      booked,
		appointment: &domain.Appointment{ID: 502, TokenNumber: 51},
	}
	uc := newTestUseCase(doctors, hospital, at(day, 9, 0))

	req := validRequest()
	req.StartTime = "13:10"

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 51, resp.TokenNumber)
	assert.Equal(t, 1, hospital.bookCalls)

	// The returned sheet carries the freshly booked extension slot.
	require.Len(t, resp.Slots, domain.SlotsPerSheet+1)
	assert.Equal(t, 51, resp.Slots[50].Token)
	assert.Equal(t, "13:10", resp.Slots[50].StartTime.String())
	assert.True(t, resp.Slots[50].IsBooked)
	assert.True(t, resp.AllTaken)
}

func TestExecuteUpstreamReturnsNoAppointment(t *testing.T) {
	doctors := &mockDoctors{doctor: &domain.Doctor{ID: 3, ConsultationTime: "09:00"}}
	hospital := &mockHospital{}
	uc := newTestUseCase(doctors, hospital, at(day, 9, 0))

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, 1, hospital.bookCalls)
}

func TestExecuteBookingRejected(t *testing.T) {
	doctors := &mockDoctors{doctor: &domain.Doctor{ID: 3, ConsultationTime: "09:00"}}
	hospital := &mockHospital{
		bookErr: &hospitalapi.RejectionError{StatusCode: 422, Message: "Patient already has an appointment today"},
	}
	uc := newTestUseCase(doctors, hospital, at(day, 9, 0))

	_, err := uc.Execute(context.Background(), validRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, hospitalapi.ErrBookingRejected)

	var rejection *hospitalapi.RejectionError
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, "Patient already has an appointment today", rejection.Message)
}
