package hospitalapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m1shk4/HMS-AppointmentGateway/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, nil, nopLogger{})
}

func TestGetDepartments(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/departments/", r.URL.Path)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		w.Write([]byte(`[{"id":1,"name":"Cardiology"},{"id":2,"name":"Dermatology"}]`))
	})

	departments, err := c.GetDepartments(context.Background(), "tok-123")
	require.NoError(t, err)
	require.Len(t, departments, 2)
	assert.Equal(t, domain.Department{ID: 1, Name: "Cardiology"}, departments[0])
}

func TestGetDepartmentsUnauthorized(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := c.GetDepartments(context.Background(), "stale")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestGetDoctors(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/departments/7/doctors/", r.URL.Path)
		w.Write([]byte(`{"doctors":[
			{"id":3,"name":"Dr. Rao","department_id":7,"consultation_time":"09:00:00","consultation_fee":500,"gst_rate_percent":12},
			{"id":4,"name":"Dr. Iyer","department_id":7,"consultation_time":"14:30:00","consultation_fee":700}
		]}`))
	})

	doctors, err := c.GetDoctors(context.Background(), "tok", 7)
	require.NoError(t, err)
	require.Len(t, doctors, 2)

	assert.Equal(t, int64(3), doctors[0].ID)
	assert.Equal(t, "09:00", doctors[0].ConsultationTime.String())
	require.NotNil(t, doctors[0].GSTRatePercent)
	assert.Equal(t, 12.0, *doctors[0].GSTRatePercent)

	assert.Equal(t, "14:30", doctors[1].ConsultationTime.String())
	assert.Nil(t, doctors[1].GSTRatePercent)
}

func TestGetDoctorsDepartmentNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := c.GetDoctors(context.Background(), "tok", 99)
	assert.ErrorIs(t, err, ErrDepartmentNotFound)
}

func TestGetBookedAppointmentsArray(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/appointments/doctor/3/2025-06-10/", r.URL.Path)
		w.Write([]byte(`[{"appointment_time":"09:15:00","token_number":4},{"appointment_time":"09:20:00","token_number":5}]`))
	})

	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	booked, err := c.GetBookedAppointments(context.Background(), "tok", 3, date)
	require.NoError(t, err)
	require.Len(t, booked, 2)
	assert.Equal(t, domain.BookedAppointment{Time: "09:15", Token: 4}, booked[0])
}

func TestGetBookedAppointmentsSingleObject(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"appointment_time":"10:05:00","token_number":14}`))
	})

	booked, err := c.GetBookedAppointments(context.Background(), "tok", 3, time.Now())
	require.NoError(t, err)
	require.Len(t, booked, 1)
	assert.Equal(t, domain.BookedAppointment{Time: "10:05", Token: 14}, booked[0])
}

func TestGetBookedAppointmentsNotFoundMeansEmpty(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	booked, err := c.GetBookedAppointments(context.Background(), "tok", 3, time.Now())
	require.NoError(t, err)
	assert.Empty(t, booked)
}

func TestGetBookedAppointmentsServerError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.GetBookedAppointments(context.Background(), "tok", 3, time.Now())
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestBookAppointment(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/appointments/book/", r.URL.Path)

		var body map[string]interface{}
		require.NoError(t, jsonDecode(r, &body))
		assert.Equal(t, "09:15:00", body["appointment_time"])
		assert.Equal(t, "2025-06-10", body["appointment_date"])
		assert.Equal(t, "REG-42", body["registration_id"])

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"appointment":{"appointment_id":812,"token_number":4,"appointment_date":"2025-06-10","appointment_time":"09:15:00"}}`))
	})

	appt, err := c.BookAppointment(context.Background(), "tok", domain.BookingRequest{
		PatientID:      21,
		DepartmentID:   7,
		DoctorID:       3,
		RegistrationID: "REG-42",
		Date:           time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		StartTime:      "09:15",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(812), appt.ID)
	assert.Equal(t, 4, appt.TokenNumber)
	assert.Equal(t, "09:15", appt.StartTime.String())
}

func TestBookAppointmentRejectedWithMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"slot already taken by token 4"}`))
	})

	_, err := c.BookAppointment(context.Background(), "tok", domain.BookingRequest{
		PatientID: 21, DepartmentID: 7, DoctorID: 3,
		Date: time.Now(), StartTime: "09:15",
	})
	require.ErrorIs(t, err, ErrBookingRejected)

	var rejection *RejectionError
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, "slot already taken by token 4", rejection.Message)
	assert.Equal(t, http.StatusConflict, rejection.StatusCode)
}

func TestBookAppointmentRejectedWithoutMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	_, err := c.BookAppointment(context.Background(), "tok", domain.BookingRequest{
		PatientID: 21, DepartmentID: 7, DoctorID: 3,
		Date: time.Now(), StartTime: "09:15",
	})

	var rejection *RejectionError
	require.ErrorAs(t, err, &rejection)
	assert.Empty(t, rejection.Message)
}

func jsonDecode(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
