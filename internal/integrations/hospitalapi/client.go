package hospitalapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/m1shk4/HMS-AppointmentGateway/internal/domain"
	"github.com/m1shk4/HMS-AppointmentGateway/pkg/metrics"
	"github.com/m1shk4/HMS-AppointmentGateway/pkg/types"
)

// Client talks to the remote hospital management API.
// Every call is authenticated with the caller's upstream bearer token.
type Client struct {
	baseURL    string
	httpClient *http.Client
	m          *metrics.Metrics
	log        Logger
}

// NewClient creates a hospital API client. m may be nil when metrics are
// disabled.
func NewClient(baseURL string, timeout time.Duration, m *metrics.Metrics, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		m:   m,
		log: log,
	}
}

// GetDepartments fetches the department list.
func (c *Client) GetDepartments(ctx context.Context, token string) ([]domain.Department, error) {
	url := fmt.Sprintf("%s/api/departments/", c.baseURL)

	resp, err := c.do(ctx, http.MethodGet, url, token, nil, "get_departments")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	default:
		return nil, unexpectedStatus(resp)
	}

	var payload []departmentPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode departments: %v", ErrInvalidResponse, err)
	}

	departments := make([]domain.Department, len(payload))
	for i, d := range payload {
		departments[i] = domain.Department{ID: d.ID, Name: d.Name}
	}

	return departments, nil
}

// GetDoctors fetches the doctors of a department.
func (c *Client) GetDoctors(ctx context.Context, token string, departmentID int64) ([]domain.Doctor, error) {
	url := fmt.Sprintf("%s/api/departments/%d/doctors/", c.baseURL, departmentID)

	resp, err := c.do(ctx, http.MethodGet, url, token, nil, "get_doctors")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	case http.StatusNotFound:
		return nil, ErrDepartmentNotFound
	default:
		return nil, unexpectedStatus(resp)
	}

	var payload doctorsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode doctors: %v", ErrInvalidResponse, err)
	}

	doctors := make([]domain.Doctor, 0, len(payload.Doctors))
	for _, d := range payload.Doctors {
		consultationTime, err := types.NewTimeStringFromString(d.ConsultationTime)
		if err != nil {
			return nil, fmt.Errorf("%w: doctor id=%d has malformed consultation_time %q",
				ErrInvalidResponse, d.ID, d.ConsultationTime)
		}
		doctors = append(doctors, domain.Doctor{
			ID:               d.ID,
			Name:             d.Name,
			DepartmentID:     d.DepartmentID,
			ConsultationTime: consultationTime,
			ConsultationFee:  d.ConsultationFee,
			GSTRatePercent:   d.GSTRatePercent,
		})
	}

	return doctors, nil
}

// GetBookedAppointments fetches the (time, token) pairs already booked for a
// doctor on a date. A 404 is the upstream's normal empty state and yields an
// empty slice, not an error. The endpoint answers with either a single
// object or an array; both shapes are normalized to a slice.
func (c *Client) GetBookedAppointments(ctx context.Context, token string, doctorID int64, date time.Time) ([]domain.BookedAppointment, error) {
	url := fmt.Sprintf("%s/api/appointments/doctor/%d/%s/", c.baseURL, doctorID, date.Format(domain.DateFormat))

	resp, err := c.do(ctx, http.MethodGet, url, token, nil, "get_booked_appointments")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return []domain.BookedAppointment{}, nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	default:
		return nil, unexpectedStatus(resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read booked appointments: %v", ErrInvalidResponse, err)
	}

	payload, err := decodeBookedAppointments(body)
	if err != nil {
		return nil, err
	}

	booked := make([]domain.BookedAppointment, 0, len(payload))
	for _, b := range payload {
		at, err := types.NewTimeStringFromString(b.AppointmentTime)
		if err != nil {
			return nil, fmt.Errorf("%w: booked appointment has malformed appointment_time %q",
				ErrInvalidResponse, b.AppointmentTime)
		}
		booked = append(booked, domain.BookedAppointment{Time: at, Token: b.TokenNumber})
	}

	return booked, nil
}

// BookAppointment submits a booking. StartTime goes on the wire with its
// seconds forced to ":00". Upstream refusals become a RejectionError
// preserving the upstream message verbatim.
func (c *Client) BookAppointment(ctx context.Context, token string, req domain.BookingRequest) (*domain.Appointment, error) {
	url := fmt.Sprintf("%s/api/appointments/book/", c.baseURL)

	body, err := json.Marshal(bookRequestPayload{
		PatientID:       req.PatientID,
		DepartmentID:    req.DepartmentID,
		DoctorID:        req.DoctorID,
		AppointmentDate: req.Date.Format(domain.DateFormat),
		AppointmentTime: req.StartTime.WithSeconds(),
		RegistrationID:  req.RegistrationID,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal booking request: %v", ErrInternal, err)
	}

	resp, err := c.do(ctx, http.MethodPost, url, token, body, "book_appointment")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	default:
		// Upstream refused the booking; keep its message for the caller.
		var errBody errorPayload
		raw, _ := io.ReadAll(resp.Body)
		_ = json.Unmarshal(raw, &errBody)
		c.log.Warn("BookAppointment: upstream rejected booking, status=%d, message=%q",
			resp.StatusCode, errBody.Message)
		return nil, &RejectionError{StatusCode: resp.StatusCode, Message: errBody.Message}
	}

	var payload bookResponsePayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode booking response: %v", ErrInvalidResponse, err)
	}

	startTime, err := types.NewTimeStringFromString(payload.Appointment.AppointmentTime)
	if err != nil {
		// Some upstream deployments omit the time echo; fall back to what was sent.
		startTime = req.StartTime
	}

	date := req.Date
	if parsed, err := time.Parse(domain.DateFormat, payload.Appointment.AppointmentDate); err == nil {
		date = parsed
	}

	return &domain.Appointment{
		ID:          payload.Appointment.AppointmentID,
		TokenNumber: payload.Appointment.TokenNumber,
		DoctorID:    req.DoctorID,
		Date:        date,
		StartTime:   startTime,
	}, nil
}

// do builds and executes one authenticated request, recording upstream
// metrics when enabled.
func (c *Client) do(ctx context.Context, method, url, token string, body []byte, operation string) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(operation, "transport_error", start)
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}

	c.observe(operation, strconv.Itoa(resp.StatusCode), start)
	return resp, nil
}

func (c *Client) observe(operation, status string, start time.Time) {
	if c.m == nil {
		return
	}
	c.m.UpstreamRequestsTotal.WithLabelValues(operation, status).Inc()
	c.m.UpstreamRequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// decodeBookedAppointments accepts both response shapes of the
// booked-appointments endpoint: a JSON array or a single JSON object.
func decodeBookedAppointments(body []byte) ([]bookedAppointmentPayload, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return []bookedAppointmentPayload{}, nil
	}

	if trimmed[0] == '[' {
		var list []bookedAppointmentPayload
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, fmt.Errorf("%w: failed to decode booked appointments array: %v", ErrInvalidResponse, err)
		}
		return list, nil
	}

	var single bookedAppointmentPayload
	if err := json.Unmarshal(trimmed, &single); err != nil {
		return nil, fmt.Errorf("%w: failed to decode booked appointment object: %v", ErrInvalidResponse, err)
	}
	return []bookedAppointmentPayload{single}, nil
}

func unexpectedStatus(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
}
