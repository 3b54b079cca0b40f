package hospitalapi

// departmentPayload is a department record on the upstream wire.
type departmentPayload struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// doctorsResponse wraps the doctor list on the upstream wire.
type doctorsResponse struct {
	Doctors []doctorPayload `json:"doctors"`
}

// doctorPayload is a doctor record on the upstream wire.
// consultation_time arrives as "HH:MM:SS".
type doctorPayload struct {
	ID               int64    `json:"id"`
	Name             string   `json:"name"`
	DepartmentID     int64    `json:"department_id"`
	ConsultationTime string   `json:"consultation_time"`
	ConsultationFee  float64  `json:"consultation_fee"`
	GSTRatePercent   *float64 `json:"gst_rate_percent"`
}

// bookedAppointmentPayload is one existing booking on the upstream wire.
// The endpoint answers with either a single object or an array of these.
type bookedAppointmentPayload struct {
	AppointmentTime string `json:"appointment_time"`
	TokenNumber     int    `json:"token_number"`
}

// bookRequestPayload is the booking submission body.
type bookRequestPayload struct {
	PatientID       int64  `json:"patient_id"`
	DepartmentID    int64  `json:"department_id"`
	DoctorID        int64  `json:"doctor_id"`
	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time"`
	RegistrationID  string `json:"registration_id"`
}

// bookResponsePayload wraps the confirmed appointment.
type bookResponsePayload struct {
	Appointment appointmentPayload `json:"appointment"`
}

// appointmentPayload is a confirmed appointment on the upstream wire.
type appointmentPayload struct {
	AppointmentID   int64  `json:"appointment_id"`
	TokenNumber     int    `json:"token_number"`
	DoctorID        int64  `json:"doctor_id"`
	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time"`
}

// errorPayload is the upstream error body.
type errorPayload struct {
	Message string `json:"message"`
}
