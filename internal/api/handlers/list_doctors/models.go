package list_doctors

import "github.com/m1shk4/HMS-AppointmentGateway/internal/domain"

// DoctorResponse HTTP response model
type DoctorResponse struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	DepartmentID     int64   `json:"departmentId"`
	ConsultationTime string  `json:"consultationTime"`
	ConsultationFee  float64 `json:"consultationFee"`
}

// ListDoctorsResponse HTTP response model
type ListDoctorsResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
}

// FromDomain converts catalog doctors into the HTTP response
func FromDomain(doctors []domain.Doctor) *ListDoctorsResponse {
	out := make([]DoctorResponse, 0, len(doctors))
	for _, d := range doctors {
		out = append(out, DoctorResponse{
			ID:               d.ID,
			Name:             d.Name,
			DepartmentID:     d.DepartmentID,
			ConsultationTime: d.ConsultationTime.String(),
			ConsultationFee:  d.ConsultationFee,
		})
	}
	return &ListDoctorsResponse{Doctors: out}
}
