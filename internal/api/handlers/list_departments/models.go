package list_departments

import "github.com/m1shk4/HMS-AppointmentGateway/internal/domain"

// DepartmentResponse HTTP response model
type DepartmentResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ListDepartmentsResponse HTTP response model
type ListDepartmentsResponse struct {
	Departments []DepartmentResponse `json:"departments"`
}

// FromDomain converts catalog departments into the HTTP response
func FromDomain(departments []domain.Department) *ListDepartmentsResponse {
	out := make([]DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		out = append(out, DepartmentResponse{ID: d.ID, Name: d.Name})
	}
	return &ListDepartmentsResponse{Departments: out}
}
