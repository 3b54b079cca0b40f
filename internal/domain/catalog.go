package domain

import "github.com/m1shk4/HMS-AppointmentGateway/pkg/types"

// Department is a hospital department as served by the upstream API.
type Department struct {
	ID   int64
	Name string
}

// Doctor is a doctor record from the upstream API.
// ConsultationTime anchors the doctor's slot sheet; GSTRatePercent is
// optional on the wire and defaulted server-side when absent.
type Doctor struct {
	ID               int64
	Name             string
	DepartmentID     int64
	ConsultationTime types.TimeString
	ConsultationFee  float64
	GSTRatePercent   *float64
}
