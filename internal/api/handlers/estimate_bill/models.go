package estimate_bill

import "github.com/m1shk4/HMS-AppointmentGateway/internal/domain"

// BillEstimateResponse HTTP response model
type BillEstimateResponse struct {
	DoctorID        int64   `json:"doctorId"`
	ConsultationFee float64 `json:"consultationFee"`
	ServiceCharge   float64 `json:"serviceCharge"`
	GSTRatePercent  float64 `json:"gstRatePercent"`
	GSTAmount       float64 `json:"gstAmount"`
	Total           float64 `json:"total"`
}

// FromDomain converts the bill estimate into the HTTP response
func FromDomain(bill *domain.BillEstimate) *BillEstimateResponse {
	return &BillEstimateResponse{
		DoctorID:        bill.DoctorID,
		ConsultationFee: bill.ConsultationFee,
		ServiceCharge:   bill.ServiceCharge,
		GSTRatePercent:  bill.GSTRatePercent,
		GSTAmount:       bill.GSTAmount,
		Total:           bill.Total,
	}
}
