package domain

// BillEstimate is a server-computed consultation bill breakdown.
// GST is applied to the consultation fee plus the service charge.
type BillEstimate struct {
	DoctorID        int64
	ConsultationFee float64
	ServiceCharge   float64
	GSTRatePercent  float64
	GSTAmount       float64
	Total           float64
}
