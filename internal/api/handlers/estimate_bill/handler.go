package estimate_bill

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m1shk4/HMS-AppointmentGateway/internal/api/handlers"
	"github.com/m1shk4/HMS-AppointmentGateway/internal/api/middleware"
	"github.com/m1shk4/HMS-AppointmentGateway/internal/service/billing"
)

const (
	msgInvalidDepartmentID  = "invalid departmentId query parameter"
	msgInvalidDoctorID      = "invalid doctorId query parameter"
	msgDoctorNotFound       = "doctor not found"
	msgUpstreamUnauthorized = "hospital API rejected the session credentials"
)

type Handler struct {
	billing BillingService
	logger  Logger
}

func NewHandler(billing BillingService, logger Logger) *Handler {
	return &Handler{
		billing: billing,
		logger:  logger,
	}
}

// Handle GET /api/v1/billing/estimate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "session required")
		return
	}

	departmentID, err := strconv.ParseInt(r.URL.Query().Get("departmentId"), 10, 64)
	if err != nil || departmentID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidDepartmentID)
		return
	}

	doctorID, err := strconv.ParseInt(r.URL.Query().Get("doctorId"), 10, 64)
	if err != nil || doctorID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidDoctorID)
		return
	}

	bill, err := h.billing.Estimate(r.Context(), session.AccessToken, departmentID, doctorID)
	if err != nil {
		switch {
		case errors.Is(err, billing.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, billing.ErrDoctorNotFound):
			h.logger.Warn("GET /billing/estimate - Doctor not found: department_id=%d, doctor_id=%d", departmentID, doctorID)
			handlers.RespondNotFound(w, msgDoctorNotFound)

		case errors.Is(err, billing.ErrUnauthorized):
			h.logger.Warn("GET /billing/estimate - Upstream unauthorized: user_id=%d", session.UserID)
			handlers.RespondUnauthorized(w, msgUpstreamUnauthorized)

		default:
			h.logger.Error("GET /billing/estimate - Failed to estimate bill: doctor_id=%d, error=%v", doctorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /billing/estimate - Estimate built: doctor_id=%d, total=%.2f, user_id=%d",
		doctorID, bill.Total, session.UserID)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(bill))
}
