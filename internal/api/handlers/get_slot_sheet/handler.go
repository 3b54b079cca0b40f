package get_slot_sheet

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m1shk4/HMS-AppointmentGateway/internal/api/handlers"
	"github.com/m1shk4/HMS-AppointmentGateway/internal/api/middleware"
	"github.com/m1shk4/HMS-AppointmentGateway/internal/domain"
	getSlotSheet "github.com/m1shk4/HMS-AppointmentGateway/internal/usecase/get_slot_sheet"
)

const (
	msgInvalidDepartmentID  = "invalid department id"
	msgInvalidDoctorID      = "invalid doctor id"
	msgInvalidDate          = "invalid date, expected YYYY-MM-DD"
	msgDateInPast           = "date is in the past"
	msgDoctorNotFound       = "doctor not found"
	msgDepartmentNotFound   = "department not found"
	msgSheetNotFull         = "sheet still has free slots, extension not allowed"
	msgUpstreamUnauthorized = "hospital API rejected the session credentials"
)

type Handler struct {
	useCase GetSlotSheetUseCase
	logger  Logger
}

func NewHandler(useCase GetSlotSheetUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/departments/{departmentId}/doctors/{doctorId}/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "session required")
		return
	}

	vars := mux.Vars(r)

	departmentID, err := strconv.ParseInt(vars["departmentId"], 10, 64)
	if err != nil || departmentID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidDepartmentID)
		return
	}

	doctorID, err := strconv.ParseInt(vars["doctorId"], 10, 64)
	if err != nil || doctorID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidDoctorID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	extend := r.URL.Query().Get("extend") == "1"

	result, err := h.useCase.Execute(r.Context(), &getSlotSheet.Request{
		AccessToken:  session.AccessToken,
		DepartmentID: departmentID,
		DoctorID:     doctorID,
		Date:         date,
		Extend:       extend,
	})
	if err != nil {
		switch {
		case errors.Is(err, getSlotSheet.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, getSlotSheet.ErrDateInPast):
			h.logger.Warn("GET /slots - Date in past: doctor_id=%d, date=%s", doctorID, r.URL.Query().Get("date"))
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getSlotSheet.ErrDoctorNotFound):
			h.logger.Warn("GET /slots - Doctor not found: department_id=%d, doctor_id=%d", departmentID, doctorID)
			handlers.RespondNotFound(w, msgDoctorNotFound)

		case errors.Is(err, getSlotSheet.ErrDepartmentNotFound):
			h.logger.Warn("GET /slots - Department not found: department_id=%d", departmentID)
			handlers.RespondNotFound(w, msgDepartmentNotFound)

		case errors.Is(err, getSlotSheet.ErrSheetNotFull):
			h.logger.Warn("GET /slots - Extension on non-full sheet: doctor_id=%d", doctorID)
			handlers.RespondError(w, http.StatusConflict, msgSheetNotFull)

		case errors.Is(err, getSlotSheet.ErrUnauthorized):
			h.logger.Warn("GET /slots - Upstream unauthorized: user_id=%d", session.UserID)
			handlers.RespondUnauthorized(w, msgUpstreamUnauthorized)

		default:
			h.logger.Error("GET /slots - Failed to build slot sheet: doctor_id=%d, error=%v", doctorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /slots - Slot sheet built: doctor_id=%d, date=%s, slots=%d, all_taken=%t",
		doctorID, result.Date.Format(domain.DateFormat), len(result.Slots), result.AllTaken)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
