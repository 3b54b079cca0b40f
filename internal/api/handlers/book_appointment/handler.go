package book_appointment

import (
	"errors"
	"net/http"

	"github.com/m1shk4/HMS-AppointmentGateway/internal/api/handlers"
	"github.com/m1shk4/HMS-AppointmentGateway/internal/api/middleware"
	"github.com/m1shk4/HMS-AppointmentGateway/internal/integrations/hospitalapi"
	bookAppointment "github.com/m1shk4/HMS-AppointmentGateway/internal/usecase/book_appointment"
)

const (
	msgInvalidRequestBody   = "invalid request body"
	msgInvalidDateOrTime    = "invalid date or start time, expected YYYY-MM-DD and HH:MM"
	msgDoctorNotFound       = "doctor not found"
	msgDateInPast           = "date is in the past"
	msgInvalidSlot          = "time is not on the doctor's slot grid"
	msgSlotTaken            = "slot is already booked"
	msgSlotExpired          = "slot has expired"
	msgSheetNotFull         = "sheet still has free slots, extension not allowed"
	msgUpstreamUnauthorized = "hospital API rejected the session credentials"
)

type Handler struct {
	useCase BookAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase BookAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "session required")
		return
	}

	var req BookAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(session.AccessToken)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var rejection *hospitalapi.RejectionError

		switch {
		case errors.Is(err, bookAppointment.ErrMissingPatient),
			errors.Is(err, bookAppointment.ErrMissingDepartment),
			errors.Is(err, bookAppointment.ErrMissingDoctor),
			errors.Is(err, bookAppointment.ErrMissingDate),
			errors.Is(err, bookAppointment.ErrMissingSlot):
			h.logger.Warn("POST /appointments - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, bookAppointment.ErrDateInPast):
			h.logger.Warn("POST /appointments - Date in past: doctor_id=%d, date=%s", req.DoctorID, req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, bookAppointment.ErrInvalidSlot):
			h.logger.Warn("POST /appointments - Off-grid time: doctor_id=%d, time=%s", req.DoctorID, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, bookAppointment.ErrDoctorNotFound):
			h.logger.Warn("POST /appointments - Doctor not found: department_id=%d, doctor_id=%d", req.DepartmentID, req.DoctorID)
			handlers.RespondNotFound(w, msgDoctorNotFound)

		case errors.Is(err, bookAppointment.ErrSlotTaken):
			h.logger.Warn("POST /appointments - Slot taken: doctor_id=%d, time=%s", req.DoctorID, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, bookAppointment.ErrSlotExpired):
			h.logger.Warn("POST /appointments - Slot expired: doctor_id=%d, time=%s", req.DoctorID, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotExpired)

		case errors.Is(err, bookAppointment.ErrSheetNotFull):
			h.logger.Warn("POST /appointments - Extension on non-full sheet: doctor_id=%d", req.DoctorID)
			handlers.RespondError(w, http.StatusConflict, msgSheetNotFull)

		case errors.Is(err, bookAppointment.ErrUnauthorized):
			h.logger.Warn("POST /appointments - Upstream unauthorized: user_id=%d", session.UserID)
			handlers.RespondUnauthorized(w, msgUpstreamUnauthorized)

		case errors.As(err, &rejection):
			// Surface the upstream rejection reason verbatim.
			h.logger.Warn("POST /appointments - Upstream rejected booking: doctor_id=%d, reason=%s", req.DoctorID, rejection.Message)
			handlers.RespondError(w, http.StatusUnprocessableEntity, rejection.Message)

		default:
			h.logger.Error("POST /appointments - Failed to book appointment: doctor_id=%d, error=%v", req.DoctorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment booked: appointment_id=%d, token=%d, doctor_id=%d, user_id=%d",
		result.AppointmentID, result.TokenNumber, result.DoctorID, session.UserID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
