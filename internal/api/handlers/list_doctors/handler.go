package list_doctors

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m1shk4/HMS-AppointmentGateway/internal/api/handlers"
	"github.com/m1shk4/HMS-AppointmentGateway/internal/api/middleware"
	"github.com/m1shk4/HMS-AppointmentGateway/internal/service/catalog"
)

const (
	msgInvalidDepartmentID  = "invalid department id"
	msgDepartmentNotFound   = "department not found"
	msgUpstreamUnauthorized = "hospital API rejected the session credentials"
)

type Handler struct {
	catalog CatalogService
	logger  Logger
}

func NewHandler(catalog CatalogService, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/departments/{departmentId}/doctors
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "session required")
		return
	}

	departmentID, err := strconv.ParseInt(mux.Vars(r)["departmentId"], 10, 64)
	if err != nil || departmentID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidDepartmentID)
		return
	}

	doctors, err := h.catalog.Doctors(r.Context(), session.AccessToken, departmentID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrDepartmentNotFound):
			h.logger.Warn("GET /departments/{id}/doctors - Department not found: department_id=%d", departmentID)
			handlers.RespondNotFound(w, msgDepartmentNotFound)
		case errors.Is(err, catalog.ErrUnauthorized):
			h.logger.Warn("GET /departments/{id}/doctors - Upstream unauthorized: user_id=%d", session.UserID)
			handlers.RespondUnauthorized(w, msgUpstreamUnauthorized)
		default:
			h.logger.Error("GET /departments/{id}/doctors - Failed to list doctors: department_id=%d, error=%v", departmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /departments/{id}/doctors - Returned %d doctors, department_id=%d", len(doctors), departmentID)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(doctors))
}
