package list_departments

import (
	"errors"
	"net/http"

	"github.com/m1shk4/HMS-AppointmentGateway/internal/api/handlers"
	"github.com/m1shk4/HMS-AppointmentGateway/internal/api/middleware"
	"github.com/m1shk4/HMS-AppointmentGateway/internal/service/catalog"
)

const msgUpstreamUnauthorized = "hospital API rejected the session credentials"

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

// Handle GET /api/v1/departments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "session required")
		return
	}

	departments, err := h.catalog.Departments(r.Context(), session.AccessToken)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrUnauthorized):
			h.logger.Warn("GET /departments - Upstream unauthorized: user_id=%d", session.UserID)
			handlers.RespondUnauthorized(w, msgUpstreamUnauthorized)
		default:
			h.logger.Error("GET /departments - Failed to list departments: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /departments - Returned %d departments, user_id=%d", len(departments), session.UserID)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(departments))
}
