package delete_service_type

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/newcase/agendamento-service/internal/api/handlers"
	"github.com/newcase/agendamento-service/internal/api/middleware"
	"github.com/newcase/agendamento-service/internal/service/catalog"
)

const (
	msgInvalidServiceTypeID = "identificador de serviço inválido"
	msgServiceTypeNotFound  = "serviço não encontrado"
	msgAccessDenied         = "acesso negado"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/admin/service-types/{serviceTypeId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["serviceTypeId"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidServiceTypeID)
		return
	}

	userID := middleware.GetUserID(r.Context())

	if err := h.service.Delete(r.Context(), id, userID); err != nil {
		switch {
		case errors.Is(err, catalog.ErrAccessDenied):
			h.logger.Warn("DELETE /admin/service-types/{id} - Access denied: user=%s", userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, catalog.ErrServiceTypeNotFound):
			h.logger.Warn("DELETE /admin/service-types/{id} - Not found: id=%s", id)
			handlers.RespondNotFound(w, msgServiceTypeNotFound)

		default:
			h.logger.Error("DELETE /admin/service-types/{id} - Failed for id=%s: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondNoContent(w)
}
