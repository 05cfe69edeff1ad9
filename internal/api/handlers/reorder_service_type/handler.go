package reorder_service_type

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/newcase/agendamento-service/internal/api/handlers"
	"github.com/newcase/agendamento-service/internal/api/middleware"
	"github.com/newcase/agendamento-service/internal/service/catalog"
	"github.com/newcase/agendamento-service/internal/service/catalog/models"
)

const (
	msgInvalidServiceTypeID = "identificador de serviço inválido"
	msgInvalidRequestBody   = "corpo da requisição inválido"
	msgInvalidDirection     = "direção inválida, use up ou down"
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

// Handle PATCH /api/v1/admin/service-types/{serviceTypeId}/move
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["serviceTypeId"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidServiceTypeID)
		return
	}

	var req models.MoveRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/service-types/{id}/move - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = middleware.GetUserID(r.Context())

	if err := h.service.Move(r.Context(), id, &req); err != nil {
		switch {
		case errors.Is(err, catalog.ErrAccessDenied):
			h.logger.Warn("PATCH /admin/service-types/{id}/move - Access denied: user=%s", req.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, catalog.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidDirection)

		case errors.Is(err, catalog.ErrServiceTypeNotFound):
			h.logger.Warn("PATCH /admin/service-types/{id}/move - Not found: id=%s", id)
			handlers.RespondNotFound(w, msgServiceTypeNotFound)

		default:
			h.logger.Error("PATCH /admin/service-types/{id}/move - Failed for id=%s: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondNoContent(w)
}
