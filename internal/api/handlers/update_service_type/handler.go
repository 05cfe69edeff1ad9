package update_service_type

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
	msgNameRequired         = "informe o nome do serviço"
	msgDuplicateName        = "já existe um serviço com este nome"
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

// Handle PUT /api/v1/admin/service-types/{serviceTypeId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["serviceTypeId"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidServiceTypeID)
		return
	}

	var req models.UpdateServiceTypeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/service-types/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = middleware.GetUserID(r.Context())

	if err := h.service.Update(r.Context(), id, &req); err != nil {
		h.respondServiceError(w, "PUT /admin/service-types/{id}", id, req.UserID, err)
		return
	}

	handlers.RespondNoContent(w)
}

// HandleSetActive PATCH /api/v1/admin/service-types/{serviceTypeId}/active
func (h *Handler) HandleSetActive(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["serviceTypeId"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidServiceTypeID)
		return
	}

	var req models.SetActiveRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/service-types/{id}/active - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = middleware.GetUserID(r.Context())

	if err := h.service.SetActive(r.Context(), id, &req); err != nil {
		h.respondServiceError(w, "PATCH /admin/service-types/{id}/active", id, req.UserID, err)
		return
	}

	handlers.RespondNoContent(w)
}

func (h *Handler) respondServiceError(w http.ResponseWriter, route string, id uuid.UUID, userID string, err error) {
	switch {
	case errors.Is(err, catalog.ErrAccessDenied):
		h.logger.Warn("%s - Access denied: user=%s", route, userID)
		handlers.RespondForbidden(w, msgAccessDenied)

	case errors.Is(err, catalog.ErrInvalidInput):
		handlers.RespondBadRequest(w, msgNameRequired)

	case errors.Is(err, catalog.ErrServiceTypeNotFound):
		h.logger.Warn("%s - Not found: id=%s", route, id)
		handlers.RespondNotFound(w, msgServiceTypeNotFound)

	case errors.Is(err, catalog.ErrDuplicateName):
		handlers.RespondConflict(w, msgDuplicateName)

	default:
		h.logger.Error("%s - Failed for id=%s: %v", route, id, err)
		handlers.RespondInternalError(w)
	}
}
