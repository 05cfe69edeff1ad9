package create_service_type

import (
	"errors"
	"net/http"

	"github.com/newcase/agendamento-service/internal/api/handlers"
	"github.com/newcase/agendamento-service/internal/api/middleware"
	"github.com/newcase/agendamento-service/internal/service/catalog"
	"github.com/newcase/agendamento-service/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgNameRequired       = "informe o nome do serviço"
	msgDuplicateName      = "já existe um serviço com este nome"
	msgAccessDenied       = "acesso negado"
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

// Handle POST /api/v1/admin/service-types
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateServiceTypeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/service-types - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = middleware.GetUserID(r.Context())

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrAccessDenied):
			h.logger.Warn("POST /admin/service-types - Access denied: user=%s", req.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, catalog.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgNameRequired)

		case errors.Is(err, catalog.ErrDuplicateName):
			h.logger.Warn("POST /admin/service-types - Duplicate name=%q", req.Name)
			handlers.RespondConflict(w, msgDuplicateName)

		default:
			h.logger.Error("POST /admin/service-types - Failed for user=%s: %v", req.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, result)
}
