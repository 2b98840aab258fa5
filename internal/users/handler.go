package users

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/task-manager/pkg/decode"
	"github.com/JaimeStill/task-manager/pkg/handlers"
	"github.com/JaimeStill/task-manager/pkg/routes"
)

type Handler struct {
	sys    System
	logger *slog.Logger
}

func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger,
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/users",
		Tags:        []string{"Users"},
		Description: "User records addressed by email",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List, OpenAPI: Spec.List},
			{Method: "GET", Pattern: "/{email}", Handler: h.FindByEmail, OpenAPI: Spec.FindByEmail},
			{Method: "POST", Pattern: "", Handler: h.Create, OpenAPI: Spec.Create},
		},
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.sys.List(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) FindByEmail(w http.ResponseWriter, r *http.Request) {
	result, err := h.sys.FindByEmail(r.Context(), r.PathValue("email"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := decode.Object(r.Body)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	id, err := h.sys.Create(r.Context(), body)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, CreateResponse{InsertedID: id})
}
