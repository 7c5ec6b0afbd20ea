package usershandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"simpeg/internal/domain/audit"
	"simpeg/internal/domain/auth"
	"simpeg/internal/transport/http/api"
	"simpeg/internal/transport/http/middleware"
)

type Handler struct {
	Registry *auth.Registry
	Audit    *audit.Logger
}

func NewHandler(registry *auth.Registry, auditLog *audit.Logger) *Handler {
	return &Handler{Registry: registry, Audit: auditLog}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/users", func(r chi.Router) {
		r.Use(middleware.RequirePermission(auth.OpManageUsers))
		r.Get("/", h.handleList)
		r.Post("/", h.handleAdd)
		r.Post("/{username}/reset-password", h.handleResetPassword)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Registry.List(), middleware.GetRequestID(r.Context()))
}

type addUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (h *Handler) handleAdd(w http.ResponseWriter, r *http.Request) {
	var payload addUserRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Username == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "username, password and role are required", middleware.GetRequestID(r.Context()))
		return
	}

	if err := h.Registry.Add(payload.Username, payload.Password, payload.Role); err != nil {
		switch {
		case errors.Is(err, auth.ErrWeakPassword):
			api.Fail(w, http.StatusBadRequest, "weak_password", err.Error(), middleware.GetRequestID(r.Context()))
		case errors.Is(err, auth.ErrDuplicateUser):
			api.Fail(w, http.StatusConflict, "duplicate_user", "username already exists", middleware.GetRequestID(r.Context()))
		case errors.Is(err, auth.ErrInvalidRole):
			api.Fail(w, http.StatusBadRequest, "invalid_role", "role must be Admin, Supervisor or User", middleware.GetRequestID(r.Context()))
		default:
			api.Fail(w, http.StatusInternalServerError, "registry_error", "failed to add user", middleware.GetRequestID(r.Context()))
		}
		return
	}

	user, _ := middleware.GetUser(r.Context())
	h.Audit.Append(r.Context(), user.Username, user.Role, audit.ActionAddUser, payload.Username)
	api.Created(w, map[string]string{"username": payload.Username, "role": payload.Role}, middleware.GetRequestID(r.Context()))
}

type resetPasswordRequest struct {
	Password string `json:"password"`
}

func (h *Handler) handleResetPassword(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	var payload resetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	if err := h.Registry.ResetPassword(username, payload.Password); err != nil {
		switch {
		case errors.Is(err, auth.ErrWeakPassword):
			api.Fail(w, http.StatusBadRequest, "weak_password", err.Error(), middleware.GetRequestID(r.Context()))
		case errors.Is(err, auth.ErrUnknownUser):
			api.Fail(w, http.StatusNotFound, "not_found", "user not found", middleware.GetRequestID(r.Context()))
		default:
			api.Fail(w, http.StatusInternalServerError, "registry_error", "failed to reset password", middleware.GetRequestID(r.Context()))
		}
		return
	}

	user, _ := middleware.GetUser(r.Context())
	h.Audit.Append(r.Context(), user.Username, user.Role, audit.ActionResetPassword, username)
	api.Success(w, map[string]string{"username": username}, middleware.GetRequestID(r.Context()))
}
