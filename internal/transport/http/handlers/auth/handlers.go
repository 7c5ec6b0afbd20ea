package authhandler

import (
	"encoding/json"
	"net/http"
	"time"

	"simpeg/internal/domain/audit"
	"simpeg/internal/domain/auth"
	"simpeg/internal/transport/http/api"
	"simpeg/internal/transport/http/middleware"
)

type Handler struct {
	Registry *auth.Registry
	Audit    *audit.Logger
	Secret   string
	TokenTTL time.Duration
}

func NewHandler(registry *auth.Registry, auditLog *audit.Logger, secret string, ttl time.Duration) *Handler {
	return &Handler{Registry: registry, Audit: auditLog, Secret: secret, TokenTTL: ttl}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var payload loginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	account, err := h.Registry.Authenticate(payload.Username, payload.Password)
	if err != nil {
		// Unknown user and wrong password stay distinct internally; the
		// response does not say which one happened.
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials", middleware.GetRequestID(r.Context()))
		return
	}

	user := auth.UserContext{Username: account.Username, Role: account.Role}
	token, err := auth.GenerateToken(h.Secret, user, h.TokenTTL)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "token_error", "failed to issue token", middleware.GetRequestID(r.Context()))
		return
	}

	h.Audit.Append(r.Context(), user.Username, user.Role, audit.ActionLogin, user.Username)

	api.Success(w, map[string]any{
		"token":    token,
		"username": user.Username,
		"role":     user.Role,
	}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	h.Audit.Append(r.Context(), user.Username, user.Role, audit.ActionLogout, user.Username)
	api.Success(w, map[string]string{"status": "logged out"}, middleware.GetRequestID(r.Context()))
}
