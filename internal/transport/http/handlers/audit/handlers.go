package audithandler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"simpeg/internal/domain/audit"
	"simpeg/internal/domain/auth"
	"simpeg/internal/transport/http/api"
	"simpeg/internal/transport/http/middleware"
)

type Handler struct {
	Audit *audit.Logger
}

func NewHandler(auditLog *audit.Logger) *Handler {
	return &Handler{Audit: auditLog}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/audit", func(r chi.Router) {
		r.Use(middleware.RequirePermission(auth.OpViewAudit))
		r.Get("/", h.handleList)
		r.Get("/today", h.handleToday)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := audit.Filter{
		Roles:   splitParam(query.Get("role")),
		Actions: splitParam(query.Get("action")),
		Match:   strings.TrimSpace(query.Get("q")),
	}

	entries, err := h.Audit.Query(r.Context(), filter)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "storage_error", "failed to query audit log", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, entries, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleToday(w http.ResponseWriter, r *http.Request) {
	total, err := h.Audit.CountToday(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "storage_error", "failed to count audit activity", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]int{"today": total}, middleware.GetRequestID(r.Context()))
}

func splitParam(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
