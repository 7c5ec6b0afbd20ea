package backuphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"simpeg/internal/domain/audit"
	"simpeg/internal/domain/auth"
	"simpeg/internal/domain/dataset"
	"simpeg/internal/domain/employee"
	"simpeg/internal/transport/http/api"
	"simpeg/internal/transport/http/middleware"
)

type Handler struct {
	Store *employee.Store
	Audit *audit.Logger
}

func NewHandler(store *employee.Store, auditLog *audit.Logger) *Handler {
	return &Handler{Store: store, Audit: auditLog}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/backup", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.OpExport)).Get("/export.csv", h.handleExportCSV)
		r.With(middleware.RequirePermission(auth.OpExport)).Get("/template.csv", h.handleTemplateCSV)
		r.With(middleware.RequirePermission(auth.OpBulkData)).Post("/restore", h.handleRestore)
		r.With(middleware.RequirePermission(auth.OpBulkData)).Post("/wipe", h.handleWipe)
	})
}

func (h *Handler) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	recs, err := h.Store.Scan(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "storage_error", "failed to load employees", middleware.GetRequestID(r.Context()))
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="backup_pegawai.csv"`)
	if err := dataset.WriteCSV(w, employee.Columns, recs); err != nil {
		// headers are already on the wire, nothing left to signal but a log
		slog.Warn("csv export failed mid-stream", "err", err)
	}
}

func (h *Handler) handleTemplateCSV(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="template_simpeg.csv"`)
	_ = dataset.WriteTemplateCSV(w)
}

type restoreRequest struct {
	Confirm bool          `json:"confirm"`
	Table   dataset.Table `json:"table"`
}

// handleRestore replaces the whole table from an externally parsed tabular
// payload. All-or-nothing: either every row lands or none do.
func (h *Handler) handleRestore(w http.ResponseWriter, r *http.Request) {
	var payload restoreRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	if !payload.Confirm {
		api.Fail(w, http.StatusPreconditionRequired, "confirmation_required", "set confirm to replace all records", middleware.GetRequestID(r.Context()))
		return
	}

	recs, missing, err := dataset.Reconcile(payload.Table)
	if err != nil {
		if errors.Is(err, dataset.ErrNoKeyColumn) {
			api.Fail(w, http.StatusBadRequest, "missing_key_column", "table must carry a NIP column", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusBadRequest, "invalid_table", "failed to reconcile table", middleware.GetRequestID(r.Context()))
		return
	}

	if err := h.Store.ReplaceAll(r.Context(), recs); err != nil {
		api.Fail(w, http.StatusInternalServerError, "storage_error", "failed to replace records", middleware.GetRequestID(r.Context()))
		return
	}

	user, _ := middleware.GetUser(r.Context())
	h.Audit.Append(r.Context(), user.Username, user.Role, audit.ActionRestore, audit.TargetAll)

	api.Success(w, map[string]any{
		"imported":       len(recs),
		"missingColumns": missing,
	}, middleware.GetRequestID(r.Context()))
}

type wipeRequest struct {
	Confirm bool `json:"confirm"`
}

func (h *Handler) handleWipe(w http.ResponseWriter, r *http.Request) {
	var payload wipeRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	if !payload.Confirm {
		api.Fail(w, http.StatusPreconditionRequired, "confirmation_required", "set confirm to wipe all records", middleware.GetRequestID(r.Context()))
		return
	}

	if err := h.Store.ReplaceAll(r.Context(), nil); err != nil {
		api.Fail(w, http.StatusInternalServerError, "storage_error", "failed to wipe records", middleware.GetRequestID(r.Context()))
		return
	}

	user, _ := middleware.GetUser(r.Context())
	h.Audit.Append(r.Context(), user.Username, user.Role, audit.ActionDelete, audit.TargetAll)
	api.Success(w, map[string]string{"wiped": audit.TargetAll}, middleware.GetRequestID(r.Context()))
}
