package employeehandler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"simpeg/internal/domain/audit"
	"simpeg/internal/domain/auth"
	"simpeg/internal/domain/employee"
	"simpeg/internal/domain/profile"
	"simpeg/internal/transport/http/api"
	"simpeg/internal/transport/http/middleware"
)

type Handler struct {
	Store          *employee.Store
	Audit          *audit.Logger
	Photos         *profile.PhotoStore
	MaxUploadBytes int64
}

func NewHandler(store *employee.Store, auditLog *audit.Logger, photos *profile.PhotoStore, maxUploadBytes int64) *Handler {
	return &Handler{Store: store, Audit: auditLog, Photos: photos, MaxUploadBytes: maxUploadBytes}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.OpViewRecords)).Get("/", h.handleList)
		r.With(middleware.RequirePermission(auth.OpManageRecords)).Post("/", h.handleCreate)
		r.Route("/{nip}", func(r chi.Router) {
			r.With(middleware.RequirePermission(auth.OpViewRecords)).Get("/", h.handleGet)
			r.With(middleware.RequirePermission(auth.OpManageRecords)).Put("/", h.handleUpdate)
			r.With(middleware.RequirePermission(auth.OpManageRecords)).Delete("/", h.handleDelete)
			r.With(middleware.RequirePermission(auth.OpManageRecords)).Post("/photo", h.handleAttachPhoto)
			r.With(middleware.RequirePermission(auth.OpExport)).Get("/profile.pdf", h.handleProfilePDF)
		})
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	recs, err := h.Store.Scan(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "storage_error", "failed to load employees", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]any{"columns": employee.Columns, "employees": recs}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	rec, err := h.Store.Get(r.Context(), chi.URLParam(r, "nip"))
	if errors.Is(err, employee.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "storage_error", "failed to load employee", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, rec, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var fields map[string]string
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	rec := employee.FromFields(fields)
	if err := h.Store.Upsert(r.Context(), rec); err != nil {
		if errors.Is(err, employee.ErrMissingKey) {
			api.Fail(w, http.StatusBadRequest, "missing_key", "NIP is required", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "storage_error", "failed to save employee", middleware.GetRequestID(r.Context()))
		return
	}

	user, _ := middleware.GetUser(r.Context())
	h.Audit.Append(r.Context(), user.Username, user.Role, audit.ActionInsert, rec.NIP)
	api.Created(w, rec, middleware.GetRequestID(r.Context()))
}

// handleUpdate is an explicit read-modify-write: the full row is loaded,
// the named fields are overwritten, and the whole row is written back.
// Last write wins.
func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	nip := chi.URLParam(r, "nip")
	rec, err := h.Store.Get(r.Context(), nip)
	if errors.Is(err, employee.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "storage_error", "failed to load employee", middleware.GetRequestID(r.Context()))
		return
	}

	var fields map[string]string
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	delete(fields, employee.KeyColumn) // the key is the route parameter

	rec.Apply(fields)
	if err := h.Store.Upsert(r.Context(), *rec); err != nil {
		api.Fail(w, http.StatusInternalServerError, "storage_error", "failed to save employee", middleware.GetRequestID(r.Context()))
		return
	}

	user, _ := middleware.GetUser(r.Context())
	h.Audit.Append(r.Context(), user.Username, user.Role, audit.ActionUpdate, nip)
	api.Success(w, rec, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	nip := chi.URLParam(r, "nip")
	matched, err := h.Store.Delete(r.Context(), nip)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "storage_error", "failed to delete employee", middleware.GetRequestID(r.Context()))
		return
	}
	if !matched {
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
	}

	user, _ := middleware.GetUser(r.Context())
	h.Audit.Append(r.Context(), user.Username, user.Role, audit.ActionDelete, nip)
	api.Success(w, map[string]string{"deleted": nip}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleAttachPhoto(w http.ResponseWriter, r *http.Request) {
	nip := chi.URLParam(r, "nip")
	rec, err := h.Store.Get(r.Context(), nip)
	if errors.Is(err, employee.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "storage_error", "failed to load employee", middleware.GetRequestID(r.Context()))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.MaxUploadBytes)
	if err := r.ParseMultipartForm(h.MaxUploadBytes); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_upload", "invalid photo upload", middleware.GetRequestID(r.Context()))
		return
	}
	file, _, err := r.FormFile("photo")
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_upload", "photo field is required", middleware.GetRequestID(r.Context()))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_upload", "failed to read photo", middleware.GetRequestID(r.Context()))
		return
	}

	path, err := h.Photos.Save(nip, data)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "storage_error", "failed to store photo", middleware.GetRequestID(r.Context()))
		return
	}

	rec.Foto = path
	if err := h.Store.Upsert(r.Context(), *rec); err != nil {
		api.Fail(w, http.StatusInternalServerError, "storage_error", "failed to save employee", middleware.GetRequestID(r.Context()))
		return
	}

	user, _ := middleware.GetUser(r.Context())
	h.Audit.Append(r.Context(), user.Username, user.Role, audit.ActionUpdate, nip)
	api.Success(w, map[string]string{"photo": path}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleProfilePDF(w http.ResponseWriter, r *http.Request) {
	nip := chi.URLParam(r, "nip")
	rec, err := h.Store.Get(r.Context(), nip)
	if errors.Is(err, employee.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "storage_error", "failed to load employee", middleware.GetRequestID(r.Context()))
		return
	}

	payload, err := profile.RenderPDF(*rec, rec.Foto)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "render_error", "failed to render profile", middleware.GetRequestID(r.Context()))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="profil_`+nip+`.pdf"`)
	_, _ = w.Write(payload)
}
