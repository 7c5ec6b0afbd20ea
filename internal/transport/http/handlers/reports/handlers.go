package reportshandler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"simpeg/internal/domain/audit"
	"simpeg/internal/domain/auth"
	"simpeg/internal/domain/employee"
	"simpeg/internal/domain/reports"
	"simpeg/internal/transport/http/api"
	"simpeg/internal/transport/http/middleware"
)

type Handler struct {
	Store    *employee.Store
	Registry *auth.Registry
	Audit    *audit.Logger
}

func NewHandler(store *employee.Store, registry *auth.Registry, auditLog *audit.Logger) *Handler {
	return &Handler{Store: store, Registry: registry, Audit: auditLog}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.Use(middleware.RequirePermission(auth.OpViewRecords))
		r.Get("/dashboard", h.handleDashboard)
		r.Get("/gender", h.handleGender)
		r.Get("/age", h.handleAge)
		r.Get("/education", h.handleEducation)
		r.Get("/units", h.handleUnits)
		r.Get("/trend", h.handleTrend)
		r.Get("/search", h.handleSearch)
	})
}

// filterFromQuery builds the conjunctive report filter from repeated or
// comma-separated query parameters.
func filterFromQuery(r *http.Request) reports.Filter {
	query := r.URL.Query()
	return reports.Filter{
		Units:      multiValue(query["unit"]),
		Titles:     multiValue(query["title"]),
		Educations: multiValue(query["education"]),
		Search:     strings.TrimSpace(query.Get("q")),
	}
}

func multiValue(values []string) []string {
	var out []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				out = append(out, trimmed)
			}
		}
	}
	return out
}

func (h *Handler) filteredScan(r *http.Request) ([]employee.Record, error) {
	recs, err := h.Store.Scan(r.Context())
	if err != nil {
		return nil, err
	}
	return reports.Apply(recs, filterFromQuery(r)), nil
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	recs, err := h.Store.Scan(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "storage_error", "failed to load employees", middleware.GetRequestID(r.Context()))
		return
	}

	activityToday, err := h.Audit.CountToday(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "storage_error", "failed to count audit activity", middleware.GetRequestID(r.Context()))
		return
	}

	api.Success(w, map[string]any{
		"totalEmployees": len(recs),
		"totalUsers":     h.Registry.Count(),
		"genderSplit":    reports.GenderSplit(recs),
		"activityToday":  activityToday,
	}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGender(w http.ResponseWriter, r *http.Request) {
	recs, err := h.filteredScan(r)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "storage_error", "failed to load employees", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, reports.GenderSplit(recs), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleAge(w http.ResponseWriter, r *http.Request) {
	recs, err := h.filteredScan(r)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "storage_error", "failed to load employees", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, reports.AgeHistogram(recs, time.Now()), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleEducation(w http.ResponseWriter, r *http.Request) {
	recs, err := h.filteredScan(r)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "storage_error", "failed to load employees", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, reports.EducationHistogram(recs), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUnits(w http.ResponseWriter, r *http.Request) {
	recs, err := h.filteredScan(r)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "storage_error", "failed to load employees", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, reports.UnitCounts(recs), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleTrend(w http.ResponseWriter, r *http.Request) {
	recs, err := h.filteredScan(r)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "storage_error", "failed to load employees", middleware.GetRequestID(r.Context()))
		return
	}

	payload := map[string]any{
		"years":  reports.TrendYears(recs),
		"yearly": reports.YearlyTrend(recs),
	}

	if yearParam := r.URL.Query().Get("year"); yearParam != "" {
		year, err := strconv.Atoi(yearParam)
		if err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid_year", "year must be a number", middleware.GetRequestID(r.Context()))
			return
		}
		payload["monthly"] = reports.MonthlyTrend(recs, year)
		payload["year"] = year
	}

	switch r.URL.Query().Get("by") {
	case "":
	case "gender":
		payload["series"] = reports.YearlyTrendBy(recs, reports.GenderLabel)
	case "education":
		payload["series"] = reports.YearlyTrendBy(recs, reports.EducationLabel)
	default:
		api.Fail(w, http.StatusBadRequest, "invalid_dimension", "by must be gender or education", middleware.GetRequestID(r.Context()))
		return
	}

	api.Success(w, payload, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	recs, err := h.filteredScan(r)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "storage_error", "failed to load employees", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]any{
		"total":     len(recs),
		"employees": recs,
	}, middleware.GetRequestID(r.Context()))
}
