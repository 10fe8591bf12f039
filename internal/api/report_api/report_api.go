package report_api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/majidisadev/simple-project-management-rsud/internal/api/middlewares"
	"github.com/majidisadev/simple-project-management-rsud/internal/model/date_model"
	"github.com/majidisadev/simple-project-management-rsud/internal/model/report_model"
	"github.com/majidisadev/simple-project-management-rsud/internal/repository/report_repository"
	"github.com/majidisadev/simple-project-management-rsud/internal/services/auth_services"
	"github.com/majidisadev/simple-project-management-rsud/internal/services/report_services"

	"github.com/gorilla/mux"
)

func handleError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")

	if errors.Is(err, report_services.ErrMissingFields) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": err.Error()})
		return
	}

	if errors.Is(err, report_repository.ErrReportNotFound) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "Report not found"})
		return
	}

	var reqErr *json.SyntaxError
	if errors.As(err, &reqErr) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "Invalid request payload"})
		return
	}

	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(map[string]string{"message": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

type ReportHandler struct {
	Service     *report_services.ReportService
	AuthService *auth_services.AuthService
}

func NewReportHandler(s *report_services.ReportService, a *auth_services.AuthService) *ReportHandler {
	return &ReportHandler{Service: s, AuthService: a}
}

func (h *ReportHandler) RegisterRoutes(r *mux.Router) {
	// calendar and search have to register before the {id} routes
	r.Handle("/api/v1/reports/calendar",
		middlewares.AuthMiddleware(h.AuthService, http.HandlerFunc(h.listByDateRange)),
	).Methods("GET")
	r.Handle("/api/v1/reports/search",
		middlewares.AuthMiddleware(h.AuthService, http.HandlerFunc(h.search)),
	).Methods("GET")
	r.Handle("/api/v1/reports",
		middlewares.AuthMiddleware(h.AuthService, http.HandlerFunc(h.listOwn)),
	).Methods("GET")
	r.Handle("/api/v1/reports",
		middlewares.AuthMiddleware(h.AuthService, http.HandlerFunc(h.createReport)),
	).Methods("POST")
	r.Handle("/api/v1/reports/{id}",
		middlewares.AuthMiddleware(h.AuthService, http.HandlerFunc(h.getReport)),
	).Methods("GET")
	r.Handle("/api/v1/reports/{id}",
		middlewares.AuthMiddleware(h.AuthService, http.HandlerFunc(h.updateReport)),
	).Methods("PUT")
	r.Handle("/api/v1/reports/{id}",
		middlewares.AuthMiddleware(h.AuthService, http.HandlerFunc(h.deleteReport)),
	).Methods("DELETE")
}

func (h *ReportHandler) listOwn(w http.ResponseWriter, r *http.Request) {
	userID, ok := middlewares.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "User authentication data missing", http.StatusInternalServerError)
		return
	}

	reports, err := h.Service.ListOwn(r.Context(), userID)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, reports)
}

func (h *ReportHandler) listByDateRange(w http.ResponseWriter, r *http.Request) {
	var start, end date_model.Day
	startStr := r.URL.Query().Get("startDate")
	endStr := r.URL.Query().Get("endDate")

	if startStr != "" && endStr != "" {
		var err error
		if start, err = date_model.Parse(startStr); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid startDate"})
			return
		}
		if end, err = date_model.Parse(endStr); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid endDate"})
			return
		}
	}

	reports, err := h.Service.ListByDateRange(r.Context(), start, end)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, reports)
}

func (h *ReportHandler) search(w http.ResponseWriter, r *http.Request) {
	reports, err := h.Service.Search(r.Context(), r.URL.Query().Get("keyword"))
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, reports)
}

func (h *ReportHandler) getReport(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	report, err := h.Service.GetByID(r.Context(), vars["id"])
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

func (h *ReportHandler) createReport(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date    date_model.Day `json:"date"`
		Title   string         `json:"title"`
		Content string         `json:"content"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid request payload"})
		return
	}
	defer r.Body.Close()

	userID, ok := middlewares.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "User authentication data missing", http.StatusInternalServerError)
		return
	}

	report, err := h.Service.Create(r.Context(), userID, req.Date, req.Title, req.Content)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, report)
}

func (h *ReportHandler) updateReport(w http.ResponseWriter, r *http.Request) {
	var patch report_model.ReportPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid request payload"})
		return
	}
	defer r.Body.Close()

	userID, ok := middlewares.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "User authentication data missing", http.StatusInternalServerError)
		return
	}

	vars := mux.Vars(r)
	report, err := h.Service.Update(r.Context(), vars["id"], userID, patch)
	if err != nil {
		if errors.Is(err, report_repository.ErrReportNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "Report not found or you do not have permission"})
			return
		}
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

func (h *ReportHandler) deleteReport(w http.ResponseWriter, r *http.Request) {
	userID, ok := middlewares.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "User authentication data missing", http.StatusInternalServerError)
		return
	}

	vars := mux.Vars(r)
	err := h.Service.Delete(r.Context(), vars["id"], userID)
	if err != nil {
		if errors.Is(err, report_repository.ErrReportNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "Report not found or you do not have permission"})
			return
		}
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Report deleted successfully"})
}
