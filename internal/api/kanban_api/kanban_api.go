package kanban_api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/majidisadev/simple-project-management-rsud/internal/api/middlewares"
	"github.com/majidisadev/simple-project-management-rsud/internal/model/kanban_model"
	"github.com/majidisadev/simple-project-management-rsud/internal/repository/kanban_repository"
	"github.com/majidisadev/simple-project-management-rsud/internal/services/auth_services"
	"github.com/majidisadev/simple-project-management-rsud/internal/services/kanban_services"

	"github.com/gorilla/mux"
)

func handleError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")

	if errors.Is(err, kanban_services.ErrMissingTitle) ||
		errors.Is(err, kanban_services.ErrInvalidStatus) ||
		errors.Is(err, kanban_services.ErrInvalidPriority) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": err.Error()})
		return
	}

	if errors.Is(err, kanban_repository.ErrTaskNotFound) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "Task not found"})
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

type TaskHandler struct {
	Service     *kanban_services.TaskService
	AuthService *auth_services.AuthService
}

func NewTaskHandler(s *kanban_services.TaskService, a *auth_services.AuthService) *TaskHandler {
	return &TaskHandler{Service: s, AuthService: a}
}

func (h *TaskHandler) RegisterRoutes(r *mux.Router) {
	r.Handle("/api/v1/kanban",
		middlewares.AuthMiddleware(h.AuthService, http.HandlerFunc(h.listAll)),
	).Methods("GET")
	r.Handle("/api/v1/kanban",
		middlewares.AuthMiddleware(h.AuthService, http.HandlerFunc(h.createTask)),
	).Methods("POST")
	r.Handle("/api/v1/kanban/{id}",
		middlewares.AuthMiddleware(h.AuthService, http.HandlerFunc(h.getTask)),
	).Methods("GET")
	r.Handle("/api/v1/kanban/{id}",
		middlewares.AuthMiddleware(h.AuthService, http.HandlerFunc(h.updateTask)),
	).Methods("PUT")
	r.Handle("/api/v1/kanban/{id}",
		middlewares.AuthMiddleware(h.AuthService, http.HandlerFunc(h.deleteTask)),
	).Methods("DELETE")
}

func (h *TaskHandler) listAll(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.Service.ListAll(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tasks)
}

func (h *TaskHandler) getTask(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	task, err := h.Service.GetByID(r.Context(), vars["id"])
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) createTask(w http.ResponseWriter, r *http.Request) {
	var req kanban_model.NewTask
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

	task, err := h.Service.Create(r.Context(), userID, req)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, task)
}

func (h *TaskHandler) updateTask(w http.ResponseWriter, r *http.Request) {
	var patch kanban_model.TaskPatch
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
	task, err := h.Service.Update(r.Context(), vars["id"], userID, patch)
	if err != nil {
		if errors.Is(err, kanban_repository.ErrTaskNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "Task not found or you do not have permission"})
			return
		}
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) deleteTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := middlewares.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "User authentication data missing", http.StatusInternalServerError)
		return
	}

	vars := mux.Vars(r)
	err := h.Service.Delete(r.Context(), vars["id"], userID)
	if err != nil {
		if errors.Is(err, kanban_repository.ErrTaskNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "Task not found or you do not have permission"})
			return
		}
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Task deleted successfully"})
}
