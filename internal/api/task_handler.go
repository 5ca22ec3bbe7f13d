package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/taskboard/taskboard-api/internal/api/middleware"
	"github.com/taskboard/taskboard-api/internal/api/shared"
	"github.com/taskboard/taskboard-api/internal/domain"
	"github.com/taskboard/taskboard-api/internal/service/tasks"
	"github.com/taskboard/taskboard-api/internal/store"
)

// TaskHandler handles task board API requests. All of its endpoints
// require an authenticated session.
type TaskHandler struct {
	taskService *tasks.Service
	validator   *validator.Validate
}

// NewTaskHandler creates a new TaskHandler with the given dependencies.
func NewTaskHandler(taskService *tasks.Service) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		validator:   validator.New(),
	}
}

// GetBoard handles GET /api/tasks. It returns the user's full board with
// tasks grouped under their categories.
func (h *TaskHandler) GetBoard(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondUnauthorized(w, r)
		return
	}

	board, err := h.taskService.Board(r.Context(), userID)
	if err != nil {
		shared.RespondServerError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, board)
}

// CreateTask handles POST /api/tasks.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondUnauthorized(w, r)
		return
	}

	var req TaskInputRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondBadRequest(w, r)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondBadRequest(w, r)
		return
	}

	taskID, err := h.taskService.CreateTask(
		r.Context(),
		userID,
		req.Label,
		req.Description,
		domain.CategoryID(req.CategoryID),
	)
	if err != nil {
		shared.RespondServerError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, TaskResponse{
		TaskID:      string(taskID),
		Label:       req.Label,
		Description: req.Description,
	})
}

// ModifyTask handles PUT /api/tasks/{taskID}.
func (h *TaskHandler) ModifyTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondUnauthorized(w, r)
		return
	}

	taskID := chi.URLParam(r, "taskID")
	if taskID == "" {
		shared.RespondBadRequest(w, r)
		return
	}

	var req TaskInputRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondBadRequest(w, r)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondBadRequest(w, r)
		return
	}

	err := h.taskService.ModifyTask(
		r.Context(),
		userID,
		domain.TaskID(taskID),
		req.Label,
		req.Description,
		domain.CategoryID(req.CategoryID),
	)
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			shared.RespondWithErrorCode(w, r, CodeTaskNotFound)
			return
		}
		shared.RespondServerError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, struct{}{})
}

// DeleteTask handles DELETE /api/tasks/{taskID}.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondUnauthorized(w, r)
		return
	}

	taskID := chi.URLParam(r, "taskID")
	if taskID == "" {
		shared.RespondBadRequest(w, r)
		return
	}

	if err := h.taskService.DeleteTask(r.Context(), userID, domain.TaskID(taskID)); err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			shared.RespondWithErrorCode(w, r, CodeTaskNotFound)
			return
		}
		shared.RespondServerError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, struct{}{})
}
