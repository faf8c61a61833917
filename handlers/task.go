package handlers

import (
	"net/http"

	"task-tracker/models"
	"task-tracker/utils"
)

// taskRequest uses pointers so that absent fields can be told apart from empty ones.
type taskRequest struct {
	Title       *string            `json:"title"`
	Description *string            `json:"description"`
	DueDate     *string            `json:"due_date"`
	Status      *models.TaskStatus `json:"status"`
}

func (req taskRequest) input() (models.TaskInput, string) {
	switch {
	case req.Title == nil:
		return models.TaskInput{}, "title is required"
	case req.Description == nil:
		return models.TaskInput{}, "description is required"
	case req.DueDate == nil:
		return models.TaskInput{}, "due_date is required"
	case req.Status == nil:
		return models.TaskInput{}, "status is required"
	}
	return models.TaskInput{
		Title:       *req.Title,
		Description: *req.Description,
		DueDate:     *req.DueDate,
		Status:      *req.Status,
	}, ""
}

func decodeTask(w http.ResponseWriter, r *http.Request) (models.TaskInput, bool) {
	var req taskRequest
	if !decodeBody(w, r, &req) {
		return models.TaskInput{}, false
	}
	in, problem := req.input()
	if problem != "" {
		utils.WriteError(w, http.StatusBadRequest, problem)
		return models.TaskInput{}, false
	}
	return in, true
}

// CreateTask godoc
// @Summary      Create a task for a user
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        userId  path      string            true  "User id"
// @Param        task    body      models.TaskInput  true  "Task to create"
// @Success      200     {string}  string  "Task id"
// @Failure      400     {object}  utils.ErrorResponse
// @Failure      404     {object}  utils.ErrorResponse
// @Router       /users/{userId}/tasks [post]
func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}
	in, ok := decodeTask(w, r)
	if !ok {
		return
	}

	taskID, err := h.store.CreateTask(userID, in)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, taskID)
}

// GetTasks godoc
// @Summary      List a user's tasks
// @Tags         tasks
// @Produce      json
// @Param        userId  path      string  true  "User id"
// @Success      200     {object}  map[string]models.Task
// @Failure      404     {object}  utils.ErrorResponse
// @Router       /users/{userId}/tasks [get]
func (h *Handler) GetTasks(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}

	tasks, err := h.store.ListTasks(userID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, tasks)
}

// GetTask godoc
// @Summary      Get a single task
// @Tags         tasks
// @Produce      json
// @Param        userId  path      string  true  "User id"
// @Param        taskId  path      string  true  "Task id"
// @Success      200     {object}  models.Task
// @Failure      404     {object}  utils.ErrorResponse
// @Router       /users/{userId}/tasks/{taskId} [get]
func (h *Handler) GetTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}
	taskID, ok := pathID(w, r, "taskId")
	if !ok {
		return
	}

	task, err := h.store.GetTask(userID, taskID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, task)
}

// UpdateTask godoc
// @Summary      Replace a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        userId  path      string            true  "User id"
// @Param        taskId  path      string            true  "Task id"
// @Param        task    body      models.TaskInput  true  "New task fields"
// @Success      200     {object}  models.Task
// @Failure      400     {object}  utils.ErrorResponse
// @Failure      404     {object}  utils.ErrorResponse
// @Router       /users/{userId}/tasks/{taskId} [put]
func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}
	taskID, ok := pathID(w, r, "taskId")
	if !ok {
		return
	}
	in, ok := decodeTask(w, r)
	if !ok {
		return
	}

	task, err := h.store.UpdateTask(userID, taskID, in)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, task)
}

// DeleteTask godoc
// @Summary      Delete a task
// @Tags         tasks
// @Produce      json
// @Param        userId  path      string  true  "User id"
// @Param        taskId  path      string  true  "Task id"
// @Success      200     {string}  string  "Success"
// @Failure      404     {object}  utils.ErrorResponse
// @Router       /users/{userId}/tasks/{taskId} [delete]
func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}
	taskID, ok := pathID(w, r, "taskId")
	if !ok {
		return
	}

	if err := h.store.DeleteTask(userID, taskID); err != nil {
		writeStoreError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, "Success")
}
