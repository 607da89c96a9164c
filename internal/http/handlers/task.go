package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"tasklist_api/internal/domain"
	"tasklist_api/internal/service"
	"tasklist_api/internal/ws"

	"github.com/gin-gonic/gin"
)

type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

// verifyOwner runs the access guard against the path user id. On mismatch it
// writes the 403 response and reports false.
func (h *Handler) verifyOwner(c *gin.Context) (string, bool) {
	authUserID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return "", false
	}
	if err := service.VerifyAccess(c.Param("user_id"), authUserID); err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
		return "", false
	}
	return authUserID, true
}

func taskID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("task_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task id"})
		return 0, false
	}
	return id, true
}

func taskError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
}

// ListTasks returns the caller's tasks, optionally filtered by ?status= and
// ordered by ?sort=. Unknown values fall through to "all" / store order.
func (h *Handler) ListTasks(c *gin.Context) {
	owner, ok := h.verifyOwner(c)
	if !ok {
		return
	}

	status := c.DefaultQuery("status", "all")
	sort := c.DefaultQuery("sort", "created_at")

	tasks, err := h.Tasks.List(c.Request.Context(), owner, status, sort)
	if err != nil {
		taskError(c, err)
		return
	}
	if tasks == nil {
		tasks = []*domain.Task{}
	}
	c.JSON(http.StatusOK, tasks)
}

func (h *Handler) CreateTask(c *gin.Context) {
	owner, ok := h.verifyOwner(c)
	if !ok {
		return
	}

	var req CreateTaskRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	task, err := h.Tasks.Create(c.Request.Context(), owner, req.Title, req.Description)
	if err != nil {
		taskError(c, err)
		return
	}

	h.publish(owner, ws.TaskEvent{Type: ws.EventTaskCreated, Task: task})
	c.JSON(http.StatusCreated, task)
}

func (h *Handler) GetTask(c *gin.Context) {
	owner, ok := h.verifyOwner(c)
	if !ok {
		return
	}
	id, ok := taskID(c)
	if !ok {
		return
	}

	task, err := h.Tasks.Get(c.Request.Context(), owner, id)
	if err != nil {
		taskError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *Handler) UpdateTask(c *gin.Context) {
	owner, ok := h.verifyOwner(c)
	if !ok {
		return
	}
	id, ok := taskID(c)
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	task, err := h.Tasks.Update(c.Request.Context(), owner, id, service.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	})
	if err != nil {
		taskError(c, err)
		return
	}

	h.publish(owner, ws.TaskEvent{Type: ws.EventTaskUpdated, Task: task})
	c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c *gin.Context) {
	owner, ok := h.verifyOwner(c)
	if !ok {
		return
	}
	id, ok := taskID(c)
	if !ok {
		return
	}

	if err := h.Tasks.Delete(c.Request.Context(), owner, id); err != nil {
		taskError(c, err)
		return
	}

	h.publish(owner, ws.TaskEvent{Type: ws.EventTaskDeleted, TaskID: id})
	c.Status(http.StatusNoContent)
}

// ToggleTask flips the completion flag of a task.
func (h *Handler) ToggleTask(c *gin.Context) {
	owner, ok := h.verifyOwner(c)
	if !ok {
		return
	}
	id, ok := taskID(c)
	if !ok {
		return
	}

	task, err := h.Tasks.ToggleComplete(c.Request.Context(), owner, id)
	if err != nil {
		taskError(c, err)
		return
	}

	h.publish(owner, ws.TaskEvent{Type: ws.EventTaskCompleted, Task: task})
	c.JSON(http.StatusOK, task)
}
