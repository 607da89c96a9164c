package handlers

import (
	"context"

	"tasklist_api/internal/domain"
	"tasklist_api/internal/repository"
	"tasklist_api/internal/service"
	"tasklist_api/internal/ws"

	"github.com/jackc/pgx/v5/pgxpool"
)

// taskService is what the task handlers need from the service layer.
// *service.TaskService satisfies it.
type taskService interface {
	List(ctx context.Context, owner, status, sort string) ([]*domain.Task, error)
	Create(ctx context.Context, owner, title string, description *string) (*domain.Task, error)
	Get(ctx context.Context, owner string, id int64) (*domain.Task, error)
	Update(ctx context.Context, owner string, id int64, upd service.TaskUpdate) (*domain.Task, error)
	Delete(ctx context.Context, owner string, id int64) error
	ToggleComplete(ctx context.Context, owner string, id int64) (*domain.Task, error)
}

type Handler struct {
	DB    *pgxpool.Pool
	Tasks taskService
	Hub   *ws.Hub
}

func NewHandler(db *pgxpool.Pool, hub *ws.Hub) *Handler {
	return &Handler{
		DB:    db,
		Tasks: service.NewTaskService(repository.NewTaskRepository(db)),
		Hub:   hub,
	}
}

// getUserID pulls the authenticated user id out of the gin context
func getUserID(c interface{ Get(string) (any, bool) }) (string, bool) {
	uidVal, ok := c.Get("user_id")
	if !ok {
		return "", false
	}
	uid, ok := uidVal.(string)
	if !ok || uid == "" {
		return "", false
	}
	return uid, true
}

// publish pushes a task event to the owner's websocket clients, if any
func (h *Handler) publish(owner string, ev ws.TaskEvent) {
	if h.Hub != nil {
		h.Hub.Publish(owner, ev)
	}
}
