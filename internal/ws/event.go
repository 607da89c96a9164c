package ws

import "tasklist_api/internal/domain"

const (
	EventTaskCreated   = "task.created"
	EventTaskUpdated   = "task.updated"
	EventTaskDeleted   = "task.deleted"
	EventTaskCompleted = "task.completed"
)

// TaskEvent is pushed to every websocket client of the task's owner.
// Deleted events carry only the task id.
type TaskEvent struct {
	Type   string       `json:"type"`
	Task   *domain.Task `json:"task,omitempty"`
	TaskID int64        `json:"task_id,omitempty"`
}
