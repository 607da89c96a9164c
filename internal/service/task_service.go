package service

import (
	"context"
	"errors"
	"time"

	"tasklist_api/internal/domain"
	"tasklist_api/internal/repository"
)

var ErrNotFound = errors.New("task not found")

// TaskStore is the persistence surface the task service needs.
// *repository.TaskRepository satisfies it.
type TaskStore interface {
	ListByOwner(ctx context.Context, owner string, completed *bool, sort string) ([]*domain.Task, error)
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id int64) (*domain.Task, error)
	Save(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id int64) error
}

// TaskUpdate carries the fields of a partial update. Nil means "leave as is".
type TaskUpdate struct {
	Title       *string
	Description *string
	Completed   *bool
}

type TaskService struct {
	store TaskStore
}

func NewTaskService(store TaskStore) *TaskService {
	return &TaskService{store: store}
}

// List returns the owner's tasks. status "pending"/"completed" filters by
// completion state, anything else returns all. sort "created_at" orders
// newest first, "title" orders ascending, anything else keeps store order.
func (s *TaskService) List(ctx context.Context, owner, status, sort string) ([]*domain.Task, error) {
	var completed *bool
	switch status {
	case "completed":
		v := true
		completed = &v
	case "pending":
		v := false
		completed = &v
	}

	if sort != "created_at" && sort != "title" {
		sort = ""
	}

	return s.store.ListByOwner(ctx, owner, completed, sort)
}

func (s *TaskService) Create(ctx context.Context, owner, title string, description *string) (*domain.Task, error) {
	t := &domain.Task{
		UserID:      owner,
		Title:       title,
		Description: description,
	}
	if err := s.store.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Get returns the task only when it exists and belongs to owner. A foreign
// owner looks exactly like a missing row to the caller.
func (s *TaskService) Get(ctx context.Context, owner string, id int64) (*domain.Task, error) {
	t, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if t.UserID != owner {
		return nil, ErrNotFound
	}
	return t, nil
}

// Update overwrites the supplied fields and refreshes updated_at. The
// timestamp moves even when the update carries no fields.
func (s *TaskService) Update(ctx context.Context, owner string, id int64, upd TaskUpdate) (*domain.Task, error) {
	t, err := s.Get(ctx, owner, id)
	if err != nil {
		return nil, err
	}

	if upd.Title != nil {
		t.Title = *upd.Title
	}
	if upd.Description != nil {
		t.Description = upd.Description
	}
	if upd.Completed != nil {
		t.Completed = *upd.Completed
	}
	t.UpdatedAt = time.Now().UTC()

	if err := s.store.Save(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TaskService) Delete(ctx context.Context, owner string, id int64) error {
	if _, err := s.Get(ctx, owner, id); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// ToggleComplete flips the completion flag and refreshes updated_at.
func (s *TaskService) ToggleComplete(ctx context.Context, owner string, id int64) (*domain.Task, error) {
	t, err := s.Get(ctx, owner, id)
	if err != nil {
		return nil, err
	}

	t.Completed = !t.Completed
	t.UpdatedAt = time.Now().UTC()

	if err := s.store.Save(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}
