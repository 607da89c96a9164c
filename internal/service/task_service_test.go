package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"tasklist_api/internal/domain"
	"tasklist_api/internal/repository"
)

type fakeStore struct {
	tasks  map[int64]*domain.Task
	nextID int64

	// last List arguments, for normalization checks
	lastCompleted *bool
	lastSort      string
}

func newFakeStore() *fakeStore {
	return &fakeStore{tasks: make(map[int64]*domain.Task), nextID: 1}
}

func (f *fakeStore) ListByOwner(_ context.Context, owner string, completed *bool, sort string) ([]*domain.Task, error) {
	f.lastCompleted = completed
	f.lastSort = sort

	var res []*domain.Task
	for _, t := range f.tasks {
		if t.UserID != owner {
			continue
		}
		if completed != nil && t.Completed != *completed {
			continue
		}
		res = append(res, t)
	}
	return res, nil
}

func (f *fakeStore) Create(_ context.Context, t *domain.Task) error {
	t.ID = f.nextID
	f.nextID++
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	cp := *t
	f.tasks[t.ID] = &cp
	return nil
}

func (f *fakeStore) GetByID(_ context.Context, id int64) (*domain.Task, error) {
	t, ok := f.tasks[id]
	if !ok {
		return nil, repository.ErrTaskNotFound
	}
	cp := *t
	return &cp, nil
}

func (f *fakeStore) Save(_ context.Context, t *domain.Task) error {
	if _, ok := f.tasks[t.ID]; !ok {
		return repository.ErrTaskNotFound
	}
	cp := *t
	f.tasks[t.ID] = &cp
	return nil
}

func (f *fakeStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.tasks[id]; !ok {
		return repository.ErrTaskNotFound
	}
	delete(f.tasks, id)
	return nil
}

func seedTask(t *testing.T, svc *TaskService, owner, title string) *domain.Task {
	t.Helper()
	task, err := svc.Create(context.Background(), owner, title, nil)
	if err != nil {
		t.Fatalf("seed task: %v", err)
	}
	return task
}

func TestTaskService_GetForeignOwnerLooksMissing(t *testing.T) {
	svc := NewTaskService(newFakeStore())
	task := seedTask(t, svc, "alice", "Buy milk")

	if _, err := svc.Get(context.Background(), "bob", task.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign owner, got %v", err)
	}
	if _, err := svc.Get(context.Background(), "alice", task.ID); err != nil {
		t.Fatalf("owner lookup failed: %v", err)
	}
}

func TestTaskService_GetMissing(t *testing.T) {
	svc := NewTaskService(newFakeStore())

	if _, err := svc.Get(context.Background(), "alice", 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTaskService_UpdatePartial(t *testing.T) {
	svc := NewTaskService(newFakeStore())
	task := seedTask(t, svc, "alice", "Buy milk")
	before := task.UpdatedAt

	time.Sleep(time.Millisecond)
	completed := true
	got, err := svc.Update(context.Background(), "alice", task.ID, TaskUpdate{Completed: &completed})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if !got.Completed {
		t.Fatalf("completed not applied")
	}
	if got.Title != "Buy milk" {
		t.Fatalf("title changed to %q, want unchanged", got.Title)
	}
	if got.Description != nil {
		t.Fatalf("description changed, want unchanged")
	}
	if !got.UpdatedAt.After(before) {
		t.Fatalf("updated_at not refreshed")
	}
}

func TestTaskService_UpdateEmptyStillTouchesTimestamp(t *testing.T) {
	svc := NewTaskService(newFakeStore())
	task := seedTask(t, svc, "alice", "Buy milk")
	before := task.UpdatedAt

	time.Sleep(time.Millisecond)
	got, err := svc.Update(context.Background(), "alice", task.ID, TaskUpdate{})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !got.UpdatedAt.After(before) {
		t.Fatalf("updated_at=%v, want after %v", got.UpdatedAt, before)
	}
	if got.Title != "Buy milk" || got.Completed {
		t.Fatalf("fields changed on empty update")
	}
}

func TestTaskService_ToggleTwiceRestores(t *testing.T) {
	svc := NewTaskService(newFakeStore())
	task := seedTask(t, svc, "alice", "Buy milk")

	first, err := svc.ToggleComplete(context.Background(), "alice", task.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !first.Completed {
		t.Fatalf("first toggle: completed=false, want true")
	}

	time.Sleep(time.Millisecond)
	second, err := svc.ToggleComplete(context.Background(), "alice", task.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if second.Completed {
		t.Fatalf("second toggle: completed=true, want false")
	}
	if !second.UpdatedAt.After(first.UpdatedAt) {
		t.Fatalf("updated_at not refreshed on second toggle")
	}
}

func TestTaskService_DeleteThenGet(t *testing.T) {
	svc := NewTaskService(newFakeStore())
	task := seedTask(t, svc, "alice", "Buy milk")

	if err := svc.Delete(context.Background(), "alice", task.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), "alice", task.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestTaskService_DeleteForeignOwner(t *testing.T) {
	svc := NewTaskService(newFakeStore())
	task := seedTask(t, svc, "alice", "Buy milk")

	if err := svc.Delete(context.Background(), "bob", task.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign delete, got %v", err)
	}
	if _, err := svc.Get(context.Background(), "alice", task.ID); err != nil {
		t.Fatalf("task should survive foreign delete attempt: %v", err)
	}
}

func TestTaskService_ListNormalizesStatus(t *testing.T) {
	store := newFakeStore()
	svc := NewTaskService(store)

	cases := []struct {
		status string
		want   *bool
	}{
		{"completed", boolPtr(true)},
		{"pending", boolPtr(false)},
		{"all", nil},
		{"bogus", nil},
		{"", nil},
	}
	for _, tc := range cases {
		if _, err := svc.List(context.Background(), "alice", tc.status, ""); err != nil {
			t.Fatalf("list status=%q: %v", tc.status, err)
		}
		if (store.lastCompleted == nil) != (tc.want == nil) {
			t.Fatalf("status=%q: filter=%v, want %v", tc.status, store.lastCompleted, tc.want)
		}
		if tc.want != nil && *store.lastCompleted != *tc.want {
			t.Fatalf("status=%q: filter=%v, want %v", tc.status, *store.lastCompleted, *tc.want)
		}
	}
}

func TestTaskService_ListNormalizesSort(t *testing.T) {
	store := newFakeStore()
	svc := NewTaskService(store)

	cases := []struct{ in, want string }{
		{"created_at", "created_at"},
		{"title", "title"},
		{"bogus", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if _, err := svc.List(context.Background(), "alice", "all", tc.in); err != nil {
			t.Fatalf("list sort=%q: %v", tc.in, err)
		}
		if store.lastSort != tc.want {
			t.Fatalf("sort=%q passed as %q, want %q", tc.in, store.lastSort, tc.want)
		}
	}
}

func TestTaskService_ListFiltersByOwnerAndStatus(t *testing.T) {
	svc := NewTaskService(newFakeStore())
	done := seedTask(t, svc, "alice", "done one")
	seedTask(t, svc, "alice", "open one")
	seedTask(t, svc, "bob", "other user")

	if _, err := svc.ToggleComplete(context.Background(), "alice", done.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	tasks, err := svc.List(context.Background(), "alice", "completed", "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("len=%d, want 1", len(tasks))
	}
	if tasks[0].ID != done.ID || !tasks[0].Completed {
		t.Fatalf("unexpected task in completed filter: %+v", tasks[0])
	}
}

func boolPtr(v bool) *bool { return &v }
