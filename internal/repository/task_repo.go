package repository

import (
	"context"
	"errors"

	"tasklist_api/internal/domain"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrTaskNotFound = errors.New("task not found")

const taskColumns = "id, user_id, title, description, completed, created_at, updated_at"

type TaskRepository struct {
	db      *pgxpool.Pool
	builder squirrel.StatementBuilderType
}

func NewTaskRepository(db *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{
		db:      db,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// ListByOwner returns tasks owned by owner. completed filters by completion
// state when non-nil. sort is one of "created_at" (newest first), "title"
// (ascending) or empty for store-default order.
func (r *TaskRepository) ListByOwner(ctx context.Context, owner string, completed *bool, sort string) ([]*domain.Task, error) {
	q := r.builder.
		Select(taskColumns).
		From("tasks").
		Where(squirrel.Eq{"user_id": owner})

	if completed != nil {
		q = q.Where(squirrel.Eq{"completed": *completed})
	}

	switch sort {
	case "created_at":
		q = q.OrderBy("created_at DESC")
	case "title":
		q = q.OrderBy("title ASC")
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*domain.Task
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.Completed, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		res = append(res, &t)
	}
	return res, rows.Err()
}

// Create inserts the task and fills in id and timestamps from the store.
func (r *TaskRepository) Create(ctx context.Context, t *domain.Task) error {
	query, args, err := r.builder.
		Insert("tasks").
		Columns("user_id", "title", "description", "completed").
		Values(t.UserID, t.Title, t.Description, t.Completed).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return err
	}
	return r.db.QueryRow(ctx, query, args...).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

func (r *TaskRepository) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	query, args, err := r.builder.
		Select(taskColumns).
		From("tasks").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var t domain.Task
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&t.ID, &t.UserID, &t.Title, &t.Description, &t.Completed, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return &t, nil
}

// Save writes back the mutable fields of a previously loaded task.
func (r *TaskRepository) Save(ctx context.Context, t *domain.Task) error {
	query, args, err := r.builder.
		Update("tasks").
		Set("title", t.Title).
		Set("description", t.Description).
		Set("completed", t.Completed).
		Set("updated_at", t.UpdatedAt).
		Where(squirrel.Eq{"id": t.ID}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := r.builder.
		Delete("tasks").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrTaskNotFound
	}
	return nil
}
