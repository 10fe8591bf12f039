package kanban_repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/majidisadev/simple-project-management-rsud/internal/model/auth_model"
	"github.com/majidisadev/simple-project-management-rsud/internal/model/kanban_model"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// ErrTaskNotFound covers both a missing id and an ownership mismatch on the
// write path, so a caller cannot probe for other users' tasks.
var ErrTaskNotFound = errors.New("task not found")

type TaskRepo struct {
	DB *sqlx.DB
}

func NewTaskRepo(db *sqlx.DB) *TaskRepo {
	return &TaskRepo{DB: db}
}

type taskRow struct {
	kanban_model.Task
	OwnerID       int    `db:"owner_id"`
	OwnerUsername string `db:"owner_username"`
}

func toTasksWithOwner(rows []*taskRow) []*kanban_model.TaskWithOwner {
	out := make([]*kanban_model.TaskWithOwner, 0, len(rows))
	for _, row := range rows {
		out = append(out, &kanban_model.TaskWithOwner{
			Task:  row.Task,
			Owner: auth_model.Owner{ID: row.OwnerID, Username: row.OwnerUsername},
		})
	}
	return out
}

// ListAll returns every task from every owner. Manual order wins, ties break
// by recency.
func (r *TaskRepo) ListAll(ctx context.Context) ([]*kanban_model.TaskWithOwner, error) {
	rows := []*taskRow{}
	q := `SELECT t.*, u.id AS owner_id, u.username AS owner_username
	      FROM kanban_tasks t JOIN users u ON u.id = t.user_id
	      ORDER BY t."order" ASC, t.created_at DESC;`
	if err := r.DB.SelectContext(ctx, &rows, q); err != nil {
		return nil, err
	}
	return toTasksWithOwner(rows), nil
}

func (r *TaskRepo) GetByID(ctx context.Context, id string) (*kanban_model.TaskWithOwner, error) {
	var row taskRow
	q := `SELECT t.*, u.id AS owner_id, u.username AS owner_username
	      FROM kanban_tasks t JOIN users u ON u.id = t.user_id
	      WHERE t.id = $1;`
	if err := r.DB.GetContext(ctx, &row, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return &kanban_model.TaskWithOwner{
		Task:  row.Task,
		Owner: auth_model.Owner{ID: row.OwnerID, Username: row.OwnerUsername},
	}, nil
}

// Create appends the task to the end of the owner's lane: order becomes
// 1 + max(order) among that owner's tasks in the target status, 0 when the
// lane is empty for them. The max is read without a lock, so two concurrent
// creates can land on the same order value; they simply coexist.
func (r *TaskRepo) Create(ctx context.Context, ownerID int, nt kanban_model.NewTask) (*kanban_model.Task, error) {
	var order int
	qOrder := `SELECT COALESCE(MAX("order") + 1, 0) FROM kanban_tasks WHERE user_id = $1 AND status = $2;`
	if err := r.DB.GetContext(ctx, &order, qOrder, ownerID, nt.Status); err != nil {
		return nil, fmt.Errorf("failed to get max order: %w", err)
	}

	task := &kanban_model.Task{}
	qInsert := `INSERT INTO kanban_tasks (id, user_id, title, description, status, priority, "order", start_date, deadline)
	            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING *;`
	err := r.DB.QueryRowxContext(ctx, qInsert,
		uuid.New().String(), ownerID, nt.Title, nt.Description, nt.Status, nt.Priority, order, nt.StartDate, nt.Deadline,
	).StructScan(task)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

// Update mutates only a task owned by ownerID; a missing row and a foreign
// row are indistinguishable in the result. Nil patch fields stay unchanged.
func (r *TaskRepo) Update(ctx context.Context, id string, ownerID int, patch kanban_model.TaskPatch) (*kanban_model.Task, error) {
	var task kanban_model.Task
	q := `UPDATE kanban_tasks
	      SET title = COALESCE($1, title),
	          description = COALESCE($2, description),
	          status = COALESCE($3, status),
	          priority = COALESCE($4, priority),
	          "order" = COALESCE($5, "order"),
	          start_date = COALESCE($6, start_date),
	          deadline = COALESCE($7, deadline),
	          updated_at = NOW()
	      WHERE id = $8 AND user_id = $9
	      RETURNING *;`
	err := r.DB.QueryRowxContext(ctx, q,
		patch.Title, patch.Description, patch.Status, patch.Priority, patch.Order, patch.StartDate, patch.Deadline, id, ownerID,
	).StructScan(&task)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepo) Delete(ctx context.Context, id string, ownerID int) error {
	q := `DELETE FROM kanban_tasks WHERE id = $1 AND user_id = $2;`
	result, err := r.DB.ExecContext(ctx, q, id, ownerID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}
