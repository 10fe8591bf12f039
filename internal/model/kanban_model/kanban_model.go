package kanban_model

import (
	"time"

	"github.com/majidisadev/simple-project-management-rsud/internal/model/auth_model"
	"github.com/majidisadev/simple-project-management-rsud/internal/model/date_model"
)

type Status string

const (
	StatusBacklog    Status = "backlog"
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
)

func (s Status) Valid() bool {
	switch s {
	case StatusBacklog, StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type Task struct {
	ID          string          `db:"id" json:"id"`
	UserID      int             `db:"user_id" json:"userId"`
	Title       string          `db:"title" json:"title"`
	Description string          `db:"description" json:"description"`
	Status      Status          `db:"status" json:"status"`
	Priority    Priority        `db:"priority" json:"priority"`
	Order       int             `db:"order" json:"order"`
	StartDate   *date_model.Day `db:"start_date" json:"startDate"`
	Deadline    *date_model.Day `db:"deadline" json:"deadline"`
	CreatedAt   time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updatedAt"`
}

// TaskWithOwner is returned by read paths that populate the owner.
type TaskWithOwner struct {
	Task
	Owner auth_model.Owner `db:"-" json:"user"`
}

// NewTask carries the accepted fields of a create request.
type NewTask struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Status      Status          `json:"status"`
	Priority    Priority        `json:"priority"`
	StartDate   *date_model.Day `json:"startDate"`
	Deadline    *date_model.Day `json:"deadline"`
}

// TaskPatch carries the updatable fields; nil means "leave unchanged".
type TaskPatch struct {
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	Status      *Status         `json:"status"`
	Priority    *Priority       `json:"priority"`
	Order       *int            `json:"order"`
	StartDate   *date_model.Day `json:"startDate"`
	Deadline    *date_model.Day `json:"deadline"`
}
