package kanban_services

import (
	"context"
	"errors"

	"github.com/majidisadev/simple-project-management-rsud/internal/model/kanban_model"
	"github.com/majidisadev/simple-project-management-rsud/internal/repository/kanban_repository"
)

var (
	ErrMissingTitle    = errors.New("please provide a title")
	ErrInvalidStatus   = errors.New("invalid status")
	ErrInvalidPriority = errors.New("invalid priority")
)

type TaskService struct {
	Repo *kanban_repository.TaskRepo
}

func NewTaskService(r *kanban_repository.TaskRepo) *TaskService {
	return &TaskService{Repo: r}
}

func (s *TaskService) ListAll(ctx context.Context) ([]*kanban_model.TaskWithOwner, error) {
	return s.Repo.ListAll(ctx)
}

func (s *TaskService) GetByID(ctx context.Context, id string) (*kanban_model.TaskWithOwner, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *TaskService) Create(ctx context.Context, ownerID int, nt kanban_model.NewTask) (*kanban_model.Task, error) {
	if nt.Title == "" {
		return nil, ErrMissingTitle
	}
	if nt.Status == "" {
		nt.Status = kanban_model.StatusBacklog
	}
	if nt.Priority == "" {
		nt.Priority = kanban_model.PriorityMedium
	}
	if !nt.Status.Valid() {
		return nil, ErrInvalidStatus
	}
	if !nt.Priority.Valid() {
		return nil, ErrInvalidPriority
	}
	return s.Repo.Create(ctx, ownerID, nt)
}

func (s *TaskService) Update(ctx context.Context, id string, ownerID int, patch kanban_model.TaskPatch) (*kanban_model.Task, error) {
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, ErrInvalidStatus
	}
	if patch.Priority != nil && !patch.Priority.Valid() {
		return nil, ErrInvalidPriority
	}
	return s.Repo.Update(ctx, id, ownerID, patch)
}

func (s *TaskService) Delete(ctx context.Context, id string, ownerID int) error {
	return s.Repo.Delete(ctx, id, ownerID)
}
