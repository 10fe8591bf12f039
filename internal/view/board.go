package view

import (
	"strings"

	"github.com/majidisadev/simple-project-management-rsud/internal/model/kanban_model"
)

// BoardSnapshot is the one authoritative copy of the task list a board view
// works from. Filters derive lanes from it without further fetches; after any
// mutation the caller replaces the whole snapshot with a fresh fetch.
type BoardSnapshot struct {
	tasks []*kanban_model.TaskWithOwner
}

func NewBoardSnapshot(tasks []*kanban_model.TaskWithOwner) BoardSnapshot {
	copied := make([]*kanban_model.TaskWithOwner, len(tasks))
	copy(copied, tasks)
	return BoardSnapshot{tasks: copied}
}

func (s BoardSnapshot) Len() int {
	return len(s.tasks)
}

// Filter narrows a lane. A zero Priority means every priority; a blank
// Keyword means no keyword filtering.
type Filter struct {
	Priority kanban_model.Priority
	Keyword  string
}

func (f Filter) matches(t *kanban_model.TaskWithOwner) bool {
	if f.Priority != "" && t.Priority != f.Priority {
		return false
	}
	if kw := strings.TrimSpace(f.Keyword); kw != "" {
		kw = strings.ToLower(kw)
		if !strings.Contains(strings.ToLower(t.Title), kw) &&
			!strings.Contains(strings.ToLower(t.Description), kw) {
			return false
		}
	}
	return true
}

// Lane returns the snapshot's tasks in one status column, in snapshot order,
// narrowed by the filter.
func (s BoardSnapshot) Lane(status kanban_model.Status, f Filter) []*kanban_model.TaskWithOwner {
	lane := []*kanban_model.TaskWithOwner{}
	for _, t := range s.tasks {
		if t.Status != status {
			continue
		}
		if f.matches(t) {
			lane = append(lane, t)
		}
	}
	return lane
}

// Statuses lists the board's lanes in display order.
func Statuses() []kanban_model.Status {
	return []kanban_model.Status{
		kanban_model.StatusBacklog,
		kanban_model.StatusTodo,
		kanban_model.StatusInProgress,
		kanban_model.StatusDone,
	}
}

// MoveTargets lists every status a task can move to from its current one.
// There is no workflow graph; any lane is reachable.
func MoveTargets(current kanban_model.Status) []kanban_model.Status {
	targets := []kanban_model.Status{}
	for _, s := range Statuses() {
		if s != current {
			targets = append(targets, s)
		}
	}
	return targets
}

// CanMutateTask is the single ownership predicate the board UI gates edit and
// delete actions on.
func CanMutateTask(t *kanban_model.TaskWithOwner, userID int) bool {
	return t.UserID == userID
}
