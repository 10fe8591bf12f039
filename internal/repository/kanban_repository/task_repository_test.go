package kanban_repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/majidisadev/simple-project-management-rsud/internal/model/kanban_model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*TaskRepo, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return NewTaskRepo(sqlx.NewDb(mockDB, "sqlmock")), mock
}

func taskColumns() []string {
	return []string{"id", "user_id", "title", "description", "status", "priority", "order", "start_date", "deadline", "created_at", "updated_at"}
}

func ownerTaskColumns() []string {
	return append(taskColumns(), "owner_id", "owner_username")
}

func TestCreateAppendsToOwnersLane(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()

	// order = 1 + max(order) among this owner's backlog tasks
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(MAX("order") + 1, 0) FROM kanban_tasks WHERE user_id = $1 AND status = $2`)).
		WithArgs(7, "backlog").
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(3))

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO kanban_tasks`)).
		WithArgs(sqlmock.AnyArg(), 7, "Ship v1", "", "backlog", "medium", 3, nil, nil).
		WillReturnRows(sqlmock.NewRows(taskColumns()).
			AddRow("t1", 7, "Ship v1", "", "backlog", "medium", 3, nil, nil, now, now))

	task, err := repo.Create(context.Background(), 7, kanban_model.NewTask{
		Title:    "Ship v1",
		Status:   kanban_model.StatusBacklog,
		Priority: kanban_model.PriorityMedium,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, task.Order)
	assert.Equal(t, kanban_model.StatusBacklog, task.Status)
	assert.Nil(t, task.StartDate)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateIntoEmptyLaneStartsAtZero(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(MAX("order") + 1, 0)`)).
		WithArgs(7, "todo").
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(0))

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO kanban_tasks`)).
		WillReturnRows(sqlmock.NewRows(taskColumns()).
			AddRow("t1", 7, "First", "", "todo", "medium", 0, nil, nil, now, now))

	task, err := repo.Create(context.Background(), 7, kanban_model.NewTask{
		Title:    "First",
		Status:   kanban_model.StatusTodo,
		Priority: kanban_model.PriorityMedium,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, task.Order)
}

func TestListAllOrdersByOrderThenRecency(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()

	mock.ExpectQuery(`ORDER BY t\."order" ASC, t\.created_at DESC`).
		WillReturnRows(sqlmock.NewRows(ownerTaskColumns()).
			AddRow("t1", 7, "A", "", "backlog", "high", 0, nil, nil, now, now, 7, "alice").
			AddRow("t2", 8, "B", "", "todo", "low", 1, nil, nil, now, now, 8, "bob"))

	tasks, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "alice", tasks[0].Owner.Username)
	assert.Equal(t, "bob", tasks[1].Owner.Username)
}

func TestUpdateByNonOwnerIsNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE kanban_tasks`)).
		WillReturnRows(sqlmock.NewRows(taskColumns()))

	status := kanban_model.StatusDone
	_, err := repo.Update(context.Background(), "t1", 99, kanban_model.TaskPatch{Status: &status})
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestUpdatePatchesOnlyProvidedFields(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()

	status := kanban_model.StatusInProgress
	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE kanban_tasks`)).
		WithArgs(nil, nil, &status, nil, nil, nil, nil, "t1", 7).
		WillReturnRows(sqlmock.NewRows(taskColumns()).
			AddRow("t1", 7, "Ship v1", "", "in-progress", "high", 2, nil, nil, now, now))

	task, err := repo.Update(context.Background(), "t1", 7, kanban_model.TaskPatch{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, kanban_model.StatusInProgress, task.Status)
	assert.Equal(t, kanban_model.PriorityHigh, task.Priority)
}

func TestDeleteByNonOwnerIsNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM kanban_tasks WHERE id = $1 AND user_id = $2`)).
		WithArgs("t1", 99).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "t1", 99)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}
