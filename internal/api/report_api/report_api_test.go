package report_api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/majidisadev/simple-project-management-rsud/internal/config"
	"github.com/majidisadev/simple-project-management-rsud/internal/repository/report_repository"
	"github.com/majidisadev/simple-project-management-rsud/internal/services/auth_services"
	"github.com/majidisadev/simple-project-management-rsud/internal/services/report_services"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*mux.Router, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	repo := report_repository.NewReportRepo(sqlx.NewDb(mockDB, "sqlmock"))
	svc := report_services.NewReportService(repo)
	authSvc := auth_services.NewAuthService(nil, nil)
	handler := NewReportHandler(svc, authSvc)

	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r, mock
}

func accessToken(t *testing.T, userID int) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(config.Load().AccessSecret))
	require.NoError(t, err)
	return token
}

func doRequest(r *mux.Router, method, target, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func reportColumns() []string {
	return []string{"id", "user_id", "date", "title", "content", "created_at", "updated_at"}
}

func TestRequiresToken(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doRequest(r, http.MethodGet, "/api/v1/reports", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(r, http.MethodGet, "/api/v1/reports", "", "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSearchBlankKeywordReturnsEmptyList(t *testing.T) {
	r, mock := newTestRouter(t)
	token := accessToken(t, 7)

	for _, keyword := range []string{"", "%20%20%20"} {
		rec := doRequest(r, http.MethodGet, "/api/v1/reports/search?keyword="+keyword, "", token)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
	}

	// blank keywords never reach the store
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRequiresDateAndContent(t *testing.T) {
	r, _ := newTestRouter(t)
	token := accessToken(t, 7)

	rec := doRequest(r, http.MethodPost, "/api/v1/reports", `{"title":"no content","date":"2024-03-15"}`, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(r, http.MethodPost, "/api/v1/reports", `{"content":"no date"}`, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateRoundTripsCalendarDate(t *testing.T) {
	r, mock := newTestRouter(t)
	token := accessToken(t, 7)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO reports`)).
		WithArgs(sqlmock.AnyArg(), 7, "2024-03-15", "standup", "did things").
		WillReturnRows(sqlmock.NewRows(reportColumns()).
			AddRow("r1", 7, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), "standup", "did things", now, now))

	rec := doRequest(r, http.MethodPost, "/api/v1/reports", `{"date":"2024-03-15","title":"standup","content":"did things"}`, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Date string `json:"date"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2024-03-15", body.Date)
}

func TestCalendarPopulatesOwner(t *testing.T) {
	r, mock := newTestRouter(t)
	token := accessToken(t, 7)
	now := time.Now()

	cols := append(reportColumns(), "owner_id", "owner_username")
	mock.ExpectQuery(`JOIN users u ON u\.id = r\.user_id`).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("r1", 8, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), "", "bob's report", now, now, 8, "bob"))

	rec := doRequest(r, http.MethodGet, "/api/v1/reports/calendar?startDate=2024-03-01&endDate=2024-03-31", "", token)
	require.Equal(t, http.StatusOK, rec.Code)

	var body []struct {
		Date string `json:"date"`
		User struct {
			ID       int    `json:"id"`
			Username string `json:"username"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "2024-03-15", body[0].Date)
	assert.Equal(t, "bob", body[0].User.Username)
}

func TestUpdateByNonOwnerIsNotFound(t *testing.T) {
	r, mock := newTestRouter(t)
	token := accessToken(t, 99)

	// the UPDATE is scoped to the requester's user id; someone else's report
	// produces zero rows
	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE reports`)).
		WillReturnRows(sqlmock.NewRows(reportColumns()))

	rec := doRequest(r, http.MethodPut, "/api/v1/reports/r1", `{"content":"hijack"}`, token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "not found or you do not have permission")
}

func TestDeleteByNonOwnerIsNotFound(t *testing.T) {
	r, mock := newTestRouter(t)
	token := accessToken(t, 99)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM reports`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	rec := doRequest(r, http.MethodDelete, "/api/v1/reports/r1", "", token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetMissingReportIsNotFound(t *testing.T) {
	r, mock := newTestRouter(t)
	token := accessToken(t, 7)

	cols := append(reportColumns(), "owner_id", "owner_username")
	mock.ExpectQuery(`WHERE r\.id = \$1`).
		WillReturnRows(sqlmock.NewRows(cols))

	rec := doRequest(r, http.MethodGet, "/api/v1/reports/nope", "", token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
