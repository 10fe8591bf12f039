package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/majidisadev/simple-project-management-rsud/internal/model/date_model"
	"github.com/majidisadev/simple-project-management-rsud/internal/model/kanban_model"
	"github.com/majidisadev/simple-project-management-rsud/internal/model/report_model"
)

// Client is the typed counterpart of the web client's data layer: one method
// per REST route, bearer token on every request, no retries, no caching.
type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

func New(baseURL, token string) *Client {
	return &Client{BaseURL: baseURL, Token: token, HTTP: http.DefaultClient}
}

// APIError carries the server's status code and message through unchanged.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	payload := &bytes.Buffer{}
	if body != nil {
		if err := json.NewEncoder(payload).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, u, payload)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errBody struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&errBody)
		if errBody.Message == "" {
			errBody.Message = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: errBody.Message}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) GetReports(ctx context.Context) ([]*report_model.Report, error) {
	var reports []*report_model.Report
	err := c.do(ctx, http.MethodGet, "/api/v1/reports", nil, nil, &reports)
	return reports, err
}

func (c *Client) GetReportsByDateRange(ctx context.Context, start, end date_model.Day) ([]*report_model.ReportWithOwner, error) {
	q := url.Values{}
	q.Set("startDate", start.String())
	q.Set("endDate", end.String())

	var reports []*report_model.ReportWithOwner
	err := c.do(ctx, http.MethodGet, "/api/v1/reports/calendar", q, nil, &reports)
	return reports, err
}

func (c *Client) SearchReports(ctx context.Context, keyword string) ([]*report_model.ReportWithOwner, error) {
	q := url.Values{}
	q.Set("keyword", keyword)

	var reports []*report_model.ReportWithOwner
	err := c.do(ctx, http.MethodGet, "/api/v1/reports/search", q, nil, &reports)
	return reports, err
}

func (c *Client) GetReport(ctx context.Context, id string) (*report_model.ReportWithOwner, error) {
	var report report_model.ReportWithOwner
	err := c.do(ctx, http.MethodGet, "/api/v1/reports/"+id, nil, nil, &report)
	if err != nil {
		return nil, err
	}
	return &report, nil
}

type NewReport struct {
	Date    date_model.Day `json:"date"`
	Title   string         `json:"title,omitempty"`
	Content string         `json:"content"`
}

func (c *Client) CreateReport(ctx context.Context, nr NewReport) (*report_model.Report, error) {
	var report report_model.Report
	err := c.do(ctx, http.MethodPost, "/api/v1/reports", nil, nr, &report)
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (c *Client) UpdateReport(ctx context.Context, id string, patch report_model.ReportPatch) (*report_model.Report, error) {
	var report report_model.Report
	err := c.do(ctx, http.MethodPut, "/api/v1/reports/"+id, nil, patch, &report)
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (c *Client) DeleteReport(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/reports/"+id, nil, nil, nil)
}

func (c *Client) GetTasks(ctx context.Context) ([]*kanban_model.TaskWithOwner, error) {
	var tasks []*kanban_model.TaskWithOwner
	err := c.do(ctx, http.MethodGet, "/api/v1/kanban", nil, nil, &tasks)
	return tasks, err
}

func (c *Client) GetTask(ctx context.Context, id string) (*kanban_model.TaskWithOwner, error) {
	var task kanban_model.TaskWithOwner
	err := c.do(ctx, http.MethodGet, "/api/v1/kanban/"+id, nil, nil, &task)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *Client) CreateTask(ctx context.Context, nt kanban_model.NewTask) (*kanban_model.Task, error) {
	var task kanban_model.Task
	err := c.do(ctx, http.MethodPost, "/api/v1/kanban", nil, nt, &task)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *Client) UpdateTask(ctx context.Context, id string, patch kanban_model.TaskPatch) (*kanban_model.Task, error) {
	var task kanban_model.Task
	err := c.do(ctx, http.MethodPut, "/api/v1/kanban/"+id, nil, patch, &task)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/kanban/"+id, nil, nil, nil)
}
