package report_services

import (
	"context"
	"errors"
	"strings"

	"github.com/majidisadev/simple-project-management-rsud/internal/model/date_model"
	"github.com/majidisadev/simple-project-management-rsud/internal/model/report_model"
	"github.com/majidisadev/simple-project-management-rsud/internal/repository/report_repository"
)

// ErrMissingFields rejects a create without a date or content.
var ErrMissingFields = errors.New("please provide date and content")

type ReportService struct {
	Repo *report_repository.ReportRepo
}

func NewReportService(r *report_repository.ReportRepo) *ReportService {
	return &ReportService{Repo: r}
}

func (s *ReportService) ListOwn(ctx context.Context, ownerID int) ([]*report_model.Report, error) {
	return s.Repo.ListOwn(ctx, ownerID)
}

func (s *ReportService) ListByDateRange(ctx context.Context, start, end date_model.Day) ([]*report_model.ReportWithOwner, error) {
	return s.Repo.ListByDateRange(ctx, start, end)
}

// Search returns an empty result for a blank keyword; "search everything" is
// never implied.
func (s *ReportService) Search(ctx context.Context, keyword string) ([]*report_model.ReportWithOwner, error) {
	if strings.TrimSpace(keyword) == "" {
		return []*report_model.ReportWithOwner{}, nil
	}
	return s.Repo.Search(ctx, keyword)
}

func (s *ReportService) GetByID(ctx context.Context, id string) (*report_model.ReportWithOwner, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *ReportService) Create(ctx context.Context, ownerID int, date date_model.Day, title, content string) (*report_model.Report, error) {
	if date.IsZero() || content == "" {
		return nil, ErrMissingFields
	}
	return s.Repo.Create(ctx, ownerID, date, title, content)
}

func (s *ReportService) Update(ctx context.Context, id string, ownerID int, patch report_model.ReportPatch) (*report_model.Report, error) {
	return s.Repo.Update(ctx, id, ownerID, patch)
}

func (s *ReportService) Delete(ctx context.Context, id string, ownerID int) error {
	return s.Repo.Delete(ctx, id, ownerID)
}
