package report_repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/majidisadev/simple-project-management-rsud/internal/model/auth_model"
	"github.com/majidisadev/simple-project-management-rsud/internal/model/date_model"
	"github.com/majidisadev/simple-project-management-rsud/internal/model/report_model"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// ErrReportNotFound covers both a missing id and an ownership mismatch on the
// write path, so a caller cannot probe for other users' reports.
var ErrReportNotFound = errors.New("report not found")

const searchLimit = 50

type ReportRepo struct {
	DB *sqlx.DB
}

func NewReportRepo(db *sqlx.DB) *ReportRepo {
	return &ReportRepo{DB: db}
}

// reportRow carries a report joined with its owner's display fields.
type reportRow struct {
	report_model.Report
	OwnerID       int    `db:"owner_id"`
	OwnerUsername string `db:"owner_username"`
}

func toReportsWithOwner(rows []*reportRow) []*report_model.ReportWithOwner {
	out := make([]*report_model.ReportWithOwner, 0, len(rows))
	for _, row := range rows {
		out = append(out, &report_model.ReportWithOwner{
			Report: row.Report,
			Owner:  auth_model.Owner{ID: row.OwnerID, Username: row.OwnerUsername},
		})
	}
	return out
}

func (r *ReportRepo) ListOwn(ctx context.Context, ownerID int) ([]*report_model.Report, error) {
	reports := []*report_model.Report{}
	q := `SELECT * FROM reports WHERE user_id = $1 ORDER BY date DESC;`
	if err := r.DB.SelectContext(ctx, &reports, q, ownerID); err != nil {
		return nil, err
	}
	return reports, nil
}

// ListByDateRange returns every owner's reports with date in [start, end]
// inclusive. A zero start or end means no range filter at all.
func (r *ReportRepo) ListByDateRange(ctx context.Context, start, end date_model.Day) ([]*report_model.ReportWithOwner, error) {
	rows := []*reportRow{}

	q := `SELECT r.*, u.id AS owner_id, u.username AS owner_username
	      FROM reports r JOIN users u ON u.id = r.user_id`
	args := []any{}
	if !start.IsZero() && !end.IsZero() {
		q += ` WHERE r.date >= $1 AND r.date <= $2`
		args = append(args, start, end)
	}

	if err := r.DB.SelectContext(ctx, &rows, q, args...); err != nil {
		return nil, err
	}
	return toReportsWithOwner(rows), nil
}

// Search matches keyword as a case-insensitive substring of title or content
// across all owners, newest date first, capped at 50 rows. Blank keywords are
// rejected by the service before this is reached.
func (r *ReportRepo) Search(ctx context.Context, keyword string) ([]*report_model.ReportWithOwner, error) {
	rows := []*reportRow{}
	q := `SELECT r.*, u.id AS owner_id, u.username AS owner_username
	      FROM reports r JOIN users u ON u.id = r.user_id
	      WHERE r.title ILIKE $1 OR r.content ILIKE $1
	      ORDER BY r.date DESC
	      LIMIT $2;`
	if err := r.DB.SelectContext(ctx, &rows, q, "%"+keyword+"%", searchLimit); err != nil {
		return nil, err
	}
	return toReportsWithOwner(rows), nil
}

func (r *ReportRepo) GetByID(ctx context.Context, id string) (*report_model.ReportWithOwner, error) {
	var row reportRow
	q := `SELECT r.*, u.id AS owner_id, u.username AS owner_username
	      FROM reports r JOIN users u ON u.id = r.user_id
	      WHERE r.id = $1;`
	if err := r.DB.GetContext(ctx, &row, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}
	return &report_model.ReportWithOwner{
		Report: row.Report,
		Owner:  auth_model.Owner{ID: row.OwnerID, Username: row.OwnerUsername},
	}, nil
}

func (r *ReportRepo) Create(ctx context.Context, ownerID int, date date_model.Day, title, content string) (*report_model.Report, error) {
	report := &report_model.Report{}
	q := `INSERT INTO reports (id, user_id, date, title, content)
	      VALUES ($1, $2, $3, $4, $5) RETURNING *;`
	err := r.DB.QueryRowxContext(ctx, q, uuid.New().String(), ownerID, date, title, content).StructScan(report)
	if err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}
	return report, nil
}

// Update mutates only a report owned by ownerID; a missing row and a foreign
// row are indistinguishable in the result.
func (r *ReportRepo) Update(ctx context.Context, id string, ownerID int, patch report_model.ReportPatch) (*report_model.Report, error) {
	var report report_model.Report
	q := `UPDATE reports
	      SET date = COALESCE($1, date),
	          title = COALESCE($2, title),
	          content = COALESCE($3, content),
	          updated_at = NOW()
	      WHERE id = $4 AND user_id = $5
	      RETURNING *;`
	err := r.DB.QueryRowxContext(ctx, q, patch.Date, patch.Title, patch.Content, id, ownerID).StructScan(&report)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}
	return &report, nil
}

func (r *ReportRepo) Delete(ctx context.Context, id string, ownerID int) error {
	q := `DELETE FROM reports WHERE id = $1 AND user_id = $2;`
	result, err := r.DB.ExecContext(ctx, q, id, ownerID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrReportNotFound
	}
	return nil
}
