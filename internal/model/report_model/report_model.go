package report_model

import (
	"time"

	"github.com/majidisadev/simple-project-management-rsud/internal/model/auth_model"
	"github.com/majidisadev/simple-project-management-rsud/internal/model/date_model"
)

type Report struct {
	ID        string         `db:"id" json:"id"`
	UserID    int            `db:"user_id" json:"userId"`
	Date      date_model.Day `db:"date" json:"date"`
	Title     string         `db:"title" json:"title"`
	Content   string         `db:"content" json:"content"`
	CreatedAt time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time      `db:"updated_at" json:"updatedAt"`
}

// ReportWithOwner is returned by read paths that populate the owner.
type ReportWithOwner struct {
	Report
	Owner auth_model.Owner `db:"-" json:"user"`
}

// ReportPatch carries the updatable fields; nil means "leave unchanged".
type ReportPatch struct {
	Date    *date_model.Day `json:"date"`
	Title   *string         `json:"title"`
	Content *string         `json:"content"`
}
