package view

import (
	"time"

	"github.com/majidisadev/simple-project-management-rsud/internal/model/date_model"
	"github.com/majidisadev/simple-project-management-rsud/internal/model/report_model"
)

// MonthRange returns the first and last day of a month, the window the
// calendar view fetches when it mounts or the displayed month changes.
func MonthRange(year int, month time.Month) (date_model.Day, date_model.Day) {
	first := date_model.New(year, month, 1)
	last := date_model.New(year, month+1, 1)
	last = date_model.FromTime(last.AddDate(0, 0, -1))
	return first, last
}

// CalendarIndex maps a day to the reports recorded on it, keyed by the
// "YYYY-MM-DD" form of the date.
type CalendarIndex map[string][]*report_model.ReportWithOwner

func BuildCalendarIndex(reports []*report_model.ReportWithOwner) CalendarIndex {
	idx := CalendarIndex{}
	for _, r := range reports {
		key := r.Date.String()
		idx[key] = append(idx[key], r)
	}
	return idx
}

func (idx CalendarIndex) ForDay(d date_model.Day) []*report_model.ReportWithOwner {
	return idx[d.String()]
}

// FirstForDay returns the report the calendar cell shows. More than one
// report can exist for a day; the view always takes the first match.
func (idx CalendarIndex) FirstForDay(d date_model.Day) *report_model.ReportWithOwner {
	reports := idx[d.String()]
	if len(reports) == 0 {
		return nil
	}
	return reports[0]
}

// CanMutateReport gates the edit and delete surface behind the ownership
// check; every report stays readable regardless.
func CanMutateReport(r *report_model.ReportWithOwner, userID int) bool {
	return r.UserID == userID
}
