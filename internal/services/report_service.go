// internal/services/report_service.go
package services

import (
	"math"
	"time"

	"dailydo/internal/models"
	"dailydo/internal/repositories"
)

// Breakdown is the percentage share of each counted status, to two decimal
// places. Canceled entries are outside the denominator.
type Breakdown struct {
	Completed float64 `json:"completed"`
	Pending   float64 `json:"pending"`
	Deleted   float64 `json:"deleted"`
}

// PercentageOf computes the breakdown over a list of entries. An empty list
// (or one with only canceled entries) yields all zeroes.
func PercentageOf(entries []*models.Entry) Breakdown {
	var completed, pending, deleted int
	for _, e := range entries {
		switch e.Status {
		case models.StatusCompleted:
			completed++
		case models.StatusPending:
			pending++
		case models.StatusDeleted:
			deleted++
		}
	}
	return breakdown(completed, pending, deleted)
}

func breakdown(completed, pending, deleted int) Breakdown {
	total := completed + pending + deleted
	if total == 0 {
		return Breakdown{}
	}
	return Breakdown{
		Completed: round2(float64(completed) / float64(total) * 100),
		Pending:   round2(float64(pending) / float64(total) * 100),
		Deleted:   round2(float64(deleted) / float64(total) * 100),
	}
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// DayReport is one day of the weekly aggregate.
type DayReport struct {
	// Day is the 3-letter weekday label, Date the partition key.
	Day  string `json:"day"`
	Date string `json:"date"`

	Completed int `json:"completed"`
	Pending   int `json:"pending"`
	Deleted   int `json:"deleted"`
	Total     int `json:"total"`

	Percent Breakdown `json:"percent"`
}

// ReportService derives dashboard aggregates straight from the document. It
// never mutates anything.
type ReportService struct {
	repo repositories.DocumentRepository
	loc  *time.Location
}

func NewReportService(repo repositories.DocumentRepository, loc *time.Location) *ReportService {
	return &ReportService{repo: repo, loc: loc}
}

// PercentageWeekly reports per-day counts and percentages for the
// Monday-to-Sunday week containing now in the configured time zone, Monday
// first.
func (s *ReportService) PercentageWeekly() ([]DayReport, error) {
	doc, err := s.repo.Load()
	if err != nil {
		return nil, err
	}
	return weekly(doc, time.Now().In(s.loc)), nil
}

func weekly(doc repositories.Document, now time.Time) []DayReport {
	// time.Weekday counts Sunday as 0; shift so Monday opens the week
	wd := int(now.Weekday())
	if wd == 0 {
		wd = 7
	}
	monday := now.AddDate(0, 0, 1-wd)

	reports := make([]DayReport, 0, 7)
	for i := 0; i < 7; i++ {
		day := monday.AddDate(0, 0, i)
		key := day.Format(models.DateLayout)
		rep := DayReport{Day: day.Format("Mon"), Date: key}
		for _, rec := range doc[key] {
			switch models.Status(rec.Status) {
			case models.StatusCompleted:
				rep.Completed++
			case models.StatusPending:
				rep.Pending++
			case models.StatusDeleted:
				rep.Deleted++
			}
		}
		rep.Total = rep.Completed + rep.Pending + rep.Deleted
		rep.Percent = breakdown(rep.Completed, rep.Pending, rep.Deleted)
		reports = append(reports, rep)
	}
	return reports
}
