// internal/services/todo_service.go
package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"dailydo/internal/models"
	"dailydo/internal/repositories"
)

var (
	// ErrIndexOutOfRange reports a positional index outside the bound
	// date's current list.
	ErrIndexOutOfRange = errors.New("task index out of range")
	// ErrInvalidArgument reports a missing required field or an ambiguous
	// mutually-exclusive pair.
	ErrInvalidArgument = errors.New("invalid argument")
)

// TodoService opens date-bound views over the persisted document.
type TodoService struct {
	repo repositories.DocumentRepository
	loc  *time.Location
}

func NewTodoService(repo repositories.DocumentRepository, loc *time.Location) *TodoService {
	return &TodoService{repo: repo, loc: loc}
}

// Open loads the entry list for date (day-month-year). An empty date binds to
// today in the configured time zone. The document file must exist.
//
// The date is validated before any I/O: a key that does not round-trip
// through the canonical layout would be written as a top-level key the schema
// then rejects on every later load, bricking the whole document.
func (s *TodoService) Open(date string) (*TodoList, error) {
	if date == "" {
		date = time.Now().In(s.loc).Format(models.DateLayout)
	} else {
		day, err := time.ParseInLocation(models.DateLayout, date, s.loc)
		if err != nil || day.Format(models.DateLayout) != date {
			return nil, fmt.Errorf("%w: bad date %q", ErrInvalidArgument, date)
		}
	}
	doc, err := s.repo.Load()
	if err != nil {
		return nil, err
	}
	recs := doc[date]
	entries := make([]*models.Entry, 0, len(recs))
	for _, rec := range recs {
		e, err := models.EntryFromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", date, err)
		}
		entries = append(entries, e)
	}
	return &TodoList{repo: s.repo, loc: s.loc, Date: date, data: entries}, nil
}

// TodoList is a view over one date partition. The in-memory order is the
// authoritative display order; positional index is the only addressing
// mechanism. Every mutation writes the partition back to the document before
// returning.
type TodoList struct {
	repo repositories.DocumentRepository
	loc  *time.Location

	// Date is the partition key this list is bound to.
	Date string
	data []*models.Entry
}

func (l *TodoList) now() time.Time {
	return time.Now().In(l.loc)
}

// Entries returns the loaded entries in display order.
func (l *TodoList) Entries() []*models.Entry {
	return l.data
}

// Len is the number of entries loaded for the bound date.
func (l *TodoList) Len() int {
	return len(l.data)
}

// Get returns the entry at index.
func (l *TodoList) Get(index int) (*models.Entry, error) {
	if index < 0 || index >= len(l.data) {
		return nil, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	return l.data[index], nil
}

// Add creates a pending entry and appends it to the bound date, with an id
// equal to the list length at creation time. Append-only write: all other
// dates and entries stay untouched.
func (l *TodoList) Add(title string) (*models.Entry, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidArgument)
	}
	entry := models.NewEntry(title, l.now())
	entry.ID = len(l.data)
	if err := l.repo.Append(l.Date, entry.Record()); err != nil {
		return nil, err
	}
	l.data = append(l.data, entry)
	return entry, nil
}

// Update applies exactly one mutation to the entry at index: a status change
// or a rename. Passing neither or both fails with ErrInvalidArgument. The
// whole partition is rewritten.
func (l *TodoList) Update(index int, status *models.Status, title *string) error {
	entry, err := l.Get(index)
	if err != nil {
		return err
	}
	switch {
	case status == nil && title == nil:
		return fmt.Errorf("%w: either status or title is required", ErrInvalidArgument)
	case status != nil && title != nil:
		return fmt.Errorf("%w: status and title are mutually exclusive", ErrInvalidArgument)
	case title != nil:
		if strings.TrimSpace(*title) == "" {
			return fmt.Errorf("%w: title is required", ErrInvalidArgument)
		}
		entry.Rename(*title, l.now())
	default:
		entry.ChangeStatus(*status, l.now())
	}
	return l.flush()
}

// Reorder removes the entry at from and reinserts it at to, shifting the
// entries in between by one position. Splice, not swap.
func (l *TodoList) Reorder(from, to int) error {
	if from < 0 || from >= len(l.data) {
		return fmt.Errorf("%w: from %d", ErrIndexOutOfRange, from)
	}
	if to < 0 || to >= len(l.data) {
		return fmt.Errorf("%w: to %d", ErrIndexOutOfRange, to)
	}

	item := l.data[from]
	rest := make([]*models.Entry, 0, len(l.data)-1)
	rest = append(rest, l.data[:from]...)
	rest = append(rest, l.data[from+1:]...)

	data := make([]*models.Entry, 0, len(l.data))
	data = append(data, rest[:to]...)
	data = append(data, item)
	data = append(data, rest[to:]...)

	l.data = data
	return l.flush()
}

// Postpone moves the entry at index to the next calendar day's partition. The
// entry is re-id'd to the destination list's length and gets a postpone log
// line; both partitions are rewritten in one read-modify-write.
func (l *TodoList) Postpone(index int) error {
	entry, err := l.Get(index)
	if err != nil {
		return err
	}
	day, err := time.ParseInLocation(models.DateLayout, l.Date, l.loc)
	if err != nil {
		return fmt.Errorf("%w: bad date %q", ErrInvalidArgument, l.Date)
	}
	target := day.AddDate(0, 0, 1).Format(models.DateLayout)

	doc, err := l.repo.Load()
	if err != nil {
		return err
	}
	next := doc[target]

	entry.ID = len(next)
	entry.Postpone(target, l.now())

	remaining := make([]*models.Entry, 0, len(l.data)-1)
	remaining = append(remaining, l.data[:index]...)
	remaining = append(remaining, l.data[index+1:]...)

	nextRecs := make([]models.EntryRecord, 0, len(next)+1)
	nextRecs = append(nextRecs, next...)
	nextRecs = append(nextRecs, entry.Record())

	if err := l.repo.ReplaceDates(map[string][]models.EntryRecord{
		l.Date: records(remaining),
		target: nextRecs,
	}); err != nil {
		return err
	}
	l.data = remaining
	return nil
}

// Percentage is the completion breakdown over this list's entries.
func (l *TodoList) Percentage() Breakdown {
	return PercentageOf(l.data)
}

// flush rewrites the bound date's full list back to the document.
func (l *TodoList) flush() error {
	return l.repo.ReplaceDates(map[string][]models.EntryRecord{
		l.Date: records(l.data),
	})
}

func records(entries []*models.Entry) []models.EntryRecord {
	recs := make([]models.EntryRecord, 0, len(entries))
	for _, e := range entries {
		recs = append(recs, e.Record())
	}
	return recs
}
