// internal/models/entry.go
package models

import (
	"errors"
	"fmt"
	"time"
)

// ErrValidation reports a persisted record that cannot be trusted, e.g. an
// unknown status string or an empty audit log.
var ErrValidation = errors.New("validation error")

// Status defines the lifecycle states of an entry.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusDeleted   Status = "deleted"
	StatusCancelled Status = "canceled"
)

// ParseStatus maps a wire string to a Status. Anything outside the closed set
// fails with ErrValidation.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusCompleted, StatusDeleted, StatusCancelled:
		return Status(s), nil
	}
	return "", fmt.Errorf("%w: unknown status %q", ErrValidation, s)
}

// Name is the uppercase form used in audit log lines.
func (s Status) Name() string {
	switch s {
	case StatusPending:
		return "PENDING"
	case StatusCompleted:
		return "COMPLETED"
	case StatusDeleted:
		return "DELETED"
	case StatusCancelled:
		return "CANCELLED"
	}
	return ""
}

const (
	// DateLayout is the partition key format (day-month-year).
	DateLayout = "02-01-2006"
	// logTimeLayout is the timestamp format used inside audit log lines.
	logTimeLayout = "02/01/2006, 15:04:05"
)

// Entry is one task: a title, a lifecycle status, timestamps, and an
// append-only audit log. The log never shrinks and always holds at least the
// creation line; every mutation appends exactly one line.
type Entry struct {
	ID          int
	Title       string
	Status      Status
	DateCreated time.Time
	DateUpdated time.Time
	Log         []string
}

// NewEntry creates a pending entry stamped with now (already in the
// configured time zone).
func NewEntry(title string, now time.Time) *Entry {
	return &Entry{
		Title:       title,
		Status:      StatusPending,
		DateCreated: now,
		DateUpdated: now,
		Log:         []string{"Task created on " + now.Format(DateLayout)},
	}
}

// Rename sets a new title. The log line captures the old title and the
// previous update time.
func (e *Entry) Rename(title string, now time.Time) {
	e.Log = append(e.Log, fmt.Sprintf(
		"Title updated to %s from %s on %s",
		title, e.Title, e.DateUpdated.Format(logTimeLayout),
	))
	e.Title = title
	e.DateUpdated = now
}

// ChangeStatus moves the entry to a new lifecycle state.
func (e *Entry) ChangeStatus(status Status, now time.Time) {
	e.Status = status
	e.DateUpdated = now
	e.Log = append(e.Log, fmt.Sprintf(
		"Status updated to %s on %s",
		status.Name(), now.Format(logTimeLayout),
	))
}

// Postpone records the move of this entry to the target date partition.
func (e *Entry) Postpone(target string, now time.Time) {
	e.DateUpdated = now
	e.Log = append(e.Log, "Task postponed to "+target)
}

// EntryRecord is the serialized form of an Entry as stored in the document.
type EntryRecord struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Status      string    `json:"status"`
	DateCreated time.Time `json:"date_created"`
	DateUpdated time.Time `json:"date_updated"`
	Log         []string  `json:"log"`
}

// Record serializes the entry. Lossless: EntryFromRecord reverses it exactly.
func (e *Entry) Record() EntryRecord {
	return EntryRecord{
		ID:          e.ID,
		Title:       e.Title,
		Status:      string(e.Status),
		DateCreated: e.DateCreated,
		DateUpdated: e.DateUpdated,
		Log:         append([]string(nil), e.Log...),
	}
}

// EntryFromRecord rebuilds an Entry from its persisted record. Unknown status
// strings and empty logs fail with ErrValidation.
func EntryFromRecord(rec EntryRecord) (*Entry, error) {
	status, err := ParseStatus(rec.Status)
	if err != nil {
		return nil, err
	}
	if len(rec.Log) == 0 {
		return nil, fmt.Errorf("%w: entry %q has an empty log", ErrValidation, rec.Title)
	}
	return &Entry{
		ID:          rec.ID,
		Title:       rec.Title,
		Status:      status,
		DateCreated: rec.DateCreated,
		DateUpdated: rec.DateUpdated,
		Log:         append([]string(nil), rec.Log...),
	}, nil
}
