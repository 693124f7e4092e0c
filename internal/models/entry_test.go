package models

import (
	"errors"
	"strings"
	"testing"
	"time"
)

var testNow = time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

func TestNewEntry(t *testing.T) {
	e := NewEntry("Test Task", testNow)

	if e.Title != "Test Task" {
		t.Errorf("Title = %q, want %q", e.Title, "Test Task")
	}
	if e.Status != StatusPending {
		t.Errorf("Status = %q, want %q", e.Status, StatusPending)
	}
	if !e.DateCreated.Equal(testNow) || !e.DateUpdated.Equal(testNow) {
		t.Errorf("timestamps = %v/%v, want both %v", e.DateCreated, e.DateUpdated, testNow)
	}
	if len(e.Log) != 1 {
		t.Fatalf("len(Log) = %d, want 1", len(e.Log))
	}
	if e.Log[0] != "Task created on 10-03-2026" {
		t.Errorf("Log[0] = %q, want creation line", e.Log[0])
	}
}

func TestChangeStatus(t *testing.T) {
	e := NewEntry("Test Task", testNow)
	later := testNow.Add(2 * time.Hour)

	e.ChangeStatus(StatusCompleted, later)

	if e.Status != StatusCompleted {
		t.Errorf("Status = %q, want %q", e.Status, StatusCompleted)
	}
	if len(e.Log) != 2 {
		t.Fatalf("len(Log) = %d, want 2", len(e.Log))
	}
	if !strings.HasPrefix(e.Log[1], "Status updated to COMPLETED on ") {
		t.Errorf("Log[1] = %q, want status line", e.Log[1])
	}
	if !e.DateUpdated.Equal(later) {
		t.Errorf("DateUpdated = %v, want %v", e.DateUpdated, later)
	}
}

func TestRename(t *testing.T) {
	e := NewEntry("old title", testNow)
	later := testNow.Add(time.Hour)

	e.Rename("new title", later)

	if e.Title != "new title" {
		t.Errorf("Title = %q, want %q", e.Title, "new title")
	}
	if len(e.Log) != 2 {
		t.Fatalf("len(Log) = %d, want 2", len(e.Log))
	}
	want := "Title updated to new title from old title on 10/03/2026, 09:30:00"
	if e.Log[1] != want {
		t.Errorf("Log[1] = %q, want %q", e.Log[1], want)
	}
	if !e.DateUpdated.Equal(later) {
		t.Errorf("DateUpdated = %v, want %v", e.DateUpdated, later)
	}
}

func TestPostpone(t *testing.T) {
	e := NewEntry("Test Task", testNow)
	later := testNow.Add(time.Hour)

	e.Postpone("11-03-2026", later)

	if len(e.Log) != 2 {
		t.Fatalf("len(Log) = %d, want 2", len(e.Log))
	}
	if e.Log[1] != "Task postponed to 11-03-2026" {
		t.Errorf("Log[1] = %q, want postpone line", e.Log[1])
	}
	if !e.DateUpdated.Equal(later) {
		t.Errorf("DateUpdated = %v, want %v", e.DateUpdated, later)
	}
}

func TestRecordRoundTrip(t *testing.T) {
	e := NewEntry("Test Task", testNow)
	e.ChangeStatus(StatusCompleted, testNow.Add(time.Hour))
	e.ID = 3

	got, err := EntryFromRecord(e.Record())
	if err != nil {
		t.Fatalf("EntryFromRecord failed: %v", err)
	}

	if got.ID != e.ID {
		t.Errorf("ID = %d, want %d", got.ID, e.ID)
	}
	if got.Title != e.Title {
		t.Errorf("Title = %q, want %q", got.Title, e.Title)
	}
	if got.Status != e.Status {
		t.Errorf("Status = %q, want %q", got.Status, e.Status)
	}
	if !got.DateCreated.Equal(e.DateCreated) || !got.DateUpdated.Equal(e.DateUpdated) {
		t.Errorf("timestamps = %v/%v, want %v/%v",
			got.DateCreated, got.DateUpdated, e.DateCreated, e.DateUpdated)
	}
	if len(got.Log) != len(e.Log) {
		t.Fatalf("len(Log) = %d, want %d", len(got.Log), len(e.Log))
	}
	for i := range e.Log {
		if got.Log[i] != e.Log[i] {
			t.Errorf("Log[%d] = %q, want %q", i, got.Log[i], e.Log[i])
		}
	}
}

func TestEntryFromRecordRejectsBadInput(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		rec := NewEntry("Test Task", testNow).Record()
		rec.Status = "in_progress"
		if _, err := EntryFromRecord(rec); !errors.Is(err, ErrValidation) {
			t.Errorf("err = %v, want ErrValidation", err)
		}
	})

	t.Run("empty log", func(t *testing.T) {
		rec := NewEntry("Test Task", testNow).Record()
		rec.Log = nil
		if _, err := EntryFromRecord(rec); !errors.Is(err, ErrValidation) {
			t.Errorf("err = %v, want ErrValidation", err)
		}
	})
}

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"pending", "completed", "deleted", "canceled"} {
		if _, err := ParseStatus(s); err != nil {
			t.Errorf("ParseStatus(%q) failed: %v", s, err)
		}
	}
	if _, err := ParseStatus("cancelled"); !errors.Is(err, ErrValidation) {
		t.Errorf("ParseStatus(\"cancelled\") err = %v, want ErrValidation", err)
	}
}
