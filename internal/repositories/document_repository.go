package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"dailydo/internal/models"
)

// ErrNotFound reports that the document file does not exist at the
// configured path.
var ErrNotFound = errors.New("todo document not found")

// Document is the whole persisted mapping: date key -> ordered entry records.
// A date key that is absent is an empty list, never an error.
type Document map[string][]models.EntryRecord

// DocumentRepository mediates every read and write of the JSON document.
// Mutations are whole-document read-modify-writes: parse fully, touch only
// the affected date keys, rewrite from the start, truncate. A crash mid-write
// can leave the file truncated; accepted for a single-user local tool.
type DocumentRepository interface {
	// Load parses and validates the whole document.
	Load() (Document, error)
	// Append adds one record to the end of a date's list, leaving every
	// other date and entry untouched.
	Append(date string, rec models.EntryRecord) error
	// ReplaceDates overwrites the full list of each given date in one
	// read-modify-write.
	ReplaceDates(dates map[string][]models.EntryRecord) error
}

type fileDocumentRepository struct {
	path string
}

func NewDocumentRepository(path string) DocumentRepository {
	return &fileDocumentRepository{path: path}
}

func (r *fileDocumentRepository) Load() (Document, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, r.path)
		}
		return nil, fmt.Errorf("read todo document: %w", err)
	}

	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse todo document: %w", err)
	}
	if err := documentSchema.Validate(raw); err != nil {
		return nil, fmt.Errorf("%w: document schema: %v", models.ErrValidation, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse todo document: %w", err)
	}
	if doc == nil {
		doc = Document{}
	}
	return doc, nil
}

func (r *fileDocumentRepository) Append(date string, rec models.EntryRecord) error {
	return r.rewrite(func(doc Document) {
		doc[date] = append(doc[date], rec)
	})
}

func (r *fileDocumentRepository) ReplaceDates(dates map[string][]models.EntryRecord) error {
	return r.rewrite(func(doc Document) {
		for date, recs := range dates {
			if recs == nil {
				// keep empty partitions as [] in the file, not null
				recs = []models.EntryRecord{}
			}
			doc[date] = recs
		}
	})
}

// rewrite opens the document for read+write, parses it fully, applies the
// mutation, seeks back to the start, writes the full document, and truncates
// the trailing bytes a shorter rewrite leaves behind.
func (r *fileDocumentRepository) rewrite(mutate func(Document)) error {
	f, err := os.OpenFile(r.path, os.O_RDWR, 0)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, r.path)
		}
		return fmt.Errorf("open todo document: %w", err)
	}
	defer f.Close()

	var doc Document
	if err := json.NewDecoder(f).Decode(&doc); err != nil {
		return fmt.Errorf("parse todo document: %w", err)
	}
	if doc == nil {
		doc = Document{}
	}

	mutate(doc)

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("seek todo document: %w", err)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "    ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("write todo document: %w", err)
	}
	off, err := f.Seek(0, io.SeekCurrent)
	if err != nil {
		return fmt.Errorf("seek todo document: %w", err)
	}
	if err := f.Truncate(off); err != nil {
		return fmt.Errorf("truncate todo document: %w", err)
	}
	return nil
}
