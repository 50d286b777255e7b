package collections

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrContentDirRequired = errors.New("collections: content directory is required")
	ErrSlugRequired       = errors.New("collections: slug is required")
	ErrSlugInvalid        = errors.New("collections: slug contains invalid characters")
	ErrSlugExists         = errors.New("collections: slug already exists")
	ErrOngoingConflict    = errors.New("collections: current entries must not declare an end date")
	ErrDateOrderInvalid   = errors.New("collections: end date precedes start date")
	ErrPublishedAtZero    = errors.New("collections: publication date is required")
)

// EntryError ties a validation failure to the file that caused it.
type EntryError struct {
	Path       string
	Collection string
	Err        error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("%s (%s): %v", e.Path, e.Collection, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}

// LoadError aggregates every entry failure from a load pass. The loader never
// drops invalid entries silently; callers receive the full list and the build
// aborts.
type LoadError struct {
	Entries []*EntryError
}

func (e *LoadError) Error() string {
	if e == nil || len(e.Entries) == 0 {
		return "collections: load failed"
	}
	parts := make([]string, 0, len(e.Entries))
	for _, entry := range e.Entries {
		parts = append(parts, entry.Error())
	}
	return fmt.Sprintf("collections: %d invalid entries: %s", len(e.Entries), strings.Join(parts, "; "))
}

func (e *LoadError) Unwrap() []error {
	if e == nil {
		return nil
	}
	errs := make([]error, 0, len(e.Entries))
	for _, entry := range e.Entries {
		errs = append(errs, entry)
	}
	return errs
}
