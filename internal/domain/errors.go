package domain

import (
	"errors"
	"fmt"
)

// ErrBadHeader marks a structurally invalid upload: the file could not be
// read as delimited text, or required header columns are missing. No rows
// are processed when it is returned.
var ErrBadHeader = errors.New("invalid csv header")

// RowError records one skipped row. Row is the line number in the uploaded
// file, counting the header as line 1. Row failures never abort the batch.
type RowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Row, e.Reason)
}

// ImportReport summarizes one import call: how many rows were persisted and
// which rows were skipped.
type ImportReport struct {
	Imported int        `json:"imported"`
	Skipped  []RowError `json:"skipped,omitempty"`
}
