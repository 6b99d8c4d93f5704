// Package model defines the core data types for a loaded gradebook.
package model

import "strings"

// Well-known gradebook column names. These match the export format of the
// source grading system verbatim and are never treated as assignments.
const (
	ColLastName    = "LastName"
	ColFirstName   = "FirstName"
	ColID          = "ID"
	ColSISUserID   = "SIS User ID"
	ColSISLoginID  = "SIS Login ID"
	ColRootAccount = "Root Account"
	ColSection     = "Section"
	ColNotes       = "Notes"
)

// Summary columns supplied by the export. Read, never written.
const (
	ColFinalScore           = "Final Score"
	ColUnpostedFinalScore   = "Unposted Final Score"
	ColFinalGrade           = "Final Grade"
	ColUnpostedFinalGrade   = "Unposted Final Grade"
	ColCurrentScore         = "Current Score"
	ColUnpostedCurrentScore = "Unposted Current Score"
)

var identityColumns = map[string]struct{}{
	ColLastName:    {},
	ColFirstName:   {},
	ColID:          {},
	ColSISUserID:   {},
	ColSISLoginID:  {},
	ColRootAccount: {},
	ColSection:     {},
	ColNotes:       {},
}

// IsIdentityColumn reports whether name is one of the fixed identity columns.
func IsIdentityColumn(name string) bool {
	_, ok := identityColumns[name]
	return ok
}

// Row is one record of the gradebook keyed by header column name. A column
// missing from the source record is absent from the map; an empty cell is
// present as "".
type Row map[string]string

// Get returns the raw cell value and whether the column was present.
func (r Row) Get(column string) (string, bool) {
	v, ok := r[column]
	return v, ok
}

// Trimmed returns the cell value with surrounding whitespace removed.
func (r Row) Trimmed(column string) string {
	return strings.TrimSpace(r[column])
}

// Number returns the first numeric value among the candidate columns, in
// order. Cells that are present but not numeric fall through to the next
// candidate.
func (r Row) Number(columns ...string) *float64 {
	for _, col := range columns {
		if n := ToNumber(r[col]); n != nil {
			return n
		}
	}
	return nil
}

// First returns the raw value of the first candidate column whose trimmed
// value is non-empty.
func (r Row) First(columns ...string) string {
	for _, col := range columns {
		if strings.TrimSpace(r[col]) != "" {
			return r[col]
		}
	}
	return ""
}

// PointsPossible maps an assignment column to its maximum achievable score.
// Columns without a numeric value in the Points Possible row are absent,
// not zero.
type PointsPossible map[string]float64
