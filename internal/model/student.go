package model

import (
	"fmt"
	"strings"
)

// StudentRecord is one filtered row of the gradebook representing a single
// real, non-duplicate student. Records are built once per load and never
// mutated afterwards.
type StudentRecord struct {
	// Row is the full underlying record, used for assignment and summary
	// column lookups.
	Row Row

	LastName  string
	FirstName string
	// ExternalID prefers the SIS user id, then the generic id, then a
	// composite of the raw name fields.
	ExternalID string
	Section    string
}

// NewStudentRecord derives the identity fields for a row.
func NewStudentRecord(row Row) StudentRecord {
	return StudentRecord{
		Row:        row,
		LastName:   row.Trimmed(ColLastName),
		FirstName:  row.Trimmed(ColFirstName),
		ExternalID: strings.TrimSpace(externalID(row)),
		Section:    row.Trimmed(ColSection),
	}
}

// DisplayID is the identifier shown next to a student: the SIS user id or
// generic id, without the name-composite fallback used for de-duplication.
func (s StudentRecord) DisplayID() string {
	if v := s.Row.Trimmed(ColSISUserID); v != "" {
		return v
	}
	return s.Row.Trimmed(ColID)
}

// DisplayName renders the student as "Last, First".
func (s StudentRecord) DisplayName() string {
	return fmt.Sprintf("%s, %s", s.LastName, s.FirstName)
}

// DedupKey is the case-folded identity used to drop repeated export rows.
// An empty key means the row carries no identity at all.
func DedupKey(row Row) string {
	return strings.ToLower(strings.TrimSpace(externalID(row)))
}

func externalID(row Row) string {
	if strings.TrimSpace(row[ColSISUserID]) != "" {
		return row[ColSISUserID]
	}
	if strings.TrimSpace(row[ColID]) != "" {
		return row[ColID]
	}
	return fmt.Sprintf("%s|%s", row[ColLastName], row[ColFirstName])
}

// StudentIndexItem is one entry of the sorted, searchable roster index.
type StudentIndexItem struct {
	// Key combines the display id with the row position so duplicate ids
	// stay distinguishable.
	Key         string
	DisplayName string
	LastName    string
	FirstName   string
	ExternalID  string
	RowIndex    int
	// Failed is true only when the final-grade field parses as a finite
	// number strictly below 1.0.
	Failed bool
	// HasGrade reports whether a final-grade field was numeric at all.
	HasGrade bool
}
