package roster

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/classware/gradeflow/internal/common"
	"github.com/classware/gradeflow/internal/model"
)

// pointsPossibleMarker identifies the row carrying each column's maximum
// score. The export pads it with stray whitespace, so matching trims first.
const pointsPossibleMarker = "points possible"

// headerEchoThreshold is the number of columns that must repeat their own
// header name before a row is treated as a header echo. Deliberately kept
// at the value tuned against the real export format.
const headerEchoThreshold = 3

// Roster is the loaded session state: the export header, the filtered
// student records, and the points-possible reference map. It is built once
// per load and never mutated.
type Roster struct {
	Header   []string
	Students []model.StudentRecord
	Points   model.PointsPossible
}

// Load parses a raw gradebook export. The first record is the header;
// malformed individual lines are skipped, but an empty or undecodable
// document fails the whole load with no partial roster.
func Load(r io.Reader) (*Roster, error) {
	header, rows, err := readTable(r)
	if err != nil {
		return nil, err
	}

	points := extractPoints(header, rows)
	filtered := filterStudents(header, rows)
	deduped := dedupe(filtered)

	students := make([]model.StudentRecord, 0, len(deduped))
	for _, row := range deduped {
		students = append(students, model.NewStudentRecord(row))
	}

	common.LogDebug("gradebook loaded", common.Fields{
		"columns":  len(header),
		"rows":     len(rows),
		"students": len(students),
		"points":   len(points),
	})

	return &Roster{Header: header, Students: students, Points: points}, nil
}

// readTable parses the raw CSV into a header and body rows, dropping rows
// whose every field is blank.
func readTable(r io.Reader) ([]string, []model.Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: no header record: %w", common.ErrParse, err)
	}

	var rows []model.Row
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Row-level irregularities are tolerated: skip the line.
			common.LogDebug("skipping malformed line", common.Fields{"error": err.Error()})
			continue
		}

		row := make(model.Row, len(header))
		empty := true
		for i, name := range header {
			if name == "" {
				continue
			}
			var v string
			if i < len(record) {
				v = record[i]
			}
			row[name] = v
			if strings.TrimSpace(v) != "" {
				empty = false
			}
		}
		if empty {
			continue
		}
		rows = append(rows, row)
	}

	return header, rows, nil
}

// extractPoints reads the maximum score per column from the first Points
// Possible row. Columns without a numeric value there stay absent.
func extractPoints(header []string, rows []model.Row) model.PointsPossible {
	points := make(model.PointsPossible)
	for _, row := range rows {
		if strings.ToLower(row.Trimmed(model.ColLastName)) != pointsPossibleMarker {
			continue
		}
		for _, name := range header {
			if name == "" {
				continue
			}
			if n := model.ToNumber(row[name]); n != nil {
				points[name] = *n
			}
		}
		break
	}
	return points
}

// isHeaderEcho detects malformed body rows that repeat the column headers
// as their values.
func isHeaderEcho(header []string, row model.Row) bool {
	matches := 0
	for _, name := range header {
		if name == "" {
			continue
		}
		v := strings.ToLower(strings.TrimSpace(row[name]))
		if v != "" && v == strings.ToLower(strings.TrimSpace(name)) {
			matches++
		}
	}
	return matches >= headerEchoThreshold
}

// filterStudents drops the structural and placeholder rows the export mixes
// into the body: the Points Possible row, repeated header rows, header
// echoes, rows with no name at all, and the grading system's synthetic
// "Test Student" account.
func filterStudents(header []string, rows []model.Row) []model.Row {
	var kept []model.Row
	for _, row := range rows {
		last := strings.ToLower(row.Trimmed(model.ColLastName))
		first := strings.ToLower(row.Trimmed(model.ColFirstName))
		id := strings.ToLower(strings.TrimSpace(row.First(model.ColSISUserID, model.ColID)))
		section := strings.ToLower(row.Trimmed(model.ColSection))

		switch {
		case last == pointsPossibleMarker:
		case last == "lastname" && first == "firstname":
		case id == "sis user id":
		case section == "section" && last == "" && first == "":
		case isHeaderEcho(header, row):
		case last == "" && first == "":
		case last == "student" && first == "test":
			// The source grading system injects this placeholder account.
			// A real student named Test Student is excluded too; accepted
			// limitation of the export format.
		default:
			kept = append(kept, row)
			continue
		}
		common.LogDebug("dropping non-student row", common.Fields{
			"last": last, "first": first,
		})
	}
	return kept
}

// dedupe keeps the first row per identity key. Later rows with a repeated
// key are export duplication artifacts; their data is discarded without
// reconciliation.
func dedupe(rows []model.Row) []model.Row {
	seen := make(map[string]struct{}, len(rows))
	var kept []model.Row
	for _, row := range rows {
		key := model.DedupKey(row)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			common.LogDebug("dropping duplicate row", common.Fields{"key": key})
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, row)
	}
	return kept
}
