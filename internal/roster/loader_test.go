package roster

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classware/gradeflow/internal/model"
)

const sampleCSV = `LastName,FirstName,SIS User ID,Section,Quiz 1
"    Points Possible",,,,10
Doe,Jane,12001234,S11,8
Cruz,Maria,12005678,S11,9
`

func TestLoadBasic(t *testing.T) {
	ro, err := Load(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	assert.Equal(t, []string{"LastName", "FirstName", "SIS User ID", "Section", "Quiz 1"}, ro.Header)
	require.Len(t, ro.Students, 2)
	assert.Equal(t, "Doe", ro.Students[0].LastName)
	assert.Equal(t, "12001234", ro.Students[0].ExternalID)
	assert.Equal(t, model.PointsPossible{"Quiz 1": 10}, ro.Points)
}

func TestLoadEmptyDocument(t *testing.T) {
	_, err := Load(strings.NewReader(""))
	assert.Error(t, err)
}

func TestLoadHeaderOnly(t *testing.T) {
	ro, err := Load(strings.NewReader("LastName,FirstName,SIS User ID\n"))
	require.NoError(t, err)
	assert.Empty(t, ro.Students)
	assert.Empty(t, ro.Points)
}

func TestPointsPossibleExtraction(t *testing.T) {
	csv := "LastName,FirstName,Quiz 1,Essay,Final Score\n" +
		"  points POSSIBLE  ,,10,25,(read only)\n" +
		"Doe,Jane,8,20,91.2\n"

	ro, err := Load(strings.NewReader(csv))
	require.NoError(t, err)

	// Non-numeric cells in the Points Possible row stay absent, not zero.
	assert.Equal(t, model.PointsPossible{"Quiz 1": 10, "Essay": 25}, ro.Points)
	_, hasFinal := ro.Points["Final Score"]
	assert.False(t, hasFinal)
}

// Only the first Points Possible row is consulted.
func TestPointsPossibleFirstRowWins(t *testing.T) {
	csv := "LastName,FirstName,Quiz 1\n" +
		"Points Possible,,10\n" +
		"Points Possible,,99\n" +
		"Doe,Jane,8\n"

	ro, err := Load(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 10.0, ro.Points["Quiz 1"])
}

func TestNonStudentRowFiltering(t *testing.T) {
	tests := []struct {
		name string
		row  string
		kept bool
	}{
		{name: "points possible row", row: "Points Possible,,,,10", kept: false},
		{name: "repeated header names", row: "LastName,FirstName,,,", kept: false},
		{name: "sis user id echo", row: "Smith,Ann,SIS User ID,,", kept: false},
		{name: "section echo with empty names", row: ",,,Section,", kept: false},
		{name: "both names empty", row: ",,988,S12,7", kept: false},
		{name: "test student placeholder", row: "Student,Test,999,S12,10", kept: false},
		{name: "test student case insensitive", row: " STUDENT , test ,999,S12,10", kept: false},
		{name: "real student", row: "Reyes,Ana,12009999,S12,7", kept: true},
		{name: "real student named Test", row: "Test,Ana,12008888,S12,7", kept: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			csv := "LastName,FirstName,SIS User ID,Section,Quiz 1\n" + tt.row + "\n"
			ro, err := Load(strings.NewReader(csv))
			require.NoError(t, err)
			if tt.kept {
				assert.Len(t, ro.Students, 1)
			} else {
				assert.Empty(t, ro.Students)
			}
		})
	}
}

func TestHeaderEchoDetection(t *testing.T) {
	header := []string{"LastName", "FirstName", "SIS User ID", "Section"}

	tests := []struct {
		name string
		row  model.Row
		want bool
	}{
		{
			name: "three echoed columns",
			row: model.Row{
				"LastName":    " lastname ",
				"FirstName":   "FIRSTNAME",
				"SIS User ID": "sis user id",
				"Section":     "S11",
			},
			want: true,
		},
		{
			name: "two echoed columns is not enough",
			row: model.Row{
				"LastName":    "lastname",
				"FirstName":   "firstname",
				"SIS User ID": "12001234",
				"Section":     "S11",
			},
			want: false,
		},
		{
			name: "empty values never count as echoes",
			row: model.Row{
				"LastName":    "",
				"FirstName":   "",
				"SIS User ID": "",
				"Section":     "",
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isHeaderEcho(header, tt.row))
		})
	}
}

// Given two rows with the same identity key, only the first survives.
func TestDeduplicationFirstWins(t *testing.T) {
	csv := "LastName,FirstName,SIS User ID,Quiz 1\n" +
		"Doe,Jane,12001234,8\n" +
		"Doe,Jane,12001234,3\n" +
		"Doe,Jane, 12001234 ,5\n"

	ro, err := Load(strings.NewReader(csv))
	require.NoError(t, err)

	require.Len(t, ro.Students, 1)
	assert.Equal(t, "8", ro.Students[0].Row["Quiz 1"])
}

func TestDeduplicationFallbackKeys(t *testing.T) {
	csv := "LastName,FirstName,SIS User ID,ID\n" +
		"Doe,Jane,,55\n" +
		"Doe,Jane,,55\n" +
		"Cruz,Maria,,\n" +
		"Cruz,Maria,,\n"

	ro, err := Load(strings.NewReader(csv))
	require.NoError(t, err)

	// One per generic-id key, one per name-composite key.
	assert.Len(t, ro.Students, 2)
}

// Re-running the non-student filters on an already filtered roster removes
// nothing further.
func TestFilteringIdempotent(t *testing.T) {
	csv := "LastName,FirstName,SIS User ID,Section,Quiz 1\n" +
		"Points Possible,,,,10\n" +
		"lastname,firstname,,,\n" +
		"Student,Test,999,S12,10\n" +
		"Doe,Jane,12001234,S11,8\n" +
		"Cruz,Maria,12005678,S11,9\n"

	ro, err := Load(strings.NewReader(csv))
	require.NoError(t, err)

	header := ro.Header
	rows := make([]model.Row, 0, len(ro.Students))
	for _, s := range ro.Students {
		rows = append(rows, s.Row)
	}

	again := filterStudents(header, rows)
	assert.Len(t, again, len(rows))
}

// Rows whose every field is blank are treated as absent.
func TestBlankRowsSkipped(t *testing.T) {
	csv := "LastName,FirstName,SIS User ID\n" +
		"\n" +
		" , , \n" +
		"Doe,Jane,12001234\n"

	ro, err := Load(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Len(t, ro.Students, 1)
}

// Short records map only the columns they cover; missing cells read as "".
func TestRaggedRecords(t *testing.T) {
	csv := "LastName,FirstName,SIS User ID,Quiz 1\n" +
		"Doe,Jane,12001234\n"

	ro, err := Load(strings.NewReader(csv))
	require.NoError(t, err)

	require.Len(t, ro.Students, 1)
	assert.Equal(t, "", ro.Students[0].Row["Quiz 1"])
}
