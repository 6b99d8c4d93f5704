package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupKey(t *testing.T) {
	tests := []struct {
		name string
		row  Row
		want string
	}{
		{
			name: "prefers SIS user id",
			row:  Row{ColSISUserID: "12001234", ColID: "55", ColLastName: "Doe"},
			want: "12001234",
		},
		{
			name: "falls back to generic id",
			row:  Row{ColSISUserID: "  ", ColID: "55"},
			want: "55",
		},
		{
			name: "falls back to name composite",
			row:  Row{ColLastName: "Doe", ColFirstName: "Jane"},
			want: "doe|jane",
		},
		{
			name: "case folded and trimmed",
			row:  Row{ColSISUserID: "  AB-12  "},
			want: "ab-12",
		},
		{
			name: "bare composite when row has no identity",
			row:  Row{},
			want: "|",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DedupKey(tt.row))
		})
	}
}

func TestStudentRecordIdentity(t *testing.T) {
	rec := NewStudentRecord(Row{
		ColLastName:  "  Doe ",
		ColFirstName: " Jane",
		ColSISUserID: " 12001234 ",
		ColSection:   "S11 ",
	})

	assert.Equal(t, "Doe", rec.LastName)
	assert.Equal(t, "Jane", rec.FirstName)
	assert.Equal(t, "12001234", rec.ExternalID)
	assert.Equal(t, "S11", rec.Section)
	assert.Equal(t, "Doe, Jane", rec.DisplayName())
	assert.Equal(t, "12001234", rec.DisplayID())
}

// DisplayID never uses the name composite: a student without ids shows
// nothing rather than "Doe|Jane".
func TestDisplayIDWithoutIDs(t *testing.T) {
	rec := NewStudentRecord(Row{ColLastName: "Doe", ColFirstName: "Jane"})
	assert.Equal(t, "", rec.DisplayID())
	assert.Equal(t, "Doe|Jane", rec.ExternalID)
}

func TestToneFor(t *testing.T) {
	assert.Equal(t, ToneUnknown, ToneFor(nil))
	assert.Equal(t, ToneHigh, ToneFor(ptr(95)))
	assert.Equal(t, ToneHigh, ToneFor(ptr(90)))
	assert.Equal(t, ToneMedium, ToneFor(ptr(80)))
	assert.Equal(t, ToneMedium, ToneFor(ptr(75)))
	assert.Equal(t, ToneLow, ToneFor(ptr(74.9)))
	assert.Equal(t, ToneLow, ToneFor(ptr(0)))
}
