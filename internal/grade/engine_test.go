package grade

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classware/gradeflow/internal/classify"
	"github.com/classware/gradeflow/internal/model"
)

func testEngine(points model.PointsPossible, opts ...Option) *Engine {
	return NewEngine(classify.New(), points, opts...)
}

func record(row model.Row) model.StudentRecord {
	return model.NewStudentRecord(row)
}

func TestAssignmentColumns(t *testing.T) {
	e := testEngine(model.PointsPossible{
		"Quiz 1":          10,
		"Case Study 1":    50,
		"SIS User ID":     99, // identity columns never count as assignments
		"Ungraded Column": 0,
	})

	header := []string{"LastName", "FirstName", "SIS User ID", "Case Study 1", "Quiz 1", "Notes", "Essay"}
	// Header order preserved; Essay has no known maximum and is skipped.
	assert.Equal(t, []string{"Case Study 1", "Quiz 1"}, e.AssignmentColumns(header))
}

func TestBreakdownItems(t *testing.T) {
	points := model.PointsPossible{"Quiz 1": 10, "Quiz 2": 10, "Quiz 3": 0}
	header := []string{"LastName", "FirstName", "Quiz 1", "Quiz 2", "Quiz 3"}

	tests := []struct {
		name     string
		row      model.Row
		column   string
		wantPct  *float64
		wantTone model.Tone
	}{
		{
			name:     "scored item",
			row:      model.Row{"Quiz 1": "8"},
			column:   "Quiz 1",
			wantPct:  ptr(80),
			wantTone: model.ToneMedium,
		},
		{
			name:     "full marks",
			row:      model.Row{"Quiz 1": "10"},
			column:   "Quiz 1",
			wantPct:  ptr(100),
			wantTone: model.ToneHigh,
		},
		{
			name:     "empty cell is unknown, not zero",
			row:      model.Row{"Quiz 1": ""},
			column:   "Quiz 1",
			wantPct:  nil,
			wantTone: model.ToneUnknown,
		},
		{
			name:     "zero maximum never divides",
			row:      model.Row{"Quiz 3": "5"},
			column:   "Quiz 3",
			wantPct:  nil,
			wantTone: model.ToneUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testEngine(points).Breakdown(record(tt.row), header)

			var item *model.AssignmentItem
			for i := range b.Categories {
				for j := range b.Categories[i].Items {
					if b.Categories[i].Items[j].Column == tt.column {
						item = &b.Categories[i].Items[j]
					}
				}
			}
			require.NotNil(t, item)

			if tt.wantPct == nil {
				assert.Nil(t, item.Pct)
			} else {
				require.NotNil(t, item.Pct)
				assert.InDelta(t, *tt.wantPct, *item.Pct, 1e-9)
			}
			assert.Equal(t, tt.wantTone, item.Tone)
		})
	}
}

func TestCategoryTotalsMeanOfPercentages(t *testing.T) {
	points := model.PointsPossible{"Quiz 1": 10, "Quiz 2": 20}
	header := []string{"LastName", "Quiz 1", "Quiz 2"}

	b := testEngine(points).Breakdown(record(model.Row{
		"Quiz 1": "8",  // 80%
		"Quiz 2": "20", // 100%
	}), header)

	var cat *model.CategoryBreakdown
	for i := range b.Categories {
		if b.Categories[i].ID == "class_activities" {
			cat = &b.Categories[i]
		}
	}
	require.NotNil(t, cat)

	assert.InDelta(t, 28, cat.Totals.Earned, 1e-9)
	assert.InDelta(t, 30, cat.Totals.Max, 1e-9)
	// Mean of item percentages, not earned over max (which would be 93.3).
	require.NotNil(t, cat.Totals.Pct)
	assert.InDelta(t, 90, *cat.Totals.Pct, 1e-9)
}

func TestCategoryTotalsEmpty(t *testing.T) {
	b := testEngine(model.PointsPossible{}).Breakdown(record(model.Row{}), []string{"LastName"})
	for _, cat := range b.Categories {
		assert.Nil(t, cat.Totals.Pct)
		assert.Empty(t, cat.Items)
	}
}

func TestContributionPrefersCategoryScoreColumns(t *testing.T) {
	points := model.PointsPossible{"Case Study 1": 50}
	header := []string{"LastName", "Case Study 1"}

	row := model.Row{
		"Case Study 1": "25", // computed would be 50%
		"Case Study Unposted Final Score": "95",
		"Case Study Final Score":          "40",
	}

	b := testEngine(points).Breakdown(record(row), header)

	require.NotEmpty(t, b.Contributions)
	cs := b.Contributions[0]
	assert.Equal(t, "case_study", cs.ID)
	require.NotNil(t, cs.Contribution)
	// Unposted wins over posted; 95 × 40 / 100.
	assert.InDelta(t, 38, *cs.Contribution, 1e-9)
}

func TestContributionCandidateFallthrough(t *testing.T) {
	row := model.Row{
		"Case Study Unposted Final Score": "N/A",
		"Case Study Current Score":        "80",
	}

	b := testEngine(model.PointsPossible{}).Breakdown(record(row), []string{"LastName"})
	require.NotNil(t, b.Contributions[0].Contribution)
	assert.InDelta(t, 32, *b.Contributions[0].Contribution, 1e-9)
}

func TestContributionFallsBackToComputedTotals(t *testing.T) {
	points := model.PointsPossible{"Quiz 1": 10}
	header := []string{"LastName", "Quiz 1"}

	b := testEngine(points).Breakdown(record(model.Row{"Quiz 1": "9"}), header)

	var ca *model.ContributionRow
	for i := range b.Contributions {
		if b.Contributions[i].ID == "class_activities" {
			ca = &b.Contributions[i]
		}
	}
	require.NotNil(t, ca)
	require.NotNil(t, ca.Contribution)
	// 90% of the normalized 15% weight.
	assert.InDelta(t, 13.5, *ca.Contribution, 1e-9)

	// Categories with no data contribute nothing.
	for _, row := range b.Contributions {
		if row.ID != "class_activities" {
			assert.Nil(t, row.Contribution)
		}
	}
}

func TestReconciliationInvariant(t *testing.T) {
	row := model.Row{
		"Case Study Unposted Final Score":              "92.5",
		"Exams (Midterm and Final) Unposted Final Score": "81.25",
		"Practical Exercises Final Score":              "88.8",
		"Class Activities Current Score":               "95.55",
		"Unposted Final Score":                         "90.6",
	}

	b := testEngine(model.PointsPossible{}).Breakdown(record(row), []string{"LastName"})

	assert.True(t, b.Reconciled)
	assert.InDelta(t, 90.6, b.Sum, 1e-9)

	sum := 0.0
	for _, r := range b.Contributions {
		require.NotNil(t, r.Contribution)
		sum += *r.Contribution
	}
	// Displayed contributions sum exactly to the rounded final score.
	assert.InDelta(t, Round2(90.6), sum, 1e-9)

	// The rounding slack all lands in the last contributing category.
	last := b.Contributions[len(b.Contributions)-1]
	assert.Equal(t, "class_activities", last.ID)
	assert.InDelta(t, 14.39, *last.Contribution, 1e-9)
}

func TestReconciliationSkipsWhenNothingContributes(t *testing.T) {
	row := model.Row{"Unposted Final Score": "88.0"}

	b := testEngine(model.PointsPossible{}).Breakdown(record(row), []string{"LastName"})

	assert.False(t, b.Reconciled)
	// The raw (empty) sum is shown instead of a final score the rows
	// cannot add up to.
	assert.Zero(t, b.Sum)
	for _, r := range b.Contributions {
		assert.Nil(t, r.Contribution)
	}
}

func TestSumWithoutFinalScore(t *testing.T) {
	row := model.Row{
		"Case Study Final Score": "90",
		"Practical Exercises Final Score": "80",
	}

	b := testEngine(model.PointsPossible{}).Breakdown(record(row), []string{"LastName"})

	assert.False(t, b.Reconciled)
	assert.Nil(t, b.FinalScore)
	// 90×40/100 + 80×35/100
	assert.InDelta(t, 64, b.Sum, 1e-9)
}

func TestWithReconcileOverride(t *testing.T) {
	firstNonNil := func(rows []model.ContributionRow, diff float64) bool {
		for i := range rows {
			if rows[i].Contribution != nil {
				v := *rows[i].Contribution + diff
				rows[i].Contribution = &v
				return true
			}
		}
		return false
	}

	row := model.Row{
		"Case Study Final Score": "90.005", // rounds to 36.0 contribution
		"Unposted Final Score":   "36.10",
	}

	b := testEngine(model.PointsPossible{}, WithReconcile(firstNonNil)).
		Breakdown(record(row), []string{"LastName"})

	assert.True(t, b.Reconciled)
	require.NotNil(t, b.Contributions[0].Contribution)
	assert.InDelta(t, 36.10, *b.Contributions[0].Contribution, 1e-9)
}

func TestBreakdownSummaryStrings(t *testing.T) {
	row := model.Row{
		"Unposted Final Score": "",
		"Final Score":          "91.2",
		"Final Grade":          "3.5",
	}

	b := testEngine(model.PointsPossible{}).Breakdown(record(row), []string{"LastName"})

	// Blank unposted variants fall through to the posted columns.
	assert.Equal(t, "91.2", b.RawFinalScore)
	assert.Equal(t, "3.5", b.RawFinalGrade)
	assert.Equal(t, "", b.RawCurrentScore)
	require.NotNil(t, b.FinalScore)
	assert.InDelta(t, 91.2, *b.FinalScore, 1e-9)
}

func TestReconcileLastNonNil(t *testing.T) {
	v1, v3 := 10.0, 20.0
	rows := []model.ContributionRow{
		{ID: "a", Contribution: &v1},
		{ID: "b"},
		{ID: "c", Contribution: &v3},
		{ID: "d"},
	}

	require.True(t, ReconcileLastNonNil(rows, 0.05))
	assert.InDelta(t, 20.05, *rows[2].Contribution, 1e-12)
	assert.InDelta(t, 10.0, *rows[0].Contribution, 1e-12)

	empty := []model.ContributionRow{{ID: "a"}, {ID: "b"}}
	assert.False(t, ReconcileLastNonNil(empty, 0.05))
}

func ptr(f float64) *float64 { return &f }
