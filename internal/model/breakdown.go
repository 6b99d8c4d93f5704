package model

// Tone is the qualitative bucket for an assignment percentage.
type Tone string

const (
	ToneUnknown Tone = "unknown"
	ToneHigh    Tone = "high"   // >= 90%
	ToneMedium  Tone = "medium" // >= 75%
	ToneLow     Tone = "low"
)

// ToneFor buckets a percentage. A nil percentage is unknown.
func ToneFor(pct *float64) Tone {
	switch {
	case pct == nil:
		return ToneUnknown
	case *pct >= 90:
		return ToneHigh
	case *pct >= 75:
		return ToneMedium
	default:
		return ToneLow
	}
}

// AssignmentItem is one assignment column scored for one student.
type AssignmentItem struct {
	Column string
	// Raw is the cell exactly as exported; Display substitutes a dash for
	// blank cells.
	Raw     string
	Display string
	Max     *float64
	Score   *float64
	Pct     *float64
	Tone    Tone
}

// CategoryTotals aggregates the scored items of one category.
type CategoryTotals struct {
	Earned float64
	Max    float64
	// Pct is the mean of member item percentages when any exist, else
	// Earned/Max, else nil.
	Pct *float64
}

// ContributionRow is one category's share of the final grade.
type ContributionRow struct {
	ID   string
	Name string
	// Weight is the category weight normalized so the named categories sum
	// to 100.
	Weight float64
	// Contribution is the category percentage times Weight/100, nil when no
	// percentage is known.
	Contribution *float64
}

// CategoryBreakdown is one category's full view for a selected student.
type CategoryBreakdown struct {
	ID           string
	Name         string
	Weight       float64
	Items        []AssignmentItem
	Totals       CategoryTotals
	Contribution *float64
}

// Breakdown is the complete computed grade view for one student. It is a
// pure projection of the roster: recomputed on demand, never mutated.
type Breakdown struct {
	Student StudentRecord

	// Categories holds the named categories in declared order followed by
	// the "other" bucket.
	Categories []CategoryBreakdown

	// Contributions covers the named (weighted) categories only.
	Contributions []ContributionRow

	// FinalScore is the ground-truth overall score from the export when
	// numeric. Raw summary strings are kept for display.
	FinalScore      *float64
	RawFinalScore   string
	RawFinalGrade   string
	RawCurrentScore string

	// Sum is the displayed contribution total: the ground-truth final score
	// when present and reconciled, else the computed sum.
	Sum float64

	// Reconciled reports whether the rounding difference was folded into a
	// contribution so the rows sum exactly to FinalScore.
	Reconciled bool
}
