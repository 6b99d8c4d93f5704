package grade

import "github.com/classware/gradeflow/internal/model"

// ReconcileFunc distributes a rounding difference across contribution rows
// so their sum matches the reported final score. It reports whether any row
// absorbed the difference.
type ReconcileFunc func(rows []model.ContributionRow, diff float64) bool

// ReconcileLastNonNil adds the entire difference to the last row that has a
// contribution. All rounding slack lands in one category; the breakdown in
// exchange always sums exactly to the reported final score.
func ReconcileLastNonNil(rows []model.ContributionRow, diff float64) bool {
	for i := len(rows) - 1; i >= 0; i-- {
		if rows[i].Contribution != nil {
			adjusted := *rows[i].Contribution + diff
			rows[i].Contribution = &adjusted
			return true
		}
	}
	return false
}
