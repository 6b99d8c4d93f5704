package roster

import (
	"fmt"
	"sort"
	"strings"

	"github.com/classware/gradeflow/internal/model"
)

// BuildIndex projects the roster into its sorted, searchable index. Failing
// students sort before passing students; within each group ordering is
// alphabetical by last then first name, case-insensitively.
func BuildIndex(ro *Roster) []model.StudentIndexItem {
	items := make([]model.StudentIndexItem, 0, len(ro.Students))
	for i, rec := range ro.Students {
		if rec.LastName == "" && rec.FirstName == "" {
			// Nameless records cannot be displayed or selected.
			continue
		}

		grade := rec.Row.Number(model.ColUnpostedFinalGrade, model.ColFinalGrade)
		items = append(items, model.StudentIndexItem{
			Key:         fmt.Sprintf("%s-%d", rec.DisplayID(), i),
			DisplayName: rec.DisplayName(),
			LastName:    rec.LastName,
			FirstName:   rec.FirstName,
			ExternalID:  rec.DisplayID(),
			RowIndex:    i,
			Failed:      grade != nil && *grade < 1.0,
			HasGrade:    grade != nil,
		})
	}

	sort.SliceStable(items, func(a, b int) bool {
		ia, ib := items[a], items[b]
		if ia.Failed != ib.Failed {
			return ia.Failed
		}
		la, lb := strings.ToLower(ia.LastName), strings.ToLower(ib.LastName)
		if la != lb {
			return la < lb
		}
		return strings.ToLower(ia.FirstName) < strings.ToLower(ib.FirstName)
	})

	return items
}

// FilterIndex returns the items whose display name or key contains the
// query, case-insensitively. Order is preserved; an empty query returns the
// index unchanged.
func FilterIndex(items []model.StudentIndexItem, query string) []model.StudentIndexItem {
	if query == "" {
		return items
	}
	q := strings.ToLower(query)
	var matched []model.StudentIndexItem
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.DisplayName), q) ||
			strings.Contains(strings.ToLower(it.Key), q) {
			matched = append(matched, it)
		}
	}
	return matched
}
