// Package grade computes weighted category breakdowns for a student.
package grade

import (
	"strings"

	"github.com/classware/gradeflow/internal/classify"
	"github.com/classware/gradeflow/internal/model"
)

// Engine aggregates a student's assignment scores into category totals and
// a contribution table reconciled against the exported final score.
type Engine struct {
	classifier *classify.Classifier
	points     model.PointsPossible
	reconcile  ReconcileFunc
}

// Option configures an Engine.
type Option func(*Engine)

// WithReconcile overrides the rounding-reconciliation strategy.
func WithReconcile(fn ReconcileFunc) Option {
	return func(e *Engine) {
		e.reconcile = fn
	}
}

// NewEngine creates an aggregation engine over the course's points-possible
// map. A nil classifier gets the course defaults.
func NewEngine(classifier *classify.Classifier, points model.PointsPossible, opts ...Option) *Engine {
	if classifier == nil {
		classifier = classify.New()
	}
	e := &Engine{
		classifier: classifier,
		points:     points,
		reconcile:  ReconcileLastNonNil,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// AssignmentColumns selects the gradable columns: those with a known
// maximum, in header order, excluding the identity columns.
func (e *Engine) AssignmentColumns(header []string) []string {
	var cols []string
	for _, name := range header {
		if name == "" || model.IsIdentityColumn(name) {
			continue
		}
		if _, ok := e.points[name]; ok {
			cols = append(cols, name)
		}
	}
	return cols
}

// Breakdown computes the full grade view for one student.
func (e *Engine) Breakdown(rec model.StudentRecord, header []string) *model.Breakdown {
	rules := e.classifier.Rules()
	weights := e.classifier.NormalizedWeights()

	// Group assignment items into buckets, named categories first.
	items := make(map[string][]model.AssignmentItem, len(rules)+1)
	for _, col := range e.AssignmentColumns(header) {
		id := e.classifier.Classify(col)
		items[id] = append(items[id], e.item(rec.Row, col))
	}

	totals := make(map[string]model.CategoryTotals, len(rules)+1)
	for _, rule := range rules {
		totals[rule.ID] = buildTotals(items[rule.ID])
	}
	totals[model.CategoryOther] = buildTotals(items[model.CategoryOther])

	// Per-category contribution: prefer the export's own category score
	// columns, fall back to the computed totals.
	rows := make([]model.ContributionRow, 0, len(rules))
	for _, rule := range rules {
		pct := rec.Row.Number(rule.ScoreColumns()...)
		if pct == nil {
			pct = totals[rule.ID].Pct
		}
		var contrib *float64
		if pct != nil {
			v := *pct * weights[rule.ID] / 100
			contrib = &v
		}
		rows = append(rows, model.ContributionRow{
			ID:           rule.ID,
			Name:         rule.Name,
			Weight:       weights[rule.ID],
			Contribution: contrib,
		})
	}

	finalScore := rec.Row.Number(model.ColUnpostedFinalScore, model.ColFinalScore)
	sum, reconciled := e.reconcileRows(rows, finalScore)

	b := &model.Breakdown{
		Student:         rec,
		Contributions:   rows,
		FinalScore:      finalScore,
		RawFinalScore:   rec.Row.First(model.ColUnpostedFinalScore, model.ColFinalScore),
		RawFinalGrade:   rec.Row.First(model.ColUnpostedFinalGrade, model.ColFinalGrade),
		RawCurrentScore: rec.Row.First(model.ColUnpostedCurrentScore, model.ColCurrentScore),
		Sum:             sum,
		Reconciled:      reconciled,
	}

	for i, rule := range rules {
		b.Categories = append(b.Categories, model.CategoryBreakdown{
			ID:           rule.ID,
			Name:         rule.Name,
			Weight:       weights[rule.ID],
			Items:        items[rule.ID],
			Totals:       totals[rule.ID],
			Contribution: rows[i].Contribution,
		})
	}
	b.Categories = append(b.Categories, model.CategoryBreakdown{
		ID:     model.CategoryOther,
		Name:   "Other",
		Items:  items[model.CategoryOther],
		Totals: totals[model.CategoryOther],
	})

	return b
}

// reconcileRows forces the displayed contributions to sum exactly to the
// reported final score when one exists. Returns the displayed sum.
func (e *Engine) reconcileRows(rows []model.ContributionRow, finalScore *float64) (float64, bool) {
	if finalScore == nil {
		sum := 0.0
		for _, row := range rows {
			if row.Contribution != nil {
				sum += *row.Contribution
			}
		}
		return sum, false
	}

	sum := 0.0
	for i := range rows {
		if rows[i].Contribution == nil {
			continue
		}
		rounded := Round2(*rows[i].Contribution)
		rows[i].Contribution = &rounded
		sum += rounded
	}

	diff := Round2(*finalScore) - sum
	if diff != 0 && !e.reconcile(rows, diff) {
		// No contribution can absorb the difference; show the raw sum
		// rather than a final score the rows cannot add up to.
		return sum, false
	}
	return *finalScore, true
}

// item scores one assignment column for the row.
func (e *Engine) item(row model.Row, column string) model.AssignmentItem {
	raw := row[column]

	var max *float64
	if m, ok := e.points[column]; ok {
		max = &m
	}

	score := model.ToNumber(raw)
	var pct *float64
	if score != nil && max != nil && *max > 0 {
		v := *score / *max * 100
		pct = &v
	}

	display := raw
	if strings.TrimSpace(raw) == "" {
		display = "—"
	}

	return model.AssignmentItem{
		Column:  column,
		Raw:     raw,
		Display: display,
		Max:     max,
		Score:   score,
		Pct:     pct,
		Tone:    model.ToneFor(pct),
	}
}

// buildTotals aggregates a bucket. The percentage is the mean of member
// item percentages when any item has one, else earned over max.
func buildTotals(items []model.AssignmentItem) model.CategoryTotals {
	t := model.CategoryTotals{}
	for _, it := range items {
		if it.Score != nil && it.Max != nil && *it.Max > 0 {
			t.Earned += *it.Score
			t.Max += *it.Max
		}
	}

	if len(items) == 0 {
		return t
	}

	var pcts []float64
	for _, it := range items {
		if it.Pct != nil {
			pcts = append(pcts, *it.Pct)
		}
	}
	switch {
	case len(pcts) > 0:
		mean := 0.0
		for _, p := range pcts {
			mean += p
		}
		mean /= float64(len(pcts))
		t.Pct = &mean
	case t.Max > 0:
		v := t.Earned / t.Max * 100
		t.Pct = &v
	}
	return t
}
