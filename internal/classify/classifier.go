// Package classify maps assignment columns to weighted grade categories.
package classify

import (
	"strings"

	"github.com/classware/gradeflow/internal/model"
)

// Classifier evaluates category rules in declared priority order. The rule
// list is an ordered slice on purpose: patterns overlap, and the first rule
// whose pattern set matches claims the column.
type Classifier struct {
	rules []model.CategoryRule
}

// New creates a classifier for the given ordered rules. With no rules the
// course defaults apply.
func New(rules ...model.CategoryRule) *Classifier {
	if len(rules) == 0 {
		rules = model.DefaultCategoryRules()
	}
	return &Classifier{rules: rules}
}

// Rules returns the rules in priority order.
func (c *Classifier) Rules() []model.CategoryRule {
	return c.rules
}

// Classify returns the category id for an assignment column name. Every
// column maps to exactly one id; unmatched columns land in "other".
func (c *Classifier) Classify(column string) string {
	lower := strings.ToLower(column)
	for _, rule := range c.rules {
		for _, re := range rule.Patterns {
			if re.MatchString(lower) {
				return rule.ID
			}
		}
	}
	return model.CategoryOther
}

// NormalizedWeights scales the declared weights so the named categories sum
// to exactly 100. The "other" bucket always normalizes to 0.
func (c *Classifier) NormalizedWeights() map[string]float64 {
	total := 0.0
	for _, rule := range c.rules {
		total += rule.WeightPct
	}

	weights := make(map[string]float64, len(c.rules)+1)
	for _, rule := range c.rules {
		if total > 0 {
			weights[rule.ID] = rule.WeightPct * (100 / total)
		} else {
			weights[rule.ID] = 0
		}
	}
	weights[model.CategoryOther] = 0
	return weights
}
