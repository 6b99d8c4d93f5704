package model

import "regexp"

// CategoryOther is the fallback bucket for assignment columns no rule claims.
// It carries no weight and never contributes to the final grade.
const CategoryOther = "other"

// CategoryRule assigns assignment columns matching any of its patterns to a
// weighted grade category.
type CategoryRule struct {
	ID        string
	Name      string
	WeightPct float64
	Patterns  []*regexp.Regexp
}

// ScoreColumns lists the per-category summary columns the export may carry
// for this category, in preference order: the first numeric one wins.
func (c CategoryRule) ScoreColumns() []string {
	return []string{
		c.Name + " Unposted Final Score",
		c.Name + " Final Score",
		c.Name + " Unposted Current Score",
		c.Name + " Current Score",
	}
}

// DefaultCategoryRules returns the course's grade categories in priority
// order. Order is load-bearing: patterns overlap, and a column belongs to
// the first rule that matches. Case Study must come before Exams so that
// "Case Study Final" is not claimed by the final-exam pattern.
func DefaultCategoryRules() []CategoryRule {
	return []CategoryRule{
		{
			ID:        "case_study",
			Name:      "Case Study",
			WeightPct: 40,
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)case\s*study`),
			},
		},
		{
			ID:        "exams",
			Name:      "Exams (Midterm and Final)",
			WeightPct: 10,
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)\bmidterm\b`),
				regexp.MustCompile(`(?i)\bfinal\b`),
				regexp.MustCompile(`(?i)\bexam\b`),
			},
		},
		{
			ID:        "practical_exercises",
			Name:      "Practical Exercises",
			WeightPct: 35,
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)^\s*practical\s*exercises?\b`),
				regexp.MustCompile(`(?i)\bpractical\b`),
				regexp.MustCompile(`(?i)\bexercise\b`),
				regexp.MustCompile(`(?i)\blab\b`),
			},
		},
		{
			ID:        "class_activities",
			Name:      "Class Activities",
			WeightPct: 15,
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)\bactivity\b`),
				regexp.MustCompile(`(?i)\bdiscussion\b`),
				regexp.MustCompile(`(?i)graded\s*discussion`),
				regexp.MustCompile(`(?i)class\s*participation`),
				regexp.MustCompile(`(?i)attendance`),
				regexp.MustCompile(`(?i)\bquiz(z|zes)?\b`),
				regexp.MustCompile(`(?i)threat\s*model`),
				regexp.MustCompile(`(?i)authentication`),
				regexp.MustCompile(`(?i)data\s*validation`),
			},
		},
	}
}
