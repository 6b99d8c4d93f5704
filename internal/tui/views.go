package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/classware/gradeflow/internal/model"
)

const (
	sidebarWidth   = 34
	collapsedWidth = 6
	concealedText  = "•••"
)

func (m Model) renderLoading() string {
	return m.theme.Muted.Render("Loading gradebook…")
}

func (m Model) renderError() string {
	return m.theme.ErrorText.Render("Error: "+m.err.Error()) + "\n\n" +
		m.theme.HelpBar.Render("q quit")
}

func (m Model) renderBrowse() string {
	sidebar := m.renderSidebar()
	detail := m.renderDetail()

	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, detail)
	help := m.theme.HelpBar.Render(
		"↑/↓ navigate · / search · s scores · p pass/fail · c collapse · t theme · 1-5 expand · q quit")
	return body + "\n" + help
}

func (m Model) renderSidebar() string {
	width := sidebarWidth
	if m.prefs.Collapsed {
		width = collapsedWidth
	}

	var b strings.Builder
	if m.prefs.Collapsed {
		b.WriteString(m.theme.Title.Render("GF"))
	} else {
		b.WriteString(m.theme.Title.Render("Gradebook"))
	}
	b.WriteString("\n")

	if !m.prefs.Collapsed && (m.searching || m.search.Value() != "") {
		b.WriteString(m.search.View())
		b.WriteString("\n")
	}

	if len(m.filtered) == 0 {
		b.WriteString(m.theme.Muted.Render("No matches"))
	}

	visible := m.visibleWindow()
	for _, i := range visible {
		it := m.filtered[i]
		line := m.renderIndexItem(it, i == m.cursor)
		b.WriteString(line)
		b.WriteString("\n")
	}

	return m.theme.Sidebar.Width(width).Render(b.String())
}

// visibleWindow keeps the cursor inside the rows that fit the terminal.
func (m Model) visibleWindow() []int {
	rows := m.height - 6
	if rows < 1 {
		rows = len(m.filtered)
	}
	start := 0
	if m.cursor >= rows {
		start = m.cursor - rows + 1
	}
	end := start + rows
	if end > len(m.filtered) {
		end = len(m.filtered)
	}
	idx := make([]int, 0, end-start)
	for i := start; i < end; i++ {
		idx = append(idx, i)
	}
	return idx
}

func (m Model) renderIndexItem(it model.StudentIndexItem, selected bool) string {
	if m.prefs.Collapsed {
		initials := initialsOf(it.LastName, it.FirstName)
		if selected {
			return m.theme.Selected.Render(initials)
		}
		return m.theme.Normal.Render(initials)
	}

	name := it.DisplayName
	if selected {
		name = m.theme.Selected.Render(name)
	} else {
		name = m.theme.Normal.Render(name)
	}

	chip := ""
	if m.prefs.ShowStatus && it.HasGrade {
		if it.Failed {
			chip = " " + m.theme.FailChip.Render("Failed")
		} else {
			chip = " " + m.theme.PassChip.Render("Passed")
		}
	}

	id := ""
	if it.ExternalID != "" {
		id = " " + m.theme.Muted.Render(it.ExternalID)
	}

	return name + chip + id
}

func initialsOf(last, first string) string {
	var b strings.Builder
	if last != "" {
		b.WriteString(strings.ToUpper(last[:1]))
	}
	if first != "" {
		b.WriteString(strings.ToUpper(first[:1]))
	}
	if b.Len() == 0 {
		return "??"
	}
	return b.String()
}

func (m Model) renderDetail() string {
	b := m.currentBreakdown()
	if b == nil {
		return m.theme.Muted.Render("No student selected")
	}

	var out strings.Builder
	out.WriteString(m.theme.Title.Render(b.Student.DisplayName()))
	out.WriteString("\n")

	meta := fmt.Sprintf("SIS User ID %s · Section %s",
		orDash(b.Student.DisplayID()), orDash(b.Student.Section))
	out.WriteString(m.theme.Subtitle.Render(meta))
	out.WriteString("\n\n")

	out.WriteString(m.renderSummary(b))
	out.WriteString("\n")
	out.WriteString(m.renderContributions(b))
	out.WriteString("\n")
	out.WriteString(m.renderCategories(b))

	return lipgloss.NewStyle().Padding(0, 2).Render(out.String())
}

func (m Model) renderSummary(b *model.Breakdown) string {
	var parts []string
	if b.RawFinalScore != "" {
		parts = append(parts, m.theme.Muted.Render("Final Score ")+
			m.theme.Bold.Render(m.conceal(b.RawFinalScore)))
	}
	if b.RawFinalGrade != "" {
		style := m.theme.PassChip
		if g := model.ToNumber(b.RawFinalGrade); g != nil && *g < 1.0 {
			style = m.theme.FailChip
		}
		parts = append(parts, m.theme.Muted.Render("Final Grade ")+
			style.Render(m.conceal(b.RawFinalGrade)))
	}
	if b.RawCurrentScore != "" {
		parts = append(parts, m.theme.Muted.Render("Current Score ")+
			m.theme.Normal.Render(m.conceal(b.RawCurrentScore)))
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, m.theme.Muted.Render("  ·  ")) + "\n"
}

func (m Model) renderContributions(b *model.Breakdown) string {
	var rows strings.Builder
	rows.WriteString(m.theme.Bold.Render("Category Contributions"))
	rows.WriteString("\n")
	for _, row := range b.Contributions {
		contrib := "—"
		if row.Contribution != nil {
			contrib = fmt.Sprintf("%.1f%%", *row.Contribution)
		}
		rows.WriteString(fmt.Sprintf("%-28s %5.0f%%  %s\n",
			row.Name, row.Weight, m.theme.Normal.Render(m.conceal(contrib))))
	}
	sum := fmt.Sprintf("%.1f%%", b.Sum)
	rows.WriteString(m.theme.Muted.Render("Sum") + "  " + m.theme.Bold.Render(m.conceal(sum)))
	rows.WriteString("\n")
	return m.theme.Box.Render(rows.String())
}

func (m Model) renderCategories(b *model.Breakdown) string {
	var out strings.Builder
	for n, cat := range b.Categories {
		if len(cat.Items) == 0 {
			continue
		}

		marker := "▸"
		if m.open[cat.ID] {
			marker = "▾"
		}
		label := fmt.Sprintf("%s %d. %s — %.0f%%", marker, n+1, cat.Name, cat.Weight)

		pct := "—"
		if cat.Totals.Pct != nil {
			pct = fmt.Sprintf("%.1f%%", *cat.Totals.Pct)
		}
		contrib := "—"
		if cat.Contribution != nil {
			contrib = fmt.Sprintf("%.1f%%", *cat.Contribution)
		}

		out.WriteString(m.theme.Bold.Render(label))
		out.WriteString(m.theme.Muted.Render(
			fmt.Sprintf("   %s · contrib: %s", m.conceal(pct), m.conceal(contrib))))
		out.WriteString("\n")

		if m.open[cat.ID] {
			for _, it := range cat.Items {
				max := "—"
				if it.Max != nil {
					max = fmt.Sprintf("%.2f", *it.Max)
				}
				itemPct := "—"
				if it.Pct != nil {
					itemPct = fmt.Sprintf("%.1f%%", *it.Pct)
				}
				tone := m.theme.ToneStyle(it.Tone)
				out.WriteString(fmt.Sprintf("    %-44s %s  %s  %s\n",
					truncate(it.Column, 44),
					tone.Render(m.conceal(it.Display)),
					m.theme.Muted.Render(m.conceal(max)),
					tone.Render(m.conceal(itemPct))))
			}
		}
	}
	return out.String()
}

// conceal blanks a score string while consultation mode hides grades.
func (m Model) conceal(s string) string {
	if m.prefs.ShowScores {
		return s
	}
	return concealedText
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
