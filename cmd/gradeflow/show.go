package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/classware/gradeflow/internal/classify"
	"github.com/classware/gradeflow/internal/cli"
	"github.com/classware/gradeflow/internal/grade"
	"github.com/classware/gradeflow/internal/model"
)

func showCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <student>",
		Short: "Show one student's weighted grade breakdown",
		Long: `Show a student's category contributions and per-assignment scores.
The student may be referenced by SIS user id or by a name substring.

Scores are concealed by default so the terminal can be shared during a
consultation; pass --reveal to print them.`,
		Args: cobra.ExactArgs(1),
		RunE: runShow,
	}

	cmd.Flags().Bool("reveal", false, "print actual scores instead of concealing them")

	_ = viper.BindPFlag("show.reveal", cmd.Flags().Lookup("reveal"))

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	ro, err := loadRoster(ctx)
	if err != nil {
		return err
	}

	rec, err := findStudent(ro, args[0])
	if err != nil {
		return err
	}

	engine := grade.NewEngine(classify.New(), ro.Points)
	b := engine.Breakdown(*rec, ro.Header)

	reveal := viper.GetBool("show.reveal")
	conceal := func(s string) string {
		if reveal {
			return s
		}
		return "•••"
	}

	fmt.Println(cli.TitleStyle.Render(b.Student.DisplayName()))
	fmt.Println(cli.SubtitleStyle.Render(fmt.Sprintf("SIS User ID %s · Section %s",
		b.Student.DisplayID(), b.Student.Section)))

	if b.RawFinalScore != "" {
		fmt.Printf("%s %s\n", cli.SubtleStyle.Render("Final Score:"),
			cli.BoldStyle.Render(conceal(b.RawFinalScore)))
	}
	if b.RawFinalGrade != "" {
		style := cli.SuccessStyle
		if g := model.ToNumber(b.RawFinalGrade); g != nil && *g < 1.0 {
			style = cli.ErrorStyle
		}
		fmt.Printf("%s %s\n", cli.SubtleStyle.Render("Final Grade:"),
			style.Render(conceal(b.RawFinalGrade)))
	}
	if b.RawCurrentScore != "" {
		fmt.Printf("%s %s\n", cli.SubtleStyle.Render("Current Score:"),
			conceal(b.RawCurrentScore))
	}

	fmt.Println()
	if err := printContributions(b, conceal); err != nil {
		return err
	}

	for _, cat := range b.Categories {
		if len(cat.Items) == 0 {
			continue
		}
		if err := printCategory(cat, conceal); err != nil {
			return err
		}
	}

	return nil
}

func printContributions(b *model.Breakdown, conceal func(string) string) error {
	fmt.Println(cli.BoldStyle.Render("Category Contributions"))

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\n",
		cli.HeaderStyle.Render("Category"),
		cli.HeaderStyle.Render("Weight"),
		cli.HeaderStyle.Render("Contrib"))

	for _, row := range b.Contributions {
		contrib := "—"
		if row.Contribution != nil {
			contrib = fmt.Sprintf("%.1f%%", *row.Contribution)
		}
		fmt.Fprintf(w, "%s\t%.0f%%\t%s\n", row.Name, row.Weight, conceal(contrib))
	}
	fmt.Fprintf(w, "%s\t\t%s\n", cli.SubtleStyle.Render("Sum"),
		cli.BoldStyle.Render(conceal(fmt.Sprintf("%.1f%%", b.Sum))))

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to render contributions: %w", err)
	}
	fmt.Println()
	return nil
}

func printCategory(cat model.CategoryBreakdown, conceal func(string) string) error {
	pct := "—"
	if cat.Totals.Pct != nil {
		pct = fmt.Sprintf("%.1f%%", *cat.Totals.Pct)
	}
	fmt.Println(cli.BoldStyle.Render(fmt.Sprintf("%s — %.0f%%", cat.Name, cat.Weight)) +
		cli.SubtleStyle.Render("  "+conceal(pct)))

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		cli.HeaderStyle.Render("Activity"),
		cli.HeaderStyle.Render("Score"),
		cli.HeaderStyle.Render("Max"),
		cli.HeaderStyle.Render("%"))

	for _, it := range cat.Items {
		max := "—"
		if it.Max != nil {
			max = fmt.Sprintf("%.2f", *it.Max)
		}
		itemPct := "—"
		if it.Pct != nil {
			itemPct = fmt.Sprintf("%.1f%%", *it.Pct)
		}
		tone := cli.ToneStyle(it.Tone)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			it.Column,
			tone.Render(conceal(it.Display)),
			cli.SubtleStyle.Render(conceal(max)),
			tone.Render(conceal(itemPct)))
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to render category: %w", err)
	}
	fmt.Println()
	return nil
}
