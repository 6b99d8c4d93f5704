package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/classware/gradeflow/internal/cli"
	"github.com/classware/gradeflow/internal/roster"
)

func studentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "students",
		Short: "List the student roster index",
		Long: `List the filtered, de-duplicated roster in consultation order:
failing students first, then alphabetical by name.`,
		RunE: runStudents,
	}

	cmd.Flags().StringP("search", "q", "", "filter by name or ID substring")
	cmd.Flags().Bool("status", false, "show Passed/Failed chips")

	_ = viper.BindPFlag("students.search", cmd.Flags().Lookup("search"))
	_ = viper.BindPFlag("students.status", cmd.Flags().Lookup("status"))

	return cmd
}

func runStudents(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	ro, err := loadRoster(ctx)
	if err != nil {
		return err
	}

	index := roster.BuildIndex(ro)
	index = roster.FilterIndex(index, viper.GetString("students.search"))

	if len(index) == 0 {
		fmt.Println(cli.SubtleStyle.Render("No matches"))
		return nil
	}

	showStatus := viper.GetBool("students.status")

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\n",
		cli.HeaderStyle.Render("Student"),
		cli.HeaderStyle.Render("SIS User ID"),
		cli.HeaderStyle.Render("Status"))

	for _, it := range index {
		status := ""
		if showStatus && it.HasGrade {
			if it.Failed {
				status = cli.ErrorStyle.Render("Failed")
			} else {
				status = cli.SuccessStyle.Render("Passed")
			}
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", it.DisplayName, it.ExternalID, status)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to render roster: %w", err)
	}

	fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("%d students", len(index))))
	return nil
}
