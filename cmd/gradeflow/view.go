package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/classware/gradeflow/internal/common"
	"github.com/classware/gradeflow/internal/config"
	"github.com/classware/gradeflow/internal/prefs"
	"github.com/classware/gradeflow/internal/tui"
)

func viewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Browse the gradebook interactively",
		Long: `Open the interactive viewer: a searchable student sidebar and a
per-student category breakdown. Scores start concealed (consultation mode);
display toggles persist across sessions.`,
		RunE: runView,
	}
}

func runView(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg := tui.Config{
		Source: config.ExpandPath(viper.GetString("csv.source")),
		Prefs:  prefs.Defaults(),
	}

	// Preference persistence is best effort: a broken store means the
	// viewer just starts from defaults every time.
	store, err := prefs.NewStore(config.ExpandPath(viper.GetString("prefs.db")))
	if err != nil {
		common.LogError(err, "preference store unavailable, using defaults", nil)
	} else {
		defer func() { _ = store.Close() }()
		cfg.Store = store
		if p, err := store.Load(ctx); err == nil {
			cfg.Prefs = p
		} else {
			common.LogError(err, "failed to load preferences, using defaults", nil)
		}
	}

	return tui.Run(ctx, cfg)
}
