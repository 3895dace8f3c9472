package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"pushpal/internal/bootstrap"
	counterdto "pushpal/internal/modules/counter/dto"
	settingsdto "pushpal/internal/modules/settings/dto"
	"pushpal/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootOptions struct {
	dataDir string
	store   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "pushpal",
		Short:         "Push-up counter with goal tracking",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI(opts)
		},
	}
	root.PersistentFlags().StringVar(&opts.dataDir, "data", ".", "directory holding .pushpal/ state")
	root.PersistentFlags().StringVar(&opts.store, "store", "", "store backend: sqlite|file|redis|memory (overrides config)")

	root.AddCommand(newTUICmd(opts))
	root.AddCommand(newCountCmd(opts))
	root.AddCommand(newProgressCmd(opts))
	root.AddCommand(newSettingsCmd(opts))
	return root
}

func loadApp(opts *rootOptions) (*bootstrap.App, error) {
	cfg, err := config.Load(opts.dataDir)
	if err != nil {
		return nil, err
	}
	if opts.store != "" {
		cfg.Store.Backend = opts.store
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return bootstrap.New(context.Background(), cfg)
}

// withApp wires the app for one command and closes it afterwards.
func withApp(opts *rootOptions, fn func(app *bootstrap.App) error) (err error) {
	app, err := loadApp(opts)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := app.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return fn(app)
}

func runTUI(opts *rootOptions) error {
	return withApp(opts, bootstrap.RunTUI)
}

func newTUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the pushpal terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI(opts)
		},
	}
}

func newCountCmd(opts *rootOptions) *cobra.Command {
	count := &cobra.Command{Use: "count", Short: "Read or change the push-up count"}

	count.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the stored count",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(app *bootstrap.App) error {
				out, err := app.CounterCLI.Show(context.Background())
				if err != nil {
					return err
				}
				printCount(cmd.OutOrStdout(), out)
				return nil
			})
		},
	})

	var by int
	incCmd := &cobra.Command{
		Use:   "inc",
		Short: "Log push-ups",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(app *bootstrap.App) error {
				out, err := app.CounterCLI.Increment(context.Background(), by)
				if err != nil {
					return err
				}
				printCount(cmd.OutOrStdout(), out)
				return nil
			})
		},
	}
	incCmd.Flags().IntVar(&by, "by", 1, "number of push-ups to add")

	count.AddCommand(incCmd, &cobra.Command{
		Use:   "reset",
		Short: "Set the count back to zero",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(app *bootstrap.App) error {
				out, err := app.CounterCLI.Reset(context.Background())
				if err != nil {
					return err
				}
				printCount(cmd.OutOrStdout(), out)
				return nil
			})
		},
	})
	return count
}

func newProgressCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "progress",
		Short: "Print the progress band toward the goal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(app *bootstrap.App) error {
				out, err := app.CounterCLI.Show(context.Background())
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				if !out.ProgressVisible {
					_, _ = fmt.Fprintln(w, "progress hidden")
					return nil
				}
				_, _ = fmt.Fprintf(w, "%s %d/%d (%.0f%%)\n", out.Band, out.Count, out.Goal, out.Ratio*100)
				return nil
			})
		},
	}
}

func newSettingsCmd(opts *rootOptions) *cobra.Command {
	settings := &cobra.Command{Use: "settings", Short: "Read or change preferences"}

	settings.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the stored preferences",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(app *bootstrap.App) error {
				out, err := app.SettingsCLI.Show(context.Background())
				if err != nil {
					return err
				}
				printPreferences(cmd.OutOrStdout(), out)
				return nil
			})
		},
	})

	var progressBar, darkTheme bool
	var goal int
	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Change preferences; unset flags keep their value",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var pb, dark *bool
			var g *int
			if cmd.Flags().Changed("progress-bar") {
				pb = &progressBar
			}
			if cmd.Flags().Changed("dark-theme") {
				dark = &darkTheme
			}
			if cmd.Flags().Changed("goal") {
				g = &goal
			}
			if pb == nil && dark == nil && g == nil {
				return fmt.Errorf("nothing to set: pass --progress-bar, --dark-theme or --goal")
			}
			return withApp(opts, func(app *bootstrap.App) error {
				out, err := app.SettingsCLI.Set(context.Background(), pb, dark, g)
				if err != nil {
					return err
				}
				printPreferences(cmd.OutOrStdout(), out)
				return nil
			})
		},
	}
	setCmd.Flags().BoolVar(&progressBar, "progress-bar", false, "show the progress bar")
	setCmd.Flags().BoolVar(&darkTheme, "dark-theme", false, "use the dark theme")
	setCmd.Flags().IntVar(&goal, "goal", 0, "goal in push-ups, clamped to 0-100")

	settings.AddCommand(setCmd)
	return settings
}

func printCount(w io.Writer, out counterdto.CounterOutput) {
	_, _ = fmt.Fprintf(w, "count: %d\n", out.Count)
}

func printPreferences(w io.Writer, out settingsdto.PreferencesOutput) {
	_, _ = fmt.Fprintf(w, "progress_bar=%s dark_theme=%s goal=%d\n",
		onOff(out.ProgressBarEnabled), onOff(out.DarkThemeEnabled), out.Goal)
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
