package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"studylog/internal/bootstrap"
	focusdto "studylog/internal/modules/focus/dto"
	"studylog/internal/platform/config"
	"studylog/internal/platform/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type globalOptions struct {
	configPath string
	dataDir    string
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:           "studylog",
		Short:         "Track study sessions from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI(opts)
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default <data-dir>/config.toml)")
	root.PersistentFlags().StringVar(&opts.dataDir, "data-dir", "", "directory for the preference database and logs")

	root.AddCommand(newTUICmd(opts))
	root.AddCommand(newAdviceCmd(opts))
	root.AddCommand(newGoalCmd(opts))
	root.AddCommand(newLogoutCmd(opts))
	root.AddCommand(newFocusCmd(opts))
	root.AddCommand(newTipsCmd(opts))
	return root
}

// loadApp wires the application. The returned func closes the database and
// the log file.
func loadApp(opts *globalOptions) (*bootstrap.App, func(), error) {
	path := opts.configPath
	if path == "" {
		path = config.DefaultPath(opts.dataDir)
	}
	cfg, err := config.LoadOrCreate(path, opts.dataDir)
	if err != nil {
		return nil, nil, err
	}
	logger, logCloser, err := logging.New(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	slog.SetDefault(logger)
	logger.Debug("config loaded", "path", path, "data_dir", cfg.DataDir)

	app, err := bootstrap.New(cfg, logger)
	if err != nil {
		_ = logCloser.Close()
		return nil, nil, err
	}
	cleanup := func() {
		if err := app.Close(); err != nil {
			logger.Warn("close app", "error", err)
		}
		_ = logCloser.Close()
	}
	return app, cleanup, nil
}

func runTUI(opts *globalOptions) error {
	app, cleanup, err := loadApp(opts)
	if err != nil {
		return err
	}
	defer cleanup()
	return bootstrap.RunTUI(app)
}

func newTUICmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the studylog terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI(opts)
		},
	}
}

func newAdviceCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "advice",
		Short: "Fetch one piece of advice",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, cleanup, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer cleanup()
			out := app.AdviceCLI.Get(cmd.Context())
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Text)
			if out.Failed() {
				return fmt.Errorf("advice request failed")
			}
			return nil
		},
	}
}

func newGoalCmd(opts *globalOptions) *cobra.Command {
	goal := &cobra.Command{
		Use:   "goal",
		Short: "Show the weekly study goal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, cleanup, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer cleanup()
			prefs := app.PreferencesCLI.Load(cmd.Context())
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "weekly goal: %d min\n", prefs.WeeklyGoal)
			return nil
		},
	}
	goal.AddCommand(&cobra.Command{
		Use:   "set <minutes>",
		Short: "Change the weekly study goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			minutes, err := strconv.Atoi(strings.TrimSpace(args[0]))
			if err != nil {
				return fmt.Errorf("minutes must be a whole number: %q", args[0])
			}
			app, cleanup, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer cleanup()
			if err := app.PreferencesCLI.SetWeeklyGoal(cmd.Context(), minutes); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "weekly goal set to %d min\n", minutes)
			return nil
		},
	})
	return goal
}

func newLogoutCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the logged-in flag",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, cleanup, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer cleanup()
			if err := app.AccountCLI.Logout(cmd.Context()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}

func newFocusCmd(opts *globalOptions) *cobra.Command {
	var minutes string
	focus := &cobra.Command{
		Use:   "focus",
		Short: "Run a focus countdown in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, cleanup, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer cleanup()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			final, err := app.FocusCLI.Run(ctx, minutes, func(t focusdto.TimerOutput) {
				printClock(out, t)
			})
			_, _ = fmt.Fprintln(out)
			if err != nil {
				_, _ = fmt.Fprintf(out, "stopped with %s left\n", final.Clock)
				return nil
			}
			_, _ = fmt.Fprintln(out, "done, take a break")
			return nil
		},
	}
	focus.Flags().StringVar(&minutes, "minutes", "25", "countdown length in minutes (1-180)")
	return focus
}

func printClock(w io.Writer, t focusdto.TimerOutput) {
	_, _ = fmt.Fprintf(w, "\r%s  %3.0f%%", t.Clock, t.Fraction*100)
}

func newTipsCmd(opts *globalOptions) *cobra.Command {
	var category string
	tips := &cobra.Command{
		Use:   "tips",
		Short: "Print the study tips catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, cleanup, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer cleanup()
			items, err := app.TipsCLI.List(cmd.Context(), category)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				cats, _ := app.TipsCLI.Categories(cmd.Context())
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "no tips in %q (categories: %s)\n", category, strings.Join(cats, ", "))
				return nil
			}
			for _, tip := range items {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s\n%s\n\n", tip.Category, tip.Title, tip.Body)
			}
			return nil
		},
	}
	tips.Flags().StringVar(&category, "category", "", "only show tips in this category")
	return tips
}
