package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/marcus/dlg/internal/config"
	"github.com/marcus/dlg/internal/host"
	"github.com/marcus/dlg/internal/journal"
	"github.com/marcus/dlg/internal/output"
	"github.com/marcus/dlg/pkg/dialog"
)

// Exit statuses for a finished session.
const (
	exitDismissed = 2
	exitCancelled = 130
)

// dialogFlags are the flags shared by every command that shows a dialog.
type dialogFlags struct {
	title      string
	width      int
	variant    string
	noHints    bool
	journal    bool
	background string
}

func addDialogFlags(fs *pflag.FlagSet, f *dialogFlags) {
	fs.StringVarP(&f.title, "title", "t", "", "dialog title")
	fs.IntVarP(&f.width, "width", "w", 0, "dialog width (default from config, then 50)")
	fs.StringVar(&f.variant, "variant", "", "style: default, danger, warning, info")
	fs.BoolVar(&f.noHints, "no-hints", false, "hide the key hint line")
	fs.BoolVar(&f.journal, "journal", false, "record the outcome in the journal")
	fs.StringVar(&f.background, "background", "", "text shown behind the dialog")
}

// settings merges resolved config with flags the user set explicitly.
func (f *dialogFlags) settings(fs *pflag.FlagSet, cfg *config.Config) host.Options {
	opts := host.Options{
		Title:      f.title,
		Width:      cfg.Width,
		Variant:    dialog.ParseVariant(cfg.Variant),
		ShowHints:  !cfg.HideHints,
		Background: f.background,
	}
	if fs.Changed("width") {
		opts.Width = f.width
	}
	if fs.Changed("variant") {
		opts.Variant = dialog.ParseVariant(f.variant)
	}
	if fs.Changed("no-hints") {
		opts.ShowHints = !f.noHints
	}
	return opts
}

// runSession shows content in a dialog, journals the outcome if enabled and
// prints a submitted value to stdout. Dismissal and cancellation map to
// non-zero exit statuses.
func runSession(cmd *cobra.Command, name string, content host.Interactive, f *dialogFlags, cfg *config.Config) error {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return fmt.Errorf("dlg needs a terminal on stderr")
	}

	opts := f.settings(cmd.Flags(), cfg)
	opts.Name = name
	opts.Logger = slog.Default()

	programOpts := []tea.ProgramOption{
		tea.WithOutput(os.Stderr),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		programOpts = append(programOpts, tea.WithInputTTY())
	}

	res, err := host.Run(cmd.Context(), host.New(content, opts), programOpts...)
	if err != nil {
		return err
	}
	slog.Info("session finished", "dialog", name, "outcome", res.Outcome)

	if f.journal || cfg.Journal {
		if err := recordOutcome(cmd.Context(), name, res); err != nil {
			output.Warning("%v", err)
		}
	}

	return reportResult(cmd.OutOrStdout(), res)
}

func reportResult(w io.Writer, res host.Result) error {
	switch res.Outcome {
	case host.OutcomeSubmitted:
		fmt.Fprintln(w, res.Value)
		return nil
	case host.OutcomeCancelled:
		return exitError{code: exitCancelled}
	default:
		return exitError{code: exitDismissed}
	}
}

func recordOutcome(ctx context.Context, name string, res host.Result) error {
	j, err := journal.Open(journalPath())
	if err != nil {
		return err
	}
	defer j.Close()

	_, err = j.Record(ctx, journal.Entry{
		Dialog:  name,
		Outcome: string(res.Outcome),
		Value:   res.Value,
	})
	return err
}

func journalPath() string {
	return filepath.Join(getBaseDir(), journal.DefaultFile)
}

// loadConfig resolves config for the current base directory.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Resolve(getBaseDir())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
