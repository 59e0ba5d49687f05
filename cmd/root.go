package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marcus/dlg/internal/output"
)

var (
	version string
	baseDir string

	logFile  string
	debugLog bool
	logOut   io.Closer
)

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "dlg",
	Short: "Show a modal dialog in the terminal",
	Long: `dlg - Show a single modal dialog over the terminal and report how it was closed.

Press Esc anywhere to dismiss the dialog. Submitted values are printed to stdout,
so dlg can be used from shell scripts:

  choice=$(ls | dlg pick --title "Open file")

Exit status: 0 when a value was submitted, 2 when the dialog was dismissed
(Esc or the close mark), 130 when cancelled with ctrl+c, 1 on any other error.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging()
	},
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() {
	args := os.Args[1:]
	// Bare text defaults to "dlg show <text>"
	if arg := firstNonFlagArg(args); arg != "" && !isCommand(arg) {
		rootCmd.SetArgs(append([]string{"show"}, args...))
	}

	err := rootCmd.Execute()
	// Close before os.Exit so failed and dismissed runs flush the log too
	closeLog()
	if err != nil {
		var ee exitError
		if !errors.As(err, &ee) {
			output.Error("%v", err)
		}
		os.Exit(exitCode(err))
	}
}

func init() {
	cobra.OnInitialize(initBaseDir)

	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "append JSON logs to this file")
	rootCmd.PersistentFlags().BoolVar(&debugLog, "debug", false, "log at debug level")
}

func initBaseDir() {
	var err error
	baseDir, err = os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot determine working directory: %v\n", err)
		os.Exit(1)
	}
}

// getBaseDir returns the base directory for the project
func getBaseDir() string {
	return baseDir
}

// setupLogging installs the default slog logger. The dialog owns the
// terminal, so logs only go to --log-file.
func setupLogging() error {
	level := slog.LevelInfo
	if debugLog {
		level = slog.LevelDebug
	}

	var w io.Writer = io.Discard
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logOut = f
		w = f
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})))
	return nil
}

// closeLog closes the --log-file handle opened by setupLogging.
func closeLog() {
	if logOut != nil {
		logOut.Close()
		logOut = nil
	}
}

// firstNonFlagArg returns the first argument that does not look like a flag.
func firstNonFlagArg(args []string) string {
	for _, a := range args {
		if strings.HasPrefix(a, "-") {
			continue
		}
		return a
	}
	return ""
}

// isCommand reports whether name is a registered subcommand or alias.
func isCommand(name string) bool {
	if name == "help" || name == "completion" {
		return true
	}
	for _, c := range rootCmd.Commands() {
		if c.Name() == name || c.HasAlias(name) {
			return true
		}
	}
	return false
}

// exitError carries a process exit status without an extra message.
type exitError struct {
	code int
}

func (e exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func exitCode(err error) int {
	var ee exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return 1
}
