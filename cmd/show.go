package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/marcus/dlg/internal/host"
	"github.com/marcus/dlg/pkg/dialog"
)

var (
	showFlags    dialogFlags
	showFile     string
	showMarkdown bool
	showButton   string
)

var showCmd = &cobra.Command{
	Use:   "show [text...]",
	Short: "Show a message dialog",
	Long: `Show a message with a single button.

The body comes from the arguments, --file, or stdin. Enter accepts and prints the
button label; Esc dismisses with exit status 1.`,
	Example: `  dlg show "Build finished"
  dlg show --markdown -f CHANGELOG.md --title "What's new"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		text, err := readBody(args, showFile, os.Stdin)
		if err != nil {
			return err
		}

		var body dialog.Content = dialog.Text(text)
		if showMarkdown {
			body = dialog.Markdown(text, cfg.Theme)
		}

		return runSession(cmd, "show", host.NewMessage(body, showButton), &showFlags, cfg)
	},
}

// readBody picks the message body: args first, then a file, then piped stdin.
func readBody(args []string, file string, stdin *os.File) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read body: %w", err)
		}
		return strings.TrimRight(string(data), "\n"), nil
	}
	if stdin != nil && !term.IsTerminal(int(stdin.Fd())) {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return strings.TrimRight(string(data), "\n"), nil
	}
	return "", fmt.Errorf("nothing to show: pass text, --file, or pipe stdin")
}

func init() {
	addDialogFlags(showCmd.Flags(), &showFlags)
	showCmd.Flags().StringVarP(&showFile, "file", "f", "", "read the body from a file")
	showCmd.Flags().BoolVarP(&showMarkdown, "markdown", "m", false, "render the body as markdown")
	showCmd.Flags().StringVar(&showButton, "button", "OK", "button label")
	rootCmd.AddCommand(showCmd)
}
