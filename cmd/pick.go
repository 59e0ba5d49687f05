package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/marcus/dlg/internal/host"
)

var pickFlags dialogFlags

var pickCmd = &cobra.Command{
	Use:   "pick [items...]",
	Short: "Pick one item from a fuzzy-filtered list",
	Long: `Show a filterable list. Items come from the arguments or one per line on stdin.
Enter prints the highlighted item; Esc dismisses with exit status 1.`,
	Example: `  dlg pick red green blue
  git branch --format='%(refname:short)' | dlg pick --title "Checkout"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		items, err := readItems(args, os.Stdin)
		if err != nil {
			return err
		}

		return runSession(cmd, "pick", host.NewPicker(items), &pickFlags, cfg)
	},
}

// readItems picks the list: args first, then piped stdin. An interactive
// stdin is never read.
func readItems(args []string, stdin *os.File) ([]string, error) {
	items := args
	if len(items) == 0 && stdin != nil && !term.IsTerminal(int(stdin.Fd())) {
		var err error
		items, err = readLines(stdin)
		if err != nil {
			return nil, err
		}
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("nothing to pick: pass items or pipe them on stdin")
	}
	return items, nil
}

// readLines returns the non-blank lines of r.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read items: %w", err)
	}
	return lines, nil
}

func init() {
	addDialogFlags(pickCmd.Flags(), &pickFlags)
	rootCmd.AddCommand(pickCmd)
}
