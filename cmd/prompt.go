package cmd

import (
	"github.com/spf13/cobra"

	"github.com/marcus/dlg/internal/host"
)

var (
	promptFlags       dialogFlags
	promptPlaceholder string
)

var promptCmd = &cobra.Command{
	Use:     "prompt <question>",
	Short:   "Ask for a line of text",
	Example: `  name=$(dlg prompt "Branch name" --placeholder feature/...)`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return runSession(cmd, "prompt", host.NewPrompt(args[0], promptPlaceholder), &promptFlags, cfg)
	},
}

func init() {
	addDialogFlags(promptCmd.Flags(), &promptFlags)
	promptCmd.Flags().StringVar(&promptPlaceholder, "placeholder", "", "placeholder text")
	rootCmd.AddCommand(promptCmd)
}
