package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "keymaze",
	Short: "Solve and generate key-and-door vault mazes",
	Long: `keymaze finds the fewest total moves a team of robots needs to collect
every key in a vault maze. Lowercase letters are keys, uppercase letters are
the doors they open, '@' marks a robot, '#' is a wall and '.' is open floor.`,
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
