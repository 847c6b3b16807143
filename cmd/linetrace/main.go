package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"linetrace/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "linetrace",
	Short: "Toolkit for line-oriented trace logs",
	Long:  `linetrace filters, follows, tallies and archives logs in the linetrace wire format`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(filterCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(archiveCmd)
	rootCmd.AddCommand(followCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// configureColor resolves the --color flag against the output terminal
// and forces the color package on when explicitly requested.
func configureColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	use := colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
	if colorFlag == "on" {
		color.NoColor = false
	}
	return use
}
