package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"linetrace"
)

var demoConfigPath string

func init() {
	demoCmd.Flags().StringVar(&demoConfigPath, "config", "", "stream configuration file (TOML)")
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Emit sample trace statements through the library",
	Long:  `Demo exercises the predefined streams, sticky width directives and scope guards so the wire format can be piped into the other subcommands`,
	RunE:  runDemo,
}

func runDemo(cmd *cobra.Command, args []string) error {
	streams := []*linetrace.Stream{linetrace.Err(), linetrace.Out(), linetrace.Log(), linetrace.Tmp()}

	if demoConfigPath != "" {
		cfg, err := linetrace.LoadConfig(demoConfigPath)
		if err != nil {
			return err
		}
		if err := cfg.Apply(streams...); err != nil {
			return fmt.Errorf("failed to apply stream config: %w", err)
		}
	}

	linetrace.Log().Begin().V("demo started").End()
	linetrace.Out().Begin().V("pi is roughly ", 3.14159).End()

	// Sticky width: both columns below inherit width 8.
	linetrace.Out().Begin().Width(8).V("col", 42).End()
	linetrace.Out().Begin().V(7).End()
	linetrace.Out().SetWidth(0)

	g := linetrace.Disable(linetrace.Tmp())
	linetrace.Tmp().Begin().V("suppressed by guard").End()
	g.Release()
	linetrace.Tmp().Begin().V("scratch output, grep for the T tag").End()

	linetrace.Err().Begin().V("done=", true).End()

	for _, s := range streams {
		if err := s.Flush(); err != nil {
			return fmt.Errorf("failed to flush %c stream: %w", s.Tag(), err)
		}
	}
	return nil
}
