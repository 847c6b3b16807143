package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"linetrace/traceparse"
)

var (
	filterTags   []string
	filterInvert bool
)

func init() {
	filterCmd.Flags().StringSliceVar(&filterTags, "tags", nil, "keep only lines with these stream tags (e.g. E,L)")
	filterCmd.Flags().BoolVar(&filterInvert, "invert", false, "drop matching lines instead of keeping them")
}

var filterCmd = &cobra.Command{
	Use:   "filter [flags] [file...]",
	Short: "Filter trace logs by stream tag",
	Long:  `Filter reads trace-format logs and keeps only the lines whose stream tag matches; lines that are not trace lines are dropped`,
	RunE:  runFilter,
}

func runFilter(cmd *cobra.Command, args []string) error {
	keep := tagSet(filterTags)
	colored := configureColor(cmd, os.Stdout)
	out := cmd.OutOrStdout()

	return forEachInput(cmd, args, func(r io.Reader, name string) error {
		sc := newLineScanner(r)
		for sc.Scan() {
			rec, err := traceparse.ParseLine(sc.Text())
			if err != nil {
				continue
			}
			if !matchTag(keep, rec.Tag, filterInvert) {
				continue
			}
			fmt.Fprintln(out, renderLine(rec, colored))
		}
		if err := sc.Err(); err != nil {
			return fmt.Errorf("failed to read %s: %w", name, err)
		}
		return nil
	})
}

// tagSet flattens --tags values into a byte set; each value may itself
// hold several tag characters ("EL" and "E,L" both work).
func tagSet(values []string) map[byte]bool {
	set := make(map[byte]bool)
	for _, v := range values {
		for i := 0; i < len(v); i++ {
			set[v[i]] = true
		}
	}
	return set
}

// matchTag reports whether a line with the given tag passes the filter.
// An empty set matches every tag.
func matchTag(set map[byte]bool, tag byte, invert bool) bool {
	match := len(set) == 0 || set[tag]
	if invert && len(set) > 0 {
		return !match
	}
	return match
}

// renderLine re-emits a record, styling the fixed-width prefix so the
// free-form body stays byte-exact for downstream tools.
func renderLine(rec traceparse.Record, colored bool) string {
	line := rec.Format()
	if !colored {
		return line
	}
	return tagColor(rec.Tag).Sprint(line[:traceparse.PrefixLen]) + line[traceparse.PrefixLen:]
}

func tagColor(tag byte) *color.Color {
	switch tag {
	case 'E':
		return color.New(color.FgRed, color.Bold)
	case 'L':
		return color.New(color.FgCyan)
	case 'T':
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgGreen)
	}
}
