package main

import (
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"linetrace/traceparse"
)

var statsCmd = &cobra.Command{
	Use:   "stats [file...]",
	Short: "Summarize trace logs per stream tag",
	Long:  `Stats tallies line counts and time spans per stream tag across one or more trace logs`,
	RunE:  runStats,
}

type tagStats struct {
	count int
	first time.Time
	last  time.Time
}

func runStats(cmd *cobra.Command, args []string) error {
	var mu sync.Mutex
	totals := make(map[byte]*tagStats)
	malformed := 0

	merge := func(partial map[byte]*tagStats, bad int) {
		mu.Lock()
		defer mu.Unlock()
		malformed += bad
		for tag, ts := range partial {
			total, ok := totals[tag]
			if !ok {
				totals[tag] = ts
				continue
			}
			total.count += ts.count
			if ts.first.Before(total.first) {
				total.first = ts.first
			}
			if ts.last.After(total.last) {
				total.last = ts.last
			}
		}
	}

	if len(args) == 0 {
		partial, bad, err := tally(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		merge(partial, bad)
	} else {
		g, _ := errgroup.WithContext(cmd.Context())
		for _, path := range args {
			path := path
			g.Go(func() error {
				return forEachInput(cmd, []string{path}, func(r io.Reader, name string) error {
					partial, bad, err := tally(r)
					if err != nil {
						return fmt.Errorf("failed to read %s: %w", name, err)
					}
					merge(partial, bad)
					return nil
				})
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
	}

	printStats(cmd.OutOrStdout(), totals, malformed)
	return nil
}

// tally counts lines per tag in one reader and tracks each tag's time
// span. Non-trace lines are counted as malformed, not failed on.
func tally(r io.Reader) (map[byte]*tagStats, int, error) {
	stats := make(map[byte]*tagStats)
	malformed := 0

	sc := newLineScanner(r)
	for sc.Scan() {
		rec, err := traceparse.ParseLine(sc.Text())
		if err != nil {
			malformed++
			continue
		}
		ts, ok := stats[rec.Tag]
		if !ok {
			stats[rec.Tag] = &tagStats{count: 1, first: rec.Time, last: rec.Time}
			continue
		}
		ts.count++
		if rec.Time.Before(ts.first) {
			ts.first = rec.Time
		}
		if rec.Time.After(ts.last) {
			ts.last = rec.Time
		}
	}
	return stats, malformed, sc.Err()
}

func printStats(out io.Writer, totals map[byte]*tagStats, malformed int) {
	tags := make([]byte, 0, len(totals))
	for tag := range totals {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })

	p := message.NewPrinter(language.English)
	for _, tag := range tags {
		ts := totals[tag]
		p.Fprintf(out, "%c  %12d lines  %s .. %s\n",
			tag, ts.count,
			ts.first.Format("060102,150405"),
			ts.last.Format("060102,150405"))
	}
	if malformed > 0 {
		p.Fprintf(out, "   %12d lines skipped (not trace format)\n", malformed)
	}
}
