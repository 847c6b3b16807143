package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// forEachInput runs fn over every named file, or over stdin when no
// files are given. "-" names stdin explicitly.
func forEachInput(cmd *cobra.Command, args []string, fn func(r io.Reader, name string) error) error {
	if len(args) == 0 {
		return fn(cmd.InOrStdin(), "stdin")
	}
	for _, path := range args {
		if path == "-" {
			if err := fn(cmd.InOrStdin(), "stdin"); err != nil {
				return err
			}
			continue
		}
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open %q: %w", path, err)
		}
		err = fn(f, path)
		f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

// newLineScanner builds a scanner sized for long trace bodies.
func newLineScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return sc
}
