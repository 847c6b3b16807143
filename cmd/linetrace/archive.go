package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"linetrace/traceparse"
)

var archiveDecode bool

func init() {
	archiveCmd.Flags().BoolVar(&archiveDecode, "decode", false, "decode a msgpack archive back to text")
}

var archiveCmd = &cobra.Command{
	Use:   "archive [flags] input output",
	Short: "Convert trace logs to and from compact msgpack archives",
	Args:  cobra.ExactArgs(2),
	RunE:  runArchive,
}

func runArchive(cmd *cobra.Command, args []string) error {
	in, err := openInput(cmd, args[0])
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := openOutput(cmd, args[1])
	if err != nil {
		return err
	}
	defer out.Close()

	if archiveDecode {
		return decodeArchive(in, out)
	}
	return encodeArchive(in, out)
}

func encodeArchive(in io.Reader, out io.Writer) error {
	var records []traceparse.Record
	lineNo := 0

	sc := newLineScanner(in)
	for sc.Scan() {
		lineNo++
		rec, err := traceparse.ParseLine(sc.Text())
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	return traceparse.Encode(out, records)
}

func decodeArchive(in io.Reader, out io.Writer) error {
	records, err := traceparse.Decode(in)
	if err != nil {
		return err
	}
	for _, rec := range records {
		if _, err := fmt.Fprintln(out, rec.Format()); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func openInput(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %q: %w", path, err)
	}
	return f, nil
}

func openOutput(cmd *cobra.Command, path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopWriteCloser{cmd.OutOrStdout()}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create %q: %w", path, err)
	}
	return f, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
