package traceparse

import (
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// Schema version for the archive payload - increment when the Record
// wire shape changes.
const archiveSchemaVersion uint16 = 1

// archive is the on-disk payload: a schema version plus the records.
type archive struct {
	Schema  uint16   `msgpack:"schema"`
	Records []Record `msgpack:"records"`
}

// Encode writes the records to w as a compact msgpack archive.
func Encode(w io.Writer, records []Record) error {
	payload := archive{
		Schema:  archiveSchemaVersion,
		Records: records,
	}
	if err := msgpack.NewEncoder(w).Encode(payload); err != nil {
		return fmt.Errorf("failed to encode trace archive: %w", err)
	}
	return nil
}

// Decode reads a msgpack archive produced by Encode.
func Decode(r io.Reader) ([]Record, error) {
	var payload archive
	if err := msgpack.NewDecoder(r).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode trace archive: %w", err)
	}
	if payload.Schema != archiveSchemaVersion {
		return nil, fmt.Errorf("unsupported archive schema %d (expected %d)", payload.Schema, archiveSchemaVersion)
	}
	return payload.Records, nil
}
