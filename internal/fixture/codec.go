package fixture

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"cppfqn/internal/record"
)

// Format is the on-disk encoding of a fixture file.
type Format uint8

const (
	FormatJSON Format = iota
	FormatMsgpack
)

func (f Format) String() string {
	if f == FormatMsgpack {
		return "msgpack"
	}
	return "json"
}

// FormatForPath picks the encoding from the file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".msgpack", ".mp":
		return FormatMsgpack, nil
	}
	return FormatJSON, fmt.Errorf("%s: unsupported fixture extension (expected .json or .msgpack)", path)
}

// Decode reads a list of records.
func Decode(r io.Reader, format Format) ([]Record, error) {
	var raw []any
	switch format {
	case FormatMsgpack:
		if err := msgpack.NewDecoder(r).Decode(&raw); err != nil {
			return nil, fmt.Errorf("decode msgpack: %w", err)
		}
	default:
		if err := json.NewDecoder(r).Decode(&raw); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	}
	recs := make([]Record, 0, len(raw))
	for i, item := range raw {
		m, err := record.AsMap(item, entity)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		rec, err := FromMap(m)
		if err != nil {
			return nil, fmt.Errorf("record %d (%q): %w", i, m["fqn"], err)
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// Encode writes records. JSON output is indented like hand-written fixtures.
func Encode(w io.Writer, format Format, recs []Record) error {
	list := make([]record.Map, len(recs))
	for i, r := range recs {
		list[i] = r.ToMap()
	}
	if format == FormatMsgpack {
		enc := msgpack.NewEncoder(w)
		enc.SetSortMapKeys(true)
		return enc.Encode(list)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(list)
}

// Load reads a fixture file, choosing the codec by extension.
func Load(path string) ([]Record, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	// #nosec G304 -- path is provided by the caller
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	recs, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}

// Save writes a fixture file atomically: a temp file in the same directory
// is renamed over path.
func Save(path string, recs []Record) (err error) {
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(path), ".fixture-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			err = errors.Join(err, os.Remove(f.Name()))
		}
	}()
	if err = Encode(f, format, recs); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}
