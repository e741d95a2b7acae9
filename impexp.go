package compound

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

// this file contains functions to handle the import/export format.
// It is a backup format: a single human readable JSON document.

// ErrInvalidImport is returned when an import payload does not look like an export.
var ErrInvalidImport = errors.New("invalid import data")

type exportWrapper struct {
	ExportedAt string `json:"exportedAt"`
	Version    int    `json:"version"`
	Data       Store  `json:"data"`
}

// ExportData writes s to w in the import/export format.
//
// The format is a JSON object whose property 'exportedAt' is the RFC3339 time
// of the export, 'version' the storage version and 'data' the store.
func ExportData(w io.Writer, s Store, now time.Time) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	err := enc.Encode(exportWrapper{
		ExportedAt: now.UTC().Format(time.RFC3339Nano),
		Version:    StorageVersion,
		Data:       s,
	})
	if err != nil {
		return fmt.Errorf("cannot write export format: %w", err)
	}
	return nil
}

// ImportData reads a store in the import/export format from r.
//
// The payload is checked before anything is decoded: 'data' must be an
// object with a 'settings' property and a 'budgetItems' array. On error, no
// store is returned, so that the caller can keep its current data.
func ImportData(r io.Reader) (Store, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Store{}, fmt.Errorf("cannot read import data: %w", err)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Store{}, fmt.Errorf("%w: not a JSON document: %v", ErrInvalidImport, err)
	}
	if err := validateImport(doc); err != nil {
		return Store{}, err
	}

	var wrapper exportWrapper
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(&wrapper); err != nil {
		return Store{}, fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}
	return normalize(wrapper.Data), nil
}

// validateImport checks the structure of a decoded import document.
func validateImport(doc any) error {
	checks := []struct {
		path  string
		valid func(any) bool
		want  string
	}{
		{"$.data", isObject, "an object"},
		{"$.data.settings", isObject, "an object"},
		{"$.data.budgetItems", isArray, "an array"},
	}
	for _, c := range checks {
		v, err := jsonpath.Get(c.path, doc)
		if err != nil {
			return fmt.Errorf("%w: missing %s: %v", ErrInvalidImport, c.path, err)
		}
		if !c.valid(v) {
			return fmt.Errorf("%w: %s is not %s", ErrInvalidImport, c.path, c.want)
		}
	}
	return nil
}

func isObject(v any) bool {
	_, ok := v.(map[string]any)
	return ok
}

func isArray(v any) bool {
	_, ok := v.([]any)
	return ok
}
