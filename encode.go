package compound

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

// StorageVersion is the version of the storage wrapper written by EncodeStore.
const StorageVersion = 1

// This file persists a Store as a single JSON document:
//
//	{"version": 1, "data": {...store...}, "lastUpdated": 1700000000000}
//
// It is the format used by the application's local storage, so that a file
// can be swapped between the two.

type storageWrapper struct {
	Version     int       `json:"version"`
	Data        Store     `json:"data"`
	LastUpdated Timestamp `json:"lastUpdated"`
}

// EncodeStore writes s in its storage wrapper, stamped now.
func EncodeStore(w io.Writer, s Store, now time.Time) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(storageWrapper{Version: StorageVersion, Data: s, LastUpdated: TimestampOf(now)}); err != nil {
		return fmt.Errorf("persist error: cannot encode store: %w", err)
	}
	return nil
}

// DecodeStore reads a store from its storage wrapper.
//
// Data written by another version is used as is.
func DecodeStore(r io.Reader) (Store, error) {
	var wrapper storageWrapper
	if err := json.NewDecoder(r).Decode(&wrapper); err != nil {
		return Store{}, fmt.Errorf("load error: cannot decode store: %w", err)
	}
	if wrapper.Version != StorageVersion {
		log.Printf("storage-version-mismatch got=%d want=%d, using stored data as-is", wrapper.Version, StorageVersion)
	}
	return normalize(wrapper.Data), nil
}

// normalize replaces missing lists by empty ones.
func normalize(s Store) Store {
	if s.BudgetItems == nil {
		s.BudgetItems = []BudgetItem{}
	}
	if s.SavingsBuckets == nil {
		s.SavingsBuckets = []SavingsBucket{}
	}
	if s.Investments == nil {
		s.Investments = []Investment{}
	}
	if s.Mortgages == nil {
		s.Mortgages = []Mortgage{}
	}
	if s.Goals == nil {
		s.Goals = []Goal{}
	}
	return s
}

// DecodeStoreFile reads the store in filename.
// The error wraps fs.ErrNotExist if the file does not exist.
func DecodeStoreFile(filename string) (Store, error) {
	f, err := os.Open(filename)
	if err != nil {
		return Store{}, fmt.Errorf("load error: cannot open store file %q: %w", filename, err)
	}
	defer f.Close()
	s, err := DecodeStore(f)
	if err != nil {
		return Store{}, fmt.Errorf("%q: %w", filename, err)
	}
	return s, nil
}

// EncodeStoreFile writes s into filename, replacing it atomically.
func EncodeStoreFile(filename string, s Store, now time.Time) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return fmt.Errorf("persist error: cannot create folder for %q: %w", filename, err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(filename), ".store-*.json")
	if err != nil {
		return fmt.Errorf("persist error: cannot create file next to %q: %w", filename, err)
	}
	defer os.Remove(tmp.Name()) // no-op once renamed

	if err := EncodeStore(tmp, s, now); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("persist error: cannot write %q: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		return fmt.Errorf("persist error: cannot replace %q: %w", filename, err)
	}
	log.Printf("write-store-file name=%q", filename)
	return nil
}
