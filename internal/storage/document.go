package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/halvar/daybook/internal/repository"
)

const documentVersion = 1

// document is the on-disk envelope for one collection: a versioned,
// human-readable JSON file holding the kind's records in insertion
// order. Documents are read in full at open and rewritten in full on
// every mutation.
type document[T any] struct {
	Version int `json:"version"`
	Records []T `json:"records"`
}

// readDocument loads a collection document. A missing file is an
// empty collection; a file that fails to parse surfaces
// repository.ErrCorrupt without initializing anything.
func readDocument[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}

	var doc document[T]
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w: %v", filepath.Base(path), repository.ErrCorrupt, err)
	}
	return doc.Records, nil
}

// writeDocument rewrites a collection document atomically: the new
// content goes to a temp file in the same directory, then replaces
// the document in one rename. A crash mid-write leaves the prior
// document untouched.
func writeDocument[T any](path string, records []T) error {
	doc := document[T]{Version: documentVersion, Records: records}
	if doc.Records == nil {
		doc.Records = []T{}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	data = append(data, '\n')

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(tmp), err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", filepath.Base(path), err)
	}
	return nil
}
