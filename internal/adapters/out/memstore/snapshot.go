package memstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"procurement/internal/adapters/out/document"
)

// SnapshotStore persists the full order collection as a sequence of documents.
// The snapshot is private state: nothing outside this service is expected to
// read it, it is only round-tripped across restarts.
type SnapshotStore interface {
	// Load reads the last written snapshot. A store that has never been
	// written to returns an empty snapshot, not an error.
	Load() ([]document.Document, error)

	// Save replaces the snapshot with the given documents.
	Save(docs []document.Document) error
}

// FileSnapshotStore keeps the snapshot in a single JSON file, replaced
// atomically on every save via a temp-file rename.
type FileSnapshotStore struct {
	path string
}

// NewFileSnapshotStore creates a snapshot store writing to the given path.
// Parent directories are created on first save.
func NewFileSnapshotStore(path string) *FileSnapshotStore {
	return &FileSnapshotStore{path: path}
}

// Load reads the snapshot file. A missing file yields an empty snapshot.
func (s *FileSnapshotStore) Load() ([]document.Document, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot %s: %w", s.path, err)
	}

	var docs []document.Document
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", s.path, err)
	}
	return docs, nil
}

// Save writes the documents to a temp file and renames it over the snapshot,
// so readers never observe a partially written file.
func (s *FileSnapshotStore) Save(docs []document.Document) error {
	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create snapshot directory: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace snapshot %s: %w", s.path, err)
	}
	return nil
}
