// Package storage implements flat-file JSON persistence for the data
// pipeline. Each document is a single JSON file in the data directory,
// rewritten in full on every write.
package storage

import (
	"encoding/json"
	"os"
	"path/filepath"

	"codeberg.org/mvbarbosa/robodata/internal/errors"
	"codeberg.org/mvbarbosa/robodata/internal/logger"
)

const (
	defaultDirPerm  = 0o755
	defaultFilePerm = 0o644
)

type fileStore struct {
	dir string
}

// NewFileStore opens a document store rooted at dir, creating the
// directory if needed.
func NewFileStore(dir string) (DocumentStore, error) {
	errFactory := errors.New()

	if dir == "" {
		return nil, errFactory.New(ErrInvalidDataDir)
	}

	logger.Debug().Msgf("Initializing document store at: %s", dir)

	if err := os.MkdirAll(dir, defaultDirPerm); err != nil {
		return nil, errFactory.Wrap(ErrStorageInit, err)
	}

	return &fileStore{dir: dir}, nil
}

func (s *fileStore) Read(name string, v any) error {
	errFactory := errors.New()

	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return errFactory.Wrap(ErrDocumentNotFound, err)
		}
		return errFactory.Wrap(ErrStorageAccess, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return errFactory.Wrap(ErrDocumentDecode, err)
	}

	return nil
}

func (s *fileStore) Write(name string, v any) error {
	errFactory := errors.New()

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errFactory.Wrap(ErrDocumentEncode, err)
	}

	if err := os.WriteFile(filepath.Join(s.dir, name), data, defaultFilePerm); err != nil {
		return errFactory.Wrap(ErrStorageAccess, err)
	}

	return nil
}

// IsNotFound reports whether err marks a missing document.
func IsNotFound(err error) bool {
	return errors.CodeOf(err) == ErrDocumentNotFound
}
