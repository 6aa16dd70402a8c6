// Package storage keeps rendered artifacts on an afero filesystem.
package storage

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// ErrArtifactNotFound is returned when a recorded artifact location no longer holds a file.
var ErrArtifactNotFound = errors.New("artifact not found")

// ArtifactStore writes and reads artifacts below a root directory.
type ArtifactStore struct {
	fs   afero.Fs
	root string
}

// NewArtifactStore returns a store rooted at root on fs.
func NewArtifactStore(fs afero.Fs, root string) *ArtifactStore {
	return &ArtifactStore{fs: fs, root: root}
}

// NewOSArtifactStore returns a store on the host filesystem.
func NewOSArtifactStore(root string) *ArtifactStore {
	return NewArtifactStore(afero.NewOsFs(), root)
}

// EnsureRoot creates the root directory if needed.
func (s *ArtifactStore) EnsureRoot() error {
	if err := s.fs.MkdirAll(s.root, 0o755); err != nil {
		return fmt.Errorf("storage: create root %s: %w", s.root, err)
	}
	return nil
}

// Save writes the content produced by write to root/fileName and returns the full path.
func (s *ArtifactStore) Save(fileName string, write func(io.Writer) error) (string, error) {
	if err := s.EnsureRoot(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		return "", err
	}

	path := filepath.Join(s.root, fileName)
	if err := afero.WriteFile(s.fs, path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("storage: write %s: %w", path, err)
	}
	return path, nil
}

// Read returns the bytes stored at path. A missing file yields ErrArtifactNotFound.
func (s *ArtifactStore) Read(path string) ([]byte, error) {
	content, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrArtifactNotFound, path)
		}
		return nil, fmt.Errorf("storage: read %s: %w", path, err)
	}
	return content, nil
}

func (s *ArtifactStore) Exists(path string) (bool, error) {
	return afero.Exists(s.fs, path)
}
