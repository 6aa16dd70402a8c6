package repositories

import "io"

// ArtifactStore persists rendered documents and reads them back by location.
type ArtifactStore interface {
	// Save stores whatever write produces under fileName and returns the full location.
	Save(fileName string, write func(io.Writer) error) (string, error)

	// Read returns the stored bytes at a location previously returned by Save.
	Read(path string) ([]byte, error)
}
