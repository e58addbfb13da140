package descriptor

import (
	"errors"
	"fmt"

	"github.com/minigame-tools/confpatch/internal/filesystem"
)

// Filename is the descriptor file name that marks a project root
const Filename = "project.config.json"

// Descriptor keys for the tracked fields
const (
	KeyAppID       = "appid"
	KeyProjectName = "projectname"
)

// ErrMalformed marks a descriptor that is not well-formed JSON. Callers
// match it with errors.Is.
var ErrMalformed = errors.New("malformed descriptor")

// Store reads and writes descriptor files through the filesystem
// abstraction
type Store struct {
	fs filesystem.FileSystem
}

// NewStore creates a new Store
func NewStore(fs filesystem.FileSystem) *Store {
	return &Store{fs: fs}
}

// Read loads and parses a descriptor file
func (s *Store) Read(path string) (*Document, error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read descriptor: %w", err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w at %s: %v", ErrMalformed, path, err)
	}

	return doc, nil
}

// Write serializes a document back to disk
func (s *Store) Write(path string, doc *Document) error {
	data, err := doc.Marshal()
	if err != nil {
		return fmt.Errorf("failed to serialize descriptor: %w", err)
	}

	if err := s.fs.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write descriptor: %w", err)
	}

	return nil
}
