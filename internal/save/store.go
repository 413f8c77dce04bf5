package save

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/osse101/PixelFarm_Go/internal/domain"
)

// Store keeps encoded snapshots in named slots
type Store interface {
	Put(ctx context.Context, slot string, data []byte) error
	// Get returns domain.ErrSaveNotFound when the slot is empty
	Get(ctx context.Context, slot string) ([]byte, error)
}

// Summary describes one stored slot without decoding it
type Summary struct {
	Slot      string    `json:"slot"`
	Level     int       `json:"level"`
	Money     int       `json:"money"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Lister is implemented by backends that can enumerate their slots
type Lister interface {
	List(ctx context.Context) ([]Summary, error)
}

var slotPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// ValidateSlot rejects slot names that are not safe as file names or keys
func ValidateSlot(slot string) error {
	if !slotPattern.MatchString(slot) {
		return fmt.Errorf("%w: invalid save slot %q", domain.ErrValidation, slot)
	}
	return nil
}

// FileStore writes each slot to <dir>/<slot>.json
type FileStore struct {
	dir string
}

// NewFileStore creates a file store rooted at dir, creating it if needed
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create save directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(slot string) string {
	return filepath.Join(s.dir, slot+".json")
}

// Put writes the slot atomically through a temp file
func (s *FileStore) Put(_ context.Context, slot string, data []byte) error {
	if err := ValidateSlot(slot); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(s.dir, slot+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp save: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write save: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close save: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path(slot)); err != nil {
		return fmt.Errorf("failed to replace save: %w", err)
	}
	return nil
}

// Get reads the slot
func (s *FileStore) Get(_ context.Context, slot string) ([]byte, error) {
	if err := ValidateSlot(slot); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path(slot))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", domain.ErrSaveNotFound, slot)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read save: %w", err)
	}
	return data, nil
}
