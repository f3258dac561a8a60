package uploads

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Store keeps uploaded cover images on the local filesystem. Files are
// stored under a random name with the client's extension preserved, and
// the returned path (relative, including the directory) is what gets
// persisted on the post record and served statically.
type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}

	return &Store{
		dir: dir,
	}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) Save(src io.Reader, originalName string) (string, error) {
	name := uuid.NewString()
	if ext := filepath.Ext(originalName); ext != "" {
		name += ext
	}

	path := filepath.Join(s.dir, name)
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}

	return path, nil
}
