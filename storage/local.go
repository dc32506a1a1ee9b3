// Package storage is the blob store backing uploaded files. Blobs live
// on the local filesystem under a generated name; the database row for a
// file points at that name
package storage

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const nameCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

type Store struct {
	Root string
}

func New(root string) (*Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory, %w", err)
	}

	return &Store{Root: root}, nil
}

// Save writes src to a fresh blob and returns the generated name. The
// original name only contributes its extension
func (s *Store) Save(src io.Reader, originalName string) (string, error) {
	key, err := gonanoid.Generate(nameCharset, 21)
	if err != nil {
		return "", err
	}

	name := key + path.Ext(originalName)

	dst, err := os.Create(s.Path(name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", err
	}

	return name, nil
}

func (s *Store) Open(name string) (*os.File, error) {
	return os.Open(s.Path(name))
}

func (s *Store) Exists(name string) bool {
	_, err := os.Stat(s.Path(name))
	return err == nil
}

func (s *Store) Delete(name string) error {
	return os.Remove(s.Path(name))
}

// Path resolves a blob name inside the root. The name is flattened with
// Base so a crafted name can't escape the uploads directory
func (s *Store) Path(name string) string {
	return filepath.Join(s.Root, filepath.Base(name))
}
