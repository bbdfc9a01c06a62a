// Package storage keeps uploaded files on local disk under generated names.
package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var ErrOutsideRoot = errors.New("path is outside the storage root")

var extPattern = regexp.MustCompile(`^\.[a-z0-9]{1,8}$`)

type File struct {
	Name string
	Path string
	Size int64
}

type LocalStore struct {
	root string
}

func NewLocalStore(root string) (*LocalStore, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve uploads directory: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads directory: %w", err)
	}
	return &LocalStore{root: abs}, nil
}

func (s *LocalStore) Root() string { return s.root }

// Save writes r under a fresh uuid name keeping the original extension.
func (s *LocalStore) Save(originalName string, r io.Reader) (File, error) {
	name := uuid.NewString() + safeExt(originalName)
	path := filepath.Join(s.root, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return File{}, fmt.Errorf("create %s: %w", name, err)
	}

	size, err := io.Copy(f, r)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return File{}, fmt.Errorf("write %s: %w", name, err)
	}

	return File{Name: name, Path: path, Size: size}, nil
}

func (s *LocalStore) Open(path string) (io.ReadCloser, error) {
	if err := s.contains(path); err != nil {
		return nil, err
	}
	return os.Open(path)
}

// Remove deletes a stored file. A file that is already gone is not an error.
func (s *LocalStore) Remove(path string) error {
	if err := s.contains(path); err != nil {
		return err
	}
	err := os.Remove(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func (s *LocalStore) contains(path string) error {
	rel, err := filepath.Rel(s.root, filepath.Clean(path))
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return ErrOutsideRoot
	}
	return nil
}

func safeExt(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if extPattern.MatchString(ext) {
		return ext
	}
	return ""
}
