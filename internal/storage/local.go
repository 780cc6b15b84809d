package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"

	"github.com/spf13/afero"
)

// LocalStore keeps files on a local filesystem rooted at a public storage
// directory. The afero abstraction lets tests run on an in-memory Fs.
type LocalStore struct {
	fs afero.Fs
}

// NewLocalStore creates a LocalStore rooted at the given directory
func NewLocalStore(root string) *LocalStore {
	return &LocalStore{
		fs: afero.NewBasePathFs(afero.NewOsFs(), root),
	}
}

// NewLocalStoreWithFs creates a LocalStore on an explicit filesystem
func NewLocalStoreWithFs(fs afero.Fs) *LocalStore {
	return &LocalStore{fs: fs}
}

// Put stores the uploaded file under dir and returns its relative path
func (s *LocalStore) Put(ctx context.Context, dir string, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := hashedName(dir, file.Filename)

	if err := s.fs.MkdirAll(path.Dir(name), 0o755); err != nil {
		return "", fmt.Errorf("create storage dir: %w", err)
	}

	dst, err := s.fs.Create(name)
	if err != nil {
		return "", fmt.Errorf("create stored file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write stored file: %w", err)
	}

	return name, nil
}

// Delete removes a stored file; a missing file is not an error
func (s *LocalStore) Delete(ctx context.Context, path string) error {
	if err := s.fs.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete stored file: %w", err)
	}
	return nil
}

// Exists reports whether a stored file is present
func (s *LocalStore) Exists(ctx context.Context, path string) (bool, error) {
	return afero.Exists(s.fs, path)
}
