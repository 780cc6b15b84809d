package storage

import (
	"context"
	"mime/multipart"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store persists uploaded files under a namespace directory and addresses
// them by the relative path it returned from Put.
type Store interface {
	// Put stores the uploaded file under dir with a generated name and
	// returns the relative path (e.g. "logos/3f2a….png").
	Put(ctx context.Context, dir string, file *multipart.FileHeader) (string, error)
	// Delete removes a stored file. Deleting a missing file is not an error.
	Delete(ctx context.Context, path string) error
	// Exists reports whether a stored file is present.
	Exists(ctx context.Context, path string) (bool, error)
}

// hashedName builds a collision-free stored path for an upload, keeping the
// original extension.
func hashedName(dir, original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	return path.Join(dir, uuid.New().String()+ext)
}

// contentTypeFor returns the MIME type for a stored path by extension
func contentTypeFor(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	default:
		return "application/octet-stream"
	}
}
