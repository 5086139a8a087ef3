package storage

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"barterhub/pkg/errors"
	"barterhub/pkg/logger"
)

// LocalStorageClient stores uploaded files on the local filesystem under a
// single base directory. Stored names are uuids so originals cannot
// collide or traverse paths.
type LocalStorageClient struct {
	baseDir string
}

func NewLocalStorageClient(baseDir string) (*LocalStorageClient, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, errors.Internal("Failed to create upload directory", err)
	}
	return &LocalStorageClient{baseDir: baseDir}, nil
}

// Save writes the content to disk and returns the stored relative path.
func (c *LocalStorageClient) Save(content io.Reader, originalName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	name := uuid.New().String() + ext
	fullPath := filepath.Join(c.baseDir, name)

	out, err := os.Create(fullPath)
	if err != nil {
		return "", errors.Internal("Failed to store file", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, content); err != nil {
		os.Remove(fullPath)
		return "", errors.Internal("Failed to store file", err)
	}

	logger.Debug("Stored upload %s as %s", originalName, name)
	return name, nil
}

// Delete removes a stored file. A missing file is not an error; the row
// referencing it may outlive the bytes.
func (c *LocalStorageClient) Delete(storedName string) error {
	fullPath := filepath.Join(c.baseDir, filepath.Base(storedName))
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return errors.Internal("Failed to delete file", err)
	}
	return nil
}

// BaseDir exposes the directory for static file serving.
func (c *LocalStorageClient) BaseDir() string {
	return c.baseDir
}
