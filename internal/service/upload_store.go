package service

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"content-analyzer/internal/domain"

	"github.com/google/uuid"
)

// TempUploadStore keeps uploads as files in a private directory until they are released.
type TempUploadStore struct {
	dir     string
	maxSize int64
	logger  domain.Logger
}

// NewTempUploadStore creates the upload directory if needed.
func NewTempUploadStore(dir string, maxSize int64, logger domain.Logger) (*TempUploadStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &TempUploadStore{
		dir:     dir,
		maxSize: maxSize,
		logger:  logger,
	}, nil
}

// Dir returns the directory holding transient uploads.
func (s *TempUploadStore) Dir() string {
	return s.dir
}

// Save streams src into a new file. Uploads over the size limit fail with
// domain.ErrFileTooLarge; the partial file is removed on every error.
func (s *TempUploadStore) Save(filename string, src io.Reader) (*domain.UploadedDocument, error) {
	name := sanitizeFilename(filename)
	ext := NormalizeExtension(name)

	f, err := os.CreateTemp(s.dir, uuid.NewString()+"-*"+ext)
	if err != nil {
		return nil, fmt.Errorf("create upload file: %w", err)
	}
	path := f.Name()

	written, copyErr := io.Copy(f, io.LimitReader(src, s.maxSize+1))
	closeErr := f.Close()

	switch {
	case copyErr != nil:
		err = fmt.Errorf("store upload: %w", copyErr)
	case written > s.maxSize:
		err = domain.ErrFileTooLarge
	case closeErr != nil:
		err = fmt.Errorf("store upload: %w", closeErr)
	}
	if err != nil {
		s.remove(path)
		return nil, err
	}

	s.logger.Debug("Upload stored", "filename", name, "size", written, "path", path)
	return &domain.UploadedDocument{
		Filename:  name,
		Size:      written,
		Extension: ext,
		Path:      path,
	}, nil
}

// Release deletes the stored file. It is safe to call more than once.
func (s *TempUploadStore) Release(doc *domain.UploadedDocument) {
	if doc == nil || doc.Path == "" {
		return
	}
	s.remove(doc.Path)
}

func (s *TempUploadStore) remove(path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		s.logger.Warn("Failed to remove transient upload", "path", path, "error", err)
	}
}

// sanitizeFilename strips any path components from a client-supplied name.
// The rest of the name, whitespace included, is kept as sent.
func sanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	base := filepath.Base(name)
	if base == "" || base == "." || base == "/" {
		return "upload"
	}
	return base
}
