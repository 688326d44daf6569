package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/scolaris/scolaris/internal/pkg/logger"
)

// FileStorage saves uploaded files and yields a URL to reach them later
type FileStorage interface {
	SaveFile(fileHeader *multipart.FileHeader, subPath string) (string, error)
	DeleteFile(fileURL string) error
}

// LocalStorage stores uploaded files on the local filesystem under basePath
// and serves them via the static /uploads route.
type LocalStorage struct {
	basePath string
	baseURL  string
}

// NewLocalStorage creates a LocalStorage rooted at basePath. baseURL is
// prepended to returned file paths so clients get a resolvable link.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")
	return &LocalStorage{basePath: basePath, baseURL: baseURL}, nil
}

// SaveFile writes the uploaded file under subPath with a generated unique
// name and returns the URL to reach it.
func (ls *LocalStorage) SaveFile(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	if fileHeader == nil {
		return "", nil
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dir := ls.basePath
	if subPath != "" {
		dir = filepath.Join(ls.basePath, subPath)
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return "", fmt.Errorf("failed to create subdirectory: %w", err)
		}
	}

	ext := filepath.Ext(fileHeader.Filename)
	name := uuid.New().String() + ext
	dstPath := filepath.Join(dir, name)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write uploaded file: %w", err)
	}

	rel := name
	if subPath != "" {
		rel = subPath + "/" + name
	}
	logger.Debug().Str("file", rel).Int64("size", fileHeader.Size).Msg("File stored")
	return ls.baseURL + "/" + rel, nil
}

// DeleteFile removes a previously stored file given its URL. Unknown URLs
// are ignored.
func (ls *LocalStorage) DeleteFile(fileURL string) error {
	if fileURL == "" || !strings.HasPrefix(fileURL, ls.baseURL+"/") {
		return nil
	}
	rel := strings.TrimPrefix(fileURL, ls.baseURL+"/")
	full := filepath.Join(ls.basePath, filepath.FromSlash(rel))
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete stored file: %w", err)
	}
	return nil
}
