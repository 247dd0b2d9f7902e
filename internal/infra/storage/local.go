package storage

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"webmall/internal/pkg/config"
	"webmall/internal/pkg/errs"
)

var (
	ErrUnsupportedImageType = errs.New("unsupported image type")
	ErrImageTooLarge        = errs.New("image exceeds size limit")
)

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

// LocalStore writes uploaded images to disk under a flat directory and hands
// back the public URL they will be served from.
type LocalStore struct {
	dir      string
	baseURL  string
	maxBytes int64
}

func NewLocalStore(cfg config.UploadConfig) (*LocalStore, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, errs.Wrap(err, "failed to create upload directory")
	}
	return &LocalStore{
		dir:      cfg.Dir,
		baseURL:  strings.TrimSuffix(cfg.BaseURL, "/"),
		maxBytes: cfg.MaxBytes,
	}, nil
}

// SaveImage stores the file under a random name, keeping only the extension
// from the client. Returns the URL path to persist on the record.
func (s *LocalStore) SaveImage(file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return "", ErrUnsupportedImageType
	}
	if file.Size > s.maxBytes {
		return "", ErrImageTooLarge
	}

	src, err := file.Open()
	if err != nil {
		return "", errs.Wrap(err, "failed to open uploaded file")
	}
	defer src.Close()

	name := uuid.New().String() + ext
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", errs.Wrap(err, "failed to create image file")
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", errs.Wrap(err, "failed to write image file")
	}
	return s.baseURL + "/" + name, nil
}
