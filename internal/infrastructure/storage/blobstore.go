package storage

import (
	"context"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"complaintbox/internal/shared/config"
	"complaintbox/internal/shared/errors"
	"complaintbox/internal/shared/logger"
)

// BlobStore holds attachment blobs under opaque keys and maps each key
// to a public URL. Keys carry no complaint identity; the complaint row
// holds the only reference.
type BlobStore interface {
	Put(ctx context.Context, key string, r io.Reader) (publicURL string, err error)
	Delete(ctx context.Context, key string) error
	// KeyFromURL recovers the storage key from a public URL previously
	// returned by Put. Returns an empty string if the URL is not ours.
	KeyFromURL(publicURL string) string
}

// LocalBlobStore keeps blobs on the local filesystem and serves them
// through the static /uploads route.
type LocalBlobStore struct {
	uploadDir     string
	publicBaseURL string
	logger        logger.Interface
}

func NewLocalBlobStore(cfg *config.StorageConfig, log logger.Interface) (*LocalBlobStore, error) {
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return nil, errors.NewAttachmentError("failed to create upload directory", err.Error())
	}

	return &LocalBlobStore{
		uploadDir:     cfg.UploadDir,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		logger:        log,
	}, nil
}

func (s *LocalBlobStore) Put(_ context.Context, key string, r io.Reader) (string, error) {
	// Keys are generated server-side, but never trust them with path
	// separators anyway.
	name := filepath.Base(filepath.Clean(key))
	if name == "." || name == string(filepath.Separator) {
		return "", errors.NewAttachmentError("invalid attachment key", key)
	}

	dst := filepath.Join(s.uploadDir, name)
	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", errors.NewAttachmentError("failed to create attachment file", err.Error())
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(dst)
		return "", errors.NewAttachmentError("failed to write attachment", err.Error())
	}
	if err := f.Close(); err != nil {
		os.Remove(dst)
		return "", errors.NewAttachmentError("failed to finalize attachment", err.Error())
	}

	return s.publicBaseURL + "/" + name, nil
}

func (s *LocalBlobStore) Delete(_ context.Context, key string) error {
	name := filepath.Base(filepath.Clean(key))
	if name == "." || name == string(filepath.Separator) {
		return errors.NewAttachmentError("invalid attachment key", key)
	}

	if err := os.Remove(filepath.Join(s.uploadDir, name)); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.NewAttachmentError("failed to delete attachment", err.Error())
	}
	return nil
}

func (s *LocalBlobStore) KeyFromURL(publicURL string) string {
	if publicURL == "" {
		return ""
	}

	u, err := url.Parse(publicURL)
	if err != nil {
		return ""
	}

	base, err := url.Parse(s.publicBaseURL)
	if err != nil {
		return ""
	}
	if !strings.HasPrefix(u.Path, base.Path+"/") {
		return ""
	}

	return path.Base(u.Path)
}
