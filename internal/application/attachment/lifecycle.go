package attachment

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/google/uuid"

	"complaintbox/internal/infrastructure/storage"
	"complaintbox/internal/shared/constants"
	"complaintbox/internal/shared/errors"
	"complaintbox/internal/shared/logger"
)

// Lifecycle manages attachment blobs around the complaint records that
// reference them. Attach runs before record creation; Detach runs before
// record deletion and is best-effort.
type Lifecycle struct {
	blobs  storage.BlobStore
	logger logger.Interface
}

func NewLifecycle(blobs storage.BlobStore, log logger.Interface) *Lifecycle {
	return &Lifecycle{
		blobs:  blobs,
		logger: log,
	}
}

// Attach validates and uploads a submitted file, returning the public
// URL to store on the complaint record. The size check happens locally,
// before any byte reaches the blob store. The storage key is a random
// identifier carrying only the original file extension.
func (l *Lifecycle) Attach(ctx context.Context, filename string, size int64, r io.Reader) (string, error) {
	if size > constants.MaxAttachmentSize {
		return "", errors.NewTooLargeError(
			fmt.Sprintf("File size exceeds the %dMB limit", constants.MaxAttachmentSize/(1<<20)))
	}

	key := uuid.NewString() + filepath.Ext(filename)

	url, err := l.blobs.Put(ctx, key, io.LimitReader(r, constants.MaxAttachmentSize))
	if err != nil {
		l.logger.Errorw("attachment upload failed",
			"key", key,
			"error", err,
		)
		return "", err
	}

	l.logger.Infow("attachment stored",
		"key", key,
		"size", size,
	)
	return url, nil
}

// Detach removes the blob referenced by a complaint's attachment URL.
// Failures are logged and swallowed: a stranded blob is preferable to a
// complaint record that cannot be deleted.
func (l *Lifecycle) Detach(ctx context.Context, attachmentURL *string) {
	if attachmentURL == nil || *attachmentURL == "" {
		return
	}

	key := l.blobs.KeyFromURL(*attachmentURL)
	if key == "" {
		l.logger.Warnw("attachment URL does not map to a storage key",
			"url", *attachmentURL,
		)
		return
	}

	if err := l.blobs.Delete(ctx, key); err != nil {
		l.logger.Warnw("failed to delete attachment blob",
			"key", key,
			"error", err,
		)
		return
	}

	l.logger.Infow("attachment deleted", "key", key)
}
