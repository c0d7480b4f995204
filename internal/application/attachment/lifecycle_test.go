package attachment

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"complaintbox/internal/infrastructure/storage"
	"complaintbox/internal/shared/config"
	"complaintbox/internal/shared/constants"
	"complaintbox/internal/shared/errors"
	"complaintbox/internal/shared/logger"
)

func newTestLifecycle(t *testing.T) (*Lifecycle, string) {
	t.Helper()
	dir := t.TempDir()
	blobs, err := storage.NewLocalBlobStore(&config.StorageConfig{
		UploadDir:     dir,
		PublicBaseURL: "http://localhost:8080/uploads",
	}, logger.NewLogger())
	require.NoError(t, err)
	return NewLifecycle(blobs, logger.NewLogger()), dir
}

func TestAttach_StoresBlobWithRandomKey(t *testing.T) {
	lc, dir := newTestLifecycle(t)

	url, err := lc.Attach(context.Background(), "evidence.png", 4, strings.NewReader("data"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "http://localhost:8080/uploads/"))
	assert.True(t, strings.HasSuffix(url, ".png"), "key keeps the original extension")
	assert.NotContains(t, url, "evidence", "key must not leak the original filename")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	content, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Equal(t, "data", string(content))
}

func TestAttach_DistinctKeysForSameFilename(t *testing.T) {
	lc, _ := newTestLifecycle(t)

	first, err := lc.Attach(context.Background(), "same.png", 1, strings.NewReader("a"))
	require.NoError(t, err)
	second, err := lc.Attach(context.Background(), "same.png", 1, strings.NewReader("b"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestAttach_RejectsOversizeLocally(t *testing.T) {
	lc, dir := newTestLifecycle(t)

	_, err := lc.Attach(context.Background(), "big.bin", constants.MaxAttachmentSize+1, strings.NewReader(""))
	require.Error(t, err)
	assert.True(t, errors.IsTooLargeError(err))

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries, "rejected upload must not reach the blob store")
}

func TestDetach_RemovesBlob(t *testing.T) {
	lc, dir := newTestLifecycle(t)

	url, err := lc.Attach(context.Background(), "evidence.png", 4, strings.NewReader("data"))
	require.NoError(t, err)

	lc.Detach(context.Background(), &url)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDetach_NilAndForeignURLsAreNoOps(t *testing.T) {
	lc, _ := newTestLifecycle(t)

	lc.Detach(context.Background(), nil)

	empty := ""
	lc.Detach(context.Background(), &empty)

	foreign := "http://elsewhere.example.com/other/path.png"
	lc.Detach(context.Background(), &foreign)
}

func TestDetach_MissingBlobIsSilent(t *testing.T) {
	lc, _ := newTestLifecycle(t)

	url := "http://localhost:8080/uploads/never-existed.png"
	lc.Detach(context.Background(), &url)
}
