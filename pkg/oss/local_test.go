package oss

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageUpload(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir, "/uploads/videos")
	require.NoError(t, err)

	payload := []byte("fake video bytes")
	url, err := store.UploadVideo(context.Background(), payload, "clip.mp4", "video/mp4")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/uploads/videos/"), "url: %s", url)
	assert.True(t, strings.HasSuffix(url, ".mp4"), "url: %s", url)

	name := strings.TrimPrefix(url, "/uploads/videos/")
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, payload, data)
}

func TestLocalStorageCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	_, err := NewLocalStorage(dir, "/uploads/videos")
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestObjectSuffix(t *testing.T) {
	assert.Equal(t, ".webm", objectSuffix("movie.webm", "video/mp4"))
	assert.Equal(t, ".webm", objectSuffix("", "video/webm"))
	assert.Equal(t, ".mp3", objectSuffix("", "audio/mpeg"))
	assert.Equal(t, ".mp4", objectSuffix("", "application/octet-stream"))
}
