package assets

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalPublishAndRemove(t *testing.T) {
	dir := t.TempDir()
	store := NewLocal(dir, "/images/")

	res, err := store.Publish(context.Background(), strings.NewReader("png-bytes"), PublishInput{
		Filename:    "B-Maxman.PNG",
		ContentType: "image/png",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(res.Key, ".png"), "key %q keeps a lowercased extension", res.Key)
	assert.Equal(t, "/images/"+res.Key, res.URL)

	data, err := os.ReadFile(filepath.Join(dir, res.Key))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	require.NoError(t, store.Remove(context.Background(), res.Key))
	_, err = os.Stat(filepath.Join(dir, res.Key))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalPublishStripsUnknownExtension(t *testing.T) {
	store := NewLocal(t.TempDir(), "/images")
	res, err := store.Publish(context.Background(), strings.NewReader("x"), PublishInput{
		Filename: "payload.exe",
	})
	require.NoError(t, err)
	assert.False(t, strings.Contains(res.Key, "."), "key %q must carry no extension", res.Key)
}

func TestLocalRemoveIgnoresPathTraversal(t *testing.T) {
	dir := t.TempDir()
	store := NewLocal(dir, "/images")

	res, err := store.Publish(context.Background(), strings.NewReader("x"), PublishInput{Filename: "a.png"})
	require.NoError(t, err)

	// A traversal attempt only ever touches the base name inside dir.
	err = store.Remove(context.Background(), "../../"+res.Key)
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, res.Key))
	assert.True(t, os.IsNotExist(err))
}

func TestFactoryDefaultsToLocal(t *testing.T) {
	store, err := New(context.Background(), Config{})
	require.NoError(t, err)
	local, ok := store.(*Local)
	require.True(t, ok)
	assert.Equal(t, "./static/images", local.BaseDir)
	assert.Equal(t, "/images", local.URLPrefix)
}

func TestFactoryRejectsIncompleteS3(t *testing.T) {
	_, err := New(context.Background(), Config{Driver: "s3"})
	assert.Error(t, err)

	_, err = New(context.Background(), Config{Driver: "gcs"})
	assert.Error(t, err)
}
