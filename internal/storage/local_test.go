package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLocalStorage(t *testing.T) *LocalStorage {
	t.Helper()
	st, err := NewLocalStorage(Config{
		BasePath: t.TempDir(),
		BaseURL:  "/api/v1/files",
	})
	require.NoError(t, err)
	return st
}

func TestLocalStorageRoundtrip(t *testing.T) {
	st := newTestLocalStorage(t)
	ctx := context.Background()

	err := st.Save(ctx, "a1b2/photo.jpg", strings.NewReader("jpeg bytes"), "image/jpeg")
	require.NoError(t, err)

	exists, err := st.Exists(ctx, "a1b2/photo.jpg")
	require.NoError(t, err)
	assert.True(t, exists)

	size, err := st.GetSize(ctx, "a1b2/photo.jpg")
	require.NoError(t, err)
	assert.Equal(t, int64(len("jpeg bytes")), size)

	reader, err := st.Get(ctx, "a1b2/photo.jpg")
	require.NoError(t, err)
	defer reader.Close()
	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "jpeg bytes", string(data))

	url, err := st.GetURL(ctx, "a1b2/photo.jpg")
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/files/a1b2/photo.jpg", url)
}

func TestLocalStorageDelete(t *testing.T) {
	st := newTestLocalStorage(t)
	ctx := context.Background()

	require.NoError(t, st.Save(ctx, "gone.png", strings.NewReader("x"), "image/png"))
	require.NoError(t, st.Delete(ctx, "gone.png"))

	exists, err := st.Exists(ctx, "gone.png")
	require.NoError(t, err)
	assert.False(t, exists)

	// Deleting a missing file is not an error.
	assert.NoError(t, st.Delete(ctx, "gone.png"))
}

func TestLocalStorageGetMissing(t *testing.T) {
	st := newTestLocalStorage(t)

	_, err := st.Get(context.Background(), "never-saved.png")
	assert.Error(t, err)
}

func TestNewStorageUnknownType(t *testing.T) {
	_, err := NewStorage(Config{Type: "ftp"})
	assert.Error(t, err)
}
