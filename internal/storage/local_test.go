package storage

import (
	"bytes"
	"context"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_PutStoresContentUnderDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewLocalStoreWithFs(fs)

	fh := uploadHeader(t, "logo.PNG", []byte("image-bytes"))

	stored, err := store.Put(context.Background(), "logos", fh)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stored, "logos/"))
	assert.True(t, strings.HasSuffix(stored, ".png"), "extension should be kept lowercase: %s", stored)

	content, err := afero.ReadFile(fs, stored)
	require.NoError(t, err)
	assert.Equal(t, []byte("image-bytes"), content)
}

func TestLocalStore_PutGeneratesUniqueNames(t *testing.T) {
	store := NewLocalStoreWithFs(afero.NewMemMapFs())

	fh := uploadHeader(t, "logo.png", []byte("a"))

	first, err := store.Put(context.Background(), "logos", fh)
	require.NoError(t, err)
	second, err := store.Put(context.Background(), "logos", fh)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestLocalStore_Exists(t *testing.T) {
	store := NewLocalStoreWithFs(afero.NewMemMapFs())

	fh := uploadHeader(t, "logo.png", []byte("a"))
	stored, err := store.Put(context.Background(), "logos", fh)
	require.NoError(t, err)

	ok, err := store.Exists(context.Background(), stored)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Exists(context.Background(), "logos/missing.png")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLocalStore_Delete(t *testing.T) {
	store := NewLocalStoreWithFs(afero.NewMemMapFs())

	fh := uploadHeader(t, "logo.png", []byte("a"))
	stored, err := store.Put(context.Background(), "logos", fh)
	require.NoError(t, err)

	require.NoError(t, store.Delete(context.Background(), stored))

	ok, err := store.Exists(context.Background(), stored)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLocalStore_DeleteMissingIsNoError(t *testing.T) {
	store := NewLocalStoreWithFs(afero.NewMemMapFs())

	assert.NoError(t, store.Delete(context.Background(), "logos/never-stored.png"))
}

func TestContentTypeFor(t *testing.T) {
	assert.Equal(t, "image/png", contentTypeFor("logos/a.png"))
	assert.Equal(t, "image/jpeg", contentTypeFor("logos/a.JPG"))
	assert.Equal(t, "image/jpeg", contentTypeFor("logos/a.jpeg"))
	assert.Equal(t, "application/octet-stream", contentTypeFor("logos/a.bin"))
}

func uploadHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("logo", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	reader := multipart.NewReader(&buf, writer.Boundary())
	form, err := reader.ReadForm(int64(len(content)) + 10240)
	require.NoError(t, err)

	files := form.File["logo"]
	require.Len(t, files, 1)
	return files[0]
}
