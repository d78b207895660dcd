package storage

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File["image"][0]
}

func TestDiskImageStore_Store(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "images")
	store, err := NewDiskImageStore(dir, 1<<20)
	require.NoError(t, err)

	name, err := store.Store(context.Background(), fileHeader(t, "pretzel stand (1).jpg", []byte("jpeg")))
	require.NoError(t, err)
	assert.Equal(t, "pretzel stand (1).jpg", name)

	written, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg"), written)
}

func TestDiskImageStore_ReplacesSameName(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskImageStore(dir, 0)
	require.NoError(t, err)

	_, err = store.Store(context.Background(), fileHeader(t, "tent.png", []byte("old")))
	require.NoError(t, err)
	_, err = store.Store(context.Background(), fileHeader(t, "tent.png", []byte("new")))
	require.NoError(t, err)

	written, err := os.ReadFile(filepath.Join(dir, "tent.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), written)
}

func TestDiskImageStore_TooLarge(t *testing.T) {
	store, err := NewDiskImageStore(t.TempDir(), 3)
	require.NoError(t, err)

	_, err = store.Store(context.Background(), fileHeader(t, "big.jpg", []byte("too many bytes")))
	assert.ErrorIs(t, err, ErrImageTooLarge)
}

func TestDiskImageStore_CanceledContext(t *testing.T) {
	store, err := NewDiskImageStore(t.TempDir(), 0)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = store.Store(ctx, fileHeader(t, "late.jpg", []byte("jpeg")))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestImageName(t *testing.T) {
	tests := []struct {
		filename string
		want     string
		wantErr  bool
	}{
		{filename: "fireworks.jpeg", want: "fireworks.jpeg"},
		{filename: "uploads/fireworks.jpeg", want: "fireworks.jpeg"},
		{filename: `C:\Users\jo\fireworks.jpeg`, want: "fireworks.jpeg"},
		{filename: "../../etc/passwd", want: "passwd"},
		{filename: ".htaccess", wantErr: true},
		{filename: "a..b.jpg", wantErr: true},
		{filename: "..", wantErr: true},
		{filename: "bad|name.jpg", wantErr: true},
		{filename: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			got, err := imageName(tt.filename)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidImageName)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDiskImageStore_Remove(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskImageStore(dir, 0)
	require.NoError(t, err)

	name, err := store.Store(context.Background(), fileHeader(t, "lantern.jpg", []byte("jpeg")))
	require.NoError(t, err)
	require.FileExists(t, filepath.Join(dir, name))

	require.NoError(t, store.Remove(context.Background(), name))
	assert.NoFileExists(t, filepath.Join(dir, name))

	// already gone
	assert.NoError(t, store.Remove(context.Background(), name))

	assert.ErrorIs(t, store.Remove(context.Background(), ".env"), ErrInvalidImageName)
}
