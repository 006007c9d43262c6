package storage

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadFixture(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("profilePic", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	return req.MultipartForm.File["profilePic"][0]
}

func TestSaveWritesUnderUploadDir(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileStore(dir)
	require.NoError(t, err)

	ref, err := fs.Save(uploadFixture(t, "avatar.png", "png-bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(ref, dir+string(os.PathSeparator)))
	assert.True(t, strings.HasSuffix(ref, "-avatar.png"))

	data, err := os.ReadFile(ref)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}

func TestSaveSanitizesFilename(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	ref, err := fs.Save(uploadFixture(t, "my holiday photo.jpg", "x"))
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(ref, "-my_holiday_photo.jpg"))
	assert.NotContains(t, filepath.Base(ref), " ")
}

func TestSaveDistinctNamesForSameFilename(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		ref, err := fs.Save(uploadFixture(t, "same.png", "x"))
		require.NoError(t, err)
		assert.False(t, seen[ref], "duplicate stored name %s", ref)
		seen[ref] = true
	}
}

func TestRemove(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	ref, err := fs.Save(uploadFixture(t, "gone.png", "x"))
	require.NoError(t, err)

	require.NoError(t, fs.Remove(ref))
	_, statErr := os.Stat(ref)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRemoveEmptyRefIsNoop(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	assert.NoError(t, fs.Remove(""))
}

func TestNewFileStoreCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	_, err := NewFileStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
