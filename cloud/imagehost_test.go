package cloud

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bloomsnursery/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeFileHeader(t *testing.T, filename, contentType string, size int) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename="%s"`, filename))
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte{0xAB}, size))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["image"][0]
}

func TestValidateImage(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		contentType string
		size        int
		wantErr     string
	}{
		{"jpeg ok", "photo.jpg", "image/jpeg", 1024, ""},
		{"png ok", "photo.png", "image/png", 1024, ""},
		{"webp ok", "photo.webp", "image/webp", 1024, ""},
		{"uppercase ext ok", "PHOTO.JPG", "image/jpeg", 1024, ""},
		{"no content type ok", "photo.gif", "", 1024, ""},
		{"at size limit ok", "photo.jpg", "image/jpeg", MaxFileSize, ""},
		{"text file", "notes.txt", "text/plain", 10, "only JPEG"},
		{"svg", "logo.svg", "image/svg+xml", 10, "only JPEG"},
		{"ext ok but wrong mime", "photo.jpg", "application/pdf", 10, "only JPEG"},
		{"no extension", "photo", "image/jpeg", 10, "only JPEG"},
		{"over size limit", "photo.jpg", "image/jpeg", MaxFileSize + 1, "file too large"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateImage(makeFileHeader(t, tt.filename, tt.contentType, tt.size))
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, apperr.IsValidation(err))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDiskUpload(t *testing.T) {
	dir := t.TempDir()
	disk, err := NewDisk(dir, "/uploads/")
	require.NoError(t, err)

	file := makeFileHeader(t, "Rose.JPG", "image/jpeg", 256)
	res, err := disk.Upload(context.Background(), file, "plants")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(res.PublicID, "plants/"))
	assert.True(t, strings.HasSuffix(res.PublicID, ".jpg"))
	assert.Equal(t, "/uploads/"+res.PublicID, res.URL)

	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(res.PublicID)))
	require.NoError(t, err)
	assert.Len(t, data, 256)
}

func TestDiskUploadSanitizesFolder(t *testing.T) {
	dir := t.TempDir()
	disk, err := NewDisk(dir, "/uploads")
	require.NoError(t, err)

	file := makeFileHeader(t, "rose.jpg", "image/jpeg", 16)
	res, err := disk.Upload(context.Background(), file, "../../etc")
	require.NoError(t, err)

	// the stored path must stay inside the upload dir
	abs, err := filepath.Abs(filepath.Join(dir, filepath.FromSlash(res.PublicID)))
	require.NoError(t, err)
	absDir, err := filepath.Abs(dir)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(abs, absDir+string(filepath.Separator)))
}

func TestDiskDelete(t *testing.T) {
	dir := t.TempDir()
	disk, err := NewDisk(dir, "/uploads")
	require.NoError(t, err)

	file := makeFileHeader(t, "rose.jpg", "image/jpeg", 16)
	res, err := disk.Upload(context.Background(), file, "plants")
	require.NoError(t, err)

	ok, err := disk.Delete(context.Background(), res.PublicID)
	require.NoError(t, err)
	assert.True(t, ok)

	// already gone: not an error, just not found
	ok, err = disk.Delete(context.Background(), res.PublicID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDiskDeleteRejectsTraversal(t *testing.T) {
	dir := t.TempDir()
	disk, err := NewDisk(dir, "/uploads")
	require.NoError(t, err)

	for _, id := range []string{"../secret.jpg", "plants/../../secret.jpg", "/etc/passwd", ""} {
		_, err := disk.Delete(context.Background(), id)
		require.Error(t, err, "publicID %q", id)
		assert.True(t, apperr.IsValidation(err), "publicID %q", id)
	}
}
