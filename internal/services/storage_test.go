package services

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartFileHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("resume", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File["resume"][0]
}

func TestSaveResumeStoresPDF(t *testing.T) {
	dir := t.TempDir()
	storage := NewStorageService(dir)
	require.NoError(t, storage.EnsureUploadDir())

	header := multipartFileHeader(t, "cv.pdf", "%PDF-1.4 fake content")

	path, err := storage.SaveResume(header, "user-1")
	require.NoError(t, err)

	assert.Equal(t, dir, filepath.Dir(path))
	assert.True(t, strings.HasPrefix(filepath.Base(path), "resume_user-1_"))
	assert.True(t, strings.HasSuffix(path, ".pdf"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 fake content", string(data))
}

func TestSaveResumeRejectsNonPDF(t *testing.T) {
	storage := NewStorageService(t.TempDir())

	for _, filename := range []string{"cv.docx", "cv.txt", "cv"} {
		header := multipartFileHeader(t, filename, "content")
		_, err := storage.SaveResume(header, "user-1")
		assert.Error(t, err, filename)
	}
}

func TestDeleteFile(t *testing.T) {
	dir := t.TempDir()
	storage := NewStorageService(dir)

	path := filepath.Join(dir, "stale.pdf")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	require.NoError(t, storage.DeleteFile(path))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestCleanResumeText(t *testing.T) {
	in := "  Senior\tEngineer\n\nwith   10  years\r\nexperience "
	assert.Equal(t, "Senior Engineer with 10 years experience", CleanResumeText(in))
}
