package utils

import (
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
)

func header(name string, size int64) *multipart.FileHeader {
	return &multipart.FileHeader{Filename: name, Size: size}
}

func TestValidateUploadAcceptsWhitelistedExtensions(t *testing.T) {
	for _, name := range []string{"scan.pdf", "xray.PNG", "photo.jpeg", "notes.docx"} {
		assert.NoError(t, ValidateUpload(header(name, 1024)), name)
	}
}

func TestValidateUploadRejectsOtherExtensions(t *testing.T) {
	for _, name := range []string{"run.exe", "script.sh", "archive.zip", "noextension"} {
		assert.ErrorIs(t, ValidateUpload(header(name, 1024)), ErrUploadBadFileType, name)
	}
}

func TestValidateUploadRejectsOversizedFiles(t *testing.T) {
	assert.ErrorIs(t, ValidateUpload(header("scan.pdf", MaxUploadSize+1)), ErrUploadTooLarge)
	assert.NoError(t, ValidateUpload(header("scan.pdf", MaxUploadSize)))
}
