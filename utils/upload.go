package utils

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MaxUploadSize caps report uploads at 10 MB.
const MaxUploadSize = 10 << 20

var allowedUploadExtensions = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

var (
	ErrUploadTooLarge    = errors.New("file exceeds the 10MB upload limit")
	ErrUploadBadFileType = errors.New("only images and documents are allowed")
)

// ValidateUpload checks a multipart file header against the extension
// whitelist and size limit before anything touches disk.
func ValidateUpload(header *multipart.FileHeader) error {
	if header.Size > MaxUploadSize {
		return ErrUploadTooLarge
	}
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedUploadExtensions[ext] {
		return ErrUploadBadFileType
	}
	return nil
}

// SaveUpload stores the uploaded file under dir with a generated name and
// returns the stored path.
func SaveUpload(c *gin.Context, header *multipart.FileHeader, dir string) (string, error) {
	if err := ValidateUpload(header); err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	dst := filepath.Join(dir, uuid.NewString()+ext)
	if err := c.SaveUploadedFile(header, dst); err != nil {
		return "", fmt.Errorf("failed to store upload: %w", err)
	}
	return dst, nil
}
