package helpers

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// UploadFileName builds the stored name for an uploaded file: a millisecond
// timestamp plus the lowercased original extension (".jpg" when absent).
func UploadFileName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	if ext == "" {
		ext = ".jpg"
	}
	return fmt.Sprintf("%d%s", time.Now().UnixMilli(), ext)
}

// BaseNameWithoutExt returns the file name with directory and extension
// stripped, e.g. "photos/hex-wrench.jpg" -> "hex-wrench".
func BaseNameWithoutExt(name string) string {
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func SaveUploadedFile(fileHeader *multipart.FileHeader, destinationPath string) error {
	src, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer func(src multipart.File) {
		_ = src.Close()
	}(src)

	dst, err := os.Create(destinationPath)
	if err != nil {
		return err
	}
	defer func(dst *os.File) {
		_ = dst.Close()
	}(dst)

	if _, err := io.Copy(dst, src); err != nil {
		return err
	}
	return nil
}

func DeleteFile(path string) error {
	return os.Remove(path)
}
