package services

import (
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"Klutterbox/internal/config"
	"Klutterbox/internal/helpers"
)

const uploadsURLPrefix = "/uploads/"

// FileService owns the uploads area: storing uploaded images and removing
// the ones this system owns.
type FileService interface {
	// SaveUpload stores the file and returns its public path, e.g.
	// "/uploads/1724800000000.jpg".
	SaveUpload(fileHeader *multipart.FileHeader) (string, error)
	// ResolveUpload maps a public image path to an absolute file path;
	// false when the path is not inside the uploads area.
	ResolveUpload(imagePath string) (string, bool)
	// RemoveUpload deletes an owned upload. Paths outside the uploads area
	// and already-missing files are not errors.
	RemoveUpload(imagePath string) error
	UploadsDir() string
}

type FileServiceImpl struct {
	configuration config.Configuration
}

func NewFileService(configuration *config.Configuration) FileService {
	return &FileServiceImpl{configuration: *configuration}
}

func (s *FileServiceImpl) SaveUpload(fileHeader *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(s.configuration.Storage.UploadsPath, os.ModePerm); err != nil {
		return "", err
	}
	name := helpers.UploadFileName(fileHeader.Filename)
	destination := filepath.Join(s.configuration.Storage.UploadsPath, name)
	if err := helpers.SaveUploadedFile(fileHeader, destination); err != nil {
		return "", err
	}
	return uploadsURLPrefix + name, nil
}

func (s *FileServiceImpl) ResolveUpload(imagePath string) (string, bool) {
	if !strings.HasPrefix(imagePath, uploadsURLPrefix) {
		return "", false
	}
	name := strings.TrimPrefix(imagePath, uploadsURLPrefix)
	if name == "" || strings.Contains(name, "/") || strings.Contains(name, "..") {
		return "", false
	}
	return filepath.Join(s.configuration.Storage.UploadsPath, name), true
}

func (s *FileServiceImpl) RemoveUpload(imagePath string) error {
	absolutePath, owned := s.ResolveUpload(imagePath)
	if !owned {
		return nil
	}
	if err := helpers.DeleteFile(absolutePath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (s *FileServiceImpl) UploadsDir() string {
	return s.configuration.Storage.UploadsPath
}
