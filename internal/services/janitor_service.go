package services

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"Klutterbox/internal/config"
	"Klutterbox/internal/repository"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Janitor removes files from the uploads area that no item references,
// e.g. images uploaded for a vision suggestion the user never confirmed.
// Files younger than the configured minimum age are left alone so an
// in-flight suggestion cannot lose its image.
type Janitor struct {
	itemRepo      repository.ItemRepository
	fileService   FileService
	logService    LogService
	configuration *config.Configuration
	cleaning      bool
	mutex         sync.Mutex
	cron          *cron.Cron
}

func NewJanitorService(
	itemRepo repository.ItemRepository,
	fileService FileService,
	logService LogService,
	configuration *config.Configuration,
) *Janitor {
	return &Janitor{
		itemRepo:      itemRepo,
		fileService:   fileService,
		logService:    logService,
		configuration: configuration,
		cron:          cron.New(),
	}
}

func (j *Janitor) StartCleanCycle() {
	schedule := j.configuration.Server.CleanConfig.Schedule
	_, err := j.cron.AddFunc(schedule, func() {
		j.mutex.Lock()
		if j.cleaning {
			j.mutex.Unlock()
			return
		}
		j.cleaning = true
		j.mutex.Unlock()

		defer func() {
			j.mutex.Lock()
			j.cleaning = false
			j.mutex.Unlock()
		}()

		removed, err := j.Sweep()
		if err != nil {
			j.logService.Log.WithFields(logrus.Fields{
				"job":   "clean",
				"error": err.Error(),
			}).Error("upload sweep failed")
			return
		}
		if removed > 0 {
			j.logService.Log.WithFields(logrus.Fields{
				"job":   "clean",
				"count": removed,
			}).Info("removed orphaned uploads")
		}
	})
	if err != nil {
		j.logService.Log.WithFields(logrus.Fields{
			"job":   "clean",
			"error": err.Error(),
		}).Error("failed to schedule cleaning job")
		return
	}
	j.cron.Start()
}

func (j *Janitor) StopClean() {
	j.cron.Stop()
}

// Sweep deletes unreferenced uploads older than the minimum age and returns
// how many files were removed.
func (j *Janitor) Sweep() (int, error) {
	paths, err := j.itemRepo.ReferencedImagePaths()
	if err != nil {
		return 0, err
	}
	referenced := make(map[string]bool, len(paths))
	for _, p := range paths {
		referenced[p] = true
	}

	uploadsDir := j.fileService.UploadsDir()
	entries, err := os.ReadDir(uploadsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	minAge := time.Duration(j.configuration.Server.CleanConfig.MinAgeHours) * time.Hour
	cutoff := time.Now().Add(-minAge)

	var removed int
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if referenced["/uploads/"+entry.Name()] {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(uploadsDir, entry.Name())); err != nil {
			j.logService.Log.WithFields(logrus.Fields{
				"job":   "clean",
				"file":  entry.Name(),
				"error": err.Error(),
			}).Warn("failed to remove orphaned upload")
			continue
		}
		removed++
	}
	return removed, nil
}
