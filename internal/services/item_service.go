package services

import (
	"fmt"

	"Klutterbox/internal/dto"
	"Klutterbox/internal/mapper"
	"Klutterbox/internal/models"
	"Klutterbox/internal/repository"
	"github.com/sirupsen/logrus"
)

const (
	maxListLimit     = 500
	defaultListLimit = 100
)

type ItemService interface {
	GetItems(boxCode string, limit, offset int) ([]models.Item, error)
	CreateItem(req dto.ItemCreateDTO) (*models.Item, error)
	CreateItems(reqs []dto.ItemCreateDTO) ([]models.Item, error)
	UpdateItemPartial(id uint, patch dto.ItemPatchDTO) (*models.Item, error)
	DeleteItem(id uint) error
}

type itemServiceImpl struct {
	itemRepo      repository.ItemRepository
	boxRepo       repository.BoxRepository
	fileService   FileService
	searchService SearchService
	logService    LogService
}

func NewItemService(
	itemRepo repository.ItemRepository,
	boxRepo repository.BoxRepository,
	fileService FileService,
	searchService SearchService,
	logService LogService,
) ItemService {
	return &itemServiceImpl{
		itemRepo:      itemRepo,
		boxRepo:       boxRepo,
		fileService:   fileService,
		searchService: searchService,
		logService:    logService,
	}
}

func (s *itemServiceImpl) GetItems(boxCode string, limit, offset int) ([]models.Item, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.itemRepo.List(boxCode, limit, offset)
}

func (s *itemServiceImpl) CreateItem(req dto.ItemCreateDTO) (*models.Item, error) {
	if req.Name == "" {
		return nil, ErrNameRequired
	}
	code, err := s.resolveBoxCode(req.BoxCode)
	if err != nil {
		return nil, err
	}
	item := mapper.ToItemModel(req, code)
	if err := s.itemRepo.Create(item); err != nil {
		return nil, err
	}
	s.searchService.InvalidateCache()
	return item, nil
}

// CreateItems validates every record before inserting any; the insert itself
// is one transaction, so either all records persist or none do.
func (s *itemServiceImpl) CreateItems(reqs []dto.ItemCreateDTO) ([]models.Item, error) {
	items := make([]*models.Item, 0, len(reqs))
	knownBoxes := make(map[string]bool)
	for _, req := range reqs {
		if req.Name == "" {
			return nil, ErrNameRequired
		}
		code := req.BoxCode
		if code == "" {
			code = models.DefaultBoxCode
		}
		if !knownBoxes[code] {
			if _, err := s.resolveBoxCode(code); err != nil {
				return nil, err
			}
			knownBoxes[code] = true
		}
		items = append(items, mapper.ToItemModel(req, code))
	}
	if err := s.itemRepo.CreateBatch(items); err != nil {
		return nil, err
	}
	s.searchService.InvalidateCache()
	created := make([]models.Item, 0, len(items))
	for _, item := range items {
		created = append(created, *item)
	}
	return created, nil
}

func (s *itemServiceImpl) UpdateItemPartial(id uint, patch dto.ItemPatchDTO) (*models.Item, error) {
	item, err := s.itemRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	if patch.Name != nil {
		if *patch.Name == "" {
			return nil, ErrNameRequired
		}
		item.Name = *patch.Name
	}
	if patch.Description != nil {
		if *patch.Description == "" {
			item.Description = nil
		} else {
			item.Description = patch.Description
		}
	}
	if patch.BoxCode != nil {
		code, err := s.resolveBoxCode(*patch.BoxCode)
		if err != nil {
			return nil, err
		}
		item.BoxCode = code
	}
	if err := s.itemRepo.Update(item); err != nil {
		return nil, err
	}
	s.searchService.InvalidateCache()
	return item, nil
}

func (s *itemServiceImpl) DeleteItem(id uint) error {
	item, err := s.itemRepo.FindByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrItemNotFound
	}
	if err := s.itemRepo.Delete(item); err != nil {
		return err
	}
	s.searchService.InvalidateCache()

	// The record deletion is authoritative; losing the file is only worth a log line.
	if item.ImagePath != nil {
		if err := s.fileService.RemoveUpload(*item.ImagePath); err != nil {
			s.logService.Log.WithFields(logrus.Fields{
				"item":  item.ID,
				"image": *item.ImagePath,
				"error": err.Error(),
			}).Warn("failed to remove item image")
		}
	}
	return nil
}

func (s *itemServiceImpl) resolveBoxCode(code string) (string, error) {
	if code == "" {
		code = models.DefaultBoxCode
	}
	box, err := s.boxRepo.FindByCode(code)
	if err != nil {
		return "", err
	}
	if box == nil {
		return "", fmt.Errorf("%w %s", ErrUnknownBox, code)
	}
	return code, nil
}
