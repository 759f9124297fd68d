package services

import (
	"Klutterbox/internal/dto"
	"Klutterbox/internal/models"
	"Klutterbox/internal/repository"
)

type BoxService interface {
	GetBoxes() ([]models.Box, error)
	GetSummaries() ([]dto.BoxSummaryDTO, error)
	GetBoxByCode(code string) (*models.Box, error)
	CreateBox(code string, label *string) (*models.Box, error)
	UpdateBox(code string, patch dto.BoxUpdateDTO) (*models.Box, error)
	DeleteBox(code string) error
}

func NewBoxService(boxRepo repository.BoxRepository, searchService SearchService) BoxService {
	return &boxServiceImpl{boxRepo: boxRepo, searchService: searchService}
}

type boxServiceImpl struct {
	boxRepo       repository.BoxRepository
	searchService SearchService
}

func (s *boxServiceImpl) GetBoxes() ([]models.Box, error) {
	return s.boxRepo.FindAllOrdered()
}

func (s *boxServiceImpl) GetSummaries() ([]dto.BoxSummaryDTO, error) {
	return s.boxRepo.Summaries()
}

func (s *boxServiceImpl) GetBoxByCode(code string) (*models.Box, error) {
	return s.boxRepo.FindByCode(code)
}

func (s *boxServiceImpl) CreateBox(code string, label *string) (*models.Box, error) {
	if code == "" {
		return nil, ErrBoxCodeRequired
	}
	existing, err := s.boxRepo.FindByCode(code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrBoxExists
	}
	box := &models.Box{Code: code, Label: normalizeLabel(label)}
	if err := s.boxRepo.Create(box); err != nil {
		return nil, err
	}
	return box, nil
}

func (s *boxServiceImpl) UpdateBox(code string, patch dto.BoxUpdateDTO) (*models.Box, error) {
	box, err := s.boxRepo.FindByCode(code)
	if err != nil {
		return nil, err
	}
	if box == nil {
		return nil, ErrBoxNotFound
	}

	if patch.Code != nil && *patch.Code != box.Code {
		newCode := *patch.Code
		if newCode == "" {
			return nil, ErrBoxCodeRequired
		}
		taken, err := s.boxRepo.FindByCode(newCode)
		if err != nil {
			return nil, err
		}
		if taken != nil {
			return nil, ErrBoxExists
		}
		if err := s.boxRepo.RenameCode(box.Code, newCode); err != nil {
			return nil, err
		}
		box.Code = newCode
		s.searchService.InvalidateCache()
	}

	if patch.Label != nil {
		box.Label = normalizeLabel(patch.Label)
		if err := s.boxRepo.Update(box); err != nil {
			return nil, err
		}
	}
	return box, nil
}

func (s *boxServiceImpl) DeleteBox(code string) error {
	box, err := s.boxRepo.FindByCode(code)
	if err != nil {
		return err
	}
	if box == nil {
		return ErrBoxNotFound
	}
	count, err := s.boxRepo.CountItems(code)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrBoxNotEmpty
	}
	return s.boxRepo.Delete(box.ID)
}

func normalizeLabel(label *string) *string {
	if label == nil || *label == "" {
		return nil
	}
	return label
}
