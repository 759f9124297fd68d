package mapper

import (
	"Klutterbox/internal/dto"
	"Klutterbox/internal/models"
)

// ToItemModel builds an Item from a create request. boxCode is the already
// resolved target box (request value or the default box).
func ToItemModel(d dto.ItemCreateDTO, boxCode string) *models.Item {
	return &models.Item{
		Name:        d.Name,
		Description: normalize(d.Description),
		ImagePath:   normalize(d.ImagePath),
		BoxCode:     boxCode,
	}
}

// normalize maps empty strings to nil so optional columns stay NULL.
func normalize(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
