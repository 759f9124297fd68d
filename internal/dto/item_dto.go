package dto

type ItemCreateDTO struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	ImagePath   *string `json:"image_path"`
	BoxCode     string  `json:"box_code"`
}

// ItemPatchDTO is a partial update: nil fields stay untouched, a non-nil
// field is applied even when it points at an empty string.
type ItemPatchDTO struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	BoxCode     *string `json:"box_code"`
}

type ItemBatchDTO struct {
	Items []ItemCreateDTO `json:"items"`
}

// SuggestionDTO is a non-persisted item candidate inferred from an image.
type SuggestionDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
