package dto

type BoxCreateDTO struct {
	Code  string  `json:"code"`
	Label *string `json:"label"`
}

// BoxUpdateDTO is a patch body: nil means "leave unchanged".
type BoxUpdateDTO struct {
	Code  *string `json:"code"`
	Label *string `json:"label"`
}

type BoxSummaryDTO struct {
	ID        uint    `json:"id"`
	Code      string  `json:"code"`
	Label     *string `json:"label"`
	ItemCount int64   `json:"item_count"`
}
