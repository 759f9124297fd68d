package models

type Item struct {
	BaseModel
	Name        string  `gorm:"type:varchar(255);not null;index" json:"name"`
	Description *string `gorm:"type:text" json:"description"`
	ImagePath   *string `gorm:"type:text" json:"image_path"`
	BoxCode     string  `gorm:"type:varchar(255);not null;index" json:"box_code"`
}
