package models

// DefaultBoxCode is the box items land in when no box_code is supplied.
const (
	DefaultBoxCode  = "box1"
	DefaultBoxLabel = "Default Box 1"
)

type Box struct {
	BaseModel
	Code  string  `gorm:"type:varchar(255);not null;unique" json:"code"`
	Label *string `gorm:"type:text" json:"label"`
}
