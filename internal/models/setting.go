package models

import (
	"gorm.io/datatypes"
)

type Setting struct {
	BaseModel

	Key   string         `gorm:"uniqueIndex;not null" json:"key"`
	Value datatypes.JSON `gorm:"type:jsonb" json:"value"`
}
