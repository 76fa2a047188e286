// file: internals/features/schools/model/school_model.go
package model

import (
	"time"

	"gorm.io/gorm"
)

// SchoolModel은 schools 테이블
type SchoolModel struct {
	ID     int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name   string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Region string `gorm:"size:100" json:"region"`
	Type   string `gorm:"type:varchar(20);not null" json:"type"` // middle / high

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (SchoolModel) TableName() string {
	return "schools"
}
