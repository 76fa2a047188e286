// file: internals/features/products/model/product_model.go
package model

import (
	"time"

	"gorm.io/gorm"
)

// ProductModel은 products 테이블 (교복 상품 카탈로그)
type ProductModel struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	SchoolID *int64 `gorm:"index" json:"school_id"` // NULL = 공용 상품

	Name     string `gorm:"size:100;not null" json:"name"`
	Category string `gorm:"size:50;not null" json:"category"`        // 자켓 / 바지 / 셔츠 ...
	Season   string `gorm:"type:varchar(10);not null" json:"season"` // 동복 / 하복
	Gender   string `gorm:"type:varchar(10);not null" json:"gender"`

	Price int64 `gorm:"not null;default:0" json:"price"`

	// default 태그 금지: GORM이 false를 INSERT에서 생략한다. 기본값은 DTO가 채운다.
	IsActive bool `gorm:"not null" json:"is_active"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ProductModel) TableName() string {
	return "products"
}
