// file: internals/features/orders/model/order_item_model.go
package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// OrderItemModel은 order_items 테이블
type OrderItemModel struct {
	ID        int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   int64 `gorm:"index;not null" json:"order_id"`
	ProductID int64 `gorm:"index;not null" json:"product_id"`

	Size      string `gorm:"size:20;not null" json:"size"`
	Quantity  int    `gorm:"not null;default:1" json:"quantity"`
	UnitPrice int64  `gorm:"not null;default:0" json:"unit_price"`
	Subtotal  int64  `gorm:"not null;default:0" json:"subtotal"`

	// 수선/커스터마이징 옵션 (기장 수선, 네임택 등)
	Options datatypes.JSON `gorm:"type:jsonb" json:"options"`

	DeliveryStatus string `gorm:"type:varchar(20);not null;default:'pending'" json:"delivery_status"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (OrderItemModel) TableName() string {
	return "order_items"
}
