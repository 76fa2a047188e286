// file: internals/features/orders/model/order_model.go
package model

import (
	"time"

	"gorm.io/gorm"
)

// OrderModel은 orders 테이블. 주문 한 건은 학생 한 명을 참조한다.
type OrderModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderNumber string `gorm:"size:40;uniqueIndex;not null" json:"order_number"`
	StudentID   int64  `gorm:"index;not null" json:"student_id"`

	// pending → measured → payment_pending → confirmed → completed / cancelled
	Status string `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`

	// 확정 주문은 total_amount(정산가), 결제 대기는 estimated_amount(견적가)
	TotalAmount     int64 `gorm:"not null;default:0" json:"total_amount"`
	EstimatedAmount int64 `gorm:"not null;default:0" json:"estimated_amount"`

	OrderDate    time.Time  `gorm:"not null;index" json:"order_date"`
	DeliveryDate *time.Time `json:"delivery_date"`
	Notes        string     `gorm:"type:text" json:"notes"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (OrderModel) TableName() string {
	return "orders"
}
