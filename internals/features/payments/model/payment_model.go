// file: internals/features/payments/model/payment_model.go
package model

import (
	"time"

	"gorm.io/gorm"
)

// PaymentModel은 payments 테이블
type PaymentModel struct {
	ID      int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID int64 `gorm:"index;not null" json:"order_id"`

	Amount        int64  `gorm:"not null" json:"amount"`
	Method        string `gorm:"type:varchar(20);not null" json:"method"` // card / cash / transfer
	Status        string `gorm:"type:varchar(20);not null;default:'paid'" json:"status"`
	TransactionID string `gorm:"size:64" json:"transaction_id"`

	PayerName  string `gorm:"size:100" json:"payer_name"`
	PayerPhone string `gorm:"size:20" json:"payer_phone"`

	PaidAt *time.Time `json:"paid_at"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (PaymentModel) TableName() string {
	return "payments"
}
