// file: internals/features/users/model/user_model.go
package model

import (
	"time"

	"gorm.io/gorm"
)

// UserModel은 users 테이블 (직원/관리자 계정)
type UserModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	EmployeeID   string `gorm:"size:50;uniqueIndex;not null" json:"employee_id"`
	EmployeeName string `gorm:"size:100;not null" json:"employee_name"`
	Password     string `gorm:"not null" json:"-"`
	Gender       string `gorm:"type:varchar(10);not null" json:"gender"`
	Role         string `gorm:"type:varchar(20);not null;default:'staff'" json:"role"`

	// 승인 게이트: 가입 직후 false, 관리자 승인 시 true
	IsActive bool `gorm:"not null;default:false" json:"is_active"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (UserModel) TableName() string {
	return "users"
}
