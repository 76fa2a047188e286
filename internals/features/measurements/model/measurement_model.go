// file: internals/features/measurements/model/measurement_model.go
package model

import (
	"time"

	"gorm.io/gorm"
)

// MeasurementModel은 measurements 테이블.
// 한 학생이 시점별로 여러 측정 기록을 가질 수 있고,
// 다운스트림 뷰에는 completed 상태 중 가장 최근 것만 쓰인다.
type MeasurementModel struct {
	ID        int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	StudentID int64 `gorm:"index;not null" json:"student_id"`

	Height   float64 `gorm:"not null;default:0" json:"height"`
	Weight   float64 `gorm:"not null;default:0" json:"weight"`
	Shoulder float64 `gorm:"not null;default:0" json:"shoulder"`
	Chest    float64 `gorm:"not null;default:0" json:"chest"`
	Waist    float64 `gorm:"not null;default:0" json:"waist"`
	ArmLen   float64 `gorm:"column:arm_length;not null;default:0" json:"arm_length"`
	LegLen   float64 `gorm:"column:leg_length;not null;default:0" json:"leg_length"`

	Status     string     `gorm:"type:varchar(20);not null;default:'in_progress'" json:"status"`
	MeasuredAt *time.Time `json:"measured_at"`
	MeasuredBy *int64     `json:"measured_by"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (MeasurementModel) TableName() string {
	return "measurements"
}
