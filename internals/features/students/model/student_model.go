// file: internals/features/students/model/student_model.go
package model

import (
	"time"

	"gorm.io/gorm"
)

// StudentModel은 students 테이블
type StudentModel struct {
	ID     int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name   string `gorm:"size:100;not null" json:"name"`
	Gender string `gorm:"type:varchar(10);not null" json:"gender"` // male / female
	Phone  string `gorm:"size:20" json:"phone"`

	SchoolName     string `gorm:"size:100;not null" json:"school_name"`
	AdmissionYear  int    `gorm:"not null" json:"admission_year"`
	AdmissionGrade int    `gorm:"not null" json:"admission_grade"` // 1 = 신입생, 그 외 = 재학생

	ParentName  string `gorm:"size:100" json:"parent_name"`
	ParentPhone string `gorm:"size:20" json:"parent_phone"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (StudentModel) TableName() string {
	return "students"
}
