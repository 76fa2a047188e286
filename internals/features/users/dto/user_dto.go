// file: internals/features/users/dto/user_dto.go
package dto

import (
	"strings"
	"time"

	model "unisize_backend/internals/features/users/model"
)

/* ===================== REQUESTS ===================== */

type RegisterStaffRequest struct {
	EmployeeID   string `json:"employee_id" validate:"required,min=3,max=50"`
	EmployeeName string `json:"employee_name" validate:"required,min=2,max=100"`
	Password     string `json:"password" validate:"required,min=8"`
	Gender       string `json:"gender" validate:"required,oneof=male female"`
}

func (r RegisterStaffRequest) ToModel(hashedPassword string) *model.UserModel {
	return &model.UserModel{
		EmployeeID:   strings.TrimSpace(r.EmployeeID),
		EmployeeName: strings.TrimSpace(r.EmployeeName),
		Password:     hashedPassword,
		Gender:       r.Gender,
		Role:         "staff",
		IsActive:     false, // 관리자 승인 전까지 비활성
	}
}

type LoginRequest struct {
	EmployeeID string `json:"employee_id" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// 단건/복수 승인 공용
type ApproveStaffRequest struct {
	UserIDs []int64 `json:"user_ids"`
}

/* ===================== RESPONSES ===================== */

// StaffStats: 사용 통계 블록. 현재 스코프에서는 집계하지 않고
// 응답 호환성을 위해 0으로 고정한다.
type StaffStats struct {
	CurrentlyMeasuring   int `json:"currently_measuring"`
	TodayStudentsHandled int `json:"today_students_handled"`
	TotalStudentsHandled int `json:"total_students_handled"`
}

type StaffSummary struct {
	ID           int64      `json:"id"`
	EmployeeID   string     `json:"employee_id"`
	EmployeeName string     `json:"employee_name"`
	Gender       string     `json:"gender"`
	Role         string     `json:"role"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	Stats        StaffStats `json:"stats"`
}

func NewStaffSummary(u *model.UserModel) StaffSummary {
	return StaffSummary{
		ID:           u.ID,
		EmployeeID:   u.EmployeeID,
		EmployeeName: u.EmployeeName,
		Gender:       u.Gender,
		Role:         u.Role,
		IsActive:     u.IsActive,
		CreatedAt:    u.CreatedAt,
		Stats:        StaffStats{},
	}
}

type LoginResponse struct {
	Token        string `json:"token"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Role         string `json:"role"`
}
