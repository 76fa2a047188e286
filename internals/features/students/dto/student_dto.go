// file: internals/features/students/dto/student_dto.go
package dto

import (
	"strings"

	model "unisize_backend/internals/features/students/model"
)

/* ===================== REQUESTS ===================== */

// 공개 자가등록: 학생 생성 + pending 주문 생성이 한 트랜잭션
type RegisterStudentRequest struct {
	Name           string `json:"name" validate:"required,min=2,max=100"`
	Gender         string `json:"gender" validate:"required,oneof=male female"`
	Phone          string `json:"phone" validate:"omitempty,max=20"`
	SchoolName     string `json:"school_name" validate:"required,min=2,max=100"`
	AdmissionYear  int    `json:"admission_year" validate:"required,gte=2000,lte=2100"`
	AdmissionGrade int    `json:"admission_grade" validate:"required,gte=1,lte=3"`
	ParentName     string `json:"parent_name" validate:"omitempty,max=100"`
	ParentPhone    string `json:"parent_phone" validate:"omitempty,max=20"`
	Notes          string `json:"notes" validate:"omitempty,max=500"`
}

func (r RegisterStudentRequest) ToModel() *model.StudentModel {
	return &model.StudentModel{
		Name:           strings.TrimSpace(r.Name),
		Gender:         r.Gender,
		Phone:          strings.TrimSpace(r.Phone),
		SchoolName:     strings.TrimSpace(r.SchoolName),
		AdmissionYear:  r.AdmissionYear,
		AdmissionGrade: r.AdmissionGrade,
		ParentName:     strings.TrimSpace(r.ParentName),
		ParentPhone:    strings.TrimSpace(r.ParentPhone),
	}
}

/* ===================== UPDATE (partial) ===================== */

type UpdateStudentRequest struct {
	Name           *string `json:"name" validate:"omitempty,min=2,max=100"`
	Gender         *string `json:"gender" validate:"omitempty,oneof=male female"`
	Phone          *string `json:"phone" validate:"omitempty,max=20"`
	SchoolName     *string `json:"school_name" validate:"omitempty,min=2,max=100"`
	AdmissionYear  *int    `json:"admission_year" validate:"omitempty,gte=2000,lte=2100"`
	AdmissionGrade *int    `json:"admission_grade" validate:"omitempty,gte=1,lte=3"`
	ParentName     *string `json:"parent_name" validate:"omitempty,max=100"`
	ParentPhone    *string `json:"parent_phone" validate:"omitempty,max=20"`
}

// ApplyToModel: 전달된 필드만 반영
func (r *UpdateStudentRequest) ApplyToModel(m *model.StudentModel) {
	if r.Name != nil {
		m.Name = strings.TrimSpace(*r.Name)
	}
	if r.Gender != nil {
		m.Gender = *r.Gender
	}
	if r.Phone != nil {
		m.Phone = strings.TrimSpace(*r.Phone)
	}
	if r.SchoolName != nil {
		m.SchoolName = strings.TrimSpace(*r.SchoolName)
	}
	if r.AdmissionYear != nil {
		m.AdmissionYear = *r.AdmissionYear
	}
	if r.AdmissionGrade != nil {
		m.AdmissionGrade = *r.AdmissionGrade
	}
	if r.ParentName != nil {
		m.ParentName = strings.TrimSpace(*r.ParentName)
	}
	if r.ParentPhone != nil {
		m.ParentPhone = strings.TrimSpace(*r.ParentPhone)
	}
}

/* ===================== RESPONSES ===================== */

type RegisterStudentResponse struct {
	StudentID   int64  `json:"student_id"`
	OrderID     int64  `json:"order_id"`
	OrderNumber string `json:"order_number"`
}
