// file: internals/features/schools/dto/school_dto.go
package dto

import (
	"strings"

	model "unisize_backend/internals/features/schools/model"
)

type CreateSchoolRequest struct {
	Name   string `json:"name" validate:"required,min=2,max=100"`
	Region string `json:"region" validate:"omitempty,max=100"`
	Type   string `json:"type" validate:"required,oneof=middle high"`
}

func (r CreateSchoolRequest) ToModel() *model.SchoolModel {
	return &model.SchoolModel{
		Name:   strings.TrimSpace(r.Name),
		Region: strings.TrimSpace(r.Region),
		Type:   r.Type,
	}
}

type UpdateSchoolRequest struct {
	Name   *string `json:"name" validate:"omitempty,min=2,max=100"`
	Region *string `json:"region" validate:"omitempty,max=100"`
	Type   *string `json:"type" validate:"omitempty,oneof=middle high"`
}

func (r *UpdateSchoolRequest) ApplyToModel(m *model.SchoolModel) {
	if r.Name != nil {
		m.Name = strings.TrimSpace(*r.Name)
	}
	if r.Region != nil {
		m.Region = strings.TrimSpace(*r.Region)
	}
	if r.Type != nil {
		m.Type = *r.Type
	}
}
