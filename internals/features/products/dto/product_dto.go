// file: internals/features/products/dto/product_dto.go
package dto

import (
	"strings"

	model "unisize_backend/internals/features/products/model"
)

/* ===================== REQUESTS ===================== */

type CreateProductRequest struct {
	SchoolID *int64 `json:"school_id" validate:"omitempty,gt=0"`
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Category string `json:"category" validate:"required,max=50"`
	Season   string `json:"season" validate:"required,oneof=동복 하복"`
	Gender   string `json:"gender" validate:"required,oneof=male female unisex"`
	Price    int64  `json:"price" validate:"required,gte=0"`
	IsActive *bool  `json:"is_active" validate:"omitempty"`
}

func (r CreateProductRequest) ToModel() *model.ProductModel {
	m := &model.ProductModel{
		SchoolID: r.SchoolID,
		Name:     strings.TrimSpace(r.Name),
		Category: strings.TrimSpace(r.Category),
		Season:   r.Season,
		Gender:   r.Gender,
		Price:    r.Price,
		IsActive: true,
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
	return m
}

/* ===================== UPDATE (partial) ===================== */

type UpdateProductRequest struct {
	SchoolID *int64  `json:"school_id" validate:"omitempty,gt=0"`
	Name     *string `json:"name" validate:"omitempty,min=2,max=100"`
	Category *string `json:"category" validate:"omitempty,max=50"`
	Season   *string `json:"season" validate:"omitempty,oneof=동복 하복"`
	Gender   *string `json:"gender" validate:"omitempty,oneof=male female unisex"`
	Price    *int64  `json:"price" validate:"omitempty,gte=0"`
	IsActive *bool   `json:"is_active" validate:"omitempty"`
}

func (r *UpdateProductRequest) ApplyToModel(m *model.ProductModel) {
	if r.SchoolID != nil {
		m.SchoolID = r.SchoolID
	}
	if r.Name != nil {
		m.Name = strings.TrimSpace(*r.Name)
	}
	if r.Category != nil {
		m.Category = strings.TrimSpace(*r.Category)
	}
	if r.Season != nil {
		m.Season = *r.Season
	}
	if r.Gender != nil {
		m.Gender = *r.Gender
	}
	if r.Price != nil {
		m.Price = *r.Price
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
}
