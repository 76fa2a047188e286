// file: internals/features/measurements/dto/measurement_dto.go
package dto

import (
	model "unisize_backend/internals/features/measurements/model"
)

/* ===================== REQUESTS ===================== */

type CreateMeasurementRequest struct {
	StudentID int64   `json:"student_id" validate:"required,gt=0"`
	Height    float64 `json:"height" validate:"omitempty,gte=0,lte=250"`
	Weight    float64 `json:"weight" validate:"omitempty,gte=0,lte=300"`
	Shoulder  float64 `json:"shoulder" validate:"omitempty,gte=0,lte=100"`
	Chest     float64 `json:"chest" validate:"omitempty,gte=0,lte=200"`
	Waist     float64 `json:"waist" validate:"omitempty,gte=0,lte=200"`
	ArmLen    float64 `json:"arm_length" validate:"omitempty,gte=0,lte=150"`
	LegLen    float64 `json:"leg_length" validate:"omitempty,gte=0,lte=150"`
}

func (r CreateMeasurementRequest) ToModel(measuredBy int64) *model.MeasurementModel {
	return &model.MeasurementModel{
		StudentID:  r.StudentID,
		Height:     r.Height,
		Weight:     r.Weight,
		Shoulder:   r.Shoulder,
		Chest:      r.Chest,
		Waist:      r.Waist,
		ArmLen:     r.ArmLen,
		LegLen:     r.LegLen,
		Status:     "in_progress",
		MeasuredBy: &measuredBy,
	}
}

/* ===================== UPDATE (partial) ===================== */

type UpdateMeasurementRequest struct {
	Height   *float64 `json:"height" validate:"omitempty,gte=0,lte=250"`
	Weight   *float64 `json:"weight" validate:"omitempty,gte=0,lte=300"`
	Shoulder *float64 `json:"shoulder" validate:"omitempty,gte=0,lte=100"`
	Chest    *float64 `json:"chest" validate:"omitempty,gte=0,lte=200"`
	Waist    *float64 `json:"waist" validate:"omitempty,gte=0,lte=200"`
	ArmLen   *float64 `json:"arm_length" validate:"omitempty,gte=0,lte=150"`
	LegLen   *float64 `json:"leg_length" validate:"omitempty,gte=0,lte=150"`
}

func (r *UpdateMeasurementRequest) ApplyToModel(m *model.MeasurementModel) {
	if r.Height != nil {
		m.Height = *r.Height
	}
	if r.Weight != nil {
		m.Weight = *r.Weight
	}
	if r.Shoulder != nil {
		m.Shoulder = *r.Shoulder
	}
	if r.Chest != nil {
		m.Chest = *r.Chest
	}
	if r.Waist != nil {
		m.Waist = *r.Waist
	}
	if r.ArmLen != nil {
		m.ArmLen = *r.ArmLen
	}
	if r.LegLen != nil {
		m.LegLen = *r.LegLen
	}
}
