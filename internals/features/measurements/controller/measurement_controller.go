// file: internals/features/measurements/controller/measurement_controller.go
package controller

import (
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"unisize_backend/internals/constants"
	measurementDTO "unisize_backend/internals/features/measurements/dto"
	measurementModel "unisize_backend/internals/features/measurements/model"
	orderModel "unisize_backend/internals/features/orders/model"
	studentModel "unisize_backend/internals/features/students/model"
	helper "unisize_backend/internals/helpers"
)

type MeasurementController struct{ DB *gorm.DB }

func NewMeasurementController(db *gorm.DB) *MeasurementController {
	return &MeasurementController{DB: db}
}

var validateMeasurement = validator.New()

/* ===================== CREATE ===================== */
// POST /api/staff/measurements
func (h *MeasurementController) Create(c *fiber.Ctx) error {
	var req measurementDTO.CreateMeasurementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "요청 본문이 올바르지 않습니다")
	}
	if err := validateMeasurement.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "입력값이 올바르지 않습니다")
	}

	// 대상 학생 존재 확인
	var s studentModel.StudentModel
	if err := h.DB.First(&s, req.StudentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "학생을 찾을 수 없습니다")
		}
		log.Printf("[ERROR] 학생 조회 실패: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "측정 등록에 실패했습니다")
	}

	measuredBy, _ := c.Locals("user_id").(int64)
	m := req.ToModel(measuredBy)
	if err := h.DB.Create(m).Error; err != nil {
		log.Printf("[ERROR] 측정 등록 실패: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "측정 등록에 실패했습니다")
	}

	return helper.JsonCreated(c, "측정이 시작되었습니다", m)
}

/* ===================== UPDATE ===================== */
// PUT /api/staff/measurements/:id
func (h *MeasurementController) Update(c *fiber.Ctx) error {
	m, err := h.findLiveMeasurement(c)
	if err != nil {
		return err
	}
	if m.Status == constants.MeasurementStatusCompleted {
		return helper.JsonError(c, fiber.StatusBadRequest, "완료된 측정은 수정할 수 없습니다")
	}

	var req measurementDTO.UpdateMeasurementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "요청 본문이 올바르지 않습니다")
	}
	if err := validateMeasurement.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "입력값이 올바르지 않습니다")
	}

	req.ApplyToModel(m)
	if err := h.DB.Save(m).Error; err != nil {
		log.Printf("[ERROR] 측정 수정 실패: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "측정 수정에 실패했습니다")
	}

	return helper.JsonUpdated(c, "측정값이 저장되었습니다", m)
}

/* ===================== COMPLETE ===================== */
// POST /api/staff/measurements/:id/complete
// 측정을 완료 처리하고, 해당 학생의 접수(pending) 주문을 측정 완료로 전환한다.
func (h *MeasurementController) Complete(c *fiber.Ctx) error {
	m, err := h.findLiveMeasurement(c)
	if err != nil {
		return err
	}
	if m.Status == constants.MeasurementStatusCompleted {
		return helper.JsonError(c, fiber.StatusBadRequest, "이미 완료된 측정입니다")
	}

	now := time.Now()

	tx := h.DB.Begin()
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "트랜잭션 시작에 실패했습니다")
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Model(&measurementModel.MeasurementModel{}).
		Where("id = ?", m.ID).
		Updates(map[string]interface{}{
			"status":      constants.MeasurementStatusCompleted,
			"measured_at": now,
			"updated_at":  now,
		}).Error; err != nil {
		tx.Rollback()
		log.Printf("[ERROR] 측정 완료 처리 실패: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "측정 완료 처리에 실패했습니다")
	}

	// 접수 상태의 주문만 전진시킨다 (이미 진행 중인 주문은 건드리지 않음)
	if err := tx.Model(&orderModel.OrderModel{}).
		Where("student_id = ? AND status = ?", m.StudentID, constants.OrderStatusPending).
		Updates(map[string]interface{}{
			"status":     constants.OrderStatusMeasured,
			"updated_at": now,
		}).Error; err != nil {
		tx.Rollback()
		log.Printf("[ERROR] 주문 상태 전환 실패: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "측정 완료 처리에 실패했습니다")
	}

	if err := tx.Commit().Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "트랜잭션 커밋에 실패했습니다")
	}

	return helper.JsonUpdated(c, "측정이 완료되었습니다", fiber.Map{
		"id":          m.ID,
		"student_id":  m.StudentID,
		"status":      constants.MeasurementStatusCompleted,
		"measured_at": now,
	})
}

/* ===================== HISTORY ===================== */
// GET /api/staff/students/:id/measurements — 최신순 이력
func (h *MeasurementController) ListByStudent(c *fiber.Ctx) error {
	studentID, err := strconv.ParseInt(strings.TrimSpace(c.Params("id")), 10, 64)
	if err != nil || studentID <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "학생 ID가 올바르지 않습니다")
	}

	var ms []measurementModel.MeasurementModel
	if err := h.DB.
		Where("student_id = ?", studentID).
		Order("created_at DESC, id DESC").
		Find(&ms).Error; err != nil {
		log.Printf("[ERROR] 측정 이력 조회 실패: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "측정 이력 조회에 실패했습니다")
	}

	return helper.JsonOK(c, "", fiber.Map{
		"total":        len(ms),
		"measurements": ms,
	})
}

func (h *MeasurementController) findLiveMeasurement(c *fiber.Ctx) (*measurementModel.MeasurementModel, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Params("id")), 10, 64)
	if err != nil || id <= 0 {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "측정 ID가 올바르지 않습니다")
	}
	var m measurementModel.MeasurementModel
	if err := h.DB.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "측정 기록을 찾을 수 없습니다")
		}
		log.Printf("[ERROR] 측정 조회 실패: %v", err)
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "측정 조회에 실패했습니다")
	}
	return &m, nil
}
