// file: internals/features/students/controller/student_controller.go
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
	orderModel "unisize_backend/internals/features/orders/model"
	studentDTO "unisize_backend/internals/features/students/dto"
	studentModel "unisize_backend/internals/features/students/model"
	helper "unisize_backend/internals/helpers"
)

type StudentController struct{ DB *gorm.DB }

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

var validateStudent = validator.New()

/* ===================== REGISTER (공개) ===================== */
// POST /api/students/register
// 학생 생성 + 접수(pending) 주문 생성을 한 트랜잭션으로 처리한다.
func (h *StudentController) Register(c *fiber.Ctx) error {
	var req studentDTO.RegisterStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "요청 본문이 올바르지 않습니다")
	}
	if err := validateStudent.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "입력값이 올바르지 않습니다")
	}

	tx := h.DB.Begin()
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "트랜잭션 시작에 실패했습니다")
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	s := req.ToModel()
	if err := tx.Create(s).Error; err != nil {
		tx.Rollback()
		log.Printf("[ERROR] 학생 등록 실패: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "학생 등록에 실패했습니다")
	}

	now := time.Now()
	o := &orderModel.OrderModel{
		OrderNumber: orderModel.NewOrderNumber(now),
		StudentID:   s.ID,
		Status:      constants.OrderStatusPending,
		OrderDate:   now,
		Notes:       strings.TrimSpace(req.Notes),
	}
	if err := tx.Create(o).Error; err != nil {
		tx.Rollback()
		log.Printf("[ERROR] 접수 주문 생성 실패: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "학생 등록에 실패했습니다")
	}

	if err := tx.Commit().Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "트랜잭션 커밋에 실패했습니다")
	}

	return helper.JsonCreated(c, "등록이 접수되었습니다", studentDTO.RegisterStudentResponse{
		StudentID:   s.ID,
		OrderID:     o.ID,
		OrderNumber: o.OrderNumber,
	})
}

/* ===================== LIST (직원) ===================== */
// GET /api/staff/students?page=&limit=&school_name=
func (h *StudentController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&studentModel.StudentModel{})
	if school := strings.TrimSpace(c.Query("school_name")); school != "" {
		base = base.Where("school_name = ?", school)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		log.Printf("[ERROR] 학생 수 조회 실패: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "학생 목록 조회에 실패했습니다")
	}

	var students []studentModel.StudentModel
	if err := base.Session(&gorm.Session{}).
		Order("created_at DESC, id DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&students).Error; err != nil {
		log.Printf("[ERROR] 학생 목록 조회 실패: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "학생 목록 조회에 실패했습니다")
	}

	return helper.JsonOK(c, "", fiber.Map{
		"total":    total,
		"students": students,
	})
}

/* ===================== DETAIL ===================== */
// GET /api/staff/students/:id
func (h *StudentController) GetByID(c *fiber.Ctx) error {
	s, err := h.findLiveStudent(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", s)
}

/* ===================== UPDATE ===================== */
// PUT /api/staff/students/:id
func (h *StudentController) Update(c *fiber.Ctx) error {
	s, err := h.findLiveStudent(c)
	if err != nil {
		return err
	}

	var req studentDTO.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "요청 본문이 올바르지 않습니다")
	}
	if err := validateStudent.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "입력값이 올바르지 않습니다")
	}

	req.ApplyToModel(s)
	if err := h.DB.Save(s).Error; err != nil {
		log.Printf("[ERROR] 학생 수정 실패: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "학생 수정에 실패했습니다")
	}

	return helper.JsonUpdated(c, "학생 정보가 수정되었습니다", s)
}

/* ===================== DELETE ===================== */
// DELETE /api/admin/students/:id (soft delete)
func (h *StudentController) Delete(c *fiber.Ctx) error {
	s, err := h.findLiveStudent(c)
	if err != nil {
		return err
	}
	if err := h.DB.Delete(s).Error; err != nil {
		log.Printf("[ERROR] 학생 삭제 실패: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "학생 삭제에 실패했습니다")
	}
	return helper.JsonDeleted(c, "학생이 삭제되었습니다", fiber.Map{"id": s.ID})
}

func (h *StudentController) findLiveStudent(c *fiber.Ctx) (*studentModel.StudentModel, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Params("id")), 10, 64)
	if err != nil || id <= 0 {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "학생 ID가 올바르지 않습니다")
	}
	var s studentModel.StudentModel
	if err := h.DB.First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "학생을 찾을 수 없습니다")
		}
		log.Printf("[ERROR] 학생 조회 실패: %v", err)
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "학생 조회에 실패했습니다")
	}
	return &s, nil
}
