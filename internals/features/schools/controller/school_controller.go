// file: internals/features/schools/controller/school_controller.go
package controller

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schoolDTO "unisize_backend/internals/features/schools/dto"
	schoolModel "unisize_backend/internals/features/schools/model"
	helper "unisize_backend/internals/helpers"
)

type SchoolController struct{ DB *gorm.DB }

func NewSchoolController(db *gorm.DB) *SchoolController {
	return &SchoolController{DB: db}
}

var validateSchool = validator.New()

// POST /api/admin/schools
func (h *SchoolController) Create(c *fiber.Ctx) error {
	var req schoolDTO.CreateSchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "요청 본문이 올바르지 않습니다")
	}
	if err := validateSchool.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "입력값이 올바르지 않습니다")
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "이미 등록된 학교입니다")
		}
		log.Printf("[ERROR] 학교 등록 실패: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "학교 등록에 실패했습니다")
	}

	return helper.JsonCreated(c, "학교가 등록되었습니다", m)
}

// GET /api/admin/schools?page=&limit=&region=
func (h *SchoolController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&schoolModel.SchoolModel{})
	if region := strings.TrimSpace(c.Query("region")); region != "" {
		base = base.Where("region = ?", region)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		log.Printf("[ERROR] 학교 수 조회 실패: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "학교 목록 조회에 실패했습니다")
	}

	var schools []schoolModel.SchoolModel
	if err := base.Session(&gorm.Session{}).
		Order("name ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&schools).Error; err != nil {
		log.Printf("[ERROR] 학교 목록 조회 실패: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "학교 목록 조회에 실패했습니다")
	}

	return helper.JsonOK(c, "", fiber.Map{
		"total":   total,
		"schools": schools,
	})
}

// PUT /api/admin/schools/:id
func (h *SchoolController) Update(c *fiber.Ctx) error {
	m, err := h.findLiveSchool(c)
	if err != nil {
		return err
	}

	var req schoolDTO.UpdateSchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "요청 본문이 올바르지 않습니다")
	}
	if err := validateSchool.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "입력값이 올바르지 않습니다")
	}

	req.ApplyToModel(m)
	if err := h.DB.Save(m).Error; err != nil {
		log.Printf("[ERROR] 학교 수정 실패: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "학교 수정에 실패했습니다")
	}

	return helper.JsonUpdated(c, "학교 정보가 수정되었습니다", m)
}

// DELETE /api/admin/schools/:id (soft delete)
func (h *SchoolController) Delete(c *fiber.Ctx) error {
	m, err := h.findLiveSchool(c)
	if err != nil {
		return err
	}
	if err := h.DB.Delete(m).Error; err != nil {
		log.Printf("[ERROR] 학교 삭제 실패: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "학교 삭제에 실패했습니다")
	}
	return helper.JsonDeleted(c, "학교가 삭제되었습니다", fiber.Map{"id": m.ID})
}

func (h *SchoolController) findLiveSchool(c *fiber.Ctx) (*schoolModel.SchoolModel, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Params("id")), 10, 64)
	if err != nil || id <= 0 {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "학교 ID가 올바르지 않습니다")
	}
	var m schoolModel.SchoolModel
	if err := h.DB.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "학교를 찾을 수 없습니다")
		}
		log.Printf("[ERROR] 학교 조회 실패: %v", err)
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "학교 조회에 실패했습니다")
	}
	return &m, nil
}
