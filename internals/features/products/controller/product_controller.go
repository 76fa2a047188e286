// file: internals/features/products/controller/product_controller.go
package controller

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	productDTO "unisize_backend/internals/features/products/dto"
	productModel "unisize_backend/internals/features/products/model"
	helper "unisize_backend/internals/helpers"
)

type ProductController struct{ DB *gorm.DB }

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{DB: db}
}

var validateProduct = validator.New()

/* ===================== CREATE ===================== */
// POST /api/admin/products
func (h *ProductController) Create(c *fiber.Ctx) error {
	var req productDTO.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "요청 본문이 올바르지 않습니다")
	}
	if err := validateProduct.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "입력값이 올바르지 않습니다")
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		log.Printf("[ERROR] 상품 등록 실패: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "상품 등록에 실패했습니다")
	}

	return helper.JsonCreated(c, "상품이 등록되었습니다", m)
}

/* ===================== LIST ===================== */
// GET /api/admin/products?page=&limit=&season=&category=&school_id=
func (h *ProductController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&productModel.ProductModel{})
	if season := strings.TrimSpace(c.Query("season")); season != "" {
		base = base.Where("season = ?", season)
	}
	if category := strings.TrimSpace(c.Query("category")); category != "" {
		base = base.Where("category = ?", category)
	}
	if sid := strings.TrimSpace(c.Query("school_id")); sid != "" {
		if id, err := strconv.ParseInt(sid, 10, 64); err == nil && id > 0 {
			base = base.Where("school_id = ?", id)
		}
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		log.Printf("[ERROR] 상품 수 조회 실패: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "상품 목록 조회에 실패했습니다")
	}

	var products []productModel.ProductModel
	if err := base.Session(&gorm.Session{}).
		Order("created_at DESC, id DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&products).Error; err != nil {
		log.Printf("[ERROR] 상품 목록 조회 실패: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "상품 목록 조회에 실패했습니다")
	}

	return helper.JsonOK(c, "", fiber.Map{
		"total":    total,
		"products": products,
	})
}

/* ===================== UPDATE ===================== */
// PUT /api/admin/products/:id
func (h *ProductController) Update(c *fiber.Ctx) error {
	m, err := h.findLiveProduct(c)
	if err != nil {
		return err
	}

	var req productDTO.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "요청 본문이 올바르지 않습니다")
	}
	if err := validateProduct.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "입력값이 올바르지 않습니다")
	}

	req.ApplyToModel(m)
	if err := h.DB.Save(m).Error; err != nil {
		log.Printf("[ERROR] 상품 수정 실패: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "상품 수정에 실패했습니다")
	}

	return helper.JsonUpdated(c, "상품이 수정되었습니다", m)
}

/* ===================== DELETE ===================== */
// DELETE /api/admin/products/:id (soft delete)
func (h *ProductController) Delete(c *fiber.Ctx) error {
	m, err := h.findLiveProduct(c)
	if err != nil {
		return err
	}
	if err := h.DB.Delete(m).Error; err != nil {
		log.Printf("[ERROR] 상품 삭제 실패: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "상품 삭제에 실패했습니다")
	}
	return helper.JsonDeleted(c, "상품이 삭제되었습니다", fiber.Map{"id": m.ID})
}

func (h *ProductController) findLiveProduct(c *fiber.Ctx) (*productModel.ProductModel, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Params("id")), 10, 64)
	if err != nil || id <= 0 {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "상품 ID가 올바르지 않습니다")
	}
	var m productModel.ProductModel
	if err := h.DB.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "상품을 찾을 수 없습니다")
		}
		log.Printf("[ERROR] 상품 조회 실패: %v", err)
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "상품 조회에 실패했습니다")
	}
	return &m, nil
}
