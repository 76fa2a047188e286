// file: internals/features/users/controller/staff_admin_controller.go
package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userDTO "unisize_backend/internals/features/users/dto"
	userModel "unisize_backend/internals/features/users/model"
	helper "unisize_backend/internals/helpers"
)

type StaffAdminController struct{ DB *gorm.DB }

func NewStaffAdminController(db *gorm.DB) *StaffAdminController {
	return &StaffAdminController{DB: db}
}

func (h *StaffAdminController) listByActive(c *fiber.Ctx, isActive bool) error {
	p := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&userModel.UserModel{}).Where("is_active = ?", isActive)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		log.Printf("[ERROR] 직원 수 조회 실패: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "직원 목록 조회에 실패했습니다")
	}

	var users []userModel.UserModel
	if err := base.Session(&gorm.Session{}).
		Order("created_at DESC, id DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&users).Error; err != nil {
		log.Printf("[ERROR] 직원 목록 조회 실패: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "직원 목록 조회에 실패했습니다")
	}

	items := make([]userDTO.StaffSummary, 0, len(users))
	for i := range users {
		items = append(items, userDTO.NewStaffSummary(&users[i]))
	}

	return helper.JsonOK(c, "", fiber.Map{
		"total": total,
		"users": items,
	})
}

/* ===================== LIST ===================== */
// GET /api/admin/staff/pending?page=&limit= — 승인 대기
func (h *StaffAdminController) ListPending(c *fiber.Ctx) error {
	return h.listByActive(c, false)
}

// GET /api/admin/staff?page=&limit= — 승인 완료
func (h *StaffAdminController) ListApproved(c *fiber.Ctx) error {
	return h.listByActive(c, true)
}

/* ===================== APPROVE ===================== */
// POST /api/admin/staff/approve {user_ids:[...]}
// is_active=false → true의 멱등 전환. 이미 승인/삭제/없는 id는 count에서 빠질 뿐 에러가 아니다.
func (h *StaffAdminController) Approve(c *fiber.Ctx) error {
	var req userDTO.ApproveStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "요청 본문이 올바르지 않습니다")
	}
	if len(req.UserIDs) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "user_ids는 비어 있지 않은 목록이어야 합니다")
	}

	res := h.DB.Model(&userModel.UserModel{}).
		Where("id IN ? AND is_active = ?", req.UserIDs, false).
		Updates(map[string]interface{}{
			"is_active":  true,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		log.Printf("[ERROR] 직원 승인 실패: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "직원 승인에 실패했습니다")
	}

	return helper.JsonOK(c, "직원 승인이 완료되었습니다", fiber.Map{
		"approved_count": res.RowsAffected,
	})
}
