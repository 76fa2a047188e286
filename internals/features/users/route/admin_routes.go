package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userCtl "unisize_backend/internals/features/users/controller"
)

// 관리자 직원 관리 라우트: /api/admin 하위 (auth + admin 가드는 상위에서 장착)
func StaffAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := userCtl.NewStaffAdminController(db)

	staff := r.Group("/staff")
	staff.Get("/", ctl.ListApproved)
	staff.Get("/pending", ctl.ListPending)
	staff.Post("/approve", ctl.Approve)
}
