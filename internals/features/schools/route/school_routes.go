package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schoolCtl "unisize_backend/internals/features/schools/controller"
)

// 관리자 학교 카탈로그 라우트: /api/admin 하위
func AdminSchoolRoutes(r fiber.Router, db *gorm.DB) {
	ctl := schoolCtl.NewSchoolController(db)

	schools := r.Group("/schools")
	schools.Get("/", ctl.List)
	schools.Post("/", ctl.Create)
	schools.Put("/:id", ctl.Update)
	schools.Delete("/:id", ctl.Delete)
}
