package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentCtl "unisize_backend/internals/features/students/controller"
	"unisize_backend/internals/middlewares"
)

// 공개 자가등록 라우트: /api/students
func PublicStudentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := studentCtl.NewStudentController(db)

	r.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register)
}

// 직원 콘솔 라우트: /api/staff 하위
func StaffStudentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := studentCtl.NewStudentController(db)

	students := r.Group("/students")
	students.Get("/", ctl.List)
	students.Get("/:id", ctl.GetByID)
	students.Put("/:id", ctl.Update)
}

// 관리자 라우트: /api/admin 하위
func AdminStudentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := studentCtl.NewStudentController(db)

	students := r.Group("/students")
	students.Delete("/:id", ctl.Delete)
}
