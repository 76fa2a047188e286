package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	measurementCtl "unisize_backend/internals/features/measurements/controller"
)

// 직원 측정 라우트: /api/staff 하위
func StaffMeasurementRoutes(r fiber.Router, db *gorm.DB) {
	ctl := measurementCtl.NewMeasurementController(db)

	m := r.Group("/measurements")
	m.Post("/", ctl.Create)
	m.Put("/:id", ctl.Update)
	m.Post("/:id/complete", ctl.Complete)

	// 학생별 측정 이력
	r.Get("/students/:id/measurements", ctl.ListByStudent)
}
