package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentCtl "unisize_backend/internals/features/payments/controller"
)

// 직원 결제 라우트: /api/staff 하위
func StaffPaymentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := paymentCtl.NewPaymentController(db)

	r.Post("/orders/:id/payments", ctl.Create)
	r.Get("/orders/:id/payments", ctl.ListByOrder)
}
