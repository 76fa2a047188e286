package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	orderCtl "unisize_backend/internals/features/orders/controller"
)

// 관리자 주문 라우트: /api/admin 하위
func AdminOrderRoutes(r fiber.Router, db *gorm.DB) {
	ctl := orderCtl.NewAdminOrderController(db)

	orders := r.Group("/orders")
	orders.Get("/confirmed", ctl.GetConfirmedOrders)
	orders.Get("/payment-pending", ctl.GetPaymentPendingOrders)
	orders.Get("/:id", ctl.GetOrderByID)
	orders.Put("/:id/status", ctl.UpdateOrderStatus)
}

// 직원 주문 라우트: /api/staff 하위
func StaffOrderRoutes(r fiber.Router, db *gorm.DB) {
	ctl := orderCtl.NewStaffOrderController(db)

	orders := r.Group("/orders")
	orders.Post("/:id/items", ctl.AddItems)
	orders.Post("/:id/confirm", ctl.Confirm)
}
