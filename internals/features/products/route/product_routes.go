package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	productCtl "unisize_backend/internals/features/products/controller"
)

// 관리자 상품 카탈로그 라우트: /api/admin 하위
func AdminProductRoutes(r fiber.Router, db *gorm.DB) {
	ctl := productCtl.NewProductController(db)

	products := r.Group("/products")
	products.Get("/", ctl.List)
	products.Post("/", ctl.Create)
	products.Put("/:id", ctl.Update)
	products.Delete("/:id", ctl.Delete)
}
