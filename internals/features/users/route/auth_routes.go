package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userCtl "unisize_backend/internals/features/users/controller"
	"unisize_backend/internals/middlewares"
)

// 공개 인증 라우트: /api/auth
func AuthRoutes(r fiber.Router, db *gorm.DB) {
	ctl := userCtl.NewAuthController(db)

	r.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register)
	r.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
}
