package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMw "unisize_backend/internals/middlewares/logger"
)

// SetupMiddlewares는 공통 미들웨어 체인을 앱에 장착한다
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(loggerMw.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
