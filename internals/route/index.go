package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	measurementRoutes "unisize_backend/internals/features/measurements/route"
	orderRoutes "unisize_backend/internals/features/orders/route"
	paymentRoutes "unisize_backend/internals/features/payments/route"
	productRoutes "unisize_backend/internals/features/products/route"
	schoolRoutes "unisize_backend/internals/features/schools/route"
	studentRoutes "unisize_backend/internals/features/students/route"
	userRoutes "unisize_backend/internals/features/users/route"
	authMw "unisize_backend/internals/middlewares/auth"
)

// SetupRoutes는 전체 API 표면을 조립한다.
// /api/auth, /api/students(공개) → 비인증
// /api/staff → 인증 + staff/admin
// /api/admin → 인증 + admin
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	// ===== 공개 =====
	userRoutes.AuthRoutes(api.Group("/auth"), db)
	studentRoutes.PublicStudentRoutes(api.Group("/students"), db)

	// ===== 직원 콘솔 =====
	staff := api.Group("/staff", authMw.AuthMiddleware(db), authMw.StaffOrAdmin())
	studentRoutes.StaffStudentRoutes(staff, db)
	measurementRoutes.StaffMeasurementRoutes(staff, db)
	orderRoutes.StaffOrderRoutes(staff, db)
	paymentRoutes.StaffPaymentRoutes(staff, db)

	// ===== 관리자 콘솔 =====
	admin := api.Group("/admin", authMw.AuthMiddleware(db), authMw.AdminOnly())
	orderRoutes.AdminOrderRoutes(admin, db)
	userRoutes.StaffAdminRoutes(admin, db)
	productRoutes.AdminProductRoutes(admin, db)
	schoolRoutes.AdminSchoolRoutes(admin, db)
	studentRoutes.AdminStudentRoutes(admin, db)
}
