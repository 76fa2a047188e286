package auth

import (
	"github.com/gofiber/fiber/v2"

	"unisize_backend/internals/constants"
)

// OnlyRoles는 허용된 역할만 통과시킨다. AuthMiddleware 뒤에 장착할 것.
func OnlyRoles(allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		for _, a := range allowed {
			if role == a {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"error":   "forbidden",
			"message": "접근 권한이 없습니다",
		})
	}
}

// AdminOnly: 관리자 전용
func AdminOnly() fiber.Handler {
	return OnlyRoles(constants.RoleAdmin)
}

// StaffOrAdmin: 직원 콘솔 (관리자 포함)
func StaffOrAdmin() fiber.Handler {
	return OnlyRoles(constants.RoleStaff, constants.RoleAdmin)
}
