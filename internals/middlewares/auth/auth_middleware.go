// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"unisize_backend/internals/configs"
	userModel "unisize_backend/internals/features/users/model"
)

// AuthMiddleware는 Bearer 토큰을 검증하고 user_id/role을 Locals에 저장한다.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return helperUnauthorized(c, err.Error())
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET 미설정")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		}); err != nil {
			log.Println("[ERROR] 토큰 파싱 실패:", err)
			return helperUnauthorized(c, "유효하지 않은 토큰입니다")
		}

		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			return helperUnauthorized(c, "토큰이 만료되었습니다")
		}

		userID, err := extractUserID(claims)
		if err != nil {
			return helperUnauthorized(c, "토큰에 user_id가 없습니다")
		}

		// 계정 활성 상태 확인 (승인 전/비활성 계정 차단)
		var u userModel.UserModel
		if err := db.Select("id", "role", "is_active").First(&u, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helperUnauthorized(c, "사용자를 찾을 수 없습니다")
			}
			log.Println("[ERROR] 사용자 조회 실패:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}
		if !u.IsActive {
			return fiber.NewError(fiber.StatusForbidden, "승인 대기 중이거나 비활성화된 계정입니다")
		}

		c.Locals("user_id", userID)
		if role, ok := claims["role"].(string); ok {
			c.Locals("role", role)
		} else {
			c.Locals("role", u.Role)
		}

		return c.Next()
	}
}

func helperUnauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"success": false,
		"error":   "unauthorized",
		"message": msg,
	})
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	h := strings.TrimSpace(c.Get("Authorization"))
	if h == "" {
		return "", errors.New("Authorization 헤더가 없습니다")
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", errors.New("Bearer 토큰 형식이 아닙니다")
	}
	return strings.TrimSpace(parts[1]), nil
}

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expRaw, ok := claims["exp"]
	if !ok {
		return errors.New("exp 클레임 없음")
	}
	expFloat, ok := expRaw.(float64)
	if !ok {
		return errors.New("exp 클레임 형식 오류")
	}
	exp := time.Unix(int64(expFloat), 0)
	if time.Now().After(exp.Add(leeway)) {
		return errors.New("토큰 만료")
	}
	return nil
}

func extractUserID(claims jwt.MapClaims) (int64, error) {
	switch v := claims["user_id"].(type) {
	case float64:
		return int64(v), nil
	case int64:
		return v, nil
	default:
		return 0, errors.New("user_id 클레임 없음")
	}
}
