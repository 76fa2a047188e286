// file: internals/features/users/controller/auth_controller.go
package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"unisize_backend/internals/configs"
	userDTO "unisize_backend/internals/features/users/dto"
	userModel "unisize_backend/internals/features/users/model"
	helper "unisize_backend/internals/helpers"
)

type AuthController struct{ DB *gorm.DB }

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

var validateAuth = validator.New()

/* ===================== REGISTER ===================== */
// POST /api/auth/register — 직원 가입 (관리자 승인 전까지 비활성)
func (h *AuthController) Register(c *fiber.Ctx) error {
	var req userDTO.RegisterStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "요청 본문이 올바르지 않습니다")
	}
	if err := validateAuth.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "입력값이 올바르지 않습니다")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[ERROR] 비밀번호 해시 실패: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "가입 처리에 실패했습니다")
	}

	m := req.ToModel(string(hashed))
	if err := h.DB.Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "이미 등록된 사번입니다")
		}
		log.Printf("[ERROR] 직원 가입 실패: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "가입 처리에 실패했습니다")
	}

	return helper.JsonCreated(c, "가입이 접수되었습니다. 관리자 승인 후 이용할 수 있습니다.", fiber.Map{
		"id":          m.ID,
		"employee_id": m.EmployeeID,
		"is_active":   m.IsActive,
	})
}

/* ===================== LOGIN ===================== */
// POST /api/auth/login
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req userDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "요청 본문이 올바르지 않습니다")
	}
	if err := validateAuth.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "사번과 비밀번호를 입력해주세요")
	}

	var u userModel.UserModel
	if err := h.DB.Where("employee_id = ?", req.EmployeeID).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "사번 또는 비밀번호가 올바르지 않습니다")
		}
		log.Printf("[ERROR] 로그인 조회 실패: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "로그인에 실패했습니다")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "사번 또는 비밀번호가 올바르지 않습니다")
	}

	if !u.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "관리자 승인 대기 중인 계정입니다")
	}

	token, err := issueToken(&u)
	if err != nil {
		log.Printf("[ERROR] 토큰 발급 실패: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "로그인에 실패했습니다")
	}

	return helper.JsonOK(c, "로그인 되었습니다", userDTO.LoginResponse{
		Token:        token,
		EmployeeID:   u.EmployeeID,
		EmployeeName: u.EmployeeName,
		Role:         u.Role,
	})
}

func issueToken(u *userModel.UserModel) (string, error) {
	claims := jwt.MapClaims{
		"user_id": u.ID,
		"role":    u.Role,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(12 * time.Hour).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(configs.JWTSecret))
}
