// file: internals/helpers/json_response.go
package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Paging resolver (query → page/limit/offset)
=================================*/

type Paging struct {
	Page   int
	Limit  int
	Offset int
}

// ResolvePaging은 ?page= & ?limit= 쿼리를 정규화한다.
// - defaultLimit: 파라미터가 없거나 잘못된 경우의 기본값
// - maxLimit: limit 상한 (0 = 무제한)
func ResolvePaging(c *fiber.Ctx, defaultLimit, maxLimit int) Paging {
	page, _ := strconv.Atoi(strings.TrimSpace(c.Query("page", "1")))
	if page < 1 {
		page = 1
	}

	limit, _ := strconv.Atoi(strings.TrimSpace(c.Query("limit", strconv.Itoa(defaultLimit))))
	if limit <= 0 {
		limit = defaultLimit
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}

	return Paging{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

/* ===============================
   Error helpers (standard shape)
   {success:false, error, message?}
=================================*/

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// JsonError: 일반 에러 응답
func JsonError(c *fiber.Ctx, status int, errMsg string) error {
	if strings.TrimSpace(errMsg) == "" {
		errMsg = fiber.ErrInternalServerError.Message
	}
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	return c.Status(status).JSON(ErrorResponse{
		Success: false,
		Error:   errMsg,
	})
}

// JsonErrorWithMessage: error 구분값 + 사용자용 메시지
func JsonErrorWithMessage(c *fiber.Ctx, status int, errMsg, message string) error {
	return c.Status(status).JSON(ErrorResponse{
		Success: false,
		Error:   errMsg,
		Message: message,
	})
}

/* ===============================
   JSON responses (standard success)
   {success:true, data, message?}
=================================*/

// JsonOK: 조회/목록 성공 응답 (GET)
func JsonOK(c *fiber.Ctx, message string, data any) error {
	body := fiber.Map{
		"success": true,
		"data":    data,
	}
	if strings.TrimSpace(message) != "" {
		body["message"] = message
	}
	return c.Status(fiber.StatusOK).JSON(body)
}

// JsonCreated: 생성 성공 응답 (POST)
func JsonCreated(c *fiber.Ctx, message string, data any) error {
	body := fiber.Map{
		"success": true,
		"data":    data,
	}
	if strings.TrimSpace(message) != "" {
		body["message"] = message
	}
	return c.Status(fiber.StatusCreated).JSON(body)
}

// JsonUpdated: 수정 성공 응답 (PUT/PATCH)
func JsonUpdated(c *fiber.Ctx, message string, data any) error {
	return JsonOK(c, message, data)
}

// JsonDeleted: 삭제 성공 응답 (DELETE)
func JsonDeleted(c *fiber.Ctx, message string, data any) error {
	return JsonOK(c, message, data)
}
