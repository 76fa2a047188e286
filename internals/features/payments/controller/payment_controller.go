// file: internals/features/payments/controller/payment_controller.go
package controller

import (
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"unisize_backend/internals/constants"
	orderModel "unisize_backend/internals/features/orders/model"
	paymentDTO "unisize_backend/internals/features/payments/dto"
	paymentModel "unisize_backend/internals/features/payments/model"
	helper "unisize_backend/internals/helpers"
)

type PaymentController struct{ DB *gorm.DB }

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

var validatePayment = validator.New()

/* ===================== CREATE ===================== */
// POST /api/staff/orders/:id/payments
// 결제를 기록하고, 확정 주문이 완납되면 완료로 전환한다.
func (h *PaymentController) Create(c *fiber.Ctx) error {
	orderID, err := strconv.ParseInt(strings.TrimSpace(c.Params("id")), 10, 64)
	if err != nil || orderID <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "주문 ID가 올바르지 않습니다")
	}

	var o orderModel.OrderModel
	if err := h.DB.First(&o, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "주문을 찾을 수 없습니다")
		}
		log.Printf("[ERROR] 주문 조회 실패: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "결제 기록에 실패했습니다")
	}
	if o.Status == constants.OrderStatusCancelled {
		return helper.JsonError(c, fiber.StatusBadRequest, "취소된 주문에는 결제를 기록할 수 없습니다")
	}

	var req paymentDTO.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "요청 본문이 올바르지 않습니다")
	}
	if err := validatePayment.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "입력값이 올바르지 않습니다")
	}

	now := time.Now()
	m := req.ToModel(o.ID, now)
	if err := h.DB.Create(m).Error; err != nil {
		log.Printf("[ERROR] 결제 기록 실패: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "결제 기록에 실패했습니다")
	}

	// 완납 여부 확인 (paid 상태의 결제 합계 ≥ 정산가)
	newStatus := o.Status
	if o.Status == constants.OrderStatusConfirmed && o.TotalAmount > 0 {
		var paid int64
		if err := h.DB.Model(&paymentModel.PaymentModel{}).
			Where("order_id = ? AND status = ?", o.ID, constants.PaymentStatusPaid).
			Select("COALESCE(SUM(amount), 0)").
			Scan(&paid).Error; err != nil {
			log.Printf("[WARN] 결제 합계 계산 실패: %v", err)
		} else if paid >= o.TotalAmount {
			if err := h.DB.Model(&orderModel.OrderModel{}).
				Where("id = ?", o.ID).
				Updates(map[string]interface{}{
					"status":     constants.OrderStatusCompleted,
					"updated_at": now,
				}).Error; err != nil {
				log.Printf("[WARN] 완납 전환 실패: %v", err)
			} else {
				newStatus = constants.OrderStatusCompleted
			}
		}
	}

	return helper.JsonCreated(c, "결제가 기록되었습니다", fiber.Map{
		"payment":      m,
		"order_status": newStatus,
	})
}

/* ===================== LIST ===================== */
// GET /api/staff/orders/:id/payments
func (h *PaymentController) ListByOrder(c *fiber.Ctx) error {
	orderID, err := strconv.ParseInt(strings.TrimSpace(c.Params("id")), 10, 64)
	if err != nil || orderID <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "주문 ID가 올바르지 않습니다")
	}

	var pays []paymentModel.PaymentModel
	if err := h.DB.
		Where("order_id = ?", orderID).
		Order("paid_at ASC, id ASC").
		Find(&pays).Error; err != nil {
		log.Printf("[ERROR] 결제 내역 조회 실패: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "결제 내역 조회에 실패했습니다")
	}

	return helper.JsonOK(c, "", fiber.Map{
		"total":    len(pays),
		"payments": pays,
	})
}
