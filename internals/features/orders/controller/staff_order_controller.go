// file: internals/features/orders/controller/staff_order_controller.go
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
	orderDTO "unisize_backend/internals/features/orders/dto"
	orderModel "unisize_backend/internals/features/orders/model"
	productModel "unisize_backend/internals/features/products/model"
	helper "unisize_backend/internals/helpers"
)

type StaffOrderController struct{ DB *gorm.DB }

func NewStaffOrderController(db *gorm.DB) *StaffOrderController {
	return &StaffOrderController{DB: db}
}

var validateStaffOrder = validator.New()

func (h *StaffOrderController) findLiveOrder(c *fiber.Ctx) (*orderModel.OrderModel, error) {
	orderID, err := strconv.ParseInt(strings.TrimSpace(c.Params("id")), 10, 64)
	if err != nil || orderID <= 0 {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "주문 ID가 올바르지 않습니다")
	}
	var o orderModel.OrderModel
	if err := h.DB.First(&o, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "주문을 찾을 수 없습니다")
		}
		log.Printf("[ERROR] 주문 조회 실패: %v", err)
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "주문 조회에 실패했습니다")
	}
	return &o, nil
}

/* ===================== ITEMS ===================== */
// POST /api/staff/orders/:id/items
// 측정 완료된 주문에 품목을 구성하고 견적가를 채운 뒤 결제 대기로 전환한다.
func (h *StaffOrderController) AddItems(c *fiber.Ctx) error {
	o, err := h.findLiveOrder(c)
	if err != nil {
		return err
	}
	if o.Status != constants.OrderStatusMeasured && o.Status != constants.OrderStatusPaymentPending {
		return helper.JsonError(c, fiber.StatusBadRequest, "측정 완료 상태의 주문만 품목을 구성할 수 있습니다")
	}

	var req orderDTO.AddOrderItemsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "요청 본문이 올바르지 않습니다")
	}
	if err := validateStaffOrder.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "items 값이 올바르지 않습니다")
	}

	// 단가는 클라이언트가 아닌 상품 카탈로그에서 resolve
	pidSet := map[int64]struct{}{}
	pids := make([]int64, 0, len(req.Items))
	for _, it := range req.Items {
		if _, ok := pidSet[it.ProductID]; !ok {
			pidSet[it.ProductID] = struct{}{}
			pids = append(pids, it.ProductID)
		}
	}
	var products []productModel.ProductModel
	if err := h.DB.Where("id IN ? AND is_active = ?", pids, true).Find(&products).Error; err != nil {
		log.Printf("[ERROR] 상품 조회 실패: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "상품 조회에 실패했습니다")
	}
	productsByID := map[int64]productModel.ProductModel{}
	for _, p := range products {
		productsByID[p.ID] = p
	}

	rows := make([]orderModel.OrderItemModel, 0, len(req.Items))
	var estimated int64
	for _, it := range req.Items {
		p, ok := productsByID[it.ProductID]
		if !ok {
			return helper.JsonError(c, fiber.StatusBadRequest, "존재하지 않거나 판매 중지된 상품이 포함되어 있습니다")
		}
		subtotal := p.Price * int64(it.Quantity)
		estimated += subtotal
		rows = append(rows, orderModel.OrderItemModel{
			OrderID:        o.ID,
			ProductID:      it.ProductID,
			Size:           strings.TrimSpace(it.Size),
			Quantity:       it.Quantity,
			UnitPrice:      p.Price,
			Subtotal:       subtotal,
			Options:        it.Options,
			DeliveryStatus: "pending",
		})
	}

	tx := h.DB.Begin()
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "트랜잭션 시작에 실패했습니다")
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	// 기존 품목은 소프트 삭제 후 재구성
	if err := tx.Where("order_id = ?", o.ID).Delete(&orderModel.OrderItemModel{}).Error; err != nil {
		tx.Rollback()
		return helper.JsonError(c, fiber.StatusInternalServerError, "기존 품목 정리에 실패했습니다")
	}
	if err := tx.Create(&rows).Error; err != nil {
		tx.Rollback()
		return helper.JsonError(c, fiber.StatusInternalServerError, "품목 저장에 실패했습니다")
	}
	if err := tx.Model(&orderModel.OrderModel{}).
		Where("id = ?", o.ID).
		Updates(map[string]interface{}{
			"estimated_amount": estimated,
			"status":           constants.OrderStatusPaymentPending,
			"updated_at":       time.Now(),
		}).Error; err != nil {
		tx.Rollback()
		return helper.JsonError(c, fiber.StatusInternalServerError, "주문 갱신에 실패했습니다")
	}
	if err := tx.Commit().Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "트랜잭션 커밋에 실패했습니다")
	}

	return helper.JsonUpdated(c, "품목이 구성되었습니다", fiber.Map{
		"order_id":         o.ID,
		"estimated_amount": estimated,
		"status":           constants.OrderStatusPaymentPending,
		"item_count":       len(rows),
	})
}

/* ===================== CONFIRM ===================== */
// POST /api/staff/orders/:id/confirm
// 결제 대기(또는 측정 완료) 주문을 확정하고 품목 소계 합으로 정산가를 확정한다.
func (h *StaffOrderController) Confirm(c *fiber.Ctx) error {
	o, err := h.findLiveOrder(c)
	if err != nil {
		return err
	}
	if o.Status != constants.OrderStatusPaymentPending && o.Status != constants.OrderStatusMeasured {
		return helper.JsonError(c, fiber.StatusBadRequest, "결제 대기 상태의 주문만 확정할 수 있습니다")
	}

	var total int64
	if err := h.DB.Model(&orderModel.OrderItemModel{}).
		Where("order_id = ?", o.ID).
		Select("COALESCE(SUM(subtotal), 0)").
		Scan(&total).Error; err != nil {
		log.Printf("[ERROR] 품목 합계 계산 실패: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "주문 확정에 실패했습니다")
	}
	if total == 0 {
		// 품목 없이 확정하는 경우 견적가를 정산가로 승계
		total = o.EstimatedAmount
	}

	if err := h.DB.Model(&orderModel.OrderModel{}).
		Where("id = ?", o.ID).
		Updates(map[string]interface{}{
			"total_amount": total,
			"status":       constants.OrderStatusConfirmed,
			"updated_at":   time.Now(),
		}).Error; err != nil {
		log.Printf("[ERROR] 주문 확정 실패: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "주문 확정에 실패했습니다")
	}

	return helper.JsonUpdated(c, "주문이 확정되었습니다", fiber.Map{
		"order_id":     o.ID,
		"total_amount": total,
		"status":       constants.OrderStatusConfirmed,
	})
}
