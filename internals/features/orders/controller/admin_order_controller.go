// file: internals/features/orders/controller/admin_order_controller.go
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
	measurementModel "unisize_backend/internals/features/measurements/model"
	orderDTO "unisize_backend/internals/features/orders/dto"
	orderModel "unisize_backend/internals/features/orders/model"
	paymentModel "unisize_backend/internals/features/payments/model"
	productModel "unisize_backend/internals/features/products/model"
	studentModel "unisize_backend/internals/features/students/model"
	helper "unisize_backend/internals/helpers"
)

type AdminOrderController struct{ DB *gorm.DB }

func NewAdminOrderController(db *gorm.DB) *AdminOrderController {
	return &AdminOrderController{DB: db}
}

var validateAdminOrder = validator.New()

/* ===================== 공용 조인 ===================== */

// orderPage: 상태로 필터된 주문 한 페이지 + 학생/최근 완료 측정 lookup.
// 확정 목록과 결제 대기 목록이 같은 비즈니스 규칙을 타도록 반드시 이 경로를 공유한다.
type orderPage struct {
	Orders     []orderModel.OrderModel
	Total      int64
	Students   map[int64]studentModel.StudentModel
	MeasuredAt map[int64]time.Time
}

// pageOrdersByStatus는 주문 페이지를 조회하고 2차 lookup을 맵으로 reduce한다.
// 1차 쿼리 실패만 에러로 전파하고, 2차 lookup 실패는 빈 맵으로 degrade한다.
func (h *AdminOrderController) pageOrdersByStatus(status string, p helper.Paging) (*orderPage, error) {
	out := &orderPage{
		Students:   map[int64]studentModel.StudentModel{},
		MeasuredAt: map[int64]time.Time{},
	}

	base := h.DB.Model(&orderModel.OrderModel{}).Where("status = ?", status)

	if err := base.Session(&gorm.Session{}).Count(&out.Total).Error; err != nil {
		return nil, err
	}

	// 확정/대기 큐는 접수 순서대로 처리하므로 오래된 주문부터 (order_date ASC)
	if err := base.Session(&gorm.Session{}).
		Order("order_date ASC, id ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&out.Orders).Error; err != nil {
		return nil, err
	}

	if len(out.Orders) == 0 {
		return out, nil
	}

	// 페이지에 등장한 학생 id 집합
	idSet := map[int64]struct{}{}
	ids := make([]int64, 0, len(out.Orders))
	for _, o := range out.Orders {
		if _, ok := idSet[o.StudentID]; !ok {
			idSet[o.StudentID] = struct{}{}
			ids = append(ids, o.StudentID)
		}
	}

	// 학생 일괄 조회 (soft delete는 ORM이 걸러줌)
	var students []studentModel.StudentModel
	if err := h.DB.Where("id IN ?", ids).Find(&students).Error; err != nil {
		log.Printf("[WARN] 학생 일괄 조회 실패: %v", err)
	} else {
		for _, s := range students {
			out.Students[s.ID] = s
		}
	}

	// 측정 조회는 살아있는 학생에만 건다. 학생이 사라진 행은 measured_at도 null이어야 한다.
	liveIDs := make([]int64, 0, len(out.Students))
	for id := range out.Students {
		liveIDs = append(liveIDs, id)
	}
	if len(liveIDs) == 0 {
		return out, nil
	}

	// 완료 측정 일괄 조회: measured_at DESC, 동률은 id DESC로 결정적 정렬
	var ms []measurementModel.MeasurementModel
	if err := h.DB.
		Where("student_id IN ? AND status = ? AND measured_at IS NOT NULL", liveIDs, constants.MeasurementStatusCompleted).
		Order("measured_at DESC, id DESC").
		Find(&ms).Error; err != nil {
		log.Printf("[WARN] 측정 일괄 조회 실패: %v", err)
	} else {
		// 내림차순이므로 학생별 첫 항목이 최근 완료 측정
		for _, m := range ms {
			if _, ok := out.MeasuredAt[m.StudentID]; ok {
				continue
			}
			if m.MeasuredAt != nil {
				out.MeasuredAt[m.StudentID] = *m.MeasuredAt
			}
		}
	}

	return out, nil
}

func (h *AdminOrderController) summaryParts(page *orderPage, o *orderModel.OrderModel) (*studentModel.StudentModel, *time.Time) {
	var s *studentModel.StudentModel
	if st, ok := page.Students[o.StudentID]; ok {
		cp := st
		s = &cp
	}
	var measuredAt *time.Time
	if t, ok := page.MeasuredAt[o.StudentID]; ok {
		cp := t
		measuredAt = &cp
	}
	return s, measuredAt
}

/* ===================== LIST (확정 주문) ===================== */
// GET /api/admin/orders/confirmed?page=&limit=
func (h *AdminOrderController) GetConfirmedOrders(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	page, err := h.pageOrdersByStatus(constants.OrderStatusConfirmed, p)
	if err != nil {
		log.Printf("[ERROR] 확정 주문 조회 실패: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "주문 목록 조회에 실패했습니다")
	}

	items := make([]orderDTO.OrderSummary, 0, len(page.Orders))
	for i := range page.Orders {
		o := &page.Orders[i]
		s, measuredAt := h.summaryParts(page, o)
		items = append(items, orderDTO.NewOrderSummary(o, s, measuredAt))
	}

	return helper.JsonOK(c, "", fiber.Map{
		"total":  page.Total,
		"orders": items,
	})
}

/* ===================== LIST (결제 대기) ===================== */
// GET /api/admin/orders/payment-pending?page=&limit=
func (h *AdminOrderController) GetPaymentPendingOrders(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	page, err := h.pageOrdersByStatus(constants.OrderStatusPaymentPending, p)
	if err != nil {
		log.Printf("[ERROR] 결제 대기 주문 조회 실패: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "주문 목록 조회에 실패했습니다")
	}

	items := make([]orderDTO.PaymentPendingSummary, 0, len(page.Orders))
	for i := range page.Orders {
		o := &page.Orders[i]
		s, measuredAt := h.summaryParts(page, o)
		items = append(items, orderDTO.NewPaymentPendingSummary(o, s, measuredAt))
	}

	return helper.JsonOK(c, "", fiber.Map{
		"total":  page.Total,
		"orders": items,
	})
}

/* ===================== DETAIL ===================== */
// GET /api/admin/orders/:id
func (h *AdminOrderController) GetOrderByID(c *fiber.Ctx) error {
	orderID, err := strconv.ParseInt(strings.TrimSpace(c.Params("id")), 10, 64)
	if err != nil || orderID <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "주문 ID가 올바르지 않습니다")
	}

	var o orderModel.OrderModel
	if err := h.DB.First(&o, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "주문을 찾을 수 없습니다")
		}
		log.Printf("[ERROR] 주문 상세 조회 실패: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "주문 조회에 실패했습니다")
	}

	resp := orderDTO.OrderDetailResponse{
		Order:    &o,
		Items:    []orderDTO.OrderItemDetail{},
		Payments: []paymentModel.PaymentModel{},
	}

	// 학생: 없거나 삭제되었으면 null로 degrade
	var s studentModel.StudentModel
	if err := h.DB.First(&s, o.StudentID).Error; err == nil {
		resp.Student = &s

		// 최근 완료 측정 (학생이 살아있을 때만)
		var m measurementModel.MeasurementModel
		if err := h.DB.
			Where("student_id = ? AND status = ? AND measured_at IS NOT NULL", o.StudentID, constants.MeasurementStatusCompleted).
			Order("measured_at DESC, id DESC").
			First(&m).Error; err == nil {
			resp.Measurement = &m
		}
	}

	// 품목 + 상품 resolve (map lookup)
	var items []orderModel.OrderItemModel
	if err := h.DB.Where("order_id = ?", o.ID).Order("id ASC").Find(&items).Error; err == nil && len(items) > 0 {
		pidSet := map[int64]struct{}{}
		pids := make([]int64, 0, len(items))
		for _, it := range items {
			if _, ok := pidSet[it.ProductID]; !ok {
				pidSet[it.ProductID] = struct{}{}
				pids = append(pids, it.ProductID)
			}
		}
		productsByID := map[int64]productModel.ProductModel{}
		var products []productModel.ProductModel
		if err := h.DB.Where("id IN ?", pids).Find(&products).Error; err == nil {
			for _, pr := range products {
				productsByID[pr.ID] = pr
			}
		}
		for _, it := range items {
			d := orderDTO.OrderItemDetail{
				ID:             it.ID,
				ProductID:      it.ProductID,
				Size:           it.Size,
				Quantity:       it.Quantity,
				UnitPrice:      it.UnitPrice,
				Subtotal:       it.Subtotal,
				Options:        it.Options,
				DeliveryStatus: it.DeliveryStatus,
			}
			if pr, ok := productsByID[it.ProductID]; ok {
				d.ProductName = pr.Name
				d.Category = pr.Category
				d.Season = pr.Season
			}
			resp.Items = append(resp.Items, d)
		}
	}

	// 결제 내역
	var pays []paymentModel.PaymentModel
	if err := h.DB.Where("order_id = ?", o.ID).Order("paid_at ASC, id ASC").Find(&pays).Error; err == nil {
		resp.Payments = pays
	}

	return helper.JsonOK(c, "", resp)
}

/* ===================== STATUS OVERRIDE ===================== */
// PUT /api/admin/orders/:id/status (취소 포함 관리자 수동 변경)
func (h *AdminOrderController) UpdateOrderStatus(c *fiber.Ctx) error {
	orderID, err := strconv.ParseInt(strings.TrimSpace(c.Params("id")), 10, 64)
	if err != nil || orderID <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "주문 ID가 올바르지 않습니다")
	}

	var req orderDTO.UpdateOrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "요청 본문이 올바르지 않습니다")
	}
	if err := validateAdminOrder.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "status 값이 올바르지 않습니다")
	}

	var o orderModel.OrderModel
	if err := h.DB.First(&o, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "주문을 찾을 수 없습니다")
		}
		log.Printf("[ERROR] 주문 조회 실패: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "주문 조회에 실패했습니다")
	}

	if err := h.DB.Model(&o).Updates(map[string]interface{}{
		"status":     req.Status,
		"updated_at": time.Now(),
	}).Error; err != nil {
		log.Printf("[ERROR] 주문 상태 변경 실패: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "주문 상태 변경에 실패했습니다")
	}

	return helper.JsonUpdated(c, "주문 상태가 변경되었습니다", fiber.Map{
		"id":     o.ID,
		"status": req.Status,
	})
}
