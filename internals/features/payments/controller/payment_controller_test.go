package controller_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"unisize_backend/internals/constants"
	orderModel "unisize_backend/internals/features/orders/model"
	paymentCtl "unisize_backend/internals/features/payments/controller"
	paymentModel "unisize_backend/internals/features/payments/model"
)

func setupPaymentApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	// 인메모리 sqlite는 커넥션마다 DB가 분리되므로 풀을 1로 고정
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&orderModel.OrderModel{}, &paymentModel.PaymentModel{}))

	app := fiber.New()
	ctl := paymentCtl.NewPaymentController(db)
	app.Post("/api/staff/orders/:id/payments", ctl.Create)
	app.Get("/api/staff/orders/:id/payments", ctl.ListByOrder)
	return app, db
}

func seedPayableOrder(t *testing.T, db *gorm.DB, status string, total int64) *orderModel.OrderModel {
	t.Helper()
	o := &orderModel.OrderModel{
		OrderNumber: orderModel.NewOrderNumber(time.Now()),
		StudentID:   1,
		Status:      status,
		TotalAmount: total,
		OrderDate:   time.Now(),
	}
	require.NoError(t, db.Create(o).Error)
	return o
}

func payJSON(t *testing.T, app *fiber.App, path string, payload any, out any) int {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if out != nil {
		require.NoError(t, json.Unmarshal(body, out), "body: %s", string(body))
	}
	return resp.StatusCode
}

type paymentCreateBody struct {
	Data struct {
		Payment     paymentModel.PaymentModel `json:"payment"`
		OrderStatus string                    `json:"order_status"`
	} `json:"data"`
}

func TestCreatePayment_PartialThenFullSettlement(t *testing.T) {
	app, db := setupPaymentApp(t)
	o := seedPayableOrder(t, db, constants.OrderStatusConfirmed, 196000)

	// 부분 결제: 주문은 확정 상태를 유지
	var first paymentCreateBody
	code := payJSON(t, app, fmt.Sprintf("/api/staff/orders/%d/payments", o.ID),
		fiber.Map{"amount": 100000, "method": "card"}, &first)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, constants.OrderStatusConfirmed, first.Data.OrderStatus)
	assert.NotNil(t, first.Data.Payment.PaidAt)

	// 잔액 결제: 완납 → 완료 전환
	var second paymentCreateBody
	code = payJSON(t, app, fmt.Sprintf("/api/staff/orders/%d/payments", o.ID),
		fiber.Map{"amount": 96000, "method": "transfer"}, &second)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, constants.OrderStatusCompleted, second.Data.OrderStatus)

	var got orderModel.OrderModel
	require.NoError(t, db.First(&got, o.ID).Error)
	assert.Equal(t, constants.OrderStatusCompleted, got.Status)
}

func TestCreatePayment_CancelledOrderRejected(t *testing.T) {
	app, db := setupPaymentApp(t)
	o := seedPayableOrder(t, db, constants.OrderStatusCancelled, 100000)

	code := payJSON(t, app, fmt.Sprintf("/api/staff/orders/%d/payments", o.ID),
		fiber.Map{"amount": 100000, "method": "cash"}, nil)
	assert.Equal(t, http.StatusBadRequest, code)

	// 없는 주문 → 404, 금액/수단 검증 → 400
	assert.Equal(t, http.StatusNotFound, payJSON(t, app, "/api/staff/orders/999/payments",
		fiber.Map{"amount": 100000, "method": "cash"}, nil))
	assert.Equal(t, http.StatusBadRequest, payJSON(t, app, fmt.Sprintf("/api/staff/orders/%d/payments", o.ID),
		fiber.Map{"amount": 0, "method": "cash"}, nil))
}

func TestListPayments_ByOrder(t *testing.T) {
	app, db := setupPaymentApp(t)
	o := seedPayableOrder(t, db, constants.OrderStatusConfirmed, 500000)

	require.Equal(t, http.StatusCreated, payJSON(t, app, fmt.Sprintf("/api/staff/orders/%d/payments", o.ID),
		fiber.Map{"amount": 200000, "method": "card", "payer_name": "보호자"}, nil))
	require.Equal(t, http.StatusCreated, payJSON(t, app, fmt.Sprintf("/api/staff/orders/%d/payments", o.ID),
		fiber.Map{"amount": 100000, "method": "cash"}, nil))

	var body struct {
		Data struct {
			Total    int                         `json:"total"`
			Payments []paymentModel.PaymentModel `json:"payments"`
		} `json:"data"`
	}
	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/staff/orders/%d/payments", o.ID), nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, 2, body.Data.Total)
	require.Len(t, body.Data.Payments, 2)
	assert.Equal(t, int64(200000), body.Data.Payments[0].Amount) // paid_at ASC
}
