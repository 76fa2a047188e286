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

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"unisize_backend/internals/constants"
	orderCtl "unisize_backend/internals/features/orders/controller"
	orderModel "unisize_backend/internals/features/orders/model"
	productModel "unisize_backend/internals/features/products/model"
)

func setupStaffOrderApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	ctl := orderCtl.NewStaffOrderController(db)
	app.Post("/api/staff/orders/:id/items", ctl.AddItems)
	app.Post("/api/staff/orders/:id/confirm", ctl.Confirm)
	return app
}

func postOrderJSON(t *testing.T, app *fiber.App, path string, payload any, out any) int {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if out != nil {
		require.NoError(t, json.Unmarshal(raw, out), "body: %s", string(raw))
	}
	return resp.StatusCode
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price int64, active bool) *productModel.ProductModel {
	t.Helper()
	p := &productModel.ProductModel{
		Name: name, Category: "자켓", Season: constants.SeasonWinter,
		Gender: "male", Price: price, IsActive: active,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func TestAddItems_BuildsEstimateAndMovesToPaymentPending(t *testing.T) {
	db := setupTestDB(t)
	app := setupStaffOrderApp(db)

	s := seedStudent(t, db, "강태양", 1)
	o := seedOrder(t, db, s.ID, constants.OrderStatusMeasured, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	jacket := seedProduct(t, db, "동복 자켓", 98000, true)
	pants := seedProduct(t, db, "동복 바지", 45000, true)

	var body struct {
		Data struct {
			EstimatedAmount int64  `json:"estimated_amount"`
			Status          string `json:"status"`
			ItemCount       int    `json:"item_count"`
		} `json:"data"`
	}
	code := postOrderJSON(t, app, fmt.Sprintf("/api/staff/orders/%d/items", o.ID), fiber.Map{
		"items": []fiber.Map{
			{"product_id": jacket.ID, "size": "95", "quantity": 1},
			{"product_id": pants.ID, "size": "82", "quantity": 2},
		},
	}, &body)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, int64(98000+45000*2), body.Data.EstimatedAmount)
	assert.Equal(t, constants.OrderStatusPaymentPending, body.Data.Status)
	assert.Equal(t, 2, body.Data.ItemCount)

	var got orderModel.OrderModel
	require.NoError(t, db.First(&got, o.ID).Error)
	assert.Equal(t, constants.OrderStatusPaymentPending, got.Status)
	assert.Equal(t, int64(188000), got.EstimatedAmount)

	// 단가는 카탈로그에서 resolve되어 저장된다
	var items []orderModel.OrderItemModel
	require.NoError(t, db.Where("order_id = ?", o.ID).Order("id ASC").Find(&items).Error)
	require.Len(t, items, 2)
	assert.Equal(t, int64(98000), items[0].UnitPrice)
	assert.Equal(t, int64(90000), items[1].Subtotal)
}

func TestAddItems_ReplacesPreviousItems(t *testing.T) {
	db := setupTestDB(t)
	app := setupStaffOrderApp(db)

	s := seedStudent(t, db, "문채원", 2)
	o := seedOrder(t, db, s.ID, constants.OrderStatusMeasured, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	jacket := seedProduct(t, db, "동복 자켓", 98000, true)
	shirt := seedProduct(t, db, "셔츠", 32000, true)

	first := fiber.Map{"items": []fiber.Map{{"product_id": jacket.ID, "size": "95", "quantity": 1}}}
	require.Equal(t, http.StatusOK, postOrderJSON(t, app, fmt.Sprintf("/api/staff/orders/%d/items", o.ID), first, nil))

	// 재구성: 이전 품목은 소프트 삭제되고 새 구성만 남는다
	second := fiber.Map{"items": []fiber.Map{{"product_id": shirt.ID, "size": "100", "quantity": 3}}}
	require.Equal(t, http.StatusOK, postOrderJSON(t, app, fmt.Sprintf("/api/staff/orders/%d/items", o.ID), second, nil))

	var items []orderModel.OrderItemModel
	require.NoError(t, db.Where("order_id = ?", o.ID).Find(&items).Error)
	require.Len(t, items, 1)
	assert.Equal(t, shirt.ID, items[0].ProductID)

	var got orderModel.OrderModel
	require.NoError(t, db.First(&got, o.ID).Error)
	assert.Equal(t, int64(96000), got.EstimatedAmount)
}

func TestAddItems_RejectsWrongStateAndInactiveProduct(t *testing.T) {
	db := setupTestDB(t)
	app := setupStaffOrderApp(db)

	s := seedStudent(t, db, "서지호", 1)
	pending := seedOrder(t, db, s.ID, constants.OrderStatusPending, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	jacket := seedProduct(t, db, "동복 자켓", 98000, true)

	payload := fiber.Map{"items": []fiber.Map{{"product_id": jacket.ID, "size": "95", "quantity": 1}}}
	assert.Equal(t, http.StatusBadRequest,
		postOrderJSON(t, app, fmt.Sprintf("/api/staff/orders/%d/items", pending.ID), payload, nil))

	measured := seedOrder(t, db, s.ID, constants.OrderStatusMeasured, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC))
	retired := seedProduct(t, db, "단종 자켓", 90000, false)
	bad := fiber.Map{"items": []fiber.Map{{"product_id": retired.ID, "size": "95", "quantity": 1}}}
	assert.Equal(t, http.StatusBadRequest,
		postOrderJSON(t, app, fmt.Sprintf("/api/staff/orders/%d/items", measured.ID), bad, nil))

	// 빈 items → 400 (validator)
	assert.Equal(t, http.StatusBadRequest,
		postOrderJSON(t, app, fmt.Sprintf("/api/staff/orders/%d/items", measured.ID), fiber.Map{"items": []fiber.Map{}}, nil))
}

func TestConfirm_SettlesTotalFromItemSubtotals(t *testing.T) {
	db := setupTestDB(t)
	app := setupStaffOrderApp(db)

	s := seedStudent(t, db, "임유나", 1)
	o := seedOrder(t, db, s.ID, constants.OrderStatusMeasured, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	jacket := seedProduct(t, db, "동복 자켓", 98000, true)

	payload := fiber.Map{"items": []fiber.Map{{"product_id": jacket.ID, "size": "95", "quantity": 2}}}
	require.Equal(t, http.StatusOK, postOrderJSON(t, app, fmt.Sprintf("/api/staff/orders/%d/items", o.ID), payload, nil))

	var body struct {
		Data struct {
			TotalAmount int64  `json:"total_amount"`
			Status      string `json:"status"`
		} `json:"data"`
	}
	code := postOrderJSON(t, app, fmt.Sprintf("/api/staff/orders/%d/confirm", o.ID), nil, &body)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, int64(196000), body.Data.TotalAmount)
	assert.Equal(t, constants.OrderStatusConfirmed, body.Data.Status)

	// 확정된 주문을 다시 확정 → 400
	assert.Equal(t, http.StatusBadRequest,
		postOrderJSON(t, app, fmt.Sprintf("/api/staff/orders/%d/confirm", o.ID), nil, nil))
}
