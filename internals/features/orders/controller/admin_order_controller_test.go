package controller_test

import (
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
	measurementModel "unisize_backend/internals/features/measurements/model"
	orderCtl "unisize_backend/internals/features/orders/controller"
	orderModel "unisize_backend/internals/features/orders/model"
	paymentModel "unisize_backend/internals/features/payments/model"
	productModel "unisize_backend/internals/features/products/model"
	studentModel "unisize_backend/internals/features/students/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	// 인메모리 sqlite는 커넥션마다 DB가 분리되므로 풀을 1로 고정
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&studentModel.StudentModel{},
		&measurementModel.MeasurementModel{},
		&orderModel.OrderModel{},
		&orderModel.OrderItemModel{},
		&productModel.ProductModel{},
		&paymentModel.PaymentModel{},
	))
	return db
}

func setupAdminOrderApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	ctl := orderCtl.NewAdminOrderController(db)
	app.Get("/api/admin/orders/confirmed", ctl.GetConfirmedOrders)
	app.Get("/api/admin/orders/payment-pending", ctl.GetPaymentPendingOrders)
	app.Get("/api/admin/orders/:id", ctl.GetOrderByID)
	app.Put("/api/admin/orders/:id/status", ctl.UpdateOrderStatus)
	return app
}

type orderListBody struct {
	Success bool `json:"success"`
	Data    struct {
		Total  int64 `json:"total"`
		Orders []struct {
			ID              int64      `json:"id"`
			OrderNumber     string     `json:"order_number"`
			StudentID       int64      `json:"student_id"`
			StudentName     string     `json:"student_name"`
			Gender          string     `json:"gender"`
			SchoolName      string     `json:"school_name"`
			StudentType     string     `json:"student_type"`
			TotalAmount     int64      `json:"total_amount"`
			EstimatedAmount int64      `json:"estimated_amount"`
			OrderDate       time.Time  `json:"order_date"`
			MeasuredAt      *time.Time `json:"measured_at"`
			Status          string     `json:"status"`
		} `json:"orders"`
	} `json:"data"`
}

func doJSON(t *testing.T, app *fiber.App, method, path string, out any) int {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
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

func seedStudent(t *testing.T, db *gorm.DB, name string, grade int) *studentModel.StudentModel {
	t.Helper()
	s := &studentModel.StudentModel{
		Name:           name,
		Gender:         "male",
		SchoolName:     "한국중학교",
		AdmissionYear:  2026,
		AdmissionGrade: grade,
	}
	require.NoError(t, db.Create(s).Error)
	return s
}

func seedOrder(t *testing.T, db *gorm.DB, studentID int64, status string, orderDate time.Time) *orderModel.OrderModel {
	t.Helper()
	o := &orderModel.OrderModel{
		OrderNumber: orderModel.NewOrderNumber(orderDate),
		StudentID:   studentID,
		Status:      status,
		OrderDate:   orderDate,
	}
	require.NoError(t, db.Create(o).Error)
	return o
}

func seedCompletedMeasurement(t *testing.T, db *gorm.DB, studentID int64, measuredAt time.Time) *measurementModel.MeasurementModel {
	t.Helper()
	m := &measurementModel.MeasurementModel{
		StudentID:  studentID,
		Status:     constants.MeasurementStatusCompleted,
		MeasuredAt: &measuredAt,
	}
	require.NoError(t, db.Create(m).Error)
	return m
}

/* ===================== 확정 주문 목록 ===================== */

func TestGetConfirmedOrders_PaginationCoversAllWithoutGaps(t *testing.T) {
	db := setupTestDB(t)
	app := setupAdminOrderApp(db)

	s := seedStudent(t, db, "김민준", 1)
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	want := make([]int64, 0, 5)
	for i := 0; i < 5; i++ {
		o := seedOrder(t, db, s.ID, constants.OrderStatusConfirmed, base.AddDate(0, 0, i))
		want = append(want, o.ID)
	}
	// 다른 상태는 목록에 나오면 안 된다
	seedOrder(t, db, s.ID, constants.OrderStatusPending, base)
	seedOrder(t, db, s.ID, constants.OrderStatusCancelled, base)

	seen := map[int64]int{}
	got := make([]int64, 0, 5)
	for page := 1; page <= 3; page++ {
		var body orderListBody
		code := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/admin/orders/confirmed?page=%d&limit=2", page), &body)
		require.Equal(t, http.StatusOK, code)
		assert.True(t, body.Success)
		assert.Equal(t, int64(5), body.Data.Total)
		for _, o := range body.Data.Orders {
			seen[o.ID]++
			got = append(got, o.ID)
		}
	}

	// 중복도 누락도 없이, order_date 오름차순 그대로
	assert.Equal(t, want, got)
	for id, n := range seen {
		assert.Equal(t, 1, n, "order %d appeared %d times", id, n)
	}

	// 범위를 벗어난 페이지: 빈 배열 + 정확한 total
	var body orderListBody
	code := doJSON(t, app, http.MethodGet, "/api/admin/orders/confirmed?page=4&limit=2", &body)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, int64(5), body.Data.Total)
	assert.Empty(t, body.Data.Orders)
}

func TestGetConfirmedOrders_MissingStudentDegradesToEmptyFields(t *testing.T) {
	db := setupTestDB(t)
	app := setupAdminOrderApp(db)

	s := seedStudent(t, db, "이서연", 1)
	seedCompletedMeasurement(t, db, s.ID, time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC))
	seedOrder(t, db, s.ID, constants.OrderStatusConfirmed, time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC))

	// 학생 소프트 삭제 → 파생 필드는 degrade, 요청은 성공해야 한다
	require.NoError(t, db.Delete(s).Error)

	var body orderListBody
	code := doJSON(t, app, http.MethodGet, "/api/admin/orders/confirmed?page=1&limit=10", &body)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, body.Data.Orders, 1)

	row := body.Data.Orders[0]
	assert.Equal(t, "", row.StudentName)
	assert.Equal(t, "", row.Gender)
	assert.Equal(t, "", row.SchoolName)
	assert.Equal(t, constants.StudentTypeReturning, row.StudentType)
	assert.Nil(t, row.MeasuredAt)
}

func TestGetConfirmedOrders_PicksMostRecentCompletedMeasurement(t *testing.T) {
	db := setupTestDB(t)
	app := setupAdminOrderApp(db)

	s := seedStudent(t, db, "박지후", 2)
	t1 := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	t2 := time.Date(2026, 2, 20, 10, 0, 0, 0, time.UTC)
	seedCompletedMeasurement(t, db, s.ID, t1)
	seedCompletedMeasurement(t, db, s.ID, t2)

	// in_progress 측정과 다른 학생의 측정은 무시되어야 한다
	require.NoError(t, db.Create(&measurementModel.MeasurementModel{
		StudentID: s.ID,
		Status:    constants.MeasurementStatusInProgress,
	}).Error)
	other := seedStudent(t, db, "최하늘", 1)
	seedCompletedMeasurement(t, db, other.ID, time.Date(2026, 2, 25, 10, 0, 0, 0, time.UTC))

	seedOrder(t, db, s.ID, constants.OrderStatusConfirmed, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))

	var body orderListBody
	code := doJSON(t, app, http.MethodGet, "/api/admin/orders/confirmed", &body)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, body.Data.Orders, 1)
	require.NotNil(t, body.Data.Orders[0].MeasuredAt)
	assert.True(t, body.Data.Orders[0].MeasuredAt.Equal(t2), "got %v, want %v", body.Data.Orders[0].MeasuredAt, t2)
}

func TestGetConfirmedOrders_EqualMeasuredAtPicksLaterRowEveryTime(t *testing.T) {
	db := setupTestDB(t)
	app := setupAdminOrderApp(db)

	s := seedStudent(t, db, "노아린", 1)
	ts := time.Date(2026, 2, 10, 9, 30, 0, 0, time.UTC)
	first := seedCompletedMeasurement(t, db, s.ID, ts)
	second := seedCompletedMeasurement(t, db, s.ID, ts)
	require.Greater(t, second.ID, first.ID)

	o := seedOrder(t, db, s.ID, constants.OrderStatusConfirmed, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))

	// measured_at 동률은 나중 행(id 큰 쪽)이 이기고, 요청을 반복해도 흔들리지 않아야 한다
	for i := 0; i < 5; i++ {
		var body orderListBody
		code := doJSON(t, app, http.MethodGet, "/api/admin/orders/confirmed", &body)
		require.Equal(t, http.StatusOK, code)
		require.Len(t, body.Data.Orders, 1)
		require.NotNil(t, body.Data.Orders[0].MeasuredAt)
		assert.True(t, body.Data.Orders[0].MeasuredAt.Equal(ts))

		var detail struct {
			Data struct {
				Measurement *measurementModel.MeasurementModel `json:"measurement"`
			} `json:"data"`
		}
		code = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/admin/orders/%d", o.ID), &detail)
		require.Equal(t, http.StatusOK, code)
		require.NotNil(t, detail.Data.Measurement)
		assert.Equal(t, second.ID, detail.Data.Measurement.ID)
	}
}

func TestGetConfirmedOrders_StudentTypeDerivation(t *testing.T) {
	db := setupTestDB(t)
	app := setupAdminOrderApp(db)

	freshman := seedStudent(t, db, "정다은", 1)
	returning := seedStudent(t, db, "한지민", 2)
	seedOrder(t, db, freshman.ID, constants.OrderStatusConfirmed, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	seedOrder(t, db, returning.ID, constants.OrderStatusConfirmed, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC))

	var body orderListBody
	code := doJSON(t, app, http.MethodGet, "/api/admin/orders/confirmed", &body)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, body.Data.Orders, 2)
	assert.Equal(t, constants.StudentTypeNew, body.Data.Orders[0].StudentType)
	assert.Equal(t, constants.StudentTypeReturning, body.Data.Orders[1].StudentType)
}

func TestGetConfirmedOrders_SoftDeletedOrderNeverListed(t *testing.T) {
	db := setupTestDB(t)
	app := setupAdminOrderApp(db)

	s := seedStudent(t, db, "유준서", 1)
	live := seedOrder(t, db, s.ID, constants.OrderStatusConfirmed, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	gone := seedOrder(t, db, s.ID, constants.OrderStatusConfirmed, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, db.Delete(gone).Error)

	var body orderListBody
	code := doJSON(t, app, http.MethodGet, "/api/admin/orders/confirmed", &body)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, int64(1), body.Data.Total)
	require.Len(t, body.Data.Orders, 1)
	assert.Equal(t, live.ID, body.Data.Orders[0].ID)
}

/* ===================== 결제 대기 목록 ===================== */

func TestGetPaymentPendingOrders_SharesJoinAndUsesEstimatedAmount(t *testing.T) {
	db := setupTestDB(t)
	app := setupAdminOrderApp(db)

	s := seedStudent(t, db, "오세린", 1)
	measuredAt := time.Date(2026, 3, 5, 14, 0, 0, 0, time.UTC)
	seedCompletedMeasurement(t, db, s.ID, measuredAt)

	o := seedOrder(t, db, s.ID, constants.OrderStatusPaymentPending, time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC))
	require.NoError(t, db.Model(o).Update("estimated_amount", int64(185000)).Error)

	// 확정 주문은 이 목록에 나오면 안 된다
	seedOrder(t, db, s.ID, constants.OrderStatusConfirmed, time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC))

	var body orderListBody
	code := doJSON(t, app, http.MethodGet, "/api/admin/orders/payment-pending", &body)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, int64(1), body.Data.Total)
	require.Len(t, body.Data.Orders, 1)

	row := body.Data.Orders[0]
	assert.Equal(t, o.ID, row.ID)
	assert.Equal(t, int64(185000), row.EstimatedAmount)
	assert.Equal(t, "오세린", row.StudentName)
	assert.Equal(t, constants.StudentTypeNew, row.StudentType)
	require.NotNil(t, row.MeasuredAt)
	assert.True(t, row.MeasuredAt.Equal(measuredAt))
}

/* ===================== 상세 ===================== */

func TestGetOrderByID_ResolvesItemsAndPayments(t *testing.T) {
	db := setupTestDB(t)
	app := setupAdminOrderApp(db)

	s := seedStudent(t, db, "배도윤", 2)
	o := seedOrder(t, db, s.ID, constants.OrderStatusConfirmed, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))

	p := &productModel.ProductModel{Name: "동복 자켓", Category: "자켓", Season: constants.SeasonWinter, Gender: "male", Price: 98000, IsActive: true}
	require.NoError(t, db.Create(p).Error)
	require.NoError(t, db.Create(&orderModel.OrderItemModel{
		OrderID: o.ID, ProductID: p.ID, Size: "95", Quantity: 1, UnitPrice: 98000, Subtotal: 98000, DeliveryStatus: "pending",
	}).Error)

	paidAt := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&paymentModel.PaymentModel{
		OrderID: o.ID, Amount: 98000, Method: "card", Status: constants.PaymentStatusPaid, PaidAt: &paidAt,
	}).Error)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Order   *orderModel.OrderModel     `json:"order"`
			Student *studentModel.StudentModel `json:"student"`
			Items   []struct {
				ProductName string `json:"product_name"`
				Category    string `json:"category"`
				Season      string `json:"season"`
				Subtotal    int64  `json:"subtotal"`
			} `json:"items"`
			Payments []paymentModel.PaymentModel `json:"payments"`
		} `json:"data"`
	}
	code := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/admin/orders/%d", o.ID), &body)
	require.Equal(t, http.StatusOK, code)
	require.NotNil(t, body.Data.Order)
	require.NotNil(t, body.Data.Student)
	require.Len(t, body.Data.Items, 1)
	assert.Equal(t, "동복 자켓", body.Data.Items[0].ProductName)
	assert.Equal(t, constants.SeasonWinter, body.Data.Items[0].Season)
	require.Len(t, body.Data.Payments, 1)
	assert.Equal(t, int64(98000), body.Data.Payments[0].Amount)
}

func TestGetOrderByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	app := setupAdminOrderApp(db)

	code := doJSON(t, app, http.MethodGet, "/api/admin/orders/999", nil)
	assert.Equal(t, http.StatusNotFound, code)

	code = doJSON(t, app, http.MethodGet, "/api/admin/orders/abc", nil)
	assert.Equal(t, http.StatusBadRequest, code)
}
