// file: internals/features/orders/dto/order_dto.go
package dto

import (
	"time"

	"unisize_backend/internals/constants"
	measurementModel "unisize_backend/internals/features/measurements/model"
	orderModel "unisize_backend/internals/features/orders/model"
	paymentModel "unisize_backend/internals/features/payments/model"
	studentModel "unisize_backend/internals/features/students/model"

	"gorm.io/datatypes"
)

/* ===================== RESPONSES (목록) ===================== */

// OrderSummary: 확정 주문 목록의 평탄화된 행.
// 학생이 삭제/누락된 경우 학생 파생 필드는 빈 문자열, measured_at은 null.
type OrderSummary struct {
	ID          int64      `json:"id"`
	OrderNumber string     `json:"order_number"`
	StudentID   int64      `json:"student_id"`
	StudentName string     `json:"student_name"`
	Gender      string     `json:"gender"`
	SchoolName  string     `json:"school_name"`
	StudentType string     `json:"student_type"` // 신입생 / 재학생
	TotalAmount int64      `json:"total_amount"`
	OrderDate   time.Time  `json:"order_date"`
	MeasuredAt  *time.Time `json:"measured_at"`
	Status      string     `json:"status"`
	Notes       string     `json:"notes"`
}

// PaymentPendingSummary: 결제 대기 목록의 행.
// 확정 전이므로 정산가 대신 견적가(estimated_amount)를 내려준다.
type PaymentPendingSummary struct {
	ID              int64      `json:"id"`
	OrderNumber     string     `json:"order_number"`
	StudentID       int64      `json:"student_id"`
	StudentName     string     `json:"student_name"`
	Gender          string     `json:"gender"`
	SchoolName      string     `json:"school_name"`
	StudentType     string     `json:"student_type"`
	EstimatedAmount int64      `json:"estimated_amount"`
	OrderDate       time.Time  `json:"order_date"`
	MeasuredAt      *time.Time `json:"measured_at"`
	Status          string     `json:"status"`
	Notes           string     `json:"notes"`
}

// StudentTypeOf: 입학 학년 1 → 신입생, 그 외 → 재학생
func StudentTypeOf(admissionGrade int) string {
	if admissionGrade == 1 {
		return constants.StudentTypeNew
	}
	return constants.StudentTypeReturning
}

// NewOrderSummary는 주문 + (있을 수도 있는) 학생 + 최근 완료 측정 시각을 합친다.
// student가 nil이면 학생 필드는 빈 문자열로 degrade하고 재학생으로 분류한다.
func NewOrderSummary(o *orderModel.OrderModel, s *studentModel.StudentModel, measuredAt *time.Time) OrderSummary {
	out := OrderSummary{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		StudentID:   o.StudentID,
		StudentType: constants.StudentTypeReturning,
		TotalAmount: o.TotalAmount,
		OrderDate:   o.OrderDate,
		MeasuredAt:  measuredAt,
		Status:      o.Status,
		Notes:       o.Notes,
	}
	if s != nil {
		out.StudentName = s.Name
		out.Gender = s.Gender
		out.SchoolName = s.SchoolName
		out.StudentType = StudentTypeOf(s.AdmissionGrade)
	}
	return out
}

// NewPaymentPendingSummary: NewOrderSummary와 동일한 조인 규칙, 금액 필드만 다르다.
func NewPaymentPendingSummary(o *orderModel.OrderModel, s *studentModel.StudentModel, measuredAt *time.Time) PaymentPendingSummary {
	base := NewOrderSummary(o, s, measuredAt)
	return PaymentPendingSummary{
		ID:              base.ID,
		OrderNumber:     base.OrderNumber,
		StudentID:       base.StudentID,
		StudentName:     base.StudentName,
		Gender:          base.Gender,
		SchoolName:      base.SchoolName,
		StudentType:     base.StudentType,
		EstimatedAmount: o.EstimatedAmount,
		OrderDate:       base.OrderDate,
		MeasuredAt:      base.MeasuredAt,
		Status:          base.Status,
		Notes:           base.Notes,
	}
}

/* ===================== RESPONSES (상세) ===================== */

// OrderItemDetail: 품목 + 상품 정보 resolve 결과
type OrderItemDetail struct {
	ID             int64          `json:"id"`
	ProductID      int64          `json:"product_id"`
	ProductName    string         `json:"product_name"`
	Category       string         `json:"category"`
	Season         string         `json:"season"`
	Size           string         `json:"size"`
	Quantity       int            `json:"quantity"`
	UnitPrice      int64          `json:"unit_price"`
	Subtotal       int64          `json:"subtotal"`
	Options        datatypes.JSON `json:"options"`
	DeliveryStatus string         `json:"delivery_status"`
}

type OrderDetailResponse struct {
	Order       *orderModel.OrderModel             `json:"order"`
	Student     *studentModel.StudentModel         `json:"student"`     // 없으면 null
	Measurement *measurementModel.MeasurementModel `json:"measurement"` // 최근 완료 측정, 없으면 null
	Items       []OrderItemDetail                  `json:"items"`
	Payments    []paymentModel.PaymentModel        `json:"payments"`
}

/* ===================== REQUESTS ===================== */

// 관리자 상태 변경 (취소 포함)
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending measured payment_pending confirmed completed cancelled"`
}

// 직원 품목 구성: 단가는 상품에서 resolve, 소계는 서버에서 계산
type AddOrderItemInput struct {
	ProductID int64          `json:"product_id" validate:"required,gt=0"`
	Size      string         `json:"size" validate:"required,max=20"`
	Quantity  int            `json:"quantity" validate:"required,gt=0,lte=20"`
	Options   datatypes.JSON `json:"options" validate:"omitempty"`
}

type AddOrderItemsRequest struct {
	Items []AddOrderItemInput `json:"items" validate:"required,min=1,dive"`
}
