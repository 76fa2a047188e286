package constants

// 사용자 역할
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// 주문 상태
const (
	OrderStatusPending        = "pending"
	OrderStatusMeasured       = "measured"
	OrderStatusPaymentPending = "payment_pending"
	OrderStatusConfirmed      = "confirmed"
	OrderStatusCompleted      = "completed"
	OrderStatusCancelled      = "cancelled"
)

// 측정 상태
const (
	MeasurementStatusInProgress = "in_progress"
	MeasurementStatusCompleted  = "completed"
)

// 결제 상태
const (
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
)

// 시즌 구분 (동복/하복)
const (
	SeasonWinter = "동복"
	SeasonSummer = "하복"
)

// 학생 구분 (입학 학년 1 = 신입생, 그 외 = 재학생)
const (
	StudentTypeNew       = "신입생"
	StudentTypeReturning = "재학생"
)
