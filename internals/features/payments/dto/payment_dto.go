// file: internals/features/payments/dto/payment_dto.go
package dto

import (
	"strings"
	"time"

	model "unisize_backend/internals/features/payments/model"
)

/* ===================== REQUESTS ===================== */

type CreatePaymentRequest struct {
	Amount        int64  `json:"amount" validate:"required,gt=0"`
	Method        string `json:"method" validate:"required,oneof=card cash transfer"`
	TransactionID string `json:"transaction_id" validate:"omitempty,max=64"`
	PayerName     string `json:"payer_name" validate:"omitempty,max=100"`
	PayerPhone    string `json:"payer_phone" validate:"omitempty,max=20"`
}

func (r CreatePaymentRequest) ToModel(orderID int64, paidAt time.Time) *model.PaymentModel {
	return &model.PaymentModel{
		OrderID:       orderID,
		Amount:        r.Amount,
		Method:        r.Method,
		Status:        "paid",
		TransactionID: strings.TrimSpace(r.TransactionID),
		PayerName:     strings.TrimSpace(r.PayerName),
		PayerPhone:    strings.TrimSpace(r.PayerPhone),
		PaidAt:        &paidAt,
	}
}
