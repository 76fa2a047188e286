// file: internals/features/orders/model/order_number.go
package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewOrderNumber는 표시용 주문번호를 만든다. 예: UNI-20260828-1A2B3C4D
func NewOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:8]
	return fmt.Sprintf("UNI-%s-%s", now.Format("20060102"), suffix)
}
