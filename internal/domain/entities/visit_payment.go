package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the payment processing outcome.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// VisitPayment is a payment for an approved visit.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (visit_id-index): visit_id
//
// Provider payload:
//   - ProviderPayloadRaw keeps the provider response body for audit.
//   - ProviderPayload is the parsed form, handy for debugging.
type VisitPayment struct {
	ID      string          `json:"id"`
	VisitID string          `json:"visit_id"`
	Date    time.Time       `json:"date"`
	Status  PaymentStatus   `json:"status"`
	Amount  decimal.Decimal `json:"amount"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
