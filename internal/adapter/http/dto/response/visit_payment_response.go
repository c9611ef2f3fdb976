package response

import (
	"detailing_crm/internal/domain/entities"
	"time"

	"github.com/shopspring/decimal"
)

type VisitPaymentResponse struct {
	PaymentID   string          `json:"payment_id"`
	VisitID     string          `json:"visit_id"`
	PaymentDate time.Time       `json:"payment_date"`
	Status      string          `json:"status"`
	Amount      decimal.Decimal `json:"amount"`

	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromVisitPayment(p entities.VisitPayment) VisitPaymentResponse {
	return VisitPaymentResponse{
		PaymentID:          p.ID,
		VisitID:            p.VisitID,
		PaymentDate:        p.Date,
		Status:             string(p.Status),
		Amount:             p.Amount,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		ProviderPayload:    p.ProviderPayload,
	}
}

func FromVisitPayments(ps []entities.VisitPayment) []VisitPaymentResponse {
	out := make([]VisitPaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromVisitPayment(p))
	}
	return out
}
