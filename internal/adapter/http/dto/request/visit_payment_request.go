package request

import "encoding/json"

// VisitPaymentCreateRequest is the payload for charging a visit.
//
// `provider_payload` is passed to Mercado Pago as-is, minus the amount, which
// always comes from the stored visit. A bare provider payload without the
// envelope is accepted too.
type VisitPaymentCreateRequest struct {
	ProviderPayload json.RawMessage `json:"provider_payload"`
}
