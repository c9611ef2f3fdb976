package signature

import (
	"strings"
	"time"

	"detailing_crm/internal/domain/entities"
)

type requestBody struct {
	ProtocolID     int64   `json:"protocolId"`
	TabletID       string  `json:"tabletId"`
	CustomerName   string  `json:"customerName"`
	Instructions   *string `json:"instructions,omitempty"`
	TimeoutMinutes *int    `json:"timeoutMinutes,omitempty"`
}

type requestResponse struct {
	Success            bool         `json:"success"`
	SessionID          string       `json:"sessionId"`
	Message            string       `json:"message"`
	ExpiresAt          flexibleTime `json:"expiresAt"`
	ProtocolID         int64        `json:"protocolId"`
	DocumentPreviewURL string       `json:"documentPreviewUrl"`
}

func (r requestResponse) toEntity() entities.SignatureRequestResult {
	return entities.SignatureRequestResult{
		Success:            r.Success,
		SessionID:          r.SessionID,
		Message:            r.Message,
		ExpiresAt:          r.ExpiresAt.Time,
		ProtocolID:         r.ProtocolID,
		DocumentPreviewURL: r.DocumentPreviewURL,
	}
}

type statusResponse struct {
	Success           bool          `json:"success"`
	SessionID         string        `json:"sessionId"`
	Status            string        `json:"status"`
	ProtocolID        int64         `json:"protocolId"`
	SignedAt          *flexibleTime `json:"signedAt"`
	SignedDocumentURL string        `json:"signedDocumentUrl"`
	SignatureImageURL string        `json:"signatureImageUrl"`
	Timestamp         flexibleTime  `json:"timestamp"`
	Message           string        `json:"message"`
}

func (r statusResponse) toEntity() entities.SignatureStatusResult {
	out := entities.SignatureStatusResult{
		Success:           r.Success,
		SessionID:         r.SessionID,
		Status:            entities.SignatureStatus(strings.ToUpper(strings.TrimSpace(r.Status))),
		ProtocolID:        r.ProtocolID,
		SignedDocumentURL: r.SignedDocumentURL,
		SignatureImageURL: r.SignatureImageURL,
		Timestamp:         r.Timestamp.Time,
		Message:           r.Message,
	}
	if r.SignedAt != nil && !r.SignedAt.IsZero() {
		t := r.SignedAt.Time
		out.SignedAt = &t
	}
	return out
}

type cancelBody struct {
	Reason string `json:"reason,omitempty"`
}

type cancelResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// errorBody is what the service puts in non-2xx answers, when anything.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// flexibleTime accepts RFC 3339 timestamps as well as the zone-less
// LocalDateTime form the signature service emits.
type flexibleTime struct {
	time.Time
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

func (t *flexibleTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	var lastErr error
	for _, layout := range timeLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed.UTC()
			return nil
		}
		lastErr = err
	}
	return lastErr
}
