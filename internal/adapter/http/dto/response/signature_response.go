package response

import (
	"detailing_crm/internal/domain/entities"
	"time"
)

type SignatureSessionResponse struct {
	SessionID         string     `json:"session_id"`
	ProtocolID        int64      `json:"protocol_id"`
	TabletID          string     `json:"tablet_id"`
	Status            string     `json:"status"`
	Terminal          bool       `json:"terminal"`
	ExpiresAt         *time.Time `json:"expires_at,omitempty"`
	SignedAt          *time.Time `json:"signed_at,omitempty"`
	SignedDocumentURL string     `json:"signed_document_url,omitempty"`
	SignatureImageURL string     `json:"signature_image_url,omitempty"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func FromSignatureSession(s entities.SignatureSession) SignatureSessionResponse {
	res := SignatureSessionResponse{
		SessionID:         s.SessionID,
		ProtocolID:        s.ProtocolID,
		TabletID:          s.TabletID,
		Status:            string(s.Status),
		Terminal:          s.Status.Terminal(),
		SignedAt:          s.SignedAt,
		SignedDocumentURL: s.SignedDocumentURL,
		SignatureImageURL: s.SignatureImageURL,
		UpdatedAt:         s.UpdatedAt,
	}
	if !s.ExpiresAt.IsZero() {
		expiresAt := s.ExpiresAt
		res.ExpiresAt = &expiresAt
	}
	return res
}

func FromSignatureSessions(ss []entities.SignatureSession) []SignatureSessionResponse {
	out := make([]SignatureSessionResponse, 0, len(ss))
	for _, s := range ss {
		out = append(out, FromSignatureSession(s))
	}
	return out
}
