package entities

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// SignatureStatus is the state of a tablet signature session as reported by
// the remote signature service. The service is the only source of
// transitions; this side never infers one.
type SignatureStatus string

const (
	SignatureStatusPending           SignatureStatus = "PENDING"
	SignatureStatusGeneratingPDF     SignatureStatus = "GENERATING_PDF"
	SignatureStatusSentToTablet      SignatureStatus = "SENT_TO_TABLET"
	SignatureStatusViewingDocument   SignatureStatus = "VIEWING_DOCUMENT"
	SignatureStatusSigningInProgress SignatureStatus = "SIGNING_IN_PROGRESS"
	SignatureStatusCompleted         SignatureStatus = "COMPLETED"
	SignatureStatusExpired           SignatureStatus = "EXPIRED"
	SignatureStatusCancelled         SignatureStatus = "CANCELLED"
	SignatureStatusError             SignatureStatus = "ERROR"
)

// Terminal reports whether no further transition is expected.
func (s SignatureStatus) Terminal() bool {
	switch s {
	case SignatureStatusCompleted, SignatureStatusExpired, SignatureStatusCancelled, SignatureStatusError:
		return true
	}
	return false
}

var ErrInvalidSignatureRequest = errors.New("invalid signature request")

// SignatureRequest asks the signature service to show a protocol on a tablet.
type SignatureRequest struct {
	ProtocolID     int64
	TabletID       string
	CustomerName   string
	Instructions   *string
	TimeoutMinutes *int
}

// Validate checks the fields the signature service requires.
func (r SignatureRequest) Validate() error {
	switch {
	case r.ProtocolID <= 0:
		return fmt.Errorf("%w: protocol id must be positive", ErrInvalidSignatureRequest)
	case strings.TrimSpace(r.TabletID) == "":
		return fmt.Errorf("%w: tablet id is required", ErrInvalidSignatureRequest)
	case strings.TrimSpace(r.CustomerName) == "":
		return fmt.Errorf("%w: customer name is required", ErrInvalidSignatureRequest)
	case r.TimeoutMinutes != nil && *r.TimeoutMinutes <= 0:
		return fmt.Errorf("%w: timeout must be positive", ErrInvalidSignatureRequest)
	}
	return nil
}

// SignatureRequestResult is the signature service answer to a request.
type SignatureRequestResult struct {
	Success            bool
	SessionID          string
	Message            string
	ExpiresAt          time.Time
	ProtocolID         int64
	DocumentPreviewURL string
}

// SignatureStatusResult is one status poll answer.
type SignatureStatusResult struct {
	Success           bool
	SessionID         string
	Status            SignatureStatus
	ProtocolID        int64
	SignedAt          *time.Time
	SignedDocumentURL string
	SignatureImageURL string
	Timestamp         time.Time
	Message           string
}

// SignatureCancelResult is the answer to a cancel request.
type SignatureCancelResult struct {
	Success bool
	Message string
}

// SignatureSession is one outstanding request for a customer's signature on
// a protocol document.
//
// Storage model (DynamoDB):
//   - PK: session_id
//   - GSI1 (protocol_id-index): protocol_id
type SignatureSession struct {
	SessionID         string          `json:"session_id"`
	ProtocolID        int64           `json:"protocol_id"`
	TabletID          string          `json:"tablet_id"`
	Status            SignatureStatus `json:"status"`
	ExpiresAt         time.Time       `json:"expires_at"`
	SignedAt          *time.Time      `json:"signed_at,omitempty"`
	SignedDocumentURL string          `json:"signed_document_url,omitempty"`
	SignatureImageURL string          `json:"signature_image_url,omitempty"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// Apply copies the fields of a status poll onto the session.
func (s SignatureSession) Apply(r SignatureStatusResult) SignatureSession {
	s.Status = r.Status
	if r.SignedAt != nil {
		s.SignedAt = r.SignedAt
	}
	if r.SignedDocumentURL != "" {
		s.SignedDocumentURL = r.SignedDocumentURL
	}
	if r.SignatureImageURL != "" {
		s.SignatureImageURL = r.SignatureImageURL
	}
	if !r.Timestamp.IsZero() {
		s.UpdatedAt = r.Timestamp
	} else {
		s.UpdatedAt = time.Now().UTC()
	}
	return s
}

// SignedDocument is a downloaded signed protocol.
type SignedDocument struct {
	Filename    string
	ContentType string
	Content     []byte
}

// SignedDocumentFilename is the file name a signed protocol is saved under.
func SignedDocumentFilename(protocolID int64) string {
	return fmt.Sprintf("protokol-%d-podpisany.pdf", protocolID)
}
