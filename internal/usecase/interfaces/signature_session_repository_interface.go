package interfaces

import (
	"context"
	"detailing_crm/internal/domain/entities"
)

//go:generate mockgen -source=signature_session_repository_interface.go -destination=mocks/signature_session_repository_mock.go -package=mock_interfaces

// ISignatureSessionRepository keeps the last observed state of every
// signature session, terminal ones included.
type ISignatureSessionRepository interface {
	// Save upserts the session.
	Save(ctx context.Context, s entities.SignatureSession) (entities.SignatureSession, error)
	GetByID(ctx context.Context, sessionID string) (entities.SignatureSession, error)
	ListByProtocolID(ctx context.Context, protocolID int64) ([]entities.SignatureSession, error)
}
