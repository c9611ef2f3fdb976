package interfaces

import (
	"context"
	"detailing_crm/internal/domain/entities"
)

//go:generate mockgen -source=signature_service_interface.go -destination=mocks/signature_service_mock.go -package=mock_interfaces

// ISignatureService is the remote tablet signature service.
//
// Business rejections (success=false in a 2xx body) come back as results, not
// errors. Transport failures and non-2xx answers are errors.
type ISignatureService interface {
	RequestSignature(ctx context.Context, req entities.SignatureRequest) (entities.SignatureRequestResult, error)
	GetSessionStatus(ctx context.Context, sessionID string) (entities.SignatureStatusResult, error)
	CancelSession(ctx context.Context, sessionID, reason string) (entities.SignatureCancelResult, error)
	DownloadSignedDocument(ctx context.Context, sessionID string) ([]byte, error)
}
