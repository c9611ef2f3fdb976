package interfaces

import (
	"context"
	"detailing_crm/internal/domain/entities"
)

//go:generate mockgen -source=visit_payment_repository_interface.go -destination=mocks/visit_payment_repository_mock.go -package=mock_interfaces

// IVisitPaymentRepository abstracts DynamoDB persistence for VisitPayment.
type IVisitPaymentRepository interface {
	Create(ctx context.Context, p entities.VisitPayment) (entities.VisitPayment, error)
	GetByID(ctx context.Context, id string) (entities.VisitPayment, error)
	ListByVisitID(ctx context.Context, visitID string) ([]entities.VisitPayment, error)
}
