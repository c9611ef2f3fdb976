package interfaces

import (
	"context"
	"detailing_crm/internal/domain/entities"
)

//go:generate mockgen -source=visit_repository_interface.go -destination=mocks/visit_repository_mock.go -package=mock_interfaces

// IVisitRepository abstracts DynamoDB persistence for Visit.
//
// Lookups return a zero Visit (empty ID) and no error when nothing matches.
type IVisitRepository interface {
	Create(ctx context.Context, v entities.Visit) (entities.Visit, error)
	GetByID(ctx context.Context, id string) (entities.Visit, error)
	// Save replaces an existing visit (services included) and bumps updated_at.
	Save(ctx context.Context, v entities.Visit) (entities.Visit, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.VisitStatus) (entities.Visit, error)
}
