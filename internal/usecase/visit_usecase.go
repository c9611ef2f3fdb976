package usecase

import (
	"context"
	"detailing_crm/internal/domain/entities"
	"detailing_crm/internal/domain/pricing"
	"detailing_crm/internal/usecase/interfaces"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrVisitNotFound          = errors.New("visit not found")
	ErrInvalidVisitID         = errors.New("invalid visit id")
	ErrInvalidClientID        = errors.New("invalid client id")
	ErrInvalidServiceID       = errors.New("invalid service id")
	ErrInvalidServiceName     = errors.New("invalid service name")
	ErrInvalidBasePrice       = errors.New("invalid base price")
	ErrVisitNotEditable       = errors.New("visit services can only change while pending")
	ErrInvalidVisitTransition = errors.New("invalid visit status transition")
)

// customServicePrefix marks services typed in by hand rather than picked
// from the catalogue.
const customServicePrefix = "custom-"

// IVisitUseCase edits the services of a visit and keeps its prices in sync.
//
// Every edit loads the visit, applies one pricing transformation and saves the
// whole visit back. The final price of a service is always recomputed from its
// base price and discount.
type IVisitUseCase interface {
	CreateVisit(ctx context.Context, clientID, vehicleID string, services []pricing.LineItem) (entities.Visit, error)
	GetByID(ctx context.Context, id string) (entities.Visit, error)
	ApproveByID(ctx context.Context, id string) (entities.Visit, error)
	RejectByID(ctx context.Context, id string) (entities.Visit, error)
	CancelByID(ctx context.Context, id string) (entities.Visit, error)
	AddService(ctx context.Context, visitID string, service pricing.LineItem) (entities.Visit, error)
	RemoveService(ctx context.Context, visitID, serviceID string) (entities.Visit, error)
	UpdateBasePrice(ctx context.Context, visitID, serviceID string, netAmount decimal.Decimal) (entities.Visit, error)
	UpdateDiscountType(ctx context.Context, visitID, serviceID string, t pricing.DiscountType) (entities.Visit, error)
	UpdateDiscountValue(ctx context.Context, visitID, serviceID string, value decimal.Decimal) (entities.Visit, error)
	UpdateNote(ctx context.Context, visitID, serviceID, note string) (entities.Visit, error)
	Totals(ctx context.Context, visitID string) (pricing.Totals, error)
}

type VisitUseCase struct {
	repo interfaces.IVisitRepository
}

var _ IVisitUseCase = (*VisitUseCase)(nil)

func NewVisitUseCase(repo interfaces.IVisitRepository) *VisitUseCase {
	return &VisitUseCase{repo: repo}
}

func (u *VisitUseCase) CreateVisit(ctx context.Context, clientID, vehicleID string, services []pricing.LineItem) (entities.Visit, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return entities.Visit{}, ErrInvalidClientID
	}

	items := []pricing.LineItem{}
	for _, s := range services {
		item, err := newService(s)
		if err != nil {
			return entities.Visit{}, err
		}
		if items, err = pricing.AddLineItem(items, item); err != nil {
			return entities.Visit{}, err
		}
	}

	now := time.Now().UTC()
	v := entities.Visit{
		ID:        uuid.NewString(),
		ClientID:  clientID,
		VehicleID: strings.TrimSpace(vehicleID),
		Status:    entities.VisitStatusPending,
		Services:  items,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, v)
}

func (u *VisitUseCase) GetByID(ctx context.Context, id string) (entities.Visit, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Visit{}, ErrInvalidVisitID
	}

	v, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Visit{}, err
	}
	if v.ID == "" {
		return entities.Visit{}, ErrVisitNotFound
	}
	return v, nil
}

func (u *VisitUseCase) ApproveByID(ctx context.Context, id string) (entities.Visit, error) {
	return u.updateStatus(ctx, id, entities.VisitStatusApproved, entities.VisitStatusPending)
}

func (u *VisitUseCase) RejectByID(ctx context.Context, id string) (entities.Visit, error) {
	return u.updateStatus(ctx, id, entities.VisitStatusRejected, entities.VisitStatusPending)
}

func (u *VisitUseCase) CancelByID(ctx context.Context, id string) (entities.Visit, error) {
	return u.updateStatus(ctx, id, entities.VisitStatusCancelled, entities.VisitStatusPending, entities.VisitStatusApproved)
}

func (u *VisitUseCase) updateStatus(ctx context.Context, id string, status entities.VisitStatus, from ...entities.VisitStatus) (entities.Visit, error) {
	v, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Visit{}, err
	}
	if !statusIn(v.Status, from) {
		return entities.Visit{}, ErrInvalidVisitTransition
	}

	updated, err := u.repo.UpdateStatusByID(ctx, v.ID, status)
	if err != nil {
		return entities.Visit{}, err
	}
	if updated.ID == "" {
		return entities.Visit{}, ErrVisitNotFound
	}
	return updated, nil
}

// AddService appends a service. Services without an id get a generated
// custom- id.
func (u *VisitUseCase) AddService(ctx context.Context, visitID string, service pricing.LineItem) (entities.Visit, error) {
	item, err := newService(service)
	if err != nil {
		return entities.Visit{}, err
	}
	return u.edit(ctx, visitID, func(items []pricing.LineItem) ([]pricing.LineItem, error) {
		return pricing.AddLineItem(items, item)
	})
}

func (u *VisitUseCase) RemoveService(ctx context.Context, visitID, serviceID string) (entities.Visit, error) {
	return u.editService(ctx, visitID, serviceID, func(items []pricing.LineItem, id string) ([]pricing.LineItem, error) {
		return pricing.RemoveLineItem(items, id)
	})
}

func (u *VisitUseCase) UpdateBasePrice(ctx context.Context, visitID, serviceID string, netAmount decimal.Decimal) (entities.Visit, error) {
	if netAmount.IsNegative() {
		return entities.Visit{}, ErrInvalidBasePrice
	}
	return u.editService(ctx, visitID, serviceID, func(items []pricing.LineItem, id string) ([]pricing.LineItem, error) {
		return pricing.UpdateBasePrice(items, id, netAmount)
	})
}

func (u *VisitUseCase) UpdateDiscountType(ctx context.Context, visitID, serviceID string, t pricing.DiscountType) (entities.Visit, error) {
	return u.editService(ctx, visitID, serviceID, func(items []pricing.LineItem, id string) ([]pricing.LineItem, error) {
		return pricing.UpdateDiscountType(items, id, t)
	})
}

func (u *VisitUseCase) UpdateDiscountValue(ctx context.Context, visitID, serviceID string, value decimal.Decimal) (entities.Visit, error) {
	return u.editService(ctx, visitID, serviceID, func(items []pricing.LineItem, id string) ([]pricing.LineItem, error) {
		return pricing.UpdateDiscountValue(items, id, value)
	})
}

func (u *VisitUseCase) UpdateNote(ctx context.Context, visitID, serviceID, note string) (entities.Visit, error) {
	return u.editService(ctx, visitID, serviceID, func(items []pricing.LineItem, id string) ([]pricing.LineItem, error) {
		return pricing.UpdateNote(items, id, note)
	})
}

func (u *VisitUseCase) Totals(ctx context.Context, visitID string) (pricing.Totals, error) {
	v, err := u.GetByID(ctx, visitID)
	if err != nil {
		return pricing.Totals{}, err
	}
	return v.Totals(), nil
}

func (u *VisitUseCase) editService(ctx context.Context, visitID, serviceID string, fn func([]pricing.LineItem, string) ([]pricing.LineItem, error)) (entities.Visit, error) {
	serviceID = strings.TrimSpace(serviceID)
	if serviceID == "" {
		return entities.Visit{}, ErrInvalidServiceID
	}
	return u.edit(ctx, visitID, func(items []pricing.LineItem) ([]pricing.LineItem, error) {
		return fn(items, serviceID)
	})
}

func (u *VisitUseCase) edit(ctx context.Context, visitID string, fn func([]pricing.LineItem) ([]pricing.LineItem, error)) (entities.Visit, error) {
	v, err := u.GetByID(ctx, visitID)
	if err != nil {
		return entities.Visit{}, err
	}
	if !v.Editable() {
		return entities.Visit{}, ErrVisitNotEditable
	}

	items, err := fn(v.Services)
	if err != nil {
		return entities.Visit{}, err
	}
	v.Services = items
	v.UpdatedAt = time.Now().UTC()

	saved, err := u.repo.Save(ctx, v)
	if err != nil {
		return entities.Visit{}, err
	}
	if saved.ID == "" {
		return entities.Visit{}, ErrVisitNotFound
	}
	return saved, nil
}

// newService validates a service coming from a caller and recomputes its
// final price; whatever final price the caller sent is ignored.
func newService(s pricing.LineItem) (pricing.LineItem, error) {
	name := strings.TrimSpace(s.Name)
	if name == "" {
		return pricing.LineItem{}, ErrInvalidServiceName
	}
	if s.BasePrice.NetAmount.IsNegative() {
		return pricing.LineItem{}, ErrInvalidBasePrice
	}
	id := strings.TrimSpace(s.ID)
	if id == "" {
		id = customServicePrefix + uuid.NewString()
	}
	base := s.BasePrice
	if base.GrossAmount.IsZero() && base.TaxAmount.IsZero() {
		base = pricing.RecomputeOnBasePriceChange(base.NetAmount)
	}
	return pricing.NewLineItem(id, name, s.Quantity, base, s.Discount, s.Note), nil
}

func statusIn(s entities.VisitStatus, allowed []entities.VisitStatus) bool {
	for _, a := range allowed {
		if s == a {
			return true
		}
	}
	return false
}
