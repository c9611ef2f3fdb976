package entities

import (
	"time"

	"detailing_crm/internal/domain/pricing"
)

// VisitStatus represents the lifecycle of a visit's service quote.
//
// Domain notes:
//   - Services can only be edited while the visit is pending.
//   - A visit must be approved by the customer before it can be paid.
type VisitStatus string

const (
	VisitStatusPending   VisitStatus = "pending"
	VisitStatusApproved  VisitStatus = "approved"
	VisitStatusRejected  VisitStatus = "rejected"
	VisitStatusCancelled VisitStatus = "cancelled"
)

// Visit is a detailing visit with the services performed on a vehicle.
//
// Storage model (DynamoDB):
//   - PK: id
//   - services are embedded as a list, in insertion order
type Visit struct {
	ID        string             `json:"id"`
	ClientID  string             `json:"client_id"`
	VehicleID string             `json:"vehicle_id"`
	Status    VisitStatus        `json:"status"`
	Services  []pricing.LineItem `json:"services"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// Totals aggregates the visit's services.
func (v Visit) Totals() pricing.Totals {
	return pricing.AggregateTotals(v.Services)
}

// Editable reports whether services may still change.
func (v Visit) Editable() bool {
	return v.Status == VisitStatusPending
}
