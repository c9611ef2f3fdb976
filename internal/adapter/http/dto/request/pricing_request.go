package request

import (
	"detailing_crm/internal/domain/pricing"
	"strconv"
)

// QuoteRequest prices a list of services without storing anything.
type QuoteRequest struct {
	Services []ServiceRequest `json:"services" binding:"required,dive"`
}

// ToLineItems numbers services that carry no id as line-1, line-2, ...
func (r QuoteRequest) ToLineItems() ([]pricing.LineItem, error) {
	items := []pricing.LineItem{}
	for i, s := range r.Services {
		it, err := s.ToLineItem()
		if err != nil {
			return nil, err
		}
		if it.ID == "" {
			it.ID = "line-" + strconv.Itoa(i+1)
		}
		if items, err = pricing.AddLineItem(items, it); err != nil {
			return nil, err
		}
	}
	return items, nil
}
