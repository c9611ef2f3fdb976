package request

import (
	"detailing_crm/internal/domain/entities"
	"strings"
)

type SignatureCreateRequest struct {
	ProtocolID     int64   `json:"protocol_id" binding:"required"`
	TabletID       string  `json:"tablet_id" binding:"required"`
	CustomerName   string  `json:"customer_name" binding:"required"`
	Instructions   *string `json:"instructions"`
	TimeoutMinutes *int    `json:"timeout_minutes"`
}

type SignatureCancelRequest struct {
	Reason string `json:"reason"`
}

func (r SignatureCreateRequest) ToEntity() entities.SignatureRequest {
	return entities.SignatureRequest{
		ProtocolID:     r.ProtocolID,
		TabletID:       strings.TrimSpace(r.TabletID),
		CustomerName:   strings.TrimSpace(r.CustomerName),
		Instructions:   r.Instructions,
		TimeoutMinutes: r.TimeoutMinutes,
	}
}
