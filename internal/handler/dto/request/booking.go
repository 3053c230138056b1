package request

import (
	"barber-booking/internal/usecase/commands"
)

type LineItemRequest struct {
	ServiceName    string `json:"serviceName" binding:"required"`
	ServiceCode    string `json:"serviceCode"`
	UnitPriceCents int64  `json:"unitPriceCents" binding:"gte=0"`
	DurationHours  int    `json:"durationHours" binding:"required,gte=1"`
}

type CreateBookingRequest struct {
	Date            string            `json:"date" binding:"required"`
	StartTime       string            `json:"startTime" binding:"required"`
	DurationHours   int               `json:"durationHours" binding:"omitempty,gte=1"`
	CustomerRef     string            `json:"customerRef" binding:"required"`
	CustomerName    string            `json:"customerName" binding:"required"`
	CustomerPhone   string            `json:"customerPhone" binding:"required"`
	LineItems       []LineItemRequest `json:"lineItems" binding:"omitempty,dive"`
	TotalPriceCents int64             `json:"totalPriceCents" binding:"gte=0"`
}

func (r CreateBookingRequest) ToParams() commands.CommitBookingParams {
	duration := r.DurationHours
	if duration == 0 {
		duration = 1
	}

	items := make([]commands.LineItemParams, len(r.LineItems))
	for i, li := range r.LineItems {
		items[i] = commands.LineItemParams{
			ServiceName:    li.ServiceName,
			ServiceCode:    li.ServiceCode,
			UnitPriceCents: li.UnitPriceCents,
			DurationHours:  li.DurationHours,
		}
	}

	return commands.CommitBookingParams{
		Date:            r.Date,
		StartTime:       r.StartTime,
		DurationHours:   duration,
		CustomerRef:     r.CustomerRef,
		CustomerName:    r.CustomerName,
		CustomerPhone:   r.CustomerPhone,
		LineItems:       items,
		TotalPriceCents: r.TotalPriceCents,
	}
}
