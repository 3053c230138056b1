package response

import (
	"time"

	"barber-booking/internal/usecase/queries"
)

type LineItemResponse struct {
	ServiceName    string `json:"serviceName"`
	ServiceCode    string `json:"serviceCode"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	DurationHours  int    `json:"durationHours"`
}

type BookingResponse struct {
	ID              int64              `json:"id"`
	Date            string             `json:"date"`
	StartTime       string             `json:"startTime"`
	DurationHours   int                `json:"durationHours"`
	CustomerRef     string             `json:"customerRef"`
	CustomerName    string             `json:"customerName"`
	CustomerPhone   string             `json:"customerPhone"`
	TotalPriceCents int64              `json:"totalPriceCents"`
	LineItems       []LineItemResponse `json:"lineItems"`
	CreatedAt       time.Time          `json:"createdAt"`
}

type AvailableTimesResponse struct {
	AvailableStartTimes []string `json:"availableStartTimes"`
	Date                string   `json:"date"`
	Duration            int      `json:"duration"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	items := make([]LineItemResponse, len(v.LineItems))
	for i, li := range v.LineItems {
		items[i] = LineItemResponse{
			ServiceName:    li.ServiceName,
			ServiceCode:    li.ServiceCode,
			UnitPriceCents: li.UnitPriceCents,
			DurationHours:  li.DurationHours,
		}
	}

	return &BookingResponse{
		ID:              v.ID,
		Date:            v.Date,
		StartTime:       v.StartTime,
		DurationHours:   v.DurationHours,
		CustomerRef:     v.CustomerRef,
		CustomerName:    v.CustomerName,
		CustomerPhone:   v.CustomerPhone,
		TotalPriceCents: v.TotalPriceCents,
		LineItems:       items,
		CreatedAt:       v.CreatedAt,
	}
}

func FromAvailableTimesResult(r *queries.AvailableTimesResult) *AvailableTimesResponse {
	startTimes := r.StartTimes
	if startTimes == nil {
		startTimes = []string{}
	}
	return &AvailableTimesResponse{
		AvailableStartTimes: startTimes,
		Date:                r.Date,
		Duration:            r.Duration,
	}
}
