package client

import (
	"context"
	"net/http"
	"time"

	"github.com/kioooy/SWP391-Project-sub001/internal/domain"
)

// BookingClient issues booking commands to the blood bank service.
type BookingClient struct {
	capability
}

func NewBookingClient(cfg Config) *BookingClient {
	return &BookingClient{capability: newCapability("booking", cfg)}
}

func (c *BookingClient) CreateBooking(ctx context.Context, req domain.BloodRequest) error {
	body := struct {
		BloodType   string  `json:"blood_type"`
		Component   string  `json:"component"`
		VolumeMl    float64 `json:"volume_ml"`
		DesiredDate string  `json:"desired_date"`
		Notes       string  `json:"notes,omitempty"`
	}{
		BloodType:   string(req.BloodType),
		Component:   string(req.Component),
		VolumeMl:    req.VolumeMl,
		DesiredDate: req.DesiredDate.Format(time.RFC3339),
		Notes:       req.Notes,
	}

	return c.doJSON(ctx, http.MethodPost, "/api/bookings", nil, body, nil)
}
