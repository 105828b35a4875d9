package ports

import (
	"context"

	"github.com/kioooy/SWP391-Project-sub001/internal/domain"
)

// BookingClient issues the booking command against the external blood bank.
type BookingClient interface {
	CreateBooking(ctx context.Context, req domain.BloodRequest) error
}
