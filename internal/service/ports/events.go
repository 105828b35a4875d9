package ports

import (
	"context"
	"time"

	"github.com/kioooy/SWP391-Project-sub001/internal/domain"
)

// EventRegistry is the external catalog of donation periods and scheduled
// events, and the target of registration commands.
type EventRegistry interface {
	ListPeriods(ctx context.Context) ([]domain.DonationPeriod, error)
	ListEvents(ctx context.Context, from, to time.Time) ([]domain.DonationEvent, error)
	GetEvent(ctx context.Context, id string) (*domain.DonationEvent, error)
	RegisterForEvent(ctx context.Context, eventID, userID string) error
}
