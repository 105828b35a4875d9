package ports

import (
	"context"

	"github.com/kioooy/SWP391-Project-sub001/internal/domain"
)

// MobilizationClient issues the donor-mobilization command. The command is
// fire-and-forget: whether donors respond is out of scope here.
type MobilizationClient interface {
	RequestMobilization(ctx context.Context, bloodType domain.BloodType, volumeMl float64) error
}

// MobilizationJournal is the local audit of shortfall offers and issued
// mobilization requests.
type MobilizationJournal interface {
	Create(ctx context.Context, rec *domain.MobilizationRecord) error
	GetByID(ctx context.Context, id string) (*domain.MobilizationRecord, error)
	MarkRequested(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string) error
	LapseExpired(ctx context.Context) ([]*domain.MobilizationRecord, error)
	List(ctx context.Context) ([]*domain.MobilizationRecord, error)
}
