package ports

import (
	"context"

	"github.com/kioooy/SWP391-Project-sub001/internal/domain"
)

// InventoryClient queries the external blood inventory. Implementations
// must return promptly or fail; partial results are not allowed.
type InventoryClient interface {
	AvailableVolume(ctx context.Context, bloodType domain.BloodType, component domain.Component) (*domain.InventorySnapshot, error)
}
