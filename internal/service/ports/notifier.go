package ports

import (
	"context"

	"github.com/kioooy/SWP391-Project-sub001/internal/domain"
)

// SupplyNotifier alerts the coordinator channel about supply lifecycle
// changes. Implementations must not block the request path.
type SupplyNotifier interface {
	NotifyShortfall(ctx context.Context, rec *domain.MobilizationRecord)
	NotifyMobilizationRequested(ctx context.Context, rec *domain.MobilizationRecord)
	NotifyOfferLapsed(ctx context.Context, rec *domain.MobilizationRecord)
}
