package scheduler

import (
	"context"
	"time"

	"github.com/kioooy/SWP391-Project-sub001/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type OfferLapser interface {
	LapseExpiredOffers(ctx context.Context) ([]*domain.MobilizationRecord, error)
}

// Scheduler periodically sweeps mobilization offers that were never acted
// on, marking them lapsed so the coordinator view stays honest.
type Scheduler struct {
	supplyService OfferLapser
	interval      time.Duration
	logger        logger.Logger
}

func New(
	supplyService OfferLapser,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		supplyService: supplyService,
		interval:      interval,
		logger:        logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	lapsed, err := s.supplyService.LapseExpiredOffers(ctx)
	if err != nil {
		s.logger.Error("failed to lapse expired offers",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, rec := range lapsed {
		s.logger.Info("mobilization offer lapsed",
			logger.String("mobilization_id", rec.ID),
			logger.String("blood_type", string(rec.BloodType)),
		)
	}
}
