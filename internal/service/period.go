package service

import (
	"context"
	"fmt"

	"github.com/kioooy/SWP391-Project-sub001/internal/clock"
	"github.com/kioooy/SWP391-Project-sub001/internal/domain"
	"github.com/kioooy/SWP391-Project-sub001/internal/service/ports"
)

// ClassifiedPeriod pairs a period with its lifecycle bucket at listing time.
// The bucket is derived, never stored.
type ClassifiedPeriod struct {
	domain.DonationPeriod
	Bucket domain.Bucket `json:"bucket"`
}

type PeriodList struct {
	Periods []ClassifiedPeriod    `json:"periods"`
	Counts  map[domain.Bucket]int `json:"counts"`
	Total   int                   `json:"total"`
}

type PeriodService struct {
	registry ports.EventRegistry
	clock    clock.Clock
}

func NewPeriodService(registry ports.EventRegistry, clock clock.Clock) *PeriodService {
	return &PeriodService{
		registry: registry,
		clock:    clock,
	}
}

// List fetches the period catalog, classifies each period against the
// current instant and filters by bucket and substring query (logical AND).
// Counts cover the whole catalog regardless of the applied filter; Total is
// the universal (All) count.
func (s *PeriodService) List(ctx context.Context, bucket domain.Bucket, query string) (*PeriodList, error) {
	periods, err := s.registry.ListPeriods(ctx)
	if err != nil {
		return nil, fmt.Errorf("list periods: %w", err)
	}

	now := s.clock.Now()
	result := &PeriodList{
		Periods: make([]ClassifiedPeriod, 0, len(periods)),
		Counts: map[domain.Bucket]int{
			domain.BucketOngoing:   0,
			domain.BucketUpcoming:  0,
			domain.BucketCompleted: 0,
		},
		Total: len(periods),
	}

	for _, p := range periods {
		b := p.ClassifyAt(now)
		if b != domain.BucketNone {
			result.Counts[b]++
		}

		if bucket != domain.BucketAll && b != bucket {
			continue
		}
		if !p.Matches(query) {
			continue
		}

		result.Periods = append(result.Periods, ClassifiedPeriod{
			DonationPeriod: p,
			Bucket:         b,
		})
	}

	return result, nil
}
