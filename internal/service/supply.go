package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kioooy/SWP391-Project-sub001/internal/domain"
	"github.com/kioooy/SWP391-Project-sub001/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type SubmitInput struct {
	BloodType   string
	Component   string
	VolumeMl    string
	DesiredDate time.Time
	Notes       string
}

// SupplyService runs the blood request workflow: resolve inventory, book
// when sufficient, offer mobilization when not. Each run is stateless; the
// only durable trace is the mobilization journal.
type SupplyService struct {
	inventory    ports.InventoryClient
	booking      ports.BookingClient
	mobilization ports.MobilizationClient
	journal      ports.MobilizationJournal
	notifier     ports.SupplyNotifier
	logger       logger.Logger
}

func NewSupplyService(
	inventory ports.InventoryClient,
	booking ports.BookingClient,
	mobilization ports.MobilizationClient,
	journal ports.MobilizationJournal,
	notifier ports.SupplyNotifier,
	logger logger.Logger,
) *SupplyService {
	return &SupplyService{
		inventory:    inventory,
		booking:      booking,
		mobilization: mobilization,
		journal:      journal,
		notifier:     notifier,
		logger:       logger,
	}
}

// Submit drives one request from Idle to a terminal or waiting state.
// Inventory is queried exactly once per run and never cached. Every
// capability failure ends the run as Failed with the reason preserved;
// nothing is retried here.
func (s *SupplyService) Submit(ctx context.Context, input SubmitInput) (*domain.BookingOutcome, error) {
	req, err := domain.NewBloodRequest(
		input.BloodType, input.Component, input.VolumeMl,
		input.DesiredDate, input.Notes,
	)
	if err != nil {
		return nil, err
	}

	outcome := &domain.BookingOutcome{Request: &req}
	outcome.Advance(domain.StateIdle)
	outcome.Advance(domain.StateSearching)

	snapshot, err := s.inventory.AvailableVolume(ctx, req.BloodType, req.Component)
	if err != nil {
		return s.fail(outcome, fmt.Errorf("inventory query: %w", err))
	}
	outcome.Snapshot = snapshot

	if snapshot.Covers(req.VolumeMl) {
		outcome.Advance(domain.StateSufficient)
		if err := s.booking.CreateBooking(ctx, req); err != nil {
			return s.fail(outcome, fmt.Errorf("create booking: %w", err))
		}
		outcome.Advance(domain.StateBooked)

		s.logger.Info("blood request booked",
			logger.String("blood_type", string(req.BloodType)),
			logger.String("component", string(req.Component)),
			logger.Any("volume_ml", req.VolumeMl),
		)
		return outcome, nil
	}

	outcome.Advance(domain.StateInsufficient)
	outcome.ShortfallMl = req.VolumeMl - snapshot.AvailableVolumeMl

	now := time.Now().UTC()
	rec := &domain.MobilizationRecord{
		ID:          uuid.New().String(),
		BloodType:   req.BloodType,
		VolumeMl:    req.VolumeMl,
		ShortfallMl: outcome.ShortfallMl,
		Status:      domain.MobilizationOfferedStatus,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.journal.Create(ctx, rec); err != nil {
		return s.fail(outcome, fmt.Errorf("record shortfall: %w", err))
	}

	outcome.Advance(domain.StateMobilizationOffered)
	outcome.MobilizationID = rec.ID

	s.logger.Info("inventory shortfall, mobilization offered",
		logger.String("mobilization_id", rec.ID),
		logger.String("blood_type", string(req.BloodType)),
		logger.Any("shortfall_ml", outcome.ShortfallMl),
	)

	go s.notifier.NotifyShortfall(context.WithoutCancel(ctx), rec)

	return outcome, nil
}

// RequestMobilization issues the donor-mobilization command for a pending
// offer. Only explicit caller action lands here, and only an offered row
// may proceed: that is what keeps MobilizationRequested unreachable without
// a prior observed insufficiency.
func (s *SupplyService) RequestMobilization(ctx context.Context, offerID string) (*domain.BookingOutcome, error) {
	rec, err := s.journal.GetByID(ctx, offerID)
	if err != nil {
		return nil, fmt.Errorf("get offer: %w", err)
	}

	if rec.Status != domain.MobilizationOfferedStatus {
		return nil, domain.ErrMobilizationNotOffered
	}

	outcome := &domain.BookingOutcome{MobilizationID: rec.ID}
	outcome.Advance(domain.StateMobilizationOffered)

	if err := s.mobilization.RequestMobilization(ctx, rec.BloodType, rec.VolumeMl); err != nil {
		if markErr := s.journal.MarkFailed(ctx, rec.ID); markErr != nil {
			s.logger.Error("failed to mark mobilization failed",
				logger.String("mobilization_id", rec.ID),
				logger.String("error", markErr.Error()),
			)
		}
		return s.fail(outcome, fmt.Errorf("request mobilization: %w", err))
	}

	if err := s.journal.MarkRequested(ctx, rec.ID); err != nil {
		// The command is already out and cannot be rescinded; surface the
		// journal failure but keep the requested state in the outcome.
		s.logger.Error("mobilization issued but journal update failed",
			logger.String("mobilization_id", rec.ID),
			logger.String("error", err.Error()),
		)
	}
	outcome.Advance(domain.StateMobilizationRequested)

	s.logger.Info("mobilization requested",
		logger.String("mobilization_id", rec.ID),
		logger.String("blood_type", string(rec.BloodType)),
		logger.Any("volume_ml", rec.VolumeMl),
	)

	go s.notifier.NotifyMobilizationRequested(context.WithoutCancel(ctx), rec)

	return outcome, nil
}

func (s *SupplyService) ListMobilizations(ctx context.Context) ([]*domain.MobilizationRecord, error) {
	return s.journal.List(ctx)
}

// LapseExpiredOffers marks offers that were never acted on as lapsed and
// notifies coordinators. Issued mobilizations are never touched.
func (s *SupplyService) LapseExpiredOffers(ctx context.Context) ([]*domain.MobilizationRecord, error) {
	lapsed, err := s.journal.LapseExpired(ctx)
	if err != nil {
		return nil, fmt.Errorf("lapse expired offers: %w", err)
	}

	if len(lapsed) > 0 {
		s.logger.Info("mobilization offers lapsed",
			logger.Int("count", len(lapsed)),
		)

		go func(recs []*domain.MobilizationRecord) {
			for _, rec := range recs {
				s.notifier.NotifyOfferLapsed(context.WithoutCancel(ctx), rec)
			}
		}(lapsed)
	}

	return lapsed, nil
}

func (s *SupplyService) fail(outcome *domain.BookingOutcome, err error) (*domain.BookingOutcome, error) {
	outcome.Advance(domain.StateFailed)
	outcome.FailureReason = err.Error()

	s.logger.Error("blood request workflow failed",
		logger.String("reason", err.Error()),
	)

	return outcome, err
}
