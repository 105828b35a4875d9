package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kioooy/SWP391-Project-sub001/internal/clock"
	"github.com/kioooy/SWP391-Project-sub001/internal/domain"
	"github.com/kioooy/SWP391-Project-sub001/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// ClassifiedEvent pairs a scheduled event with its lifecycle bucket at
// listing time, same derivation as period listings.
type ClassifiedEvent struct {
	domain.DonationEvent
	Bucket domain.Bucket `json:"bucket"`
}

// RegistrationService gates event registrations by session and capacity
// before issuing the registration command to the event registry.
type RegistrationService struct {
	registry ports.EventRegistry
	session  ports.SessionClient
	clock    clock.Clock
	logger   logger.Logger
}

func NewRegistrationService(
	registry ports.EventRegistry,
	session ports.SessionClient,
	clock clock.Clock,
	logger logger.Logger,
) *RegistrationService {
	return &RegistrationService{
		registry: registry,
		session:  session,
		clock:    clock,
		logger:   logger,
	}
}

func (s *RegistrationService) ListEvents(ctx context.Context, from, to time.Time) ([]ClassifiedEvent, error) {
	events, err := s.registry.ListEvents(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	now := s.clock.Now()
	classified := make([]ClassifiedEvent, 0, len(events))
	for _, e := range events {
		classified = append(classified, ClassifiedEvent{
			DonationEvent: e,
			Bucket:        e.ClassifyAt(now),
		})
	}

	return classified, nil
}

// Register resolves the caller, checks capacity against the current event
// counts and issues one registration command. A full event and a missing
// session are normal denial outcomes, not internal errors.
func (s *RegistrationService) Register(ctx context.Context, token, eventID string) (*domain.Caller, error) {
	caller, err := s.resolveCaller(ctx, token)
	if err != nil {
		return nil, err
	}

	event, err := s.registry.GetEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	switch domain.CanRegister(*event, caller) {
	case domain.RegistrationDeniedUnauthenticated:
		return nil, domain.ErrUnauthenticated
	case domain.RegistrationDeniedFull:
		return nil, domain.ErrEventFull
	}

	if err := s.registry.RegisterForEvent(ctx, eventID, caller.ID); err != nil {
		return nil, fmt.Errorf("register for event: %w", err)
	}

	s.logger.Info("donor registered for event",
		logger.String("event_id", eventID),
		logger.String("user_id", caller.ID),
	)

	return caller, nil
}

func (s *RegistrationService) resolveCaller(ctx context.Context, token string) (*domain.Caller, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}

	caller, err := s.session.CurrentUser(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthenticated) {
			return nil, err
		}
		return nil, fmt.Errorf("resolve session: %w", err)
	}

	return caller, nil
}
