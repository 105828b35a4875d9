package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kioooy/SWP391-Project-sub001/internal/domain"
	"github.com/kioooy/SWP391-Project-sub001/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type supplyMocks struct {
	inventory    *mocks.MockInventoryClient
	booking      *mocks.MockBookingClient
	mobilization *mocks.MockMobilizationClient
	journal      *mocks.MockMobilizationJournal
	notifier     *mocks.MockSupplyNotifier
}

func newSupplyService(t *testing.T) (*SupplyService, supplyMocks) {
	t.Helper()
	m := supplyMocks{
		inventory:    mocks.NewMockInventoryClient(t),
		booking:      mocks.NewMockBookingClient(t),
		mobilization: mocks.NewMockMobilizationClient(t),
		journal:      mocks.NewMockMobilizationJournal(t),
		notifier:     mocks.NewMockSupplyNotifier(t),
	}
	svc := NewSupplyService(m.inventory, m.booking, m.mobilization, m.journal, m.notifier, newTestLogger(t))
	return svc, m
}

func submitInput(volume string) SubmitInput {
	return SubmitInput{
		BloodType:   "A+",
		Component:   "whole-blood",
		VolumeMl:    volume,
		DesiredDate: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestSupplyService_Submit_SufficientBooks(t *testing.T) {
	svc, m := newSupplyService(t)

	snapshot := &domain.InventorySnapshot{
		BloodType:         domain.BloodAPos,
		Component:         domain.ComponentWholeBlood,
		AvailableVolumeMl: 300,
		QueriedAt:         time.Now().UTC(),
	}

	m.inventory.EXPECT().
		AvailableVolume(mock.Anything, domain.BloodAPos, domain.ComponentWholeBlood).
		Return(snapshot, nil).
		Once()
	m.booking.EXPECT().
		CreateBooking(mock.Anything, mock.Anything).
		Return(nil).
		Once()

	outcome, err := svc.Submit(context.Background(), submitInput("200"))

	require.NoError(t, err)
	assert.Equal(t, domain.StateBooked, outcome.State)
	assert.Equal(t, []domain.WorkflowState{
		domain.StateIdle,
		domain.StateSearching,
		domain.StateSufficient,
		domain.StateBooked,
	}, outcome.Trace)
	assert.Equal(t, snapshot, outcome.Snapshot)
}

func TestSupplyService_Submit_SufficientAtExactVolume(t *testing.T) {
	svc, m := newSupplyService(t)

	snapshot := &domain.InventorySnapshot{AvailableVolumeMl: 200}

	m.inventory.EXPECT().
		AvailableVolume(mock.Anything, domain.BloodAPos, domain.ComponentWholeBlood).
		Return(snapshot, nil)
	m.booking.EXPECT().CreateBooking(mock.Anything, mock.Anything).Return(nil)

	outcome, err := svc.Submit(context.Background(), submitInput("200"))

	require.NoError(t, err)
	assert.Equal(t, domain.StateBooked, outcome.State)
}

func TestSupplyService_Submit_InsufficientOffersMobilization(t *testing.T) {
	svc, m := newSupplyService(t)

	snapshot := &domain.InventorySnapshot{
		BloodType:         domain.BloodAPos,
		Component:         domain.ComponentWholeBlood,
		AvailableVolumeMl: 100,
	}

	m.inventory.EXPECT().
		AvailableVolume(mock.Anything, domain.BloodAPos, domain.ComponentWholeBlood).
		Return(snapshot, nil)

	var created *domain.MobilizationRecord
	m.journal.EXPECT().
		Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, rec *domain.MobilizationRecord) {
			created = rec
		}).
		Return(nil)
	m.notifier.EXPECT().NotifyShortfall(mock.Anything, mock.Anything).Return()

	outcome, err := svc.Submit(context.Background(), submitInput("200"))

	require.NoError(t, err)
	assert.Equal(t, domain.StateMobilizationOffered, outcome.State)
	assert.Equal(t, []domain.WorkflowState{
		domain.StateIdle,
		domain.StateSearching,
		domain.StateInsufficient,
		domain.StateMobilizationOffered,
	}, outcome.Trace)
	assert.Equal(t, 100.0, outcome.ShortfallMl)
	assert.NotEmpty(t, outcome.MobilizationID)

	require.NotNil(t, created)
	assert.Equal(t, domain.MobilizationOfferedStatus, created.Status)
	assert.Equal(t, domain.BloodAPos, created.BloodType)
	assert.Equal(t, 200.0, created.VolumeMl)
	assert.Equal(t, 100.0, created.ShortfallMl)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestSupplyService_Submit_InventoryFailure(t *testing.T) {
	svc, m := newSupplyService(t)

	m.inventory.EXPECT().
		AvailableVolume(mock.Anything, domain.BloodAPos, domain.ComponentWholeBlood).
		Return(nil, domain.ErrServiceUnavailable)

	outcome, err := svc.Submit(context.Background(), submitInput("200"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrServiceUnavailable)
	require.NotNil(t, outcome)
	assert.Equal(t, domain.StateFailed, outcome.State)
	assert.Contains(t, outcome.FailureReason, "inventory query")
	// no booking or mobilization command was issued: the mocks would fail
	// the test on any unexpected call
}

func TestSupplyService_Submit_BookingFailure(t *testing.T) {
	svc, m := newSupplyService(t)

	m.inventory.EXPECT().
		AvailableVolume(mock.Anything, domain.BloodAPos, domain.ComponentWholeBlood).
		Return(&domain.InventorySnapshot{AvailableVolumeMl: 500}, nil)
	m.booking.EXPECT().
		CreateBooking(mock.Anything, mock.Anything).
		Return(domain.ErrServiceUnavailable)

	outcome, err := svc.Submit(context.Background(), submitInput("200"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrServiceUnavailable)
	assert.Equal(t, domain.StateFailed, outcome.State)
	assert.Equal(t, []domain.WorkflowState{
		domain.StateIdle,
		domain.StateSearching,
		domain.StateSufficient,
		domain.StateFailed,
	}, outcome.Trace)
}

func TestSupplyService_Submit_InvalidVolume(t *testing.T) {
	svc, _ := newSupplyService(t)

	outcome, err := svc.Submit(context.Background(), submitInput("a lot"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Nil(t, outcome)
}

func TestSupplyService_Submit_UnknownBloodType(t *testing.T) {
	svc, _ := newSupplyService(t)

	input := submitInput("200")
	input.BloodType = "Z+"

	_, err := svc.Submit(context.Background(), input)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSupplyService_RequestMobilization_Success(t *testing.T) {
	svc, m := newSupplyService(t)

	rec := &domain.MobilizationRecord{
		ID:        "m1",
		BloodType: domain.BloodAPos,
		VolumeMl:  200,
		Status:    domain.MobilizationOfferedStatus,
	}

	m.journal.EXPECT().GetByID(mock.Anything, "m1").Return(rec, nil)
	m.mobilization.EXPECT().
		RequestMobilization(mock.Anything, domain.BloodAPos, 200.0).
		Return(nil).
		Once()
	m.journal.EXPECT().MarkRequested(mock.Anything, "m1").Return(nil)
	m.notifier.EXPECT().NotifyMobilizationRequested(mock.Anything, rec).Return()

	outcome, err := svc.RequestMobilization(context.Background(), "m1")

	require.NoError(t, err)
	assert.Equal(t, domain.StateMobilizationRequested, outcome.State)
	assert.Equal(t, "m1", outcome.MobilizationID)

	time.Sleep(50 * time.Millisecond)
}

func TestSupplyService_RequestMobilization_NotOffered(t *testing.T) {
	svc, m := newSupplyService(t)

	for _, status := range []domain.MobilizationStatus{
		domain.MobilizationRequestedStatus,
		domain.MobilizationFailedStatus,
		domain.MobilizationLapsedStatus,
	} {
		rec := &domain.MobilizationRecord{ID: "m1", Status: status}
		m.journal.EXPECT().GetByID(mock.Anything, "m1").Return(rec, nil).Once()

		_, err := svc.RequestMobilization(context.Background(), "m1")

		assert.ErrorIs(t, err, domain.ErrMobilizationNotOffered)
	}
}

func TestSupplyService_RequestMobilization_NotFound(t *testing.T) {
	svc, m := newSupplyService(t)

	m.journal.EXPECT().
		GetByID(mock.Anything, "missing").
		Return(nil, domain.ErrMobilizationNotFound)

	_, err := svc.RequestMobilization(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrMobilizationNotFound)
}

func TestSupplyService_RequestMobilization_CommandFailure(t *testing.T) {
	svc, m := newSupplyService(t)

	rec := &domain.MobilizationRecord{
		ID:        "m1",
		BloodType: domain.BloodONeg,
		VolumeMl:  450,
		Status:    domain.MobilizationOfferedStatus,
	}

	m.journal.EXPECT().GetByID(mock.Anything, "m1").Return(rec, nil)
	m.mobilization.EXPECT().
		RequestMobilization(mock.Anything, domain.BloodONeg, 450.0).
		Return(errors.New("connection refused"))
	m.journal.EXPECT().MarkFailed(mock.Anything, "m1").Return(nil)

	outcome, err := svc.RequestMobilization(context.Background(), "m1")

	require.Error(t, err)
	assert.Equal(t, domain.StateFailed, outcome.State)
	assert.Contains(t, outcome.FailureReason, "connection refused")
}

func TestSupplyService_LapseExpiredOffers(t *testing.T) {
	svc, m := newSupplyService(t)

	lapsed := []*domain.MobilizationRecord{
		{ID: "m1", Status: domain.MobilizationLapsedStatus},
		{ID: "m2", Status: domain.MobilizationLapsedStatus},
	}

	m.journal.EXPECT().LapseExpired(mock.Anything).Return(lapsed, nil)
	m.notifier.EXPECT().NotifyOfferLapsed(mock.Anything, lapsed[0]).Return()
	m.notifier.EXPECT().NotifyOfferLapsed(mock.Anything, lapsed[1]).Return()

	got, err := svc.LapseExpiredOffers(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 2)

	time.Sleep(50 * time.Millisecond)
}
