package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanRegister_Allowed(t *testing.T) {
	event := DonationEvent{CurrentDonors: 5, MaxDonors: 10}
	caller := &Caller{ID: "u1", Role: "member"}

	assert.Equal(t, RegistrationAllowed, CanRegister(event, caller))
}

func TestCanRegister_DeniedFullAtBoundary(t *testing.T) {
	caller := &Caller{ID: "u1"}

	assert.Equal(t, RegistrationDeniedFull,
		CanRegister(DonationEvent{CurrentDonors: 10, MaxDonors: 10}, caller))
	assert.Equal(t, RegistrationAllowed,
		CanRegister(DonationEvent{CurrentDonors: 9, MaxDonors: 10}, caller))
}

func TestCanRegister_DeniedUnauthenticated(t *testing.T) {
	event := DonationEvent{CurrentDonors: 0, MaxDonors: 10}

	assert.Equal(t, RegistrationDeniedUnauthenticated, CanRegister(event, nil))
	assert.Equal(t, RegistrationDeniedUnauthenticated, CanRegister(event, &Caller{}))
}

func TestEventClassifyAt(t *testing.T) {
	day := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	event := DonationEvent{ID: "e1", StartDate: day}

	assert.Equal(t, BucketOngoing, event.ClassifyAt(day.Add(12*time.Hour)))
	assert.Equal(t, BucketUpcoming, event.ClassifyAt(day.AddDate(0, 0, -3)))
	assert.Equal(t, BucketNone, event.ClassifyAt(day.AddDate(0, 0, 3)))
}

func TestCanRegister_UnauthenticatedBeforeCapacity(t *testing.T) {
	// A full event still denies on authentication first.
	event := DonationEvent{CurrentDonors: 10, MaxDonors: 10}

	assert.Equal(t, RegistrationDeniedUnauthenticated, CanRegister(event, nil))
}
