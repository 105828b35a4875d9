package domain

import "time"

// DonationEvent is a scheduled donation drive from the external event
// registry. currentDonors <= maxDonors is enforced by the registry; the
// capacity gate re-checks it before issuing a registration.
type DonationEvent struct {
	ID               string      `json:"id"`
	Title            string      `json:"title"`
	Location         string      `json:"location"`
	Address          string      `json:"address"`
	StartDate        time.Time   `json:"start_date"`
	StartTime        string      `json:"start_time"`
	EndTime          string      `json:"end_time"`
	BloodTypesNeeded []BloodType `json:"blood_types_needed"`
	CurrentDonors    int         `json:"current_donors"`
	MaxDonors        int         `json:"max_donors"`
}

func (e DonationEvent) Full() bool {
	return e.CurrentDonors >= e.MaxDonors
}

// ClassifyAt buckets the event by its scheduled day using the same rules as
// donation periods. Events carry no lifecycle status of their own, so the
// registry listing them is taken as Active.
func (e DonationEvent) ClassifyAt(now time.Time) Bucket {
	dayEnd := e.StartDate.AddDate(0, 0, 1).Add(-time.Second)
	return Classify(now, e.StartDate, dayEnd, PeriodActive)
}

// Caller is the authenticated identity resolved by the session capability.
type Caller struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

type RegistrationDecision string

const (
	RegistrationAllowed               RegistrationDecision = "allowed"
	RegistrationDeniedFull            RegistrationDecision = "denied_full"
	RegistrationDeniedUnauthenticated RegistrationDecision = "denied_unauthenticated"
)

// CanRegister decides registration eligibility only; issuing the
// registration command is the caller's next step, not a side effect here.
func CanRegister(event DonationEvent, caller *Caller) RegistrationDecision {
	if caller == nil || caller.ID == "" {
		return RegistrationDeniedUnauthenticated
	}
	if event.Full() {
		return RegistrationDeniedFull
	}
	return RegistrationAllowed
}
