package domain

import "time"

type MobilizationStatus string

const (
	// MobilizationOfferedStatus: a shortfall was detected and surfaced;
	// waiting for explicit caller action.
	MobilizationOfferedStatus MobilizationStatus = "offered"
	// MobilizationRequestedStatus: the mobilization command was issued.
	// Fire-and-forget, donor response is tracked elsewhere.
	MobilizationRequestedStatus MobilizationStatus = "requested"
	MobilizationFailedStatus    MobilizationStatus = "failed"
	// MobilizationLapsedStatus: the offer was never acted on within the
	// configured window.
	MobilizationLapsedStatus MobilizationStatus = "lapsed"
)

var OpenMobilizationStatuses = []MobilizationStatus{MobilizationOfferedStatus}

// MobilizationRecord is the journal row behind a shortfall offer. The row is
// the only link between an observed insufficiency and a later mobilization
// request, so "requested" is unreachable without a prior "offered".
type MobilizationRecord struct {
	ID          string             `json:"id"`
	BloodType   BloodType          `json:"blood_type"`
	VolumeMl    float64            `json:"volume_ml"`
	ShortfallMl float64            `json:"shortfall_ml"`
	Status      MobilizationStatus `json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}
