package domain

type WorkflowState string

const (
	StateIdle                 WorkflowState = "idle"
	StateSearching            WorkflowState = "searching"
	StateSufficient           WorkflowState = "sufficient"
	StateInsufficient         WorkflowState = "insufficient"
	StateBooked               WorkflowState = "booked"
	StateMobilizationOffered  WorkflowState = "mobilization_offered"
	StateMobilizationRequested WorkflowState = "mobilization_requested"
	StateFailed               WorkflowState = "failed"
)

// Terminal reports whether the workflow run can advance any further.
// A new BloodRequest always starts a fresh cycle; there is no auto-retry
// out of Failed.
func (s WorkflowState) Terminal() bool {
	switch s {
	case StateBooked, StateMobilizationRequested, StateFailed:
		return true
	}
	return false
}

// BookingOutcome is the result of one workflow run. Trace records the
// ordered states the run passed through, ending with State.
type BookingOutcome struct {
	State          WorkflowState      `json:"state"`
	Trace          []WorkflowState    `json:"trace"`
	Request        *BloodRequest      `json:"request,omitempty"`
	Snapshot       *InventorySnapshot `json:"snapshot,omitempty"`
	ShortfallMl    float64            `json:"shortfall_ml,omitempty"`
	MobilizationID string             `json:"mobilization_id,omitempty"`
	FailureReason  string             `json:"failure_reason,omitempty"`
}

func (o *BookingOutcome) Advance(s WorkflowState) {
	o.State = s
	o.Trace = append(o.Trace, s)
}
