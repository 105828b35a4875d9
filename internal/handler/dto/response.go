package dto

import (
	"time"

	"github.com/kioooy/SWP391-Project-sub001/internal/domain"
	"github.com/kioooy/SWP391-Project-sub001/internal/service"
)

type SnapshotResponse struct {
	BloodType         string  `json:"blood_type"`
	Component         string  `json:"component"`
	AvailableVolumeMl float64 `json:"available_volume_ml"`
	QueriedAt         string  `json:"queried_at"`
}

type OutcomeResponse struct {
	State          string            `json:"state"`
	Trace          []string          `json:"trace"`
	Snapshot       *SnapshotResponse `json:"snapshot,omitempty"`
	ShortfallMl    float64           `json:"shortfall_ml,omitempty"`
	MobilizationID string            `json:"mobilization_id,omitempty"`
	FailureReason  string            `json:"failure_reason,omitempty"`
}

type MobilizationResponse struct {
	ID          string  `json:"id"`
	BloodType   string  `json:"blood_type"`
	VolumeMl    float64 `json:"volume_ml"`
	ShortfallMl float64 `json:"shortfall_ml"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
}

type PeriodResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	DateFrom string `json:"date_from"`
	DateTo   string `json:"date_to"`
	Status   string `json:"status"`
	Bucket   string `json:"bucket"`
}

type PeriodListResponse struct {
	Periods []PeriodResponse `json:"periods"`
	Counts  map[string]int   `json:"counts"`
	Total   int              `json:"total"`
}

type RegistrationResponse struct {
	Status  string `json:"status"`
	EventID string `json:"event_id"`
	UserID  string `json:"user_id"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToOutcomeResponse(o *domain.BookingOutcome) OutcomeResponse {
	resp := OutcomeResponse{
		State:          string(o.State),
		Trace:          make([]string, 0, len(o.Trace)),
		ShortfallMl:    o.ShortfallMl,
		MobilizationID: o.MobilizationID,
		FailureReason:  o.FailureReason,
	}
	for _, s := range o.Trace {
		resp.Trace = append(resp.Trace, string(s))
	}

	if o.Snapshot != nil {
		resp.Snapshot = &SnapshotResponse{
			BloodType:         string(o.Snapshot.BloodType),
			Component:         string(o.Snapshot.Component),
			AvailableVolumeMl: o.Snapshot.AvailableVolumeMl,
			QueriedAt:         o.Snapshot.QueriedAt.Format(time.RFC3339),
		}
	}

	return resp
}

func ToMobilizationResponse(rec *domain.MobilizationRecord) MobilizationResponse {
	return MobilizationResponse{
		ID:          rec.ID,
		BloodType:   string(rec.BloodType),
		VolumeMl:    rec.VolumeMl,
		ShortfallMl: rec.ShortfallMl,
		Status:      string(rec.Status),
		CreatedAt:   rec.CreatedAt.Format(time.RFC3339),
	}
}

func ToPeriodListResponse(list *service.PeriodList) PeriodListResponse {
	resp := PeriodListResponse{
		Periods: make([]PeriodResponse, 0, len(list.Periods)),
		Counts:  make(map[string]int, len(list.Counts)),
		Total:   list.Total,
	}

	for _, p := range list.Periods {
		resp.Periods = append(resp.Periods, PeriodResponse{
			ID:       p.ID,
			Name:     p.Name,
			Location: p.Location,
			DateFrom: p.DateFrom.Format(time.RFC3339),
			DateTo:   p.DateTo.Format(time.RFC3339),
			Status:   string(p.Status),
			Bucket:   string(p.Bucket),
		})
	}
	for bucket, count := range list.Counts {
		resp.Counts[string(bucket)] = count
	}

	return resp
}
