package client

import (
	"context"
	"net/http"

	"github.com/kioooy/SWP391-Project-sub001/internal/domain"
)

// MobilizationClient issues donor-mobilization commands. One command per
// call, no polling for the outcome.
type MobilizationClient struct {
	capability
}

func NewMobilizationClient(cfg Config) *MobilizationClient {
	return &MobilizationClient{capability: newCapability("mobilization", cfg)}
}

func (c *MobilizationClient) RequestMobilization(ctx context.Context, bloodType domain.BloodType, volumeMl float64) error {
	body := struct {
		BloodType string  `json:"blood_type"`
		VolumeMl  float64 `json:"volume_ml"`
	}{
		BloodType: string(bloodType),
		VolumeMl:  volumeMl,
	}

	return c.doJSON(ctx, http.MethodPost, "/api/mobilizations", nil, body, nil)
}
