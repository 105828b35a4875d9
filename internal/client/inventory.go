package client

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/kioooy/SWP391-Project-sub001/internal/domain"
)

// InventoryClient queries the blood bank inventory service. Each call is a
// fresh query; snapshots are never cached here.
type InventoryClient struct {
	capability
}

func NewInventoryClient(cfg Config) *InventoryClient {
	return &InventoryClient{capability: newCapability("inventory", cfg)}
}

func (c *InventoryClient) AvailableVolume(ctx context.Context, bloodType domain.BloodType, component domain.Component) (*domain.InventorySnapshot, error) {
	query := url.Values{}
	query.Set("blood_type", string(bloodType))
	query.Set("component", string(component))

	var resp struct {
		AvailableVolumeMl float64 `json:"available_volume_ml"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/inventory", query, nil, &resp); err != nil {
		return nil, err
	}

	return &domain.InventorySnapshot{
		BloodType:         bloodType,
		Component:         component,
		AvailableVolumeMl: resp.AvailableVolumeMl,
		QueriedAt:         time.Now().UTC(),
	}, nil
}
