package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/kioooy/SWP391-Project-sub001/internal/domain"
)

// EventRegistryClient talks to the external registry of donation periods
// and scheduled events.
type EventRegistryClient struct {
	capability
}

func NewEventRegistryClient(cfg Config) *EventRegistryClient {
	return &EventRegistryClient{capability: newCapability("event-registry", cfg)}
}

type periodDTO struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Location string    `json:"location"`
	DateFrom time.Time `json:"date_from"`
	DateTo   time.Time `json:"date_to"`
	Status   string    `json:"status"`
}

func (c *EventRegistryClient) ListPeriods(ctx context.Context) ([]domain.DonationPeriod, error) {
	var resp []periodDTO
	if err := c.doJSON(ctx, http.MethodGet, "/api/periods", nil, nil, &resp); err != nil {
		return nil, err
	}

	periods := make([]domain.DonationPeriod, 0, len(resp))
	for _, p := range resp {
		periods = append(periods, domain.DonationPeriod{
			ID:       p.ID,
			Name:     p.Name,
			Location: p.Location,
			DateFrom: p.DateFrom,
			DateTo:   p.DateTo,
			Status:   domain.PeriodStatus(p.Status),
		})
	}

	return periods, nil
}

func (c *EventRegistryClient) ListEvents(ctx context.Context, from, to time.Time) ([]domain.DonationEvent, error) {
	query := url.Values{}
	if !from.IsZero() {
		query.Set("from", from.Format(time.RFC3339))
	}
	if !to.IsZero() {
		query.Set("to", to.Format(time.RFC3339))
	}

	var events []domain.DonationEvent
	if err := c.doJSON(ctx, http.MethodGet, "/api/events", query, nil, &events); err != nil {
		return nil, err
	}

	return events, nil
}

func (c *EventRegistryClient) GetEvent(ctx context.Context, id string) (*domain.DonationEvent, error) {
	var event domain.DonationEvent
	err := c.doJSON(ctx, http.MethodGet, "/api/events/"+url.PathEscape(id), nil, nil, &event)
	if err != nil {
		if statusCode(err) == http.StatusNotFound {
			return nil, domain.ErrEventNotFound
		}
		return nil, err
	}

	return &event, nil
}

func (c *EventRegistryClient) RegisterForEvent(ctx context.Context, eventID, userID string) error {
	body := struct {
		UserID string `json:"user_id"`
	}{UserID: userID}

	path := fmt.Sprintf("/api/events/%s/registrations", url.PathEscape(eventID))
	err := c.doJSON(ctx, http.MethodPost, path, nil, body, nil)
	if err != nil {
		switch statusCode(err) {
		case http.StatusNotFound:
			return domain.ErrEventNotFound
		case http.StatusConflict:
			// The registry serializes its own writes; a conflict means the
			// event filled between our gate check and the command.
			return domain.ErrEventFull
		}
		return err
	}

	return nil
}
