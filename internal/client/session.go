package client

import (
	"context"
	"net/http"

	"github.com/kioooy/SWP391-Project-sub001/internal/domain"
)

// SessionClient resolves bearer tokens against the identity service.
type SessionClient struct {
	capability
}

func NewSessionClient(cfg Config) *SessionClient {
	return &SessionClient{capability: newCapability("session", cfg)}
}

func (c *SessionClient) CurrentUser(ctx context.Context, token string) (*domain.Caller, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/session", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	var caller domain.Caller
	if err := c.send(req, &caller); err != nil {
		if statusCode(err) == http.StatusUnauthorized {
			return nil, domain.ErrUnauthenticated
		}
		return nil, err
	}

	return &caller, nil
}
