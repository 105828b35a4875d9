package ports

import (
	"context"

	"github.com/kioooy/SWP391-Project-sub001/internal/domain"
)

// SessionClient resolves the caller behind a bearer token. An invalid or
// expired token resolves to domain.ErrUnauthenticated.
type SessionClient interface {
	CurrentUser(ctx context.Context, token string) (*domain.Caller, error)
}
