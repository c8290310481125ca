package ports

import (
	"context"

	"github.com/creatorhub/platform-client/internal/core/domain"
)

// IdentityAPI is the slice of the platform API the session layer consumes.
// Register and Login return the bearer token issued by the server; Me and
// UpdateProfile rely on the token already attached by the HTTP wrapper.
type IdentityAPI interface {
	Register(ctx context.Context, name, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	Me(ctx context.Context) (*domain.User, error)
	UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (*domain.User, error)
}
