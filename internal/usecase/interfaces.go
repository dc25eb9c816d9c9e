package usecase

import (
	"context"
	"time"

	"pasaratsiri/internal/domain/entity"
)

type IdentityProvider interface {
	SignIn(ctx context.Context, email, password string) (*entity.Identity, error)
	StartSession(ctx context.Context, idToken string, ttl time.Duration) (string, error)
	VerifySession(ctx context.Context, cookie string) (*entity.Identity, error)
	SignOut(ctx context.Context, uid string) error
	Ping(ctx context.Context) error
}

// DocumentLinker turns a stored document reference into a link an admin
// can open.
type DocumentLinker interface {
	Link(ctx context.Context, ref string) string
}
