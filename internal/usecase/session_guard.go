package usecase

import (
	"context"
	"time"

	"pasaratsiri/internal/domain/entity"
	"pasaratsiri/internal/domain/repository"
	"pasaratsiri/pkg/errors"
	"pasaratsiri/pkg/logger"
)

// NotAdminReason is reported when a signed-in account lacks the admin role.
const NotAdminReason = "Anda tidak memiliki hak akses sebagai admin."

// SessionGuard decides whether an identity is an authorized administrator.
type SessionGuard struct {
	userRepo   repository.UserRepository
	identity   IdentityProvider
	sessionTTL time.Duration
}

func NewSessionGuard(userRepo repository.UserRepository, identity IdentityProvider, sessionTTL time.Duration) *SessionGuard {
	return &SessionGuard{
		userRepo:   userRepo,
		identity:   identity,
		sessionTTL: sessionTTL,
	}
}

// Resolve loads the user record behind identity. A missing or unreadable
// record or a role other than admin signs the identity out. A lookup that fails for
// any other reason leaves the session loading.
func (g *SessionGuard) Resolve(ctx context.Context, identity *entity.Identity) entity.Session {
	if identity == nil || identity.UID == "" {
		return entity.AnonymousSession("")
	}

	user, err := g.userRepo.GetByID(ctx, identity.UID)
	if err != nil && !errors.Is(err, errors.CodeNotFound) && !errors.Is(err, errors.CodeForbidden) {
		logger.Err(err, "resolving session for %s", identity.UID)
		return entity.LoadingSession()
	}

	if !user.IsAdmin() {
		logger.Warn("non-admin account %s denied", identity.UID)
		if err := g.identity.SignOut(ctx, identity.UID); err != nil {
			logger.Err(err, "forced sign-out of %s failed", identity.UID)
		}
		return entity.AnonymousSession(NotAdminReason)
	}

	email := user.Email
	if email == "" {
		email = identity.Email
	}
	return entity.AdminSession(entity.AdminIdentity{
		UID:   identity.UID,
		Email: email,
		Name:  user.Name,
	})
}

// ResolveCookie verifies a session cookie and resolves the identity behind
// it. An empty, invalid or revoked cookie is unauthenticated; a provider
// that cannot answer leaves the session loading.
func (g *SessionGuard) ResolveCookie(ctx context.Context, cookie string) entity.Session {
	if cookie == "" {
		return entity.AnonymousSession("")
	}

	identity, err := g.identity.VerifySession(ctx, cookie)
	if err != nil {
		if errors.Is(err, errors.CodeUnauthorized) {
			return entity.AnonymousSession("")
		}
		logger.Err(err, "verifying session cookie")
		return entity.LoadingSession()
	}
	return g.Resolve(ctx, identity)
}

type SignInResult struct {
	Session entity.Session
	Cookie  string
}

// SignIn authenticates with email and password and, for admins, issues a
// session cookie. Non-admins come back as an unauthenticated session with
// the denial reason and no cookie.
func (g *SessionGuard) SignIn(ctx context.Context, email, password string) (*SignInResult, error) {
	identity, err := g.identity.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}

	session := g.Resolve(ctx, identity)
	switch session.State {
	case entity.SessionNone:
		return &SignInResult{Session: session}, nil
	case entity.SessionLoading:
		return nil, errors.Unavailable("Gagal memverifikasi akun. Coba lagi.", nil)
	}

	cookie, err := g.identity.StartSession(ctx, identity.IDToken, g.sessionTTL)
	if err != nil {
		return nil, err
	}

	logger.Info("admin %s signed in", identity.UID)
	return &SignInResult{Session: session, Cookie: cookie}, nil
}

// SignOut ends an admin session. Other sessions are already signed out.
func (g *SessionGuard) SignOut(ctx context.Context, session entity.Session) entity.Session {
	if session.IsAdmin() {
		if err := g.identity.SignOut(ctx, session.Admin.UID); err != nil {
			logger.Err(err, "sign-out of %s failed", session.Admin.UID)
		}
	}
	return entity.AnonymousSession("")
}
