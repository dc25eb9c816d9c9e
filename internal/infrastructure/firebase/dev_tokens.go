package firebase

import (
	"context"
	"crypto/subtle"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"pasaratsiri/internal/domain/entity"
	"pasaratsiri/pkg/errors"
)

type DevAccount struct {
	UID      string
	Email    string
	Password string
}

type devSession struct {
	identity entity.Identity
	expires  time.Time
}

// DevIdentityProvider signs in a fixed set of local accounts and keeps
// session cookies in memory. It backs the memory store driver.
type DevIdentityProvider struct {
	mu       sync.Mutex
	accounts map[string]DevAccount
	pending  map[string]entity.Identity
	sessions map[string]devSession
	now      func() time.Time
}

func NewDevIdentityProvider(accounts ...DevAccount) *DevIdentityProvider {
	p := &DevIdentityProvider{
		accounts: make(map[string]DevAccount, len(accounts)),
		pending:  make(map[string]entity.Identity),
		sessions: make(map[string]devSession),
		now:      time.Now,
	}
	for _, a := range accounts {
		p.accounts[strings.ToLower(a.Email)] = a
	}
	return p
}

func (p *DevIdentityProvider) SignIn(_ context.Context, email, password string) (*entity.Identity, error) {
	account, ok := p.accounts[strings.ToLower(strings.TrimSpace(email))]
	if !ok || subtle.ConstantTimeCompare([]byte(account.Password), []byte(password)) != 1 {
		return nil, errors.Unauthorized(InvalidCredentialsMessage, nil)
	}

	identity := entity.Identity{UID: account.UID, Email: account.Email, IDToken: uuid.NewString()}

	p.mu.Lock()
	p.pending[identity.IDToken] = identity
	p.mu.Unlock()

	return &identity, nil
}

func (p *DevIdentityProvider) StartSession(_ context.Context, idToken string, ttl time.Duration) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	identity, ok := p.pending[idToken]
	if !ok {
		return "", errors.Unauthorized("Failed to create session", nil)
	}
	delete(p.pending, idToken)

	cookie := uuid.NewString()
	identity.IDToken = ""
	p.sessions[cookie] = devSession{identity: identity, expires: p.now().Add(ttl)}
	return cookie, nil
}

func (p *DevIdentityProvider) VerifySession(_ context.Context, cookie string) (*entity.Identity, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	session, ok := p.sessions[cookie]
	if !ok {
		return nil, errors.Unauthorized("Session expired", nil)
	}
	if p.now().After(session.expires) {
		delete(p.sessions, cookie)
		return nil, errors.Unauthorized("Session expired", nil)
	}

	identity := session.identity
	return &identity, nil
}

// SignOut drops every session of uid.
func (p *DevIdentityProvider) SignOut(_ context.Context, uid string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for cookie, session := range p.sessions {
		if session.identity.UID == uid {
			delete(p.sessions, cookie)
		}
	}
	for token, identity := range p.pending {
		if identity.UID == uid {
			delete(p.pending, token)
		}
	}
	return nil
}

func (p *DevIdentityProvider) Ping(context.Context) error {
	return nil
}
