package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	adapter "pasaratsiri/internal/adapter/repository"
	"pasaratsiri/internal/domain/repository"
	"pasaratsiri/internal/infrastructure/firebase"
	"pasaratsiri/internal/infrastructure/memstore"
)

type recordingProvider struct {
	*firebase.DevIdentityProvider

	mu        sync.Mutex
	signedOut []string
}

func (p *recordingProvider) SignOut(ctx context.Context, uid string) error {
	p.mu.Lock()
	p.signedOut = append(p.signedOut, uid)
	p.mu.Unlock()
	return p.DevIdentityProvider.SignOut(ctx, uid)
}

func (p *recordingProvider) SignedOut() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.signedOut...)
}

type fixture struct {
	store    *memstore.Store
	users    repository.UserRepository
	provider *recordingProvider
	guard    *SessionGuard
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memstore.New()
	users := adapter.NewUserRepository(store)
	provider := &recordingProvider{DevIdentityProvider: firebase.NewDevIdentityProvider(
		firebase.DevAccount{UID: "admin-1", Email: "admin@pasaratsiri.id", Password: "rahasia"},
		firebase.DevAccount{UID: "buyer-1", Email: "agus@example.com", Password: "rahasia"},
		firebase.DevAccount{UID: "ghost-1", Email: "ghost@example.com", Password: "rahasia"},
	)}

	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "users", "admin-1", map[string]interface{}{
		"name": "Dewi", "email": "admin@pasaratsiri.id", "role": "admin",
	}, false))
	require.NoError(t, store.Set(ctx, "users", "buyer-1", map[string]interface{}{
		"name": "Agus", "email": "agus@example.com", "role": "pembeli",
	}, false))

	return &fixture{
		store:    store,
		users:    users,
		provider: provider,
		guard:    NewSessionGuard(users, provider, time.Hour),
	}
}

// eventRecorder collects LiveView events for assertions.
type eventRecorder struct {
	events chan Event
}

func newEventRecorder() *eventRecorder {
	return &eventRecorder{events: make(chan Event, 64)}
}

func (r *eventRecorder) Sink(e Event) {
	r.events <- e
}

func (r *eventRecorder) next(t *testing.T, want EventType) Event {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case e := <-r.events:
			if e.Type == want {
				return e
			}
		case <-deadline:
			t.Fatalf("no %s event delivered", want)
			return Event{}
		}
	}
}
