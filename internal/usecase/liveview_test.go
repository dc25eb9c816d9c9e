package usecase

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pasaratsiri/internal/domain/entity"
	"pasaratsiri/internal/infrastructure/memstore"
)

func seedProducts(t *testing.T, store *memstore.Store) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "products", "p1", map[string]interface{}{"name": "Minyak Nilam"}, false))
	require.NoError(t, store.Set(ctx, "products", "p2", map[string]interface{}{"name": "Minyak Serai"}, false))
	_, err := store.Add(ctx, "products/p1/reviews", map[string]interface{}{"userName": "Agus", "rating": 5})
	require.NoError(t, err)
}

func openProducts(t *testing.T, store *memstore.Store) (*LiveView, *eventRecorder) {
	t.Helper()
	resource, ok := LookupResource(ResourceProducts)
	require.True(t, ok)

	rec := newEventRecorder()
	view := NewLiveView(store, resource, rec.Sink)
	view.Open(context.Background())
	t.Cleanup(view.Close)
	return view, rec
}

func TestLiveViewReplacesWorkingSetOnEverySnapshot(t *testing.T) {
	store := memstore.New()
	seedProducts(t, store)
	_, rec := openProducts(t, store)

	snapshot := rec.next(t, EventSnapshot)
	assert.Len(t, snapshot.Records, 2)

	require.NoError(t, store.Delete(context.Background(), "products", "p2"))
	snapshot = rec.next(t, EventSnapshot)
	require.Len(t, snapshot.Records, 1)
	assert.Equal(t, "p1", snapshot.Records[0].(*entity.Product).ID)
}

func TestLiveViewKeepsLooselyTypedRecords(t *testing.T) {
	store := memstore.New()
	seedProducts(t, store)
	require.NoError(t, store.Set(context.Background(), "products", "p3", map[string]interface{}{
		"name": "Minyak Cengkeh", "price": "85000", "sellerId": 42,
	}, false))
	_, rec := openProducts(t, store)

	snapshot := rec.next(t, EventSnapshot)
	require.Len(t, snapshot.Records, 3)
	product := snapshot.Records[2].(*entity.Product)
	assert.Equal(t, "p3", product.ID)
	assert.Equal(t, 85000.0, product.Price)
	assert.Equal(t, "42", product.SellerID)
}

func TestSinkRunsOutsideStateLock(t *testing.T) {
	store := memstore.New()
	seedProducts(t, store)
	resource, ok := LookupResource(ResourceProducts)
	require.True(t, ok)

	// The sink reads view state while an event is being delivered.
	selected := make(chan string, 8)
	var view *LiveView
	view = NewLiveView(store, resource, func(e Event) {
		selected <- view.DetailParent()
	})
	view.Open(context.Background())
	t.Cleanup(view.Close)

	next := func() string {
		t.Helper()
		select {
		case parent := <-selected:
			return parent
		case <-time.After(2 * time.Second):
			t.Fatal("no event delivered")
			return ""
		}
	}

	assert.Equal(t, "", next())
	require.NoError(t, view.OpenDetail(context.Background(), "p1"))
	assert.Equal(t, "p1", next())
	assert.Equal(t, "p1", next())
}

func TestSecondDetailReleasesFirstNestedSubscription(t *testing.T) {
	store := memstore.New()
	seedProducts(t, store)
	view, rec := openProducts(t, store)
	rec.next(t, EventSnapshot)

	require.NoError(t, view.OpenDetail(context.Background(), "p1"))
	assert.Equal(t, EventDetailLoading, rec.next(t, EventDetailLoading).Type)
	detail := rec.next(t, EventDetail)
	assert.Equal(t, "p1", detail.ParentID)
	assert.Len(t, detail.Items, 1)
	assert.Equal(t, 1, store.ListenerCount("products/p1/reviews"))

	require.NoError(t, view.OpenDetail(context.Background(), "p2"))
	assert.Equal(t, 0, store.ListenerCount("products/p1/reviews"))
	assert.Equal(t, 1, store.ListenerCount("products/p2/reviews"))
	assert.Equal(t, "p2", view.DetailParent())

	detail = rec.next(t, EventDetail)
	assert.Equal(t, "p2", detail.ParentID)
	assert.Empty(t, detail.Items)
}

func TestCloseDetailReleasesNestedSubscription(t *testing.T) {
	store := memstore.New()
	seedProducts(t, store)
	view, rec := openProducts(t, store)
	rec.next(t, EventSnapshot)

	require.NoError(t, view.OpenDetail(context.Background(), "p1"))
	rec.next(t, EventDetail)

	view.CloseDetail()
	rec.next(t, EventDetailClosed)
	assert.Equal(t, 0, store.ListenerCount("products/p1/reviews"))
	assert.Empty(t, view.DetailParent())
}

func TestCloseReleasesEverySubscription(t *testing.T) {
	store := memstore.New()
	seedProducts(t, store)
	view, rec := openProducts(t, store)
	rec.next(t, EventSnapshot)
	require.NoError(t, view.OpenDetail(context.Background(), "p1"))

	view.Close()
	view.Close()
	assert.Equal(t, 0, store.ListenerCount("products"))
	assert.Equal(t, 0, store.ListenerCount("products/p1/reviews"))
}

func TestOpenDetailForUnknownRow(t *testing.T) {
	store := memstore.New()
	seedProducts(t, store)
	view, rec := openProducts(t, store)
	rec.next(t, EventSnapshot)

	err := view.OpenDetail(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, DetailNotFoundMessage, rec.next(t, EventDetailError).Message)
}

func TestDetailWithoutNestedCollection(t *testing.T) {
	store := memstore.New()
	require.NoError(t, store.Set(context.Background(), "orders", "o1", map[string]interface{}{"userName": "Agus"}, false))
	resource, _ := LookupResource(ResourceOrders)
	rec := newEventRecorder()
	view := NewLiveView(store, resource, rec.Sink)
	view.Open(context.Background())
	defer view.Close()
	rec.next(t, EventSnapshot)

	require.NoError(t, view.OpenDetail(context.Background(), "o1"))
	detail := rec.next(t, EventDetail)
	assert.Equal(t, "Agus", detail.Parent.(*entity.Order).UserName)
}

func TestSubscriptionErrorIsReportedOnce(t *testing.T) {
	store := memstore.New()
	store.Fail("market_prices", stderrors.New("permission denied"))
	resource, _ := LookupResource(ResourceMarketPrices)
	rec := newEventRecorder()
	view := NewLiveView(store, resource, rec.Sink)
	view.Open(context.Background())
	defer view.Close()

	assert.Equal(t, "Gagal memuat data harga pasar.", rec.next(t, EventError).Message)
	assert.Eventually(t, func() bool { return store.ListenerCount("market_prices") == 0 }, time.Second, 10*time.Millisecond)
}
