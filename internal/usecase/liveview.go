package usecase

import (
	"context"
	"sync"

	"pasaratsiri/internal/domain/repository"
	"pasaratsiri/pkg/errors"
	"pasaratsiri/pkg/logger"
)

type EventType string

const (
	EventSnapshot      EventType = "snapshot"
	EventError         EventType = "error"
	EventDetailLoading EventType = "detail_loading"
	EventDetail        EventType = "detail"
	EventDetailError   EventType = "detail_error"
	EventDetailClosed  EventType = "detail_closed"
)

// DetailNotFoundMessage is shown when a detail is requested for a row that
// is no longer in the list.
const DetailNotFoundMessage = "Data tidak ditemukan."

type Event struct {
	Type     EventType
	Records  []Record
	ParentID string
	Parent   Record
	Items    []Record
	Message  string
}

// Sink receives the events of a LiveView in delivery order, one call at a
// time. It runs outside the view's state lock and may read DetailParent,
// but must not open or close subscriptions.
type Sink func(Event)

// LiveView holds the subscriptions of one open list page: the collection
// itself and at most one nested collection for the detail modal.
type LiveView struct {
	store    repository.DocumentStore
	resource *Resource
	sink     Sink

	// ops serializes the methods that acquire and release subscriptions.
	ops sync.Mutex
	// deliver orders sink calls. It is taken before mu.
	deliver sync.Mutex

	mu          sync.Mutex
	closed      bool
	unsubscribe repository.Unsubscribe
	byID        map[string]Record

	detailParent      string
	detailGeneration  uint64
	detailUnsubscribe repository.Unsubscribe
}

func NewLiveView(store repository.DocumentStore, resource *Resource, sink Sink) *LiveView {
	return &LiveView{
		store:    store,
		resource: resource,
		sink:     sink,
		byID:     make(map[string]Record),
	}
}

func (v *LiveView) Resource() *Resource {
	return v.resource
}

// Open subscribes to the collection. Every snapshot replaces the working
// set. A subscription error is reported once and not retried.
func (v *LiveView) Open(ctx context.Context) {
	v.ops.Lock()
	defer v.ops.Unlock()

	v.mu.Lock()
	if v.closed || v.unsubscribe != nil {
		v.mu.Unlock()
		return
	}
	v.mu.Unlock()

	unsubscribe := v.store.Listen(ctx, v.resource.Collection, v.onSnapshot, v.onError)

	v.mu.Lock()
	v.unsubscribe = unsubscribe
	v.mu.Unlock()
}

// emit builds an event under the state lock and hands it to the sink once
// the lock is released. build reports false to send nothing.
func (v *LiveView) emit(build func() (Event, bool)) {
	v.deliver.Lock()
	defer v.deliver.Unlock()

	v.mu.Lock()
	event, ok := build()
	v.mu.Unlock()

	if ok {
		v.sink(event)
	}
}

func (v *LiveView) onSnapshot(docs []repository.Document) {
	records, byID := v.resource.Decode(docs)

	v.emit(func() (Event, bool) {
		if v.closed {
			return Event{}, false
		}
		v.byID = byID
		return Event{Type: EventSnapshot, Records: records}, true
	})
}

func (v *LiveView) onError(err error) {
	logger.Err(err, "live view on %s failed", v.resource.Collection)

	v.emit(func() (Event, bool) {
		return Event{Type: EventError, Message: v.resource.LoadError}, !v.closed
	})
}

// OpenDetail selects one row. For resources with a nested collection the
// previous nested subscription is released before the new one is opened,
// so at most one is ever attached.
func (v *LiveView) OpenDetail(ctx context.Context, parentID string) error {
	v.ops.Lock()
	defer v.ops.Unlock()

	if !v.resource.HasDetail {
		return errors.BadRequest(v.resource.Title+" has no detail view", nil)
	}

	var (
		closed, found bool
		previous      repository.Unsubscribe
		generation    uint64
		parent        Record
	)
	v.emit(func() (Event, bool) {
		if v.closed {
			closed = true
			return Event{}, false
		}
		previous = v.detailUnsubscribe
		v.detailUnsubscribe = nil
		v.detailGeneration++
		generation = v.detailGeneration
		v.detailParent = ""

		parent, found = v.byID[parentID]
		if !found {
			return Event{Type: EventDetailError, ParentID: parentID, Message: DetailNotFoundMessage}, true
		}
		v.detailParent = parentID
		if v.resource.Nested == "" {
			return Event{Type: EventDetail, ParentID: parentID, Parent: parent}, true
		}
		return Event{Type: EventDetailLoading, ParentID: parentID, Parent: parent}, true
	})
	if closed {
		return nil
	}

	if previous != nil {
		previous()
	}
	if !found {
		return errors.NotFound("Record "+parentID, nil)
	}
	if v.resource.Nested == "" {
		return nil
	}

	stale := func() bool {
		return v.closed || v.detailGeneration != generation
	}
	unsubscribe := v.store.Listen(ctx, v.resource.NestedPath(parentID),
		func(docs []repository.Document) {
			items := v.resource.DecodeNested(docs)

			v.emit(func() (Event, bool) {
				return Event{Type: EventDetail, ParentID: parentID, Parent: parent, Items: items}, !stale()
			})
		},
		func(err error) {
			logger.Err(err, "nested live query on %s failed", v.resource.NestedPath(parentID))

			v.emit(func() (Event, bool) {
				return Event{Type: EventDetailError, ParentID: parentID, Message: v.resource.LoadError}, !stale()
			})
		})

	v.mu.Lock()
	v.detailUnsubscribe = unsubscribe
	v.mu.Unlock()
	return nil
}

// CloseDetail releases the nested subscription and clears the selection.
func (v *LiveView) CloseDetail() {
	v.ops.Lock()
	defer v.ops.Unlock()

	var previous repository.Unsubscribe
	v.emit(func() (Event, bool) {
		previous = v.detailUnsubscribe
		v.detailUnsubscribe = nil
		v.detailGeneration++
		hadParent := v.detailParent != ""
		v.detailParent = ""
		return Event{Type: EventDetailClosed}, hadParent && !v.closed
	})

	if previous != nil {
		previous()
	}
}

// DetailParent is the id of the selected row, or "".
func (v *LiveView) DetailParent() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.detailParent
}

// Close releases every subscription. The view delivers nothing afterwards.
func (v *LiveView) Close() {
	v.ops.Lock()
	defer v.ops.Unlock()

	// Taking deliver waits out an event already handed to the sink.
	v.deliver.Lock()
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		v.deliver.Unlock()
		return
	}
	v.closed = true
	unsubscribe := v.unsubscribe
	detail := v.detailUnsubscribe
	v.unsubscribe = nil
	v.detailUnsubscribe = nil
	v.detailParent = ""
	v.mu.Unlock()
	v.deliver.Unlock()

	if detail != nil {
		detail()
	}
	if unsubscribe != nil {
		unsubscribe()
	}
}
