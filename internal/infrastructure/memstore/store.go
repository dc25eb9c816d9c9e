package memstore

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"pasaratsiri/internal/domain/repository"
	"pasaratsiri/pkg/errors"
)

type document struct {
	id   string
	data map[string]interface{}
}

func (d document) ID() string {
	return d.id
}

// DataTo decodes the stored fields using the firestore struct tags of v.
func (d document) DataTo(v interface{}) error {
	return repository.DecodeFields(d.data, v)
}

type listener struct {
	notify chan struct{}
}

// Store is an in-memory DocumentStore. Every write notifies the listeners
// of the written collection path, and each listener then receives the full
// current result set.
type Store struct {
	mu        sync.RWMutex
	data      map[string]map[string]map[string]interface{}
	listeners map[string]map[*listener]struct{}
	failures  map[string]error
}

func New() *Store {
	return &Store{
		data:      make(map[string]map[string]map[string]interface{}),
		listeners: make(map[string]map[*listener]struct{}),
		failures:  make(map[string]error),
	}
}

var _ repository.DocumentStore = (*Store)(nil)

func (s *Store) Listen(ctx context.Context, collection string, onSnapshot func([]repository.Document), onError func(error)) repository.Unsubscribe {
	ctx, cancel := context.WithCancel(ctx)
	l := &listener{notify: make(chan struct{}, 1)}
	l.notify <- struct{}{}

	s.mu.Lock()
	if s.listeners[collection] == nil {
		s.listeners[collection] = make(map[*listener]struct{})
	}
	s.listeners[collection][l] = struct{}{}
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer s.removeListener(collection, l)

		for {
			select {
			case <-ctx.Done():
				return
			case <-l.notify:
			}

			docs, err := s.snapshot(collection)
			if ctx.Err() != nil {
				return
			}
			if err != nil {
				onError(err)
				return
			}
			onSnapshot(docs)
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			cancel()
			<-done
		})
	}
}

func (s *Store) Get(_ context.Context, collection, id string) (repository.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.failures[collection]; err != nil {
		return nil, err
	}
	fields, ok := s.data[collection][id]
	if !ok {
		return nil, errors.NotFound(collection+"/"+id, nil)
	}
	return document{id: id, data: copyFields(fields)}, nil
}

func (s *Store) Set(_ context.Context, collection, id string, fields map[string]interface{}, merge bool) error {
	s.mu.Lock()
	if err := s.failures[collection]; err != nil {
		s.mu.Unlock()
		return err
	}
	docs := s.collection(collection)
	if existing, ok := docs[id]; ok && merge {
		for k, v := range fields {
			existing[k] = v
		}
	} else {
		docs[id] = copyFields(fields)
	}
	s.mu.Unlock()

	s.notify(collection)
	return nil
}

func (s *Store) Update(_ context.Context, collection, id string, fields map[string]interface{}) error {
	s.mu.Lock()
	if err := s.failures[collection]; err != nil {
		s.mu.Unlock()
		return err
	}
	existing, ok := s.data[collection][id]
	if !ok {
		s.mu.Unlock()
		return errors.NotFound(collection+"/"+id, nil)
	}
	for k, v := range fields {
		existing[k] = v
	}
	s.mu.Unlock()

	s.notify(collection)
	return nil
}

func (s *Store) Delete(_ context.Context, collection, id string) error {
	s.mu.Lock()
	if err := s.failures[collection]; err != nil {
		s.mu.Unlock()
		return err
	}
	delete(s.data[collection], id)
	s.mu.Unlock()

	s.notify(collection)
	return nil
}

func (s *Store) All(_ context.Context, collection string) ([]repository.Document, error) {
	return s.snapshot(collection)
}

// Query orders by one field. Records without the field are left out, as
// Firestore does.
func (s *Store) Query(_ context.Context, collection, orderBy string, dir repository.Direction, limit int) ([]repository.Document, error) {
	docs, err := s.snapshot(collection)
	if err != nil {
		return nil, err
	}

	filtered := docs[:0]
	for _, doc := range docs {
		if _, ok := doc.(document).data[orderBy]; ok {
			filtered = append(filtered, doc)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		a := filtered[i].(document).data[orderBy]
		b := filtered[j].(document).data[orderBy]
		if dir == repository.Desc {
			return less(b, a)
		}
		return less(a, b)
	})

	if limit > 0 && len(filtered) > limit {
		filtered = filtered[:limit]
	}
	return filtered, nil
}

func (s *Store) Ping(_ context.Context) error {
	return nil
}

// Add stores fields under a generated key and returns it.
func (s *Store) Add(ctx context.Context, collection string, fields map[string]interface{}) (string, error) {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")[:20]
	return id, s.Set(ctx, collection, id, fields, false)
}

// Fail makes every read and write on collection return err, and ends the
// live subscriptions on it. A nil err clears the failure.
func (s *Store) Fail(collection string, err error) {
	s.mu.Lock()
	if err == nil {
		delete(s.failures, collection)
	} else {
		s.failures[collection] = err
	}
	s.mu.Unlock()

	s.notify(collection)
}

// ListenerCount reports the live subscriptions attached to collection.
func (s *Store) ListenerCount(collection string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.listeners[collection])
}

func (s *Store) collection(path string) map[string]map[string]interface{} {
	docs, ok := s.data[path]
	if !ok {
		docs = make(map[string]map[string]interface{})
		s.data[path] = docs
	}
	return docs
}

func (s *Store) snapshot(collection string) ([]repository.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.failures[collection]; err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(s.data[collection]))
	for id := range s.data[collection] {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	docs := make([]repository.Document, 0, len(ids))
	for _, id := range ids {
		docs = append(docs, document{id: id, data: copyFields(s.data[collection][id])})
	}
	return docs, nil
}

func (s *Store) notify(collection string) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for l := range s.listeners[collection] {
		select {
		case l.notify <- struct{}{}:
		default:
		}
	}
}

func (s *Store) removeListener(collection string, l *listener) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.listeners[collection], l)
	if len(s.listeners[collection]) == 0 {
		delete(s.listeners, collection)
	}
}

func copyFields(fields map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		out[k] = v
	}
	return out
}

func less(a, b interface{}) bool {
	switch av := a.(type) {
	case time.Time:
		if bv, ok := b.(time.Time); ok {
			return av.Before(bv)
		}
	case string:
		if bv, ok := b.(string); ok {
			return av < bv
		}
	}

	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if aok && bok {
		return af < bf
	}
	return fmt.Sprint(a) < fmt.Sprint(b)
}

func toFloat(v interface{}) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}
