package repository

import (
	"context"
	"sync"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"pasaratsiri/internal/domain/repository"
	"pasaratsiri/pkg/errors"
	"pasaratsiri/pkg/logger"
)

type firestoreDocument struct {
	snap *firestore.DocumentSnapshot
}

func (d firestoreDocument) ID() string {
	return d.snap.Ref.ID
}

// DataTo reads the raw field map and decodes it leniently instead of
// using the snapshot's strict typed decoding.
func (d firestoreDocument) DataTo(v interface{}) error {
	return repository.DecodeFields(d.snap.Data(), v)
}

type FirestoreStore struct {
	client       *firestore.Client
	writeTimeout time.Duration
}

func NewFirestoreStore(client *firestore.Client, writeTimeout time.Duration) *FirestoreStore {
	if writeTimeout <= 0 {
		writeTimeout = 30 * time.Second
	}
	return &FirestoreStore{
		client:       client,
		writeTimeout: writeTimeout,
	}
}

var _ repository.DocumentStore = (*FirestoreStore)(nil)

func (s *FirestoreStore) Listen(ctx context.Context, collection string, onSnapshot func([]repository.Document), onError func(error)) repository.Unsubscribe {
	ctx, cancel := context.WithCancel(ctx)
	it := s.client.Collection(collection).Snapshots(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)
		defer it.Stop()

		for {
			snap, err := it.Next()
			if err != nil {
				if ctx.Err() != nil || err == iterator.Done || status.Code(err) == codes.Canceled {
					return
				}
				logger.Err(err, "live query on %s failed", collection)
				onError(err)
				return
			}

			docs, err := snap.Documents.GetAll()
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				logger.Err(err, "reading snapshot of %s failed", collection)
				onError(err)
				return
			}

			if ctx.Err() != nil {
				return
			}
			onSnapshot(wrap(docs))
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

func (s *FirestoreStore) Get(ctx context.Context, collection, id string) (repository.Document, error) {
	doc, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound(collection+"/"+id, err)
		}
		return nil, errors.Unavailable("Failed to read "+collection, err)
	}
	return firestoreDocument{snap: doc}, nil
}

func (s *FirestoreStore) Set(ctx context.Context, collection, id string, fields map[string]interface{}, merge bool) error {
	ctx, cancel := context.WithTimeout(ctx, s.writeTimeout)
	defer cancel()

	var opts []firestore.SetOption
	if merge {
		opts = append(opts, firestore.MergeAll)
	}

	if _, err := s.client.Collection(collection).Doc(id).Set(ctx, fields, opts...); err != nil {
		return errors.Internal("Failed to write "+collection, err)
	}
	return nil
}

func (s *FirestoreStore) Update(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, s.writeTimeout)
	defer cancel()

	updates := make([]firestore.Update, 0, len(fields))
	for path, value := range fields {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}

	if _, err := s.client.Collection(collection).Doc(id).Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound(collection+"/"+id, err)
		}
		return errors.Internal("Failed to update "+collection, err)
	}
	return nil
}

func (s *FirestoreStore) Delete(ctx context.Context, collection, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.writeTimeout)
	defer cancel()

	// Firestore deletes of missing documents succeed without a precondition.
	if _, err := s.client.Collection(collection).Doc(id).Delete(ctx); err != nil {
		return errors.Internal("Failed to delete from "+collection, err)
	}
	return nil
}

func (s *FirestoreStore) All(ctx context.Context, collection string) ([]repository.Document, error) {
	docs, err := s.client.Collection(collection).Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Unavailable("Failed to read "+collection, err)
	}
	return wrap(docs), nil
}

func (s *FirestoreStore) Query(ctx context.Context, collection, orderBy string, dir repository.Direction, limit int) ([]repository.Document, error) {
	fsDir := firestore.Asc
	if dir == repository.Desc {
		fsDir = firestore.Desc
	}

	query := s.client.Collection(collection).OrderBy(orderBy, fsDir)
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var docs []repository.Document
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Unavailable("Failed to query "+collection, err)
		}
		docs = append(docs, firestoreDocument{snap: doc})
	}
	return docs, nil
}

func (s *FirestoreStore) Ping(ctx context.Context) error {
	iter := s.client.Collections(ctx)
	_, err := iter.Next()
	if err != nil && err != iterator.Done {
		return errors.Unavailable("Firestore unreachable", err)
	}
	return nil
}

func wrap(snaps []*firestore.DocumentSnapshot) []repository.Document {
	docs := make([]repository.Document, 0, len(snaps))
	for _, snap := range snaps {
		docs = append(docs, firestoreDocument{snap: snap})
	}
	return docs
}
