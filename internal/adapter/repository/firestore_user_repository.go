package repository

import (
	"context"

	"pasaratsiri/internal/domain/entity"
	"pasaratsiri/internal/domain/repository"
	"pasaratsiri/pkg/errors"
	"pasaratsiri/pkg/logger"
)

type userRepository struct {
	store repository.DocumentStore
}

func NewUserRepository(store repository.DocumentStore) repository.UserRepository {
	return &userRepository{
		store: store,
	}
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	doc, err := r.store.Get(ctx, entity.CollectionUsers, id)
	if err != nil {
		return nil, err
	}

	var user entity.User
	if err := doc.DataTo(&user); err != nil {
		if !repository.Partial(err) {
			return nil, errors.Forbidden("User record is unreadable", err)
		}
		logger.Warn("user %s decoded partially: %v", id, err)
	}
	user.ID = doc.ID()

	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]*entity.User, error) {
	docs, err := r.store.All(ctx, entity.CollectionUsers)
	if err != nil {
		return nil, err
	}
	return decodeUsers(docs), nil
}

func (r *userRepository) Listen(ctx context.Context, onSnapshot func([]*entity.User), onError func(error)) repository.Unsubscribe {
	return r.store.Listen(ctx, entity.CollectionUsers, func(docs []repository.Document) {
		onSnapshot(decodeUsers(docs))
	}, onError)
}

// SaveStats replaces metadata/userStats wholesale.
func (r *userRepository) SaveStats(ctx context.Context, stats entity.UserStats) error {
	return r.store.Set(ctx, entity.CollectionMetadata, entity.DocUserStats, stats.Fields(), false)
}

func (r *userRepository) GetStats(ctx context.Context) (*entity.UserStats, error) {
	doc, err := r.store.Get(ctx, entity.CollectionMetadata, entity.DocUserStats)
	if err != nil {
		if errors.Is(err, errors.CodeNotFound) {
			return &entity.UserStats{}, nil
		}
		return nil, err
	}

	var stats entity.UserStats
	if err := doc.DataTo(&stats); err != nil {
		if !repository.Partial(err) {
			return nil, errors.Internal("Failed to decode user stats", err)
		}
		logger.Warn("user stats decoded partially: %v", err)
	}
	return &stats, nil
}

func decodeUsers(docs []repository.Document) []*entity.User {
	return repository.Decode(docs, func(u *entity.User, id string) { u.ID = id }, func(id string, err error) {
		logger.Warn("malformed user %s: %v", id, err)
	})
}
