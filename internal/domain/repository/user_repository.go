package repository

import (
	"context"

	"pasaratsiri/internal/domain/entity"
)

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	Listen(ctx context.Context, onSnapshot func([]*entity.User), onError func(error)) Unsubscribe
	SaveStats(ctx context.Context, stats entity.UserStats) error
	GetStats(ctx context.Context) (*entity.UserStats, error)
}
