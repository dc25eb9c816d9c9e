package repository

import (
	"context"

	"pasaratsiri/internal/domain/entity"
)

type MarketPriceRepository interface {
	Get(ctx context.Context, id string) (*entity.MarketPrice, error)
	// Save merge-writes price under price.ID.
	Save(ctx context.Context, price *entity.MarketPrice) error
}
