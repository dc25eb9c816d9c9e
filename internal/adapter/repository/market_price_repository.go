package repository

import (
	"context"

	"pasaratsiri/internal/domain/entity"
	"pasaratsiri/internal/domain/repository"
	"pasaratsiri/pkg/errors"
	"pasaratsiri/pkg/logger"
)

type marketPriceRepository struct {
	store repository.DocumentStore
}

func NewMarketPriceRepository(store repository.DocumentStore) repository.MarketPriceRepository {
	return &marketPriceRepository{
		store: store,
	}
}

func (r *marketPriceRepository) Get(ctx context.Context, id string) (*entity.MarketPrice, error) {
	doc, err := r.store.Get(ctx, entity.CollectionMarketPrices, id)
	if err != nil {
		return nil, err
	}

	var price entity.MarketPrice
	if err := doc.DataTo(&price); err != nil {
		if !repository.Partial(err) {
			return nil, errors.Internal("Failed to decode market price", err)
		}
		logger.Warn("market price %s decoded partially: %v", id, err)
	}
	price.ID = doc.ID()
	return &price, nil
}

func (r *marketPriceRepository) Save(ctx context.Context, price *entity.MarketPrice) error {
	fields := map[string]interface{}{
		"commodityName": price.CommodityName,
		"currentPrice":  price.CurrentPrice,
		"lastUpdate":    price.LastUpdate,
		"updatedBy":     price.UpdatedBy,
	}
	// Merged, so a zero previous price leaves the stored one alone.
	if price.PreviousPrice > 0 {
		fields["previousPrice"] = price.PreviousPrice
	}
	return r.store.Set(ctx, entity.CollectionMarketPrices, price.ID, fields, true)
}
