package usecase

import (
	"context"
	"strings"
	"time"

	"pasaratsiri/internal/domain/entity"
	"pasaratsiri/internal/domain/repository"
	"pasaratsiri/pkg/errors"
	"pasaratsiri/pkg/logger"
)

// MarketPriceSaveError is shown when a save does not go through.
const MarketPriceSaveError = "Gagal menyimpan data harga."

type SaveMarketPriceInput struct {
	// ID is set when editing an existing record; the stored commodity
	// name is kept and CommodityName is ignored.
	ID            string  `json:"id"`
	CommodityName string  `json:"commodity_name" validate:"required_without=ID,max=100"`
	Price         float64 `json:"price" validate:"gt=0"`
}

type MarketPriceUseCase struct {
	repo repository.MarketPriceRepository
	now  func() time.Time
}

func NewMarketPriceUseCase(repo repository.MarketPriceRepository) *MarketPriceUseCase {
	return &MarketPriceUseCase{
		repo: repo,
		now:  time.Now,
	}
}

// Save rolls the stored current price, when there is one, into previous
// price and records the new price under the commodity key. Saving the same commodity again
// updates the same record.
func (uc *MarketPriceUseCase) Save(ctx context.Context, input SaveMarketPriceInput) (*entity.MarketPrice, error) {
	if input.Price <= 0 {
		return nil, errors.BadRequest("Harga harus lebih dari 0.", nil)
	}

	key := strings.TrimSpace(input.ID)
	name := strings.TrimSpace(input.CommodityName)
	if key == "" {
		key = entity.CommodityKey(name)
	}
	if key == "" {
		return nil, errors.BadRequest("Nama komoditas wajib diisi.", nil)
	}

	existing, err := uc.repo.Get(ctx, key)
	switch {
	case err == nil:
		name = existing.CommodityName
	case errors.Is(err, errors.CodeNotFound):
		if input.ID != "" {
			return nil, errors.NotFound("Market price "+key, err)
		}
		existing = nil
	default:
		logger.Err(err, "reading market price %s", key)
		return nil, errors.Internal(MarketPriceSaveError, err)
	}

	price := &entity.MarketPrice{
		ID:            key,
		CommodityName: name,
		CurrentPrice:  input.Price,
		LastUpdate:    uc.now(),
		UpdatedBy:     entity.MarketPriceActor,
	}
	if existing != nil {
		price.PreviousPrice = existing.PreviousPrice
		if existing.CurrentPrice > 0 {
			price.PreviousPrice = existing.CurrentPrice
		}
		if price.CommodityName == "" {
			price.CommodityName = strings.TrimSpace(input.CommodityName)
		}
	}

	if err := uc.repo.Save(ctx, price); err != nil {
		logger.Err(err, "saving market price %s", key)
		return nil, errors.Internal(MarketPriceSaveError, err)
	}

	logger.Info("market price %s set to %.2f", key, price.CurrentPrice)
	return price, nil
}
