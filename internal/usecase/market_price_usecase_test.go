package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapter "pasaratsiri/internal/adapter/repository"
	"pasaratsiri/internal/domain/entity"
	"pasaratsiri/internal/infrastructure/memstore"
	"pasaratsiri/pkg/errors"
)

func newMarketPriceUseCase(store *memstore.Store) *MarketPriceUseCase {
	uc := NewMarketPriceUseCase(adapter.NewMarketPriceRepository(store))
	uc.now = func() time.Time { return time.Date(2026, time.October, 18, 9, 0, 0, 0, time.UTC) }
	return uc
}

func TestSavingTwiceRollsPriceIntoPrevious(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	uc := newMarketPriceUseCase(store)

	first, err := uc.Save(ctx, SaveMarketPriceInput{CommodityName: "Minyak Nilam", Price: 100})
	require.NoError(t, err)
	second, err := uc.Save(ctx, SaveMarketPriceInput{CommodityName: "Minyak Nilam", Price: 120})
	require.NoError(t, err)

	assert.Equal(t, "minyak_nilam", first.ID)
	assert.Equal(t, first.ID, second.ID)

	docs, err := store.All(ctx, "market_prices")
	require.NoError(t, err)
	require.Len(t, docs, 1)

	var stored entity.MarketPrice
	require.NoError(t, docs[0].DataTo(&stored))
	assert.Equal(t, 120.0, stored.CurrentPrice)
	assert.Equal(t, 100.0, stored.PreviousPrice)
	assert.Equal(t, "Minyak Nilam", stored.CommodityName)
	assert.Equal(t, entity.MarketPriceActor, stored.UpdatedBy)
}

func TestEditKeepsKeyAndName(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	uc := newMarketPriceUseCase(store)

	_, err := uc.Save(ctx, SaveMarketPriceInput{CommodityName: "Minyak Serai Wangi", Price: 300})
	require.NoError(t, err)

	edited, err := uc.Save(ctx, SaveMarketPriceInput{ID: "minyak_serai_wangi", CommodityName: "Renamed", Price: 320})
	require.NoError(t, err)
	assert.Equal(t, "minyak_serai_wangi", edited.ID)
	assert.Equal(t, "Minyak Serai Wangi", edited.CommodityName)
	assert.Equal(t, 300.0, edited.PreviousPrice)
}

func TestSaveWithoutStoredCurrentPriceKeepsPrevious(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	require.NoError(t, store.Set(ctx, "market_prices", "minyak_cengkeh", map[string]interface{}{
		"commodityName": "Minyak Cengkeh",
		"previousPrice": 90000.0,
	}, false))
	uc := newMarketPriceUseCase(store)

	saved, err := uc.Save(ctx, SaveMarketPriceInput{ID: "minyak_cengkeh", Price: 95000})
	require.NoError(t, err)
	assert.Equal(t, 90000.0, saved.PreviousPrice)

	doc, err := store.Get(ctx, "market_prices", "minyak_cengkeh")
	require.NoError(t, err)
	var stored entity.MarketPrice
	require.NoError(t, doc.DataTo(&stored))
	assert.Equal(t, 95000.0, stored.CurrentPrice)
	assert.Equal(t, 90000.0, stored.PreviousPrice)
}

func TestSaveValidation(t *testing.T) {
	uc := newMarketPriceUseCase(memstore.New())
	ctx := context.Background()

	_, err := uc.Save(ctx, SaveMarketPriceInput{CommodityName: "Minyak Nilam", Price: 0})
	assert.True(t, errors.Is(err, errors.CodeBadRequest))

	_, err = uc.Save(ctx, SaveMarketPriceInput{CommodityName: "  !!  ", Price: 10})
	assert.True(t, errors.Is(err, errors.CodeBadRequest))

	_, err = uc.Save(ctx, SaveMarketPriceInput{ID: "missing_key", Price: 10})
	assert.True(t, errors.Is(err, errors.CodeNotFound))
}
