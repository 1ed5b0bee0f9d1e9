package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eveuniverse/internal/universe/models"
)

func marketPricesPayload() []any {
	return []any{
		map[string]any{"type_id": 34, "adjusted_price": 4.05, "average_price": 4.28},
		map[string]any{"type_id": 603, "adjusted_price": 351000.0},
	}
}

func TestUpdateMarketPrices(t *testing.T) {
	ctx := context.Background()

	t.Run("mirrors the prices endpoint", func(t *testing.T) {
		fake := newFakeESI()
		fake.addList("Market.get_markets_prices", marketPricesPayload())
		eng := newTestEngine(t, fake)

		count, err := eng.UpdateMarketPrices(ctx, 0)
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		var mineral models.EveMarketPrice
		require.NoError(t, eng.db.First(&mineral, "eve_type_id = ?", 34).Error)
		require.NotNil(t, mineral.AdjustedPrice)
		assert.InDelta(t, 4.05, *mineral.AdjustedPrice, 1e-9)
		require.NotNil(t, mineral.AveragePrice)
		assert.InDelta(t, 4.28, *mineral.AveragePrice, 1e-9)

		var ship models.EveMarketPrice
		require.NoError(t, eng.db.First(&ship, "eve_type_id = ?", 603).Error)
		assert.Nil(t, ship.AveragePrice)
	})

	t.Run("fresh data short-circuits", func(t *testing.T) {
		fake := newFakeESI()
		fake.addList("Market.get_markets_prices", marketPricesPayload())
		eng := newTestEngine(t, fake)

		_, err := eng.UpdateMarketPrices(ctx, 0)
		require.NoError(t, err)
		calls := fake.callCount("Market.get_markets_prices")

		count, err := eng.UpdateMarketPrices(ctx, 0)
		require.NoError(t, err)
		assert.Zero(t, count)
		assert.Equal(t, calls, fake.callCount("Market.get_markets_prices"))
	})

	t.Run("stale data is refreshed", func(t *testing.T) {
		fake := newFakeESI()
		fake.addList("Market.get_markets_prices", marketPricesPayload())
		eng := newTestEngine(t, fake)

		stale := time.Now().UTC().Add(-2 * time.Hour)
		require.NoError(t, eng.db.Create(&models.EveMarketPrice{
			EveTypeID: 34, UpdatedAt: stale,
		}).Error)
		require.NoError(t, eng.db.Model(&models.EveMarketPrice{}).
			Where("eve_type_id = ?", 34).
			UpdateColumn("updated_at", stale).Error)

		count, err := eng.UpdateMarketPrices(ctx, 60)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})
}
