package engine

import (
	"context"
	goerrors "errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"eveuniverse/internal/shared/errors"
	"eveuniverse/internal/shared/utils/jsonutil"
	"eveuniverse/internal/universe/models"
)

// UpdateMarketPrices mirrors the market prices endpoint into the local
// price table. The endpoint is refreshed hourly upstream, so nothing is
// fetched while the stored data is younger than the staleness window.
// A zero staleMinutes selects the default window. Returns the number of
// rows written, zero when the stored data was still fresh.
func (e *Engine) UpdateMarketPrices(ctx context.Context, staleMinutes int) (int, error) {
	if staleMinutes <= 0 {
		staleMinutes = models.DefaultMarketPriceStaleMinutes
	}
	db := e.db.WithContext(ctx)

	var newest models.EveMarketPrice
	err := db.Order("updated_at DESC").First(&newest).Error
	switch {
	case err == nil:
		age := time.Since(newest.UpdatedAt)
		if age < time.Duration(staleMinutes)*time.Minute {
			e.log.Debugw("market prices still fresh", "age", age)
			return 0, nil
		}
	case goerrors.Is(err, gorm.ErrRecordNotFound):
	default:
		return 0, errors.NewDataIntegrityError("database read failed", err.Error())
	}

	result, err := e.transport.Call(ctx, "Market.get_markets_prices", nil)
	if err != nil {
		return 0, err
	}
	arr, ok := jsonutil.AsArray(result)
	if !ok {
		return 0, errors.NewDataIntegrityError("unexpected market prices payload")
	}
	now := time.Now().UTC()
	rows := make([]models.EveMarketPrice, 0, len(arr))
	for _, el := range arr {
		record, ok := jsonutil.AsObject(el)
		if !ok {
			return 0, errors.NewDataIntegrityError("unexpected market prices element")
		}
		typeID, ok := jsonutil.AsInt64(jsonutil.Dig(record, "type_id"))
		if !ok {
			return 0, errors.NewDataIntegrityError("market prices element lacks type_id")
		}
		price := models.EveMarketPrice{EveTypeID: typeID, UpdatedAt: now}
		if v, ok := jsonutil.AsFloat64(jsonutil.Dig(record, "adjusted_price")); ok {
			price.AdjustedPrice = &v
		}
		if v, ok := jsonutil.AsFloat64(jsonutil.Dig(record, "average_price")); ok {
			price.AveragePrice = &v
		}
		rows = append(rows, price)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	err = db.Clauses(clause.OnConflict{UpdateAll: true}).
		CreateInBatches(rows, e.batchSize).
		Error
	if err != nil {
		return 0, errors.NewDataIntegrityError("database write failed", err.Error())
	}
	e.log.Infow("updated market prices", "count", len(rows))
	return len(rows), nil
}
