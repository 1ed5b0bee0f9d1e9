package engine

import (
	"context"

	"gorm.io/gorm/clause"

	"eveuniverse/internal/infrastructure/esi"
	"eveuniverse/internal/shared/errors"
	"eveuniverse/internal/shared/utils/jsonutil"
	"eveuniverse/internal/universe/models"
)

const (
	// the names endpoint rejects requests with more than 1000 IDs
	entityChunkSize = 1000
	// how many times a failing chunk is split in half before the IDs in it
	// are given up on
	entityMaxResolveDepth = 5
)

// GetOrCreateEntities returns entity rows for every given ID, resolving
// names and categories in bulk for IDs that are new or still placeholders.
// IDs ESI cannot resolve come back as placeholder rows with an empty name.
func (e *Engine) GetOrCreateEntities(ctx context.Context, ids []int64) ([]*models.EveEntity, error) {
	ids = dedupe(ids)
	var known []models.EveEntity
	err := e.db.WithContext(ctx).Where("id IN ? AND name <> ''", ids).Find(&known).Error
	if err != nil {
		return nil, errors.NewDataIntegrityError("database read failed", err.Error())
	}
	resolved := make(map[int64]bool, len(known))
	for _, entity := range known {
		resolved[entity.ID] = true
	}
	var missing []int64
	for _, id := range ids {
		if !resolved[id] {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		if _, err := e.UpdateEntitiesFromESI(ctx, missing); err != nil {
			return nil, err
		}
	}
	var rows []models.EveEntity
	err = e.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error
	if err != nil {
		return nil, errors.NewDataIntegrityError("database read failed", err.Error())
	}
	byID := make(map[int64]*models.EveEntity, len(rows))
	for i := range rows {
		byID[rows[i].ID] = &rows[i]
	}
	out := make([]*models.EveEntity, 0, len(ids))
	for _, id := range ids {
		if entity, ok := byID[id]; ok {
			out = append(out, entity)
		}
	}
	return out, nil
}

// UpdateEntitiesFromESI resolves the given IDs through the bulk names
// endpoint and stores the results, creating placeholder rows first so every
// ID has a row even when ESI cannot name it. Returns how many IDs resolved.
func (e *Engine) UpdateEntitiesFromESI(ctx context.Context, ids []int64) (int, error) {
	ids = dedupe(ids)
	if len(ids) == 0 {
		return 0, nil
	}
	if err := e.createPlaceholders(ctx, ids); err != nil {
		return 0, err
	}
	resolved := 0
	for start := 0; start < len(ids); start += entityChunkSize {
		end := start + entityChunkSize
		if end > len(ids) {
			end = len(ids)
		}
		n, err := e.resolveChunk(ctx, ids[start:end], 0)
		if err != nil {
			return resolved, err
		}
		resolved += n
	}
	e.log.Infow("resolved entities", "requested", len(ids), "resolved", resolved)
	return resolved, nil
}

// UpdateAllEntitiesFromESI refreshes the name and category of every stored
// entity row.
func (e *Engine) UpdateAllEntitiesFromESI(ctx context.Context) (int, error) {
	var ids []int64
	err := e.db.WithContext(ctx).Model(&models.EveEntity{}).Pluck("id", &ids).Error
	if err != nil {
		return 0, errors.NewDataIntegrityError("database read failed", err.Error())
	}
	return e.UpdateEntitiesFromESI(ctx, ids)
}

// resolveChunk posts one chunk to the names endpoint. The endpoint fails
// the whole request with a 404 when any single ID is unknown, so on not
// found the chunk is split in half and both halves are retried, down to a
// depth limit. Single unknown IDs stay placeholders.
func (e *Engine) resolveChunk(ctx context.Context, ids []int64, depth int) (int, error) {
	result, err := e.transport.Call(ctx, "Universe.post_universe_names", esi.Params{"ids": ids})
	if err != nil {
		if !errors.IsNotFoundError(err) {
			return 0, err
		}
		if len(ids) == 1 {
			e.log.Warnw("entity ID unknown to ESI", "id", ids[0])
			return 0, nil
		}
		if depth >= entityMaxResolveDepth {
			e.log.Warnw("giving up on unresolvable entity chunk",
				"size", len(ids), "depth", depth)
			return 0, nil
		}
		half := len(ids) / 2
		left, err := e.resolveChunk(ctx, ids[:half], depth+1)
		if err != nil {
			return left, err
		}
		right, err := e.resolveChunk(ctx, ids[half:], depth+1)
		return left + right, err
	}
	arr, ok := jsonutil.AsArray(result)
	if !ok {
		return 0, errors.NewDataIntegrityError("unexpected names payload")
	}
	resolved := 0
	for _, el := range arr {
		record, ok := jsonutil.AsObject(el)
		if !ok {
			return resolved, errors.NewDataIntegrityError("unexpected names element")
		}
		id, idOK := jsonutil.AsInt64(jsonutil.Dig(record, "id"))
		name, nameOK := jsonutil.AsString(jsonutil.Dig(record, "name"))
		if !idOK || !nameOK {
			return resolved, errors.NewDataIntegrityError("unexpected names element")
		}
		attrs := map[string]any{"name": name}
		if category, ok := jsonutil.AsString(jsonutil.Dig(record, "category")); ok {
			if models.IsValidCategory(category) {
				attrs["category"] = category
			}
		}
		err := e.db.WithContext(ctx).
			Model(&models.EveEntity{}).
			Where("id = ?", id).
			Updates(attrs).
			Error
		if err != nil {
			return resolved, errors.NewDataIntegrityError("database update failed", err.Error())
		}
		resolved++
	}
	return resolved, nil
}

// createPlaceholders inserts empty-name rows for IDs not seen before.
func (e *Engine) createPlaceholders(ctx context.Context, ids []int64) error {
	rows := make([]models.EveEntity, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, models.EveEntity{ID: id})
	}
	err := e.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(rows, e.batchSize).
		Error
	if err != nil {
		return errors.NewDataIntegrityError("database insert failed", err.Error())
	}
	return nil
}

// NameResolver answers ID to name lookups from a single bulk fetch.
type NameResolver struct {
	names map[int64]string
}

// FetchNameResolver resolves all given IDs in bulk and returns a resolver
// over the result.
func (e *Engine) FetchNameResolver(ctx context.Context, ids []int64) (NameResolver, error) {
	entities, err := e.GetOrCreateEntities(ctx, ids)
	if err != nil {
		return NameResolver{}, err
	}
	names := make(map[int64]string, len(entities))
	for _, entity := range entities {
		names[entity.ID] = entity.Name
	}
	return NameResolver{names: names}, nil
}

// Name returns the resolved name, or an empty string for unknown IDs.
func (r NameResolver) Name(id int64) string {
	return r.names[id]
}

func dedupe(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
