package engine

import (
	"context"
	"fmt"

	"eveuniverse/internal/infrastructure/esi"
	"eveuniverse/internal/shared/errors"
	"eveuniverse/internal/shared/utils/jsonutil"
	"eveuniverse/internal/universe/schema"
)

// fetchPayload retrieves the payload object for one row. Most types map to
// their detail endpoint; types without one are scanned out of their index
// payload, and a few need data stitched together from related endpoints.
func (e *Engine) fetchPayload(ctx context.Context, meta *schema.EntityMeta, id int64) (map[string]any, error) {
	switch meta.Name {
	case "EveEntity":
		return e.fetchEntityPayload(ctx, id)
	case "EvePlanet":
		return e.fetchPlanetPayload(ctx, meta, id)
	case "EveMoon", "EveAsteroidBelt":
		return e.fetchPlanetChildPayload(ctx, meta, id)
	}
	if meta.PathObject != "" {
		return e.fetchDetail(ctx, meta, id)
	}
	if meta.PathList != "" {
		return e.scanIndex(ctx, meta, id)
	}
	return nil, errors.NewInvalidInputError(
		"entity type " + meta.Name + " cannot be fetched from ESI")
}

func (e *Engine) fetchDetail(ctx context.Context, meta *schema.EntityMeta, id int64) (map[string]any, error) {
	result, err := e.transport.Call(ctx, meta.PathObject, esi.Params{meta.ESIPK: id})
	if err != nil {
		return nil, err
	}
	record, ok := jsonutil.AsObject(result)
	if !ok {
		return nil, errors.NewDataIntegrityError("unexpected payload for " + meta.Name)
	}
	return record, nil
}

// scanIndex fetches the index payload of a list-only type and picks the
// element with the requested ID. An absent element is reported the same way
// the detail endpoints report unknown IDs.
func (e *Engine) scanIndex(ctx context.Context, meta *schema.EntityMeta, id int64) (map[string]any, error) {
	result, err := e.transport.Call(ctx, meta.PathList, nil)
	if err != nil {
		return nil, err
	}
	arr, ok := jsonutil.AsArray(result)
	if !ok {
		return nil, errors.NewDataIntegrityError("unexpected index payload for " + meta.Name)
	}
	for _, el := range arr {
		record, ok := jsonutil.AsObject(el)
		if !ok {
			continue
		}
		if elID, ok := jsonutil.AsInt64(jsonutil.Dig(record, meta.ESIPK)); ok && elID == id {
			return record, nil
		}
	}
	return nil, errors.NewNotFoundError(
		fmt.Sprintf("%s %d not found", meta.Name, id))
}

// fetchEntityPayload resolves a single ID through the bulk names endpoint.
func (e *Engine) fetchEntityPayload(ctx context.Context, id int64) (map[string]any, error) {
	result, err := e.transport.Call(ctx, "Universe.post_universe_names", esi.Params{"ids": []int64{id}})
	if err != nil {
		return nil, err
	}
	arr, _ := jsonutil.AsArray(result)
	for _, el := range arr {
		record, ok := jsonutil.AsObject(el)
		if !ok {
			continue
		}
		if elID, ok := jsonutil.AsInt64(jsonutil.Dig(record, "id")); ok && elID == id {
			return record, nil
		}
	}
	return nil, errors.NewNotFoundError(fmt.Sprintf("EveEntity %d not found", id))
}

// fetchPlanetPayload fetches the planet detail and merges in the moon and
// asteroid belt ID arrays, which only exist on the owning solar system's
// payload.
func (e *Engine) fetchPlanetPayload(ctx context.Context, meta *schema.EntityMeta, id int64) (map[string]any, error) {
	record, err := e.fetchDetail(ctx, meta, id)
	if err != nil {
		return nil, err
	}
	systemID, ok := jsonutil.AsInt64(jsonutil.Dig(record, "system_id"))
	if !ok {
		return nil, errors.NewDataIntegrityError(
			fmt.Sprintf("planet %d payload lacks system_id", id))
	}
	entry, err := e.systemPlanetEntry(ctx, systemID, func(planet map[string]any) bool {
		planetID, ok := jsonutil.AsInt64(jsonutil.Dig(planet, "planet_id"))
		return ok && planetID == id
	})
	if err != nil {
		return nil, err
	}
	if entry != nil {
		record["asteroid_belts"] = entry["asteroid_belts"]
		record["moons"] = entry["moons"]
	}
	return record, nil
}

// fetchPlanetChildPayload fetches a moon or asteroid belt detail and injects
// the owning planet's ID, which the detail payload lacks. The planet is
// found by scanning the solar system's planets array for the entry listing
// this ID.
func (e *Engine) fetchPlanetChildPayload(ctx context.Context, meta *schema.EntityMeta, id int64) (map[string]any, error) {
	record, err := e.fetchDetail(ctx, meta, id)
	if err != nil {
		return nil, err
	}
	systemID, ok := jsonutil.AsInt64(jsonutil.Dig(record, "system_id"))
	if !ok {
		return nil, errors.NewDataIntegrityError(
			fmt.Sprintf("%s %d payload lacks system_id", meta.Name, id))
	}
	key := "moons"
	if meta.Name == "EveAsteroidBelt" {
		key = "asteroid_belts"
	}
	entry, err := e.systemPlanetEntry(ctx, systemID, func(planet map[string]any) bool {
		for _, childID := range jsonutil.Int64Slice(jsonutil.Dig(planet, key)) {
			if childID == id {
				return true
			}
		}
		return false
	})
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, errors.NewDataIntegrityError(
			fmt.Sprintf("%s %d not listed by solar system %d", meta.Name, id, systemID))
	}
	record["planet_id"] = jsonutil.Dig(entry, "planet_id")
	return record, nil
}

// systemPlanetEntry fetches a solar system payload and returns the first
// planets entry matching the predicate, or nil.
func (e *Engine) systemPlanetEntry(ctx context.Context, systemID int64, match func(map[string]any) bool) (map[string]any, error) {
	result, err := e.transport.Call(ctx, "Universe.get_universe_systems_system_id", esi.Params{"system_id": systemID})
	if err != nil {
		return nil, err
	}
	system, ok := jsonutil.AsObject(result)
	if !ok {
		return nil, errors.NewDataIntegrityError("unexpected payload for EveSolarSystem")
	}
	arr, _ := jsonutil.AsArray(jsonutil.Dig(system, "planets"))
	for _, el := range arr {
		planet, ok := jsonutil.AsObject(el)
		if !ok {
			continue
		}
		if match(planet) {
			return planet, nil
		}
	}
	return nil, nil
}

// recordID reads the type's ESI primary key out of a payload object.
func recordID(meta *schema.EntityMeta, record map[string]any) (int64, error) {
	id, ok := jsonutil.AsInt64(jsonutil.Dig(record, meta.ESIPK))
	if !ok {
		return 0, errors.NewDataIntegrityError(
			fmt.Sprintf("%s index element lacks %s", meta.Name, meta.ESIPK))
	}
	return id, nil
}

// elementID reads an ID from an index element that is either a bare number
// or an object carrying the type's ESI primary key.
func elementID(meta *schema.EntityMeta, el any) (int64, error) {
	if id, ok := jsonutil.AsInt64(el); ok {
		return id, nil
	}
	if record, ok := jsonutil.AsObject(el); ok {
		return recordID(meta, record)
	}
	return 0, errors.NewDataIntegrityError("unexpected index element for " + meta.Name)
}
