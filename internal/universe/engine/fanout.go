package engine

import (
	"context"
	goerrors "errors"
	"fmt"

	"gorm.io/gorm"

	"eveuniverse/internal/shared/errors"
	"eveuniverse/internal/shared/utils/jsonutil"
	"eveuniverse/internal/universe/models"
	"eveuniverse/internal/universe/schema"
)

// fanOut stores everything a payload carries beyond the row itself: inline
// sub-records, type specific side tables, and child type loads.
func (e *Engine) fanOut(ctx context.Context, meta *schema.EntityMeta, id int64, payload map[string]any, enabled schema.SectionSet, opts LoadOptions) error {
	for _, in := range meta.EffectiveInlines(enabled) {
		if err := e.loadInlines(ctx, in, id, payload); err != nil {
			return err
		}
	}
	switch meta.Name {
	case "EveStation":
		if err := e.syncStationServices(ctx, id, payload); err != nil {
			return err
		}
	case "EveStargate":
		if err := e.linkStargate(ctx, id, payload); err != nil {
			return err
		}
	case "EveType":
		if enabled.Has(schema.SectionTypeMaterials) {
			if err := e.loadTypeMaterials(ctx, id); err != nil {
				return err
			}
		}
	}
	if opts.IncludeChildren {
		return e.loadChildren(ctx, meta, payload, enabled, opts)
	}
	return nil
}

// loadInlines stores every element of an inline payload array as a row of
// the inline type keyed by (parent, key field).
func (e *Engine) loadInlines(ctx context.Context, in schema.InlineDef, parentID int64, payload map[string]any) error {
	target, err := e.registry.Get(in.Entity)
	if err != nil {
		return err
	}
	arr, _ := jsonutil.AsArray(jsonutil.Dig(payload, in.PayloadKey))
	for _, el := range arr {
		record, ok := jsonutil.AsObject(el)
		if !ok {
			return errors.NewDataIntegrityError(fmt.Sprintf(
				"%s: unexpected element in %s", target.Name, in.PayloadKey))
		}
		if err := e.upsertInline(ctx, target, parentID, record); err != nil {
			return err
		}
	}
	return nil
}

// upsertInline writes one inline row, updating in place when a row with the
// same functional key already exists under the parent.
func (e *Engine) upsertInline(ctx context.Context, meta *schema.EntityMeta, parentID int64, record map[string]any) error {
	parent, err := meta.ParentField()
	if err != nil {
		return err
	}
	key, err := meta.KeyField()
	if err != nil {
		return err
	}
	attrs, err := e.resolveAttrs(ctx, meta, record, meta.Fields)
	if err != nil {
		return err
	}
	attrs[parent.Column] = parentID
	keyValue, ok := attrs[key.Column]
	if !ok || keyValue == nil {
		return errors.NewDataIntegrityError(fmt.Sprintf(
			"%s: missing key attribute %s", meta.Name, key.Column))
	}

	db := e.db.WithContext(ctx)
	where := fmt.Sprintf("%s = ? AND %s = ?", parent.Column, key.Column)
	err = db.Model(meta.NewModel()).Where(where, parentID, keyValue).First(meta.NewModel()).Error
	switch {
	case err == nil:
		err = db.Model(meta.NewModel()).Where(where, parentID, keyValue).Updates(attrs).Error
	case goerrors.Is(err, gorm.ErrRecordNotFound):
		err = db.Model(meta.NewModel()).Create(attrs).Error
		if err != nil && errors.IsDuplicateError(err) {
			err = db.Model(meta.NewModel()).Where(where, parentID, keyValue).Updates(attrs).Error
		}
	}
	if err != nil {
		return errors.NewDataIntegrityError("database write failed", err.Error())
	}
	return nil
}

// loadChildren loads every child ID named by the payload, either inline or
// through the task runtime. Children recursively load their own children
// with the same sections.
func (e *Engine) loadChildren(ctx context.Context, meta *schema.EntityMeta, payload map[string]any, enabled schema.SectionSet, opts LoadOptions) error {
	childOpts := LoadOptions{
		Sections:        enabled.Slice(),
		IncludeChildren: true,
		WaitForChildren: opts.WaitForChildren,
	}
	for _, c := range meta.EffectiveChildren(enabled) {
		childMeta, err := e.registry.Get(c.Entity)
		if err != nil {
			return err
		}
		arr, _ := jsonutil.AsArray(jsonutil.Dig(payload, c.PayloadKey))
		for _, el := range arr {
			childID, err := elementID(childMeta, el)
			if err != nil {
				return err
			}
			if opts.WaitForChildren || e.runtime == nil {
				if _, _, err := e.UpdateOrCreate(ctx, c.Entity, childID, childOpts); err != nil {
					return err
				}
				continue
			}
			task := Task{
				EntityType:      c.Entity,
				ID:              childID,
				Sections:        childOpts.Sections,
				IncludeChildren: true,
			}
			if err := e.runtime.Submit(ctx, task); err != nil {
				e.log.Warnw("task dispatch failed, loading synchronously",
					"type", c.Entity, "id", childID, "error", err)
				if _, _, err := e.UpdateOrCreate(ctx, c.Entity, childID, childOpts); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// syncStationServices replaces the station's service links with the
// services named by the payload. Service rows are shared across stations
// and created on first sight.
func (e *Engine) syncStationServices(ctx context.Context, stationID int64, payload map[string]any) error {
	arr, _ := jsonutil.AsArray(jsonutil.Dig(payload, "services"))
	services := make([]models.EveStationService, 0, len(arr))
	db := e.db.WithContext(ctx)
	for _, el := range arr {
		name, ok := jsonutil.AsString(el)
		if !ok {
			return errors.NewDataIntegrityError("EveStation: unexpected element in services")
		}
		var service models.EveStationService
		err := db.Where("name = ?", name).First(&service).Error
		if goerrors.Is(err, gorm.ErrRecordNotFound) {
			service = models.EveStationService{Name: name}
			err = db.Create(&service).Error
			if err != nil && errors.IsDuplicateError(err) {
				err = db.Where("name = ?", name).First(&service).Error
			}
		}
		if err != nil {
			return errors.NewDataIntegrityError("database write failed", err.Error())
		}
		services = append(services, service)
	}
	station := models.EveStation{ID: stationID}
	if err := db.Model(&station).Association("Services").Replace(services); err != nil {
		return errors.NewDataIntegrityError("database write failed", err.Error())
	}
	return nil
}

// linkStargate closes the cyclic reference between the two endpoints of a
// gate pair. The destination columns stay null until the destination gate
// row exists; once it does, both sides point at each other.
func (e *Engine) linkStargate(ctx context.Context, id int64, payload map[string]any) error {
	destGateID, ok := jsonutil.AsInt64(jsonutil.Dig(payload, "destination", "stargate_id"))
	if !ok {
		return nil
	}
	systemID, _ := jsonutil.AsInt64(jsonutil.Dig(payload, "system_id"))

	db := e.db.WithContext(ctx)
	var destination models.EveStargate
	err := db.First(&destination, "id = ?", destGateID).Error
	if goerrors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return errors.NewDataIntegrityError("database read failed", err.Error())
	}
	err = db.Model(&destination).Updates(map[string]any{
		"destination_eve_stargate_id":     id,
		"destination_eve_solar_system_id": systemID,
	}).Error
	if err != nil {
		return errors.NewDataIntegrityError("database update failed", err.Error())
	}
	return nil
}

// loadTypeMaterials stores the bill of materials of one inventory type from
// the static data export. Types without materials simply get no rows.
func (e *Engine) loadTypeMaterials(ctx context.Context, typeID int64) error {
	if e.materials == nil {
		return errors.NewConfigurationError("type materials section requires a materials source")
	}
	table, err := e.materials.TypeMaterials(ctx)
	if err != nil {
		return err
	}
	meta, err := e.registry.Get("EveTypeMaterial")
	if err != nil {
		return err
	}
	for _, material := range table[typeID] {
		record := map[string]any{
			"materialTypeID": material.MaterialTypeID,
			"quantity":       material.Quantity,
		}
		if err := e.upsertInline(ctx, meta, typeID, record); err != nil {
			return err
		}
	}
	return nil
}
