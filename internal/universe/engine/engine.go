// Package engine mirrors Eve Online universe data from ESI into the local
// database. It is driven entirely by the entity metadata registry: payloads
// are fetched per type, mapped to column attributes, upserted, and fanned
// out to inline rows and child types.
package engine

import (
	"context"
	goerrors "errors"
	"time"

	"gorm.io/gorm"

	"eveuniverse/internal/infrastructure/esi"
	"eveuniverse/internal/infrastructure/sde"
	"eveuniverse/internal/shared/config"
	"eveuniverse/internal/shared/constants"
	"eveuniverse/internal/shared/errors"
	"eveuniverse/internal/shared/logger"
	"eveuniverse/internal/universe/models"
	"eveuniverse/internal/universe/schema"
)

// MaterialsSource supplies the type materials table, which has no ESI
// endpoint and comes from the static data export instead.
type MaterialsSource interface {
	TypeMaterials(ctx context.Context) (map[int64][]sde.Material, error)
}

// LoadOptions controls a single load operation.
type LoadOptions struct {
	// Sections to load in addition to the globally enabled ones.
	Sections []schema.Section
	// IncludeChildren fans out to the child types named in the payload.
	IncludeChildren bool
	// WaitForChildren loads children synchronously instead of dispatching
	// them to the task runtime.
	WaitForChildren bool
}

// Engine loads and caches universe data. All operations are safe for
// concurrent use; consistency under concurrent loads of the same row relies
// on the upsert being idempotent.
type Engine struct {
	db        *gorm.DB
	transport esi.Transport
	registry  *schema.Registry
	log       logger.Interface
	global    schema.SectionSet
	batchSize int
	runtime   Runtime
	materials MaterialsSource

	useSkinserver bool
}

// Option configures optional engine collaborators.
type Option func(*Engine)

// WithRuntime sets the task runtime used for asynchronous child loads.
// Without one, every load is synchronous.
func WithRuntime(rt Runtime) Option {
	return func(e *Engine) { e.runtime = rt }
}

// WithMaterials sets the source for the type materials section.
func WithMaterials(src MaterialsSource) Option {
	return func(e *Engine) { e.materials = src }
}

// New creates an engine over the given database and ESI transport.
func New(db *gorm.DB, transport esi.Transport, cfg *config.UniverseConfig, log logger.Interface, opts ...Option) (*Engine, error) {
	registry, err := schema.NewRegistry()
	if err != nil {
		return nil, err
	}
	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = 500
	}
	e := &Engine{
		db:            db,
		transport:     transport,
		registry:      registry,
		log:           log.Named("engine"),
		global:        schema.GlobalSections(cfg),
		batchSize:     batchSize,
		useSkinserver: cfg.UseSkinserver,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// SetRuntime wires the task runtime after construction. The runtime itself
// needs the engine to execute tasks, hence the two step setup.
func (e *Engine) SetRuntime(rt Runtime) {
	e.runtime = rt
}

// Registry exposes the entity metadata, for callers enumerating types.
func (e *Engine) Registry() *schema.Registry {
	return e.registry
}

// effective returns the sections in force for a load: the globally enabled
// ones united with the requested ones. The set is kept unfiltered so that
// sections requested on a parent reach the descendants that declare them;
// SectionMask narrows it to the type's own bits at persistence time.
func (e *Engine) effective(requested []schema.Section) schema.SectionSet {
	return e.global.Union(schema.NewSectionSet(requested...))
}

// GetOrCreate returns the row for the given ID, loading it from ESI only
// when it is absent or lacks one of the effective sections.
func (e *Engine) GetOrCreate(ctx context.Context, typeName string, id int64, opts LoadOptions) (any, bool, error) {
	meta, err := e.registry.Get(typeName)
	if err != nil {
		return nil, false, err
	}
	if meta.IsInline() {
		return nil, false, errors.NewInvalidInputError(
			"inline type " + typeName + " is loaded through its parent")
	}
	enabled := e.effective(opts.Sections)
	mask := meta.SectionMask(enabled)

	model := meta.NewModel()
	err = e.db.WithContext(ctx).First(model, "id = ?", id).Error
	switch {
	case err == nil:
		if mask == 0 || meta.GetFlags(model).Has(mask) {
			return model, false, nil
		}
	case goerrors.Is(err, gorm.ErrRecordNotFound):
	default:
		return nil, false, errors.NewDataIntegrityError("database read failed", err.Error())
	}
	return e.UpdateOrCreate(ctx, typeName, id, opts)
}

// UpdateOrCreate always fetches fresh data from ESI and stores it,
// overwriting any existing row.
func (e *Engine) UpdateOrCreate(ctx context.Context, typeName string, id int64, opts LoadOptions) (any, bool, error) {
	meta, err := e.registry.Get(typeName)
	if err != nil {
		return nil, false, err
	}
	if meta.IsInline() {
		return nil, false, errors.NewInvalidInputError(
			"inline type " + typeName + " is loaded through its parent")
	}
	payload, err := e.fetchPayload(ctx, meta, id)
	if err != nil {
		return nil, false, err
	}
	return e.storePayload(ctx, meta, id, payload, opts)
}

// storePayload maps, upserts and fans out one fetched payload.
func (e *Engine) storePayload(ctx context.Context, meta *schema.EntityMeta, id int64, payload map[string]any, opts LoadOptions) (any, bool, error) {
	enabled := e.effective(opts.Sections)
	attrs, err := e.resolveAttrs(ctx, meta, payload, meta.EffectiveFields(enabled))
	if err != nil {
		return nil, false, err
	}
	created, err := e.upsert(ctx, meta, id, attrs)
	if err != nil {
		return nil, false, err
	}
	if mask := meta.SectionMask(enabled); mask != 0 {
		if err := e.enableSections(ctx, meta, id, mask); err != nil {
			return nil, false, err
		}
	}
	if err := e.fanOut(ctx, meta, id, payload, enabled, opts); err != nil {
		return nil, false, err
	}
	model := meta.NewModel()
	if err := e.db.WithContext(ctx).First(model, "id = ?", id).Error; err != nil {
		return nil, false, errors.NewDataIntegrityError("database read failed", err.Error())
	}
	e.log.Debugw("stored", "type", meta.Name, "id", id, "created", created)
	return model, created, nil
}

// upsert writes one row by ID. Concurrent loads of the same row race on the
// insert; the loser falls back to an update.
func (e *Engine) upsert(ctx context.Context, meta *schema.EntityMeta, id int64, attrs map[string]any) (bool, error) {
	if !meta.IsInline() {
		attrs["last_updated"] = time.Now().UTC()
	}
	db := e.db.WithContext(ctx)
	err := db.First(meta.NewModel(), "id = ?", id).Error
	switch {
	case err == nil:
		if err := db.Model(meta.NewModel()).Where("id = ?", id).Updates(attrs).Error; err != nil {
			return false, errors.NewDataIntegrityError("database update failed", err.Error())
		}
		return false, nil
	case goerrors.Is(err, gorm.ErrRecordNotFound):
		row := make(map[string]any, len(attrs)+1)
		for k, v := range attrs {
			row[k] = v
		}
		row["id"] = id
		if err := db.Model(meta.NewModel()).Create(row).Error; err != nil {
			if errors.IsDuplicateError(err) {
				if err := db.Model(meta.NewModel()).Where("id = ?", id).Updates(attrs).Error; err != nil {
					return false, errors.NewDataIntegrityError("database update failed", err.Error())
				}
				return false, nil
			}
			return false, errors.NewDataIntegrityError("database insert failed", err.Error())
		}
		return true, nil
	default:
		return false, errors.NewDataIntegrityError("database read failed", err.Error())
	}
}

// enableSections adds the mask bits to the row's enabled_sections bitfield.
// Bits only ever accumulate.
func (e *Engine) enableSections(ctx context.Context, meta *schema.EntityMeta, id int64, mask models.SectionFlags) error {
	err := e.db.WithContext(ctx).
		Model(meta.NewModel()).
		Where("id = ?", id).
		UpdateColumn("enabled_sections", gorm.Expr("enabled_sections | ?", uint32(mask))).
		Error
	if err != nil {
		return errors.NewDataIntegrityError("database update failed", err.Error())
	}
	return nil
}

// BulkGetOrCreate loads every given ID, skipping those already present with
// the effective sections, and returns the rows in input order.
func (e *Engine) BulkGetOrCreate(ctx context.Context, typeName string, ids []int64, opts LoadOptions) ([]any, error) {
	out := make([]any, 0, len(ids))
	for _, id := range ids {
		model, _, err := e.GetOrCreate(ctx, typeName, id, opts)
		if err != nil {
			return nil, err
		}
		out = append(out, model)
	}
	return out, nil
}

// UpdateOrCreateAll mirrors the full catalogue of the type from its index
// endpoint and returns the number of rows processed.
func (e *Engine) UpdateOrCreateAll(ctx context.Context, typeName string, opts LoadOptions) (int, error) {
	meta, err := e.registry.Get(typeName)
	if err != nil {
		return 0, err
	}
	if meta.Name == "EveEntity" {
		return e.UpdateAllEntitiesFromESI(ctx)
	}
	if meta.PathList == "" {
		return 0, errors.NewInvalidInputError(
			"entity type " + typeName + " has no index endpoint")
	}
	result, err := e.transport.Call(ctx, meta.PathList, nil)
	if err != nil {
		return 0, err
	}
	arr, ok := result.([]any)
	if !ok {
		return 0, errors.NewDataIntegrityError("unexpected index payload for " + typeName)
	}
	count := 0
	for _, el := range arr {
		if meta.IsListOnly() {
			// index elements are full objects; store them directly
			record, ok := el.(map[string]any)
			if !ok {
				return count, errors.NewDataIntegrityError("unexpected index element for " + typeName)
			}
			id, err := recordID(meta, record)
			if err != nil {
				return count, err
			}
			if _, _, err := e.storePayload(ctx, meta, id, record, opts); err != nil {
				return count, err
			}
		} else {
			id, err := elementID(meta, el)
			if err != nil {
				return count, err
			}
			if err := e.loadOne(ctx, typeName, id, opts); err != nil {
				return count, err
			}
		}
		count++
	}
	e.log.Infow("mirrored catalogue", "type", typeName, "count", count)
	return count, nil
}

// loadOne loads a single row synchronously or hands it to the task runtime,
// depending on whether the caller waits.
func (e *Engine) loadOne(ctx context.Context, typeName string, id int64, opts LoadOptions) error {
	if opts.WaitForChildren || e.runtime == nil {
		_, _, err := e.UpdateOrCreate(ctx, typeName, id, opts)
		return err
	}
	task := Task{
		EntityType:      typeName,
		ID:              id,
		Sections:        opts.Sections,
		IncludeChildren: opts.IncludeChildren,
	}
	if err := e.runtime.Submit(ctx, task); err != nil {
		e.log.Warnw("task dispatch failed, loading synchronously",
			"type", typeName, "id", id, "error", err)
		_, _, err := e.UpdateOrCreate(ctx, typeName, id, opts)
		return err
	}
	return nil
}

// PurgeAll deletes every mirrored row, in reverse migration order.
func (e *Engine) PurgeAll(ctx context.Context) error {
	db := e.db.WithContext(ctx)
	if err := db.Exec("DELETE FROM " + constants.TableStationServiceLinks).Error; err != nil {
		return errors.NewDataIntegrityError("purge failed", err.Error())
	}
	all := models.All()
	for i := len(all) - 1; i >= 0; i-- {
		if err := db.Where("1 = 1").Delete(all[i]).Error; err != nil {
			return errors.NewDataIntegrityError("purge failed", err.Error())
		}
	}
	e.log.Infow("purged all universe data")
	return nil
}
