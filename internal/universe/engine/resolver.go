package engine

import (
	"context"
	"fmt"
	"strings"

	"eveuniverse/internal/shared/errors"
	"eveuniverse/internal/shared/utils/jsonutil"
	"eveuniverse/internal/universe/schema"
)

// resolveAttrs maps a payload object to a column attribute map following
// the given field definitions. FK targets are created recursively before
// their ID is stored, so referential integrity holds row by row.
func (e *Engine) resolveAttrs(ctx context.Context, meta *schema.EntityMeta, record map[string]any, fields []schema.FieldDef) (map[string]any, error) {
	attrs := make(map[string]any, len(fields))
	for _, f := range fields {
		if f.ParentFK {
			// filled in by the inline loader
			continue
		}
		raw := jsonutil.Dig(record, f.RemotePath()...)
		if raw == nil {
			switch {
			case f.Text:
				attrs[f.Column] = ""
			case f.Optional:
				attrs[f.Column] = nil
			default:
				return nil, errors.NewDataIntegrityError(fmt.Sprintf(
					"%s: missing required attribute %s",
					meta.Name, strings.Join(f.RemotePath(), ".")))
			}
			continue
		}
		value, err := coerce(meta, f, raw)
		if err != nil {
			return nil, err
		}
		if f.Related != "" {
			id, ok := value.(int64)
			if !ok {
				return nil, errors.NewDataIntegrityError(fmt.Sprintf(
					"%s: FK attribute %s is not numeric", meta.Name, f.Column))
			}
			if f.SkipCreate {
				// store the reference only once the target row exists;
				// a later pass owns closing the gap
				exists, err := e.rowExists(ctx, f.Related, id)
				if err != nil {
					return nil, err
				}
				if !exists {
					attrs[f.Column] = nil
					continue
				}
			} else {
				if _, _, err := e.GetOrCreate(ctx, f.Related, id, LoadOptions{}); err != nil {
					return nil, err
				}
			}
		}
		attrs[f.Column] = value
	}
	return attrs, nil
}

func coerce(meta *schema.EntityMeta, f schema.FieldDef, raw any) (any, error) {
	switch f.Type {
	case schema.TypeInt:
		if v, ok := jsonutil.AsInt64(raw); ok {
			return v, nil
		}
	case schema.TypeFloat:
		if v, ok := jsonutil.AsFloat64(raw); ok {
			return v, nil
		}
	case schema.TypeBool:
		if v, ok := jsonutil.AsBool(raw); ok {
			return v, nil
		}
	case schema.TypeString:
		if v, ok := jsonutil.AsString(raw); ok {
			return v, nil
		}
	}
	return nil, errors.NewDataIntegrityError(fmt.Sprintf(
		"%s: attribute %s has unexpected type %T",
		meta.Name, strings.Join(f.RemotePath(), "."), raw))
}

// rowExists checks by primary key without loading the row.
func (e *Engine) rowExists(ctx context.Context, typeName string, id int64) (bool, error) {
	meta, err := e.registry.Get(typeName)
	if err != nil {
		return false, err
	}
	var count int64
	err = e.db.WithContext(ctx).Model(meta.NewModel()).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, errors.NewDataIntegrityError("database read failed", err.Error())
	}
	return count > 0, nil
}
