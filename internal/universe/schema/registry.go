// Package schema declares the static ingestion metadata for every supported
// entity type and validates it into a registry the engine drives off.
package schema

import (
	"fmt"
	"sort"

	"eveuniverse/internal/shared/errors"
)

// Registry indexes the entity metadata by name and load order.
type Registry struct {
	byName  map[string]*EntityMeta
	ordered []*EntityMeta
}

// NewRegistry validates the built-in metadata and returns the registry.
// Validation failures are configuration errors; they indicate a broken
// declaration, not bad input.
func NewRegistry() (*Registry, error) {
	return newRegistry(builtin)
}

func newRegistry(metas []*EntityMeta) (*Registry, error) {
	r := &Registry{byName: make(map[string]*EntityMeta, len(metas))}
	for _, m := range metas {
		if _, dup := r.byName[m.Name]; dup {
			return nil, errors.NewConfigurationError("duplicate entity type " + m.Name)
		}
		r.byName[m.Name] = m
	}
	for _, m := range metas {
		if err := r.validate(m); err != nil {
			return nil, err
		}
		r.ordered = append(r.ordered, m)
	}
	sort.SliceStable(r.ordered, func(i, j int) bool {
		return r.ordered[i].LoadOrder < r.ordered[j].LoadOrder
	})
	return r, nil
}

func (r *Registry) validate(m *EntityMeta) error {
	fail := func(format string, args ...any) error {
		return errors.NewConfigurationError(
			"entity type " + m.Name + ": " + fmt.Sprintf(format, args...))
	}
	if m.NewModel == nil {
		return fail("missing model constructor")
	}
	if m.PathObject != "" && !m.PathObject.IsValid() {
		return fail("unknown operation %q", m.PathObject)
	}
	if m.PathList != "" && !m.PathList.IsValid() {
		return fail("unknown operation %q", m.PathList)
	}
	if m.IsInline() {
		if m.ESIPK != "" || m.PathObject != "" || m.PathList != "" {
			return fail("inline types are fetched through their parent")
		}
		if m.ParentFK == "" {
			return fail("inline type without parent FK")
		}
		if len(m.FunctionalPK) != 2 {
			return fail("functional PK must have two columns, got %d", len(m.FunctionalPK))
		}
		pk := make(map[string]bool, len(m.FunctionalPK))
		for _, col := range m.FunctionalPK {
			pk[col] = true
		}
		var parentSeen, keySeen bool
		for _, f := range m.Fields {
			if f.PK != pk[f.Column] {
				return fail("field %s disagrees with functional PK", f.Column)
			}
			if f.ParentFK {
				if f.Column != m.ParentFK {
					return fail("parent FK mismatch on field %s", f.Column)
				}
				parentSeen = true
			} else if f.PK {
				keySeen = true
			}
		}
		if !parentSeen || !keySeen {
			return fail("functional PK must pair the parent FK with a key field")
		}
	} else {
		if m.ESIPK == "" {
			return fail("missing ESI primary key")
		}
		if m.GetID == nil {
			return fail("missing ID accessor")
		}
		for _, f := range m.Fields {
			if f.PK || f.ParentFK {
				return fail("field %s marked as functional PK on a non-inline type", f.Column)
			}
		}
	}
	if len(m.Sections) > 32 {
		return fail("too many sections")
	}
	if m.HasSections() && m.GetFlags == nil {
		return fail("sectioned type without flags accessor")
	}
	declared := NewSectionSet(m.Sections...)
	for _, f := range m.Fields {
		if f.Related != "" {
			if _, ok := r.byName[f.Related]; !ok {
				return fail("field %s references unknown type %s", f.Column, f.Related)
			}
		}
		if f.Section != "" && !declared.Has(f.Section) {
			return fail("field %s gated by undeclared section %s", f.Column, f.Section)
		}
		if f.Optional && f.Text {
			return fail("field %s cannot be both optional and text", f.Column)
		}
	}
	for _, c := range m.Children {
		if _, ok := r.byName[c.Entity]; !ok {
			return fail("child %s references unknown type %s", c.PayloadKey, c.Entity)
		}
		if c.Section != "" && !declared.Has(c.Section) {
			return fail("child %s gated by undeclared section %s", c.PayloadKey, c.Section)
		}
	}
	for _, in := range m.Inlines {
		target, ok := r.byName[in.Entity]
		if !ok {
			return fail("inline %s references unknown type %s", in.PayloadKey, in.Entity)
		}
		if !target.IsInline() {
			return fail("inline %s targets non-inline type %s", in.PayloadKey, in.Entity)
		}
	}
	if m.InlineSection != "" && !declared.Has(m.InlineSection) {
		return fail("inlines gated by undeclared section %s", m.InlineSection)
	}
	return nil
}

// Get returns the metadata for the named entity type.
func (r *Registry) Get(name string) (*EntityMeta, error) {
	m, ok := r.byName[name]
	if !ok {
		return nil, errors.NewInvalidInputError("unknown entity type " + name)
	}
	return m, nil
}

// All returns every entity type sorted by load order.
func (r *Registry) All() []*EntityMeta {
	out := make([]*EntityMeta, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// Names returns every entity type name sorted alphabetically.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
