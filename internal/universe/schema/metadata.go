package schema

import (
	"eveuniverse/internal/infrastructure/esi"
	"eveuniverse/internal/shared/errors"
	"eveuniverse/internal/universe/models"
)

// FieldType is the local column type a remote attribute is coerced to.
type FieldType int

const (
	TypeInt FieldType = iota
	TypeFloat
	TypeBool
	TypeString
)

// FieldDef maps one remote payload attribute to a local column.
//
// Remote is the path into the payload object; a single element for top-level
// attributes, two for nested ones such as ("position", "x"). A nil Remote
// means the remote attribute has the same name as the column.
type FieldDef struct {
	Column   string
	Remote   []string
	Type     FieldType
	Related  string // entity type name; non-empty makes this a FK column
	Optional bool   // missing or null payload value stores NULL
	Text     bool   // missing or null payload value stores ""
	// SkipCreate stores the FK value without resolving the target row
	// first, for targets another pass is responsible for.
	SkipCreate bool
	PK         bool // part of an inline type's functional primary key
	ParentFK   bool // the FK back to the owning parent row
	Section    Section
}

// RemotePath returns the payload path for this field.
func (f FieldDef) RemotePath() []string {
	if f.Remote == nil {
		return []string{f.Column}
	}
	return f.Remote
}

// ChildDef declares a payload array of child IDs fanned out to another
// entity type, optionally gated by a section.
type ChildDef struct {
	PayloadKey string
	Entity     string
	Section    Section
}

// InlineDef declares a payload array of embedded objects stored as rows
// of an inline entity type under the parent.
type InlineDef struct {
	PayloadKey string
	Entity     string
}

// EntityMeta is the static ingestion metadata for one entity type. The
// registry validates and indexes these at construction time so the engine
// never inspects model structs at runtime.
type EntityMeta struct {
	Name       string
	ESIPK      string
	PathObject esi.Operation // detail endpoint; empty for list-only types
	PathList   esi.Operation // index endpoint; empty when the type has none

	Fields   []FieldDef
	Children []ChildDef
	Inlines  []InlineDef
	// InlineSection gates all Inlines behind one section when set.
	InlineSection Section

	// FunctionalPK and ParentFK are set on inline types only.
	FunctionalPK []string
	ParentFK     string

	// Sections in declaration order; the bit position of a section in the
	// enabled_sections column is its index here.
	Sections []Section

	LoadOrder int

	NewModel func() any
	GetID    func(model any) int64
	GetFlags func(model any) models.SectionFlags
}

// IsInline reports whether rows of this type are keyed by a functional
// primary key under a parent instead of an ESI ID.
func (m *EntityMeta) IsInline() bool {
	return len(m.FunctionalPK) > 0
}

// IsListOnly reports whether the type has no detail endpoint and must be
// fetched by scanning the index payload.
func (m *EntityMeta) IsListOnly() bool {
	return m.PathObject == "" && m.PathList != ""
}

// HasSections reports whether the type declares any sections.
func (m *EntityMeta) HasSections() bool {
	return len(m.Sections) > 0
}

// SectionMask returns the bitfield for the requested sections, using this
// type's declared bit order. Sections the type does not declare are ignored.
func (m *EntityMeta) SectionMask(set SectionSet) models.SectionFlags {
	var mask models.SectionFlags
	for i, s := range m.Sections {
		if set.Has(s) {
			mask |= 1 << uint(i)
		}
	}
	return mask
}

// EffectiveFields returns the field mappings with section-gated fields
// removed when their section is not enabled.
func (m *EntityMeta) EffectiveFields(enabled SectionSet) []FieldDef {
	out := make([]FieldDef, 0, len(m.Fields))
	for _, f := range m.Fields {
		if f.Section != "" && !enabled.Has(f.Section) {
			continue
		}
		out = append(out, f)
	}
	return out
}

// EffectiveChildren returns child declarations whose section, if any,
// is enabled.
func (m *EntityMeta) EffectiveChildren(enabled SectionSet) []ChildDef {
	out := make([]ChildDef, 0, len(m.Children))
	for _, c := range m.Children {
		if c.Section != "" && !enabled.Has(c.Section) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// EffectiveInlines returns inline declarations, or none when the gating
// section is not enabled.
func (m *EntityMeta) EffectiveInlines(enabled SectionSet) []InlineDef {
	if m.InlineSection != "" && !enabled.Has(m.InlineSection) {
		return nil
	}
	return m.Inlines
}

// KeyField returns the functional PK field that is not the parent FK.
// Inline types have exactly one.
func (m *EntityMeta) KeyField() (FieldDef, error) {
	for _, f := range m.Fields {
		if f.PK && !f.ParentFK {
			return f, nil
		}
	}
	return FieldDef{}, errors.NewConfigurationError("entity type " + m.Name + " has no key field")
}

// ParentField returns the parent FK field of an inline type.
func (m *EntityMeta) ParentField() (FieldDef, error) {
	for _, f := range m.Fields {
		if f.ParentFK {
			return f, nil
		}
	}
	return FieldDef{}, errors.NewConfigurationError("entity type " + m.Name + " has no parent field")
}
