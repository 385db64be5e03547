package modelcheck

// Schema is the per-model-type registry of validated fields. One Schema is
// shared by every instance of the type: it is populated during the one-time
// registration phase and read-only afterwards, so evaluation needs no locking.
//
// Field iteration follows declaration order, which fixes the order of entries
// in a whole-model Result.
type Schema struct {
	fields map[string]*Field
	order  []string
}

// NewSchema returns an empty schema. Most callers obtain schemas through a
// Registry instead; a standalone schema is useful in tests.
func NewSchema() *Schema {
	return &Schema{fields: make(map[string]*Field)}
}

// AddRule appends rules to the named field's chain, creating the field entry
// on first use. Append order across calls is evaluation order.
func (s *Schema) AddRule(field string, rules ...Rule) {
	s.fieldFor(field).Add(rules...)
}

// SetFieldName sets the display name used in the named field's rendered
// messages, creating the field entry on first use.
func (s *Schema) SetFieldName(field, name string) {
	s.fieldFor(field).SetName(name)
}

// Field returns the options registered for a field name.
func (s *Schema) Field(field string) (*Field, bool) {
	f, ok := s.fields[field]
	return f, ok
}

// FieldNames returns the registered field names in declaration order.
func (s *Schema) FieldNames() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of registered fields.
func (s *Schema) Len() int { return len(s.order) }

func (s *Schema) fieldFor(field string) *Field {
	if f, ok := s.fields[field]; ok {
		return f
	}
	f := newField()
	s.fields[field] = f
	s.order = append(s.order, field)
	return f
}
