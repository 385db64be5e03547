package modelcheck

// defaultFieldName is used in rendered messages until a display name is set.
const defaultFieldName = "Field"

// Field holds the display name and the ordered rule chain for one validated
// field. Rules are evaluated in registration order, and the resulting error
// messages preserve that order exactly: one message per failing rule, never
// deduplicated or reordered.
type Field struct {
	name  string
	rules []Rule
}

func newField() *Field {
	return &Field{name: defaultFieldName}
}

// Name returns the field's display name.
func (f *Field) Name() string { return f.name }

// SetName sets the field's display name; the last write wins.
func (f *Field) SetName(name string) { f.name = name }

// Rules returns a copy of the field's rule chain in registration order.
func (f *Field) Rules() []Rule {
	out := make([]Rule, len(f.rules))
	copy(out, f.rules)
	return out
}

// Add appends rules to the end of the field's chain.
func (f *Field) Add(rules ...Rule) {
	f.rules = append(f.rules, rules...)
}

// Validate evaluates the rule chain against a value and returns the resolved
// messages of the failing rules in registration order. An empty result means
// the field is valid. When the value is empty, rules that do not check empty
// values are skipped entirely, so every rule but Required may assume a
// non-empty input.
func (f *Field) Validate(value, model any) []string {
	empty := isEmpty(value)

	var errs []string
	for _, rule := range f.rules {
		if empty && !rule.ChecksEmpty() {
			continue
		}
		if !rule.Valid(value, model) {
			errs = append(errs, rule.Message(f.name, value))
		}
	}
	return errs
}
