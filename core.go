package modelcheck

import (
	"fmt"
	"reflect"
)

// Rule is a single, stateless validation check attached to a field. A Rule is
// immutable after construction: identical (value, model) inputs always yield
// the identical Valid result.
type Rule interface {
	// Valid reports whether value satisfies the rule. The whole model is
	// passed so cross-field rules can read sibling fields; single-field
	// rules ignore it.
	Valid(value, model any) bool

	// Message renders the failure message for the given display name and
	// value. A custom message, when set, is returned verbatim; otherwise
	// the rule's default template is rendered.
	Message(field string, value any) string

	// ChecksEmpty reports whether the rule must run even when the field
	// value is empty. Only Required returns true; every other rule is
	// skipped on empty input and may assume a non-empty value.
	ChecksEmpty() bool
}

// MessageContext carries the data available to a lazy message function.
// The function is evaluated only when the rule actually fails.
type MessageContext struct {
	FriendlyName string
	Value        any
}

// RuleOption configures the optional custom message of a rule.
type RuleOption func(*ruleMessage)

// WithMessage overrides the rule's default message template. The string is
// emitted verbatim on failure, without field-name interpolation.
func WithMessage(message string) RuleOption {
	return func(m *ruleMessage) {
		m.custom = message
	}
}

// WithMessageFunc overrides the rule's message with a function of the render
// context, evaluated lazily at failure time.
func WithMessageFunc(fn func(MessageContext) string) RuleOption {
	return func(m *ruleMessage) {
		m.customFn = fn
	}
}

// ruleMessage holds the optional custom message shared by all rule variants
// and resolves precedence: message func, then fixed custom string, then the
// variant's default template.
type ruleMessage struct {
	custom   string
	customFn func(MessageContext) string
}

func newRuleMessage(opts []RuleOption) ruleMessage {
	var m ruleMessage
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func (m ruleMessage) resolve(field string, value any, template func() string) string {
	switch {
	case m.customFn != nil:
		return m.customFn(MessageContext{FriendlyName: field, Value: value})
	case m.custom != "":
		return m.custom
	default:
		return template()
	}
}

// isEmpty reports whether a field value counts as empty: nil, an empty
// string/slice/map, a nil pointer, or the zero value of a numeric or boolean
// type. Rules that do not check empty values are skipped when this is true.
func isEmpty(value any) bool {
	if value == nil {
		return true
	}

	v := reflect.ValueOf(value)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return true
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}

// deref unwraps pointers and interfaces so rules see the underlying value,
// the same way isEmpty does. A nil pointer unwraps to nil.
func deref(value any) any {
	if value == nil {
		return nil
	}

	v := reflect.ValueOf(value)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	return v.Interface()
}

// valueLength returns the length of a field value: byte length for strings,
// element count for slices, arrays, and maps, and the length of the printed
// form for anything else. Pointers are dereferenced first.
func valueLength(value any) int {
	value = deref(value)
	if value == nil {
		return 0
	}

	if s, ok := value.(string); ok {
		return len(s)
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return v.Len()
	}

	return len(fmt.Sprint(value))
}

// stringValue returns the string form of a field value for rules that match
// against text patterns. Pointers are dereferenced first.
func stringValue(value any) string {
	value = deref(value)
	if value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}
