package modelcheck

import (
	"log/slog"
	"reflect"
)

// Builder is the fluent entry point for defining a model type's schema:
//
//	b := registry.Define(User{})
//	b.Field("email").Named("Email address").Required().Email()
//	b.Field("password").Required().MinLength(8)
//
// Rules are appended in call order, and that order is exactly the evaluation
// order of the field's chain.
type Builder struct {
	schema *Schema
	typ    reflect.Type
	log    *slog.Logger
}

// Schema returns the schema being built.
func (b *Builder) Schema() *Schema { return b.schema }

// Field selects a field by name. The schema entry is created when the first
// rule or display name is attached to the chain.
func (b *Builder) Field(name string) *FieldBuilder {
	return &FieldBuilder{builder: b, field: name}
}

// FieldBuilder chains rule registrations for one field.
type FieldBuilder struct {
	builder *Builder
	field   string
}

// Named sets the field's display name used in rendered messages.
func (fb *FieldBuilder) Named(name string) *FieldBuilder {
	fb.builder.schema.SetFieldName(fb.field, name)
	return fb
}

// Field switches the chain to another field of the same schema.
func (fb *FieldBuilder) Field(name string) *FieldBuilder {
	return fb.builder.Field(name)
}

// Required attaches a Required rule.
func (fb *FieldBuilder) Required(opts ...RuleOption) *FieldBuilder {
	return fb.add("required", Required(opts...))
}

// Pattern attaches a full-match regular expression rule with a fixed message.
func (fb *FieldBuilder) Pattern(expr, message string, opts ...RuleOption) *FieldBuilder {
	return fb.add("pattern", Pattern(expr, message, opts...))
}

// Alpha attaches an ASCII-letters-only rule.
func (fb *FieldBuilder) Alpha(opts ...RuleOption) *FieldBuilder {
	return fb.add("alpha", Alpha(opts...))
}

// AlphaNumeric attaches an ASCII-letters-and-digits rule.
func (fb *FieldBuilder) AlphaNumeric(opts ...RuleOption) *FieldBuilder {
	return fb.add("alphanumeric", AlphaNumeric(opts...))
}

// Email attaches an email-address rule.
func (fb *FieldBuilder) Email(opts ...RuleOption) *FieldBuilder {
	return fb.add("email", Email(opts...))
}

// MinLength attaches a minimum-length rule.
func (fb *FieldBuilder) MinLength(min int, opts ...RuleOption) *FieldBuilder {
	return fb.add("min_length", MinLength(min, opts...))
}

// MaxLength attaches a maximum-length rule.
func (fb *FieldBuilder) MaxLength(max int, opts ...RuleOption) *FieldBuilder {
	return fb.add("max_length", MaxLength(max, opts...))
}

// Check attaches a cross-field predicate rule with a fixed message.
func (fb *FieldBuilder) Check(message string, fn func(value, model any) bool, opts ...RuleOption) *FieldBuilder {
	return fb.add("check", Check(message, fn, opts...))
}

// UUID attaches a UUID-format rule.
func (fb *FieldBuilder) UUID(opts ...RuleOption) *FieldBuilder {
	return fb.add("uuid", UUID(opts...))
}

// URL attaches an absolute-URL rule.
func (fb *FieldBuilder) URL(opts ...RuleOption) *FieldBuilder {
	return fb.add("url", URL(opts...))
}

// Phone attaches an international phone number rule.
func (fb *FieldBuilder) Phone(opts ...RuleOption) *FieldBuilder {
	return fb.add("phone", Phone(opts...))
}

// Rule attaches an arbitrary Rule implementation.
func (fb *FieldBuilder) Rule(rule Rule) *FieldBuilder {
	return fb.add("custom", rule)
}

func (fb *FieldBuilder) add(kind string, rule Rule) *FieldBuilder {
	fb.builder.schema.AddRule(fb.field, rule)
	fb.builder.log.Debug("validation rule registered",
		"model", fb.builder.typ.String(),
		"field", fb.field,
		"rule", kind,
	)
	return fb
}
