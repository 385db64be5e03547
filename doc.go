// Package modelcheck provides a declarative field-validation engine: model
// types register ordered rule chains per field once, and lightweight
// per-instance validators evaluate those chains against live values,
// producing structured, human-readable error reports.
//
// The package inspects and reports only; it never coerces, normalizes, or
// mutates field values.
//
// # Architecture
//
// Validation is split into a registration phase and an evaluation phase. A
// Registry maps model types to Schemas; a Schema holds one Field per
// validated member, and a Field holds its display name plus an ordered chain
// of Rules. Registration happens once per type, typically at package init,
// through the fluent Builder. After that the structures are read-only, so
// evaluation is lock-free and safe under concurrency.
//
// Core building blocks:
//   - Rule           – one stateless check with a resolvable failure message
//   - Field          – display name plus the ordered rule chain of one field
//   - Schema         – per-type field registry, shared by all instances
//   - Registry       – type-to-schema cache; explicit and injectable for tests
//   - ModelValidator – per-instance facade running single-field or whole-model checks
//
// # Usage
//
//	b := modelcheck.Define(User{})
//	b.Field("email").Named("Email address").Required().Email()
//	b.Field("password").Required().MinLength(8)
//	b.Field("confirmPassword").Check("passwords do not match",
//		func(value, model any) bool {
//			return value == model.(User).Password
//		})
//
//	result := modelcheck.For(user).Validate()
//	if !result.Valid {
//		for _, fe := range result.Errors {
//			// fe.Field, fe.Errors
//		}
//	}
//
// # Empty values
//
// Every rule except Required is skipped when the field value is empty (nil,
// empty string or collection, numeric or boolean zero). Rules may therefore
// assume a non-empty input, and an optional field with a format rule stays
// valid while blank.
//
// # Messages
//
// Each rule renders a default template around the field's display name, e.g.
// "Email address is required". WithMessage replaces the template with a
// verbatim string; WithMessageFunc defers rendering to a function of the
// failure context, evaluated only when the rule actually fails.
//
// # Error Handling
//
// Validation failures are data, not errors: they come back as ordered message
// slices and Result values. Configuration mistakes, by contrast, fail fast:
// rule constructors panic with wrapped sentinel errors (ErrInvalidBound,
// ErrBadPattern, ...) at registration time, since a silently broken rule
// would either never fire or always fire.
package modelcheck
