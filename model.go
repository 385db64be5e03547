package modelcheck

import (
	"fmt"
	"reflect"
	"strings"
)

// ModelValidator executes validation against one bound model instance. It
// holds the instance and its type's schema, nothing else: it never mutates
// the model and is safe to discard after use. Do not share one instance
// across goroutines; binding a fresh validator is cheap.
type ModelValidator struct {
	model  any
	schema *Schema
}

// ValidateField evaluates the named field's rule chain against the model and
// returns the failure messages in rule-registration order. A name with no
// registered rules yields an empty result, not an error. A registered name
// the model has no member for reads as an empty value, so only Required can
// fire for it.
func (v *ModelValidator) ValidateField(name string) []string {
	field, ok := v.schema.Field(name)
	if !ok {
		return nil
	}
	return field.Validate(fieldValue(v.model, name), v.model)
}

// Validate evaluates every registered field in declaration order and groups
// the failures by field. Fields with no failing rules contribute nothing:
// absence signals validity.
func (v *ModelValidator) Validate() Result {
	var errs []FieldError
	for _, name := range v.schema.FieldNames() {
		if messages := v.ValidateField(name); len(messages) > 0 {
			errs = append(errs, FieldError{Field: name, Errors: messages})
		}
	}
	return Result{Valid: len(errs) == 0, Errors: errs}
}

// FieldError groups the failure messages of one field.
type FieldError struct {
	Field  string
	Errors []string
}

// Result is the outcome of whole-model validation. Errors holds only fields
// with at least one failure, in field-declaration order.
type Result struct {
	Valid  bool
	Errors []FieldError
}

// ErrorMap returns the failures keyed by field name.
func (r Result) ErrorMap() map[string][]string {
	if len(r.Errors) == 0 {
		return nil
	}
	out := make(map[string][]string, len(r.Errors))
	for _, fe := range r.Errors {
		out[fe.Field] = append(out[fe.Field], fe.Errors...)
	}
	return out
}

// Err returns the result as an error: nil when valid, otherwise an error
// whose message summarizes the first failure of each field.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	return resultError(r.Errors)
}

type resultError []FieldError

func (e resultError) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(e))
	for _, fe := range e {
		if len(fe.Errors) > 0 {
			parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Errors[0]))
		}
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// fieldValue reads the named member of a model instance: a map entry for
// string-keyed maps, a struct field otherwise. Struct fields are matched by
// exact name first, then case-insensitively, so a schema field "email" finds
// the exported Go field "Email". A member the model does not have reads as
// nil, which counts as empty.
func fieldValue(model any, name string) any {
	v := reflect.ValueOf(model)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil
		}
		mv := v.MapIndex(reflect.ValueOf(name).Convert(v.Type().Key()))
		if !mv.IsValid() {
			return nil
		}
		return mv.Interface()

	case reflect.Struct:
		fv := v.FieldByName(name)
		if !fv.IsValid() {
			fv = v.FieldByNameFunc(func(n string) bool {
				return strings.EqualFold(n, name)
			})
		}
		if !fv.IsValid() || !fv.CanInterface() {
			return nil
		}
		return fv.Interface()
	}

	return nil
}
