package modelcheck

import (
	"fmt"
	"io"
	"log/slog"
	"reflect"
	"sync"
)

// Registry maps model types to their schemas. Schemas are created lazily on
// first registration and shared by all instances of the type for the process
// lifetime. The get-or-create path is mutex-guarded so concurrent registration
// cannot produce duplicate schemas; evaluation reads are lock-free because
// schemas are immutable once registration completes.
//
// The registry is an explicit object rather than hidden package state so tests
// can run against isolated instances. Default covers the common case.
type Registry struct {
	mu      sync.Mutex
	schemas map[reflect.Type]*Schema
	log     *slog.Logger
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger provides a logger for registration events. If not specified,
// a discard logger is used.
func WithLogger(logger *slog.Logger) RegistryOption {
	return func(r *Registry) {
		if logger != nil {
			r.log = logger
		}
	}
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		schemas: make(map[reflect.Type]*Schema),
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Default is the process-wide registry used by the package-level Define and
// For helpers.
var Default = NewRegistry()

// SchemaFor returns the schema for the model's type, creating it on first
// call. Subsequent calls for the same type return the identical schema, so
// all registration for a type accumulates into one place. Pointers are
// dereferenced: a *User resolves to the User schema.
func (r *Registry) SchemaFor(model any) *Schema {
	typ := modelType(model)

	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.schemas[typ]; ok {
		return s
	}
	s := NewSchema()
	r.schemas[typ] = s
	r.log.Debug("validation schema created", "model", typ.String())
	return s
}

// Define starts a fluent schema definition for the model's type. Intended to
// be called once per type, typically at package init.
func (r *Registry) Define(model any) *Builder {
	typ := modelType(model)
	return &Builder{schema: r.SchemaFor(model), typ: typ, log: r.log}
}

// For binds a validator to one model instance, resolving the schema by the
// instance's type. The validator holds only the two references and is safe to
// discard after use.
func (r *Registry) For(model any) *ModelValidator {
	return &ModelValidator{model: model, schema: r.SchemaFor(model)}
}

// Define starts a fluent schema definition on the Default registry.
func Define(model any) *Builder {
	return Default.Define(model)
}

// For binds a validator to a model instance using the Default registry.
func For(model any) *ModelValidator {
	return Default.For(model)
}

func modelType(model any) reflect.Type {
	typ := reflect.TypeOf(model)
	if typ == nil {
		panic(fmt.Errorf("%w", ErrNilModel))
	}
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	return typ
}
