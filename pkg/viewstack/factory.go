package viewstack

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
)

// ScreenFactory is an inert, serializable description of one screen.
// It creates a fresh component each time the screen is mounted; the stack
// adds the returned component to the container itself.
//
// Implementations should be comparable value types (structs of strings,
// numbers, and the like) so a factory is == to itself after a save/restore
// round-trip. Exported fields are what gets persisted.
type ScreenFactory interface {
	CreateComponent(ctx RenderContext, container Container) (Component, error)
}

// FactoryRegistry maps stable names to ScreenFactory types so stacks can be
// persisted and rebuilt. Register every factory type a stack may hold before
// calling Save or Restore.
type FactoryRegistry struct {
	types map[string]reflect.Type
	names map[reflect.Type]string
}

// NewFactoryRegistry creates an empty registry.
func NewFactoryRegistry() *FactoryRegistry {
	return &FactoryRegistry{
		types: make(map[string]reflect.Type),
		names: make(map[reflect.Type]string),
	}
}

// Register associates name with the dynamic type of prototype.
// Registering the same name or type twice is an error.
func (r *FactoryRegistry) Register(name string, prototype ScreenFactory) error {
	if name == "" {
		return newError("register", ErrInvalidArgument, "name is empty")
	}
	if prototype == nil {
		return newError("register", ErrInvalidArgument, "prototype == nil")
	}

	t := reflect.TypeOf(prototype)
	if existing, ok := r.types[name]; ok {
		return newError("register", ErrInvalidArgument,
			fmt.Sprintf("name %q already registered for %s", name, existing))
	}
	if existing, ok := r.names[t]; ok {
		return newError("register", ErrInvalidArgument,
			fmt.Sprintf("type %s already registered as %q", t, existing))
	}

	r.types[name] = t
	r.names[t] = name
	return nil
}

// MustRegister is like Register but panics on error.
// Intended for package init blocks.
func (r *FactoryRegistry) MustRegister(name string, prototype ScreenFactory) *FactoryRegistry {
	if err := r.Register(name, prototype); err != nil {
		panic(err)
	}
	return r
}

// Name returns the registered name for the factory's type.
func (r *FactoryRegistry) Name(f ScreenFactory) (string, bool) {
	if f == nil {
		return "", false
	}
	name, ok := r.names[reflect.TypeOf(f)]
	return name, ok
}

// Names returns every registered name in sorted order.
func (r *FactoryRegistry) Names() []string {
	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *FactoryRegistry) encode(f ScreenFactory) (string, json.RawMessage, error) {
	name, ok := r.Name(f)
	if !ok {
		return "", nil, newError("encode", ErrUnknownFactory,
			fmt.Sprintf("%T is not registered", f))
	}

	data, err := json.Marshal(f)
	if err != nil {
		return "", nil, wrapError("encode", ErrInvalidArgument,
			fmt.Sprintf("marshal %q", name), err)
	}
	return name, data, nil
}

func (r *FactoryRegistry) decode(name string, data json.RawMessage) (ScreenFactory, error) {
	t, ok := r.types[name]
	if !ok {
		return nil, newError("decode", ErrUnknownFactory,
			fmt.Sprintf("%q is not registered", name))
	}

	// Pointer prototypes decode into a fresh pointer, value prototypes into
	// a value, so the restored factory has the same dynamic type.
	var target reflect.Value
	if t.Kind() == reflect.Pointer {
		target = reflect.New(t.Elem())
	} else {
		target = reflect.New(t)
	}

	if len(data) > 0 && string(data) != "null" {
		if err := json.Unmarshal(data, target.Interface()); err != nil {
			return nil, wrapError("decode", ErrInvalidArgument,
				fmt.Sprintf("unmarshal %q", name), err)
		}
	}

	if t.Kind() == reflect.Pointer {
		return target.Interface().(ScreenFactory), nil
	}
	return target.Elem().Interface().(ScreenFactory), nil
}
