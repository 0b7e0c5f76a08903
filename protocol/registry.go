package protocol

import (
	"fmt"
	"reflect"
)

type schemaKey struct {
	state     State
	direction Direction
	id        int32
}

// Registry is the lookup table binding (state, direction, id) to a packet
// decoder, built once at startup (or client construction) and passed by
// reference rather than kept as global mutable state.
type Registry struct {
	byKey  map[schemaKey]func() Packet
	byType map[reflect.Type]schemaKey
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byKey:  make(map[schemaKey]func() Packet),
		byType: make(map[reflect.Type]schemaKey),
	}
}

// Register binds a packet factory under its own (state, direction, id).
// Registering a second schema under the same key is a hard error.
func (r *Registry) Register(factory func() Packet) error {
	sample := factory()
	key := schemaKey{sample.State(), sample.Direction(), sample.ID()}

	if _, exists := r.byKey[key]; exists {
		return fmt.Errorf("%w: state=%s direction=%s id=0x%02X", ErrDuplicateSchema, key.state, key.direction, key.id)
	}

	r.byKey[key] = factory
	r.byType[reflect.TypeOf(sample)] = key
	return nil
}

// MustRegister is like Register but panics on error; intended for use in
// package-level registry construction where a duplicate is a programmer
// error, not a runtime condition.
func (r *Registry) MustRegister(factory func() Packet) {
	if err := r.Register(factory); err != nil {
		panic(err)
	}
}

// Lookup returns a fresh, zeroed instance of the packet registered for
// (state, direction, id), or (nil, false) if nothing is registered —
// decoding an unknown id is non-fatal; the caller discards the frame.
func (r *Registry) Lookup(state State, direction Direction, id int32) (Packet, bool) {
	factory, ok := r.byKey[schemaKey{state, direction, id}]
	if !ok {
		return nil, false
	}
	return factory(), true
}

// KeyOf reports the (state, direction, id) a concrete packet type was
// registered under, or ok=false if that type was never registered.
func (r *Registry) KeyOf(p Packet) (state State, direction Direction, id int32, ok bool) {
	key, ok := r.byType[reflect.TypeOf(p)]
	if !ok {
		return 0, 0, 0, false
	}
	return key.state, key.direction, key.id, true
}
