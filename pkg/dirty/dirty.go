// Package dirty tracks per-field changes on an entity during one collector
// tick and reduces them to a sparse change set. Assigning a value equal to
// the current one is a no-op; anything else records the old and new values
// and marks the owning group dirty. Update frames are built from the change
// set only, so unchanged fields never reach subscribers.
package dirty

import "sync"

// Change is one modified field. Value is nil when the field was cleared
// (changed to null), which frames encode as an explicit "cleared" marker —
// distinct from the field being absent (unchanged).
type Change struct {
	Name    string
	Value   any
	Cleared bool
}

type field interface {
	name() string
	changed() bool
	change() Change
	reset()
}

// Group owns the dirty flag for one entity and the fields registered on it.
// A group is allocated per updated entity per tick and is safe for use from
// a single goroutine plus ConsumeDirty from another.
type Group struct {
	mu     sync.Mutex
	dirty  bool
	fields []field
}

// NewGroup creates an empty field group.
func NewGroup() *Group {
	return &Group{}
}

// ConsumeDirty atomically reports whether any field changed and resets the
// flag. The per-field change records stay intact until Reset so the caller
// can still build the frame after consuming.
func (g *Group) ConsumeDirty() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	d := g.dirty
	g.dirty = false
	return d
}

// Changes returns the sparse change set: one entry per field whose value
// actually differs from its initial value.
func (g *Group) Changes() []Change {
	g.mu.Lock()
	defer g.mu.Unlock()
	var out []Change
	for _, f := range g.fields {
		if f.changed() {
			out = append(out, f.change())
		}
	}
	return out
}

// Reset clears the dirty flag and all per-field change records.
func (g *Group) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.dirty = false
	for _, f := range g.fields {
		f.reset()
	}
}

func (g *Group) markDirty() {
	g.mu.Lock()
	g.dirty = true
	g.mu.Unlock()
}

func (g *Group) register(f field) {
	g.mu.Lock()
	g.fields = append(g.fields, f)
	g.mu.Unlock()
}

// Field tracks a single non-nullable value.
type Field[T comparable] struct {
	group    *Group
	fname    string
	initial  T
	current  T
	modified bool
}

// NewField registers a field holding the entity's current persisted value.
func NewField[T comparable](g *Group, name string, initial T) *Field[T] {
	f := &Field[T]{group: g, fname: name, initial: initial, current: initial}
	g.register(f)
	return f
}

// Set assigns a new value. Equal values are ignored.
func (f *Field[T]) Set(v T) {
	if f.current == v {
		return
	}
	f.current = v
	f.modified = true
	f.group.markDirty()
}

// Get returns the current value.
func (f *Field[T]) Get() T { return f.current }

func (f *Field[T]) name() string { return f.fname }

func (f *Field[T]) changed() bool { return f.modified && f.current != f.initial }

func (f *Field[T]) change() Change { return Change{Name: f.fname, Value: f.current} }

func (f *Field[T]) reset() {
	f.initial = f.current
	f.modified = false
}

// NullableField tracks a value with three states: undefined (never assigned),
// null, and value. Clearing an already-null field is a no-op.
type NullableField[T comparable] struct {
	group    *Group
	fname    string
	initNull bool
	initial  T
	null     bool
	current  T
	modified bool
}

// NewNullableField registers a nullable field; a nil initial means the
// persisted value is null.
func NewNullableField[T comparable](g *Group, name string, initial *T) *NullableField[T] {
	f := &NullableField[T]{group: g, fname: name, initNull: initial == nil, null: initial == nil}
	if initial != nil {
		f.initial = *initial
		f.current = *initial
	}
	g.register(f)
	return f
}

// Set assigns a non-null value.
func (f *NullableField[T]) Set(v T) {
	if !f.null && f.current == v {
		return
	}
	f.null = false
	f.current = v
	f.modified = true
	f.group.markDirty()
}

// SetNullable assigns a value or clears the field when v is nil.
func (f *NullableField[T]) SetNullable(v *T) {
	if v == nil {
		f.Clear()
		return
	}
	f.Set(*v)
}

// Clear changes the field to null.
func (f *NullableField[T]) Clear() {
	if f.null {
		return
	}
	var zero T
	f.null = true
	f.current = zero
	f.modified = true
	f.group.markDirty()
}

// Get returns the current value and whether it is non-null.
func (f *NullableField[T]) Get() (T, bool) { return f.current, !f.null }

func (f *NullableField[T]) name() string { return f.fname }

func (f *NullableField[T]) changed() bool {
	if !f.modified {
		return false
	}
	if f.null != f.initNull {
		return true
	}
	return !f.null && f.current != f.initial
}

func (f *NullableField[T]) change() Change {
	if f.null {
		return Change{Name: f.fname, Cleared: true}
	}
	return Change{Name: f.fname, Value: f.current}
}

func (f *NullableField[T]) reset() {
	f.initNull = f.null
	f.initial = f.current
	f.modified = false
}
