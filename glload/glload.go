// Package glload resolves a whole set of GL entry points in one pass and
// records which of them the platform could not provide.
package glload

import (
	"fmt"
	"strings"
	"unsafe"
)

// ProcAddrFunc maps a GL function name to its native address, or nil.
type ProcAddrFunc = func(name string) unsafe.Pointer

// BindFunc is a bulk binder such as gles2.InitWithProcAddrFunc.
type BindFunc = func(getProcAddr ProcAddrFunc) error

// UnresolvedError lists functions the resolver could not provide.
type UnresolvedError struct {
	Names []string
}

func (e *UnresolvedError) Error() string {
	return fmt.Sprintf("unresolved GL functions: %s", strings.Join(e.Names, ", "))
}

// Table remembers the outcome of a load and gates calls on it.
type Table struct {
	requested  []string
	unresolved map[string]bool // every name resolve returned nil for
	missing    map[string]bool // unresolved names the binder requires
}

// Load binds every name bind asks for through resolve. Names resolve cannot
// provide are handed back as nil, which the binder accepts for optional
// entry points. When the binder rejects a nil by returning an error naming
// the function, that name is required: it is recorded as missing and the
// bind is rerun with placeholder in its place, so the whole set is walked
// rather than stopping at the first gap. The returned error is an
// *UnresolvedError listing the required names that could not be resolved.
func Load(bind BindFunc, resolve ProcAddrFunc, placeholder unsafe.Pointer) (*Table, error) {
	t := &Table{
		unresolved: make(map[string]bool),
		missing:    make(map[string]bool),
	}
	cache := make(map[string]unsafe.Pointer)
	for {
		t.requested = t.requested[:0]
		err := bind(func(name string) unsafe.Pointer {
			t.requested = append(t.requested, name)
			p, ok := cache[name]
			if !ok {
				p = resolve(name)
				cache[name] = p
			}
			if p != nil {
				return p
			}
			t.unresolved[name] = true
			if t.missing[name] {
				return placeholder
			}
			return nil
		})
		if err == nil {
			break
		}
		name := err.Error()
		if !t.unresolved[name] || t.missing[name] {
			return t, fmt.Errorf("failed to bind GL functions: %w", err)
		}
		t.missing[name] = true
	}
	if missing := t.Missing(); len(missing) > 0 {
		return t, &UnresolvedError{Names: missing}
	}
	return t, nil
}

// Requested returns every name the binder asked for, in order.
func (t *Table) Requested() []string {
	return append([]string(nil), t.requested...)
}

// Missing returns the unresolved required names in the order they were requested.
func (t *Table) Missing() []string {
	var names []string
	seen := make(map[string]bool)
	for _, name := range t.requested {
		if t.missing[name] && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}

// Has reports whether name was requested and resolved to a native address.
func (t *Table) Has(name string) bool {
	if t == nil {
		return false
	}
	for _, r := range t.requested {
		if r == name {
			return !t.unresolved[name]
		}
	}
	return false
}

// Check returns an *UnresolvedError naming every argument that is not
// usable, or nil when all of them resolved.
func (t *Table) Check(names ...string) error {
	var bad []string
	for _, name := range names {
		if !t.Has(name) {
			bad = append(bad, name)
		}
	}
	if len(bad) > 0 {
		return &UnresolvedError{Names: bad}
	}
	return nil
}
