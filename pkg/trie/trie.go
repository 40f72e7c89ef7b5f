// Package trie is the storage core: a generic prefix tree keyed either by
// characters or by token sequences, shared by the indexers and every
// search engine built on top of it.
package trie

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound reports a key whose path is absent, or present without
	// a stored value. The two cases are indistinguishable to callers.
	ErrNotFound = errors.New("trie: key not found")
	// ErrKeyKind reports a key whose unit kind differs from the trie's.
	ErrKeyKind = errors.New("trie: key kind mismatch")
)

type node[V any] struct {
	value    V
	hasValue bool
	children map[string]*node[V]
}

// Trie maps keys of a single Kind to values of type V. The zero value is
// not usable; construct with New. Not safe for concurrent use: callers
// mixing writers and readers wrap the whole trie in their own lock.
type Trie[V any] struct {
	kind Kind
	root node[V]
	size int
}

// New returns an empty trie accepting keys of the given kind.
func New[V any](kind Kind) *Trie[V] {
	return &Trie[V]{kind: kind}
}

// Kind reports the unit shape this trie was created with.
func (t *Trie[V]) Kind() Kind { return t.kind }

// Len reports how many keys currently hold a value.
func (t *Trie[V]) Len() int { return t.size }

func (t *Trie[V]) checkKey(key Key) error {
	if key == nil {
		return fmt.Errorf("%w: nil key in %s trie", ErrKeyKind, t.kind)
	}
	if key.Kind() != t.kind {
		return fmt.Errorf("%w: %s key in %s trie", ErrKeyKind, key.Kind(), t.kind)
	}
	return nil
}

// locate walks key's unit path and returns the node it ends on. The kind
// check runs against the full key before any node is touched.
func (t *Trie[V]) locate(key Key) (*node[V], error) {
	if err := t.checkKey(key); err != nil {
		return nil, err
	}
	n := &t.root
	for _, unit := range key.Units() {
		child, ok := n.children[unit]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		n = child
	}
	return n, nil
}

// Set stores value at key, creating intermediate nodes along the path as
// needed. Overwrites any previous value.
func (t *Trie[V]) Set(key Key, value V) error {
	if err := t.checkKey(key); err != nil {
		return err
	}
	n := &t.root
	for _, unit := range key.Units() {
		child, ok := n.children[unit]
		if !ok {
			if n.children == nil {
				n.children = make(map[string]*node[V])
			}
			child = &node[V]{}
			n.children[unit] = child
		}
		n = child
	}
	if !n.hasValue {
		t.size++
	}
	n.value = value
	n.hasValue = true
	return nil
}

// Get returns the value stored exactly at key. A missing path and a
// valueless node both come back as ErrNotFound.
func (t *Trie[V]) Get(key Key) (V, error) {
	var zero V
	n, err := t.locate(key)
	if err != nil {
		return zero, err
	}
	if !n.hasValue {
		return zero, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return n.value, nil
}

// Delete clears the value at key. Nodes stay in place: emptied branches
// are never pruned, so the path remains walkable afterwards.
func (t *Trie[V]) Delete(key Key) error {
	n, err := t.locate(key)
	if err != nil {
		return err
	}
	if !n.hasValue {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	var zero V
	n.value = zero
	n.hasValue = false
	t.size--
	return nil
}

// Contains reports whether key resolves to a valued node. A lookup miss
// is false, not an error; a kind mismatch still surfaces.
func (t *Trie[V]) Contains(key Key) (bool, error) {
	n, err := t.locate(key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return n.hasValue, nil
}

// Visit calls visitor for every valued key in the trie. A node's own
// entry is always produced before any of its descendants; sibling order
// is unspecified. A non-nil visitor error stops the traversal and is
// returned. Restartable, but the trie must not be mutated mid-walk.
func (t *Trie[V]) Visit(visitor func(key Key, value V) error) error {
	root := Cursor[V]{kind: t.kind, n: &t.root}
	return root.Walk(func(units []string, value V) error {
		return visitor(t.newKey(units), value)
	})
}

// newKey assembles a full key of the trie's kind from unit segments. The
// slice is owned by the caller's traversal frame, never shared.
func (t *Trie[V]) newKey(units []string) Key {
	if t.kind == Runes {
		return Word(strings.Join(units, ""))
	}
	return Phrase(units)
}
