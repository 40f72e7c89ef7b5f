package trie

// Cursor is a read-only view of one node and the subtree below it,
// handed out by Find so the search engines can share one traversal
// primitive instead of re-walking from the root.
type Cursor[V any] struct {
	kind Kind
	n    *node[V]
}

// Find walks key's path and returns a cursor at its final node. Fails
// with ErrNotFound when the path is absent and ErrKeyKind on a kind
// mismatch; a valueless node is still a valid cursor position.
func (t *Trie[V]) Find(key Key) (Cursor[V], error) {
	n, err := t.locate(key)
	if err != nil {
		return Cursor[V]{}, err
	}
	return Cursor[V]{kind: t.kind, n: n}, nil
}

// Valid reports whether the cursor points at a node. The zero Cursor is
// invalid.
func (c Cursor[V]) Valid() bool { return c.n != nil }

// Kind reports the unit shape of the trie the cursor came from.
func (c Cursor[V]) Kind() Kind { return c.kind }

// Value returns the value stored at the cursor's node, if any.
func (c Cursor[V]) Value() (V, bool) {
	if c.n == nil || !c.n.hasValue {
		var zero V
		return zero, false
	}
	return c.n.value, true
}

// Child descends one level along the given unit.
func (c Cursor[V]) Child(unit string) (Cursor[V], bool) {
	if c.n == nil {
		return Cursor[V]{}, false
	}
	child, ok := c.n.children[unit]
	if !ok {
		return Cursor[V]{}, false
	}
	return Cursor[V]{kind: c.kind, n: child}, true
}

// Units returns the edge labels leading to the node's children, in no
// particular order.
func (c Cursor[V]) Units() []string {
	if c.n == nil || len(c.n.children) == 0 {
		return nil
	}
	units := make([]string, 0, len(c.n.children))
	for unit := range c.n.children {
		units = append(units, unit)
	}
	return units
}

// Walk visits every valued node at or below the cursor, passing the unit
// path relative to it. Runs on an explicit work stack so depth is bounded
// by memory, not goroutine stack. Own value first, then descendants;
// sibling order unspecified. A non-nil visitor error stops the walk.
func (c Cursor[V]) Walk(visitor func(suffix []string, value V) error) error {
	if c.n == nil {
		return nil
	}
	type frame struct {
		n     *node[V]
		units []string
	}
	stack := []frame{{n: c.n}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.n.hasValue {
			if err := visitor(f.units, f.n.value); err != nil {
				return err
			}
		}
		for unit, child := range f.n.children {
			path := make([]string, len(f.units)+1)
			copy(path, f.units)
			path[len(f.units)] = unit
			stack = append(stack, frame{n: child, units: path})
		}
	}
	return nil
}
