package cobraconfig

// Tree is an insertion-ordered mapping from key to Value. It is the output
// shape of the argument-tree builder: one level per command, with each
// matched subcommand nested under its own key as a KindTree Value.
//
// Keys are unique within a level. A Tree is built once per Collect call and
// is read-only through its exported API afterwards; callers receive an
// exclusively-owned instance and may hold it for as long as they like.
type Tree struct {
	keys   []string
	values map[string]Value
}

// NewTree returns an empty tree.
func NewTree() *Tree {
	return &Tree{values: make(map[string]Value)}
}

// set inserts or replaces a key. Insertion order is preserved: a key keeps
// its original position even when its value is replaced. Unexported on
// purpose — only the builder mutates a tree, during construction.
func (t *Tree) set(key string, v Value) {
	if _, exists := t.values[key]; !exists {
		t.keys = append(t.keys, key)
	}
	t.values[key] = v
}

// Get returns the value stored under key and whether the key is present.
func (t *Tree) Get(key string) (Value, bool) {
	v, ok := t.values[key]
	return v, ok
}

// Keys returns the keys of this level in insertion order.
// The returned slice is a copy; mutating it does not affect the tree.
func (t *Tree) Keys() []string {
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

// Len returns the number of keys at this level.
func (t *Tree) Len() int {
	return len(t.keys)
}

// Map deep-converts the tree into a map[string]any with nested maps for
// subcommand levels and plain string/int64/bool/[]any leaves. Go maps do
// not carry insertion order, so order-sensitive callers should walk Keys()
// instead; Map exists for merge engines that consume generic maps.
func (t *Tree) Map() map[string]any {
	out := make(map[string]any, len(t.keys))
	for _, key := range t.keys {
		out[key] = t.values[key].Interface()
	}
	return out
}
