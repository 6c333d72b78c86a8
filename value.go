package cobraconfig

import "fmt"

// Kind identifies which variant a Value holds.
//
// The set is intentionally small: it covers exactly the shapes a parsed
// command line can produce. Raw single-valued flags stay strings (KindString)
// so that numeric interpretation happens once, in the destination unmarshal
// step, against the target field's declared type.
type Kind int

const (
	// KindString is a raw string token, exactly as supplied on the command line.
	KindString Kind = iota

	// KindInt is a 64-bit integer. Emitted for count flags (e.g. -vvv → 3).
	KindInt

	// KindBool is a boolean. Emitted for presence flags.
	KindBool

	// KindList is an ordered sequence of Values. Emitted for repeatable
	// flags; element order matches the order values were supplied.
	KindList

	// KindTree is a nested Tree. Emitted for matched subcommands.
	KindTree
)

// String returns a human-readable name for the Kind.
// This satisfies fmt.Stringer for diagnostics and test failure messages.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindList:
		return "list"
	case KindTree:
		return "tree"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is a tagged variant over string, int64, bool, a list of Values, or
// a nested Tree. A Value is immutable once constructed: all fields are
// unexported and the constructors copy any slice they receive.
//
// The zero Value is a KindString holding the empty string.
type Value struct {
	kind Kind
	str  string
	num  int64
	flag bool
	list []Value
	tree *Tree
}

// StringValue constructs a KindString Value holding the given raw token.
func StringValue(s string) Value {
	return Value{kind: KindString, str: s}
}

// IntValue constructs a KindInt Value.
func IntValue(n int64) Value {
	return Value{kind: KindInt, num: n}
}

// BoolValue constructs a KindBool Value.
func BoolValue(b bool) Value {
	return Value{kind: KindBool, flag: b}
}

// ListValue constructs a KindList Value from the given elements.
// The elements are copied, so the caller's slice can be reused freely.
func ListValue(items ...Value) Value {
	// Copy defensively; Values are advertised as immutable and the caller
	// may mutate the variadic backing slice after we return.
	copied := make([]Value, len(items))
	copy(copied, items)
	return Value{kind: KindList, list: copied}
}

// TreeValue constructs a KindTree Value wrapping the given tree.
// The tree is referenced, not copied — the builder only ever wraps trees it
// exclusively owns, and the Tree API exposes no mutation.
func TreeValue(t *Tree) Value {
	return Value{kind: KindTree, tree: t}
}

// Kind reports which variant this Value holds.
func (v Value) Kind() Kind {
	return v.kind
}

// StringVal returns the raw string token. It is only meaningful for
// KindString values; for other kinds it returns "".
func (v Value) StringVal() string {
	return v.str
}

// IntVal returns the integer payload of a KindInt value, or 0 otherwise.
func (v Value) IntVal() int64 {
	return v.num
}

// BoolVal returns the boolean payload of a KindBool value, or false otherwise.
func (v Value) BoolVal() bool {
	return v.flag
}

// ListVal returns a copy of the element slice of a KindList value.
// Returning a copy keeps the Value immutable even if the caller mutates
// the returned slice. For non-list kinds it returns nil.
func (v Value) ListVal() []Value {
	if v.kind != KindList {
		return nil
	}
	out := make([]Value, len(v.list))
	copy(out, v.list)
	return out
}

// TreeVal returns the nested tree of a KindTree value, or nil otherwise.
func (v Value) TreeVal() *Tree {
	return v.tree
}

// Interface converts the Value into plain Go data: string, int64, bool,
// []any, or map[string]any for nested trees. This is the handoff shape for
// generic merge engines (viper's MergeConfigMap and mapstructure-based
// unmarshaling both consume exactly these types).
func (v Value) Interface() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindInt:
		return v.num
	case KindBool:
		return v.flag
	case KindList:
		out := make([]any, len(v.list))
		for i, item := range v.list {
			out[i] = item.Interface()
		}
		return out
	case KindTree:
		return v.tree.Map()
	default:
		return nil
	}
}
