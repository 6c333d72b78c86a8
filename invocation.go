package cobraconfig

// FlagKind classifies how a flag consumes command-line tokens. The
// classification drives which Value variant the builder emits for the flag.
type FlagKind int

const (
	// FlagSingle takes exactly one value. Emitted as a raw KindString leaf.
	FlagSingle FlagKind = iota

	// FlagStrings is repeatable or multi-valued. Emitted as a KindList of
	// KindString leaves in supply order — always a list, even when exactly
	// one value was supplied, so the key's shape is stable across
	// invocations.
	FlagStrings

	// FlagCount is a presence flag whose repetition is meaningful
	// (e.g. -vvv). Emitted as a KindInt leaf holding the occurrence count.
	FlagCount

	// FlagBool is a plain presence flag. Emitted as a KindBool leaf.
	FlagBool
)

// String returns a human-readable name for the FlagKind.
func (k FlagKind) String() string {
	switch k {
	case FlagSingle:
		return "single"
	case FlagStrings:
		return "strings"
	case FlagCount:
		return "count"
	case FlagBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Flag is one declared flag at one level of an invocation. Implementations
// wrap whatever the CLI framework produced after parsing; the builder only
// reads through this interface.
//
// Only the accessor matching the flag's Kind is meaningful: Value for
// FlagSingle and FlagBool, Values for FlagStrings, Occurrences for
// FlagCount. The others may return zero values.
type Flag interface {
	// Name is the flag's long name, used verbatim as the tree key.
	Name() string

	// Kind classifies how the flag consumes tokens.
	Kind() FlagKind

	// Explicit reports whether the flag was actually supplied on the
	// command line (or resolved by the parser itself). Flags that merely
	// carry a grammar-level default are not explicit and never reach the
	// tree — absence is what lets lower-precedence layers supply the value.
	Explicit() bool

	// Value is the raw token for single-valued flags, or the parsed
	// boolean rendered as a string ("true"/"false") for FlagBool.
	Value() string

	// Values are the raw tokens of a multi-valued flag, in the order they
	// were supplied on the command line.
	Values() []string

	// Occurrences is the number of times a FlagCount flag appeared.
	Occurrences() int
}

// Invocation is an already-parsed command-line invocation: the flags
// declared at the current command level plus, when the command line matched
// a subcommand, that subcommand's own Invocation.
//
// Implementations are read-only views; the builder never mutates them.
// An invocation with no flags and no subcommand is valid and yields an
// empty tree.
type Invocation interface {
	// Flags enumerates the flags declared at this level, in a stable order.
	// The builder preserves this order in the resulting tree.
	Flags() []Flag

	// Subcommand returns the matched subcommand's name and invocation.
	// ok is false when no subcommand was matched on the command line.
	Subcommand() (name string, child Invocation, ok bool)
}
