package cobraconfig

import "strconv"

// Source is a single configuration layer: anything that can produce its
// settings as a Tree on demand. A merge engine overlays sources in
// precedence order — keys present in a later source overwrite the same key
// path from earlier sources, keys absent leave prior values untouched.
//
// FlagSource is the command-line implementation; file and environment
// layers are peers that live behind the same contract in the merge engine
// (viper, in the wiring this package ships).
type Source interface {
	// Collect produces the layer's settings. Implementations should return
	// a freshly built tree on each call so callers can merge repeatedly.
	Collect() (*Tree, error)
}

// FlagSource adapts a parsed command-line invocation into a Source.
//
// Collect is a pure, total transformation: it never fails and never
// mutates the invocation. Malformed command lines are the parser's problem
// and are rejected before a FlagSource is ever built.
type FlagSource struct {
	inv           Invocation
	subcommandKey string
}

// Option configures a FlagSource.
type Option func(*FlagSource)

// WithSubcommandKey records the name of the top-level matched subcommand as
// a string leaf under key, alongside the subcommand's own nested tree. This
// lets a destination struct carry a plain "which command ran" field without
// inspecting nesting. No leaf is emitted when no subcommand matched.
func WithSubcommandKey(key string) Option {
	return func(s *FlagSource) {
		s.subcommandKey = key
	}
}

// New wraps an invocation in a FlagSource. The invocation must be fully
// parsed; typically it comes from FromCommand inside a cobra RunE, or from
// FromFlagSet after pflag.Parse.
func New(inv Invocation, opts ...Option) *FlagSource {
	s := &FlagSource{inv: inv}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Collect builds the configuration tree for the wrapped invocation.
//
// Per level, only explicitly supplied flags are emitted:
//   - FlagBool → Bool leaf with the parsed value (true for plain presence;
//     an explicit --flag=false is still an explicit override)
//   - FlagCount → Int leaf equal to the occurrence count
//   - FlagStrings → List of raw String leaves, supply order preserved
//   - FlagSingle → raw String leaf, no numeric coercion
//
// A matched subcommand is built recursively and nested under its own name,
// one level below the parent's flags — never flattened into the parent.
// Collect always returns a nil error; the error return exists to satisfy
// the Source contract shared with fallible layers.
func (s *FlagSource) Collect() (*Tree, error) {
	tree := buildTree(s.inv)

	if s.subcommandKey != "" {
		if name, _, ok := s.inv.Subcommand(); ok {
			tree.set(s.subcommandKey, StringValue(name))
		}
	}

	return tree, nil
}

// buildTree walks one invocation level and recurses into the matched
// subcommand, if any. Recursion depth equals the subcommand chain depth,
// which is fixed by the CLI grammar and small.
func buildTree(inv Invocation) *Tree {
	tree := NewTree()

	for _, f := range inv.Flags() {
		// Absent flags are omitted entirely, never emitted as null or
		// empty. Presence in the tree is what signals an explicit
		// override once the tree is merged over file and env layers.
		if !f.Explicit() {
			continue
		}

		switch f.Kind() {
		case FlagBool:
			// The raw token is the parser's rendering of the parsed
			// boolean. A token that does not parse (which pflag never
			// produces for a bool flag) degrades to plain presence.
			b, err := strconv.ParseBool(f.Value())
			if err != nil {
				b = true
			}
			tree.set(f.Name(), BoolValue(b))

		case FlagCount:
			tree.set(f.Name(), IntValue(int64(f.Occurrences())))

		case FlagStrings:
			raw := f.Values()
			items := make([]Value, len(raw))
			for i, token := range raw {
				items[i] = StringValue(token)
			}
			// Always a list, even for a single supplied value, so the
			// key's type does not flip between scalar and list depending
			// on how many times the user repeated the flag.
			tree.set(f.Name(), ListValue(items...))

		case FlagSingle:
			tree.set(f.Name(), StringValue(f.Value()))
		}
	}

	if name, child, ok := inv.Subcommand(); ok {
		tree.set(name, TreeValue(buildTree(child)))
	}

	return tree
}
