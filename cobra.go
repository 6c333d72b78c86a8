package cobraconfig

import (
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// FromCommand builds an Invocation for the command chain that actually ran,
// given the invoked command — typically the *cobra.Command a RunE receives.
// It walks Parent() links up to the root, so the resulting invocation's
// nesting mirrors the matched subcommand chain exactly.
//
// Each level enumerates only the flags declared at that level (cobra's
// LocalFlags): a persistent flag defined on the root stays a root-level key
// even when it was supplied after the subcommand name, and a subcommand's
// flags never leak into the parent level.
//
//	RunE: func(cmd *cobra.Command, args []string) error {
//	    src := cobraconfig.New(cobraconfig.FromCommand(cmd))
//	    ...
//	}
func FromCommand(cmd *cobra.Command) Invocation {
	// Build the node chain leaf-first; each node links to the node built
	// before it, so after the loop `node` is the root of the chain.
	var node *commandInvocation
	for c := cmd; c != nil; c = c.Parent() {
		node = &commandInvocation{cmd: c, child: node}
	}
	return node
}

// FromFlagSet builds a single-level Invocation over a plain pflag.FlagSet,
// for programs that use pflag without cobra. The flag set must already be
// parsed. The resulting invocation never reports a subcommand.
func FromFlagSet(fs *pflag.FlagSet) Invocation {
	return flagSetInvocation{fs: fs}
}

// commandInvocation is one level of a matched cobra command chain.
type commandInvocation struct {
	cmd   *cobra.Command
	child *commandInvocation
}

// Flags enumerates the flags declared on this command, in pflag's VisitAll
// order (lexical by flag name), which gives the tree a deterministic key
// order.
func (ci *commandInvocation) Flags() []Flag {
	var out []Flag
	ci.cmd.LocalFlags().VisitAll(func(f *pflag.Flag) {
		out = append(out, pflagFlag{f: f})
	})
	return out
}

// Subcommand returns the next command in the matched chain, keyed by the
// command's canonical name (aliases normalize to it).
func (ci *commandInvocation) Subcommand() (string, Invocation, bool) {
	if ci.child == nil {
		return "", nil, false
	}
	return ci.child.cmd.Name(), ci.child, true
}

// flagSetInvocation is the subcommand-less pflag adapter.
type flagSetInvocation struct {
	fs *pflag.FlagSet
}

func (fi flagSetInvocation) Flags() []Flag {
	var out []Flag
	fi.fs.VisitAll(func(f *pflag.Flag) {
		out = append(out, pflagFlag{f: f})
	})
	return out
}

func (fi flagSetInvocation) Subcommand() (string, Invocation, bool) {
	return "", nil, false
}

// pflagFlag adapts a *pflag.Flag to the Flag interface.
type pflagFlag struct {
	f *pflag.Flag
}

func (p pflagFlag) Name() string {
	return p.f.Name
}

// Kind classifies the flag from its pflag value type. pflag encodes the
// grammar in the value implementation: "bool" for presence flags, "count"
// for repetition counters, and the SliceValue interface for every
// multi-valued type (stringSlice, stringArray, intSlice, ...). Everything
// else takes exactly one value.
func (p pflagFlag) Kind() FlagKind {
	switch p.f.Value.Type() {
	case "bool":
		return FlagBool
	case "count":
		return FlagCount
	}
	if _, ok := p.f.Value.(pflag.SliceValue); ok {
		return FlagStrings
	}
	return FlagSingle
}

// Explicit reports pflag's Changed bit: set only when the flag appeared on
// the command line, not when it merely carries a declared default.
func (p pflagFlag) Explicit() bool {
	return p.f.Changed
}

func (p pflagFlag) Value() string {
	return p.f.Value.String()
}

// Values returns the supplied tokens in command-line order via pflag's
// SliceValue. For non-slice flags it degrades to the single rendered value.
func (p pflagFlag) Values() []string {
	if sv, ok := p.f.Value.(pflag.SliceValue); ok {
		return sv.GetSlice()
	}
	return []string{p.f.Value.String()}
}

// Occurrences parses the count value's final rendering. pflag count values
// always render as a base-10 integer.
func (p pflagFlag) Occurrences() int {
	n, err := strconv.Atoi(p.f.Value.String())
	if err != nil {
		return 0
	}
	return n
}
