// Package cobraconfig turns a parsed cobra/pflag command-line invocation into
// a generic, order-preserving configuration tree that can be layered with
// file-based and environment-variable configuration.
//
// The package owns exactly one transformation: walking an already-parsed
// invocation (flags with zero, one, or many values, boolean presence flags,
// count flags, and an optional chain of matched subcommands) and emitting a
// Tree of typed Values. It does not parse the command line itself (cobra
// does), it does not read files or environment variables (the merge engine
// does), and it performs no type coercion beyond what the flag parser
// already resolved — single-valued flags stay raw strings so the final
// unmarshal step interprets them against the destination field's type.
//
// The central contract is Source: anything that can produce a Tree on
// demand. FlagSource implements it over an Invocation, which is itself an
// abstraction so the builder never depends on a concrete CLI framework;
// FromCommand and FromFlagSet provide the cobra and pflag bindings.
//
// Intended layering, lowest to highest precedence:
//
//	defaults → config file → environment variables → command-line flags
//
// Only flags that were explicitly supplied appear in the tree, so merging
// the CLI source last overrides exactly the settings the user typed and
// leaves everything else to the lower layers. MergeInto folds a Source into
// a viper instance for callers using viper as their merge engine.
package cobraconfig
