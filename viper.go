package cobraconfig

import (
	"fmt"

	"github.com/spf13/viper"
)

// MergeInto collects the source and overlays its tree onto the given viper
// instance as the highest-precedence layer. Keys present in the source
// overwrite the same key path from every other layer; keys absent leave
// the file, environment, and default layers untouched.
//
// Each leaf is applied with viper's Set using its dotted key path, because
// that is viper's topmost layer — a plain config-map merge would land
// below the environment layer and let environment variables mask flags the
// user explicitly typed. Set the defaults and read the file and environment
// layers first, then merge the command-line source:
//
//	v := viper.New()
//	v.SetConfigFile(path)
//	_ = v.ReadInConfig()
//	v.AutomaticEnv()
//	if err := cobraconfig.MergeInto(v, cobraconfig.New(cobraconfig.FromCommand(cmd))); err != nil {
//	    return err
//	}
//	var cfg Config
//	return v.Unmarshal(&cfg)
func MergeInto(v *viper.Viper, s Source) error {
	tree, err := s.Collect()
	if err != nil {
		return fmt.Errorf("collect configuration source: %w", err)
	}

	setLeaves(v, "", tree)
	return nil
}

// setLeaves walks the tree depth-first in key order, applying each leaf
// under its dotted path. Subcommand levels contribute the path segment for
// their children; an empty nested tree contributes nothing, which is a
// no-op layer for viper.
func setLeaves(v *viper.Viper, prefix string, t *Tree) {
	for _, key := range t.Keys() {
		val, _ := t.Get(key)

		path := key
		if prefix != "" {
			path = prefix + "." + key
		}

		if val.Kind() == KindTree {
			setLeaves(v, path, val.TreeVal())
			continue
		}
		v.Set(path, val.Interface())
	}
}
