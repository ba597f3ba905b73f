package parse

import (
	"strings"

	"github.com/jbuncle/cli-beans/types/orderedmap"
)

// OptionPrefix marks a command-line token as an option
const OptionPrefix = "-"

// Options maps an option name to its value in order of first appearance. A nil value
// means the option was given without a value (flag form).
type Options = orderedmap.OrderedMap[string, *string]

// IsOption reports whether arg is an option marker
func IsOption(arg string) bool {
	return strings.HasPrefix(arg, OptionPrefix)
}

// Tokenize scans args from left to right and collects options in one of three forms:
//
//	-name=value   value may be empty
//	-name value   when the next token does not itself start with '-'
//	-name         no value
//
// A later occurrence of the same name overwrites the earlier value. Tokens which are
// neither options nor consumed as a value are ignored.
func Tokenize(args []string) *Options {
	options := orderedmap.NewOrderedMap[string, *string]()

	state := NewState(args)
	for state.Advance() {
		arg := state.CurrentArg()
		if !IsOption(arg) {
			continue
		}

		name := strings.TrimPrefix(arg, OptionPrefix)
		if i := strings.Index(name, "="); i >= 0 {
			value := name[i+1:]
			options.Set(name[:i], &value)
			continue
		}

		if next, ok := state.Peek(); ok && !IsOption(next) {
			state.Skip()
			options.Set(name, &next)
			continue
		}

		options.Set(name, nil)
	}

	return options
}

// ResolveAliases rewrites every alias key in options to its canonical name. aliases maps
// alias to canonical name and is walked in registration order; when both an alias and its
// canonical name are present the alias value is written last and wins.
func ResolveAliases(options *Options, aliases *orderedmap.OrderedMap[string, string]) *Options {
	for it := aliases.Front(); it != nil; it = it.Next() {
		value, found := options.Get(*it.Key)
		if !found {
			continue
		}

		options.Delete(*it.Key)
		options.Set(it.Value, value)
	}

	return options
}
