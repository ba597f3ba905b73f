package clibeans

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/jbuncle/cli-beans/input"
	"github.com/jbuncle/cli-beans/parse"
	"github.com/jbuncle/cli-beans/types"
	"github.com/jbuncle/cli-beans/util"
)

var (
	pathType    = reflect.TypeOf(types.Path(""))
	secretNames = []string{"password", "secret"}
)

// binding is a registered option: its descriptor, target and compiled pattern
type binding[T any] struct {
	Descriptor
	target  Target[T]
	pattern *regexp.Regexp
}

// accepts reports whether value satisfies the option. found is false when the option is absent
// and value is nil when it was given without a value.
func (o *binding[T]) accepts(value *string, found bool) bool {
	if !found {
		return !o.IsRequired
	}
	if value == nil {
		return o.IsFlag || !o.IsRequired
	}
	if o.IsRequired && !o.IsFlag && *value == "" {
		return false
	}

	return o.pattern.MatchString(*value)
}

// resolve tokenizes args and replaces aliases by option names
func (b *Binder[T]) resolve(args []string) *parse.Options {
	return parse.ResolveAliases(parse.Tokenize(args), b.aliases)
}

func (b *Binder[T]) apply(instance *T, opt *binding[T], value *string, found bool) error {
	if !found {
		if opt.DefaultValue == "" {
			return nil
		}
		if opt.IsFlag {
			return opt.target.set(instance, flagValue(opt.target.Type()))
		}
		return b.applyString(instance, opt, opt.DefaultValue)
	}

	if opt.IsFlag {
		return opt.target.set(instance, flagValue(opt.target.Type()))
	}

	raw := ""
	if value != nil {
		raw = *value
	}

	return b.applyString(instance, opt, raw)
}

func (b *Binder[T]) applyString(instance *T, opt *binding[T], raw string) error {
	value, err := b.coerce(opt, raw)
	if err != nil {
		return err
	}

	return opt.target.set(instance, value)
}

func (b *Binder[T]) coerce(opt *binding[T], raw string) (any, error) {
	typ := opt.target.Type()
	value, err := b.convert(raw, typ)
	if err != nil {
		return nil, &CoercionError{Option: opt.Name, Value: raw, Type: typ, Err: err}
	}

	return value, nil
}

// convert looks typ up in the custom converters, then in the built-in table. A pointer type
// without a converter of its own is converted as its element type.
func (b *Binder[T]) convert(raw string, typ reflect.Type) (any, error) {
	if converter, ok := b.converters[typ]; ok {
		return converter(raw)
	}

	if typ.Kind() == reflect.Ptr {
		value, err := b.convert(raw, typ.Elem())
		if err != nil {
			return nil, err
		}
		if ptr, ok := util.PointerTo(typ.Elem(), value); ok {
			return ptr, nil
		}
		return value, nil
	}

	return util.ConvertString(raw, typ)
}

// flagValue returns true as a value of typ, which must be a bool kind or a pointer to one
func flagValue(typ reflect.Type) any {
	if typ.Kind() == reflect.Ptr {
		ptr, _ := util.PointerTo(typ.Elem(), flagValue(typ.Elem()))
		return ptr
	}

	return reflect.ValueOf(true).Convert(typ).Interface()
}

func isBoolType(typ reflect.Type) bool {
	return util.UnwrapType(typ).Kind() == reflect.Bool
}

func validateName(name string) error {
	switch {
	case name == "":
		return ErrEmptyOptionName
	case strings.HasPrefix(name, parse.OptionPrefix):
		return fmt.Errorf("%w: %q must not start with %q", ErrInvalidOptionName, name, parse.OptionPrefix)
	case strings.Contains(name, "="):
		return fmt.Errorf("%w: %q must not contain '='", ErrInvalidOptionName, name)
	case strings.ContainsAny(name, " \t\r\n"):
		return fmt.Errorf("%w: %q must not contain whitespace", ErrInvalidOptionName, name)
	}

	return nil
}

// appendConverted returns a copy of the aliases of d followed by converter(d.Name) unless
// that is empty or already one of the names of d
func appendConverted(d *Descriptor, converter NameConversionFunc) []string {
	aliases := append(make([]string, 0, len(d.Aliases)+1), d.Aliases...)

	name := converter(d.Name)
	if name == "" {
		return aliases
	}
	for _, existing := range d.Names() {
		if existing == name {
			return aliases
		}
	}

	return append(aliases, name)
}

// checkConflicts fails when one of names is repeated or taken by an option other than owner
func (b *Binder[T]) checkConflicts(owner *binding[T], names []string) error {
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if err := validateName(name); err != nil {
			return err
		}
		if seen[name] {
			return fmt.Errorf(FmtErrorWithString, ErrOptionConflict, name)
		}
		seen[name] = true

		if other, ok := b.lookup[name]; ok && other != owner {
			return fmt.Errorf("%w: %s is already used by %s", ErrOptionConflict, name, other.Name)
		}
	}

	return nil
}

func (b *Binder[T]) register(opt *binding[T], names []string) {
	for _, name := range names {
		b.lookup[name] = opt
		if name != opt.Name {
			b.aliases.Set(name, opt.Name)
		}
	}
}

func cloneArgs(args []string) []string {
	return append([]string(nil), args...)
}

// resetConsole rebuilds the console after stdin, stdout or the terminal changed
func (b *Binder[T]) resetConsole() {
	b.console = input.NewConsole(b.stdin, b.stdout, b.terminal)
}

// prompt asks for opt until a usable reply is given
func (b *Binder[T]) prompt(console *input.Console, instance *T, opt *binding[T]) error {
	label := promptLabel(&opt.Descriptor)

	for {
		reply, err := readReply(console, opt.Name, label)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInteractiveIO, opt.Name, err)
		}

		found := reply != ""
		fromDefault := !found && opt.DefaultValue != ""
		if fromDefault {
			reply, found = opt.DefaultValue, true
		}

		if opt.IsFlag && found && !fromDefault {
			yes, ok := parseYesNo(reply)
			if !ok {
				console.Printf("%s expects yes or no\n", opt.Name)
				continue
			}
			if !yes {
				if !opt.IsRequired {
					return nil
				}
				found = false
			}
		}

		var value *string
		if found && !opt.IsFlag {
			value = &reply
		}
		if !opt.accepts(value, found) {
			if found {
				console.Printf("invalid value for %s: %q\n", opt.Name, reply)
			} else {
				console.Printf("%s is required\n", opt.Name)
			}
			continue
		}

		err = b.apply(instance, opt, value, found)
		var coercionErr *CoercionError
		if errors.As(err, &coercionErr) && !fromDefault {
			console.Printf("%v\n", coercionErr)
			continue
		}
		if err != nil {
			return &BindingError{Option: opt.Name, Err: err}
		}

		return nil
	}
}

func readReply(console *input.Console, name, label string) (string, error) {
	if isSecret(name) {
		return console.ReadSecret(label)
	}

	return console.ReadLine(label)
}

func promptLabel(d *Descriptor) string {
	label := d.Description
	if label == "" {
		label = d.Name
	}
	if d.DefaultValue != "" {
		label += " [" + d.DefaultValue + "]"
	}

	return label + ": "
}

func isSecret(name string) bool {
	lower := strings.ToLower(name)
	for _, secret := range secretNames {
		if strings.Contains(lower, secret) {
			return true
		}
	}

	return false
}

func parseYesNo(reply string) (yes bool, ok bool) {
	reply = strings.ToLower(strings.TrimSpace(reply))
	switch reply {
	case "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	}

	b, err := strconv.ParseBool(reply)
	return b, err == nil
}
