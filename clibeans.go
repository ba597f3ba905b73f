// Package clibeans binds command-line arguments to a user-defined struct.
//
// Each option is declared with a Descriptor (name, aliases, flag and required status, a
// validation pattern, a default value and a description) and a Target setter which receives
// the option's value:
//
//	-name value     the next argument is the value unless it starts with '-'
//	-name=value     the value follows the first '='; it may be empty
//	-name           a flag, or an option without a value
//
// The declared type of the setter decides how the raw string is coerced. Custom converters
// registered for a type take precedence over the built-in conversions; types neither knows
// receive the string unchanged.
package clibeans

import (
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/jbuncle/cli-beans/completion"
	"github.com/jbuncle/cli-beans/input"
	"github.com/jbuncle/cli-beans/parse"
	"github.com/jbuncle/cli-beans/types/orderedmap"
	"github.com/jbuncle/cli-beans/util"
)

// Binder binds argument vectors to new instances of T. Options and converters are expected
// to be registered before the first Bind; after that a Binder can be shared for concurrent
// Validate and Bind calls. BindInteractive reads from the Binder's single console and must
// not be called concurrently.
type Binder[T any] struct {
	options         []*binding[T]
	lookup          map[string]*binding[T]
	aliases         *orderedmap.OrderedMap[string, string]
	converters      map[reflect.Type]ConverterFunc
	aliasConverters []NameConversionFunc
	factory         FactoryFunc[T]
	stdin           io.Reader
	stdout          io.Writer
	terminal        input.TerminalReader
	console         *input.Console
}

// NewBinder convenience initialization method. Use NewBinderWith to
// configure a Binder using option functions.
func NewBinder[T any]() *Binder[T] {
	b := &Binder[T]{
		options:    []*binding[T]{},
		lookup:     map[string]*binding[T]{},
		aliases:    orderedmap.NewOrderedMap[string, string](),
		converters: map[reflect.Type]ConverterFunc{},
		factory:    func() (*T, error) { return new(T), nil },
		stdin:      os.Stdin,
		stdout:     os.Stdout,
		terminal:   &input.DefaultTerminal{},
	}
	b.resetConsole()

	return b
}

// AddOption registers an option. Options are validated, bound and prompted for in the order
// they are added. It fails when the option has no target, a name or alias is empty or
// malformed or already taken, the pattern does not compile, or a flag's target does not
// accept a bool.
func (b *Binder[T]) AddOption(opt *Option[T]) error {
	if opt == nil || opt.Target.IsZero() {
		return ErrNilTarget
	}

	descriptor := opt.copy()
	if err := validateName(descriptor.Name); err != nil {
		return err
	}
	for _, alias := range descriptor.Aliases {
		if err := validateName(alias); err != nil {
			return err
		}
	}
	if descriptor.Pattern == "" {
		descriptor.Pattern = DefaultPattern
	}

	pattern, err := compilePattern(descriptor.Pattern)
	if err != nil {
		return err
	}
	if descriptor.IsFlag && !isBoolType(opt.Target.Type()) {
		return fmt.Errorf("%w: %s accepts %s", ErrFlagNotBool, descriptor.Name, opt.Target.Type())
	}

	for _, converter := range b.aliasConverters {
		descriptor.Aliases = appendConverted(&descriptor, converter)
	}
	if err := b.checkConflicts(nil, descriptor.Names()); err != nil {
		return err
	}

	bound := &binding[T]{Descriptor: descriptor, target: opt.Target, pattern: pattern}
	b.options = append(b.options, bound)
	b.register(bound, bound.Names())

	return nil
}

// AddAliasConverter registers, for all current and future options, the name produced by
// converter as an additional alias. Names equal to an existing name of the same option are
// skipped; names taken by another option fail with ErrOptionConflict.
func (b *Binder[T]) AddAliasConverter(converter NameConversionFunc) error {
	added := make(map[*binding[T]][]string, len(b.options))
	taken := map[string]bool{}
	for _, opt := range b.options {
		aliases := appendConverted(&opt.Descriptor, converter)
		extra := aliases[len(opt.Aliases):]
		for _, name := range extra {
			if taken[name] {
				return fmt.Errorf(FmtErrorWithString, ErrOptionConflict, name)
			}
			taken[name] = true
		}
		if err := b.checkConflicts(opt, extra); err != nil {
			return err
		}
		added[opt] = extra
	}

	for _, opt := range b.options {
		opt.Aliases = append(opt.Aliases, added[opt]...)
		b.register(opt, added[opt])
	}
	b.aliasConverters = append(b.aliasConverters, converter)

	return nil
}

// Options returns a copy of the registered descriptors in declaration order
func (b *Binder[T]) Options() []Descriptor {
	descriptors := make([]Descriptor, 0, len(b.options))
	for _, opt := range b.options {
		descriptors = append(descriptors, opt.copy())
	}

	return descriptors
}

// RegisterConverter sets the converter used for values bound to targets accepting exactly
// typ. The last registration for a type wins.
func (b *Binder[T]) RegisterConverter(typ reflect.Type, converter ConverterFunc) {
	b.converters[typ] = converter
}

// RegisterConverterFor is the typed form of RegisterConverter
func RegisterConverterFor[T, V any](b *Binder[T], converter func(string) (V, error)) {
	b.RegisterConverter(util.TypeOf[V](), ConverterFor(converter))
}

// ConverterFor adapts a typed conversion function to a ConverterFunc
func ConverterFor[V any](converter func(string) (V, error)) ConverterFunc {
	return func(value string) (any, error) {
		return converter(value)
	}
}

// Validate returns the names of the options args does not satisfy, in declaration order,
// or nil when all are satisfied. An option is unsatisfied when it is required but absent,
// required and not a flag but without a value, or when its value does not match the pattern.
// Validate never constructs an instance of T.
func (b *Binder[T]) Validate(args []string) []string {
	resolved := b.resolve(args)

	var invalid []string
	for _, opt := range b.options {
		value, found := resolved.Get(opt.Name)
		if !opt.accepts(value, found) {
			invalid = append(invalid, opt.Name)
		}
	}

	return invalid
}

// ValidateString splits argString the way a shell would and calls Validate
func (b *Binder[T]) ValidateString(argString string) ([]string, error) {
	args, err := parse.Split(argString)
	if err != nil {
		return nil, err
	}

	return b.Validate(args), nil
}

// Bind creates a new instance of T and populates it from args. Present flags bind true.
// Present options bind their value coerced to the target type. Absent options bind their
// default when they declare one and are skipped otherwise. Bind does not validate; call
// Validate first. Any failure is returned as a *BindingError and no instance is returned.
func (b *Binder[T]) Bind(args []string) (*T, error) {
	resolved := b.resolve(args)

	instance, err := b.factory()
	if err != nil {
		return nil, &BindingError{Args: cloneArgs(args), Err: err}
	}
	if instance == nil {
		instance = new(T)
	}

	for _, opt := range b.options {
		value, found := resolved.Get(opt.Name)
		if err := b.apply(instance, opt, value, found); err != nil {
			return nil, &BindingError{Args: cloneArgs(args), Option: opt.Name, Err: err}
		}
	}

	return instance, nil
}

// BindString splits argString the way a shell would and calls Bind
func (b *Binder[T]) BindString(argString string) (*T, error) {
	args, err := parse.Split(argString)
	if err != nil {
		return nil, &BindingError{Err: err}
	}

	return b.Bind(args)
}

// BindInteractive prompts for every option in declaration order and binds the replies to a
// new instance of T. The prompt is the description (or the name) followed by the default in
// brackets. An empty reply counts as absent. A reply which is invalid, or cannot be coerced,
// is reported and prompted for again. Options whose name contains "password" or "secret" are
// read without echo when attached to a terminal. A flag is supplied by a yes reply
// (y, yes, true, 1) and left unset by a no reply.
//
// Replies are read through one buffered console per Binder, so input left over by a call is
// available to the next one.
//
// Failing to read a reply returns an error wrapping ErrInteractiveIO. A failing setter
// returns a *BindingError.
func (b *Binder[T]) BindInteractive() (*T, error) {
	instance, err := b.factory()
	if err != nil {
		return nil, &BindingError{Err: err}
	}
	if instance == nil {
		instance = new(T)
	}

	for _, opt := range b.options {
		if err := b.prompt(b.console, instance, opt); err != nil {
			return nil, err
		}
	}

	return instance, nil
}

// Help groups the options into required and optional items in declaration order
func (b *Binder[T]) Help() *Help {
	help := &Help{}
	for _, opt := range b.options {
		help.add(&opt.Descriptor)
	}

	return help
}

// PrintHelp writes the help text to w, or to the configured output when w is nil
func (b *Binder[T]) PrintHelp(w io.Writer) error {
	if w == nil {
		w = b.stdout
	}

	return b.Help().Print(w)
}

// CompletionData describes the options for completion script generation
func (b *Binder[T]) CompletionData() completion.CompletionData {
	data := completion.CompletionData{Options: make([]completion.Option, 0, len(b.options))}
	for _, opt := range b.options {
		data.Options = append(data.Options, completion.Option{
			Name:        opt.Name,
			Aliases:     append([]string(nil), opt.Aliases...),
			Description: opt.Description,
			TakesValue:  !opt.IsFlag,
			IsPath:      opt.target.Type() == pathType || opt.target.Type() == reflect.PointerTo(pathType),
		})
	}

	return data
}

// GenerateCompletion returns a completion script for shell (bash, zsh, fish or powershell)
// completing the options of program
func (b *Binder[T]) GenerateCompletion(shell, program string) (string, error) {
	generator := completion.GetGenerator(shell)
	if generator == nil {
		return "", fmt.Errorf(FmtErrorWithString, ErrUnsupportedShell, shell)
	}

	return generator.Generate(program, b.CompletionData()), nil
}
