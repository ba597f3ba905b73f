package clibeans

import (
	"io"
	"reflect"

	"github.com/jbuncle/cli-beans/input"
)

// NewBinderWith allows initialization of Binder using option functions. The caller should always test for error on
// return because Binder will be nil when an error occurs during initialization.
//
// Configuration example:
//
//	binder, err := NewBinderWith(
//		WithOption(NewOption("myproperty", Setter(func(b *Bean, v string) { b.MyProperty = v }),
//			WithDescription("My property"))),
//		WithOption(NewOption("aliased", Setter(func(b *Bean, v string) { b.Aliased = v }),
//			WithAlias("a"),
//			SetRequired(true))),
//		WithConverter(reflect.TypeOf(time.Time{}), func(s string) (any, error) {
//			return convert.Time(s)
//		}))
func NewBinderWith[T any](configs ...ConfigureBinderFunc[T]) (*Binder[T], error) {
	b := NewBinder[T]()

	var err error
	for _, config := range configs {
		config(b, &err)
		if err != nil {
			return nil, err
		}
	}

	return b, nil
}

// WithOption is a wrapper for AddOption
func WithOption[T any](opt *Option[T]) ConfigureBinderFunc[T] {
	return func(b *Binder[T], err *error) {
		*err = b.AddOption(opt)
	}
}

// WithOptions adds several options in declaration order, stopping at the first error
func WithOptions[T any](opts ...*Option[T]) ConfigureBinderFunc[T] {
	return func(b *Binder[T], err *error) {
		for _, opt := range opts {
			if *err = b.AddOption(opt); *err != nil {
				return
			}
		}
	}
}

// WithConverter is a wrapper for RegisterConverter
func WithConverter[T any](typ reflect.Type, converter ConverterFunc) ConfigureBinderFunc[T] {
	return func(b *Binder[T], err *error) {
		b.RegisterConverter(typ, converter)
	}
}

// WithConverterFor registers a typed converter for values of type V
func WithConverterFor[T, V any](converter func(string) (V, error)) ConfigureBinderFunc[T] {
	return func(b *Binder[T], err *error) {
		RegisterConverterFor(b, converter)
	}
}

// WithFactory replaces new(T) as the constructor of bound instances. A factory error aborts
// binding with a BindingError.
func WithFactory[T any](factory FactoryFunc[T]) ConfigureBinderFunc[T] {
	return func(b *Binder[T], err *error) {
		b.factory = factory
	}
}

// WithAliasConverter registers, for every option, the name produced by converter as an
// additional alias
func WithAliasConverter[T any](converter NameConversionFunc) ConfigureBinderFunc[T] {
	return func(b *Binder[T], err *error) {
		*err = b.AddAliasConverter(converter)
	}
}

// WithStdin sets the reader interactive mode reads replies from
func WithStdin[T any](r io.Reader) ConfigureBinderFunc[T] {
	return func(b *Binder[T], err *error) {
		b.stdin = r
		b.resetConsole()
	}
}

// WithStdout sets the writer prompts, messages and help are written to
func WithStdout[T any](w io.Writer) ConfigureBinderFunc[T] {
	return func(b *Binder[T], err *error) {
		b.stdout = w
		b.resetConsole()
	}
}

// WithTerminal sets the TerminalReader used to read secrets without echo
func WithTerminal[T any](terminal input.TerminalReader) ConfigureBinderFunc[T] {
	return func(b *Binder[T], err *error) {
		b.terminal = terminal
		b.resetConsole()
	}
}
