package clibeans

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/jbuncle/cli-beans/completion"
	"github.com/jbuncle/cli-beans/types"
)

// ConfigureBinderFunc is used when configuring a Binder with NewBinderWith
type ConfigureBinderFunc[T any] func(b *Binder[T], err *error)

// ConfigureDescriptorFunc is used when defining the metadata of an Option
type ConfigureDescriptorFunc func(d *Descriptor, err *error)

// ConverterFunc converts a raw argument to a value of the type it is registered for
type ConverterFunc func(value string) (any, error)

// FactoryFunc constructs the instance each Bind call populates
type FactoryFunc[T any] func() (*T, error)

// NameConversionFunc derives an additional alias from an option name
type NameConversionFunc func(string) string

// Path is a filesystem path built directly from an argument, without checking that it exists
type Path = types.Path

// DefaultPattern accepts any value
const DefaultPattern = ".*"

// Built-in conversion strategies
var (
	// ToKebabCase converts a string to kebab case "required-property"
	ToKebabCase = func(s string) string {
		return strcase.ToKebab(s)
	}

	// ToSnakeCase converts a string to snake case "required_property"
	ToSnakeCase = func(s string) string {
		return strcase.ToSnake(s)
	}

	// ToLowerCamel converts a string to lower camel case "requiredProperty"
	ToLowerCamel = func(s string) string {
		return strcase.ToLowerCamel(s)
	}

	// ToLowerCase converts a string to lower case "requiredproperty"
	ToLowerCase = func(s string) string {
		return strings.ToLower(s)
	}
)

var (
	ErrBinding           = errors.New("binding failed")
	ErrCoercion          = errors.New("coercion failed")
	ErrInteractiveIO     = errors.New("interactive input failed")
	ErrOptionConflict    = errors.New("option name conflict")
	ErrEmptyOptionName   = errors.New("option name is empty")
	ErrInvalidOptionName = errors.New("invalid option name")
	ErrInvalidPattern    = errors.New("invalid pattern")
	ErrFlagNotBool       = errors.New("flag must bind to a bool")
	ErrNilTarget         = errors.New("option has no binding target")
	ErrTargetType        = errors.New("value does not match binding target")
	ErrUnsupportedShell  = completion.ErrUnsupportedShell
)

const (
	FmtErrorWithString = "%w: %s"
)

// BindingError aborts Bind and BindInteractive. It carries the argument vector that was bound
// and, when the failure concerns one option, that option's name.
type BindingError struct {
	Args   []string
	Option string
	Err    error
}

func (e *BindingError) Error() string {
	if e.Option == "" {
		return fmt.Sprintf("%s: %v", ErrBinding, e.Err)
	}

	return fmt.Sprintf("%s: option %s: %v", ErrBinding, e.Option, e.Err)
}

func (e *BindingError) Unwrap() error {
	return e.Err
}

func (e *BindingError) Is(target error) bool {
	return target == ErrBinding
}

// CoercionError reports a raw value which could not be converted to the type its binding
// target accepts
type CoercionError struct {
	Option string
	Value  string
	Type   reflect.Type
	Err    error
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("%s: cannot convert %q to %s for %s: %v", ErrCoercion, e.Value, e.Type, e.Option, e.Err)
}

func (e *CoercionError) Unwrap() error {
	return e.Err
}

func (e *CoercionError) Is(target error) bool {
	return target == ErrCoercion
}
