package clibeans

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/jbuncle/cli-beans/parse"
	"github.com/jbuncle/cli-beans/util"
)

// Descriptor holds the metadata of one command-line option
type Descriptor struct {
	Name         string
	Aliases      []string
	IsFlag       bool
	IsRequired   bool
	Pattern      string
	DefaultValue string
	Description  string
}

// Option couples a Descriptor with the Target which receives the option's value
type Option[T any] struct {
	Descriptor
	Target Target[T]
}

// Target applies a coerced value to an instance of T. The value type accepted by the setter
// decides how raw arguments are coerced.
type Target[T any] struct {
	typ reflect.Type
	set func(*T, any) error
}

// Setter creates a Target from a setter which cannot fail
func Setter[T, V any](fn func(*T, V)) Target[T] {
	return SetterE(func(t *T, v V) error {
		fn(t, v)
		return nil
	})
}

// SetterE creates a Target from a setter which may reject a value. A returned error aborts
// binding with a BindingError.
func SetterE[T, V any](fn func(*T, V) error) Target[T] {
	typ := util.TypeOf[V]()

	return Target[T]{
		typ: typ,
		set: func(t *T, value any) error {
			v, ok := value.(V)
			if !ok {
				return fmt.Errorf("%w: %T is not %s", ErrTargetType, value, typ)
			}
			return fn(t, v)
		},
	}
}

// Type returns the type of value the Target accepts
func (t Target[T]) Type() reflect.Type {
	return t.typ
}

// IsZero reports whether the Target was not created with Setter or SetterE
func (t Target[T]) IsZero() bool {
	return t.set == nil
}

// NewOption creates an Option named name (without the leading dash) bound to target.
// Configuration errors are reported when the option is added to a Binder.
//
// Usage example:
//
//	opt := NewOption("number", Setter(func(b *Bean, n int) { b.Number = n }),
//	    WithAlias("n"),
//	    WithPattern("[0-9]*"),
//	    WithDescription("a number"),
//	)
func NewOption[T any](name string, target Target[T], configs ...ConfigureDescriptorFunc) *Option[T] {
	opt := &Option[T]{
		Descriptor: Descriptor{Name: name, Pattern: DefaultPattern},
		Target:     target,
	}
	for _, config := range configs {
		config(&opt.Descriptor, nil)
	}

	return opt
}

// Set configures the Descriptor with the provided ConfigureDescriptorFunc(s) and returns the
// first configuration error
func (d *Descriptor) Set(configs ...ConfigureDescriptorFunc) error {
	var err error
	for _, config := range configs {
		config(d, &err)
		if err != nil {
			return err
		}
	}

	return nil
}

// Names returns the option name followed by its aliases
func (d *Descriptor) Names() []string {
	return append([]string{d.Name}, d.Aliases...)
}

// Usage returns the help fragment of the option: "-name, -alias <argument>"
func (d *Descriptor) Usage() string {
	names := d.Names()
	for i := range names {
		names[i] = parse.OptionPrefix + names[i]
	}

	usage := strings.Join(names, ", ")
	if !d.IsFlag {
		usage += " <argument>"
	}

	return usage
}

func (d *Descriptor) String() string {
	requiredOrOptional := "optional"
	if d.IsRequired {
		requiredOrOptional = "required"
	}

	return fmt.Sprintf("%s (%s)", d.Usage(), requiredOrOptional)
}

func (d *Descriptor) copy() Descriptor {
	c := *d
	c.Aliases = append([]string(nil), d.Aliases...)

	return c
}
