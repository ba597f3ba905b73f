package clibeans

import (
	"fmt"
	"regexp"
)

// WithAlias adds alternative names for the option. An alias is replaced by the option name
// before validation and binding.
func WithAlias(aliases ...string) ConfigureDescriptorFunc {
	return func(d *Descriptor, err *error) {
		d.Aliases = append(d.Aliases, aliases...)
	}
}

// WithDescription the description is used in help output and as the interactive prompt
func WithDescription(description string) ConfigureDescriptorFunc {
	return func(d *Descriptor, err *error) {
		d.Description = description
	}
}

// AsFlag marks the option as a flag: it takes no argument and its presence binds true
func AsFlag() ConfigureDescriptorFunc {
	return SetFlag(true)
}

// SetFlag when true, the option takes no argument
func SetFlag(flag bool) ConfigureDescriptorFunc {
	return func(d *Descriptor, err *error) {
		d.IsFlag = flag
	}
}

// SetRequired when true, the option must be supplied on the command-line. Unless the option
// is a flag it must also carry a non-empty value.
func SetRequired(required bool) ConfigureDescriptorFunc {
	return func(d *Descriptor, err *error) {
		d.IsRequired = required
	}
}

// WithPattern a supplied value must match pattern in full
func WithPattern(pattern string) ConfigureDescriptorFunc {
	return func(d *Descriptor, err *error) {
		if _, e := compilePattern(pattern); e != nil && err != nil {
			*err = e
			return
		}
		d.Pattern = pattern
	}
}

// WithDefaultValue is bound when the option is absent. An empty default means the option is
// skipped when absent.
func WithDefaultValue(defaultValue string) ConfigureDescriptorFunc {
	return func(d *Descriptor, err *error) {
		d.DefaultValue = defaultValue
	}
}

// compilePattern anchors pattern so that only a full match succeeds
func compilePattern(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}

	re, err := regexp.Compile("^(?:" + pattern + ")$")
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidPattern, pattern, err)
	}

	return re, nil
}
