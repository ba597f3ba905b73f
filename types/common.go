package types

import "errors"

// Path is a filesystem path bound from a command-line value. It is built directly from the
// supplied string; nothing checks that the path exists.
type Path string

// String returns the path as given on the command-line
func (p Path) String() string {
	return string(p)
}

var (
	ErrParseBool  = errors.New("invalid boolean value")
	ErrParseInt   = errors.New("invalid integer value")
	ErrParseUint  = errors.New("invalid unsigned integer value")
	ErrParseFloat = errors.New("invalid floating point value")
)
