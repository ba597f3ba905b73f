// Package convert provides ready-made converters for types the built-in coercion table
// passes through unchanged. Register them with clibeans.RegisterConverter.
package convert

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/google/uuid"
)

var (
	ErrInvalidTime     = errors.New("invalid time")
	ErrInvalidDuration = errors.New("invalid duration")
	ErrInvalidUUID     = errors.New("invalid uuid")
	ErrInvalidURL      = errors.New("invalid url")
)

// Time parses value in any layout dateparse recognizes, in the local time zone
func Time(value string) (time.Time, error) {
	t, err := dateparse.ParseLocal(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %w", ErrInvalidTime, value, err)
	}

	return t, nil
}

// TimeIn is Time with an explicit location for values which carry no zone
func TimeIn(loc *time.Location) func(string) (time.Time, error) {
	return func(value string) (time.Time, error) {
		t, err := dateparse.ParseIn(value, loc)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q: %w", ErrInvalidTime, value, err)
		}

		return t, nil
	}
}

// Date parses value with a fixed layout, e.g. "02/01/2006"
func Date(layout string) func(string) (time.Time, error) {
	return func(value string) (time.Time, error) {
		t, err := time.Parse(layout, value)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q does not match %q", ErrInvalidTime, value, layout)
		}

		return t, nil
	}
}

func Duration(value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, value)
	}

	return d, nil
}

func UUID(value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q: %w", ErrInvalidUUID, value, err)
	}

	return id, nil
}

// URL parses an absolute URL; relative references are rejected
func URL(value string) (*url.URL, error) {
	u, err := url.Parse(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, fmt.Errorf("%w: %q is not absolute", ErrInvalidURL, value)
	}

	return u, nil
}

// StringList splits value on sep, trimming whitespace around each element and dropping
// empty ones
func StringList(sep string) func(string) ([]string, error) {
	return func(value string) ([]string, error) {
		var out []string
		for _, s := range strings.Split(value, sep) {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}

		return out, nil
	}
}
