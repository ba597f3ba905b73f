package parse

import (
	"testing"

	"github.com/jbuncle/cli-beans/types/orderedmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	name  string
	value *string
}

func str(s string) *string {
	return &s
}

func entries(options *Options) []entry {
	var got []entry
	for it := options.Front(); it != nil; it = it.Next() {
		got = append(got, entry{name: *it.Key, value: it.Value})
	}
	return got
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []entry
	}{
		{
			name: "space separated value",
			args: []string{"-myproperty", "Hello world"},
			want: []entry{{"myproperty", str("Hello world")}},
		},
		{
			name: "equals form",
			args: []string{"-myproperty=value"},
			want: []entry{{"myproperty", str("value")}},
		},
		{
			name: "equals form splits on first equals",
			args: []string{"-expr=a=b"},
			want: []entry{{"expr", str("a=b")}},
		},
		{
			name: "equals form with empty value",
			args: []string{"-empty="},
			want: []entry{{"empty", str("")}},
		},
		{
			name: "equals form does not consume the next token",
			args: []string{"-a=1", "2"},
			want: []entry{{"a", str("1")}},
		},
		{
			name: "flag at end",
			args: []string{"-myproperty", "x", "-requiredProperty"},
			want: []entry{{"myproperty", str("x")}, {"requiredProperty", nil}},
		},
		{
			name: "flag followed by option",
			args: []string{"-uppercase", "-a", "v"},
			want: []entry{{"uppercase", nil}, {"a", str("v")}},
		},
		{
			name: "last occurrence wins and keeps first position",
			args: []string{"-a", "1", "-b", "-a", "2"},
			want: []entry{{"a", str("2")}, {"b", nil}},
		},
		{
			name: "stray positional tokens are ignored",
			args: []string{"stray", "-a", "1", "also", "stray"},
			want: []entry{{"a", str("1")}},
		},
		{
			name: "value starting with dash is an option",
			args: []string{"-number", "-5"},
			want: []entry{{"number", nil}, {"5", nil}},
		},
		{
			name: "double dash keeps the second dash in the name",
			args: []string{"--name", "v"},
			want: []entry{{"-name", str("v")}},
		},
		{
			name: "empty argument",
			args: []string{""},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, entries(Tokenize(tt.args)))
		})
	}
}

func TestResolveAliases(t *testing.T) {
	aliases := orderedmap.NewOrderedMap[string, string]()
	aliases.Set("a", "aliased")
	aliases.Set("als", "aliases")
	aliases.Set("ali", "aliases")

	t.Run("alias is renamed", func(t *testing.T) {
		options := ResolveAliases(Tokenize([]string{"-requiredProperty", "-a", "value"}), aliases)
		assert.Equal(t, []entry{{"requiredProperty", nil}, {"aliased", str("value")}}, entries(options))
	})

	t.Run("canonical name is untouched", func(t *testing.T) {
		options := ResolveAliases(Tokenize([]string{"-aliased", "value"}), aliases)
		assert.Equal(t, []entry{{"aliased", str("value")}}, entries(options))
	})

	t.Run("flag alias keeps nil value", func(t *testing.T) {
		options := ResolveAliases(Tokenize([]string{"-a"}), aliases)
		value, found := options.Get("aliased")
		require.True(t, found)
		assert.Nil(t, value)
	})

	t.Run("alias value wins over canonical", func(t *testing.T) {
		options := ResolveAliases(Tokenize([]string{"-a", "alias", "-aliased", "canonical"}), aliases)
		assert.Equal(t, []entry{{"aliased", str("alias")}}, entries(options))
	})

	t.Run("later alias registration wins", func(t *testing.T) {
		options := ResolveAliases(Tokenize([]string{"-ali", "second", "-als", "first"}), aliases)
		assert.Equal(t, []entry{{"aliases", str("second")}}, entries(options))
	})
}
