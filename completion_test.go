package clibeans

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type configBean struct {
	Config  Path
	Verbose bool
}

func TestBinder_CompletionData(t *testing.T) {
	b, err := NewBinderWith(WithOptions(
		NewOption("config", Setter(func(b *configBean, v Path) { b.Config = v }),
			WithAlias("c"),
			WithDescription("Config file")),
		NewOption("verbose", Setter(func(b *configBean, v bool) { b.Verbose = v }),
			AsFlag()),
	))
	require.NoError(t, err)

	data := b.CompletionData()
	require.Len(t, data.Options, 2)
	assert.Equal(t, []string{"config", "c"}, data.Options[0].Names())
	assert.True(t, data.Options[0].TakesValue)
	assert.True(t, data.Options[0].IsPath)
	assert.False(t, data.Options[1].TakesValue)
	assert.False(t, data.Options[1].IsPath)
}

func TestBinder_GenerateCompletion(t *testing.T) {
	b := newTestBinder(t)

	script, err := b.GenerateCompletion("fish", "beans")
	require.NoError(t, err)
	assert.Contains(t, script, "complete -c beans -o aliased -o a -r -f\n")
	assert.Contains(t, script, "complete -c beans -o uppercase -f -d 'Basic flag'\n")

	script, err = b.GenerateCompletion("bash", "beans")
	require.NoError(t, err)
	assert.Contains(t, script, "complete -F __beans_completion beans")

	_, err = b.GenerateCompletion("tcsh", "beans")
	assert.ErrorIs(t, err, ErrUnsupportedShell)
}
