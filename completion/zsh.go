package completion

import (
	"fmt"
	"strings"
)

type ZshGenerator struct{}

func (g *ZshGenerator) Generate(programName string, data CompletionData) string {
	var script strings.Builder
	fn := funcName(programName)

	script.WriteString(fmt.Sprintf(`#compdef %s

__%s_completion() {
    _arguments`, programName, fn))

	for _, opt := range data.Options {
		names := prefixed(opt.Names())
		exclusive := ""
		if len(names) > 1 {
			exclusive = "(" + strings.Join(names, " ") + ")"
		}

		action := ""
		switch {
		case opt.IsPath:
			action = ":file:_files"
		case opt.TakesValue:
			action = ":value: "
		}

		desc := escapeZsh(opt.Description)
		for _, name := range names {
			script.WriteString(fmt.Sprintf(" \\\n        '%s%s[%s]%s'", exclusive, name, desc, action))
		}
	}

	script.WriteString(fmt.Sprintf(`
}

__%s_completion "$@"
`, fn))

	return script.String()
}
