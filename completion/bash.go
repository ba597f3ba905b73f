package completion

import (
	"fmt"
	"strings"
)

type BashGenerator struct{}

func (g *BashGenerator) Generate(programName string, data CompletionData) string {
	var script strings.Builder
	fn := funcName(programName)

	script.WriteString("#!/bin/bash\n\n")
	for _, opt := range data.Options {
		script.WriteString(fmt.Sprintf("# %s: %s\n",
			strings.Join(prefixed(opt.Names()), ", "), escapeBash(opt.Description)))
	}

	script.WriteString(fmt.Sprintf(`
function __%s_completion() {
    local cur prev
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    case "${prev}" in`, fn))

	var paths, values []string
	for _, opt := range data.Options {
		switch {
		case opt.IsPath:
			paths = append(paths, prefixed(opt.Names())...)
		case opt.TakesValue:
			values = append(values, prefixed(opt.Names())...)
		}
	}
	if len(paths) > 0 {
		script.WriteString(fmt.Sprintf(`
        %s)
            COMPREPLY=( $(compgen -f -- "$cur") )
            return
            ;;`, strings.Join(paths, "|")))
	}
	if len(values) > 0 {
		script.WriteString(fmt.Sprintf(`
        %s)
            return
            ;;`, strings.Join(values, "|")))
	}

	var all []string
	for _, opt := range data.Options {
		all = append(all, prefixed(opt.Names())...)
	}

	script.WriteString(fmt.Sprintf(`
    esac

    if [[ "$cur" == -* ]]; then
        local opts="%s"
        COMPREPLY=( $(compgen -W "${opts}" -- "$cur") )
    fi
}

complete -F __%s_completion %s
`, strings.Join(all, " "), fn, programName))

	return script.String()
}
