package completion

import (
	"fmt"
	"strings"
)

type FishGenerator struct{}

func (g *FishGenerator) Generate(programName string, data CompletionData) string {
	var script strings.Builder

	for _, opt := range data.Options {
		// -o declares an old-style option, which is a single dash followed by a whole word
		cmd := fmt.Sprintf("complete -c %s", programName)
		for _, name := range opt.Names() {
			cmd = fmt.Sprintf("%s -o %s", cmd, name)
		}

		switch {
		case opt.IsPath:
			cmd += " -r -F"
		case opt.TakesValue:
			cmd += " -r -f"
		default:
			cmd += " -f"
		}

		if opt.Description != "" {
			cmd = fmt.Sprintf("%s -d '%s'", cmd, escapeFish(opt.Description))
		}
		script.WriteString(cmd + "\n")
	}

	return script.String()
}
