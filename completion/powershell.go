package completion

import (
	"fmt"
	"strings"
)

type PowerShellGenerator struct{}

func (g *PowerShellGenerator) Generate(programName string, data CompletionData) string {
	var script strings.Builder

	script.WriteString(fmt.Sprintf(`using namespace System.Management.Automation

Register-ArgumentCompleter -Native -CommandName '%s' -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    $options = @(`, escapePowerShell(programName)))

	var entries []string
	for _, opt := range data.Options {
		desc := opt.Description
		if desc == "" {
			desc = opt.Name
		}
		for _, name := range prefixed(opt.Names()) {
			entries = append(entries, fmt.Sprintf(`
        [CompletionResult]::new('%[1]s', '%[1]s', [CompletionResultType]::ParameterName, '%[2]s')`,
				escapePowerShell(name), escapePowerShell(desc)))
		}
	}
	script.WriteString(strings.Join(entries, ","))

	script.WriteString(`
    )

    $options | Where-Object { $_.CompletionText -like "$wordToComplete*" }
}
`)

	return script.String()
}
