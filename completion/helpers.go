package completion

import (
	"strings"
	"unicode"
)

const optionPrefix = "-"

func escapeBash(desc string) string {
	desc = strings.ReplaceAll(desc, `\`, `\\`)
	desc = strings.ReplaceAll(desc, "\n", " ")
	return desc
}

func escapeFish(desc string) string {
	desc = strings.ReplaceAll(desc, `\`, `\\`)
	return strings.ReplaceAll(desc, "'", `\'`)
}

// escapeZsh escapes an _arguments spec description which is enclosed in single quotes
func escapeZsh(s string) string {
	s = strings.ReplaceAll(s, "[", `\[`)
	s = strings.ReplaceAll(s, "]", `\]`)
	s = strings.ReplaceAll(s, ":", `\:`)
	return strings.ReplaceAll(s, "'", `'\''`)
}

func escapePowerShell(desc string) string {
	return strings.ReplaceAll(desc, "'", "''")
}

// funcName turns a program name into a valid shell function name
func funcName(programName string) string {
	return strings.Map(func(r rune) rune {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '_'
	}, programName)
}

func prefixed(names []string) []string {
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = optionPrefix + name
	}
	return out
}
