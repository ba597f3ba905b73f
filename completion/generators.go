package completion

import (
	"errors"
	"sort"
)

// ErrUnsupportedShell is returned for shells no Generator exists for
var ErrUnsupportedShell = errors.New("unsupported shell")

type Generator interface {
	Generate(programName string, data CompletionData) string
}

var generators = map[string]func() Generator{
	"bash":       func() Generator { return &BashGenerator{} },
	"zsh":        func() Generator { return &ZshGenerator{} },
	"fish":       func() Generator { return &FishGenerator{} },
	"powershell": func() Generator { return &PowerShellGenerator{} },
}

// GetGenerator returns the Generator for shell, or nil if the shell is not supported
func GetGenerator(shell string) Generator {
	if newGenerator, ok := generators[shell]; ok {
		return newGenerator()
	}

	return nil
}

// Shells lists the supported shells in alphabetical order
func Shells() []string {
	shells := make([]string, 0, len(generators))
	for shell := range generators {
		shells = append(shells, shell)
	}
	sort.Strings(shells)

	return shells
}
