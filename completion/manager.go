package completion

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var ErrNoScript = errors.New("no completion script generated")

// CompletionManager generates a completion script for one shell and installs it in the
// user's completion directory
type CompletionManager struct {
	Shell       string
	ProgramName string
	Paths       CompletionPaths
	generator   Generator
	script      string
}

// NewCompletionManager creates a completion manager which can be used to manage and save completion scripts for a given shell
func NewCompletionManager(shell, programName string) (*CompletionManager, error) {
	generator := GetGenerator(shell)
	if generator == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedShell, shell)
	}

	paths, err := getCompletionPaths(shell)
	if err != nil {
		return nil, fmt.Errorf("failed to get completion paths: %w", err)
	}

	return &CompletionManager{
		Shell:       shell,
		ProgramName: filepath.Base(programName),
		Paths:       paths,
		generator:   generator,
	}, nil
}

// Accept generates and stores the completion script from the provided data
func (cm *CompletionManager) Accept(data CompletionData) {
	cm.script = cm.generator.Generate(cm.ProgramName, data)
}

// Script returns the script generated by the last call to Accept
func (cm *CompletionManager) Script() string {
	return cm.script
}

// SaveCompletion writes the generated script and returns the path it was written to.
// The fallback directory is used when the primary one cannot be prepared.
func (cm *CompletionManager) SaveCompletion() (string, error) {
	if cm.script == "" {
		return "", ErrNoScript
	}

	dir, err := cm.ensureCompletionPath()
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, cm.fileName())
	if err := os.WriteFile(path, []byte(cm.script), 0644); err != nil {
		return "", fmt.Errorf("failed to write completion file: %w", err)
	}

	return path, ensurePermission(path, 0644)
}

func (cm *CompletionManager) ensureCompletionPath() (string, error) {
	perm := os.FileMode(0755)
	err := os.MkdirAll(cm.Paths.Primary, perm)
	if err == nil {
		if err = ensurePermission(cm.Paths.Primary, perm); err == nil {
			return cm.Paths.Primary, nil
		}
	}

	if cm.Paths.Fallback == "" {
		return "", fmt.Errorf("failed to create completion directory: %w", err)
	}
	if err := os.MkdirAll(cm.Paths.Fallback, perm); err != nil {
		return "", fmt.Errorf("failed to create fallback completion directory: %w", err)
	}

	return cm.Paths.Fallback, ensurePermission(cm.Paths.Fallback, perm)
}

func (cm *CompletionManager) getShellFileConventions() CompletionFileInfo {
	switch cm.Shell {
	case "zsh":
		return CompletionFileInfo{Prefix: "_"}
	case "fish":
		return CompletionFileInfo{Extension: ".fish"}
	case "powershell":
		return CompletionFileInfo{Extension: ".ps1"}
	default:
		return CompletionFileInfo{}
	}
}

func (cm *CompletionManager) fileName() string {
	conventions := cm.getShellFileConventions()
	return conventions.Prefix + cm.ProgramName + conventions.Extension
}
