package completion

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

func ensurePermission(path string, perm os.FileMode) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	if runtime.GOOS == "windows" {
		return nil
	}

	if actual := info.Mode().Perm(); actual != perm {
		if err := os.Chmod(path, perm); err != nil {
			return fmt.Errorf("failed to set permissions on %s from %o to %o: %w", path, actual, perm, err)
		}
	}

	return nil
}

func isPowerShellCore() bool {
	_, err := exec.LookPath("pwsh")
	return err == nil
}

func getCompletionPaths(shell string) (CompletionPaths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return CompletionPaths{}, fmt.Errorf("couldn't get user home directory: %w", err)
	}

	return completionPaths(runtime.GOOS, home, shell)
}

// completionPaths returns the user-local completion directories of shell on goos. Only
// powershell differs between operating systems.
func completionPaths(goos, home, shell string) (CompletionPaths, error) {
	switch shell {
	case "bash":
		return CompletionPaths{
			Primary:  filepath.Join(home, ".local", "share", "bash-completion", "completions"),
			Fallback: filepath.Join(home, ".bash_completion.d"),
		}, nil
	case "zsh":
		return CompletionPaths{
			Primary:  filepath.Join(home, ".zsh", "completion"),
			Fallback: filepath.Join(home, ".zfunc"),
		}, nil
	case "fish":
		return CompletionPaths{
			Primary:   filepath.Join(home, ".config", "fish", "completions"),
			Fallback:  filepath.Join(home, ".local", "share", "fish", "completions"),
			Extension: ".fish",
		}, nil
	case "powershell":
		paths := CompletionPaths{
			Primary:   filepath.Join(home, ".config", "powershell", "Completions"),
			Fallback:  filepath.Join(home, ".local", "share", "powershell", "Completions"),
			Extension: ".ps1",
		}
		switch goos {
		case "windows":
			paths.Fallback = filepath.Join(home, ".config", "powershell", "Completions")
			if isPowerShellCore() {
				paths.Primary = filepath.Join(home, "Documents", "PowerShell", "Completions")
			} else {
				paths.Primary = filepath.Join(home, "Documents", "WindowsPowerShell", "Completions")
			}
		case "darwin":
			paths.Primary = filepath.Join(home, "Library", "PowerShell", "Completions")
			paths.Fallback = filepath.Join(home, ".config", "powershell", "Completions")
		}
		return paths, nil
	default:
		return CompletionPaths{}, fmt.Errorf("%w: %s", ErrUnsupportedShell, shell)
	}
}
