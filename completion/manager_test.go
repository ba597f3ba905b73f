package completion

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompletionManager(t *testing.T) {
	manager, err := NewCompletionManager("zsh", "/usr/local/bin/mytool")
	require.NoError(t, err)
	assert.Equal(t, "mytool", manager.ProgramName)
	assert.NotEmpty(t, manager.Paths.Primary)

	_, err = NewCompletionManager("tcsh", "mytool")
	assert.ErrorIs(t, err, ErrUnsupportedShell)
}

func TestCompletionManager_SaveCompletion(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		shell    string
		wantFile string
	}{
		{"bash", "mytool"},
		{"zsh", "_mytool"},
		{"fish", "mytool.fish"},
		{"powershell", "mytool.ps1"},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			manager, err := NewCompletionManager(tt.shell, "mytool")
			require.NoError(t, err)
			manager.Paths.Primary = filepath.Join(tmpDir, tt.shell)
			manager.Paths.Fallback = filepath.Join(tmpDir, tt.shell+"_fallback")

			_, err = manager.SaveCompletion()
			assert.ErrorIs(t, err, ErrNoScript)

			manager.Accept(testData())
			path, err := manager.SaveCompletion()
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(manager.Paths.Primary, tt.wantFile), path)

			content, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, manager.Script(), string(content))
		})
	}
}

func TestCompletionManager_Fallback(t *testing.T) {
	tmpDir := t.TempDir()
	blocker := filepath.Join(tmpDir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	manager, err := NewCompletionManager("bash", "mytool")
	require.NoError(t, err)
	// a regular file where the primary directory should be
	manager.Paths.Primary = filepath.Join(blocker, "completions")
	manager.Paths.Fallback = filepath.Join(tmpDir, "fallback")
	manager.Accept(testData())

	path, err := manager.SaveCompletion()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmpDir, "fallback", "mytool"), path)
}

func TestCompletionPaths(t *testing.T) {
	home := filepath.FromSlash("/home/user")

	tests := []struct {
		goos        string
		shell       string
		wantPrimary string
		wantExt     string
		wantErr     bool
	}{
		{"linux", "bash", filepath.Join(home, ".local", "share", "bash-completion", "completions"), "", false},
		{"darwin", "zsh", filepath.Join(home, ".zsh", "completion"), "", false},
		{"linux", "fish", filepath.Join(home, ".config", "fish", "completions"), ".fish", false},
		{"linux", "powershell", filepath.Join(home, ".config", "powershell", "Completions"), ".ps1", false},
		{"darwin", "powershell", filepath.Join(home, "Library", "PowerShell", "Completions"), ".ps1", false},
		{"linux", "tcsh", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.goos+"/"+tt.shell, func(t *testing.T) {
			paths, err := completionPaths(tt.goos, home, tt.shell)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedShell)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPrimary, paths.Primary)
			assert.Equal(t, tt.wantExt, paths.Extension)
			assert.NotEmpty(t, paths.Fallback)
		})
	}
}

func TestEnsurePermission(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permissions are not enforced on windows")
	}

	path := filepath.Join(t.TempDir(), "script")
	require.NoError(t, os.WriteFile(path, nil, 0600))
	require.NoError(t, ensurePermission(path, 0644))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())

	assert.Error(t, ensurePermission(filepath.Join(t.TempDir(), "missing"), 0644))
}
