package completion

// Option describes one option offered for completion
type Option struct {
	Name        string
	Aliases     []string
	Description string
	TakesValue  bool // false for flags
	IsPath      bool // the value completes to file names
}

// Names returns the option name followed by its aliases
func (o Option) Names() []string {
	return append([]string{o.Name}, o.Aliases...)
}

// CompletionData holds the options of one program in declaration order
type CompletionData struct {
	Options []Option
}

// CompletionPaths holds information about completion script locations
type CompletionPaths struct {
	Primary   string // Main completion path
	Fallback  string // Alternative path if primary isn't available
	Extension string // File extension for completion script (if any)
}

// CompletionFileInfo holds shell-specific naming conventions
type CompletionFileInfo struct {
	Prefix    string
	Extension string
}
