package git

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultIgnoreRules are the ignore patterns written into a vault at init.
// They keep machine-local Obsidian state and editor droppings out of the
// synchronized history.
const DefaultIgnoreRules = `# Obsidianite defaults
.env
.DS_Store
Thumbs.db
node_modules/
.obsidian/workspace
.obsidian/workspace.json
.obsidian/plugins/**/node_modules/
.obsidian/plugins/**/data.json
.obsidian/cache/
.trash/
*.code-workspace
*.swp
*.swo
`

// EnsureIgnoreFile writes the default ignore rules into dir if no
// .gitignore exists there yet. An existing file is left untouched, so
// re-running init never duplicates rules. Returns whether a file was
// written.
func EnsureIgnoreFile(dir string) (bool, error) {
	path := filepath.Join(dir, ".gitignore")
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if err := os.WriteFile(path, []byte(DefaultIgnoreRules), 0644); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return true, nil
}
