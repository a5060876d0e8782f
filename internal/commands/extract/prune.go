package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

// RunDirPattern matches the timestamped run directories this tool
// creates, e.g. 20230101_120000.
var RunDirPattern = regexp.MustCompile(`^\d{8}_\d{6}$`)

// PruneEmptyDirs removes immediate subdirectories of root whose name
// matches pattern and which contain no entries at all; anything else is
// never inspected. Interrupted runs leave these behind. Returns the
// names of the removed directories.
func PruneEmptyDirs(root string, pattern *regexp.Regexp) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", root, err)
	}
	var removed []string
	for _, entry := range entries {
		if !entry.IsDir() || !pattern.MatchString(entry.Name()) {
			continue
		}
		dir := filepath.Join(root, entry.Name())
		contents, err := os.ReadDir(dir)
		if err != nil {
			return removed, fmt.Errorf("failed to list %s: %w", dir, err)
		}
		if len(contents) != 0 {
			continue
		}
		if err := os.Remove(dir); err != nil {
			return removed, fmt.Errorf("failed to remove empty directory %s: %w", dir, err)
		}
		removed = append(removed, entry.Name())
	}
	return removed, nil
}
