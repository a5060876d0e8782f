package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Catalogue maps a logical database name to its content-hash filename
// inside a backup. Loaded once per run, read-only after that.
type Catalogue map[string]string

// LoadCatalogue reads a catalogue manifest (a flat JSON object).
func LoadCatalogue(path string) (Catalogue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read database catalogue %s: %w", path, err)
	}
	var c Catalogue
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse database catalogue %s: %w", path, err)
	}
	if len(c) == 0 {
		return nil, fmt.Errorf("database catalogue %s is empty", path)
	}
	return c, nil
}

// Names returns the logical database names in sorted order.
func (c Catalogue) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
