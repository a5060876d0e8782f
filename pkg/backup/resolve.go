package backup

import "path/filepath"

// shardedLayoutMinVersion is the first major iOS version whose backups
// store files in two-character-prefix subdirectories. Before that the
// layout is flat.
const shardedLayoutMinVersion = 10

// CopyPair is one resolved copy: a hashed source file inside the backup
// and its logical-name destination in the run directory.
type CopyPair struct {
	Name        string
	Source      string
	Destination string
}

// SourcePath computes where a hashed filename lives inside a backup.
// From iOS 10 onwards files sit under a subdirectory named after the
// first two characters of the hash, e.g. 7c7fba66... under 7c/. The
// two-character shard width is part of the backup format, not a knob.
func SourcePath(backupDir, hashedName string, majorVersion int) string {
	if majorVersion >= shardedLayoutMinVersion && len(hashedName) > 2 {
		return filepath.Join(backupDir, hashedName[:2], hashedName)
	}
	return filepath.Join(backupDir, hashedName)
}

// Resolve produces one CopyPair per catalogue entry, in sorted
// logical-name order.
func (c Catalogue) Resolve(backupDir, outputDir string, majorVersion int) []CopyPair {
	pairs := make([]CopyPair, 0, len(c))
	for _, name := range c.Names() {
		pairs = append(pairs, CopyPair{
			Name:        name,
			Source:      SourcePath(backupDir, c[name], majorVersion),
			Destination: filepath.Join(outputDir, name),
		})
	}
	return pairs
}
