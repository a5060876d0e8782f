package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/apex/log"
)

// Candidate is one enumerable backup: a directory whose Info.plist
// could be read.
type Candidate struct {
	Path string
	Info *Info
}

// TargetDir returns the backup directory for an explicitly configured
// identifier. No existence check happens here; a missing backup shows
// up later as a missing Info.plist.
func TargetDir(root, uuid string) string {
	return filepath.Join(root, uuid)
}

// Candidates enumerates the immediate subdirectories of root that
// carry readable backup metadata, sorted by name so the numbering the
// user sees is stable across runs. Directories whose Info.plist cannot
// be read are skipped.
func Candidates(root string) ([]Candidate, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to list backup location %s: %w", root, err)
	}
	var cands []Candidate
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(root, entry.Name())
		info, err := ReadInfo(dir)
		if err != nil {
			log.WithField("dir", entry.Name()).Debugf("skipping: %v", err)
			continue
		}
		cands = append(cands, Candidate{Path: dir, Info: info})
	}
	sort.Slice(cands, func(i, j int) bool { return cands[i].Path < cands[j].Path })
	return cands, nil
}
