package backup

import "time"

const (
	// TimestampFormat renders Last Backup Date in info.txt (UTC).
	TimestampFormat = "2006-01-02 15:04:05"
	// RunDirFormat names the per-run output directory (UTC).
	RunDirFormat = "20060102_150405"
	// ListDateFormat renders the last-backup date in the interactive listing.
	ListDateFormat = "02-Jan-2006 15:04:05 MST"
)

// RunDirName returns the timestamped name for a per-run output directory.
func RunDirName(t time.Time) string {
	return t.UTC().Format(RunDirFormat)
}
