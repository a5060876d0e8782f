package extract

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/matthewmckenna/ios-extract/pkg/backup"
)

const bannerWidth = 69

var (
	bannerColor  = color.New(color.FgBlue, color.Bold).SprintFunc()
	deviceColor  = color.New(color.FgYellow, color.Bold).SprintFunc()
	productColor = color.New(color.FgMagenta, color.Bold).SprintFunc()
	versionColor = color.New(color.FgGreen, color.Bold).SprintFunc()
	dateColor    = color.New(color.FgHiRed, color.Bold).SprintFunc()
)

func banner(title string) string {
	if len(title) >= bannerWidth {
		return title
	}
	pad := bannerWidth - len(title)
	left := pad / 2
	return strings.Repeat("=", left) + title + strings.Repeat("=", pad-left)
}

// Summarise prints the numbered one-per-backup listing shown before the
// interactive selection (and by the list command).
func Summarise(w io.Writer, cands []backup.Candidate) {
	fmt.Fprintln(w, bannerColor(banner(" Backups Available ")))
	for n, cand := range cands {
		fmt.Fprintf(w, "%d: %s [%s] (iOS version: %s)\n",
			n+1,
			deviceColor(cand.Info.DeviceName),
			productColor(cand.Info.ProductName),
			versionColor(cand.Info.ProductVersion),
		)
		fmt.Fprintf(w, " - Last backed up: %s\n\n",
			dateColor(cand.Info.LastBackupDate.UTC().Format(backup.ListDateFormat)))
	}
	fmt.Fprintln(w, bannerColor(banner("")))
}

// ListBackups enumerates the backups under root and writes the summary
// listing to w.
func ListBackups(w io.Writer, root string) error {
	cands, err := backup.Candidates(root)
	if err != nil {
		return err
	}
	if len(cands) == 0 {
		return fmt.Errorf("no backups found in %s", root)
	}
	Summarise(w, cands)
	return nil
}
