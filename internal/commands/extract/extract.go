// Package extract implements the backup extraction workflow: locate a
// backup, read its metadata, resolve the catalogued database files and
// copy them into a timestamped run directory.
package extract

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/matthewmckenna/ios-extract/internal/config"
	"github.com/matthewmckenna/ios-extract/internal/utils"
	"github.com/matthewmckenna/ios-extract/pkg/backup"
)

// Options are the per-invocation knobs on top of the config.
type Options struct {
	// DryRun resolves and reports every copy without writing anything.
	DryRun bool
	// In and Out carry the interactive selection dialog (stdin/stdout
	// in the CLI; buffers in tests).
	In  io.Reader
	Out io.Writer
	// Now stamps the run directory; defaults to time.Now.
	Now func() time.Time
}

// CopiedFile is one database that made it into the run directory.
type CopiedFile struct {
	Name string
	Size int64
}

// Report summarises a run.
type Report struct {
	Record       *backup.Record
	RunDirectory string
	Copied       []CopiedFile
	Skipped      []string
	DryRun       bool
}

// Run performs one extraction end to end. Selection outcomes surface as
// backup.ErrSelectionCancelled / backup.ErrTooManyInvalidInputs; the
// caller owns the mapping to exit codes.
func Run(cfg *config.Config, opts *Options) (*Report, error) {
	if opts == nil {
		opts = &Options{}
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	targetDir, info, err := locate(cfg, opts)
	if err != nil {
		return nil, err
	}

	catalogue, err := backup.LoadCatalogue(cfg.Databases)
	if err != nil {
		return nil, err
	}

	runDir := filepath.Join(cfg.OutputDirectory, backup.RunDirName(now()))
	if err := os.MkdirAll(runDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create run directory: %w", err)
	}

	record := &backup.Record{
		BackupDirectory: targetDir,
		OutputDirectory: runDir,
		Info:            *info,
	}

	major, ok := record.MajorVersion()
	if !ok {
		return nil, fmt.Errorf("cannot determine iOS version from Product Version %q", record.ProductVersion)
	}

	report := &Report{
		Record:       record,
		RunDirectory: runDir,
		DryRun:       opts.DryRun,
	}

	pairs := catalogue.Resolve(targetDir, runDir, major)
	if opts.DryRun {
		log.Info("dry run, not copying any files")
		for _, pair := range pairs {
			dryRunPair(pair, report)
		}
	} else {
		log.Infof("extracting databases to %s", runDir)
		for _, pair := range pairs {
			if err := copyPair(pair, report); err != nil {
				return nil, err
			}
		}
		if err := record.WriteInfoTxt(); err != nil {
			return nil, err
		}
	}

	// always after the copy step, so the run directory just written to
	// is never a pruning candidate
	pruned, err := PruneEmptyDirs(cfg.OutputDirectory, RunDirPattern)
	if err != nil {
		return nil, err
	}
	for _, dir := range pruned {
		log.WithField("dir", dir).Debug("removed empty run directory")
	}

	return report, nil
}

func locate(cfg *config.Config, opts *Options) (string, *backup.Info, error) {
	if cfg.UUID != "" {
		dir := backup.TargetDir(cfg.BackupDirectory, cfg.UUID)
		info, err := backup.ReadInfo(dir)
		if err != nil {
			return "", nil, err
		}
		return dir, info, nil
	}

	cands, err := backup.Candidates(cfg.BackupDirectory)
	if err != nil {
		return "", nil, err
	}
	if len(cands) == 0 {
		return "", nil, fmt.Errorf("no backups found in %s", cfg.BackupDirectory)
	}

	in, out := opts.In, opts.Out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	Summarise(out, cands)
	choice, err := backup.Select(in, out, len(cands))
	if err != nil {
		return "", nil, err
	}
	chosen := cands[choice-1]
	return chosen.Path, chosen.Info, nil
}

func dryRunPair(pair backup.CopyPair, report *Report) {
	fi, err := os.Stat(pair.Source)
	if err != nil {
		log.WithField("db", pair.Name).Warn("couldn't find source file, would skip")
		report.Skipped = append(report.Skipped, pair.Name)
		return
	}
	log.WithFields(log.Fields{
		"db":   pair.Name,
		"size": humanize.Bytes(uint64(fi.Size())),
	}).Infof("would copy to %s", pair.Destination)
	report.Copied = append(report.Copied, CopiedFile{Name: pair.Name, Size: fi.Size()})
}

func copyPair(pair backup.CopyPair, report *Report) error {
	size, err := utils.CopyFile(pair.Source, pair.Destination)
	if errors.Is(err, fs.ErrNotExist) {
		log.WithField("db", pair.Name).Warn("couldn't find source file, skipping")
		report.Skipped = append(report.Skipped, pair.Name)
		return nil
	}
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"db":   pair.Name,
		"size": humanize.Bytes(uint64(size)),
	}).Debug("copied")
	report.Copied = append(report.Copied, CopiedFile{Name: pair.Name, Size: size})
	return nil
}
