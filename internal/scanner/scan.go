// Package scanner discovers and parses session logs for the usage view.
// The walk floor is the widest supported window, not the requested one, so
// paging to a larger window later never needs a re-scan.
package scanner

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/anomredux/usage-cal/internal/domain"
	"github.com/anomredux/usage-cal/internal/timeutil"
)

const logExt = ".jsonl"

// Session filenames carry a structured start prefix; colons are not
// filename-safe, so the time-of-day uses dashes.
var (
	filenameStampRe     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}-\d{2}-\d{2}`)
	filenameStampLayout = "2006-01-02T15-04-05"
)

// DefaultRoot returns the session log directory of the host agent.
func DefaultRoot() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "sessions")
	}
	return filepath.Join(home, ".pi", "agent", "sessions")
}

// fileStart derives a file's session-start time from its name, falling
// back to modification time when the prefix doesn't parse.
func fileStart(path string, modTime time.Time) time.Time {
	base := filepath.Base(path)
	if m := filenameStampRe.FindString(base); m != "" {
		if ts, err := time.ParseInLocation(filenameStampLayout, m, time.Local); err == nil {
			return ts
		}
	}
	return modTime
}

// Collect walks root depth-first, parses every candidate log, and returns
// one LogFile per file that produced records. Unreadable paths are skipped
// and the walk continues. Cancellation is cooperative: the context is
// checked between files and between lines, and a cancelled run returns
// ctx.Err() with no partial results.
func Collect(ctx context.Context, root string, notify ProgressFunc) ([]domain.LogFile, error) {
	th := newThrottle(notify)

	floorDays := timeutil.MaxWindowDays()
	now := time.Now()
	floorTime := timeutil.AddDays(timeutil.LocalMidnight(now), -(floorDays - 1))
	floorKey := timeutil.CutoffKeyAt(now, floorDays)

	// A missing or unreadable root yields an empty result, not an error:
	// every entry-level error is swallowed and the walk moves on.
	var paths []string
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable entry, keep walking siblings
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() || filepath.Ext(path) != logExt {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil // raced deletion
		}
		if fileStart(path, info.ModTime()).Before(floorTime) {
			return nil
		}
		paths = append(paths, path)
		th.send(Progress{Phase: PhaseScanning, FilesFound: len(paths)})
		return nil
	})
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	th.force(Progress{Phase: PhaseScanning, FilesFound: len(paths)})

	files := make([]domain.LogFile, 0, len(paths))
	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		th.send(Progress{
			Phase:       PhaseParsing,
			FilesParsed: i,
			TotalFiles:  len(paths),
			CurrentFile: filepath.Base(path),
		})

		f, err := os.Open(path)
		if err != nil {
			continue // raced deletion or permissions, skip
		}
		records, err := ParseReader(ctx, f, floorKey)
		f.Close()
		if err != nil {
			return nil, err // only cancellation surfaces from ParseReader
		}
		// A file with zero usable records carries no signal.
		if len(records) > 0 {
			files = append(files, domain.LogFile{Path: path, Records: records})
		}
	}

	th.force(Progress{Phase: PhaseFinalizing, FilesParsed: len(paths), TotalFiles: len(paths)})
	return files, nil
}
