package organize

import (
	"io"
	"os"
	"path/filepath"
	"syscall"

	"foldersort/internal/errors"
	"foldersort/internal/log"
	"foldersort/internal/store"
	"foldersort/pkg/types"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

// Organizer moves the files of a store's base directory that end with one
// extension into that extension's destination folder.
type Organizer struct {
	store   *store.Store
	matcher *Matcher
	folder  string
	dryRun  bool
	logger  log.Logging
}

// Option configures an Organizer.
type Option func(*Organizer)

// WithDryRun makes Organize report what it would move without touching
// the filesystem.
func WithDryRun(dryRun bool) Option {
	return func(o *Organizer) { o.dryRun = dryRun }
}

// WithLogger routes organizer messages to l instead of the package logger.
func WithLogger(l log.Logging) Option {
	return func(o *Organizer) {
		if l != nil {
			o.logger = l
		}
	}
}

// New creates an Organizer for ext over s. It fails only when ext cannot
// name a destination folder.
func New(s *store.Store, ext string, opts ...Option) (*Organizer, error) {
	if s == nil {
		return nil, errors.NewConfigError("organizer needs a store", "store", errors.InvalidConfig, nil)
	}
	m, err := NewMatcher(ext)
	if err != nil {
		return nil, err
	}
	o := &Organizer{
		store:   s,
		matcher: m,
		folder:  DestinationFolder(ext),
	}
	o.apply(opts)
	return o, nil
}

func (o *Organizer) apply(opts []Option) {
	o.logger = log.Default()
	for _, opt := range opts {
		opt(o)
	}
}

// Extension returns the configured extension.
func (o *Organizer) Extension() string {
	return o.matcher.Extension()
}

// Folder returns the destination folder name.
func (o *Organizer) Folder() string {
	return o.folder
}

// IsDryRun returns whether the organizer only simulates moves
func (o *Organizer) IsDryRun() bool {
	return o.dryRun
}

type candidate struct {
	name string
	size int64
}

// Organize runs one pass. It never fails as a whole: a listing or folder
// creation problem is recorded in the summary's Error, and every per-file
// failure in that file's result, after which the pass goes on with the
// next file.
func (o *Organizer) Organize() types.OrganizeSummary {
	summary := types.OrganizeSummary{
		ID:        uuid.New().String(),
		Extension: o.Extension(),
		Folder:    o.folder,
		DryRun:    o.dryRun,
		Results:   []types.OrganizeResult{},
	}
	logger := o.logger.With(
		log.F("pass", summary.ID),
		log.F("extension", summary.Extension),
		log.F("folder", o.folder),
	)

	files, err := o.scan()
	if err != nil {
		logger.WithError(err).Error("Cannot organize files")
		summary.Error = err
		return summary
	}

	if len(files) == 0 {
		logger.Info("No files found for this extension")
		return summary
	}

	destDir := o.store.Path(o.folder)

	if o.dryRun {
		for _, f := range files {
			dest := filepath.Join(destDir, f.name)
			logger.With(log.F("file", f.name)).Infof("Would move %s -> %s/", f.name, o.folder)
			summary.Results = append(summary.Results, types.OrganizeResult{
				SourcePath:      o.store.Path(f.name),
				DestinationPath: dest,
				Size:            f.size,
			})
		}
		logger.With(log.F("matched", summary.Matched())).Info("Dry run complete, nothing moved")
		return summary
	}

	if _, err := o.store.Create(o.folder); err != nil {
		logger.WithError(err).Error("Cannot prepare destination folder")
		summary.Error = err
		for _, f := range files {
			summary.Results = append(summary.Results, types.OrganizeResult{
				SourcePath:      o.store.Path(f.name),
				DestinationPath: filepath.Join(destDir, f.name),
				Size:            f.size,
				Error:           err,
			})
		}
		return summary
	}

	for _, f := range files {
		src := o.store.Path(f.name)
		dest := filepath.Join(destDir, f.name)
		result := types.OrganizeResult{
			SourcePath:      src,
			DestinationPath: dest,
			Size:            f.size,
		}

		if err := moveFile(src, dest, logger); err != nil {
			result.Error = errors.FromOS("failed to move file", src, err)
			logger.With(log.F("file", f.name)).WithError(result.Error).Error("Move failed")
		} else {
			result.Moved = true
			logger.With(log.F("file", f.name)).Infof("Moved %s -> %s/", f.name, o.folder)
		}
		summary.Results = append(summary.Results, result)
	}

	logger.With(
		log.F("moved", summary.Moved()),
		log.F("failed", summary.Failed()),
		log.F("bytes", humanize.Bytes(uint64(summary.MovedBytes()))),
	).Infof("Organization complete, files moved to %s", o.folder)
	return summary
}

// scan lists the regular files directly under the base whose names match.
// Symlinks count when they resolve to a regular file.
func (o *Organizer) scan() ([]candidate, error) {
	if err := o.store.Err(); err != nil {
		return nil, err
	}

	base := o.store.Base()
	entries, err := os.ReadDir(base)
	if err != nil {
		return nil, errors.FromOS("cannot read base directory", base, err)
	}

	var files []candidate
	for _, entry := range entries {
		if entry.IsDir() || !o.matcher.Match(entry.Name()) {
			continue
		}

		info, err := os.Stat(filepath.Join(base, entry.Name()))
		if err != nil {
			// Gone or dangling; nothing to move.
			o.logger.Debugf("Skipping %s: %v", entry.Name(), err)
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}
		files = append(files, candidate{name: entry.Name(), size: info.Size()})
	}
	return files, nil
}

// moveFile renames src to dest, letting the host decide what happens when
// dest already exists. Renames across devices fall back to copy and remove.
func moveFile(src, dest string, logger log.Logging) error {
	err := os.Rename(src, dest)
	if err == nil {
		return nil
	}
	if errors.Is(err, syscall.EXDEV) {
		return copyAndRemove(src, dest, logger)
	}
	return err
}

// copyAndRemove moves src to dest in two steps. A symlink is recreated
// with the same target rather than copied through. If src cannot be
// removed afterwards the copy is taken back, so the file stays in exactly
// one place.
func copyAndRemove(src, dest string, logger log.Logging) error {
	info, err := os.Lstat(src)
	if err != nil {
		return err
	}

	if info.Mode()&os.ModeSymlink != 0 {
		target, err := os.Readlink(src)
		if err != nil {
			return err
		}
		if err := os.Symlink(target, dest); err != nil {
			return err
		}
		return removeSource(src, dest)
	}

	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	destFile, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(destFile, srcFile); err != nil {
		destFile.Close()
		os.Remove(dest)
		return err
	}
	if err := destFile.Close(); err != nil {
		os.Remove(dest)
		return err
	}
	if err := os.Chtimes(dest, info.ModTime(), info.ModTime()); err != nil {
		logger.Debugf("Cannot keep modification time of %s: %v", dest, err)
	}

	return removeSource(src, dest)
}

func removeSource(src, dest string) error {
	err := os.Remove(src)
	if err == nil {
		return nil
	}
	if rerr := os.Remove(dest); rerr != nil {
		return errors.Join(err, rerr)
	}
	return err
}

// Run builds an organizer for ext and performs a single pass.
func Run(s *store.Store, ext string, opts ...Option) (types.OrganizeSummary, error) {
	o, err := New(s, ext, opts...)
	if err != nil {
		return types.OrganizeSummary{Extension: ext}, err
	}
	return o.Organize(), nil
}

// RunAll performs one pass per extension, in order. An extension that
// cannot be organized is logged and skipped; its error is joined into the
// returned error while the remaining extensions still run.
func RunAll(s *store.Store, exts []string, opts ...Option) ([]types.OrganizeSummary, error) {
	var (
		summaries []types.OrganizeSummary
		errs      []error
		resolved  Organizer
	)
	resolved.apply(opts)

	for _, ext := range exts {
		summary, err := Run(s, ext, opts...)
		if err != nil {
			resolved.logger.With(log.F("extension", ext)).WithError(err).Error("Skipping extension")
			errs = append(errs, err)
			continue
		}
		summaries = append(summaries, summary)
	}
	return summaries, errors.Join(errs...)
}
