// Package store manages the folders that live directly under one base
// directory.
package store

import (
	"os"
	"path/filepath"
	"strings"

	"foldersort/internal/errors"
	"foldersort/internal/log"
)

const dirPerm = 0755

// Store owns a base directory and performs folder CRUD inside it.
type Store struct {
	base    string
	logger  log.Logging
	initErr error
}

// Option configures a Store.
type Option func(*Store)

// WithLogger routes store messages to l instead of the package logger.
func WithLogger(l log.Logging) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// New binds a Store to base, creating the directory and any missing
// parents. A failure to create it is logged and kept in Err; the store is
// still returned.
func New(base string, opts ...Option) *Store {
	s := &Store{
		base:   filepath.Clean(base),
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.initErr = s.ensureBase()
	return s
}

func (s *Store) ensureBase() error {
	logger := s.logger.With(log.F("base", s.base))

	info, err := os.Stat(s.base)
	switch {
	case err == nil && info.IsDir():
		logger.Debug("Base directory ready")
		return nil
	case err == nil:
		ferr := errors.NewFileError("base path is not a directory", s.base, errors.InvalidPath, nil)
		logger.WithError(ferr).Error("Base directory unusable")
		return ferr
	case !os.IsNotExist(err):
		ferr := errors.FromOS("cannot access base directory", s.base, err)
		logger.WithError(ferr).Error("Base directory unusable")
		return ferr
	}

	if err := os.MkdirAll(s.base, dirPerm); err != nil {
		ferr := errors.NewFileError("cannot create base directory", s.base, errors.FileCreateFailed, err)
		logger.WithError(ferr).Error("Base directory unusable")
		return ferr
	}
	logger.Info("Created base directory")
	return nil
}

// Base returns the cleaned base directory path.
func (s *Store) Base() string {
	return s.base
}

// Err returns the error raised while preparing the base directory, if any.
func (s *Store) Err() error {
	return s.initErr
}

// Path joins name onto the base directory.
func (s *Store) Path(name string) string {
	return filepath.Join(s.base, name)
}

// Create makes base/name including intermediate folders. created is false
// when the folder was already there, which is not an error.
func (s *Store) Create(name string) (created bool, err error) {
	logger := s.logger.With(log.F("folder", name))

	path, err := s.resolve(name)
	if err != nil {
		logger.WithError(err).Error("Cannot create folder")
		return false, err
	}

	info, statErr := os.Stat(path)
	if statErr == nil {
		if info.IsDir() {
			logger.Info("Folder already exists")
			return false, nil
		}
		err = errors.NewFileError("path exists and is not a directory", path, errors.FileExists, nil)
		logger.WithError(err).Error("Cannot create folder")
		return false, err
	}

	if err := os.MkdirAll(path, dirPerm); err != nil {
		ferr := errors.FromOS("cannot create folder", path, err)
		logger.WithError(ferr).Error("Cannot create folder")
		return false, ferr
	}

	logger.Info("Created folder")
	return true, nil
}

// List returns the names of the directories directly under the base, in
// the order the filesystem reports them. On failure it returns an empty
// slice together with the error.
func (s *Store) List() ([]string, error) {
	folders := []string{}

	if s.initErr != nil {
		s.logger.WithError(s.initErr).Error("Cannot list folders")
		return folders, s.initErr
	}

	entries, err := os.ReadDir(s.base)
	if err != nil {
		ferr := errors.FromOS("cannot read base directory", s.base, err)
		s.logger.WithError(ferr).Error("Cannot list folders")
		return folders, ferr
	}

	for _, entry := range entries {
		if s.isDir(entry) {
			folders = append(folders, entry.Name())
		}
	}

	s.logger.With(log.F("base", s.base), log.F("count", len(folders))).Info("Listed folders")
	for _, name := range folders {
		s.logger.Debugf("- %s", name)
	}
	return folders, nil
}

// isDir follows symlinks, matching what a plain stat of the entry reports.
func (s *Store) isDir(entry os.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(s.Path(entry.Name()))
	return err == nil && info.IsDir()
}

// Delete removes base/name and everything below it. deleted is false when
// the folder did not exist, which is not an error.
func (s *Store) Delete(name string) (deleted bool, err error) {
	logger := s.logger.With(log.F("folder", name))

	path, err := s.resolve(name)
	if err != nil {
		logger.WithError(err).Error("Cannot delete folder")
		return false, err
	}

	info, statErr := os.Lstat(path)
	if os.IsNotExist(statErr) {
		logger.Info("Folder not found")
		return false, nil
	}
	if statErr != nil {
		ferr := errors.FromOS("cannot access folder", path, statErr)
		logger.WithError(ferr).Error("Cannot delete folder")
		return false, ferr
	}
	if !info.IsDir() {
		ferr := errors.NewFileError("not a directory", path, errors.InvalidPath, nil)
		logger.WithError(ferr).Error("Cannot delete folder")
		return false, ferr
	}

	if err := os.RemoveAll(path); err != nil {
		ferr := errors.FromOS("cannot delete folder", path, err)
		logger.WithError(ferr).Error("Cannot delete folder")
		return false, ferr
	}

	logger.Info("Deleted folder")
	return true, nil
}

// resolve turns a folder name into a path under the base, refusing names
// that would address the base itself or anything outside it.
func (s *Store) resolve(name string) (string, error) {
	if s.initErr != nil {
		return "", s.initErr
	}

	clean := filepath.Clean(name)
	if name == "" || clean == "." || filepath.IsAbs(name) || filepath.VolumeName(name) != "" {
		return "", errors.NewFileError("invalid folder name", name, errors.InvalidPath, nil)
	}
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", errors.NewFileError("folder name escapes base directory", name, errors.InvalidPath, nil)
	}
	return filepath.Join(s.base, clean), nil
}
