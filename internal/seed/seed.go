// Package seed creates sample files in a base directory so an organizing
// pass has something to work on.
package seed

import (
	"fmt"
	"os"
	"path/filepath"

	"foldersort/internal/errors"
	"foldersort/internal/log"
)

// DefaultFiles is one sample per default preset.
var DefaultFiles = []string{"prueba.docx", "ejemplo.pdf", "notas.txt", "datos.xlsx"}

// Result reports what happened to each requested file.
type Result struct {
	Created  []string
	Existing []string
	Failed   map[string]error
}

// Files writes each named file into dir unless it already exists. Names
// must be plain file names. Failures are collected per file.
func Files(dir string, names []string, logger log.Logging) Result {
	if logger == nil {
		logger = log.Default()
	}
	if len(names) == 0 {
		names = DefaultFiles
	}

	res := Result{Failed: map[string]error{}}
	for _, name := range names {
		l := logger.With(log.F("file", name))

		if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
			err := errors.NewFileError("sample file name must be a plain name", name, errors.InvalidPath, nil)
			l.WithError(err).Error("Cannot create sample file")
			res.Failed[name] = err
			continue
		}

		path := filepath.Join(dir, name)
		f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
		if os.IsExist(err) {
			l.Info("Sample file already exists")
			res.Existing = append(res.Existing, name)
			continue
		}
		if err != nil {
			ferr := errors.FromOS("cannot create sample file", path, err)
			l.WithError(ferr).Error("Cannot create sample file")
			res.Failed[name] = ferr
			continue
		}

		_, werr := fmt.Fprintf(f, "This is a sample file: %s\n", name)
		if cerr := f.Close(); werr == nil {
			werr = cerr
		}
		if werr != nil {
			ferr := errors.FromOS("cannot write sample file", path, werr)
			l.WithError(ferr).Error("Cannot create sample file")
			res.Failed[name] = ferr
			continue
		}

		l.Info("Created sample file")
		res.Created = append(res.Created, name)
	}
	return res
}
