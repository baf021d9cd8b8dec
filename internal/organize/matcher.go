package organize

import (
	"strings"
	"unicode/utf8"

	"foldersort/internal/errors"

	"github.com/gobwas/glob"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FolderSuffix is appended to the upper-cased extension to name the
// destination folder.
const FolderSuffix = "_Files"

// Matcher reports whether a filename ends with an extension. The test is a
// literal, case-sensitive suffix comparison: ".docx" matches "a.docx" and
// "xdocx.docx" but not "a.DOCX" or "a.docx.bak".
type Matcher struct {
	ext  string
	glob glob.Glob
}

// NewMatcher compiles a matcher for ext. Every glob metacharacter in ext is
// quoted so only the literal text is compared.
func NewMatcher(ext string) (*Matcher, error) {
	if err := validateExtension(ext); err != nil {
		return nil, err
	}
	g, err := glob.Compile("*" + glob.QuoteMeta(ext))
	if err != nil {
		return nil, errors.NewConfigError("cannot compile extension matcher", ext, errors.InvalidConfig, err)
	}
	return &Matcher{ext: ext, glob: g}, nil
}

// Extension returns the suffix the matcher was built for.
func (m *Matcher) Extension() string {
	return m.ext
}

// Match reports whether name ends with the extension.
func (m *Matcher) Match(name string) bool {
	return m.glob.Match(name)
}

// DestinationFolder derives the folder name for ext: leading dots are
// dropped, the rest is upper-cased and "_Files" appended, so ".pdf"
// becomes "PDF_Files".
func DestinationFolder(ext string) string {
	return cases.Upper(language.Und).String(strings.TrimLeft(ext, ".")) + FolderSuffix
}

func validateExtension(ext string) error {
	if ext == "" {
		return errors.NewConfigError("extension must not be empty", "extension", errors.InvalidConfig, nil)
	}
	if strings.ContainsAny(ext, `/\`) {
		return errors.NewConfigError("extension must not contain path separators", ext, errors.InvalidConfig, nil)
	}
	if strings.Trim(ext, ".") == "" {
		return errors.NewConfigError("extension must contain more than dots", ext, errors.InvalidConfig, nil)
	}
	if !utf8.ValidString(ext) {
		return errors.NewConfigError("extension must be valid UTF-8", ext, errors.InvalidConfig, nil)
	}
	return nil
}
