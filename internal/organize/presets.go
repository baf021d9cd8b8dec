package organize

import (
	"sort"
	"strings"
)

// DefaultPresets names the extensions foldersort knows out of the box.
var DefaultPresets = map[string]string{
	"word":  ".docx",
	"text":  ".txt",
	"pdf":   ".pdf",
	"excel": ".xlsx",
}

// Presets maps a label to an extension. Labels are case-insensitive.
type Presets map[string]string

// NewPresets returns the defaults overlaid with extra. Entries in extra
// with an empty extension remove that preset.
func NewPresets(extra map[string]string) Presets {
	p := make(Presets, len(DefaultPresets)+len(extra))
	for label, ext := range DefaultPresets {
		p[label] = ext
	}
	for label, ext := range extra {
		label = strings.ToLower(label)
		if ext == "" {
			delete(p, label)
			continue
		}
		p[label] = ext
	}
	return p
}

// Lookup returns the extension for label.
func (p Presets) Lookup(label string) (string, bool) {
	ext, ok := p[strings.ToLower(label)]
	return ext, ok
}

// Names returns the preset labels in alphabetical order.
func (p Presets) Names() []string {
	names := make([]string, 0, len(p))
	for label := range p {
		names = append(names, label)
	}
	sort.Strings(names)
	return names
}

// Extensions returns every preset extension, ordered by label.
func (p Presets) Extensions() []string {
	names := p.Names()
	exts := make([]string, 0, len(names))
	for _, name := range names {
		exts = append(exts, p[name])
	}
	return exts
}
