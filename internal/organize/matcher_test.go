package organize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatcher(t *testing.T) {
	tests := []struct {
		ext   string
		name  string
		match bool
	}{
		{".docx", "a.docx", true},
		{".docx", "xweird.docx", true},
		{".docx", ".docx", true},
		{".docx", "a.DOCX", false},
		{".docx", "report_v.docx.bak", false},
		{".docx", "notdocx", false},
		{"docx", "notdocx", true},
		{".tar.gz", "backup.tar.gz", true},
		{".tar.gz", "backup.gz", false},
		{".[1]", "file.[1]", true},
		{".[1]", "file.1", false},
		{".*", "file.*", true},
		{".*", "file.txt", false},
		{".{a,b}", "x.{a,b}", true},
		{".{a,b}", "x.a", false},
		{".日本", "メモ.日本", true},
		{".日本", "メモ.日", false},
		{".txt", "caf\xe9.txt", true},
	}

	for _, tt := range tests {
		t.Run(tt.ext+" "+tt.name, func(t *testing.T) {
			m, err := NewMatcher(tt.ext)
			require.NoError(t, err)
			assert.Equal(t, tt.match, m.Match(tt.name))
		})
	}
}

func TestMatcherRejectsInvalidUTF8(t *testing.T) {
	m, err := NewMatcher(".x\xff")
	assert.Nil(t, m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "valid UTF-8")
}

func TestDestinationFolder(t *testing.T) {
	tests := map[string]string{
		".pdf":    "PDF_Files",
		".docx":   "DOCX_Files",
		"xlsx":    "XLSX_Files",
		"..txt":   "TXT_Files",
		".tar.gz": "TAR.GZ_Files",
		".straße": "STRASSE_Files",
	}
	for ext, want := range tests {
		assert.Equal(t, want, DestinationFolder(ext), "extension %q", ext)
	}
}

func TestPresets(t *testing.T) {
	p := NewPresets(nil)
	assert.Equal(t, []string{"excel", "pdf", "text", "word"}, p.Names())
	assert.Equal(t, []string{".xlsx", ".pdf", ".txt", ".docx"}, p.Extensions())

	ext, ok := p.Lookup("Word")
	assert.True(t, ok)
	assert.Equal(t, ".docx", ext)

	_, ok = p.Lookup("images")
	assert.False(t, ok)

	custom := NewPresets(map[string]string{"Images": ".png", "excel": "", "text": ".md"})
	assert.Equal(t, []string{"images", "pdf", "text", "word"}, custom.Names())
	ext, _ = custom.Lookup("text")
	assert.Equal(t, ".md", ext)

	// the defaults are left untouched
	assert.Equal(t, ".xlsx", DefaultPresets["excel"])
}
