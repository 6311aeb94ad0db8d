package ingestion

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupportedExtension(t *testing.T) {
	supported := []string{"resume.pdf", "resume.DOCX", "page.html", "page.htm", "notes.txt", "readme.md", "old.doc"}
	for _, name := range supported {
		assert.True(t, SupportedExtension(name), name)
	}

	unsupported := []string{"resume.exe", "archive.zip", "image.png", "resume", "resume.pdf.bak"}
	for _, name := range unsupported {
		assert.False(t, SupportedExtension(name), name)
	}
}

func TestExtractTextPlain(t *testing.T) {
	got, err := ExtractText("resume.txt", []byte("Python developer\r\nwith   SQL  skills\r\n"))
	require.NoError(t, err)
	assert.Equal(t, "Python developer\nwith SQL skills", got)
}

func TestExtractTextMarkdown(t *testing.T) {
	got, err := ExtractText("resume.md", []byte("# Jane Doe\n\nPython developer"))
	require.NoError(t, err)
	assert.Contains(t, got, "Python developer")
}

func TestExtractTextHTML(t *testing.T) {
	html := `<html><head><style>body{color:red}</style>
<script>alert("x")</script></head>
<body><h1>Jane Doe</h1><p>Python and SQL developer</p></body></html>`

	got, err := ExtractText("resume.html", []byte(html))
	require.NoError(t, err)

	assert.Contains(t, got, "Jane Doe")
	assert.Contains(t, got, "Python and SQL developer")
	assert.NotContains(t, got, "alert")
	assert.NotContains(t, got, "color:red")
}

func TestExtractTextUnsupported(t *testing.T) {
	_, err := ExtractText("resume.xyz", []byte("data"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file type")
}

func TestExtractTextCorruptPDF(t *testing.T) {
	_, err := ExtractText("resume.pdf", []byte("this is not a pdf"))
	assert.Error(t, err)
}

func TestExtractTextCorruptDOCX(t *testing.T) {
	_, err := ExtractText("resume.docx", []byte("this is not a zip archive"))
	assert.Error(t, err)
}

func TestExtractFromReader(t *testing.T) {
	got, err := ExtractFromReader("resume.txt", strings.NewReader("Go engineer"))
	require.NoError(t, err)
	assert.Equal(t, "Go engineer", got)
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "collapses space runs",
			input: "Python    developer\twith\t\tGo",
			want:  "Python developer with Go",
		},
		{
			name:  "normalizes line endings",
			input: "line one\r\nline two\rline three",
			want:  "line one\nline two\nline three",
		},
		{
			name:  "reduces blank line runs",
			input: "section one\n\n\n\n\nsection two",
			want:  "section one\n\nsection two",
		},
		{
			name:  "trims surrounding whitespace",
			input: "  \n  content  \n  ",
			want:  "content",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.input))
		})
	}
}

func TestStripXMLTags(t *testing.T) {
	got := stripXMLTags(`<w:p><w:t>Python</w:t></w:p><w:p><w:t>developer</w:t></w:p>`)
	assert.Contains(t, got, "Python")
	assert.Contains(t, got, "developer")
	assert.NotContains(t, got, "<")
	assert.NotContains(t, got, "w:t")
}
