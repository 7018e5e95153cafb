package ingestion

import (
	"archive/zip"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const documentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:r><w:t>Python Developer</w:t></w:r></w:p>
<w:p><w:r><w:t>Led</w:t></w:r><w:r><w:t xml:space="preserve"> Docker migrations</w:t></w:r></w:p>
<w:p><w:r><w:t>SQL</w:t><w:tab/><w:t>AWS</w:t></w:r></w:p>
</w:body>
</w:document>`

func buildDOCX(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	files := []struct{ name, body string }{
		{"[Content_Types].xml", `<?xml version="1.0"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"/>`},
		{"word/document.xml", documentXML},
		{"word/_rels/document.xml.rels", `<?xml version="1.0"?><Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"/>`},
	}
	for _, f := range files {
		w, err := zw.Create(f.name)
		require.NoError(t, err)
		_, err = w.Write([]byte(f.body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestFromFile_PlainText(t *testing.T) {
	path := writeFile(t, "resume.txt", []byte("Jane Doe\r\n\r\n\r\n\r\nDeveloped   Python services"))

	doc, err := FromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe\n\nDeveloped Python services", doc.Text)
	assert.Equal(t, path, doc.Metadata.Source)
	assert.Contains(t, doc.Metadata.MIMEType, "text/plain")
	assert.Equal(t, computeHash(doc.Text), doc.Metadata.Hash)
}

func TestFromFile_Markdown(t *testing.T) {
	path := writeFile(t, "job.md", []byte("# Backend Engineer\n\n## Requirements\n- Go\n- Kubernetes\n"))

	doc, err := FromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# Backend Engineer\n\n## Requirements\n- Go\n- Kubernetes", doc.Text)
}

func TestFromFile_HTML(t *testing.T) {
	html := `<!DOCTYPE html><html><head><title>Data Engineer</title></head><body>
		<nav>Home | Jobs</nav>
		<main><h1>Data Engineer</h1><ul><li>SQL</li><li>Python</li></ul></main>
		<footer>Copyright</footer></body></html>`
	path := writeFile(t, "job.html", []byte(html))

	doc, err := FromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "Data Engineer\nSQL\nPython", doc.Text)
	assert.Equal(t, "Data Engineer", doc.Title)
	assert.Contains(t, doc.Metadata.MIMEType, "text/html")
}

func TestFromFile_NotFound(t *testing.T) {
	doc, err := FromFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.Nil(t, doc)
	assert.Contains(t, err.Error(), "file not found")
}

func TestFromBytes_Empty(t *testing.T) {
	doc, err := FromBytes([]byte("  \n\t "), "blank.txt")
	require.NoError(t, err)
	assert.Empty(t, doc.Text)
	assert.Equal(t, 0, doc.Metadata.Chars)
}

func TestFromBytes_Unsupported(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

	_, err := FromBytes(png, "photo.png")
	require.Error(t, err)

	var unsupported *UnsupportedTypeError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "image/png", unsupported.MIMEType)
	assert.Equal(t, "photo.png", unsupported.Source)
}

func TestFromBytes_CorruptPDF(t *testing.T) {
	_, err := FromBytes([]byte("%PDF-1.4\nthis is not really a pdf"), "resume.pdf")
	require.Error(t, err)

	var extractionErr *ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, "pdf", extractionErr.Format)
}

func TestExtractDOCXText(t *testing.T) {
	raw, err := extractDOCXText(buildDOCX(t))
	require.NoError(t, err)

	assert.Equal(t, "Python Developer\nLed Docker migrations\nSQL AWS", CleanText(raw))
}

func TestWordMLText_Malformed(t *testing.T) {
	_, err := wordMLText("<w:document><w:body>")
	assert.Error(t, err)
}

func TestFromURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><head><title>Platform Engineer</title></head><body>
			<div class="sidebar">Similar jobs</div>
			<div class="job-description"><p>Kubernetes and Docker required.</p></div>
			<form class="application-form">Upload resume</form>
			</body></html>`))
	}))
	defer server.Close()

	doc, err := FromURL(context.Background(), server.URL, nil)
	require.NoError(t, err)

	assert.Equal(t, "Kubernetes and Docker required.", doc.Text)
	assert.Equal(t, "Platform Engineer", doc.Title)
	assert.Equal(t, "unknown", doc.Metadata.Platform)
	assert.Equal(t, server.URL, doc.Metadata.Source)
}

func TestFromURL_PlainTextResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("Looking for Python and SQL"))
	}))
	defer server.Close()

	doc, err := FromURL(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, "Looking for Python and SQL", doc.Text)
	assert.Empty(t, doc.Metadata.Platform)
}

func TestFromURL_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusGone)
	}))
	defer server.Close()

	_, err := FromURL(context.Background(), server.URL, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "410")
}
