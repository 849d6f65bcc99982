package xml

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoaderHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "amara/1.0", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/xml")
		w.Write([]byte(`<root><child/></root>`))
	}))
	defer srv.Close()

	loader := NewLoader(WithTimeout(5 * time.Second))
	doc, err := loader.Load(context.Background(), srv.URL+"/doc.xml")
	require.NoError(t, err)

	assert.Equal(t, srv.URL+"/doc.xml", doc.URI())
	require.NotNil(t, doc.DocumentElement())
	assert.Equal(t, "root", doc.DocumentElement().QualifiedName())
}

func TestLoaderHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	loader := NewLoader()
	_, err := loader.Load(context.Background(), srv.URL+"/missing.xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
}

func TestLoaderFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.xml")
	require.NoError(t, os.WriteFile(path, []byte(`<root xml:base="sub/"/>`), 0o644))

	loader := NewLoader()
	doc, err := loader.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "file://"+path, doc.URI())

	base, err := doc.DocumentElement().AsNode().BaseURI()
	require.NoError(t, err)
	assert.Equal(t, "file://"+dir+"/sub/", base)
}

func TestLoaderUnsupportedScheme(t *testing.T) {
	loader := NewLoader()
	_, err := loader.Load(context.Background(), "gopher://example.org/doc.xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported scheme")
}
