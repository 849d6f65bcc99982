package xml

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/lmorillas/amara/dom"
	"github.com/lmorillas/amara/iri"
)

// Loader retrieves and parses XML documents by URI. http and https
// references are fetched over the network; file URIs and plain paths are
// read from the filesystem. The parsed document's URI is set to the source
// so base-URI resolution works from the root.
type Loader struct {
	httpClient *http.Client
	userAgent  string
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithTimeout sets the request timeout for network retrievals.
func WithTimeout(d time.Duration) LoaderOption {
	return func(l *Loader) {
		l.httpClient.Timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with network retrievals.
func WithUserAgent(ua string) LoaderOption {
	return func(l *Loader) {
		l.userAgent = ua
	}
}

// NewLoader creates a Loader with the given options.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		userAgent:  "amara/1.0",
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load retrieves the document named by source and parses it.
func (l *Loader) Load(ctx context.Context, source string) (*dom.Document, error) {
	scheme := iri.GetScheme(source)
	switch scheme {
	case "http", "https":
		return l.loadHTTP(ctx, source)
	case "file":
		return l.loadFile(strings.TrimPrefix(source, "file://"), source)
	case "":
		uri, err := filePathToURI(source)
		if err != nil {
			return nil, err
		}
		return l.loadFile(source, uri)
	default:
		return nil, fmt.Errorf("xml: unsupported scheme %q", scheme)
	}
}

func (l *Loader) loadHTTP(ctx context.Context, source string) (*dom.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("xml: invalid source %q: %w", source, err)
	}
	req.Header.Set("User-Agent", l.userAgent)
	req.Header.Set("Accept", "application/xml, text/xml")

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("xml: fetching %q: %w", source, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("xml: fetching %q: HTTP %d", source, resp.StatusCode)
	}

	doc, err := Parse(resp.Body)
	if err != nil {
		return nil, err
	}
	// Redirects may have moved the document; record where it came from.
	doc.SetURI(iri.StripFragment(resp.Request.URL.String()))
	return doc, nil
}

func (l *Loader) loadFile(path, uri string) (*dom.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("xml: opening %q: %w", path, err)
	}
	defer f.Close()

	doc, err := Parse(f)
	if err != nil {
		return nil, err
	}
	doc.SetURI(uri)
	return doc, nil
}

// filePathToURI converts a filesystem path into a file URI so relative
// references inside the document can be absolutized against it.
func filePathToURI(path string) (string, error) {
	abs := path
	if !strings.HasPrefix(path, "/") {
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		abs = wd + "/" + path
	}
	return "file://" + abs, nil
}
