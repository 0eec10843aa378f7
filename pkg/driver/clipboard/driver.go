package clipboard

import (
	"context"
	"net/url"
	"path/filepath"
	"strings"

	"dlctl/pkg/driver"
)

// Driver places file references on the system clipboard, the same payload a file
// manager produces for "copy".
type Driver interface {
	CopyFile(ctx context.Context, path string) error
}

// Get returns the active clipboard driver
func Get(ctx context.Context) (Driver, error) {
	return driver.Get[Driver](ctx)
}

// CopyFile copies a reference to path using the active driver
func CopyFile(ctx context.Context, path string) error {
	d, err := Get(ctx)
	if err != nil {
		return err
	}
	return d.CopyFile(ctx, path)
}

// FileURI converts an absolute path to a file:// URI as used in text/uri-list.
func FileURI(path string) string {
	p := filepath.ToSlash(path)
	if !strings.HasPrefix(p, "/") {
		// C:/Users/... -> /C:/Users/...
		p = "/" + p
	}
	u := url.URL{Scheme: "file", Path: p}
	return u.String()
}

// URIList renders paths as a text/uri-list payload.
func URIList(paths ...string) string {
	var b strings.Builder
	for _, p := range paths {
		b.WriteString(FileURI(p))
		b.WriteString("\r\n")
	}
	return b.String()
}
