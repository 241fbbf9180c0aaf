package loader

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"time"

	"github.com/goliatone/go-formschema/pkg/schema"
)

// Options configures a Loader.
type Options struct {
	// FileSystem backs schema.SourceKindFS sources.
	FileSystem fs.FS
	// HTTPClient enables URL sources. It is copied, never mutated.
	HTTPClient *http.Client
	// AllowHTTP enables URL sources with a default client when HTTPClient
	// is nil.
	AllowHTTP bool
	// RequestTimeout bounds each HTTP request when positive.
	RequestTimeout time.Duration
}

// Loader reads schema documents from files, an fs.FS, or HTTP.
type Loader struct {
	fs      fs.FS
	http    *http.Client
	timeout time.Duration
}

// New constructs a Loader from resolved options.
func New(options Options) *Loader {
	timeout := options.RequestTimeout

	var client *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		client = &clone
	case options.AllowHTTP:
		client = &http.Client{Timeout: timeout}
	}

	return &Loader{fs: options.FileSystem, http: client, timeout: timeout}
}

// Load fetches the payload behind src and wraps it in a Document.
func (l *Loader) Load(ctx context.Context, src schema.Source) (schema.Document, error) {
	if src == nil {
		return schema.Document{}, errors.New("loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case schema.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case schema.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case schema.SourceKindURL:
		if l.http == nil {
			return schema.Document{}, errors.New("loader: http support disabled")
		}
		data, err = loadHTTP(ctx, l.http, src.Location(), l.timeout)
	default:
		err = errors.New("loader: unsupported source kind")
	}
	if err != nil {
		return schema.Document{}, err
	}

	return schema.NewDocument(src, data)
}
