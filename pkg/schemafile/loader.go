package schemafile

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/goliatone/go-formschema/internal/loader"
	"github.com/goliatone/go-formschema/pkg/schema"
)

// Option configures a Loader.
type Option func(*Loader)

// WithFS supplies the file system used for schema.SourceKindFS sources.
func WithFS(fsys fs.FS) Option {
	return func(l *Loader) {
		l.options.FileSystem = fsys
	}
}

// WithHTTPClient enables URL sources using the given client.
func WithHTTPClient(client *http.Client) Option {
	return func(l *Loader) {
		l.options.HTTPClient = client
	}
}

// WithRequestTimeout bounds each remote fetch.
func WithRequestTimeout(timeout time.Duration) Option {
	return func(l *Loader) {
		l.options.RequestTimeout = timeout
	}
}

// WithStrictKinds rejects unknown kinds and unexpected keys instead of
// passing them through.
func WithStrictKinds(strict bool) Option {
	return func(l *Loader) {
		l.strict = strict
	}
}

// Loader reads schema documents and decodes them into schema trees.
type Loader struct {
	options loader.Options
	strict  bool
	docs    *loader.Loader
}

// New constructs a Loader applying the provided options.
func New(options ...Option) *Loader {
	l := &Loader{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(l)
	}
	l.docs = loader.New(l.options)
	return l
}

// Load fetches src and decodes it.
func (l *Loader) Load(ctx context.Context, src schema.Source) (*schema.Node, error) {
	doc, err := l.docs.Load(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("schemafile: %w", err)
	}
	return l.Decode(doc)
}

// Decode parses an already loaded document.
func (l *Loader) Decode(doc schema.Document) (*schema.Node, error) {
	node, err := decode(doc.Raw(), doc.Format(), l.strict)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, doc.Location())
	}
	return node, nil
}

// Store holds the schemas found by LoadFS keyed by path without extension.
type Store struct {
	schemas map[string]*schema.Node
}

// LoadFS walks fsys and decodes every .json, .yaml and .yml file. A nil
// fsys yields an empty store.
func LoadFS(ctx context.Context, fsys fs.FS, options ...Option) (*Store, error) {
	store := &Store{schemas: make(map[string]*schema.Node)}
	if fsys == nil {
		return store, nil
	}

	l := New(append([]Option{WithFS(fsys)}, options...)...)
	err := fs.WalkDir(fsys, ".", func(name string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isSchemaFile(name) {
			return nil
		}

		key := strings.TrimSuffix(name, path.Ext(name))
		if _, exists := store.schemas[key]; exists {
			return fmt.Errorf("schemafile: duplicate schema %q (file %s)", key, name)
		}

		node, err := l.Load(ctx, schema.SourceFromFS(name))
		if err != nil {
			return err
		}
		store.schemas[key] = node
		return nil
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// Schema returns the named schema.
func (s *Store) Schema(name string) (*schema.Node, bool) {
	if s == nil {
		return nil, false
	}
	node, ok := s.schemas[name]
	return node, ok
}

// Names lists stored schema names in sorted order.
func (s *Store) Names() []string {
	if s == nil || len(s.schemas) == 0 {
		return nil
	}
	names := make([]string, 0, len(s.schemas))
	for name := range s.schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Empty reports whether the store holds no schemas.
func (s *Store) Empty() bool {
	return s == nil || len(s.schemas) == 0
}

func isSchemaFile(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
