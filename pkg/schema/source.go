package schema

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// Source identifies where a schema document came from so loaders can read
// files, fs.FS entries, or URLs behind one interface.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
	SourceKindURL  SourceKind = "url"
)

type location struct {
	kind SourceKind
	loc  string
}

func (l location) Kind() SourceKind { return l.kind }
func (l location) Location() string { return l.loc }

// SourceFromFile points at a path on disk.
func SourceFromFile(path string) Source {
	return location{kind: SourceKindFile, loc: filepath.Clean(path)}
}

// SourceFromFS points at a named entry inside an fs.FS.
func SourceFromFS(name string) Source {
	return location{kind: SourceKindFS, loc: name}
}

// SourceFromURL points at an HTTP(S) resource. It panics on malformed input
// so configuration mistakes surface early; use ParseSource for user input.
func SourceFromURL(raw string) Source {
	src, err := urlSource(raw)
	if err != nil {
		panic(err.Error())
	}
	return src
}

// ParseSource maps a CLI style argument onto a Source: http(s) URLs become
// URL sources, anything else is a file path.
func ParseSource(raw string) (Source, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("schema: empty source")
	}
	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		return urlSource(trimmed)
	}
	return SourceFromFile(trimmed), nil
}

func urlSource(raw string) (Source, error) {
	if raw == "" {
		return nil, fmt.Errorf("schema: empty URL source")
	}
	if _, err := url.ParseRequestURI(raw); err != nil {
		return nil, fmt.Errorf("schema: invalid URL %q: %v", raw, err)
	}
	return location{kind: SourceKindURL, loc: raw}, nil
}
