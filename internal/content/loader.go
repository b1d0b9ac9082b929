package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// maxDocumentSize bounds how much of a remote document is read.
const maxDocumentSize = 8 << 20

// Source loads the content document. Load is the only blocking step of a
// render pass.
type Source interface {
	Load(ctx context.Context) (*Document, error)
	// Raw returns the undecoded document bytes.
	Raw(ctx context.Context) ([]byte, error)
	// String names the source for logs.
	String() string
}

// Open returns a Source for a file path or an http(s) URL. log may be nil.
func Open(location string, log *zap.Logger) Source {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return &HTTPSource{URL: location, Client: http.DefaultClient, Log: log}
	}
	return &FileSource{Path: location, Log: log}
}

// FileSource reads the document from disk on every load.
type FileSource struct {
	Path string
	// Log receives skipped fields at debug level.
	Log *zap.Logger
}

func (s *FileSource) String() string { return s.Path }

// Raw implements Source.
func (s *FileSource) Raw(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("reading content %s: %w", s.Path, err)
	}
	return data, nil
}

// Load implements Source.
func (s *FileSource) Load(ctx context.Context) (*Document, error) {
	data, err := s.Raw(ctx)
	if err != nil {
		return nil, err
	}
	return decode(data, formatOf(s.Path), s.Log)
}

// HTTPSource fetches the document once per load. Non-2xx responses are load
// failures. There is no retry.
type HTTPSource struct {
	URL    string
	Client *http.Client
	Log    *zap.Logger
}

func (s *HTTPSource) String() string { return s.URL }

// Raw implements Source.
func (s *HTTPSource) Raw(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("building content request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching content %s: %w", s.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{URL: s.URL, Code: resp.StatusCode}
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return nil, fmt.Errorf("reading content %s: %w", s.URL, err)
	}
	return data, nil
}

// Load implements Source.
func (s *HTTPSource) Load(ctx context.Context) (*Document, error) {
	data, err := s.Raw(ctx)
	if err != nil {
		return nil, err
	}
	return decode(data, formatOf(s.URL), s.Log)
}

// MemorySource replays a document that was loaded once. Err, when set, is
// returned by every call.
type MemorySource struct {
	Name string
	Doc  *Document
	Data []byte
	Err  error
}

func (s *MemorySource) String() string { return s.Name }

// Load implements Source.
func (s *MemorySource) Load(ctx context.Context) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.Doc, s.Err
}

// Raw implements Source.
func (s *MemorySource) Raw(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.Data, s.Err
}

// Snapshot loads src once. The load error, if any, is kept in the returned
// source rather than returned.
func Snapshot(ctx context.Context, src Source) *MemorySource {
	snap := &MemorySource{Name: src.String()}
	data, err := src.Raw(ctx)
	if err != nil {
		snap.Err = err
		return snap
	}
	doc, err := decode(data, formatOf(src.String()), loggerOf(src))
	if err != nil {
		snap.Err = err
		return snap
	}
	snap.Doc, snap.Data = doc, data
	return snap
}

// StatusError reports a non-success response for a remote document.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("failed to load %s: status %d", e.URL, e.Code)
}

// Format is the encoding of a content document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func formatOf(location string) Format {
	if i := strings.IndexAny(location, "?#"); i >= 0 {
		location = location[:i]
	}
	switch strings.ToLower(filepath.Ext(location)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

func loggerOf(src Source) *zap.Logger {
	switch s := src.(type) {
	case *FileSource:
		return s.Log
	case *HTTPSource:
		return s.Log
	}
	return nil
}

// Decode parses a document. Syntax errors fail; mistyped fields do not.
func Decode(data []byte, format Format) (*Document, error) {
	return decode(data, format, nil)
}

// decode is Decode with a logger for the fields that were skipped.
func decode(data []byte, format Format, log *zap.Logger) (*Document, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if format == FormatYAML {
		converted, err := yamlToJSON(data)
		if err != nil {
			return nil, err
		}
		data = converted
	}

	doc := &Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return nil, fmt.Errorf("decoding content: %w", err)
		}
		if typeErr.Field == "" {
			// the root itself is not an object
			log.Debug("content root is not an object", zap.String("type", typeErr.Value))
			return &Document{}, nil
		}
		log.Debug("skipping mistyped content field",
			zap.String("field", typeErr.Field),
			zap.String("type", typeErr.Value))
	}
	return doc, nil
}

func yamlToJSON(data []byte) ([]byte, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("decoding yaml content: %w", err)
	}
	out, err := json.Marshal(normalizeYAML(v))
	if err != nil {
		return nil, fmt.Errorf("converting yaml content: %w", err)
	}
	return out, nil
}

// normalizeYAML turns map[any]any (which encoding/json rejects) into
// map[string]any, recursively.
func normalizeYAML(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, val := range x {
			x[k] = normalizeYAML(val)
		}
		return x
	case map[any]any:
		m := make(map[string]any, len(x))
		for k, val := range x {
			m[fmt.Sprint(k)] = normalizeYAML(val)
		}
		return m
	case []any:
		for i, val := range x {
			x[i] = normalizeYAML(val)
		}
		return x
	}
	return v
}
