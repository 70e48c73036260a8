package pokemon

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/zjrosen/pokecard/internal/cachemanager"
	"github.com/zjrosen/pokecard/internal/log"
)

// Format identifies a record file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

var (
	// ErrUnsupportedFormat is returned for file extensions with no decoder.
	ErrUnsupportedFormat = errors.New("unsupported record format")
	// ErrEmptyRecord is returned when the input holds no data at all.
	ErrEmptyRecord = errors.New("empty record")
)

// FormatFromPath picks a Format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Decode reads one record from r.
func Decode(r io.Reader, format Format) (Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Record{}, fmt.Errorf("reading record: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return Record{}, ErrEmptyRecord
	}

	var rec Record
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &rec)
	case FormatYAML:
		err = yaml.Unmarshal(data, &rec)
	case FormatTOML:
		_, err = toml.Decode(string(data), &rec)
	default:
		return Record{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return Record{}, fmt.Errorf("decoding %s record: %w", format, err)
	}
	return rec, nil
}

// ReadFile decodes the record stored at path.
func ReadFile(path string) (Record, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Record{}, err
	}

	f, err := os.Open(path) //nolint:gosec // G304: path is a user supplied record file
	if err != nil {
		return Record{}, fmt.Errorf("opening record: %w", err)
	}
	defer func() { _ = f.Close() }()

	rec, err := Decode(f, format)
	if err != nil {
		log.ErrorErr(log.CatLoad, "Failed to decode record", err, "path", path)
		return Record{}, fmt.Errorf("%s: %w", path, err)
	}
	log.Debug(log.CatLoad, "Decoded record", "path", path, "name", rec.Name, "types", len(rec.Types))
	return rec, nil
}

// DefaultCacheTTL is how long a decoded record stays cached.
const DefaultCacheTTL = 10 * time.Minute

// Loader reads record files through a cache keyed by path, size and
// modification time, so an edited file is decoded again on the next Load.
type Loader struct {
	cache *cachemanager.ReadThroughCache[string, Record, string]
	ttl   time.Duration
}

// NewLoader returns a Loader backed by cache. A nil cache disables caching.
func NewLoader(cache cachemanager.CacheManager[string, Record]) *Loader {
	readFile := func(_ context.Context, path string) (Record, error) {
		return ReadFile(path)
	}
	return &Loader{
		cache: cachemanager.NewReadThroughCache(cache, readFile, cache == nil),
		ttl:   DefaultCacheTTL,
	}
}

// NewCachedLoader returns a Loader with an in-memory cache.
func NewCachedLoader() *Loader {
	return NewLoader(cachemanager.NewInMemoryCacheManager[string, Record](
		"records", DefaultCacheTTL, cachemanager.DefaultCleanupInterval))
}

// Load returns the record at path, decoding it only if the file changed
// since it was last cached.
func (l *Loader) Load(ctx context.Context, path string) (Record, error) {
	key, err := cacheKey(path)
	if err != nil {
		return Record{}, err
	}
	return l.cache.Get(ctx, key, path, l.ttl)
}

// Reload decodes path unconditionally and replaces the cached copy.
func (l *Loader) Reload(ctx context.Context, path string) (Record, error) {
	key, err := cacheKey(path)
	if err != nil {
		return Record{}, err
	}
	return l.cache.Refresh(ctx, key, path, l.ttl)
}

// LoadAll loads every path in order, stopping at the first error.
func (l *Loader) LoadAll(ctx context.Context, paths []string) ([]Record, error) {
	recs := make([]Record, 0, len(paths))
	for _, p := range paths {
		rec, err := l.Load(ctx, p)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

func cacheKey(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("opening record: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return fmt.Sprintf("%s|%d|%d", abs, info.Size(), info.ModTime().UnixNano()), nil
}
