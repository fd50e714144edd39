package storage

import (
	"bytes"
	"context"
	"os"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"careeriq/models"
	"careeriq/utils"
)

// Loader reads raw exports from disk through a SnapshotCache.
type Loader struct {
	cache   *SnapshotCache
	logger  *utils.Logger
	workers int

	mu      sync.Mutex
	lastKey map[string]string
}

// NewLoader creates a Loader that reads up to workers files at once.
func NewLoader(cache *SnapshotCache, logger *utils.Logger, workers int) *Loader {
	if cache == nil {
		cache = NewSnapshotCache()
	}
	return &Loader{
		cache:   cache,
		logger:  logger,
		workers: workers,
		lastKey: make(map[string]string),
	}
}

// Load reads one source. Unchanged content is served from the cache; when a
// path's content changes, the entry for its previous content is evicted.
func (l *Loader) Load(ctx context.Context, src Source) ([]models.RawListing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	profileName := src.Profile
	if profileName == "" {
		profileName = DefaultProfile
	}
	profile, err := LookupProfile(profileName)
	if err != nil {
		return nil, err
	}

	log := l.logger.With(zap.String("source", src.Path), zap.String("profile", profile.Name))

	content, err := os.ReadFile(src.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "read source %q", src.Path)
	}

	key := ContentKey(profile.Name, content)
	l.rememberKey(src.Path, key)

	if rows, ok := l.cache.Get(key); ok {
		log.Debug("[loader] Cache hit (%d rows)", len(rows))
		return rows, nil
	}

	rows, err := ReadRaw(bytes.NewReader(content), profile)
	if err != nil {
		return nil, errors.Wrapf(err, "parse source %q", src.Path)
	}
	l.cache.Put(key, rows)

	log.Info("[loader] Parsed %d raw rows", len(rows))
	return rows, nil
}

func (l *Loader) rememberKey(path, key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if prev, ok := l.lastKey[path]; ok && prev != key {
		l.cache.Delete(prev)
		l.logger.Debug("[loader] %s changed, evicted stale snapshot", path)
	}
	l.lastKey[path] = key
}

// LoadAll reads every source concurrently and merges them in source order.
func (l *Loader) LoadAll(ctx context.Context, sources []Source) ([]models.RawListing, error) {
	if len(sources) == 0 {
		return nil, errors.New("no sources configured")
	}

	batches := make([][]models.RawListing, len(sources))
	pool := utils.NewWorkerPool(l.workers, 0)
	for i, src := range sources {
		pool.Submit(ctx, func(ctx context.Context) error {
			rows, err := l.Load(ctx, src)
			if err != nil {
				return err
			}
			batches[i] = rows
			return nil
		})
	}
	if err := pool.Wait(); err != nil {
		return nil, err
	}

	merged := Merge(batches...)
	hits, misses := l.cache.Stats()
	l.logger.Info("[loader] Merged %d sources into %d raw listings", len(sources), len(merged))
	l.logger.Debug("[loader] Snapshot cache: %d entries, %d hits, %d misses", l.cache.Len(), hits, misses)
	return merged, nil
}

// Merge concatenates batches in order and drops exact duplicate rows.
func Merge(batches ...[]models.RawListing) []models.RawListing {
	seen := utils.NewKeySet()
	var out []models.RawListing
	for _, batch := range batches {
		for _, r := range batch {
			if !seen.Add(rowKey(r)) {
				continue
			}
			out = append(out, r)
		}
	}
	return out
}

func rowKey(r models.RawListing) string {
	return strings.Join([]string{r.JobTitle, r.Location, r.Experience, r.SkillsText, r.SourceDataset}, "\x1f")
}
