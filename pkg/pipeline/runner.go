package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/hsproject/pkg/cache"
	"github.com/matzehuels/hsproject/pkg/observability"
)

// keyTypeOutput labels output entries in cache hooks.
const keyTypeOutput = "output"

// Runner executes the pipeline with output caching.
//
// The Runner holds no per-run state. Multiple goroutines can use the same
// Runner with different inputs and options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner. A nil keyer means [cache.DefaultKeyer], a nil
// cache disables caching and a nil logger means log.Default().
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// cachedResult is the cache entry layout.
type cachedResult struct {
	Output []byte `json:"output"`
	Stats  Stats  `json:"stats"`
}

// Execute runs parse → rewrite → serialize on input.
//
// Unless opts.Refresh is set, a stored output for the same input, rule set
// and indent is returned without running any stage. Runs with a custom
// opts.NewID or opts.Now neither read nor write the cache, since the key
// cannot tell two generators apart. Cache failures are logged and otherwise
// ignored.
func (r *Runner) Execute(ctx context.Context, input []byte, opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	opts.SetDefaults()
	logger := opts.Logger

	key := r.Keyer.OutputKey(
		cache.Hash(input),
		cache.HashString(opts.Rewriter.Fingerprint()),
		cache.OutputKeyOpts{Indent: opts.Indent},
	)

	cacheable := opts.cacheable()
	if cacheable && !opts.Refresh {
		if res, ok := r.lookup(ctx, key, logger); ok {
			return res, nil
		}
	}

	res := &Result{}

	start := time.Now()
	p, gaps, err := Parse(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	res.Project = p
	res.Gaps = gaps
	res.Stats.ParseTime = time.Since(start)
	res.Stats.Counts = p.Count()
	res.Stats.Gaps = len(gaps)
	for _, g := range gaps {
		logger.Debug("absorbed gap", "kind", g.Kind, "id", g.ID, "detail", g.Detail)
	}
	logger.Info("parsed project",
		"scenes", res.Stats.Counts.Scenes,
		"objects", res.Stats.Counts.Objects,
		"blocks", res.Stats.Counts.Blocks,
		"gaps", len(gaps),
		"duration", res.Stats.ParseTime)

	start = time.Now()
	rep, err := Rewrite(ctx, p, opts.Rewriter)
	if err != nil {
		return nil, fmt.Errorf("rewrite: %w", err)
	}
	res.Stats.RewriteTime = time.Since(start)
	res.Stats.Visited = rep.Visited
	res.Stats.Rewrites = rep.Total()
	res.Stats.Matched = rep.Matched
	logger.Info("rewrote blocks",
		"rewrites", res.Stats.Rewrites,
		"visited", rep.Visited,
		"duration", res.Stats.RewriteTime)

	start = time.Now()
	out, err := Serialize(ctx, p, opts.flattenOptions(), opts.Indent)
	if err != nil {
		return nil, fmt.Errorf("serialize: %w", err)
	}
	res.Output = out
	res.Stats.SerializeTime = time.Since(start)
	logger.Info("serialized project", "bytes", len(out), "duration", res.Stats.SerializeTime)

	if cacheable {
		r.store(ctx, key, res, opts.TTL, logger)
	}
	return res, nil
}

func (r *Runner) lookup(ctx context.Context, key string, logger *log.Logger) (*Result, bool) {
	hooks := observability.Cache()
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		logger.Warn("cache read failed", "err", err)
	}
	if err != nil || !hit {
		hooks.OnCacheMiss(ctx, keyTypeOutput)
		return nil, false
	}

	var entry cachedResult
	if err := json.Unmarshal(data, &entry); err != nil {
		logger.Debug("discarding unreadable cache entry", "err", err)
		hooks.OnCacheMiss(ctx, keyTypeOutput)
		return nil, false
	}
	hooks.OnCacheHit(ctx, keyTypeOutput)
	logger.Info("using cached output", "bytes", len(entry.Output))
	return &Result{Output: entry.Output, Stats: entry.Stats, CacheHit: true}, true
}

func (r *Runner) store(ctx context.Context, key string, res *Result, ttl time.Duration, logger *log.Logger) {
	data, err := json.Marshal(cachedResult{Output: res.Output, Stats: res.Stats})
	if err != nil {
		logger.Warn("cache encode failed", "err", err)
		return
	}
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		logger.Warn("cache write failed", "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyTypeOutput, len(data))
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
