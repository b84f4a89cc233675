package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/hsproject/pkg/observability"
)

// logHooks reports pipeline and cache events at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnParseStart(_ context.Context, size int) {
	h.logger.Debug("parse started", "bytes", size)
}

func (h logHooks) OnParseComplete(_ context.Context, blocks, gaps int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("parse failed", "err", err, "duration", d)
		return
	}
	h.logger.Debug("parse finished", "blocks", blocks, "gaps", gaps, "duration", d)
}

func (h logHooks) OnRewrite(_ context.Context, rules, rewrites int, d time.Duration, err error) {
	h.logger.Debug("rewrite finished", "rules", rules, "rewrites", rewrites, "duration", d, "err", err)
}

func (h logHooks) OnSerialize(_ context.Context, size int, d time.Duration, err error) {
	h.logger.Debug("serialize finished", "bytes", size, "duration", d, "err", err)
}

func (h logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

var (
	_ observability.PipelineHooks = logHooks{}
	_ observability.CacheHooks    = logHooks{}
)
