package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/hsproject/pkg/codec"
	"github.com/matzehuels/hsproject/pkg/io"
	"github.com/matzehuels/hsproject/pkg/observability"
	"github.com/matzehuels/hsproject/pkg/project"
	"github.com/matzehuels/hsproject/pkg/rewrite"
)

// Parse decodes and resolves input, collecting absorbed gaps.
func Parse(ctx context.Context, input []byte) (*project.Project, []codec.Gap, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	hooks := observability.Pipeline()
	hooks.OnParseStart(ctx, len(input))
	start := time.Now()

	var gaps []codec.Gap
	p, err := io.ParseWith(input, codec.ResolveOptions{
		OnGap: func(g codec.Gap) { gaps = append(gaps, g) },
	})
	if err != nil {
		hooks.OnParseComplete(ctx, 0, 0, time.Since(start), err)
		return nil, nil, err
	}
	hooks.OnParseComplete(ctx, p.Count().Blocks, len(gaps), time.Since(start), nil)
	return p, gaps, nil
}

// Rewrite applies rw to p in place.
func Rewrite(ctx context.Context, p *project.Project, rw *rewrite.Rewriter) (rewrite.Report, error) {
	if err := ctx.Err(); err != nil {
		return rewrite.Report{}, err
	}
	start := time.Now()
	rep, err := rw.Apply(p)
	observability.Pipeline().OnRewrite(ctx, len(rw.Rules()), rep.Total(), time.Since(start), err)
	return rep, err
}

// Serialize flattens p with the given options and indent.
func Serialize(ctx context.Context, p *project.Project, opts codec.FlattenOptions, indent string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	data, err := io.SerializeIndent(p, opts, indent)
	observability.Pipeline().OnSerialize(ctx, len(data), time.Since(start), err)
	return data, err
}
