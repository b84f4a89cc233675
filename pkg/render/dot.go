package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/hsproject/pkg/project"
)

// Options configures diagram generation.
type Options struct {
	// Detailed adds filename and geometry to object labels.
	Detailed bool

	// CollapseBlocks draws one summary node per rule and pre-game list
	// instead of one node per block.
	CollapseBlocks bool
}

// ToDOT converts p to Graphviz DOT source.
//
// Node IDs encode the tree path (s0, s0o1, s0o1r2, s0o1r2b3...), so the
// output for a given tree and options is stable.
func ToDOT(p *project.Project, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.25;\n")

	for si := range p.Scenes {
		s := &p.Scenes[si]
		sid := fmt.Sprintf("s%d", si)
		buf.WriteString("\n")
		node(&buf, sid, sceneLabel(s, si), "shape=folder", "fillcolor=lightblue")

		for oi := range s.Objects {
			o := &s.Objects[oi]
			oid := fmt.Sprintf("%so%d", sid, oi)
			attrs := []string{}
			if o.IsPlaceholder() {
				attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey")
			}
			node(&buf, oid, objectLabel(o, opts.Detailed), attrs...)
			edge(&buf, sid, oid)

			blocks(&buf, oid, oid+"p", "pre-game", o.PreGame, opts)

			for ri := range o.Rules {
				r := &o.Rules[ri]
				rid := fmt.Sprintf("%sr%d", oid, ri)
				node(&buf, rid, ruleLabel(r, ri), "shape=cds", blockFill(r.Event))
				edge(&buf, oid, rid)
				blocks(&buf, rid, rid+"b", "", r.Body, opts)
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func blocks(buf *bytes.Buffer, parent, prefix, title string, bs []project.Block, opts Options) {
	if len(bs) == 0 {
		return
	}
	if opts.CollapseBlocks {
		tags := make([]string, len(bs))
		for i, b := range bs {
			tags[i] = b.String()
		}
		label := fmt.Sprintf("%d blocks\n%s", len(bs), strings.Join(tags, " "))
		if title != "" {
			label = title + ": " + label
		}
		node(buf, prefix, label, "shape=note")
		edge(buf, parent, prefix)
		return
	}

	prev := parent
	for i := range bs {
		id := fmt.Sprintf("%s%d", prefix, i)
		node(buf, id, "type "+bs[i].String(), "shape=box", blockFill(&bs[i]))
		edge(buf, prev, id)
		prev = id
	}
}

func node(buf *bytes.Buffer, id, label string, attrs ...string) {
	all := append([]string{fmt.Sprintf("label=%q", label)}, attrs...)
	fmt.Fprintf(buf, "  %q [%s];\n", id, strings.Join(all, ", "))
}

func edge(buf *bytes.Buffer, from, to string) {
	fmt.Fprintf(buf, "  %q -> %q;\n", from, to)
}

func sceneLabel(s *project.Scene, i int) string {
	if s.Name == "" {
		return fmt.Sprintf("scene %d", i)
	}
	return s.Name
}

func objectLabel(o *project.Object, detailed bool) string {
	name := o.Name
	if name == "" {
		name = o.Filename
	}
	if !detailed {
		return name
	}
	return fmt.Sprintf("%s\n%s type %s\nat (%s, %s) %sx%s",
		name, o.Filename, project.FormatTag(o.Type),
		num(o.X), num(o.Y), num(o.Width), num(o.Height))
}

func ruleLabel(r *project.Rule, i int) string {
	if r.Event == nil {
		return fmt.Sprintf("rule %d\n(no event)", i)
	}
	return fmt.Sprintf("rule %d\nwhen %s", i, r.Event)
}

func blockFill(b *project.Block) string {
	if b != nil && b.IsSentinel() {
		return "fillcolor=salmon"
	}
	return "fillcolor=white"
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// RenderSVG renders DOT source to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's point-based svg header with a
// viewBox anchored at the origin.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	header := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(header))
}
