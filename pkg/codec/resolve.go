package codec

import (
	"math"
	"strconv"

	"github.com/matzehuels/hsproject/pkg/project"
	"github.com/matzehuels/hsproject/pkg/wire"
)

// GapKind classifies a problem absorbed during resolution.
type GapKind string

const (
	GapMissingObject  GapKind = "missing_object"
	GapMissingRule    GapKind = "missing_rule"
	GapMissingAbility GapKind = "missing_ability"
	GapBadNumber      GapKind = "bad_number"
	GapBadTag         GapKind = "bad_tag"
)

// Gap describes a dangling reference or unparsable value that was replaced by
// a placeholder or default.
type Gap struct {
	Kind   GapKind `json:"kind"`
	ID     string  `json:"id"` // identifier of the referencing record
	Detail string  `json:"detail,omitempty"`
}

// ResolveOptions configures [Resolve].
type ResolveOptions struct {
	// OnGap, if set, is called for every absorbed gap in traversal order.
	OnGap func(Gap)
}

// Resolve builds the owned tree for a decoded document.
//
// Resolve never fails. Scenes, objects, rules and blocks keep their document
// order. A missing object becomes [project.NewObject], a missing rule becomes
// [project.NewRule], and a missing ability contributes no blocks. Geometry
// strings that do not parse fall back to the project defaults, and type tags
// that do not fit a float64 become [project.SentinelTag].
func Resolve(p *wire.Project, opts ResolveOptions) *project.Project {
	r := &resolver{idx: wire.NewLookup(p), onGap: opts.OnGap}
	out := &project.Project{Scenes: make([]project.Scene, 0, len(p.Scenes))}
	for i := range p.Scenes {
		out.Scenes = append(out.Scenes, r.scene(&p.Scenes[i]))
	}
	return out
}

type resolver struct {
	idx   *wire.Lookup
	onGap func(Gap)
}

func (r *resolver) gap(kind GapKind, id, detail string) {
	if r.onGap != nil {
		r.onGap(Gap{Kind: kind, ID: id, Detail: detail})
	}
}

func (r *resolver) scene(s *wire.Scene) project.Scene {
	objects := make([]project.Object, 0, len(s.Objects))
	for _, id := range s.Objects {
		o, ok := r.idx.Object(id)
		if !ok {
			r.gap(GapMissingObject, s.ID, id)
			objects = append(objects, project.NewObject())
			continue
		}
		objects = append(objects, r.object(o))
	}
	return project.Scene{Name: s.Name, Objects: objects}
}

func (r *resolver) object(o *wire.Object) project.Object {
	out := project.Object{
		Type:     r.tag(o.Type, o.ObjectID),
		Filename: o.Filename,
		Name:     o.Name,
		Width:    r.float(o.Width, project.DefaultWidth, o.ObjectID, "width"),
		Height:   r.float(o.Height, project.DefaultHeight, o.ObjectID, "height"),
		X:        r.float(o.XPosition, project.DefaultX, o.ObjectID, "xPosition"),
		Y:        r.float(o.YPosition, project.DefaultY, o.ObjectID, "yPosition"),
		Scale:    r.float(o.ResizeScale, project.DefaultScale, o.ObjectID, "resizeScale"),
		Rotation: r.float(o.Rotation, project.DefaultRotation, o.ObjectID, "rotation"),
		PreGame:  r.ability(o.AbilityID, o.ObjectID),
		Rules:    make([]project.Rule, 0, len(o.Rules)),
	}
	for _, id := range o.Rules {
		rule, ok := r.idx.Rule(id)
		if !ok {
			r.gap(GapMissingRule, o.ObjectID, id)
			out.Rules = append(out.Rules, project.NewRule())
			continue
		}
		out.Rules = append(out.Rules, r.rule(rule))
	}
	return out
}

func (r *resolver) rule(w *wire.Rule) project.Rule {
	event := project.NewBlock(r.tag(w.RuleBlockType, w.ID))
	return project.Rule{
		Event: &event,
		Body:  r.ability(w.AbilityID, w.ID),
	}
}

// ability returns the blocks of the ability with the given id, or an empty
// list when there is none. owner identifies the referencing record for gaps.
func (r *resolver) ability(id, owner string) []project.Block {
	a, ok := r.idx.Ability(id)
	if !ok {
		if id != "" {
			r.gap(GapMissingAbility, owner, id)
		}
		return []project.Block{}
	}
	blocks := make([]project.Block, 0, len(a.Blocks))
	for i := range a.Blocks {
		blocks = append(blocks, project.NewBlock(r.tag(a.Blocks[i].Type, a.AbilityID)))
	}
	return blocks
}

// tag converts a wire number to a type tag, falling back to the sentinel.
func (r *resolver) tag(n wire.Number, owner string) float64 {
	f, err := n.Float64()
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		r.gap(GapBadTag, owner, n.String())
		return project.SentinelTag
	}
	return f
}

// float parses a numeric-as-string field, falling back to def.
func (r *resolver) float(s string, def float64, owner, field string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		r.gap(GapBadNumber, owner, field+"="+strconv.Quote(s))
		return def
	}
	return f
}
