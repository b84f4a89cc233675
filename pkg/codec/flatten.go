package codec

import (
	"math"
	"strconv"
	"time"

	"github.com/matzehuels/hsproject/pkg/project"
	"github.com/matzehuels/hsproject/pkg/wire"
)

// Container fields the tree does not retain. Every save writes these values.
const (
	StageWidth         = 1024
	StageHeight        = 768
	PlayerVersion      = "1.5.0"
	SchemaVersion      = 33
	FontSize           = 80
	RequiresBetaEditor = false
)

// Placeholder values for block fields the tree does not carry.
const (
	BlockDescription = ""
	BlockClass       = "method"
)

// FlattenOptions configures [Flatten].
type FlattenOptions struct {
	// NewID mints identifiers. Defaults to [UUIDs].
	NewID IDGenerator
	// Now stamps ability creation times. Defaults to time.Now.
	Now func() time.Time
}

// Flatten builds a fresh document for p.
//
// Every scene, object, rule and ability gets a newly minted identifier.
// Records are appended in pre-order: for each object its pre-game ability
// comes first, then each rule's ability followed by the rule, then the object;
// a scene is appended after all of its objects. Container-level fields are set
// to the package constants and the collections the tree does not model are
// written empty.
func Flatten(p *project.Project, opts FlattenOptions) *wire.Project {
	f := &flattener{newID: opts.NewID, now: opts.Now}
	if f.newID == nil {
		f.newID = UUIDs()
	}
	if f.now == nil {
		f.now = time.Now
	}
	f.out = &wire.Project{
		Scenes:              []wire.Scene{},
		StageSize:           wire.StageSize{Width: intNumber(StageWidth), Height: intNumber(StageHeight)},
		PlayerVersion:       PlayerVersion,
		Version:             intNumber(SchemaVersion),
		Abilities:           []wire.Ability{},
		FontSize:            intNumber(FontSize),
		CustomRules:         []wire.CustomRule{},
		Objects:             []wire.Object{},
		Variables:           []wire.Variable{},
		CustomRuleInstances: []wire.CustomRuleInstance{},
		EventParameters:     []wire.EventParameter{},
		SceneReferences:     []wire.SceneReference{},
		RequiresBetaEditor:  RequiresBetaEditor,
		Rules:               []wire.Rule{},
	}
	for i := range p.Scenes {
		f.scene(&p.Scenes[i])
	}
	return f.out
}

type flattener struct {
	newID IDGenerator
	now   func() time.Time
	out   *wire.Project
}

func (f *flattener) scene(s *project.Scene) {
	ids := make([]string, 0, len(s.Objects))
	for i := range s.Objects {
		ids = append(ids, f.object(&s.Objects[i]))
	}
	f.out.Scenes = append(f.out.Scenes, wire.Scene{
		Name:    s.Name,
		ID:      f.newID(),
		Objects: ids,
	})
}

func (f *flattener) object(o *project.Object) string {
	abilityID := f.ability(o.PreGame)

	ruleIDs := make([]string, 0, len(o.Rules))
	first := len(f.out.Rules)
	for i := range o.Rules {
		ruleIDs = append(ruleIDs, f.rule(&o.Rules[i]))
	}

	id := f.newID()
	for i := first; i < len(f.out.Rules); i++ {
		owner := id
		f.out.Rules[i].ObjectID = &owner
	}

	f.out.Objects = append(f.out.Objects, wire.Object{
		ObjectID:    id,
		Type:        tagNumber(o.Type),
		Filename:    o.Filename,
		Width:       geometry(o.Width, project.DefaultWidth),
		Height:      geometry(o.Height, project.DefaultHeight),
		Name:        o.Name,
		Rules:       ruleIDs,
		XPosition:   geometry(o.X, project.DefaultX),
		YPosition:   geometry(o.Y, project.DefaultY),
		ResizeScale: geometry(o.Scale, project.DefaultScale),
		Rotation:    geometry(o.Rotation, project.DefaultRotation),
		AbilityID:   abilityID,
	})
	return id
}

func (f *flattener) rule(r *project.Rule) string {
	abilityID := f.ability(r.Body)

	trigger := float64(project.NoTriggerTag)
	if r.Event != nil {
		trigger = r.Event.Tag()
	}

	id := f.newID()
	f.out.Rules = append(f.out.Rules, wire.Rule{
		ID:            id,
		RuleBlockType: tagNumber(trigger),
		AbilityID:     abilityID,
		Parameters:    []wire.Parameter{},
	})
	return id
}

func (f *flattener) ability(blocks []project.Block) string {
	out := make([]wire.Block, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, wire.Block{
			Type:        tagNumber(b.Tag()),
			Description: BlockDescription,
			BlockClass:  BlockClass,
			Parameters:  []wire.Parameter{},
		})
	}

	id := f.newID()
	f.out.Abilities = append(f.out.Abilities, wire.Ability{
		AbilityID:  id,
		CreatedAt:  wire.Number(strconv.FormatInt(f.now().Unix(), 10)),
		Parameters: []wire.Parameter{},
		Blocks:     out,
	})
	return id
}

func intNumber(n int) wire.Number {
	return wire.Number(strconv.Itoa(n))
}

// tagNumber converts a tag to a wire number. Non-finite tags cannot be
// written as JSON and become the sentinel.
func tagNumber(tag float64) wire.Number {
	if math.IsNaN(tag) || math.IsInf(tag, 0) {
		return intNumber(project.SentinelTag)
	}
	return wire.Number(project.FormatTag(tag))
}

func geometry(v, def float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = def
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
