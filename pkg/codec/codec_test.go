package codec

import (
	"math"
	"testing"
	"time"

	"github.com/matzehuels/hsproject/pkg/project"
	"github.com/matzehuels/hsproject/pkg/wire"
)

func wireBlocks(tags ...string) []wire.Block {
	out := make([]wire.Block, 0, len(tags))
	for _, t := range tags {
		out = append(out, wire.Block{Type: wire.Number(t), Description: "d", BlockClass: "method"})
	}
	return out
}

func wireObject(id, ability string, rules ...string) wire.Object {
	return wire.Object{
		ObjectID: id, Type: "1", Filename: "monkey.png", Name: id,
		Width: "100", Height: "80", XPosition: "10", YPosition: "20",
		ResizeScale: "2", Rotation: "45", Rules: rules, AbilityID: ability,
	}
}

// sampleDoc is one scene with two objects; the first has a pre-game ability
// and two rules, the second has one rule.
func sampleDoc() *wire.Project {
	return &wire.Project{
		Scenes: []wire.Scene{{Name: "Main", ID: "S1", Objects: []string{"O1", "O2"}}},
		Objects: []wire.Object{
			wireObject("O1", "A-PRE", "R1", "R2"),
			wireObject("O2", "", "R3"),
		},
		Rules: []wire.Rule{
			{ID: "R1", RuleBlockType: "69", AbilityID: "A1"},
			{ID: "R2", RuleBlockType: "7000", AbilityID: "A2"},
			{ID: "R3", RuleBlockType: "7001", AbilityID: "A3"},
		},
		Abilities: []wire.Ability{
			{AbilityID: "A-PRE", CreatedAt: "1", Blocks: wireBlocks("123")},
			{AbilityID: "A1", CreatedAt: "1", Blocks: wireBlocks("69", "22")},
			{AbilityID: "A2", CreatedAt: "1", Blocks: wireBlocks()},
			{AbilityID: "A3", CreatedAt: "1", Blocks: wireBlocks("50", "51", "52")},
		},
	}
}

func allTags(p *project.Project) []float64 {
	var out []float64
	for b := range p.Blocks() {
		out = append(out, b.Tag())
	}
	return out
}

func equalTags(t *testing.T, got, want []float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("tags = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("tags = %v, want %v", got, want)
		}
	}
}

func TestResolve(t *testing.T) {
	p := Resolve(sampleDoc(), ResolveOptions{})

	if len(p.Scenes) != 1 || p.Scenes[0].Name != "Main" {
		t.Fatalf("Scenes = %+v", p.Scenes)
	}
	objs := p.Scenes[0].Objects
	if len(objs) != 2 {
		t.Fatalf("len(Objects) = %d, want 2", len(objs))
	}

	o := objs[0]
	if o.Name != "O1" || o.Filename != "monkey.png" || o.Type != 1 {
		t.Errorf("object = %+v", o)
	}
	if o.Width != 100 || o.Height != 80 || o.X != 10 || o.Y != 20 || o.Scale != 2 || o.Rotation != 45 {
		t.Errorf("geometry = %v %v %v %v %v %v", o.Width, o.Height, o.X, o.Y, o.Scale, o.Rotation)
	}
	if len(o.PreGame) != 1 || o.PreGame[0].Tag() != 123 {
		t.Errorf("PreGame = %v", o.PreGame)
	}
	if len(o.Rules) != 2 {
		t.Fatalf("len(Rules) = %d, want 2", len(o.Rules))
	}
	if o.Rules[0].Event == nil || o.Rules[0].Event.Tag() != 69 {
		t.Errorf("rule 0 event = %v, want 69", o.Rules[0].Event)
	}
	if o.Rules[1].Event == nil || len(o.Rules[1].Body) != 0 {
		t.Errorf("rule 1 = %+v, want event and empty body", o.Rules[1])
	}

	if len(objs[1].PreGame) != 0 {
		t.Errorf("object without ability has %d pre-game blocks", len(objs[1].PreGame))
	}

	equalTags(t, allTags(p), []float64{123, 69, 69, 22, 7000, 7001, 50, 51, 52})
}

func TestResolveMissingObject(t *testing.T) {
	doc := sampleDoc()
	doc.Scenes[0].Objects = []string{"O1", "GONE", "O2"}

	var gaps []Gap
	p := Resolve(doc, ResolveOptions{OnGap: func(g Gap) { gaps = append(gaps, g) }})

	objs := p.Scenes[0].Objects
	if len(objs) != 3 {
		t.Fatalf("len(Objects) = %d, want 3", len(objs))
	}
	if !objs[1].IsPlaceholder() {
		t.Errorf("Objects[1] = %+v, want placeholder", objs[1])
	}
	if objs[1].Filename != project.DefaultFilename || objs[1].Rotation != 0 || objs[1].X != 0 || objs[1].Y != 0 {
		t.Errorf("placeholder attributes = %+v", objs[1])
	}
	if objs[0].Name != "O1" || objs[2].Name != "O2" {
		t.Error("resolved objects out of order")
	}
	if len(gaps) != 1 || gaps[0] != (Gap{Kind: GapMissingObject, ID: "S1", Detail: "GONE"}) {
		t.Errorf("gaps = %+v", gaps)
	}
}

func TestResolveMissingRuleAndAbility(t *testing.T) {
	doc := sampleDoc()
	doc.Objects[0].Rules = []string{"NOPE", "R1"}
	doc.Objects[0].AbilityID = "NO-ABILITY"
	doc.Rules[0].AbilityID = "ALSO-MISSING"

	var kinds []GapKind
	p := Resolve(doc, ResolveOptions{OnGap: func(g Gap) { kinds = append(kinds, g.Kind) }})

	o := p.Scenes[0].Objects[0]
	if len(o.PreGame) != 0 {
		t.Errorf("PreGame = %v, want empty", o.PreGame)
	}
	if len(o.Rules) != 2 {
		t.Fatalf("len(Rules) = %d, want 2", len(o.Rules))
	}
	if o.Rules[0].Event != nil || len(o.Rules[0].Body) != 0 {
		t.Errorf("missing rule = %+v, want placeholder", o.Rules[0])
	}
	if o.Rules[1].Event == nil || o.Rules[1].Event.Tag() != 69 || len(o.Rules[1].Body) != 0 {
		t.Errorf("rule with missing ability = %+v", o.Rules[1])
	}

	want := []GapKind{GapMissingAbility, GapMissingRule, GapMissingAbility}
	if len(kinds) != len(want) {
		t.Fatalf("gaps = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("gap %d = %s, want %s", i, kinds[i], want[i])
		}
	}
}

func TestResolveNumericFallback(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(o *wire.Object)
		check func(o project.Object) bool
	}{
		{"x", func(o *wire.Object) { o.XPosition = "left" }, func(o project.Object) bool { return o.X == project.DefaultX }},
		{"y", func(o *wire.Object) { o.YPosition = "" }, func(o project.Object) bool { return o.Y == project.DefaultY }},
		{"scale", func(o *wire.Object) { o.ResizeScale = "big" }, func(o project.Object) bool { return o.Scale == project.DefaultScale }},
		{"rotation", func(o *wire.Object) { o.Rotation = "NaN" }, func(o project.Object) bool { return o.Rotation == project.DefaultRotation }},
		{"width", func(o *wire.Object) { o.Width = "1e999" }, func(o project.Object) bool { return o.Width == project.DefaultWidth }},
		{"height", func(o *wire.Object) { o.Height = "tall" }, func(o project.Object) bool { return o.Height == project.DefaultHeight }},
		{"type", func(o *wire.Object) { o.Type = "1e400" }, func(o project.Object) bool { return o.Type == project.SentinelTag }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := sampleDoc()
			tt.edit(&doc.Objects[0])
			var gaps int
			p := Resolve(doc, ResolveOptions{OnGap: func(Gap) { gaps++ }})
			if !tt.check(p.Scenes[0].Objects[0]) {
				t.Errorf("object = %+v, want default", p.Scenes[0].Objects[0])
			}
			if gaps != 1 {
				t.Errorf("gaps = %d, want 1", gaps)
			}
		})
	}
}

func TestResolveSentinelTags(t *testing.T) {
	doc := sampleDoc()
	doc.Rules[0].RuleBlockType = "1e400"
	doc.Abilities[1].Blocks[1].Type = "-1e999"

	p := Resolve(doc, ResolveOptions{})
	r := p.Scenes[0].Objects[0].Rules[0]
	if !r.Event.IsSentinel() {
		t.Errorf("event tag = %v, want sentinel", r.Event.Tag())
	}
	if r.Body[0].Tag() != 69 || !r.Body[1].IsSentinel() {
		t.Errorf("body = %v, want [69 sentinel]", r.Body)
	}
}

func TestResolveEmpty(t *testing.T) {
	p := Resolve(&wire.Project{}, ResolveOptions{})
	if p == nil || len(p.Scenes) != 0 {
		t.Errorf("Resolve(empty) = %+v", p)
	}
}

func fixedNow() time.Time { return time.Unix(1700000000, 0) }

func nan() float64 { return math.NaN() }

func inf() float64 { return math.Inf(1) }

func TestFlattenDeterministic(t *testing.T) {
	ev := project.NewBlock(69)
	p := &project.Project{Scenes: []project.Scene{{
		Name: "Main",
		Objects: []project.Object{{
			Name: "Monkey", Filename: "monkey.png", Type: 1,
			Width: 150, Height: 150, X: 12.5, Y: -4, Scale: 1, Rotation: 90,
			PreGame: []project.Block{project.NewBlock(123)},
			Rules: []project.Rule{
				{Event: &ev, Body: []project.Block{project.NewBlock(22), project.NewBlock(23)}},
				project.NewRule(),
			},
		}},
	}}}

	doc := Flatten(p, FlattenOptions{NewID: Sequential("id"), Now: fixedNow})

	// ability(pre)=1, ability(r0)=2, rule0=3, ability(r1)=4, rule1=5, object=6, scene=7
	if len(doc.Scenes) != 1 || doc.Scenes[0].ID != "id-7" || doc.Scenes[0].Name != "Main" {
		t.Fatalf("Scenes = %+v", doc.Scenes)
	}
	if got := doc.Scenes[0].Objects; len(got) != 1 || got[0] != "id-6" {
		t.Errorf("scene objects = %v, want [id-6]", got)
	}

	if len(doc.Objects) != 1 {
		t.Fatalf("len(Objects) = %d, want 1", len(doc.Objects))
	}
	o := doc.Objects[0]
	if o.ObjectID != "id-6" || o.AbilityID != "id-1" {
		t.Errorf("object ids = %s/%s, want id-6/id-1", o.ObjectID, o.AbilityID)
	}
	if len(o.Rules) != 2 || o.Rules[0] != "id-3" || o.Rules[1] != "id-5" {
		t.Errorf("object rules = %v, want [id-3 id-5]", o.Rules)
	}
	if o.XPosition != "12.5" || o.YPosition != "-4" || o.Rotation != "90" || o.Width != "150" || o.ResizeScale != "1" {
		t.Errorf("geometry strings = %+v", o)
	}
	if o.Type.String() != "1" || o.Name != "Monkey" || o.Text != nil {
		t.Errorf("object = %+v", o)
	}

	if len(doc.Rules) != 2 {
		t.Fatalf("len(Rules) = %d, want 2", len(doc.Rules))
	}
	r0, r1 := doc.Rules[0], doc.Rules[1]
	if r0.ID != "id-3" || r0.AbilityID != "id-2" || r0.RuleBlockType.String() != "69" {
		t.Errorf("rule 0 = %+v", r0)
	}
	if r1.ID != "id-5" || r1.AbilityID != "id-4" || r1.RuleBlockType.String() != "0" {
		t.Errorf("rule 1 = %+v, want no-trigger tag", r1)
	}
	for _, r := range doc.Rules {
		if r.ObjectID == nil || *r.ObjectID != "id-6" {
			t.Errorf("rule %s objectID = %v, want id-6", r.ID, r.ObjectID)
		}
	}

	wantAbilities := []struct {
		id   string
		tags []string
	}{
		{"id-1", []string{"123"}},
		{"id-2", []string{"22", "23"}},
		{"id-4", nil},
	}
	if len(doc.Abilities) != len(wantAbilities) {
		t.Fatalf("len(Abilities) = %d, want %d", len(doc.Abilities), len(wantAbilities))
	}
	for i, w := range wantAbilities {
		a := doc.Abilities[i]
		if a.AbilityID != w.id || len(a.Blocks) != len(w.tags) {
			t.Errorf("ability %d = %+v, want %s with %v", i, a, w.id, w.tags)
			continue
		}
		if a.CreatedAt.String() != "1700000000" {
			t.Errorf("ability %d createdAt = %s", i, a.CreatedAt)
		}
		for j, tag := range w.tags {
			b := a.Blocks[j]
			if b.Type.String() != tag || b.Description != BlockDescription || b.BlockClass != BlockClass || len(b.Parameters) != 0 {
				t.Errorf("ability %d block %d = %+v, want type %s", i, j, b, tag)
			}
		}
	}
}

func TestFlattenContainerConstants(t *testing.T) {
	doc := Flatten(&project.Project{}, FlattenOptions{NewID: Sequential("x")})

	if doc.StageSize.Width.String() != "1024" || doc.StageSize.Height.String() != "768" {
		t.Errorf("StageSize = %+v", doc.StageSize)
	}
	if doc.PlayerVersion != PlayerVersion || doc.Version.String() != "33" || doc.FontSize.String() != "80" {
		t.Errorf("versions = %s/%s/%s", doc.PlayerVersion, doc.Version, doc.FontSize)
	}
	if doc.RequiresBetaEditor {
		t.Error("RequiresBetaEditor = true")
	}
	if doc.Variables == nil || doc.CustomRules == nil || doc.CustomRuleInstances == nil ||
		doc.EventParameters == nil || doc.SceneReferences == nil {
		t.Error("passthrough collections should be empty, not nil")
	}
	if len(doc.Scenes)+len(doc.Objects)+len(doc.Rules)+len(doc.Abilities) != 0 {
		t.Error("empty project produced records")
	}
}

func TestFlattenNonFiniteValues(t *testing.T) {
	p := &project.Project{Scenes: []project.Scene{{Objects: []project.Object{{
		Type:    project.DefaultType,
		X:       nan(),
		Scale:   inf(),
		PreGame: []project.Block{project.NewBlock(nan()), {}},
	}}}}}

	doc := Flatten(p, FlattenOptions{NewID: Sequential("n")})
	o := doc.Objects[0]
	if o.XPosition != "0" || o.ResizeScale != "1" {
		t.Errorf("geometry = %s/%s, want defaults", o.XPosition, o.ResizeScale)
	}
	for i, b := range doc.Abilities[0].Blocks {
		if b.Type.String() != "-1" {
			t.Errorf("block %d type = %s, want sentinel", i, b.Type)
		}
	}
}

func TestFlattenFreshIDs(t *testing.T) {
	p := Resolve(sampleDoc(), ResolveOptions{})
	doc := Flatten(p, FlattenOptions{})

	seen := map[string]bool{}
	check := func(id string) {
		if id == "" || seen[id] {
			t.Errorf("identifier %q empty or reused", id)
		}
		seen[id] = true
	}
	for _, s := range doc.Scenes {
		check(s.ID)
	}
	for _, o := range doc.Objects {
		check(o.ObjectID)
	}
	for _, r := range doc.Rules {
		check(r.ID)
	}
	for _, a := range doc.Abilities {
		check(a.AbilityID)
	}
	for _, old := range []string{"S1", "O1", "O2", "R1", "A1", "A-PRE"} {
		if seen[old] {
			t.Errorf("original identifier %s reused", old)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	first := Resolve(sampleDoc(), ResolveOptions{})
	doc := Flatten(first, FlattenOptions{NewID: Sequential("rt")})

	var gaps []Gap
	second := Resolve(doc, ResolveOptions{OnGap: func(g Gap) { gaps = append(gaps, g) }})

	if len(gaps) != 0 {
		t.Errorf("round trip produced gaps: %+v", gaps)
	}
	if first.Count() != second.Count() {
		t.Errorf("Count() = %+v, want %+v", second.Count(), first.Count())
	}
	equalTags(t, allTags(second), allTags(first))

	o1, o2 := first.Scenes[0].Objects[0], second.Scenes[0].Objects[0]
	if o1.Name != o2.Name || o1.X != o2.X || o1.Rotation != o2.Rotation || o1.Filename != o2.Filename {
		t.Errorf("object attributes changed: %+v -> %+v", o1, o2)
	}
}

func TestRoundTripEventlessRule(t *testing.T) {
	p := &project.Project{Scenes: []project.Scene{{Objects: []project.Object{{
		Rules: []project.Rule{project.NewRule()},
	}}}}}

	second := Resolve(Flatten(p, FlattenOptions{}), ResolveOptions{})
	r := second.Scenes[0].Objects[0].Rules[0]
	// resolved rules always carry an event; an eventless rule comes back
	// with the no-trigger tag
	if r.Event == nil || r.Event.Tag() != project.NoTriggerTag {
		t.Errorf("event = %v, want no-trigger tag", r.Event)
	}
}

func TestSequential(t *testing.T) {
	next := Sequential("p")
	if a, b := next(), next(); a != "p-1" || b != "p-2" {
		t.Errorf("Sequential = %s, %s", a, b)
	}
}

func TestUUIDs(t *testing.T) {
	next := UUIDs()
	a, b := next(), next()
	if a == b || len(a) != 36 {
		t.Errorf("UUIDs = %s, %s", a, b)
	}
	for _, r := range a {
		if r >= 'a' && r <= 'z' {
			t.Errorf("UUID %s is not upper-case", a)
			break
		}
	}
}
