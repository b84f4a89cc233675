package project

import "iter"

// Role says where a block sits inside its object.
type Role int

const (
	RolePreGame Role = iota
	RoleEvent
	RoleBody
)

var roleNames = [...]string{
	RolePreGame: "pregame",
	RoleEvent:   "event",
	RoleBody:    "body",
}

func (r Role) String() string {
	if int(r) < len(roleNames) {
		return roleNames[r]
	}
	return "unknown"
}

// Location addresses a block within a tree.
type Location struct {
	Scene  int
	Object int
	Rule   int // -1 for pre-game blocks
	Role   Role
	Index  int // position in the pre-game or body list; 0 for events
}

// All yields every block in traversal order together with its location.
func (p *Project) All() iter.Seq2[Location, *Block] {
	return func(yield func(Location, *Block) bool) {
		for si := range p.Scenes {
			if !p.Scenes[si].walk(si, yield) {
				return
			}
		}
	}
}

// Blocks yields every block in traversal order.
func (p *Project) Blocks() iter.Seq[*Block] {
	return func(yield func(*Block) bool) {
		for _, b := range p.All() {
			if !yield(b) {
				return
			}
		}
	}
}

// Blocks yields every block of the scene's objects in order.
func (s *Scene) Blocks() iter.Seq[*Block] {
	return func(yield func(*Block) bool) {
		s.walk(0, func(_ Location, b *Block) bool { return yield(b) })
	}
}

func (s *Scene) walk(si int, yield func(Location, *Block) bool) bool {
	for oi := range s.Objects {
		if !s.Objects[oi].walk(si, oi, yield) {
			return false
		}
	}
	return true
}

// Blocks yields the object's pre-game blocks, then each rule's blocks.
func (o *Object) Blocks() iter.Seq[*Block] {
	return func(yield func(*Block) bool) {
		o.walk(0, 0, func(_ Location, b *Block) bool { return yield(b) })
	}
}

func (o *Object) walk(si, oi int, yield func(Location, *Block) bool) bool {
	for bi := range o.PreGame {
		loc := Location{Scene: si, Object: oi, Rule: -1, Role: RolePreGame, Index: bi}
		if !yield(loc, &o.PreGame[bi]) {
			return false
		}
	}
	for ri := range o.Rules {
		if !o.Rules[ri].walk(si, oi, ri, yield) {
			return false
		}
	}
	return true
}

// Blocks yields the rule's event, if any, then its body blocks.
func (r *Rule) Blocks() iter.Seq[*Block] {
	return func(yield func(*Block) bool) {
		r.walk(0, 0, 0, func(_ Location, b *Block) bool { return yield(b) })
	}
}

func (r *Rule) walk(si, oi, ri int, yield func(Location, *Block) bool) bool {
	if r.Event != nil {
		loc := Location{Scene: si, Object: oi, Rule: ri, Role: RoleEvent}
		if !yield(loc, r.Event) {
			return false
		}
	}
	for bi := range r.Body {
		loc := Location{Scene: si, Object: oi, Rule: ri, Role: RoleBody, Index: bi}
		if !yield(loc, &r.Body[bi]) {
			return false
		}
	}
	return true
}
