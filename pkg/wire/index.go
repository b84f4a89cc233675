package wire

// Index maps identifiers to records of one collection.
//
// The zero value is an empty index. An Index holds pointers into the collection
// it was built from and never modifies it.
type Index[T any] struct {
	byID map[string]*T
}

// NewIndex indexes items by the identifier returned from key. When several
// items share an identifier, the first one in collection order is kept.
func NewIndex[T any](items []T, key func(*T) string) Index[T] {
	byID := make(map[string]*T, len(items))
	for i := range items {
		id := key(&items[i])
		if _, dup := byID[id]; dup {
			continue
		}
		byID[id] = &items[i]
	}
	return Index[T]{byID: byID}
}

// Lookup returns the record with identifier id.
func (ix Index[T]) Lookup(id string) (*T, bool) {
	v, ok := ix.byID[id]
	return v, ok
}

// Len returns the number of distinct identifiers in the index.
func (ix Index[T]) Len() int { return len(ix.byID) }

// Lookup indexes the referenced collections of a project.
type Lookup struct {
	Objects   Index[Object]
	Rules     Index[Rule]
	Abilities Index[Ability]
}

// NewLookup builds the object, rule and ability indexes for p.
func NewLookup(p *Project) *Lookup {
	return &Lookup{
		Objects:   NewIndex(p.Objects, func(o *Object) string { return o.ObjectID }),
		Rules:     NewIndex(p.Rules, func(r *Rule) string { return r.ID }),
		Abilities: NewIndex(p.Abilities, func(a *Ability) string { return a.AbilityID }),
	}
}

// Object returns the object with identifier id.
func (l *Lookup) Object(id string) (*Object, bool) { return l.Objects.Lookup(id) }

// Rule returns the rule with identifier id.
func (l *Lookup) Rule(id string) (*Rule, bool) { return l.Rules.Lookup(id) }

// Ability returns the ability with identifier id.
func (l *Lookup) Ability(id string) (*Ability, bool) { return l.Abilities.Lookup(id) }
