package project

// Defaults for object attributes that are missing or unparsable.
const (
	DefaultType     = 0
	DefaultFilename = "missing.png"
	DefaultWidth    = 150.0
	DefaultHeight   = 150.0
	DefaultX        = 0.0
	DefaultY        = 0.0
	DefaultScale    = 1.0
	DefaultRotation = 0.0
)

// Project is the root of the tree.
type Project struct {
	Scenes []Scene
}

// Scene is a screen or level.
type Scene struct {
	Name    string
	Objects []Object
}

// Object is an actor in a scene.
type Object struct {
	Type     float64
	Filename string
	Name     string
	Width    float64
	Height   float64
	X        float64
	Y        float64
	Scale    float64
	Rotation float64

	// PreGame holds the blocks run before the game starts.
	PreGame []Block
	Rules   []Rule
}

// Rule is an event handler.
type Rule struct {
	// Event is the trigger. It is set on every rule resolved from a document
	// and nil on rules built from scratch.
	Event *Block
	Body  []Block
}

// NewObject returns the placeholder object used when a scene references an
// object that does not exist.
func NewObject() Object {
	return Object{
		Type:     DefaultType,
		Filename: DefaultFilename,
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		X:        DefaultX,
		Y:        DefaultY,
		Scale:    DefaultScale,
		Rotation: DefaultRotation,
	}
}

// NewRule returns a rule with no event and no blocks.
func NewRule() Rule { return Rule{} }

// IsPlaceholder reports whether o has exactly the placeholder attributes and
// no content.
func (o *Object) IsPlaceholder() bool {
	p := NewObject()
	return o.Type == p.Type && o.Filename == p.Filename && o.Name == p.Name &&
		o.Width == p.Width && o.Height == p.Height && o.X == p.X && o.Y == p.Y &&
		o.Scale == p.Scale && o.Rotation == p.Rotation &&
		len(o.PreGame) == 0 && len(o.Rules) == 0
}

// Counts summarizes the size of a tree.
type Counts struct {
	Scenes  int `json:"scenes"`
	Objects int `json:"objects"`
	Rules   int `json:"rules"`
	Events  int `json:"events"`
	Blocks  int `json:"blocks"` // pre-game, event and body blocks
}

// Count walks p and returns its counts.
func (p *Project) Count() Counts {
	var c Counts
	c.Scenes = len(p.Scenes)
	for si := range p.Scenes {
		s := &p.Scenes[si]
		c.Objects += len(s.Objects)
		for oi := range s.Objects {
			o := &s.Objects[oi]
			c.Rules += len(o.Rules)
			c.Blocks += len(o.PreGame)
			for ri := range o.Rules {
				if o.Rules[ri].Event != nil {
					c.Events++
					c.Blocks++
				}
				c.Blocks += len(o.Rules[ri].Body)
			}
		}
	}
	return c
}
