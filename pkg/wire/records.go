package wire

// Project is the top-level container of a project document.
type Project struct {
	Scenes              []Scene              `json:"scenes"`
	StageSize           StageSize            `json:"stageSize"`
	PlayerVersion       string               `json:"playerVersion"`
	Version             Number               `json:"version"`
	Abilities           []Ability            `json:"abilities"`
	FontSize            Number               `json:"fontSize"`
	CustomRules         []CustomRule         `json:"customRules"`
	Objects             []Object             `json:"objects"`
	Variables           []Variable           `json:"variables"`
	CustomRuleInstances []CustomRuleInstance `json:"customRuleInstances"`
	EventParameters     []EventParameter     `json:"eventParameters"`
	SceneReferences     []SceneReference     `json:"sceneReferences"`
	RequiresBetaEditor  bool                 `json:"requires_beta_editor"`
	Rules               []Rule               `json:"rules"`
}

// StageSize is the editor stage size in points.
type StageSize struct {
	Width  Number `json:"width"`
	Height Number `json:"height"`
}

// Scene is a screen of the project listing its objects in draw order.
type Scene struct {
	Name    string   `json:"name"`
	ID      string   `json:"id"`
	Objects []string `json:"objects"`
}

// Object is an actor placed in a scene.
type Object struct {
	ObjectID    string   `json:"objectID"`
	Type        Number   `json:"type"`
	Filename    string   `json:"filename"`
	Width       string   `json:"width"`
	Height      string   `json:"height"`
	Name        string   `json:"name"`
	Rules       []string `json:"rules"`
	XPosition   string   `json:"xPosition"`
	YPosition   string   `json:"yPosition"`
	ResizeScale string   `json:"resizeScale"`
	Rotation    string   `json:"rotation"`
	Text        *string  `json:"text"`
	AbilityID   string   `json:"abilityID"`
}

// Rule is an event handler: a trigger block type plus the ability it runs.
type Rule struct {
	ID            string      `json:"id"`
	RuleBlockType Number      `json:"ruleBlockType"`
	ObjectID      *string     `json:"objectID"`
	AbilityID     string      `json:"abilityID"`
	Parameters    []Parameter `json:"parameters"`
}

// Ability is a named, ordered list of inline blocks.
type Ability struct {
	Name       *string     `json:"name"`
	AbilityID  string      `json:"abilityID"`
	CreatedAt  Number      `json:"createdAt"`
	Parameters []Parameter `json:"parameters"`
	Blocks     []Block     `json:"blocks"`
}

// Block is one executable unit inside an ability.
type Block struct {
	Type        Number      `json:"type"`
	Description string      `json:"description"`
	BlockClass  string      `json:"block_class"`
	Parameters  []Parameter `json:"parameters"`
}

// Parameter is a block, rule or ability argument.
type Parameter struct {
	Key          string  `json:"key"`
	DefaultValue string  `json:"defaultValue"`
	Value        *string `json:"value"`
	Type         Number  `json:"type"`
}

// CustomRule is decoded and validated but not resolved into the tree.
type CustomRule struct {
	Name       string      `json:"name"`
	ID         string      `json:"id"`
	AbilityID  string      `json:"abilityID"`
	Parameters []Parameter `json:"parameters"`
	Rules      []string    `json:"rules"`
}

// Variable is decoded and validated but not resolved into the tree.
type Variable struct {
	ObjectIDString string `json:"objectIdString"`
	Type           Number `json:"type"`
	Name           string `json:"name"`
}

// CustomRuleInstance is decoded and validated but not resolved into the tree.
type CustomRuleInstance struct {
	ID           string      `json:"id"`
	CustomRuleID string      `json:"customRuleID"`
	Parameters   []Parameter `json:"parameters"`
}

// EventParameter is decoded and validated but not resolved into the tree.
type EventParameter struct {
	ID          string `json:"id"`
	BlockType   Number `json:"blockType"`
	Description string `json:"description"`
}

// SceneReference is decoded and validated but not resolved into the tree.
type SceneReference struct {
	ID          string `json:"id"`
	BlockType   Number `json:"blockType"`
	Description string `json:"description"`
	Scene       string `json:"scene"`
}
