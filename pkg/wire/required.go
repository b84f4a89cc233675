package wire

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FieldError reports a required field that is missing or null.
type FieldError struct {
	Record string // record kind, e.g. "object"
	Field  string // wire field name, e.g. "objectID"
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: missing required field %q", e.Record, e.Field)
}

var nullLiteral = []byte("null")

// requireFields checks that data is a JSON object carrying every named field
// with a non-null value.
func requireFields(data []byte, record string, fields ...string) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%s: %w", record, err)
	}
	for _, f := range fields {
		v, ok := raw[f]
		if !ok || bytes.Equal(bytes.TrimSpace(v), nullLiteral) {
			return &FieldError{Record: record, Field: f}
		}
	}
	return nil
}

func (p *Project) UnmarshalJSON(data []byte) error {
	if err := requireFields(data, "project",
		"scenes", "stageSize", "playerVersion", "version", "abilities", "fontSize",
		"customRules", "objects", "variables", "customRuleInstances",
		"eventParameters", "sceneReferences", "requires_beta_editor", "rules",
	); err != nil {
		return err
	}
	type plain Project
	return json.Unmarshal(data, (*plain)(p))
}

func (s *StageSize) UnmarshalJSON(data []byte) error {
	if err := requireFields(data, "stageSize", "width", "height"); err != nil {
		return err
	}
	type plain StageSize
	return json.Unmarshal(data, (*plain)(s))
}

func (s *Scene) UnmarshalJSON(data []byte) error {
	if err := requireFields(data, "scene", "name", "id", "objects"); err != nil {
		return err
	}
	type plain Scene
	return json.Unmarshal(data, (*plain)(s))
}

func (o *Object) UnmarshalJSON(data []byte) error {
	if err := requireFields(data, "object",
		"objectID", "type", "filename", "width", "height", "name", "rules",
		"xPosition", "yPosition", "resizeScale", "rotation", "abilityID",
	); err != nil {
		return err
	}
	type plain Object
	return json.Unmarshal(data, (*plain)(o))
}

func (r *Rule) UnmarshalJSON(data []byte) error {
	if err := requireFields(data, "rule", "id", "ruleBlockType", "abilityID", "parameters"); err != nil {
		return err
	}
	type plain Rule
	return json.Unmarshal(data, (*plain)(r))
}

func (a *Ability) UnmarshalJSON(data []byte) error {
	if err := requireFields(data, "ability", "abilityID", "createdAt", "blocks"); err != nil {
		return err
	}
	type plain Ability
	return json.Unmarshal(data, (*plain)(a))
}

func (b *Block) UnmarshalJSON(data []byte) error {
	if err := requireFields(data, "block", "type", "description", "block_class", "parameters"); err != nil {
		return err
	}
	type plain Block
	return json.Unmarshal(data, (*plain)(b))
}

func (p *Parameter) UnmarshalJSON(data []byte) error {
	if err := requireFields(data, "parameter", "key", "defaultValue", "type"); err != nil {
		return err
	}
	type plain Parameter
	return json.Unmarshal(data, (*plain)(p))
}

func (c *CustomRule) UnmarshalJSON(data []byte) error {
	if err := requireFields(data, "customRule", "name", "id", "abilityID", "parameters", "rules"); err != nil {
		return err
	}
	type plain CustomRule
	return json.Unmarshal(data, (*plain)(c))
}

func (v *Variable) UnmarshalJSON(data []byte) error {
	if err := requireFields(data, "variable", "objectIdString", "type", "name"); err != nil {
		return err
	}
	type plain Variable
	return json.Unmarshal(data, (*plain)(v))
}

func (c *CustomRuleInstance) UnmarshalJSON(data []byte) error {
	if err := requireFields(data, "customRuleInstance", "id", "customRuleID", "parameters"); err != nil {
		return err
	}
	type plain CustomRuleInstance
	return json.Unmarshal(data, (*plain)(c))
}

func (e *EventParameter) UnmarshalJSON(data []byte) error {
	if err := requireFields(data, "eventParameter", "id", "blockType", "description"); err != nil {
		return err
	}
	type plain EventParameter
	return json.Unmarshal(data, (*plain)(e))
}

func (s *SceneReference) UnmarshalJSON(data []byte) error {
	if err := requireFields(data, "sceneReference", "id", "blockType", "description", "scene"); err != nil {
		return err
	}
	type plain SceneReference
	return json.Unmarshal(data, (*plain)(s))
}
