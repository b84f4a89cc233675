package rewrite

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/hsproject/pkg/errors"
)

// Format is a rule file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatFor picks the rule file format from the file extension.
func FormatFor(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, true
	case ".yaml", ".yml":
		return FormatYAML, true
	}
	return "", false
}

type tomlFile struct {
	Rules []Rule `toml:"rule"`
}

type yamlFile struct {
	Rules []Rule `yaml:"rules"`
}

// Parse decodes a rule set. Unknown keys are rejected. An empty YAML document
// is an empty rule set.
func Parse(data []byte, format Format) ([]Rule, error) {
	switch format {
	case FormatTOML:
		var f tomlFile
		md, err := toml.Decode(string(data), &f)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidRule, err, "decode toml rules")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidRule, "unknown key %q", undecoded[0].String())
		}
		return f.Rules, nil

	case FormatYAML:
		var f yamlFile
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && err != io.EOF {
			return nil, errors.Wrap(errors.ErrCodeInvalidRule, err, "decode yaml rules")
		}
		return f.Rules, nil
	}
	return nil, errors.New(errors.ErrCodeUnsupported, "unsupported rule format %q", format)
}

// LoadFile reads a rule set from path. The format follows the extension:
// .toml, .yaml or .yml.
func LoadFile(path string) ([]Rule, error) {
	format, ok := FormatFor(path)
	if !ok {
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported rule file %s (want .toml, .yaml or .yml)", path)
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read rules")
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read rules")
	}
	return Parse(data, format)
}

// Load reads and compiles the rule set at path.
func Load(path string) (*Rewriter, error) {
	rules, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return New(rules)
}
