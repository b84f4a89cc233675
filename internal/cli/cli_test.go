package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/hsproject/pkg/errors"
	"github.com/matzehuels/hsproject/pkg/io"
	"github.com/matzehuels/hsproject/pkg/observability"
)

// levelDoc has one object with a comment-triggered rule and a scene entry for
// an object that does not exist.
const levelDoc = `{
  "scenes": [{"name": "Main", "id": "S", "objects": ["O", "GHOST"]}],
  "stageSize": {"width": 1024, "height": 768},
  "playerVersion": "1.5.0",
  "version": 33,
  "abilities": [
    {"abilityID": "PRE", "createdAt": 1, "blocks": [
      {"type": 123, "description": "", "block_class": "method", "parameters": []}
    ]},
    {"abilityID": "A", "createdAt": 1, "blocks": [
      {"type": 69, "description": "", "block_class": "method", "parameters": []},
      {"type": 23, "description": "", "block_class": "method", "parameters": []}
    ]}
  ],
  "fontSize": 80,
  "customRules": [],
  "objects": [{
    "objectID": "O", "type": 1, "filename": "monkey.png", "width": "150", "height": "150",
    "name": "Monkey", "rules": ["R"], "xPosition": "0", "yPosition": "0",
    "resizeScale": "1", "rotation": "0", "abilityID": "PRE"
  }],
  "variables": [],
  "customRuleInstances": [],
  "eventParameters": [],
  "sceneReferences": [],
  "requires_beta_editor": false,
  "rules": [{"id": "R", "ruleBlockType": 69, "abilityID": "A", "parameters": []}]
}`

type harness struct {
	dir    string
	out    bytes.Buffer
	errOut bytes.Buffer
}

// newHarness isolates cache and config directories and writes levelDoc to
// a temporary file.
func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{dir: t.TempDir()}
	t.Setenv("XDG_CACHE_HOME", filepath.Join(h.dir, "cache"))
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(h.dir, "config"))
	t.Cleanup(observability.Reset)
	h.write(t, "level.hopscotch", levelDoc)
	return h
}

func (h *harness) path(name string) string {
	return filepath.Join(h.dir, name)
}

func (h *harness) write(t *testing.T, name, data string) string {
	t.Helper()
	p := h.path(name)
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	return p
}

func (h *harness) run(args ...string) error {
	h.out.Reset()
	h.errOut.Reset()
	c := New(&h.out, &h.errOut, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetErr(&h.errOut)
	return root.ExecuteContext(context.Background())
}

func TestRewriteCommand(t *testing.T) {
	h := newHarness(t)

	if err := h.run("rewrite", h.path("level.hopscotch")); err != nil {
		t.Fatalf("rewrite error: %v", err)
	}

	p, err := io.Parse(h.out.Bytes())
	if err != nil {
		t.Fatalf("output is not a valid document: %v", err)
	}
	r := p.Scenes[0].Objects[0].Rules[0]
	if r.Event.Tag() != 22 || r.Body[0].Tag() != 22 || r.Body[1].Tag() != 23 {
		t.Errorf("rule = %v %v, want event 22 and body [22 23]", r.Event, r.Body)
	}
	if !strings.Contains(h.errOut.String(), "unresolved references") {
		t.Errorf("stderr should warn about the missing object:\n%s", h.errOut.String())
	}
}

func TestRewriteCommandOutputFile(t *testing.T) {
	h := newHarness(t)
	out := h.path("clean.hopscotch")

	if err := h.run("rewrite", h.path("level.hopscotch"), "-o", out, "--indent", "  "); err != nil {
		t.Fatalf("rewrite error: %v", err)
	}
	if h.out.Len() != 0 {
		t.Errorf("stdout should be empty with -o, got %q", h.out.String())
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte("\n  \"scenes\"")) {
		t.Error("output file should be indented")
	}
	if !strings.Contains(h.errOut.String(), "Rewrote 2 of 4 blocks") {
		t.Errorf("stderr = %q", h.errOut.String())
	}
}

func TestRewriteCommandCache(t *testing.T) {
	h := newHarness(t)
	in := h.path("level.hopscotch")

	if err := h.run("rewrite", in); err != nil {
		t.Fatal(err)
	}
	first := h.out.String()
	if !strings.Contains(h.errOut.String(), iconFresh) {
		t.Errorf("first run should be fresh:\n%s", h.errOut.String())
	}

	if err := h.run("rewrite", in); err != nil {
		t.Fatal(err)
	}
	if h.out.String() != first {
		t.Error("cached run should return the stored document")
	}
	if !strings.Contains(h.errOut.String(), iconCached) {
		t.Errorf("second run should be cached:\n%s", h.errOut.String())
	}

	if err := h.run("rewrite", in, "--no-cache"); err != nil {
		t.Fatal(err)
	}
	if h.out.String() == first {
		t.Error("--no-cache should mint fresh identifiers")
	}

	if err := h.run("cache", "clear"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(h.errOut.String(), "Cleared 1 cached entries") {
		t.Errorf("cache clear output = %q", h.errOut.String())
	}
}

func TestRewriteCommandRulesFile(t *testing.T) {
	h := newHarness(t)
	rules := h.write(t, "rules.yaml", "rules:\n  - name: mark-events\n    match: role == \"event\"\n    set_type: 7001\n")

	if err := h.run("rewrite", h.path("level.hopscotch"), "--rules", rules, "--no-cache"); err != nil {
		t.Fatalf("rewrite error: %v", err)
	}
	p, err := io.Parse(h.out.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	r := p.Scenes[0].Objects[0].Rules[0]
	if r.Event.Tag() != 7001 || r.Body[0].Tag() != 69 {
		t.Errorf("rule = %v %v, want event 7001 and untouched body", r.Event, r.Body)
	}
}

func TestRewriteCommandDefaultRulesFile(t *testing.T) {
	h := newHarness(t)
	h.write(t, filepath.Join("config", appName, rulesFileName),
		"[[rule]]\nname = \"strip-moves\"\nmatch = \"tag == 23\"\nset_type = 22\n")

	if err := h.run("rewrite", h.path("level.hopscotch"), "--no-cache"); err != nil {
		t.Fatalf("rewrite error: %v", err)
	}
	p, err := io.Parse(h.out.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	r := p.Scenes[0].Objects[0].Rules[0]
	if r.Event.Tag() != 69 || r.Body[1].Tag() != 22 {
		t.Errorf("rule = %v %v, want the config rules applied", r.Event, r.Body)
	}
}

func TestRewriteCommandStdin(t *testing.T) {
	h := newHarness(t)
	c := New(&h.out, &h.errOut, LogInfo)
	root := c.RootCommand()
	root.SetIn(strings.NewReader(levelDoc))
	root.SetArgs([]string{"rewrite", "-", "--no-cache"})
	if err := root.Execute(); err != nil {
		t.Fatalf("rewrite error: %v", err)
	}
	if _, err := io.Parse(h.out.Bytes()); err != nil {
		t.Errorf("output is not a valid document: %v", err)
	}
}

func TestRewriteCommandErrors(t *testing.T) {
	h := newHarness(t)
	h.write(t, "broken.json", `{"scenes": [`)
	badRules := h.write(t, "bad.toml", "[[rule]]\nname = \"x\"\nmatch = \"tag +\"\n")

	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"missing file", []string{"rewrite", h.path("nope.json")}, errors.ErrCodeFileNotFound},
		{"invalid document", []string{"rewrite", h.path("broken.json")}, errors.ErrCodeInvalidDocument},
		{"invalid rule", []string{"rewrite", h.path("level.hopscotch"), "--rules", badRules}, errors.ErrCodeInvalidRule},
		{"unsupported rules", []string{"rewrite", h.path("level.hopscotch"), "--rules", h.path("rules.ini")}, errors.ErrCodeUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := h.run(tt.args...)
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
			if msg := FormatError(err); !strings.Contains(msg, string(tt.code)) {
				t.Errorf("FormatError() = %q, should mention %s", msg, tt.code)
			}
			if got := ExitCode(err); got != ExitBadInput {
				t.Errorf("ExitCode() = %d, want %d", got, ExitBadInput)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"canceled", fmt.Errorf("parse: %w", context.Canceled), ExitInterrupted},
		{"invalid document", errors.New(errors.ErrCodeInvalidDocument, "bad"), ExitBadInput},
		{"internal", errors.New(errors.ErrCodeInternal, "boom"), ExitError},
		{"uncoded", fmt.Errorf("plain failure"), ExitError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestInspectCommand(t *testing.T) {
	h := newHarness(t)

	if err := h.run("inspect", h.path("level.hopscotch")); err != nil {
		t.Fatalf("inspect error: %v", err)
	}
	out := h.out.String()
	for _, want := range []string{"objects", "blocks", "Block types", "1 unresolved references", "missing_object", "GHOST"} {
		if !strings.Contains(out, want) {
			t.Errorf("inspect output missing %q:\n%s", want, out)
		}
	}
}

func TestInspectCommandJSON(t *testing.T) {
	h := newHarness(t)

	if err := h.run("inspect", h.path("level.hopscotch"), "--json"); err != nil {
		t.Fatalf("inspect error: %v", err)
	}
	var rep inspectReport
	if err := json.Unmarshal(h.out.Bytes(), &rep); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, h.out.String())
	}
	if rep.Counts.Objects != 2 || rep.Counts.Blocks != 4 {
		t.Errorf("Counts = %+v", rep.Counts)
	}
	if len(rep.Gaps) != 1 || rep.Gaps[0].Detail != "GHOST" {
		t.Errorf("Gaps = %+v", rep.Gaps)
	}
	// 69 appears twice; ties sort by tag
	want := []tagCount{{"69", 2}, {"123", 1}, {"23", 1}}
	if len(rep.Tags) != len(want) {
		t.Fatalf("Tags = %+v, want %+v", rep.Tags, want)
	}
	for i := range want {
		if rep.Tags[i] != want[i] {
			t.Errorf("Tags[%d] = %+v, want %+v", i, rep.Tags[i], want[i])
		}
	}
}

func TestGraphCommand(t *testing.T) {
	h := newHarness(t)

	if err := h.run("graph", h.path("level.hopscotch")); err != nil {
		t.Fatalf("graph error: %v", err)
	}
	if !strings.HasPrefix(h.out.String(), "digraph G {") {
		t.Errorf("graph output = %q", h.out.String())
	}

	if err := h.run("graph", h.path("level.hopscotch"), "--format", "gif"); err == nil {
		t.Error("graph --format gif should fail")
	}
}

func TestCachePathCommand(t *testing.T) {
	h := newHarness(t)

	if err := h.run("cache", "path"); err != nil {
		t.Fatal(err)
	}
	if got, want := strings.TrimSpace(h.out.String()), filepath.Join(h.dir, "cache", appName); got != want {
		t.Errorf("cache path = %q, want %q", got, want)
	}

	if err := h.run("cache", "clear"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(h.errOut.String(), "Cache is empty") {
		t.Errorf("clear on missing dir = %q", h.errOut.String())
	}
}

func TestVersionFlag(t *testing.T) {
	h := newHarness(t)
	if err := h.run("--version"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(h.out.String(), "hsproject version") {
		t.Errorf("--version output = %q", h.out.String())
	}
}
