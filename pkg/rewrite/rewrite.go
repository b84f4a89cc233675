package rewrite

import (
	"fmt"
	"strconv"
	"strings"

	exprlang "github.com/expr-lang/expr"
	exprvm "github.com/expr-lang/expr/vm"

	"github.com/matzehuels/hsproject/pkg/errors"
	"github.com/matzehuels/hsproject/pkg/project"
)

// Tags used by the default rule set.
const (
	CommentTag = 69
	NoneTag    = 22
)

// Rule assigns SetType to every block whose Match expression is true.
type Rule struct {
	Name    string  `toml:"name" yaml:"name"`
	Match   string  `toml:"match" yaml:"match"`
	SetType float64 `toml:"set_type" yaml:"set_type"`
}

// DefaultRules turns every comment block into a no-op block.
func DefaultRules() []Rule {
	return []Rule{{
		Name:    "comment-to-none",
		Match:   "tag == " + strconv.Itoa(CommentTag),
		SetType: NoneTag,
	}}
}

// Report summarises one [Rewriter.Apply] pass.
type Report struct {
	Visited int            // blocks seen
	Matched map[string]int // rewrites per rule name
}

// Total returns the number of rewritten blocks.
func (r Report) Total() int {
	n := 0
	for _, c := range r.Matched {
		n += c
	}
	return n
}

// Rewriter applies a compiled rule set. It is safe for concurrent use on
// distinct trees.
type Rewriter struct {
	rules []compiled
}

type compiled struct {
	Rule
	program *exprvm.Program
}

// New validates and compiles rules.
//
// Every rule needs a valid name and a match expression that returns a bool.
// Names must be unique. Errors carry [errors.ErrCodeInvalidRule].
func New(rules []Rule) (*Rewriter, error) {
	seen := make(map[string]bool, len(rules))
	out := make([]compiled, 0, len(rules))
	for _, r := range rules {
		if err := errors.ValidateRuleName(r.Name); err != nil {
			return nil, err
		}
		if seen[r.Name] {
			return nil, errors.New(errors.ErrCodeInvalidRule, "duplicate rule %q", r.Name)
		}
		seen[r.Name] = true

		if strings.TrimSpace(r.Match) == "" {
			return nil, errors.New(errors.ErrCodeInvalidRule, "rule %q: empty match", r.Name)
		}
		program, err := exprlang.Compile(r.Match, exprlang.Env(env{}), exprlang.AsBool())
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidRule, err, "rule %q", r.Name)
		}
		out = append(out, compiled{Rule: r, program: program})
	}
	return &Rewriter{rules: out}, nil
}

// MustDefault returns a Rewriter for [DefaultRules].
func MustDefault() *Rewriter {
	rw, err := New(DefaultRules())
	if err != nil {
		panic(err)
	}
	return rw
}

// Rules returns the rule set in evaluation order.
func (rw *Rewriter) Rules() []Rule {
	out := make([]Rule, len(rw.rules))
	for i, c := range rw.rules {
		out[i] = c.Rule
	}
	return out
}

// Fingerprint identifies the rule set. Rewriters with equal fingerprints
// rewrite every tree the same way.
func (rw *Rewriter) Fingerprint() string {
	var b strings.Builder
	for _, c := range rw.rules {
		fmt.Fprintf(&b, "%s\x00%s\x00%s\n", c.Name, c.Match, project.FormatTag(c.SetType))
	}
	return b.String()
}

// Apply rewrites p in place in one traversal pass.
//
// A runtime error in an expression stops the pass; blocks visited before the
// failure keep their new tags.
func (rw *Rewriter) Apply(p *project.Project) (Report, error) {
	rep := Report{Matched: make(map[string]int, len(rw.rules))}
	for loc, b := range p.All() {
		rep.Visited++
		if len(rw.rules) == 0 {
			continue
		}
		e := newEnv(p, loc, b)
		for _, c := range rw.rules {
			out, err := exprlang.Run(c.program, e)
			if err != nil {
				return rep, errors.Wrap(errors.ErrCodeInvalidRule, err, "rule %q", c.Name)
			}
			if matched, _ := out.(bool); matched {
				b.Type = project.ArbitraryID{ID: c.SetType}
				rep.Matched[c.Name]++
				break
			}
		}
	}
	return rep, nil
}

type env struct {
	Tag    float64 `expr:"tag"`
	Role   string  `expr:"role"`
	Scene  string  `expr:"scene"`
	Object string  `expr:"object"`
	Rule   int     `expr:"rule"`
}

func newEnv(p *project.Project, loc project.Location, b *project.Block) env {
	s := &p.Scenes[loc.Scene]
	return env{
		Tag:    b.Tag(),
		Role:   loc.Role.String(),
		Scene:  s.Name,
		Object: s.Objects[loc.Object].Name,
		Rule:   loc.Rule,
	}
}
