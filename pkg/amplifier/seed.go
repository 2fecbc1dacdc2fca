package amplifier

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// Prompt describes one freely chosen component the operator must supply.
type Prompt struct {
	// Name is the component identifier, e.g. "r_f".
	Name string
	// Message is the primary label, e.g. "select r_f:".
	Message string
	// Hint is optional guidance shown under the label.
	Hint string
}

// String renders the label the way a plain console prints it.
func (p Prompt) String() string {
	if p.Hint == "" {
		return p.Message
	}
	return p.Message + "\n" + p.Hint
}

var (
	promptR1 = Prompt{Name: "r_1", Message: "select r_1:"}
	promptRF = Prompt{
		Name:    "r_f",
		Message: "select r_f:",
		Hint:    "(this may have been suggested by datasheet)",
	}
	promptRFBare = Prompt{Name: "r_f", Message: "select r_f:"}
	promptR2     = Prompt{
		Name:    "r_2",
		Message: "select r_2:",
		Hint:    "(same order of magnitude as r_f)",
	}
)

// SeedProvider supplies operator-chosen component values. Seed blocks until a
// value is available; the designer calls it in program order, one at a time.
type SeedProvider interface {
	Seed(ctx context.Context, prompt Prompt) (float64, error)
}

// SeedFunc adapts a function to SeedProvider.
type SeedFunc func(ctx context.Context, prompt Prompt) (float64, error)

// Seed calls fn.
func (fn SeedFunc) Seed(ctx context.Context, prompt Prompt) (float64, error) {
	return fn(ctx, prompt)
}

// ScriptedSeeds answers prompts in order from a fixed list and records the
// prompts it was asked.
type ScriptedSeeds struct {
	values []float64
	pos    int
	asked  []Prompt
}

// NewScriptedSeeds returns a provider yielding values in order.
func NewScriptedSeeds(values ...float64) *ScriptedSeeds {
	return &ScriptedSeeds{values: append([]float64(nil), values...)}
}

// Seed returns the next scripted value.
func (s *ScriptedSeeds) Seed(ctx context.Context, prompt Prompt) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.asked = append(s.asked, prompt)
	if s.pos >= len(s.values) {
		return 0, fmt.Errorf("%w: %s", ErrSeedsExhausted, prompt.Name)
	}
	v := s.values[s.pos]
	s.pos++
	return v, nil
}

// Asked returns the prompts seen so far.
func (s *ScriptedSeeds) Asked() []Prompt {
	return append([]Prompt(nil), s.asked...)
}

// Remaining reports how many scripted values were not consumed.
func (s *ScriptedSeeds) Remaining() int {
	return len(s.values) - s.pos
}

// NamedSeeds answers prompts by component name. Missing names fall through
// to Fallback when set. Use it by pointer so Unused can report what was
// never asked for.
type NamedSeeds struct {
	Values   map[string]float64
	Fallback SeedProvider

	served map[string]bool
}

// Seed looks the prompt name up in Values.
func (n *NamedSeeds) Seed(ctx context.Context, prompt Prompt) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	name := strings.TrimSpace(prompt.Name)
	if v, ok := n.Values[name]; ok {
		if n.served == nil {
			n.served = make(map[string]bool)
		}
		n.served[name] = true
		return v, nil
	}
	if n.Fallback != nil {
		return n.Fallback.Seed(ctx, prompt)
	}
	return 0, fmt.Errorf("%w: %s", ErrSeedsExhausted, prompt.Name)
}

// Unused returns the sorted names in Values that no prompt has asked for.
func (n *NamedSeeds) Unused() []string {
	var names []string
	for name := range n.Values {
		if !n.served[name] {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
