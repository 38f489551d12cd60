package grammarlang

import (
	"fmt"

	"wfst/internal/fst"
	"wfst/internal/replace"
	"wfst/internal/semiring"
)

// Build converts a parsed Program into a ready-to-use Replace engine over
// the tropical semiring, the DSL's only supported weight domain — arc and
// final weights are plain floats, and the tropical semiring is the natural
// reading of a float weight as a cost.
func Build(p *Program, epsilonOnReplace bool) (*replace.Engine[semiring.Tropical], error) {
	if p.Root == nil {
		return nil, fmt.Errorf("grammarlang: program has no root declaration")
	}

	components := make([]replace.Component[semiring.Tropical], 0, len(p.Components))
	for _, c := range p.Components {
		m, err := buildComponentFst(c)
		if err != nil {
			return nil, fmt.Errorf("grammarlang: component %q: %w", c.Name, err)
		}
		components = append(components, replace.Component[semiring.Tropical]{Label: c.Label, Fst: m})
	}

	return replace.New(components, p.Root.Label, replace.NewEpsilonConfig(epsilonOnReplace))
}

// BuildWithRoot behaves like Build but calls the top-level component root
// rather than the program's own root declaration, for callers (the CLI's
// "-root" flag) that want to materialize a result rooted at a different
// component than the one the grammar file names.
func BuildWithRoot(p *Program, root int, epsilonOnReplace bool) (*replace.Engine[semiring.Tropical], error) {
	components := make([]replace.Component[semiring.Tropical], 0, len(p.Components))
	for _, c := range p.Components {
		m, err := buildComponentFst(c)
		if err != nil {
			return nil, fmt.Errorf("grammarlang: component %q: %w", c.Name, err)
		}
		components = append(components, replace.Component[semiring.Tropical]{Label: c.Label, Fst: m})
	}

	return replace.New(components, root, replace.NewEpsilonConfig(epsilonOnReplace))
}

func buildComponentFst(c *ComponentDecl) (*fst.MutableFst[semiring.Tropical], error) {
	if c.Start == nil {
		return nil, fmt.Errorf("missing start declaration")
	}

	m := fst.NewMutableFst[semiring.Tropical]()
	ensureState := func(id int) {
		for m.NumStates() <= id {
			m.AddState()
		}
	}

	ensureState(c.Start.State)
	m.SetStart(c.Start.State)

	for _, f := range c.Finals {
		ensureState(f.State)
		m.SetFinal(f.State, semiring.Tropical(f.Weight))
	}
	for _, a := range c.Arcs {
		ensureState(a.From)
		ensureState(a.To)
		m.AddTransition(a.From, fst.Transition[semiring.Tropical]{
			ILabel: a.ILabel,
			OLabel: a.OLabel,
			Weight: semiring.Tropical(a.Weight),
			Next:   a.To,
		})
	}
	return m, nil
}
