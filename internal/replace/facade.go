package replace

import (
	"wfst/internal/fst"
	"wfst/internal/symtab"
)

// Facade adapts an Engine's cache to the standard fst.Fst surface (spec.md
// §4.4), so a lazily expanded Replace result is indistinguishable from an
// eagerly built wFST to any downstream consumer. Facade methods may trigger
// expansion; per spec.md §5 this is modelled as reads that mutate shared
// state, not as anything requiring external synchronization from a single
// caller.
type Facade[W any] struct {
	engine *Engine[W]
}

// NewFacade wraps engine in the lazy wFST surface.
func NewFacade[W any](engine *Engine[W]) *Facade[W] {
	return &Facade[W]{engine: engine}
}

// Engine returns the underlying engine, for callers that need lower-level
// access (e.g. NumComponents, RootComponent) than the fst.Fst surface
// exposes.
func (f *Facade[W]) Engine() *Engine[W] {
	return f.engine
}

func (f *Facade[W]) Start() (int, bool) {
	return f.engine.cache.Start()
}

func (f *Facade[W]) IsFinal(q int) bool {
	_, ok, err := f.engine.cache.FinalWeight(q)
	if err != nil {
		panic(err)
	}
	return ok
}

func (f *Facade[W]) FinalWeight(q int) (W, bool) {
	w, ok, err := f.engine.cache.FinalWeight(q)
	if err != nil {
		panic(err)
	}
	return w, ok
}

func (f *Facade[W]) Transitions(q int) []fst.Transition[W] {
	trs, err := f.engine.cache.Transitions(q)
	if err != nil {
		panic(err)
	}
	return trs
}

// InputSymbols propagates the root component's input alphabet, per spec.md
// §6 ("propagated to the facade from the first component only").
func (f *Facade[W]) InputSymbols() *symtab.Table {
	if st, ok := f.engine.RootComponent().(fst.SymbolTabled); ok {
		return st.InputSymbols()
	}
	return nil
}

// OutputSymbols propagates the root component's output alphabet.
func (f *Facade[W]) OutputSymbols() *symtab.Table {
	if st, ok := f.engine.RootComponent().(fst.SymbolTabled); ok {
		return st.OutputSymbols()
	}
	return nil
}

// Materialize drives the lazy enumeration of spec.md §4.4 to completion
// into a concrete fst.MutableFst. It terminates only if the Replace result
// is finite; bounding an unbounded grammar is the caller's responsibility,
// per spec.md §1's Non-goals and §4.4.
func (f *Facade[W]) Materialize() *fst.MutableFst[W] {
	return f.materialize(-1)
}

// MaterializeBounded is like Materialize but stops after at most maxStates
// result states have been realised, regardless of whether more remain
// reachable. Useful for grammars with legitimately unbounded expansions
// (spec.md §8 scenario 4: self-recursion with a base case), where a test
// wants to observe a finite prefix of an infinite result.
func (f *Facade[W]) MaterializeBounded(maxStates int) *fst.MutableFst[W] {
	return f.materialize(maxStates)
}

func (f *Facade[W]) materialize(maxStates int) *fst.MutableFst[W] {
	out := fst.NewMutableFst[W]()

	start, ok := f.Start()
	if !ok {
		return out
	}

	// The facade's state identifiers are dense and assigned in order of
	// first reference (spec.md §3's invariant), starting at the start
	// state itself, so they can be mirrored 1:1 into the concrete
	// container as we enumerate them.
	ensureState := func(id int) {
		for out.NumStates() <= id {
			out.AddState()
		}
	}

	next := 0
	for {
		if maxStates >= 0 && next >= maxStates {
			break
		}
		if next >= f.engine.cache.NumKnownStates() {
			// No identifier beyond next has been issued, and expanding
			// the previous state (if any) produced none either: the
			// enumerator is done, per spec.md §4.4.
			break
		}
		ensureState(next)
		for _, t := range f.Transitions(next) {
			ensureState(t.Next)
			out.AddTransition(next, t)
		}
		if w, ok := f.FinalWeight(next); ok {
			out.SetFinal(next, w)
		}
		next++
	}

	out.SetStart(start)
	if in := f.InputSymbols(); in != nil {
		out.SetInputSymbols(in)
	}
	if o := f.OutputSymbols(); o != nil {
		out.SetOutputSymbols(o)
	}
	return out
}

// Replace is the eager entry point of spec.md §6: it constructs the engine
// and immediately materialises the full result. Equivalent to
// NewFacade(engine).Materialize() for the engine NewEpsilonConfig(epsilonOnReplace)
// would build.
func Replace[W any](components []Component[W], root int, epsilonOnReplace bool) (*fst.MutableFst[W], error) {
	engine, err := New(components, root, NewEpsilonConfig(epsilonOnReplace))
	if err != nil {
		return nil, err
	}
	return NewFacade(engine).Materialize(), nil
}

var (
	_ fst.Fst[int]     = (*Facade[int])(nil)
	_ fst.SymbolTabled = (*Facade[int])(nil)
)
