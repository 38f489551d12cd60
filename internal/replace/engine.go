// Package replace implements the lazy recursive Replace transducer: the
// core of spec.md. Given a table of component wFSTs addressed by
// non-terminal label plus a root, it produces a single wFST whose language
// is obtained by recursively substituting, at every transition whose
// output label names a registered non-terminal, the component mapped to
// that label. States of the result are materialised only on demand (see
// facade.go), so self-referential grammars are representable without
// recursing the host call stack — all of the recursion is carried in the
// interned prefix chain below, not in Go stack frames.
package replace

import (
	"wfst/internal/fst"
)

// Component pairs a non-terminal label with the wFST it calls out to.
type Component[W any] struct {
	Label int
	Fst   fst.Fst[W]
}

// prefixKey is one node of the persistent call-stack chain: parent is the
// id of the prefix this frame was pushed onto, and (comp, state) is the
// frame itself — the component and state control resumes to on return.
// The distinguished empty prefix is the sentinel node with parent -1.
type prefixKey struct {
	parent int
	comp   int
	state  int
}

// tupleKey is a result state's identity: (prefix, component, state) from
// spec.md §3. comp/state of -1 mark a "dead" tuple; the engine never
// constructs one deliberately, but expand treats it defensively as
// spec.md §4.3 requires.
type tupleKey struct {
	prefix int
	comp   int
	state  int
}

// Engine is the pure Replace logic of spec.md §4.3: given a result-state
// id, it computes that state's outgoing transitions and final weight from
// the component table, consulting the two interners. It holds no
// concurrency primitives of its own (see spec.md §5) — synchronization, if
// any is needed, belongs to the caller.
type Engine[W any] struct {
	components   []fst.Fst[W]
	labels       []int
	labelToIndex map[int]int
	rootIndex    int
	minLabel     int
	maxLabel     int
	cfg          Config

	prefixInterner *Interner[prefixKey]
	tupleInterner  *Interner[tupleKey]
	emptyPrefixID  int

	cache *Cache[W]
}

// New constructs a Replace engine over components, rooted at the component
// registered under the root label, per spec.md §4.3's construction steps.
// It fails with an error wrapping ErrUnknownRoot if root is not registered.
func New[W any](components []Component[W], root int, cfg Config) (*Engine[W], error) {
	e := &Engine[W]{
		labelToIndex: make(map[int]int, len(components)),
		cfg:          cfg.normalize(),
	}

	for i, c := range components {
		e.components = append(e.components, c.Fst)
		e.labels = append(e.labels, c.Label)
		e.labelToIndex[c.Label] = i
		if i == 0 || c.Label < e.minLabel {
			e.minLabel = c.Label
		}
		if i == 0 || c.Label > e.maxLabel {
			e.maxLabel = c.Label
		}
	}

	rootIndex, ok := e.labelToIndex[root]
	if !ok {
		return nil, &UnknownRootError{Root: root}
	}
	e.rootIndex = rootIndex

	e.prefixInterner = NewInterner[prefixKey]()
	e.tupleInterner = NewInterner[tupleKey]()
	// The empty prefix is always the first prefix interned, giving it a
	// stable, predictable id (0) independent of traversal order.
	e.emptyPrefixID = e.prefixInterner.FindID(prefixKey{parent: -1, comp: -1, state: -1})

	e.cache = newCache[W](e.computeStart, e.expand, func() int { return e.tupleInterner.Len() })

	return e, nil
}

// computeStart implements spec.md §4.3's compute_start.
func (e *Engine[W]) computeStart() (int, bool) {
	if len(e.components) == 0 {
		return 0, false
	}
	root := e.components[e.rootIndex]
	q0, ok := root.Start()
	if !ok {
		return 0, false
	}
	id := e.tupleInterner.FindID(tupleKey{prefix: e.emptyPrefixID, comp: e.rootIndex, state: q0})
	return id, true
}

// expand implements spec.md §4.3's expand(s): it computes s's outgoing
// transitions and final weight and writes them to the cache in one pass,
// so that a collaborator error leaves no partial result visible.
func (e *Engine[W]) expand(s int) {
	key := e.tupleInterner.FindKey(s)
	if key.comp < 0 || key.state < 0 {
		// Dead tuple: never exposed, yields nothing.
		return
	}
	comp := e.components[key.comp]

	var transitions []fst.Transition[W]
	var finalWeight W
	hasFinal := false

	if comp.IsFinal(key.state) {
		fw, ok := comp.FinalWeight(key.state)
		if !ok {
			e.cache.SetErr(s, &BrokenFinalWeightError{Component: key.comp, State: key.state})
			return
		}
		if key.prefix == e.emptyPrefixID {
			// Finality is only inherited at the empty prefix (spec.md
			// §4.3 "Finality of s"); a nested final state instead emits
			// the synthetic return transition below.
			finalWeight = fw
			hasFinal = true
		} else {
			pk := e.prefixInterner.FindKey(key.prefix)
			target := e.tupleInterner.FindID(tupleKey{prefix: pk.parent, comp: pk.comp, state: pk.state})
			il, ol := e.returnLabels()
			transitions = append(transitions, fst.Transition[W]{ILabel: il, OLabel: ol, Weight: fw, Next: target})
		}
	}

	for _, tr := range comp.Transitions(key.state) {
		rewritten, suppressed, err := e.rewriteTransition(key, tr)
		if err != nil {
			e.cache.SetErr(s, err)
			return
		}
		if suppressed {
			continue
		}
		transitions = append(transitions, rewritten)
	}

	for _, t := range transitions {
		e.cache.PushTransition(s, t)
	}
	if hasFinal {
		e.cache.SetFinal(s, finalWeight)
	}
}

// rewriteTransition implements spec.md §4.3's per-transition rewrite. It
// returns (transition, false, nil) to emit, (_, true, nil) to suppress the
// transition entirely, or (_, false, err) on a collaborator contract
// violation.
func (e *Engine[W]) rewriteTransition(key tupleKey, tr fst.Transition[W]) (fst.Transition[W], bool, error) {
	comp := e.components[key.comp]
	if err := e.checkState(comp, key.comp, tr.Next); err != nil {
		return fst.Transition[W]{}, false, err
	}

	o := tr.OLabel

	// Pure terminal: epsilon, or outside the registered non-terminal
	// range. Checking o < minLabel/o > maxLabel first avoids a map lookup
	// on the hot path, since most transitions carry ordinary terminals.
	if o == fst.Epsilon || o < e.minLabel || o > e.maxLabel {
		target := e.tupleInterner.FindID(tupleKey{prefix: key.prefix, comp: key.comp, state: tr.Next})
		return fst.Transition[W]{ILabel: tr.ILabel, OLabel: o, Weight: tr.Weight, Next: target}, false, nil
	}

	calleeIndex, isNonTerminal := e.labelToIndex[o]
	if !isNonTerminal {
		// In range but not a registered non-terminal: spec.md §9 pins
		// this to the same behaviour as a pure terminal. A stricter
		// implementation could fail here instead (reject unregistered
		// in-range labels); that policy is not implemented.
		target := e.tupleInterner.FindID(tupleKey{prefix: key.prefix, comp: key.comp, state: tr.Next})
		return fst.Transition[W]{ILabel: tr.ILabel, OLabel: o, Weight: tr.Weight, Next: target}, false, nil
	}

	callee := e.components[calleeIndex]
	q0, ok := callee.Start()
	if !ok {
		// No resumption point is possible for this call; emitting it
		// would create an unreachable branch, so it is dropped.
		return fst.Transition[W]{}, true, nil
	}
	if err := e.checkState(callee, calleeIndex, q0); err != nil {
		return fst.Transition[W]{}, false, err
	}

	newPrefixID := e.prefixInterner.FindID(prefixKey{parent: key.prefix, comp: key.comp, state: tr.Next})
	target := e.tupleInterner.FindID(tupleKey{prefix: newPrefixID, comp: calleeIndex, state: q0})
	il, ol := e.callLabels(tr.ILabel, tr.OLabel)
	return fst.Transition[W]{ILabel: il, OLabel: ol, Weight: tr.Weight, Next: target}, false, nil
}

// callLabels applies the call label policy of spec.md §6.
func (e *Engine[W]) callLabels(i, o int) (int, int) {
	il := 0
	if e.cfg.CallLabelType == LabelInput || e.cfg.CallLabelType == LabelBoth {
		il = i
	}
	ol := 0
	if e.cfg.CallLabelType == LabelOutput || e.cfg.CallLabelType == LabelBoth {
		if e.cfg.CallOutputLabel != nil {
			ol = *e.cfg.CallOutputLabel
		} else {
			ol = o
		}
	}
	return il, ol
}

// returnLabels applies the return label policy of spec.md §6.
func (e *Engine[W]) returnLabels() (int, int) {
	il := 0
	if e.cfg.ReturnLabelType == LabelInput || e.cfg.ReturnLabelType == LabelBoth {
		il = e.cfg.ReturnLabel
	}
	ol := 0
	if e.cfg.ReturnLabelType == LabelOutput || e.cfg.ReturnLabelType == LabelBoth {
		ol = e.cfg.ReturnLabel
	}
	return il, ol
}

// checkState validates that state is one comp itself advertises, when comp
// is able to say so (implements fst.NumStater). Components that don't
// implement NumStater are trusted as-is.
func (e *Engine[W]) checkState(comp fst.Fst[W], compIndex, state int) error {
	if ns, ok := comp.(fst.NumStater); ok {
		if state < 0 || state >= ns.NumStates() {
			return &ComponentStateOutOfRangeError{Component: compIndex, State: state}
		}
	}
	return nil
}

// NumComponents returns how many components are registered.
func (e *Engine[W]) NumComponents() int {
	return len(e.components)
}

// RootComponent returns the component registered under the root label.
func (e *Engine[W]) RootComponent() fst.Fst[W] {
	return e.components[e.rootIndex]
}
