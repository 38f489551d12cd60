package replace

// LabelType controls which of a rewritten transition's two labels carry the
// original value versus epsilon, per spec.md §6.
type LabelType string

const (
	LabelNeither LabelType = "neither"
	LabelInput   LabelType = "input"
	LabelOutput  LabelType = "output"
	LabelBoth    LabelType = "both"
)

// Config is the full construction-time configuration surface of spec.md §6.
// The ergonomic entry point most callers want is NewEpsilonConfig.
type Config struct {
	CallLabelType   LabelType
	ReturnLabelType LabelType

	// CallOutputLabel overrides the call transition's output label when
	// CallLabelType is Output or Both. nil means "use the original output
	// label (the non-terminal itself)". A value of 0 forces CallLabelType
	// to Neither during normalization.
	CallOutputLabel *int

	// ReturnLabel is the label used on synthetic return transitions. A
	// value of 0 forces ReturnLabelType to Neither during normalization.
	ReturnLabel int
}

// NewEpsilonConfig is the caller-facing ergonomic constructor: it expands a
// single epsilon_on_replace boolean into the full Config, per spec.md §6's
// table.
func NewEpsilonConfig(epsilonOnReplace bool) Config {
	cfg := Config{
		ReturnLabelType: LabelNeither,
		ReturnLabel:     0,
	}
	if epsilonOnReplace {
		cfg.CallLabelType = LabelNeither
		zero := 0
		cfg.CallOutputLabel = &zero
	} else {
		cfg.CallLabelType = LabelInput
	}
	return cfg
}

// normalize applies spec.md §4.3 construction step 3: a configured label of
// literal zero collapses the corresponding policy to Neither, so later
// "is this an epsilon?" checks coincide with "is the produced label zero?".
func (c Config) normalize() Config {
	if c.CallOutputLabel != nil && *c.CallOutputLabel == 0 {
		c.CallLabelType = LabelNeither
	}
	if c.ReturnLabel == 0 {
		c.ReturnLabelType = LabelNeither
	}
	return c
}
