package diagnostics

// Error codes for Replace construction and grammar-file errors.
//
// Code ranges:
// E0001-E0099: component-table construction errors
// E0100-E0199: grammar parser errors

const (
	// E0001: root label not present in the component table.
	CodeUnknownRoot = "E0001"

	// E0002: a component reported a state identifier out of its own range.
	CodeComponentStateOutOfRange = "E0002"

	// E0003: a component reported a state final but returned no weight.
	CodeBrokenFinalWeight = "E0003"

	// E0100: grammar syntax error.
	CodeSyntaxError = "E0100"
)
