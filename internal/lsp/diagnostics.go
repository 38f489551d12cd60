package lsp

import (
	"github.com/alecthomas/participle/v2"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"wfst/internal/diagnostics"
)

// ConvertParseError turns a grammarlang parse failure into an LSP
// diagnostic, using the participle error's position when available.
func ConvertParseError(err error) []protocol.Diagnostic {
	pe, ok := err.(participle.Error)
	if !ok {
		return []protocol.Diagnostic{{
			Range:    zeroRange(),
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString("replace-parser"),
			Message:  err.Error(),
		}}
	}

	pos := pe.Position()
	return []protocol.Diagnostic{{
		Range: protocol.Range{
			Start: protocol.Position{Line: uint32(max0(pos.Line - 1)), Character: uint32(max0(pos.Column - 1))},
			End:   protocol.Position{Line: uint32(max0(pos.Line - 1)), Character: uint32(pos.Column + 5)},
		},
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Source:   ptrString("replace-parser"),
		Message:  pe.Message(),
	}}
}

// ConvertBuildError turns a grammarlang.Build failure (ultimately an
// internal/replace construction error) into an LSP diagnostic. Construction
// errors have no token position of their own, so the diagnostic is placed
// on the document's first character.
func ConvertBuildError(err error) []protocol.Diagnostic {
	d := diagnostics.FromReplaceError(err)
	message := d.Message
	if d.Code != "" {
		message = "[" + d.Code + "] " + message
	}
	return []protocol.Diagnostic{{
		Range:    zeroRange(),
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Source:   ptrString("replace-build"),
		Message:  message,
	}}
}

func zeroRange() protocol.Range {
	return protocol.Range{
		Start: protocol.Position{Line: 0, Character: 0},
		End:   protocol.Position{Line: 0, Character: 1},
	}
}

func max0(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity { return &s }

func ptrString(s string) *string { return &s }
