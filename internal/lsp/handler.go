// Package lsp implements a Language Server Protocol front end over the
// component-table grammar: it parses ".repg" files on open/change, builds
// a Replace engine from them, and reports parse or construction failures
// as LSP diagnostics.
package lsp

import (
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"wfst/internal/grammarlang"
)

// Handler implements the glsp server handlers for the component-table
// grammar.
type Handler struct {
	mu       sync.RWMutex
	content  map[string]string
	programs map[string]*grammarlang.Program
}

// NewHandler returns an empty Handler.
func NewHandler() *Handler {
	return &Handler{
		content:  make(map[string]string),
		programs: make(map[string]*grammarlang.Program),
	}
}

// Initialize advertises the server's capabilities.
func (h *Handler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Println("replace-lsp: Initialize called")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			CompletionProvider: &protocol.CompletionOptions{
				ResolveProvider: ptrBool(false),
			},
		},
	}, nil
}

// Initialized is called once the client has received the capabilities.
func (h *Handler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Println("replace-lsp: Initialized")
	return nil
}

// Shutdown handles the client's shutdown request.
func (h *Handler) Shutdown(ctx *glsp.Context) error {
	log.Println("replace-lsp: Shutdown")
	return nil
}

// TextDocumentDidOpen re-parses the opened document and publishes
// diagnostics.
func (h *Handler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Printf("replace-lsp: opened %s\n", params.TextDocument.URI)
	return h.refresh(ctx, params.TextDocument.URI)
}

// TextDocumentDidChange re-reads the document from disk, re-parses it and
// publishes diagnostics. The edited text carried in params is not used, so
// unsaved changes are not reflected.
func (h *Handler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	log.Printf("replace-lsp: changed %s\n", params.TextDocument.URI)
	return h.refresh(ctx, params.TextDocument.URI)
}

// TextDocumentDidClose drops the cached state for a closed document.
func (h *Handler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Printf("replace-lsp: closed %s\n", params.TextDocument.URI)

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to convert URI %s: %w", params.TextDocument.URI, err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.content, path)
	delete(h.programs, path)
	return nil
}

// TextDocumentCompletion returns an empty completion list; the grammar's
// keyword set is small enough that editors fall back to their own
// word-based completion.
func (h *Handler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	return &protocol.CompletionList{IsIncomplete: false, Items: []protocol.CompletionItem{}}, nil
}

// refresh reads, parses and attempts to build the engine for uri, then
// publishes whatever diagnostics resulted (possibly none).
func (h *Handler) refresh(ctx *glsp.Context, uri protocol.DocumentUri) error {
	path, err := uriToPath(uri)
	if err != nil {
		return fmt.Errorf("failed to convert URI %s: %w", uri, err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}
	source := string(content)

	program, parseErr := grammarlang.ParseString(path, source)
	if parseErr != nil {
		sendDiagnosticNotification(ctx, uri, ConvertParseError(parseErr))
		return nil
	}

	if _, buildErr := grammarlang.Build(program, false); buildErr != nil {
		sendDiagnosticNotification(ctx, uri, ConvertBuildError(buildErr))
		return nil
	}

	h.mu.Lock()
	h.content[path] = source
	h.programs[path] = program
	h.mu.Unlock()

	// Clear any diagnostics from a previous, broken revision.
	sendDiagnosticNotification(ctx, uri, []protocol.Diagnostic{})
	return nil
}

func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}
	return filepath.FromSlash(path), nil
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.URI, diags []protocol.Diagnostic) {
	payload, err := json.MarshalIndent(diags, "", "  ")
	if err != nil {
		log.Println("replace-lsp: failed to marshal diagnostics:", err)
		return
	}
	log.Println("replace-lsp: sending diagnostics:", string(payload))

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diags,
	})
}

func ptrBool(b bool) *bool { return &b }

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind { return &k }
