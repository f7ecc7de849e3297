package parser

import (
	"strings"

	"fjacquet/pdf-csv/internal/parsererror"
)

// Registry is the process-wide catalog mapping bank identifiers and aliases
// to parser implementations. It is populated once by an explicit
// initialization routine and is read-only afterwards, which makes concurrent
// reads across a batch safe without locking.
type Registry struct {
	byID    map[string]Parser
	ordered []Parser
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]Parser)}
}

// Register adds a parser under its identifier and every alias. It fails fast
// with a *parsererror.RegistrationError when the identifier or any alias is
// already claimed, including an alias colliding with an existing identifier.
func (r *Registry) Register(p Parser) error {
	keys := append([]string{p.ID()}, p.Aliases()...)
	for _, key := range keys {
		key = strings.ToLower(strings.TrimSpace(key))
		if key == "" {
			continue
		}
		if _, exists := r.byID[key]; exists {
			return &parsererror.RegistrationError{ID: p.ID(), Conflict: key}
		}
	}
	for _, key := range keys {
		key = strings.ToLower(strings.TrimSpace(key))
		if key == "" {
			continue
		}
		r.byID[key] = p
	}
	r.ordered = append(r.ordered, p)
	return nil
}

// Get resolves a parser by identifier or alias.
func (r *Registry) Get(id string) (Parser, bool) {
	p, ok := r.byID[strings.ToLower(strings.TrimSpace(id))]
	return p, ok
}

// Sniff iterates registered parsers in registration order and returns the
// first whose CanHandle accepts the text.
func (r *Registry) Sniff(text string) (Parser, bool) {
	for _, p := range r.ordered {
		if p.CanHandle(text) {
			return p, true
		}
	}
	return nil, false
}

// Fallback maps an unresolved bank hint to a generic parser: hints that look
// Spanish go to the generic Spanish parser, everything else to the generic
// English one. Returns false when the registry holds neither.
func (r *Registry) Fallback(hint string) (Parser, bool) {
	lower := strings.ToLower(hint)
	if lower == "" || lower == "unknown" {
		return nil, false
	}
	for _, marker := range []string{"spanish", "spain", "españa"} {
		if strings.Contains(lower, marker) {
			return r.Get("generic_spanish")
		}
	}
	return r.Get("generic_english")
}

// IDs returns the primary identifiers in registration order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.ordered))
	for _, p := range r.ordered {
		ids = append(ids, p.ID())
	}
	return ids
}
