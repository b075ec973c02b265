// Package router implements the address router (C3 in SPEC_FULL.md): a
// static mapping from the nine TUIO OSC address strings to their profile
// kind, adapted from the command-dispatch-table shape of the teacher's
// internal/ctrl/control.go (opcode → handler becomes address → kind, with
// no kernel round-trip involved).
package router

import "github.com/halvarsson/go-tuio/internal/profile"

// Router maps an OSC address to its TUIO profile kind.
type Router struct {
	byAddress map[string]profile.Kind
}

// New builds a Router pre-populated with the nine stable TUIO addresses.
func New() *Router {
	r := &Router{byAddress: make(map[string]profile.Kind, len(profile.AllKinds))}
	for _, k := range profile.AllKinds {
		r.byAddress[k.Address()] = k
	}
	return r
}

// Route returns the profile kind for an OSC address and whether it
// matched one of the nine TUIO addresses. Matching is an exact string
// match, not a pattern match — spec.md's prose talks about address
// "patterns," but the nine TUIO addresses are a closed, fixed set with
// no wildcards to match against. Unmatched addresses are the caller's
// UnknownAddress case (spec.md §7), forwarded to a no-op default handler
// rather than treated as fatal.
func (r *Router) Route(address string) (profile.Kind, bool) {
	k, ok := r.byAddress[address]
	return k, ok
}
