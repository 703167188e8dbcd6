package domains

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyDomainID     = errors.New("empty domain id")
	ErrDuplicateDomainID = errors.New("duplicate domain id")
)

// Registry is a fixed, ordered list of domains. The order never changes
// after construction, so a retried pass replays domains in the same order.
type Registry struct {
	domains []Domain
}

// NewRegistry validates that every canonical and legacy id is non-empty and
// unique across the registry.
func NewRegistry(domains ...Domain) (*Registry, error) {
	r := &Registry{domains: make([]Domain, 0, len(domains))}
	seen := make(map[string]struct{}, len(domains))

	for _, d := range domains {
		ids := append([]string{d.ID()}, d.LegacyIDs()...)
		for _, id := range ids {
			if id == "" {
				return nil, fmt.Errorf("%w: %T", ErrEmptyDomainID, d)
			}
			if _, ok := seen[id]; ok {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateDomainID, id)
			}
			seen[id] = struct{}{}
		}
		r.domains = append(r.domains, d)
	}

	return r, nil
}

// Domains returns the domains in registry order. The slice is a copy.
func (r *Registry) Domains() []Domain {
	out := make([]Domain, len(r.domains))
	copy(out, r.domains)
	return out
}

// RemoteIDs returns the ids to fetch for d: the canonical id first, then the
// legacy ids in order.
func RemoteIDs(d Domain) []string {
	return append([]string{d.ID()}, d.LegacyIDs()...)
}
