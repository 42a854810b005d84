// Package authz implements the capability gate from the access-control
// section of the configuration.
package authz

import (
	"shop/config"
	"shop/internal/domain/service"
)

// wildcard grants a role every capability.
const wildcard = "*"

// policy is a role -> capability-set table. Lookups that miss deny.
type policy struct {
	grants map[string]map[string]struct{}
}

// NewPolicy builds the Authorizer from the configured role grants.
func NewPolicy(cfg *config.Config) service.Authorizer {
	grants := make(map[string]map[string]struct{}, len(cfg.AccessControl))
	for role, capabilities := range cfg.AccessControl {
		set := make(map[string]struct{}, len(capabilities))
		for _, capability := range capabilities {
			set[capability] = struct{}{}
		}
		grants[role] = set
	}

	return &policy{grants: grants}
}

// Allows reports whether the role holds the named capability.
// Unknown roles and unknown capabilities deny.
func (p *policy) Allows(capability, role string) bool {
	set, ok := p.grants[role]
	if !ok {
		return false
	}
	if _, ok := set[wildcard]; ok {
		return true
	}
	_, ok = set[capability]

	return ok
}
