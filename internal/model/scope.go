package model

import (
	"sort"
	"strings"
)

// Scope is the set of VPC identifiers considered part of the deployment.
// The zero value is unrestricted.
type Scope struct {
	restricted bool
	vpcs       map[string]struct{}
}

// Unrestricted returns a scope that admits every VPC.
func Unrestricted() Scope {
	return Scope{}
}

// RestrictedTo returns a scope admitting only the given VPC identifiers.
// With no identifiers it admits nothing.
func RestrictedTo(ids ...string) Scope {
	s := Scope{restricted: true, vpcs: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		s.vpcs[id] = struct{}{}
	}
	return s
}

// ScopeFromVpcs derives the scope from the in-scope VPC list. An empty list
// (no VPCs, only default ones, or a failed query) leaves scope unrestricted so
// other resource kinds still render.
func ScopeFromVpcs(vpcs []Vpc) Scope {
	if len(vpcs) == 0 {
		return Unrestricted()
	}
	ids := make([]string, 0, len(vpcs))
	for _, v := range vpcs {
		ids = append(ids, v.ID)
	}
	return RestrictedTo(ids...)
}

// Restricted reports whether the scope filters by VPC.
func (s Scope) Restricted() bool {
	return s.restricted
}

// Contains reports whether a resource owned by vpcID is in scope.
func (s Scope) Contains(vpcID string) bool {
	if !s.restricted {
		return true
	}
	_, ok := s.vpcs[vpcID]
	return ok
}

// IDs returns the sorted VPC identifiers of a restricted scope, nil otherwise.
func (s Scope) IDs() []string {
	if !s.restricted {
		return nil
	}
	ids := make([]string, 0, len(s.vpcs))
	for id := range s.vpcs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// String describes the scope for logs.
func (s Scope) String() string {
	if !s.restricted {
		return "unrestricted"
	}
	if len(s.vpcs) == 0 {
		return "restricted to nothing"
	}
	return "restricted to " + strings.Join(s.IDs(), ", ")
}
