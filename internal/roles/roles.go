// Package roles models the authorization tiers the backend expresses as
// prefixed string tags ("ROLE_TENANT", "ROLE_LANDLORD", "ROLE_ADMIN").
// The wire format is preserved exactly; unknown tags round-trip untouched
// but never grant elevated access.
package roles

import "strings"

// Role is a single authorization tag in the backend's wire format
type Role string

const (
	Tenant   Role = "ROLE_TENANT"
	Landlord Role = "ROLE_LANDLORD"
	Admin    Role = "ROLE_ADMIN"
)

// Parse normalizes a raw tag or bare selection ("tenant", "Landlord",
// "ROLE_ADMIN") into a Role. Unrecognized input is kept as an opaque role
// so lists received from the backend survive a round trip.
func Parse(s string) Role {
	tag := strings.ToUpper(strings.TrimSpace(s))
	if tag == "" {
		return Role("")
	}
	if !strings.HasPrefix(tag, "ROLE_") {
		tag = "ROLE_" + tag
	}
	return Role(tag)
}

// String returns the wire representation
func (r Role) String() string {
	return string(r)
}

// Elevated reports whether the role grants landlord/admin access
func (r Role) Elevated() bool {
	return r == Landlord || r == Admin
}

// Set is the role list carried by a user
type Set []Role

// ParseSet converts raw wire tags into a Set
func ParseSet(tags []string) Set {
	set := make(Set, 0, len(tags))
	for _, tag := range tags {
		if role := Parse(tag); role != "" {
			set = append(set, role)
		}
	}
	return set
}

// Strings returns the wire representation of the set
func (s Set) Strings() []string {
	tags := make([]string, len(s))
	for i, role := range s {
		tags[i] = role.String()
	}
	return tags
}

// Has reports whether the set contains the given role
func (s Set) Has(role Role) bool {
	for _, r := range s {
		if r == role {
			return true
		}
	}
	return false
}

// Elevated reports whether any role in the set grants landlord/admin
// access. An empty set is never elevated.
func (s Set) Elevated() bool {
	for _, r := range s {
		if r.Elevated() {
			return true
		}
	}
	return false
}
