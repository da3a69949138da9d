package model

import "strings"

// Tier is the architectural role a resource plays in a 3-tier deployment.
type Tier string

const (
	TierInternet Tier = "internet"
	TierPublic   Tier = "public"
	TierWeb      Tier = "web"
	TierApp      Tier = "app"
	TierDatabase Tier = "database"
)

// Default tiers applied when a resource carries no Tier tag.
const (
	DefaultSubnetTier   = TierApp
	DefaultInstanceTier = TierWeb
)

// Tiers returns the fixed tier order, outermost first.
func Tiers() []Tier {
	return []Tier{TierInternet, TierPublic, TierWeb, TierApp, TierDatabase}
}

// Label returns a human-readable tier name.
func (t Tier) Label() string {
	switch t {
	case TierInternet:
		return "Internet"
	case TierPublic:
		return "Public"
	case TierWeb:
		return "Web"
	case TierApp:
		return "App"
	case TierDatabase:
		return "Database"
	}
	return string(t)
}

// Known reports whether t is one of the five fixed tiers.
func (t Tier) Known() bool {
	for _, k := range Tiers() {
		if t == k {
			return true
		}
	}
	return false
}

// ClassifySubnet resolves a subnet's tier from its display name and its Tier
// tag. The default applies only when the tag is absent; a present but empty
// tag resolves to no tier. Name substrings override the tag.
func ClassifySubnet(name, tag string, tagged bool) Tier {
	tier := DefaultSubnetTier
	if tagged {
		tier = Tier(tag)
	}

	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "public"):
		return TierPublic
	case strings.Contains(lower, "db"), strings.Contains(lower, "database"):
		return TierDatabase
	}
	return tier
}

// ClassifyInstance resolves an instance's tier from its display name and its
// Tier tag, with the same absent versus empty distinction as ClassifySubnet.
func ClassifyInstance(name, tag string, tagged bool) Tier {
	tier := DefaultInstanceTier
	if tagged {
		tier = Tier(tag)
	}

	if strings.Contains(strings.ToLower(name), "app") {
		return TierApp
	}
	return tier
}
