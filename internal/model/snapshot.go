package model

import "time"

// SourceStatus records the outcome of one resource-kind query so that a
// failed query is distinguishable from an empty inventory.
type SourceStatus struct {
	Kind      string `json:"kind" yaml:"kind"`
	Available bool   `json:"available" yaml:"available"`
	Count     int    `json:"count" yaml:"count"`
	Error     string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Snapshot is the complete result of one discovery and classification cycle.
type Snapshot struct {
	Mode             string            `json:"mode" yaml:"mode"`
	GeneratedAt      time.Time         `json:"generated_at" yaml:"generated_at"`
	Scope            []string          `json:"scope,omitempty" yaml:"scope,omitempty"`
	Vpcs             []Vpc             `json:"vpcs" yaml:"vpcs"`
	Subnets          SubnetTiers       `json:"subnets" yaml:"subnets"`
	Instances        InstanceTiers     `json:"instances" yaml:"instances"`
	SecurityGroups   []SecurityGroup   `json:"security_groups" yaml:"security_groups"`
	InternetGateways []InternetGateway `json:"internet_gateways" yaml:"internet_gateways"`
	TotalSubnets     int               `json:"total_subnets" yaml:"total_subnets"`
	TotalInstances   int               `json:"total_instances" yaml:"total_instances"`
	PrimaryVpc       Vpc               `json:"primary_vpc" yaml:"primary_vpc"`
	PrimaryGateway   InternetGateway   `json:"primary_gateway" yaml:"primary_gateway"`
	Sources          []SourceStatus    `json:"sources" yaml:"sources"`
}

// NewSnapshot creates an empty Snapshot for the given mode.
func NewSnapshot(mode string, now time.Time) *Snapshot {
	return &Snapshot{
		Mode:             mode,
		GeneratedAt:      now,
		Vpcs:             []Vpc{},
		SecurityGroups:   []SecurityGroup{},
		InternetGateways: []InternetGateway{},
		PrimaryVpc:       NoVpc(),
		PrimaryGateway:   NoGateway(),
	}
}

// Summarize derives the totals and the representative VPC and gateway.
func (s *Snapshot) Summarize() {
	s.TotalSubnets = s.Subnets.Len()
	s.TotalInstances = s.Instances.Len()

	s.PrimaryVpc = NoVpc()
	if len(s.Vpcs) > 0 {
		s.PrimaryVpc = s.Vpcs[0]
	}
	s.PrimaryGateway = NoGateway()
	if len(s.InternetGateways) > 0 {
		s.PrimaryGateway = s.InternetGateways[0]
	}
}

// Degraded reports whether any resource-kind query failed.
func (s *Snapshot) Degraded() bool {
	for _, src := range s.Sources {
		if !src.Available {
			return true
		}
	}
	return false
}

// UnavailableSources returns the statuses of failed queries.
func (s *Snapshot) UnavailableSources() []SourceStatus {
	var out []SourceStatus
	for _, src := range s.Sources {
		if !src.Available {
			out = append(out, src)
		}
	}
	return out
}

// TierCounts returns the number of placed resources per tier. The app tier
// counts both app subnets and app instances.
func (s *Snapshot) TierCounts() map[Tier]int {
	return map[Tier]int{
		TierInternet: len(s.InternetGateways),
		TierPublic:   len(s.Subnets.Public),
		TierWeb:      len(s.Instances.Web),
		TierApp:      len(s.Subnets.App) + len(s.Instances.App),
		TierDatabase: len(s.Subnets.Database),
	}
}
