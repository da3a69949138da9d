package model

// UnnamedInstance is the display name used for instances without a Name tag.
const UnnamedInstance = "(unnamed)"

// UnknownState is the lifecycle state reported when the provider omits one.
const UnknownState = "unknown"

// Vpc is a non-default, named VPC that defines the deployment scope.
type Vpc struct {
	ID   string `json:"id" yaml:"id"`
	CIDR string `json:"cidr" yaml:"cidr"`
	Name string `json:"name" yaml:"name"`
}

// NoVpc is the placeholder shown when no VPC is in scope.
func NoVpc() Vpc {
	return Vpc{ID: "N/A", CIDR: "N/A", Name: "No VPC"}
}

// Subnet is a classified subnet.
type Subnet struct {
	ID               string `json:"id" yaml:"id"`
	CIDR             string `json:"cidr" yaml:"cidr"`
	AvailabilityZone string `json:"az" yaml:"az"`
	Name             string `json:"name" yaml:"name"`
	VpcID            string `json:"vpc_id" yaml:"vpc_id"`
	Tier             Tier   `json:"tier" yaml:"tier"`
}

// Instance is a classified compute instance.
type Instance struct {
	ID        string `json:"id" yaml:"id"`
	Type      string `json:"type" yaml:"type"`
	State     string `json:"state" yaml:"state"`
	PrivateIP string `json:"private_ip,omitempty" yaml:"private_ip,omitempty"`
	Name      string `json:"name" yaml:"name"`
	VpcID     string `json:"vpc_id,omitempty" yaml:"vpc_id,omitempty"`
	Tier      Tier   `json:"tier" yaml:"tier"`
}

// SecurityGroup is a non-default security group and its opened ports.
type SecurityGroup struct {
	ID    string   `json:"id" yaml:"id"`
	Name  string   `json:"name" yaml:"name"`
	VpcID string   `json:"vpc_id,omitempty" yaml:"vpc_id,omitempty"`
	Ports []string `json:"ports" yaml:"ports"`
}

// InternetGateway is a gateway and the VPC it is (last seen) attached to.
type InternetGateway struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	VpcID string `json:"vpc_id,omitempty" yaml:"vpc_id,omitempty"`
}

// NoGateway is the placeholder shown when no internet gateway is in scope.
func NoGateway() InternetGateway {
	return InternetGateway{ID: "N/A", Name: "No IGW"}
}

// SubnetTiers buckets subnets by tier. Only public, app and database subnets
// are placed; the app bucket holds the private application-layer subnets.
type SubnetTiers struct {
	Public   []Subnet `json:"public" yaml:"public"`
	App      []Subnet `json:"app" yaml:"app"`
	Database []Subnet `json:"database" yaml:"database"`
}

// Add places s into the bucket matching its tier. It reports false, and
// drops s, when no bucket matches.
func (b *SubnetTiers) Add(s Subnet) bool {
	switch s.Tier {
	case TierPublic:
		b.Public = append(b.Public, s)
	case TierApp:
		b.App = append(b.App, s)
	case TierDatabase:
		b.Database = append(b.Database, s)
	default:
		return false
	}
	return true
}

// Len returns the number of bucketed subnets.
func (b SubnetTiers) Len() int {
	return len(b.Public) + len(b.App) + len(b.Database)
}

// InstanceTiers buckets instances into the web and app tiers.
type InstanceTiers struct {
	Web []Instance `json:"web" yaml:"web"`
	App []Instance `json:"app" yaml:"app"`
}

// Add places i into the bucket matching its tier. It reports false, and
// drops i, when no bucket matches.
func (b *InstanceTiers) Add(i Instance) bool {
	switch i.Tier {
	case TierWeb:
		b.Web = append(b.Web, i)
	case TierApp:
		b.App = append(b.App, i)
	default:
		return false
	}
	return true
}

// Len returns the number of bucketed instances.
func (b InstanceTiers) Len() int {
	return len(b.Web) + len(b.App)
}
