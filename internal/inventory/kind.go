package inventory

// Kind is one of the five resource kinds the dashboard queries.
type Kind string

const (
	KindVPC             Kind = "vpcs"
	KindSubnet          Kind = "subnets"
	KindInstance        Kind = "instances"
	KindSecurityGroup   Kind = "security-groups"
	KindInternetGateway Kind = "internet-gateways"
)

// AllKinds returns every kind in fetch order. VPCs come first because they
// define the scope for everything else.
func AllKinds() []Kind {
	return []Kind{KindVPC, KindSubnet, KindInstance, KindSecurityGroup, KindInternetGateway}
}

// Command returns the ec2 sub-command that describes this kind.
func (k Kind) Command() string {
	return "describe-" + string(k)
}

// collectionKey is the top-level key holding the records in the describe output.
func (k Kind) collectionKey() string {
	switch k {
	case KindVPC:
		return "Vpcs"
	case KindSubnet:
		return "Subnets"
	case KindInstance:
		return "Reservations"
	case KindSecurityGroup:
		return "SecurityGroups"
	case KindInternetGateway:
		return "InternetGateways"
	}
	return ""
}

// idField is the record attribute carrying the provider-assigned identifier.
func (k Kind) idField() string {
	switch k {
	case KindVPC:
		return "VpcId"
	case KindSubnet:
		return "SubnetId"
	case KindInstance:
		return "InstanceId"
	case KindSecurityGroup:
		return "GroupId"
	case KindInternetGateway:
		return "InternetGatewayId"
	}
	return ""
}
