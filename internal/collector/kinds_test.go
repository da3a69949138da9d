package collector

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThomasCrouzet/tierview/internal/inventory"
	"github.com/ThomasCrouzet/tierview/internal/model"
)

func items(t *testing.T, kind inventory.Kind, body string) []inventory.Item {
	t.Helper()
	out, err := inventory.Parse(kind, []byte(body))
	require.NoError(t, err)
	return out
}

func emptySnapshot() *model.Snapshot {
	return model.NewSnapshot("LocalStack", time.Now())
}

func TestScopeVpcs(t *testing.T) {
	vpcs := ScopeVpcs(items(t, inventory.KindVPC, `{"Vpcs": [
		{"VpcId": "vpc-default", "IsDefault": true, "CidrBlock": "172.31.0.0/16", "Tags": [{"Key": "Name", "Value": "default"}]},
		{"VpcId": "vpc-b", "IsDefault": false, "CidrBlock": "10.1.0.0/16", "Tags": [{"Key": "Name", "Value": "second"}]},
		{"VpcId": "vpc-unnamed", "CidrBlock": "10.2.0.0/16"},
		{"VpcId": "vpc-blank", "CidrBlock": "10.3.0.0/16", "Tags": [{"Key": "Name", "Value": ""}]},
		{"VpcId": "vpc-a", "CidrBlock": "10.0.0.0/16", "Tags": [{"Key": "Name", "Value": "first"}]}
	]}`))

	assert.Equal(t, []model.Vpc{
		{ID: "vpc-b", CIDR: "10.1.0.0/16", Name: "second"},
		{ID: "vpc-a", CIDR: "10.0.0.0/16", Name: "first"},
	}, vpcs)

	scope := model.ScopeFromVpcs(vpcs)
	assert.True(t, scope.Restricted())
	assert.False(t, scope.Contains("vpc-default"))
	assert.False(t, scope.Contains("vpc-unnamed"))
}

func TestScopeVpcsEmpty(t *testing.T) {
	vpcs := ScopeVpcs(nil)
	assert.NotNil(t, vpcs)
	assert.Empty(t, vpcs)
}

func TestSubnetCollector(t *testing.T) {
	tests := []struct {
		name   string
		tags   string
		vpc    string
		bucket string // "" when the subnet must not be placed
	}{
		{"tag only", `[{"Key": "Name", "Value": "web-a"}, {"Key": "Tier", "Value": "public"}]`, "vpc-a", "public"},
		{"default tier", `[{"Key": "Name", "Value": "workers"}]`, "vpc-a", "app"},
		{"public overrides tag", `[{"Key": "Name", "Value": "My-PUBLIC-net"}, {"Key": "Tier", "Value": "database"}]`, "vpc-a", "public"},
		{"db overrides tag", `[{"Key": "Name", "Value": "db-subnet-1"}, {"Key": "Tier", "Value": "app"}]`, "vpc-a", "database"},
		{"database name", `[{"Key": "Name", "Value": "Database-2"}]`, "vpc-a", "database"},
		{"public wins over db", `[{"Key": "Name", "Value": "public-db"}]`, "vpc-a", "public"},
		{"unmatched tier dropped", `[{"Key": "Name", "Value": "edge"}, {"Key": "Tier", "Value": "internet"}]`, "vpc-a", ""},
		{"web tier dropped", `[{"Key": "Name", "Value": "front"}, {"Key": "Tier", "Value": "web"}]`, "vpc-a", ""},
		{"empty tier tag dropped", `[{"Key": "Name", "Value": "orders"}, {"Key": "Tier", "Value": ""}]`, "vpc-a", ""},
		{"empty tier tag with db name", `[{"Key": "Name", "Value": "orders-db"}, {"Key": "Tier", "Value": ""}]`, "vpc-a", "database"},
		{"unnamed dropped", `[{"Key": "Tier", "Value": "public"}]`, "vpc-a", ""},
		{"blank name dropped", `[{"Key": "Name", "Value": ""}, {"Key": "Tier", "Value": "public"}]`, "vpc-a", ""},
		{"out of scope", `[{"Key": "Name", "Value": "public-1"}]`, "vpc-z", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := `{"Subnets": [{"SubnetId": "subnet-1", "VpcId": "` + tt.vpc + `", "CidrBlock": "10.0.1.0/24", "AvailabilityZone": "us-east-1a", "Tags": ` + tt.tags + `}]}`
			snap := emptySnapshot()
			detail := (&SubnetCollector{}).Collect(items(t, inventory.KindSubnet, body), model.RestrictedTo("vpc-a"), snap)
			assert.NotEmpty(t, detail)

			buckets := map[string][]model.Subnet{
				"public":   snap.Subnets.Public,
				"app":      snap.Subnets.App,
				"database": snap.Subnets.Database,
			}
			for name, bucket := range buckets {
				if name == tt.bucket {
					require.Len(t, bucket, 1, name)
					assert.Equal(t, "subnet-1", bucket[0].ID)
					assert.Equal(t, "us-east-1a", bucket[0].AvailabilityZone)
					assert.Equal(t, "vpc-a", bucket[0].VpcID)
				} else {
					assert.Empty(t, bucket, name)
				}
			}
		})
	}
}

func TestInstanceCollector(t *testing.T) {
	body := `{"Reservations": [{"Instances": [
		{"InstanceId": "i-1", "InstanceType": "t3.micro", "VpcId": "vpc-a", "PrivateIpAddress": "10.0.1.10",
		 "State": {"Name": "running"}, "Tags": [{"Key": "Name", "Value": "frontend"}]},
		{"InstanceId": "i-2", "VpcId": "vpc-a"},
		{"InstanceId": "i-3", "VpcId": "vpc-a", "State": {"Name": "stopped"},
		 "Tags": [{"Key": "Name", "Value": "Billing-APP"}, {"Key": "Tier", "Value": "web"}]},
		{"InstanceId": "i-4", "VpcId": "vpc-a", "Tags": [{"Key": "Name", "Value": "cache"}, {"Key": "Tier", "Value": "database"}]},
		{"InstanceId": "i-5", "VpcId": "vpc-z", "Tags": [{"Key": "Name", "Value": "elsewhere"}]},
		{"InstanceId": "i-6", "Tags": [{"Key": "Name", "Value": "no-vpc"}]}
	]}]}`

	snap := emptySnapshot()
	(&InstanceCollector{}).Collect(items(t, inventory.KindInstance, body), model.RestrictedTo("vpc-a"), snap)

	require.Len(t, snap.Instances.Web, 2)
	assert.Equal(t, model.Instance{
		ID: "i-1", Type: "t3.micro", State: "running", PrivateIP: "10.0.1.10",
		Name: "frontend", VpcID: "vpc-a", Tier: model.TierWeb,
	}, snap.Instances.Web[0])

	unnamed := snap.Instances.Web[1]
	assert.Equal(t, "i-2", unnamed.ID)
	assert.Equal(t, model.UnnamedInstance, unnamed.Name)
	assert.Equal(t, model.UnknownState, unnamed.State)
	assert.Equal(t, model.TierWeb, unnamed.Tier)
	assert.Empty(t, unnamed.PrivateIP)

	require.Len(t, snap.Instances.App, 1)
	assert.Equal(t, "i-3", snap.Instances.App[0].ID)
	assert.Equal(t, "stopped", snap.Instances.App[0].State)
}

func TestInstanceCollectorEmptyTierTag(t *testing.T) {
	body := `{"Reservations": [{"Instances": [
		{"InstanceId": "i-1", "VpcId": "vpc-a", "Tags": [{"Key": "Name", "Value": "worker"}, {"Key": "Tier", "Value": ""}]},
		{"InstanceId": "i-2", "VpcId": "vpc-a", "Tags": [{"Key": "Name", "Value": "app-worker"}, {"Key": "Tier", "Value": ""}]}
	]}]}`

	snap := emptySnapshot()
	detail := (&InstanceCollector{}).Collect(items(t, inventory.KindInstance, body), model.RestrictedTo("vpc-a"), snap)

	assert.Empty(t, snap.Instances.Web)
	require.Len(t, snap.Instances.App, 1)
	assert.Equal(t, "i-2", snap.Instances.App[0].ID)
	assert.Equal(t, "0 web, 1 app (1 dropped)", detail)
}

func TestInstanceCollectorUnrestricted(t *testing.T) {
	body := `{"Reservations": [{"Instances": [{"InstanceId": "i-6", "Tags": [{"Key": "Name", "Value": "no-vpc"}]}]}]}`
	snap := emptySnapshot()
	(&InstanceCollector{}).Collect(items(t, inventory.KindInstance, body), model.Unrestricted(), snap)
	assert.Len(t, snap.Instances.Web, 1)
}

func TestSecurityGroupCollector(t *testing.T) {
	body := `{"SecurityGroups": [
		{"GroupId": "sg-1", "GroupName": "default", "VpcId": "vpc-a",
		 "IpPermissions": [{"IpProtocol": "tcp", "FromPort": 22, "ToPort": 22}]},
		{"GroupId": "sg-2", "GroupName": "Default", "VpcId": "vpc-a", "IpPermissions": []},
		{"GroupId": "sg-3", "GroupName": "web", "VpcId": "vpc-a", "IpPermissions": [
			{"IpProtocol": "tcp", "FromPort": 22, "ToPort": 22},
			{"IpProtocol": "-1"},
			{"IpProtocol": "tcp", "FromPort": null},
			{"IpProtocol": "tcp", "FromPort": 0, "ToPort": 65535},
			{"IpProtocol": "icmp", "FromPort": -1, "ToPort": -1},
			{"IpProtocol": "tcp", "FromPort": 80, "ToPort": 80}
		]},
		{"GroupId": "sg-4", "GroupName": "other", "VpcId": "vpc-z"}
	]}`

	snap := emptySnapshot()
	(&SecurityGroupCollector{}).Collect(items(t, inventory.KindSecurityGroup, body), model.RestrictedTo("vpc-a"), snap)

	require.Len(t, snap.SecurityGroups, 2)
	assert.Equal(t, "Default", snap.SecurityGroups[0].Name)
	assert.Equal(t, []string{}, snap.SecurityGroups[0].Ports)
	assert.Equal(t, "web", snap.SecurityGroups[1].Name)
	assert.Equal(t, []string{"22", "-1", "80"}, snap.SecurityGroups[1].Ports)
}

func TestGatewayCollector(t *testing.T) {
	tests := []struct {
		name   string
		record string
		scope  model.Scope
		want   *model.InternetGateway
	}{
		{
			name: "last attachment wins",
			record: `{"InternetGatewayId": "igw-1", "Attachments": [
				{"VpcId": "vpc-a", "State": "available"}, {"VpcId": "vpc-b", "State": "available"}]}`,
			scope: model.Unrestricted(),
			want:  &model.InternetGateway{ID: "igw-1", VpcID: "vpc-b"},
		},
		{
			name:   "named and detached",
			record: `{"InternetGatewayId": "igw-2", "Attachments": [], "Tags": [{"Key": "Name", "Value": "spare"}]}`,
			scope:  model.Unrestricted(),
			want:   &model.InternetGateway{ID: "igw-2", Name: "spare"},
		},
		{
			name:   "no name no vpc",
			record: `{"InternetGatewayId": "igw-3"}`,
			scope:  model.Unrestricted(),
		},
		{
			name:   "detached under restricted scope",
			record: `{"InternetGatewayId": "igw-4", "Tags": [{"Key": "Name", "Value": "spare"}]}`,
			scope:  model.RestrictedTo("vpc-a"),
		},
		{
			name:   "last attachment out of scope",
			record: `{"InternetGatewayId": "igw-5", "Attachments": [{"VpcId": "vpc-a"}, {"VpcId": "vpc-b"}]}`,
			scope:  model.RestrictedTo("vpc-a"),
		},
		{
			name:   "in scope",
			record: `{"InternetGatewayId": "igw-6", "Attachments": [{"VpcId": "vpc-a"}], "Tags": [{"Key": "Name", "Value": "main"}]}`,
			scope:  model.RestrictedTo("vpc-a"),
			want:   &model.InternetGateway{ID: "igw-6", Name: "main", VpcID: "vpc-a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := `{"InternetGateways": [` + tt.record + `]}`
			snap := emptySnapshot()
			(&GatewayCollector{}).Collect(items(t, inventory.KindInternetGateway, body), tt.scope, snap)

			if tt.want == nil {
				assert.Empty(t, snap.InternetGateways)
				return
			}
			require.Len(t, snap.InternetGateways, 1)
			assert.Equal(t, *tt.want, snap.InternetGateways[0])
		})
	}
}
