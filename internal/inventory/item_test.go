package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseItemTags(t *testing.T) {
	it := ParseItem(KindSubnet, `{
		"SubnetId": "subnet-1",
		"CidrBlock": "10.0.1.0/24",
		"Tags": [
			{"Key": "Name", "Value": "first"},
			{"Key": "Tier", "Value": "public"},
			{"Key": "Name", "Value": "second"}
		]
	}`)

	assert.Equal(t, "subnet-1", it.ID)
	assert.Equal(t, KindSubnet, it.Kind)
	tier, ok := it.Tag(TierTag)
	assert.True(t, ok)
	assert.Equal(t, "public", tier)
	assert.Equal(t, "10.0.1.0/24", it.Attr("CidrBlock"))

	name, ok := it.Name()
	assert.True(t, ok)
	assert.Equal(t, "second", name)
}

func TestItemTagPresence(t *testing.T) {
	it := ParseItem(KindSubnet, `{"SubnetId": "subnet-1", "Tags": [{"Key": "Tier", "Value": ""}]}`)

	tier, ok := it.Tag(TierTag)
	assert.True(t, ok)
	assert.Empty(t, tier)

	_, ok = it.Tag(NameTag)
	assert.False(t, ok)
}

func TestItemNameUnresolved(t *testing.T) {
	tests := []struct {
		desc   string
		record string
	}{
		{"no tags", `{"VpcId": "vpc-1"}`},
		{"empty tags", `{"VpcId": "vpc-1", "Tags": []}`},
		{"other tags", `{"VpcId": "vpc-1", "Tags": [{"Key": "Env", "Value": "dev"}]}`},
		{"empty name", `{"VpcId": "vpc-1", "Tags": [{"Key": "Name", "Value": ""}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			it := ParseItem(KindVPC, tt.record)
			name, ok := it.Name()
			assert.False(t, ok)
			assert.Empty(t, name)
			assert.Equal(t, "vpc-1", it.ID)
		})
	}
}

func TestParseFlattensReservations(t *testing.T) {
	data := []byte(`{"Reservations": [
		{"Instances": [{"InstanceId": "i-1"}, {"InstanceId": "i-2"}]},
		{"Instances": []},
		{"Instances": [{"InstanceId": "i-3"}]}
	]}`)

	items, err := Parse(KindInstance, data)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "i-1", items[0].ID)
	assert.Equal(t, "i-2", items[1].ID)
	assert.Equal(t, "i-3", items[2].ID)
}

func TestParseEmptyAndMissing(t *testing.T) {
	items, err := Parse(KindVPC, []byte("  \n"))
	assert.NoError(t, err)
	assert.Empty(t, items)

	items, err = Parse(KindVPC, []byte(`{}`))
	assert.NoError(t, err)
	assert.Empty(t, items)
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		desc string
		body string
	}{
		{"truncated", `{"Vpcs": [`},
		{"array root", `[{"VpcId": "vpc-1"}]`},
		{"not a list", `{"Vpcs": "nope"}`},
		{"text", `Could not connect to the endpoint URL`},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			items, err := Parse(KindVPC, []byte(tt.body))
			assert.ErrorIs(t, err, ErrMalformed)
			assert.Nil(t, items)
		})
	}
}

func TestKindCommand(t *testing.T) {
	assert.Equal(t, "describe-vpcs", KindVPC.Command())
	assert.Equal(t, "describe-security-groups", KindSecurityGroup.Command())
	assert.Equal(t, "describe-internet-gateways", KindInternetGateway.Command())
	assert.Len(t, AllKinds(), 5)
	assert.Equal(t, KindVPC, AllKinds()[0])
}
