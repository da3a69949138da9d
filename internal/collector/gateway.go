package collector

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/ThomasCrouzet/tierview/internal/inventory"
	"github.com/ThomasCrouzet/tierview/internal/model"
)

func init() {
	Register(func() KindCollector { return &GatewayCollector{} })
}

// GatewayCollector lists the internet gateways attached to in-scope VPCs.
type GatewayCollector struct{}

func (gc *GatewayCollector) Metadata() CollectorMetadata {
	return CollectorMetadata{
		Name:        "internet-gateways",
		DisplayName: "Internet Gateways",
		Description: "Internet gateways and the VPC they are attached to",
		Kind:        inventory.KindInternetGateway,
	}
}

func (gc *GatewayCollector) Collect(items []inventory.Item, scope model.Scope, snap *model.Snapshot) string {
	for _, it := range items {
		vpcID := attachedVpc(it)
		if !scope.Contains(vpcID) {
			continue
		}
		name, _ := it.Name()
		if name == "" && vpcID == "" {
			continue
		}
		snap.InternetGateways = append(snap.InternetGateways, model.InternetGateway{
			ID:    it.ID,
			Name:  name,
			VpcID: vpcID,
		})
	}
	return fmt.Sprintf("%d gateways", len(snap.InternetGateways))
}

// attachedVpc returns the VpcId of the last attachment record. Gateways with
// several attachments are not disambiguated.
func attachedVpc(it inventory.Item) string {
	vpcID := ""
	it.Get("Attachments").ForEach(func(_, att gjson.Result) bool {
		vpcID = att.Get("VpcId").String()
		return true
	})
	return vpcID
}
