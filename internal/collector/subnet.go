package collector

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ThomasCrouzet/tierview/internal/inventory"
	"github.com/ThomasCrouzet/tierview/internal/model"
)

func init() {
	Register(func() KindCollector { return &SubnetCollector{} })
}

// SubnetCollector classifies subnets into the public, app and database tiers.
type SubnetCollector struct{}

func (sc *SubnetCollector) Metadata() CollectorMetadata {
	return CollectorMetadata{
		Name:        "subnets",
		DisplayName: "Subnets",
		Description: "Subnets bucketed by Tier tag and name",
		Kind:        inventory.KindSubnet,
	}
}

func (sc *SubnetCollector) Collect(items []inventory.Item, scope model.Scope, snap *model.Snapshot) string {
	dropped := 0
	for _, it := range items {
		vpcID := it.Attr("VpcId")
		if !scope.Contains(vpcID) {
			continue
		}

		// unnamed subnets are never rendered
		name, ok := it.Name()
		if !ok {
			dropped++
			continue
		}

		tag, tagged := it.Tag(inventory.TierTag)
		subnet := model.Subnet{
			ID:               it.ID,
			CIDR:             it.Attr("CidrBlock"),
			AvailabilityZone: it.Attr("AvailabilityZone"),
			Name:             name,
			VpcID:            vpcID,
			Tier:             model.ClassifySubnet(name, tag, tagged),
		}
		if !snap.Subnets.Add(subnet) {
			zap.S().Named("collector").Debugw("subnet tier has no bucket",
				"subnet", subnet.ID, "tier", subnet.Tier, "known", subnet.Tier.Known())
			dropped++
		}
	}

	return fmt.Sprintf("%d public, %d app, %d database (%d dropped)",
		len(snap.Subnets.Public), len(snap.Subnets.App), len(snap.Subnets.Database), dropped)
}
