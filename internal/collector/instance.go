package collector

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ThomasCrouzet/tierview/internal/inventory"
	"github.com/ThomasCrouzet/tierview/internal/model"
)

func init() {
	Register(func() KindCollector { return &InstanceCollector{} })
}

// InstanceCollector classifies compute instances into the web and app tiers.
type InstanceCollector struct{}

func (ic *InstanceCollector) Metadata() CollectorMetadata {
	return CollectorMetadata{
		Name:        "instances",
		DisplayName: "Instances",
		Description: "EC2 instances bucketed by Tier tag and name",
		Kind:        inventory.KindInstance,
	}
}

func (ic *InstanceCollector) Collect(items []inventory.Item, scope model.Scope, snap *model.Snapshot) string {
	dropped := 0
	for _, it := range items {
		vpcID := it.Attr("VpcId")
		if !scope.Contains(vpcID) {
			continue
		}

		name, _ := it.Name()
		tag, tagged := it.Tag(inventory.TierTag)
		instance := model.Instance{
			ID:        it.ID,
			Type:      it.Attr("InstanceType"),
			State:     it.Attr("State.Name"),
			PrivateIP: it.Attr("PrivateIpAddress"),
			Name:      name,
			VpcID:     vpcID,
			Tier:      model.ClassifyInstance(name, tag, tagged),
		}
		if instance.Name == "" {
			instance.Name = model.UnnamedInstance
		}
		if instance.State == "" {
			instance.State = model.UnknownState
		}

		if !snap.Instances.Add(instance) {
			zap.S().Named("collector").Debugw("instance tier has no bucket",
				"instance", instance.ID, "tier", instance.Tier, "known", instance.Tier.Known())
			dropped++
		}
	}

	return fmt.Sprintf("%d web, %d app (%d dropped)",
		len(snap.Instances.Web), len(snap.Instances.App), dropped)
}
