package collector

import (
	"fmt"

	"github.com/ThomasCrouzet/tierview/internal/inventory"
	"github.com/ThomasCrouzet/tierview/internal/model"
)

func init() {
	Register(func() KindCollector { return &VpcCollector{} })
}

// VpcCollector keeps the VPCs that make up the deployment.
type VpcCollector struct{}

func (vc *VpcCollector) Metadata() CollectorMetadata {
	return CollectorMetadata{
		Name:        "vpcs",
		DisplayName: "VPCs",
		Description: "Non-default, named VPCs that define the deployment scope",
		Kind:        inventory.KindVPC,
	}
}

// Collect ignores scope: the VPC list is what scope is derived from.
func (vc *VpcCollector) Collect(items []inventory.Item, _ model.Scope, snap *model.Snapshot) string {
	snap.Vpcs = ScopeVpcs(items)
	return fmt.Sprintf("%d in scope of %d", len(snap.Vpcs), len(items))
}

// ScopeVpcs drops default VPCs and VPCs without a Name tag, keeping
// provider order.
func ScopeVpcs(items []inventory.Item) []model.Vpc {
	vpcs := []model.Vpc{}
	for _, it := range items {
		if it.Get("IsDefault").Bool() {
			continue
		}
		name, ok := it.Name()
		if !ok {
			continue
		}
		vpcs = append(vpcs, model.Vpc{
			ID:   it.ID,
			CIDR: it.Attr("CidrBlock"),
			Name: name,
		})
	}
	return vpcs
}
