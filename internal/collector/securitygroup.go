package collector

import (
	"fmt"
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/ThomasCrouzet/tierview/internal/inventory"
	"github.com/ThomasCrouzet/tierview/internal/model"
)

// defaultGroupName is matched exactly; "Default" is a user group.
const defaultGroupName = "default"

func init() {
	Register(func() KindCollector { return &SecurityGroupCollector{} })
}

// SecurityGroupCollector lists non-default security groups and their
// inbound ports.
type SecurityGroupCollector struct{}

func (sc *SecurityGroupCollector) Metadata() CollectorMetadata {
	return CollectorMetadata{
		Name:        "security-groups",
		DisplayName: "Security Groups",
		Description: "Security groups with the starting port of each inbound rule",
		Kind:        inventory.KindSecurityGroup,
	}
}

func (sc *SecurityGroupCollector) Collect(items []inventory.Item, scope model.Scope, snap *model.Snapshot) string {
	for _, it := range items {
		vpcID := it.Attr("VpcId")
		if !scope.Contains(vpcID) {
			continue
		}
		name := it.Attr("GroupName")
		if name == defaultGroupName {
			continue
		}

		snap.SecurityGroups = append(snap.SecurityGroups, model.SecurityGroup{
			ID:    it.ID,
			Name:  name,
			VpcID: vpcID,
			Ports: inboundPorts(it),
		})
	}
	return fmt.Sprintf("%d groups", len(snap.SecurityGroups))
}

// inboundPorts returns the FromPort of every inbound rule in rule order.
// Rules without a FromPort (all traffic) and rules starting at 0 add nothing.
func inboundPorts(it inventory.Item) []string {
	ports := []string{}
	it.Get("IpPermissions").ForEach(func(_, rule gjson.Result) bool {
		from := rule.Get("FromPort")
		if from.Type == gjson.Number && from.Int() != 0 {
			ports = append(ports, strconv.FormatInt(from.Int(), 10))
		}
		return true
	})
	return ports
}
