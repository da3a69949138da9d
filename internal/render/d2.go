package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/ThomasCrouzet/tierview/internal/model"
	"github.com/ThomasCrouzet/tierview/internal/util"
)

// D2Renderer generates D2 diagram text.
type D2Renderer struct {
	Options
}

// layer is one tier container inside the VPC, drawn top to bottom.
type layer struct {
	id    string
	tier  model.Tier
	label string
	nodes []node
}

type node struct {
	id      string
	label   string
	shape   string
	icon    string
	tooltip string
}

func (r *D2Renderer) detail() string {
	if r.DetailLevel == "" {
		return "standard"
	}
	return r.DetailLevel
}

func (r *D2Renderer) ContentType() string { return "text/plain; charset=utf-8" }

func (r *D2Renderer) Render(w io.Writer, snap *model.Snapshot) error {
	_, err := io.WriteString(w, r.Diagram(snap))
	return err
}

// Diagram returns the D2 text for snap.
func (r *D2Renderer) Diagram(snap *model.Snapshot) string {
	theme := GetTheme(r.Theme)
	var b strings.Builder

	direction := r.Direction
	if direction == "" {
		direction = "down"
	}
	fmt.Fprintf(&b, "direction: %s\n\n", direction)

	internet := theme.ColorForTier(model.TierInternet)
	fmt.Fprintf(&b, "internet: %s {\n", util.Quote("Internet"))
	b.WriteString("  shape: cloud\n")
	fmt.Fprintf(&b, "  style.fill: %q\n", internet.Fill)
	fmt.Fprintf(&b, "  style.stroke: %q\n", internet.Stroke)
	b.WriteString("}\n\n")

	vpcLabel := snap.PrimaryVpc.Name
	if r.detail() != "minimal" && snap.PrimaryVpc.CIDR != "" {
		vpcLabel = fmt.Sprintf("%s (%s)", snap.PrimaryVpc.Name, snap.PrimaryVpc.CIDR)
	}
	vpcColor := theme.ColorForElement("vpc")
	fmt.Fprintf(&b, "vpc: %s {\n", util.Quote(vpcLabel))
	fmt.Fprintf(&b, "  style.fill: %q\n", vpcColor.Fill)
	fmt.Fprintf(&b, "  style.stroke: %q\n", vpcColor.Stroke)
	if r.detail() != "minimal" {
		fmt.Fprintf(&b, "  icon: %s\n", LookupIcon("vpc"))
	}
	b.WriteString("\n")

	layers := r.layers(snap)
	for _, l := range layers {
		r.renderLayer(&b, l, theme, "  ")
	}
	if r.detail() == "detailed" && len(snap.SecurityGroups) > 0 {
		r.renderSecurityGroups(&b, snap.SecurityGroups, theme, "  ")
	}
	b.WriteString("}\n\n")

	// traffic flows from the internet down through each populated tier
	prev := "internet"
	for _, l := range layers {
		next := "vpc." + l.id
		fmt.Fprintf(&b, "%s -> %s\n", prev, next)
		prev = next
	}

	return b.String()
}

func (r *D2Renderer) layers(snap *model.Snapshot) []layer {
	var gateways []node
	for _, igw := range snap.InternetGateways {
		label := igw.Name
		if label == "" {
			label = igw.ID
		}
		gateways = append(gateways, node{id: util.SanitizeID(igw.ID), label: label, icon: LookupIcon("gateway")})
	}

	app := r.subnetNodes(snap.Subnets.App, "")
	app = append(app, r.instanceNodes(snap.Instances.App)...)

	all := []layer{
		{id: "igw", tier: model.TierInternet, label: "Internet Gateway", nodes: gateways},
		{id: "public", tier: model.TierPublic, label: "Public Subnets", nodes: r.subnetNodes(snap.Subnets.Public, "")},
		{id: "web", tier: model.TierWeb, label: "Web Tier", nodes: r.instanceNodes(snap.Instances.Web)},
		{id: "app", tier: model.TierApp, label: "App Tier", nodes: app},
		{id: "database", tier: model.TierDatabase, label: "Database Subnets", nodes: r.subnetNodes(snap.Subnets.Database, "cylinder")},
	}

	out := make([]layer, 0, len(all))
	for _, l := range all {
		if len(l.nodes) > 0 {
			out = append(out, l)
		}
	}
	return out
}

func (r *D2Renderer) subnetNodes(subnets []model.Subnet, shape string) []node {
	nodes := make([]node, 0, len(subnets))
	for _, s := range subnets {
		n := node{id: util.SanitizeID(s.ID), label: s.Name, shape: shape}
		switch r.detail() {
		case "detailed":
			n.label = fmt.Sprintf(`%s\n%s`, s.Name, s.CIDR)
			n.tooltip = fmt.Sprintf("%s in %s", s.ID, s.AvailabilityZone)
		case "standard":
			n.tooltip = s.CIDR
		}
		if shape == "cylinder" && r.detail() != "minimal" {
			n.icon = LookupIcon("database")
		}
		nodes = append(nodes, n)
	}
	return nodes
}

func (r *D2Renderer) instanceNodes(instances []model.Instance) []node {
	nodes := make([]node, 0, len(instances))
	for _, i := range instances {
		n := node{id: util.SanitizeID(i.ID), label: i.Name, icon: LookupIcon("instance")}
		if r.detail() == "detailed" {
			n.label = fmt.Sprintf(`%s\n%s %s`, i.Name, i.Type, i.State)
			ip := i.PrivateIP
			if ip == "" {
				ip = "N/A"
			}
			n.tooltip = fmt.Sprintf("%s IP: %s", i.ID, ip)
		}
		nodes = append(nodes, n)
	}
	return nodes
}

func (r *D2Renderer) renderLayer(b *strings.Builder, l layer, theme *Theme, indent string) {
	color := theme.ColorForTier(l.tier)
	label := l.label
	if r.detail() == "minimal" {
		label = fmt.Sprintf("%s (%d)", l.label, len(l.nodes))
	}

	fmt.Fprintf(b, "%s%s: %s {\n", indent, l.id, util.Quote(label))
	fmt.Fprintf(b, "%s  style.fill: %q\n", indent, color.Fill)
	fmt.Fprintf(b, "%s  style.stroke: %q\n", indent, color.Stroke)

	if r.detail() != "minimal" {
		if len(l.nodes) > 4 {
			fmt.Fprintf(b, "%s  grid-columns: 4\n", indent)
		}
		for _, n := range l.nodes {
			r.renderNode(b, n, indent+"  ")
		}
	}

	fmt.Fprintf(b, "%s}\n", indent)
}

func (r *D2Renderer) renderNode(b *strings.Builder, n node, indent string) {
	fmt.Fprintf(b, "%s%s: %s", indent, n.id, util.Quote(n.label))

	var props []string
	if n.shape != "" {
		props = append(props, "shape: "+n.shape)
	}
	if n.icon != "" {
		props = append(props, "icon: "+n.icon)
	}
	if n.tooltip != "" {
		props = append(props, "tooltip: "+util.Quote(n.tooltip))
	}

	if len(props) == 0 {
		b.WriteString("\n")
		return
	}
	b.WriteString(" {\n")
	for _, prop := range props {
		fmt.Fprintf(b, "%s  %s\n", indent, prop)
	}
	fmt.Fprintf(b, "%s}\n", indent)
}

func (r *D2Renderer) renderSecurityGroups(b *strings.Builder, groups []model.SecurityGroup, theme *Theme, indent string) {
	color := theme.ColorForElement("security")
	fmt.Fprintf(b, "%ssecurity: %s {\n", indent, util.Quote("Security Groups"))
	fmt.Fprintf(b, "%s  style.fill: %q\n", indent, color.Fill)
	fmt.Fprintf(b, "%s  style.stroke: %q\n", indent, color.Stroke)
	fmt.Fprintf(b, "%s  style.stroke-dash: 3\n", indent)

	for _, sg := range groups {
		label := fmt.Sprintf(`%s\nPorts: %s`, sg.Name, PortList(sg.Ports))
		r.renderNode(b, node{id: util.SanitizeID(sg.ID), label: label, icon: LookupIcon("security")}, indent+"  ")
	}

	fmt.Fprintf(b, "%s}\n", indent)
}

// PortList joins ports for display, "None" when empty.
func PortList(ports []string) string {
	if len(ports) == 0 {
		return "None"
	}
	return strings.Join(ports, ", ")
}
