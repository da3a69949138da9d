package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/ThomasCrouzet/tierview/internal/inventory"
	"github.com/ThomasCrouzet/tierview/internal/model"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var dashboardTemplate = template.Must(
	template.New("dashboard.html.tmpl").Funcs(template.FuncMap{
		"ports": PortList,
		"short": shortID,
		"orNA":  orNA,
	}).ParseFS(templateFS, "templates/dashboard.html.tmpl"),
)

// tierNote is the explanation shown when a tier is clicked.
type tierNote struct {
	Key    string
	Title  string
	Intro  string
	Points []string
}

var tierNotes = []tierNote{
	{
		Key:   "internet",
		Title: "Internet Gateway",
		Intro: "The internet gateway connects the VPC to the public internet. Only resources in public subnets are reachable through it.",
		Points: []string{
			"At most one gateway is attached to a VPC",
			"Scaled and made redundant by AWS",
			"Route tables decide which subnets use it",
		},
	},
	{
		Key:   "public",
		Title: "Public Tier",
		Intro: "Public subnets hold the entry point of the application, usually a load balancer spread over several availability zones.",
		Points: []string{
			"The only tier with a route to the internet gateway",
			"Typically opens ports 80 and 443 only",
			"Forwards traffic to the web tier",
		},
	},
	{
		Key:   "web",
		Title: "Web Tier",
		Intro: "Web servers render pages and serve static assets, passing dynamic requests on to the app tier.",
		Points: []string{
			"Runs in private subnets without public addresses",
			"Accepts traffic from the load balancer only",
			"Scales horizontally behind the load balancer",
		},
	},
	{
		Key:   "app",
		Title: "App Tier",
		Intro: "Application servers run the business logic and are the only clients of the database tier.",
		Points: []string{
			"Accepts traffic from the web tier only",
			"Holds credentials for the database",
			"Private subnets with no inbound internet access",
		},
	},
	{
		Key:   "database",
		Title: "Database Tier",
		Intro: "Database subnets host the managed relational database, isolated from every other tier except the app tier.",
		Points: []string{
			"Accepts connections from the app tier on the database port",
			"Usually deployed with a standby in a second availability zone",
			"Encrypted at rest and backed up automatically",
		},
	},
}

type dashboardView struct {
	Snap        *model.Snapshot
	AWS         bool
	Unavailable []model.SourceStatus
	Notes       []tierNote
}

// HTMLRenderer renders the dashboard page. All provider strings are escaped.
type HTMLRenderer struct {
	tmpl *template.Template
}

// NewHTMLRenderer returns a renderer using the embedded dashboard template.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{tmpl: dashboardTemplate}
}

func (r *HTMLRenderer) ContentType() string { return "text/html; charset=utf-8" }

func (r *HTMLRenderer) Render(w io.Writer, snap *model.Snapshot) error {
	view := dashboardView{
		Snap:        snap,
		AWS:         snap.Mode == inventory.ModeAWS.Label(),
		Unavailable: snap.UnavailableSources(),
		Notes:       tierNotes,
	}
	if err := r.tmpl.Execute(w, view); err != nil {
		return fmt.Errorf("rendering dashboard: %w", err)
	}
	return nil
}

func shortID(id string) string {
	if len(id) > 20 {
		return id[:20]
	}
	return id
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
