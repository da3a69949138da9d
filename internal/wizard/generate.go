package wizard

import (
	"bytes"
	"text/template"
)

// WizardAnswers holds all user responses from the wizard.
type WizardAnswers struct {
	// Query settings
	Mode     string // localstack, aws
	Endpoint string
	Region   string
	Profile  string

	// Dashboard settings
	Port        int
	OpenBrowser bool

	// Render settings
	Direction   string
	DetailLevel string
	Theme       string
}

const configTemplate = `# tierview configuration
# Environment overrides use the TIERVIEW_ prefix, e.g. TIERVIEW_SERVER_PORT=9090

mode: {{ .Mode }}

aws:
  cli: aws
{{- if eq .Mode "localstack" }}
  endpoint: {{ .Endpoint }}
{{- end }}
{{- if .Region }}
  region: {{ .Region }}
{{- end }}
{{- if .Profile }}
  profile: {{ .Profile }}
{{- end }}

query:
  timeout: 15s
  concurrent: true

server:
  host: localhost
  port: {{ .Port }}
  open_browser: {{ if .OpenBrowser }}true{{ else }}false{{ end }}
  metrics: true

log:
  level: info
  format: console

render:
  output: tierview.d2
  direction: {{ .Direction }}
  theme: {{ .Theme }}
  detail_level: {{ .DetailLevel }}
`

// GenerateConfig renders the YAML config from wizard answers.
func GenerateConfig(answers WizardAnswers) (string, error) {
	// Set defaults
	if answers.Mode == "" {
		answers.Mode = "localstack"
	}
	if answers.Endpoint == "" {
		answers.Endpoint = "http://localhost:4566"
	}
	if answers.Port == 0 {
		answers.Port = 8080
	}
	if answers.Direction == "" {
		answers.Direction = "down"
	}
	if answers.DetailLevel == "" {
		answers.DetailLevel = "standard"
	}
	if answers.Theme == "" {
		answers.Theme = "default"
	}

	tmpl, err := template.New("config").Parse(configTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, answers); err != nil {
		return "", err
	}

	return buf.String(), nil
}
