package wizard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
)

// Run executes the interactive wizard and returns the user's answers.
func Run(detection DetectionResult) (*WizardAnswers, error) {
	answers := &WizardAnswers{
		Mode:        "localstack",
		Endpoint:    "http://localhost:4566",
		Port:        8080,
		OpenBrowser: true,
		Direction:   "down",
		DetailLevel: "standard",
		Theme:       "default",
	}
	if detection.LocalStackEndpoint != "" {
		answers.Endpoint = detection.LocalStackEndpoint
	}

	// Build detection summary
	var hints []string
	if detection.AWSCLIAvailable {
		hints = append(hints, "aws CLI detected")
	} else {
		hints = append(hints, "aws CLI not found on PATH")
	}
	if detection.CredentialsFile != "" {
		hints = append(hints, fmt.Sprintf("AWS credentials found: %s", detection.CredentialsFile))
	}
	if detection.LocalStackEndpoint != "" {
		hints = append(hints, fmt.Sprintf("LocalStack service found: %s", detection.LocalStackEndpoint))
	} else if len(detection.ComposeFiles) > 0 {
		hints = append(hints, fmt.Sprintf("Compose files found: %s", strings.Join(detection.ComposeFiles, ", ")))
	}

	// Prefer real AWS only when credentials exist and no LocalStack is around
	if detection.CredentialsFile != "" && detection.LocalStackEndpoint == "" {
		answers.Mode = "aws"
	}

	desc := "Where should resources be discovered?"
	desc += "\n\nAuto-detected:\n  " + strings.Join(hints, "\n  ")

	// Step 1: Mode selection
	modeForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Query target").
				Description(desc).
				Options(
					huh.NewOption("LocalStack (local emulator)", "localstack"),
					huh.NewOption("Real AWS (default credentials)", "aws"),
				).
				Value(&answers.Mode),
		),
	)

	if err := modeForm.Run(); err != nil {
		return nil, err
	}

	// Step 2: Mode-specific settings
	var groups []*huh.Group

	if answers.Mode == "localstack" {
		groups = append(groups, huh.NewGroup(
			huh.NewInput().
				Title("LocalStack endpoint").
				Value(&answers.Endpoint),
		))
	} else {
		groups = append(groups, huh.NewGroup(
			huh.NewInput().
				Title("AWS region (optional)").
				Description("Leave empty to use the CLI default").
				Value(&answers.Region),
			huh.NewInput().
				Title("AWS profile (optional)").
				Value(&answers.Profile),
		))
	}

	// Step 3: Dashboard and display options
	port := strconv.Itoa(answers.Port)
	groups = append(groups, huh.NewGroup(
		huh.NewInput().
			Title("Dashboard port").
			Value(&port).
			Validate(validatePort),
		huh.NewConfirm().
			Title("Open the dashboard in a browser on start?").
			Value(&answers.OpenBrowser),
		huh.NewSelect[string]().
			Title("Diagram detail level").
			Options(
				huh.NewOption("Minimal: tier counts only", "minimal"),
				huh.NewOption("Standard: resources with tooltips", "standard"),
				huh.NewOption("Detailed: CIDRs, states and security groups", "detailed"),
			).
			Value(&answers.DetailLevel),
	))

	form := huh.NewForm(groups...)
	if err := form.Run(); err != nil {
		return nil, err
	}

	answers.Port, _ = strconv.Atoi(port)
	return answers, nil
}

func validatePort(s string) error {
	port, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("port must be a number between 1 and 65535")
	}
	return nil
}
