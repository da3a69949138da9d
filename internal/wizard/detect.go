package wizard

import (
	"os"
	"os/exec"
	"path/filepath"

	"github.com/ThomasCrouzet/tierview/internal/util"
)

// DetectionResult holds what was auto-detected on the system.
type DetectionResult struct {
	AWSCLIAvailable    bool
	CredentialsFile    string // path if found, empty otherwise
	ComposeFiles       []string
	LocalStackEndpoint string // derived from a compose service, empty if none
}

// Detector abstracts filesystem and path lookups for testing.
type Detector interface {
	LookPath(name string) (string, error)
	Stat(path string) (os.FileInfo, error)
	Glob(pattern string) ([]string, error)
}

// OSDetector uses the real OS for detection.
type OSDetector struct{}

func (OSDetector) LookPath(name string) (string, error) { return exec.LookPath(name) }
func (OSDetector) Stat(path string) (os.FileInfo, error) { return os.Stat(path) }
func (OSDetector) Glob(pattern string) ([]string, error) { return filepath.Glob(pattern) }

var composePatterns = []string{
	"docker-compose.yml",
	"docker-compose.yaml",
	"compose.yml",
	"compose.yaml",
}

// Detect scans the environment for an aws binary, credentials and a
// LocalStack compose project.
func Detect(d Detector) DetectionResult {
	if d == nil {
		d = OSDetector{}
	}

	result := DetectionResult{}

	if _, err := d.LookPath("aws"); err == nil {
		result.AWSCLIAvailable = true
	}

	credentialPaths := []string{"~/.aws/credentials", "~/.aws/config"}
	if env := os.Getenv("AWS_SHARED_CREDENTIALS_FILE"); env != "" {
		credentialPaths = append([]string{env}, credentialPaths...)
	}
	for _, p := range credentialPaths {
		expanded, err := util.ExpandPath(p)
		if err != nil {
			continue
		}
		if _, err := d.Stat(expanded); err == nil {
			result.CredentialsFile = expanded
			break
		}
	}

	for _, pattern := range composePatterns {
		if _, err := d.Stat(pattern); err == nil {
			result.ComposeFiles = append(result.ComposeFiles, pattern)
		}
	}

	// Also check a localstack/ directory next to the project
	if matches, err := d.Glob(filepath.Join("localstack", "*compose*.y*ml")); err == nil {
		result.ComposeFiles = append(result.ComposeFiles, matches...)
	}

	return result
}

// DetectLocalStack fills LocalStackEndpoint from the first compose file
// that declares a LocalStack service.
func (r *DetectionResult) DetectLocalStack() {
	for _, path := range r.ComposeFiles {
		endpoint, err := LocalStackEndpoint(path)
		if err == nil && endpoint != "" {
			r.LocalStackEndpoint = endpoint
			return
		}
	}
}
