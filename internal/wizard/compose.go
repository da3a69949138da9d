package wizard

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/compose-spec/compose-go/v2/cli"
	composetypes "github.com/compose-spec/compose-go/v2/types"
	yamlv3 "gopkg.in/yaml.v3"
)

// localStackEdgePort is the container port LocalStack serves every API on.
const localStackEdgePort = 4566

// LocalStackEndpoint parses a compose file and returns the host URL of its
// LocalStack edge port. It returns "" with no error when the file declares
// no LocalStack service.
func LocalStackEndpoint(path string) (string, error) {
	opts, err := cli.NewProjectOptions(
		[]string{path},
		cli.WithName("tierview"),
		cli.WithDotEnv,
		cli.WithInterpolation(false),
	)
	if err != nil {
		return "", fmt.Errorf("project options: %w", err)
	}

	project, err := cli.ProjectFromOptions(context.Background(), opts)
	if err != nil {
		return endpointFromYAML(path)
	}
	return endpointFromProject(project), nil
}

func endpointFromProject(project *composetypes.Project) string {
	names := make([]string, 0, len(project.Services))
	for name := range project.Services {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		svc := project.Services[name]
		if !isLocalStack(svc.Image, svc.Name) {
			continue
		}
		for _, p := range svc.Ports {
			if p.Target != localStackEdgePort || p.Published == "" {
				continue
			}
			if port, err := strconv.Atoi(p.Published); err == nil {
				return endpointURL(p.HostIP, port)
			}
		}
		return endpointURL("", localStackEdgePort)
	}
	return ""
}

// endpointFromYAML uses raw YAML parsing when compose-go rejects the file.
func endpointFromYAML(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	var raw struct {
		Services map[string]struct {
			Image string        `yaml:"image"`
			Ports []interface{} `yaml:"ports"`
		} `yaml:"services"`
	}
	if err := yamlv3.Unmarshal(data, &raw); err != nil {
		return "", fmt.Errorf("yaml parse: %w", err)
	}

	names := make([]string, 0, len(raw.Services))
	for name := range raw.Services {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		svc := raw.Services[name]
		if !isLocalStack(svc.Image, name) {
			continue
		}
		for _, p := range svc.Ports {
			hostIP, published, target := parsePort(p)
			if target == localStackEdgePort && published > 0 {
				return endpointURL(hostIP, published), nil
			}
		}
		return endpointURL("", localStackEdgePort), nil
	}
	return "", nil
}

// parsePort reads the short ("127.0.0.1:4566:4566/tcp") and long
// ({target, published}) compose port syntaxes.
func parsePort(raw interface{}) (hostIP string, published, target int) {
	switch v := raw.(type) {
	case map[string]interface{}:
		target, _ = strconv.Atoi(fmt.Sprintf("%v", v["target"]))
		published, _ = strconv.Atoi(fmt.Sprintf("%v", v["published"]))
		if ip, ok := v["host_ip"].(string); ok {
			hostIP = ip
		}
	default:
		s := fmt.Sprintf("%v", v)
		if i := strings.Index(s, "/"); i >= 0 {
			s = s[:i]
		}
		parts := strings.Split(s, ":")
		target, _ = strconv.Atoi(parts[len(parts)-1])
		switch len(parts) {
		case 1:
			// container port only, host port is ephemeral
		case 2:
			published, _ = strconv.Atoi(parts[0])
		default:
			hostIP = parts[len(parts)-3]
			published, _ = strconv.Atoi(parts[len(parts)-2])
		}
	}
	return hostIP, published, target
}

func isLocalStack(image, name string) bool {
	return strings.Contains(strings.ToLower(image), "localstack") ||
		strings.Contains(strings.ToLower(name), "localstack")
}

func endpointURL(hostIP string, port int) string {
	host := "localhost"
	if hostIP != "" && hostIP != "0.0.0.0" && hostIP != "127.0.0.1" {
		host = hostIP
	}
	return fmt.Sprintf("http://%s:%d", host, port)
}
