package wizard

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// mockDetector implements Detector for testing.
type mockDetector struct {
	binaries map[string]bool
	files    map[string]bool
	dirs     map[string]bool
	globs    map[string][]string
}

func (m *mockDetector) LookPath(name string) (string, error) {
	if m.binaries[name] {
		return "/usr/bin/" + name, nil
	}
	return "", &os.PathError{Op: "lookpath", Path: name, Err: os.ErrNotExist}
}

type fakeFileInfo struct {
	name  string
	isDir bool
}

func (f fakeFileInfo) Name() string       { return f.name }
func (f fakeFileInfo) Size() int64        { return 0 }
func (f fakeFileInfo) Mode() os.FileMode  { return 0644 }
func (f fakeFileInfo) ModTime() time.Time { return time.Time{} }
func (f fakeFileInfo) IsDir() bool        { return f.isDir }
func (f fakeFileInfo) Sys() interface{}   { return nil }

func (m *mockDetector) Stat(path string) (os.FileInfo, error) {
	if m.dirs[path] {
		return fakeFileInfo{name: path, isDir: true}, nil
	}
	if m.files[path] {
		return fakeFileInfo{name: path, isDir: false}, nil
	}
	return nil, os.ErrNotExist
}

func (m *mockDetector) Glob(pattern string) ([]string, error) {
	return m.globs[pattern], nil
}

func TestDetectAWSCLI(t *testing.T) {
	d := &mockDetector{binaries: map[string]bool{"aws": true}}
	result := Detect(d)
	assert.True(t, result.AWSCLIAvailable)
}

func TestDetectNoAWSCLI(t *testing.T) {
	d := &mockDetector{binaries: map[string]bool{}}
	result := Detect(d)
	assert.False(t, result.AWSCLIAvailable)
}

func TestDetectCredentialsFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials")
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", path)

	d := &mockDetector{files: map[string]bool{path: true}}
	result := Detect(d)
	assert.Equal(t, path, result.CredentialsFile)
}

func TestDetectComposeFiles(t *testing.T) {
	d := &mockDetector{
		binaries: map[string]bool{},
		files:    map[string]bool{"docker-compose.yml": true, "compose.yml": true},
		globs: map[string][]string{
			filepath.Join("localstack", "*compose*.y*ml"): {"localstack/docker-compose.yml"},
		},
	}
	result := Detect(d)
	assert.Equal(t, []string{"docker-compose.yml", "compose.yml", "localstack/docker-compose.yml"}, result.ComposeFiles)
}

func TestDetectNothing(t *testing.T) {
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", "")
	d := &mockDetector{
		binaries: map[string]bool{},
		files:    map[string]bool{},
	}
	result := Detect(d)
	assert.False(t, result.AWSCLIAvailable)
	assert.Empty(t, result.CredentialsFile)
	assert.Empty(t, result.ComposeFiles)
	assert.Empty(t, result.LocalStackEndpoint)
}

func TestDetectLocalStackFromCompose(t *testing.T) {
	dir := t.TempDir()
	plain := writeCompose(t, dir, "web.yml", `services:
  web:
    image: nginx:1.27
    ports:
      - "8080:80"
`)
	stack := writeCompose(t, dir, "stack.yml", `services:
  localstack:
    image: localstack/localstack:3
    ports:
      - "4577:4566"
`)

	result := DetectionResult{ComposeFiles: []string{plain, stack}}
	result.DetectLocalStack()
	assert.Equal(t, "http://localhost:4577", result.LocalStackEndpoint)
}
