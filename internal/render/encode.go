package render

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/ThomasCrouzet/tierview/internal/model"
)

// JSONRenderer writes the snapshot as indented JSON.
type JSONRenderer struct{}

func (JSONRenderer) ContentType() string { return "application/json" }

func (JSONRenderer) Render(w io.Writer, snap *model.Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("encoding snapshot as json: %w", err)
	}
	return nil
}

// YAMLRenderer writes the snapshot as YAML.
type YAMLRenderer struct{}

func (YAMLRenderer) ContentType() string { return "application/yaml" }

func (YAMLRenderer) Render(w io.Writer, snap *model.Snapshot) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("encoding snapshot as yaml: %w", err)
	}
	return enc.Close()
}
