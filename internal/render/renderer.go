package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/ThomasCrouzet/tierview/internal/model"
)

// ErrUnknownFormat is returned by ForFormat for unsupported formats.
var ErrUnknownFormat = errors.New("unknown output format")

// Options controls how a snapshot is drawn. Only the D2 renderer reads it.
type Options struct {
	Direction   string // up, down, left, right
	Theme       string
	DetailLevel string // minimal, standard, detailed
}

// Renderer turns a snapshot into a document.
type Renderer interface {
	Render(w io.Writer, snap *model.Snapshot) error
	ContentType() string
}

// Formats lists the supported output formats.
func Formats() []string {
	return []string{"d2", "json", "yaml", "html"}
}

// ForFormat returns the renderer for an output format.
func ForFormat(format string, opts Options) (Renderer, error) {
	switch format {
	case "", "d2":
		return &D2Renderer{Options: opts}, nil
	case "json":
		return JSONRenderer{}, nil
	case "yaml", "yml":
		return YAMLRenderer{}, nil
	case "html":
		return NewHTMLRenderer(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// RenderD2 generates a D2 diagram from a snapshot.
func RenderD2(snap *model.Snapshot, opts Options) string {
	r := &D2Renderer{Options: opts}
	return r.Diagram(snap)
}
