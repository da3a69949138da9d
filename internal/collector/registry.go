package collector

import (
	"github.com/ThomasCrouzet/tierview/internal/inventory"
	"github.com/ThomasCrouzet/tierview/internal/model"
)

// KindCollector turns the raw records of one resource kind into snapshot
// entries.
type KindCollector interface {
	Metadata() CollectorMetadata
	// Collect places the in-scope records into snap and returns a one-line
	// summary for status output.
	Collect(items []inventory.Item, scope model.Scope, snap *model.Snapshot) string
}

// CollectorMetadata describes a collector for status output and documentation.
type CollectorMetadata struct {
	Name        string         // internal key, e.g. "subnets"
	DisplayName string         // human-readable, e.g. "Subnets"
	Description string         // one-line description
	Kind        inventory.Kind // resource kind it consumes
}

var registry []func() KindCollector

// Register adds a collector factory to the global registry.
// Each collector calls this in its init().
func Register(factory func() KindCollector) {
	registry = append(registry, factory)
}

// All returns fresh instances of every registered collector.
func All() []KindCollector {
	out := make([]KindCollector, len(registry))
	for i, f := range registry {
		out[i] = f()
	}
	return out
}

// ForKind returns a fresh collector for kind, or nil when none is registered.
func ForKind(kind inventory.Kind) KindCollector {
	for _, c := range All() {
		if c.Metadata().Kind == kind {
			return c
		}
	}
	return nil
}
