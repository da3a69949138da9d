package collector

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ThomasCrouzet/tierview/internal/inventory"
	"github.com/ThomasCrouzet/tierview/internal/metrics"
	"github.com/ThomasCrouzet/tierview/internal/model"
)

// Options controls one collection cycle.
type Options struct {
	Mode       string        // label stored on the snapshot, e.g. "LocalStack"
	Concurrent bool          // fetch all kinds at once instead of one after another
	Deadline   time.Duration // overall budget for the fetch, 0 for none
	Now        func() time.Time
}

// CollectResult holds the result of a single collector run.
type CollectResult struct {
	Name   string
	Kind   inventory.Kind
	Detail string
	Err    error
}

// Collect fetches every resource kind, scopes and classifies the records
// and returns a summarized snapshot. A failed kind contributes nothing and
// is reported through the snapshot's sources and its CollectResult; it never
// aborts the build.
func Collect(ctx context.Context, d inventory.Describer, opts Options) (*model.Snapshot, []CollectResult) {
	log := zap.S().Named("collector")

	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	snap := model.NewSnapshot(opts.Mode, now())

	fetched := fetch(ctx, d, opts)

	// scope comes from the VPC inventory; nothing usable means unrestricted
	scope := model.ScopeFromVpcs(ScopeVpcs(fetched[inventory.KindVPC].Items))
	snap.Scope = scope.IDs()
	log.Debugw("scope resolved", "scope", scope.String())

	results := make([]CollectResult, 0, len(fetched))
	for _, kind := range inventory.AllKinds() {
		res := fetched[kind]
		metrics.ObserveDescribe(string(kind), res.Outcome(), res.Duration)

		c := ForKind(kind)
		name := string(kind)
		if c != nil {
			name = c.Metadata().DisplayName
		}

		status := model.SourceStatus{Kind: string(kind), Available: res.OK(), Count: len(res.Items)}
		if !res.OK() {
			status.Count = 0
			status.Error = res.Err.Error()
			snap.Sources = append(snap.Sources, status)
			log.Warnw("describe failed, kind rendered as empty",
				"kind", kind, "outcome", res.Outcome(), "error", res.Err)
			results = append(results, CollectResult{
				Name: name,
				Kind: kind,
				Err:  &CollectorError{Collector: name, Err: res.Err},
			})
			continue
		}
		snap.Sources = append(snap.Sources, status)

		detail := ""
		if c != nil {
			detail = c.Collect(res.Items, scope, snap)
		}
		results = append(results, CollectResult{Name: name, Kind: kind, Detail: detail})
	}

	snap.Summarize()

	counts := make(map[string]int)
	for tier, n := range snap.TierCounts() {
		counts[string(tier)] = n
	}
	metrics.ObserveSnapshot(counts)

	log.Debugw("snapshot built",
		"subnets", snap.TotalSubnets,
		"instances", snap.TotalInstances,
		"degraded", snap.Degraded())

	return snap, results
}

// fetch issues one describe call per kind. Results are keyed by kind so that
// callers never depend on completion order.
func fetch(ctx context.Context, d inventory.Describer, opts Options) map[inventory.Kind]inventory.Result {
	if opts.Deadline > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Deadline)
		defer cancel()
	}

	kinds := inventory.AllKinds()
	results := make([]inventory.Result, len(kinds))

	if opts.Concurrent {
		g, gctx := errgroup.WithContext(ctx)
		for i, kind := range kinds {
			g.Go(func() error {
				results[i] = d.Describe(gctx, kind)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i, kind := range kinds {
			results[i] = d.Describe(ctx, kind)
		}
	}

	out := make(map[inventory.Kind]inventory.Result, len(kinds))
	for i, kind := range kinds {
		res := results[i]
		res.Kind = kind
		if !res.OK() {
			res.Items = nil
		}
		out[kind] = res
	}
	return out
}

// Builder builds one fresh snapshot per call.
type Builder struct {
	describer inventory.Describer
	opts      Options
}

// NewBuilder returns a Builder that queries d with opts.
func NewBuilder(d inventory.Describer, opts Options) *Builder {
	return &Builder{describer: d, opts: opts}
}

// Build runs a full collection cycle. It never fails; unavailable kinds are
// flagged on the returned snapshot.
func (b *Builder) Build(ctx context.Context) *model.Snapshot {
	snap, _ := Collect(ctx, b.describer, b.opts)
	return snap
}
