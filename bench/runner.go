package bench

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/octree/builder"
	"github.com/katalvlaran/octree/octree"
)

type point = octree.Point[float64]

// Option customises a Runner.
type Option func(*Runner)

// WithLogger sets the logger; the default discards everything.
func WithLogger(log *zap.Logger) Option {
	if log == nil {
		panic("bench: WithLogger(nil)")
	}
	return func(r *Runner) { r.log = log }
}

// WithSink adds a destination for finished rows.
func WithSink(s Sink) Option {
	if s == nil {
		panic("bench: WithSink(nil)")
	}
	return func(r *Runner) { r.sinks = append(r.sinks, s) }
}

// WithMetrics observes every lookup on m.
func WithMetrics(m *Metrics) Option {
	return func(r *Runner) { r.metrics = m }
}

// WithRunID fixes the run identifier instead of drawing a random one.
func WithRunID(id uuid.UUID) Option {
	return func(r *Runner) { r.runID = id }
}

// Runner executes a benchmark sweep. It is not safe for concurrent use.
type Runner struct {
	cfg     Config
	log     *zap.Logger
	sinks   []Sink
	metrics *Metrics
	runID   uuid.UUID
}

// NewRunner validates cfg and applies opts.
func NewRunner(cfg Config, opts ...Option) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := &Runner{cfg: cfg, log: zap.NewNop(), runID: uuid.New()}
	for _, opt := range opts {
		opt(r)
	}
	r.log = r.log.With(zap.String("run_id", r.runID.String()))

	return r, nil
}

// RunID identifies the rows this runner produces.
func (r *Runner) RunID() uuid.UUID { return r.runID }

// Run measures every batch size of the sweep and hands each row to the
// sinks. It stops between runs when ctx is done.
func (r *Runner) Run(ctx context.Context) ([]Row, error) {
	sizes := r.cfg.Sizes()
	r.log.Info("sweep started", zap.Int("sizes", len(sizes)), zap.Int("runs", r.cfg.Runs))

	rows := make([]Row, 0, len(sizes))
	for step, n := range sizes {
		row, err := r.Step(ctx, step, n)
		if err != nil {
			return rows, err
		}
		for _, s := range r.sinks {
			if err := s.Write(ctx, row); err != nil {
				return rows, fmt.Errorf("bench: sink: %w", err)
			}
		}
		if r.metrics != nil {
			r.metrics.addRow()
		}
		r.log.Info("batch done",
			zap.Int("points", n),
			zap.Float64("octree_us", row.Octree.Mean),
			zap.Float64("linear_us", row.Linear.Mean),
			zap.Float64("sort_linear_us", row.SortLinear.Mean),
			zap.Int("mismatches", row.Mismatches))
		rows = append(rows, row)
	}

	return rows, nil
}

// Step measures one batch size. step only seeds the random stream so that
// steps are reproducible independently of each other.
func (r *Runner) Step(ctx context.Context, step, n int) (Row, error) {
	lat := map[Method]*latencies{}
	for _, m := range Methods {
		lat[m] = newLatencies()
	}
	row := Row{RunID: r.runID, Points: n, Runs: r.cfg.Runs}

	var hops, queries int
	for run := 0; run < r.cfg.Runs; run++ {
		if err := ctx.Err(); err != nil {
			return row, err
		}
		seed := r.cfg.Seed + int64(step)*int64(r.cfg.Runs) + int64(run)
		res, err := r.run(n, seed)
		if err != nil {
			return row, err
		}
		for _, m := range Methods {
			lat[m].record(res.mean[m])
		}
		hops += res.hops
		queries += res.queries
		row.Mismatches += res.mismatches
	}

	row.Octree = lat[MethodOctree].stat()
	row.Linear = lat[MethodLinear].stat()
	row.SortLinear = lat[MethodSortLinear].stat()
	if queries > 0 {
		row.MeanHops = float64(hops) / float64(queries)
	}

	return row, nil
}

type runResult struct {
	mean       map[Method]time.Duration
	hops       int
	queries    int
	mismatches int
}

// run draws one batch and times every query against the three lookups.
func (r *Runner) run(n int, seed int64) (runResult, error) {
	pts, err := builder.Build([]builder.BuilderOption{
		builder.WithSeed(seed),
		builder.WithMaxGroup(r.cfg.MaxGroup),
	}, builder.Grouped(n))
	if err != nil {
		return runResult{}, err
	}
	qs, err := builder.Queries(pts,
		builder.WithSeed(^seed),
		builder.WithSpread(r.cfg.MaxVariation),
		builder.WithMaxTolerance(r.cfg.MaxTolerance))
	if err != nil {
		return runResult{}, err
	}

	unsorted := slices.Clone(pts)
	tr := octree.New[float64]()
	tr.Init(pts, octree.Lexicographic[float64])
	scratch := make([]point, len(unsorted))

	var (
		res   = runResult{mean: map[Method]time.Duration{}, queries: len(qs)}
		total = map[Method]time.Duration{}
	)
	for _, q := range qs {
		start := time.Now()
		id, ops := tr.Find(q.Point, q.Tolerance)
		d := time.Since(start)
		total[MethodOctree] += d
		r.observe(MethodOctree, d)
		res.hops += ops
		if r.metrics != nil {
			r.metrics.observeHops(ops)
		}

		start = time.Now()
		li := linearScan(unsorted, q.Point, q.Tolerance)
		d = time.Since(start)
		total[MethodLinear] += d
		r.observe(MethodLinear, d)

		start = time.Now()
		copy(scratch, unsorted)
		slices.SortFunc(scratch, octree.Lexicographic[float64])
		_ = linearScan(scratch, q.Point, q.Tolerance)
		d = time.Since(start)
		total[MethodSortLinear] += d
		r.observe(MethodSortLinear, d)

		if r.mismatch(tr, id, li, q) {
			res.mismatches++
		}
	}
	for _, m := range Methods {
		res.mean[m] = total[m] / time.Duration(len(qs))
	}

	return res, nil
}

// mismatch reports and logs a disagreement between Find and the scan.
func (r *Runner) mismatch(tr *octree.Tree[float64], id octree.NodeID, li int, q builder.Query) bool {
	found := id != octree.NoNode
	p, _ := tr.Point(id)
	switch {
	case found != (li >= 0):
		r.log.Warn("find disagrees with linear scan",
			zap.Bool("find", found), zap.Bool("linear", li >= 0),
			zap.Float64s("query", q.Point[:]), zap.Float64("tolerance", q.Tolerance))
	case found && !p.Within(q.Point, q.Tolerance):
		r.log.Warn("find returned a point outside the tolerance",
			zap.Float64s("query", q.Point[:]), zap.Float64s("found", p[:]), zap.Float64("tolerance", q.Tolerance))
	default:
		return false
	}
	if r.metrics != nil {
		r.metrics.addMismatch()
	}

	return true
}

func (r *Runner) observe(m Method, d time.Duration) {
	if r.metrics != nil {
		r.metrics.observeLookup(m, d)
	}
}

// linearScan returns the index of the first point within tol of q, or -1.
func linearScan(pts []point, q point, tol float64) int {
	for i, p := range pts {
		if p.Within(q, tol) {
			return i
		}
	}

	return -1
}
