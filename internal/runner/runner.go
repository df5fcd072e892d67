// Package runner solves puzzle days concurrently, each under its own timeout,
// and compares the answers with the stored history.
package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/aoc2021/internal/inputs"
	"github.com/katalvlaran/aoc2021/internal/store"
	"github.com/katalvlaran/aoc2021/puzzle"
)

var (
	// ErrTimeout is returned when a day does not finish within the timeout.
	ErrTimeout = errors.New("runner: solve timed out")

	// ErrPanic is returned when a solver panics.
	ErrPanic = errors.New("runner: solver panicked")
)

// History is the part of the store used by the runner.
type History interface {
	Latest(ctx context.Context, day int, inputSum string) (store.Run, error)
	Record(ctx context.Context, r store.Run) (store.Run, error)
}

// Request asks for one day. InputPath overrides input lookup when set.
type Request struct {
	Day       int
	InputPath string
}

// Result is the outcome of solving one day.
type Result struct {
	Day      int
	Title    string
	Answer   puzzle.Answer
	Duration time.Duration
	Source   inputs.Source
	Path     string
	Checksum string
	Err      error
	// Changed reports that the answer differs from the last stored run for
	// the same input checksum. Previous holds that run.
	Changed  bool
	Previous *store.Run
}

// OK reports whether the day was solved.
func (r Result) OK() bool { return r.Err == nil }

// Runner solves days.
type Runner struct {
	loader      *inputs.Loader
	history     History
	lookup      func(int) (puzzle.Day, error)
	concurrency int
	timeout     time.Duration
	logger      zerolog.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithConcurrency sets how many days are solved at once. Values < 1 are ignored.
func WithConcurrency(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

// WithTimeout sets the per-day timeout. Values <= 0 disable it.
func WithTimeout(d time.Duration) Option {
	return func(r *Runner) { r.timeout = d }
}

// WithHistory records results and enables change detection.
func WithHistory(h History) Option {
	return func(r *Runner) { r.history = h }
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(r *Runner) { r.logger = l }
}

// WithLookup replaces puzzle.Lookup.
func WithLookup(fn func(int) (puzzle.Day, error)) Option {
	return func(r *Runner) { r.lookup = fn }
}

// New returns a Runner reading inputs through loader.
func New(loader *inputs.Loader, opts ...Option) *Runner {
	r := &Runner{
		loader:      loader,
		lookup:      puzzle.Lookup,
		concurrency: 4,
		timeout:     30 * time.Second,
		logger:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run solves every request and returns the results in request order. Failures
// of individual days are reported in their Result; the returned error is only
// set when ctx is cancelled.
func (r *Runner) Run(ctx context.Context, reqs []Request) ([]Result, error) {
	start := time.Now()
	r.logger.Debug().Int("days", len(reqs)).Int("concurrency", r.concurrency).Msg("starting run")

	// Pre-allocated so results keep request order.
	results := make([]Result, len(reqs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for i, req := range reqs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i] = Result{Day: req.Day, Err: err}
				return nil
			}
			results[i] = r.RunOne(gctx, req)
			return nil
		})
	}
	_ = g.Wait()

	r.logger.Debug().Dur("elapsed", time.Since(start)).Msg("run complete")

	return results, ctx.Err()
}

// RunOne solves a single request.
func (r *Runner) RunOne(ctx context.Context, req Request) Result {
	res := Result{Day: req.Day}
	log := r.logger.With().Int("day", req.Day).Logger()

	day, err := r.lookup(req.Day)
	if err != nil {
		res.Err = err
		return res
	}
	res.Title = day.Title

	in, err := r.loader.Load(day, req.InputPath)
	if err != nil {
		res.Err = err
		return res
	}
	res.Source, res.Path, res.Checksum = in.Source, in.Path, in.Checksum

	begin := time.Now()
	res.Answer, res.Err = r.solve(ctx, day, in.Data)
	res.Duration = time.Since(begin)

	if res.Err != nil {
		log.Warn().Err(res.Err).Dur("took", res.Duration).Msg("solve failed")
		return res
	}
	log.Info().Str("part1", res.Answer.Part1).Str("source", string(res.Source)).
		Dur("took", res.Duration).Msg("solved")

	if r.history != nil {
		r.compareAndRecord(ctx, &res, log)
	}

	return res
}

// solve runs the day's solver under the timeout. A solver that ignores ctx
// keeps running in the background until it returns.
func (r *Runner) solve(ctx context.Context, day puzzle.Day, data []byte) (puzzle.Answer, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	type outcome struct {
		ans puzzle.Answer
		err error
	}
	done := make(chan outcome, 1)

	go func() {
		defer func() {
			if p := recover(); p != nil {
				done <- outcome{err: fmt.Errorf("%w: %v", ErrPanic, p)}
			}
		}()
		ans, err := day.Solve(ctx, data)
		done <- outcome{ans: ans, err: err}
	}()

	select {
	case o := <-done:
		if o.err != nil && errors.Is(o.err, context.DeadlineExceeded) && r.timeout > 0 {
			return puzzle.Answer{}, fmt.Errorf("%w after %s: %w", ErrTimeout, r.timeout, o.err)
		}
		return o.ans, o.err
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return puzzle.Answer{}, fmt.Errorf("%w after %s", ErrTimeout, r.timeout)
		}
		return puzzle.Answer{}, ctx.Err()
	}
}

func (r *Runner) compareAndRecord(ctx context.Context, res *Result, log zerolog.Logger) {
	prev, err := r.history.Latest(ctx, res.Day, res.Checksum)
	switch {
	case err == nil:
		if prev.Part1 != res.Answer.Part1 || prev.Part2 != res.Answer.Part2 {
			res.Changed = true
			res.Previous = &prev
			log.Warn().Str("was", prev.Part1+" / "+prev.Part2).Msg("answer changed for the same input")
		}
	case errors.Is(err, store.ErrNotFound):
	default:
		log.Warn().Err(err).Msg("history lookup failed")
	}

	if _, err := r.history.Record(ctx, store.Run{
		Day:      res.Day,
		Part1:    res.Answer.Part1,
		Part2:    res.Answer.Part2,
		InputSum: res.Checksum,
		Duration: res.Duration,
	}); err != nil {
		log.Warn().Err(err).Msg("failed to record run")
	}
}

// Requests builds one request per day number; path applies to all of them.
func Requests(days []int, path string) []Request {
	reqs := make([]Request, len(days))
	for i, d := range days {
		reqs[i] = Request{Day: d, InputPath: path}
	}

	return reqs
}
