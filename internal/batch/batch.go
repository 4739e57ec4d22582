// Package batch analyzes many documents concurrently.
package batch

import (
	"context"
	"io"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/verte-zerg/textlens/internal/analysis"
	"github.com/verte-zerg/textlens/internal/ingest"
	"github.com/verte-zerg/textlens/internal/model"
)

// Result is the analysis of one input. Report is nil when loading failed.
type Result struct {
	Path   string        `json:"path" yaml:"path"`
	Title  string        `json:"title" yaml:"title"`
	Report *model.Report `json:"report,omitempty" yaml:"report,omitempty"`
	Error  string        `json:"error,omitempty" yaml:"error,omitempty"`
	Err    error         `json:"-" yaml:"-"`
}

// ProgressFunc is called after each input finishes. Calls are serialized.
type ProgressFunc func(done, total int, path string)

// Options configure Run.
type Options struct {
	// Workers bounds concurrency; 0 means runtime.NumCPU().
	Workers  int
	Stdin    io.Reader
	Progress ProgressFunc
}

// Run loads and analyzes every path. Results keep input order. Per-input
// failures are recorded on the result; only cancellation aborts the run.
func Run(ctx context.Context, paths []string, opts Options) ([]Result, error) {
	results := make([]Result, len(paths))
	if len(paths) == 0 {
		return results, nil
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var (
		mu   sync.Mutex
		done int
	)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			results[i] = analyzeOne(path, opts.Stdin)

			mu.Lock()
			done++
			if opts.Progress != nil {
				opts.Progress(done, len(paths), path)
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func analyzeOne(path string, stdin io.Reader) Result {
	doc, err := ingest.Load(path, stdin)
	if err != nil {
		return Result{Path: path, Err: err, Error: err.Error()}
	}
	rep := analysis.Analyze(doc.Text)
	return Result{Path: doc.Path, Title: doc.Title, Report: &rep}
}

// Failed counts results that carry an error.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}
