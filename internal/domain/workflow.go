package domain

import (
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/bird-chinese-community/bird2-autotype/internal/adapter"
	"github.com/bird-chinese-community/bird2-autotype/internal/controller"
	m "github.com/bird-chinese-community/bird2-autotype/internal/model"
)

const confFilePerm os.FileMode = 0o644

// EstimateArgs selects the files a dry run scans.
type EstimateArgs struct {
	Paths   []m.Path
	Exclude []string
}

// ProcessArgs configures a full processing run.
type ProcessArgs struct {
	EstimateArgs
	// InPlace rewrites files on disk instead of printing to stdout.
	InPlace bool
	// Backup copies each file to <file>.bak before an in-place rewrite.
	Backup bool
	// Diff prints planned insertions as a diff instead of whole files.
	Diff bool
	// Threads caps the worker pool; 0 means one worker per CPU. The pool
	// never exceeds the file count.
	Threads int
	// Reports, when set, is the directory a JSON run report is written to.
	Reports m.Path
}

// Workflow defines the batch operations exposed to the CLI.
type Workflow interface {
	// Process scans, rewrites, and renders the selected files. The
	// returned error reflects the exit status: non-nil when any file had
	// broken syntax or could not be read or written.
	Process(args ProcessArgs) error

	// Estimate scans without writing and renders the decision table.
	Estimate(args EstimateArgs) error

	// Review scans without writing and hands the results to the UI's
	// review session.
	Review(args EstimateArgs) error
}

type workflow struct {
	fs     adapter.ConfFS
	store  adapter.ReportStore
	engine Engine
	ui     controller.UI
}

// NewWorkflow creates a Workflow wired to the provided adapters.
func NewWorkflow(fs adapter.ConfFS, store adapter.ReportStore, engine Engine, ui controller.UI) Workflow {
	return &workflow{fs: fs, store: store, engine: engine, ui: ui}
}

func (w *workflow) Process(args ProcessArgs) error {
	results, err := w.scanAll(args.EstimateArgs, args.Threads, func(res *m.FileResult) {
		if !args.InPlace || res.Inserted() == 0 {
			return
		}

		if args.Backup {
			if _, err := w.fs.Backup(res.Source.Origin); err != nil {
				recordIOProblem(res, fmt.Errorf("backup: %w", err))
				return
			}
		}

		if err := w.fs.WriteFile(res.Source.Origin, res.Output, confFilePerm); err != nil {
			recordIOProblem(res, fmt.Errorf("write: %w", err))
		}
	})
	if err != nil {
		return err
	}

	opts := controller.DisplayOptions{
		InPlace:   args.InPlace,
		Diff:      args.Diff,
		MultiFile: len(results) > 1,
	}
	if err := w.ui.DisplayResults(results, opts); err != nil {
		return err
	}

	if args.Reports != "" {
		path, err := w.store.SaveRun(args.Reports, results)
		if err != nil {
			return err
		}

		w.ui.ReportSaved(path)
	}

	return exitError(results)
}

func (w *workflow) Estimate(args EstimateArgs) error {
	results, err := w.scanAll(args, 0, nil)
	if err != nil {
		return err
	}

	if err := w.ui.DisplayEstimation(results); err != nil {
		return err
	}

	return exitError(results)
}

func (w *workflow) Review(args EstimateArgs) error {
	results, err := w.scanAll(args, 0, nil)
	if err != nil {
		return err
	}

	if err := w.ui.Review(results); err != nil {
		return err
	}

	return exitError(results)
}

// scanAll fans the per-file scans out over a bounded worker pool. Files
// share no mutable state, so the only coordination is the pool limit and the
// final wait; each worker writes its own slot of the results slice. post
// runs inside the worker, after the file's full edit list is computed.
func (w *workflow) scanAll(args EstimateArgs, threads int, post func(*m.FileResult)) ([]m.FileResult, error) {
	sources, err := w.fs.Get(args.Paths, args.Exclude)
	if err != nil {
		return nil, err
	}

	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	if threads > len(sources) {
		threads = len(sources)
	}

	if threads < 1 {
		threads = 1
	}

	g := new(errgroup.Group)
	g.SetLimit(threads)

	results := make([]m.FileResult, len(sources))

	for i, src := range sources {
		g.Go(func() error {
			results[i] = w.processSource(src, post)
			return nil
		})
	}

	// Workers report per-file trouble inside their result, never as a
	// group error, so one broken file cannot abort the batch.
	_ = g.Wait()

	return results, nil
}

func (w *workflow) processSource(src m.Source, post func(*m.FileResult)) m.FileResult {
	res := m.FileResult{Source: src}

	buf, err := w.fs.ReadFile(src.Origin)
	if err != nil {
		recordIOProblem(&res, fmt.Errorf("read: %w", err))
		return res
	}

	res.Input = buf
	res.Decisions, res.Problems = w.engine.ScanFile(buf)

	edits := w.engine.PlanEdits(res.Decisions)
	if len(edits) > 0 {
		res.Output = w.engine.ApplyEdits(buf, edits)
	} else {
		res.Output = buf
	}

	if post != nil {
		post(&res)
	}

	return res
}

func recordIOProblem(res *m.FileResult, err error) {
	res.Problems = append(res.Problems, m.Problem{
		Kind:   m.ProblemIO,
		Detail: err.Error(),
	})
}

func exitError(results []m.FileResult) error {
	fatal := 0

	for _, res := range results {
		if res.HasFatalProblems() {
			fatal++
		}
	}

	if fatal > 0 {
		return fmt.Errorf("%d file(s) reported problems", fatal)
	}

	return nil
}
