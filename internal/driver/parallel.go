package driver

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"cppfqn/internal/diag"
	"cppfqn/internal/source"
	"cppfqn/internal/trace"
)

// ListExt is the extension of signature lists picked up from directories.
const ListExt = ".sig"

// Options controls batch parsing.
type Options struct {
	Jobs           int // <= 0 means GOMAXPROCS
	MaxDiagnostics int // per file
	Sink           Sink
}

// ListFiles expands paths into a sorted file list: directories are walked
// for *.sig files, plain files are taken as is.
func ListFiles(paths []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(path, ListExt) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// ParseFiles parses every file in parallel. Results keep the order of
// files. A file that cannot be read yields a result with an IO diagnostic
// instead of aborting the batch; only cancellation stops the group.
func ParseFiles(ctx context.Context, files []string, opts Options) ([]*FileResult, error) {
	if len(files) == 0 {
		return nil, nil
	}
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	span := trace.Begin(trace.FromContext(ctx), trace.ScopeDriver, "parse_files", trace.CurrentSpan(ctx).SpanID)
	span.WithExtra("files", strconv.Itoa(len(files)))
	ctx = trace.WithSpanContext(ctx, trace.SpanContext{SpanID: span.ID()})

	for _, path := range files {
		notify(opts.Sink, Event{File: path, Status: StatusQueued})
	}

	// Индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]*FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			notify(opts.Sink, Event{File: path, Status: StatusWorking})
			started := time.Now()

			res, err := ParseFile(gctx, path, opts.MaxDiagnostics)
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			if err != nil {
				results[i] = loadFailure(path, err, opts.MaxDiagnostics)
				notify(opts.Sink, Event{File: path, Status: StatusError, Err: err, Elapsed: time.Since(started)})
				return nil
			}
			results[i] = res
			status, failed := StatusDone, res.Failed()
			if failed > 0 {
				status = StatusError
			}
			notify(opts.Sink, Event{
				File:    path,
				Status:  status,
				Lines:   len(res.Lines),
				Failed:  failed,
				Elapsed: time.Since(started),
			})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		span.End("cancelled")
		return results, err
	}
	span.End("ok")
	return results, nil
}

func loadFailure(path string, err error, maxDiagnostics int) *FileResult {
	res := &FileResult{Path: path, Bag: diag.NewBag(maxDiagnostics)}
	res.Bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{}, err.Error()).At(path, 0))
	return res
}

// MergeDiagnostics collects every file's diagnostics into one sorted bag.
func MergeDiagnostics(results []*FileResult, maxDiagnostics int) *diag.Bag {
	bag := diag.NewBag(maxDiagnostics)
	for _, r := range results {
		if r != nil {
			bag.Merge(r.Bag)
		}
	}
	bag.Sort()
	return bag
}
