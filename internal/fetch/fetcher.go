package fetch

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/unitykit-labs/unitykit/internal/ui"
)

// Job is one file to download.
type Job struct {
	URL  string
	Dest string
}

// Result records the outcome of one job.
type Result struct {
	Job Job
	Err error
}

// OK reports whether the job's file was written.
func (r Result) OK() bool { return r.Err == nil }

// Report collects the per-job results of a run, in job order.
type Report struct {
	Results []Result
}

// Succeeded returns the jobs that were written to disk.
func (r *Report) Succeeded() []Job {
	var out []Job
	for _, res := range r.Results {
		if res.OK() {
			out = append(out, res.Job)
		}
	}
	return out
}

// Failed returns the results whose download or write failed.
func (r *Report) Failed() []Result {
	var out []Result
	for _, res := range r.Results {
		if !res.OK() {
			out = append(out, res)
		}
	}
	return out
}

// Fetcher runs download jobs strictly in order.
type Fetcher struct {
	downloader Downloader
	out        io.Writer
}

// NewFetcher returns a Fetcher logging to out.
func NewFetcher(d Downloader, out io.Writer) *Fetcher {
	return &Fetcher{downloader: d, out: out}
}

// Run processes every job in order. A failing job is logged with its URL and
// does not stop the others. The returned error is non-nil only when ctx is
// cancelled; the report then holds the jobs attempted so far.
func (f *Fetcher) Run(ctx context.Context, jobs []Job) (*Report, error) {
	report := &Report{}
	progress := ui.NewProgress(f.out, len(jobs))

	for _, job := range jobs {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		progress.Step("Downloading " + filepath.Base(job.Dest) + "...")

		err := f.runJob(ctx, job)
		if err != nil {
			fmt.Fprintf(f.out, "  [FAIL] An error occurred while downloading %s: %v\n", job.URL, err)
		} else {
			fmt.Fprintf(f.out, "  [ OK ] Downloaded and saved file to %s\n", job.Dest)
		}
		report.Results = append(report.Results, Result{Job: job, Err: err})
	}

	return report, nil
}

func (f *Fetcher) runJob(ctx context.Context, job Job) error {
	if err := os.MkdirAll(filepath.Dir(job.Dest), 0755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	data, err := f.downloader.Fetch(ctx, job.URL)
	if err != nil {
		return err
	}

	if err := os.WriteFile(job.Dest, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", job.Dest, err)
	}
	return nil
}
