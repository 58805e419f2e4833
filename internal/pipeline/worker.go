package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/reroreo1/computer-v1/internal/document"
	"github.com/reroreo1/computer-v1/internal/equation"
	"github.com/reroreo1/computer-v1/internal/notify"
	"github.com/reroreo1/computer-v1/internal/solver"
	"github.com/reroreo1/computer-v1/internal/stats"
)

// Worker processes a single document batch-solve job.
type Worker struct {
	notifier *notify.Client
	stats    *stats.SolveStats
	log      *slog.Logger

	maxConcurrentSolve int
	pdfFallback        bool
}

func NewWorker(notifier *notify.Client, st *stats.SolveStats, log *slog.Logger, maxSolve int, pdfFallback bool) *Worker {
	return &Worker{
		notifier:           notifier,
		stats:              st,
		log:                log,
		maxConcurrentSolve: maxSolve,
		pdfFallback:        pdfFallback,
	}
}

// Process runs the extract-solve-notify pipeline for a job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "doc_id", job.DocID)

	// Phase 1: Extract candidate equations from the document.
	job.SetStatus(StatusExtracting, "extracting equations")
	ext, err := document.ForFile(job.Filename)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "extracting")
		return
	}
	if pdfExt, ok := ext.(*document.PDFExtractor); ok {
		pdfExt.FallbackPdftotext = w.pdfFallback
	}

	doc, err := ext.Extract(bytes.NewReader(job.FileData()), job.Filename)
	if err != nil {
		log.Error("extraction failed", "error", err)
		job.AddError(fmt.Sprintf("extract: %s", err))
		job.SetStatus(StatusFailed, "extracting")
		return
	}
	job.SetTitle(doc.Title)

	candidates := document.FindEquations(doc)
	job.SetTotalEquations(len(candidates))
	log.Info("extracted candidates", "lines", len(doc.Lines), "equations", len(candidates))

	if len(candidates) == 0 {
		job.AddError("no equations found in document")
		job.SetStatus(StatusFailed, "extracting")
		return
	}

	// Phase 2: Solve candidates with bounded concurrency, keeping
	// document order in the results.
	job.SetStatus(StatusSolving, "solving")
	results := make([]Result, len(candidates))
	sem := make(chan struct{}, w.maxConcurrentSolve)
	done := make(chan int, len(candidates))

	for i, input := range candidates {
		sem <- struct{}{}
		go func(i int, input string) {
			defer func() { <-sem }()
			results[i] = w.solveOne(input)
			done <- i
		}(i, input)
	}
	for range candidates {
		select {
		case <-done:
		case <-ctx.Done():
			job.AddError(ctx.Err().Error())
			job.SetStatus(StatusFailed, "solving")
			return
		}
	}

	malformed := 0
	for _, r := range results {
		job.AddResult(r)
		if r.Error != "" {
			malformed++
		}
	}
	log.Info("solving complete", "solved", len(results)-malformed, "malformed", malformed)

	if malformed == len(results) {
		job.SetStatus(StatusFailed, "solving")
		return
	}

	// Phase 3: Deliver results to the webhook, if configured.
	if w.notifier.Enabled() {
		job.SetStatus(StatusNotifying, "notifying")
		if err := w.deliver(ctx, job, log); err != nil {
			log.Error("notification failed", "error", err)
			job.AddError(fmt.Sprintf("notify: %s", err))
			job.SetStatus(StatusPartial, "done")
			return
		}
	}

	if malformed > 0 {
		job.SetStatus(StatusPartial, "done")
	} else {
		job.SetStatus(StatusCompleted, "done")
	}
}

// solveOne parses and solves a single candidate, recording stats.
func (w *Worker) solveOne(input string) Result {
	start := time.Now()
	terms, err := equation.Parse(input)
	if err != nil {
		w.stats.RecordMalformed()
		return Result{Input: input, Error: err.Error()}
	}
	sol := solver.Solve(terms)
	w.stats.RecordSolve(sol.Kind, time.Since(start))
	return Result{
		Input:       input,
		ReducedForm: terms.ReducedForm(),
		Degree:      sol.Degree,
		Solution:    &sol,
		Message:     sol.Message(),
	}
}

// deliver posts the job snapshot to the webhook with retry.
func (w *Worker) deliver(ctx context.Context, job *Job, log *slog.Logger) error {
	var lastErr error
	for attempt := 0; attempt < MaxRetries; attempt++ {
		lastErr = w.notifier.PostResult(ctx, job.Snapshot())
		if lastErr == nil || !IsRetryable(lastErr) {
			return lastErr
		}
		log.Warn("retryable notify error", "attempt", attempt, "error", lastErr)
		select {
		case <-time.After(Backoff(attempt)):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return lastErr
}
