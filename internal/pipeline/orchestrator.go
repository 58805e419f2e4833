package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/reroreo1/computer-v1/internal/config"
	"github.com/reroreo1/computer-v1/internal/notify"
	"github.com/reroreo1/computer-v1/internal/stats"
)

// Orchestrator manages the batch-solve pipeline.
type Orchestrator struct {
	jobs     *JobStore
	queue    chan *Job
	notifier *notify.Client
	stats    *stats.SolveStats
	log      *slog.Logger
	cfg      config.Config

	cancel context.CancelFunc
	wg     sync.WaitGroup

	// stopMu serializes Submit's queue send against Stop closing the
	// queue, so a late ingest gets an error instead of a panic.
	stopMu  sync.RWMutex
	stopped bool
}

// NewOrchestrator creates the pipeline; call Start to launch workers.
func NewOrchestrator(cfg config.Config, notifier *notify.Client, st *stats.SolveStats, log *slog.Logger) *Orchestrator {
	return &Orchestrator{
		jobs:     NewJobStore(cfg.JobTTL),
		queue:    make(chan *Job, cfg.MaxQueueSize),
		notifier: notifier,
		stats:    st,
		log:      log,
		cfg:      cfg,
	}
}

// Start launches worker goroutines.
func (o *Orchestrator) Start(ctx context.Context) {
	workerCtx, cancel := context.WithCancel(ctx)
	o.cancel = cancel

	for i := 0; i < o.cfg.WorkerCount; i++ {
		o.wg.Add(1)
		go func() {
			defer o.wg.Done()
			w := NewWorker(o.notifier, o.stats, o.log, o.cfg.MaxConcurrentSolve, o.cfg.PDFFallbackPdftotext)
			for {
				select {
				case <-workerCtx.Done():
					return
				case job, ok := <-o.queue:
					if !ok {
						return
					}
					w.Process(workerCtx, job)
				}
			}
		}()
	}

	// Start job store cleanup.
	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-workerCtx.Done():
				return
			case <-ticker.C:
				o.jobs.Cleanup()
			}
		}
	}()
}

// Stop gracefully shuts down the pipeline. Submit calls made after
// Stop return an error.
func (o *Orchestrator) Stop() {
	if o.cancel != nil {
		o.cancel()
	}
	o.stopMu.Lock()
	if !o.stopped {
		o.stopped = true
		close(o.queue)
	}
	o.stopMu.Unlock()
	o.wg.Wait()
}

// NewJob builds a queued job for uploaded file data.
func (o *Orchestrator) NewJob(filename, title string, data []byte) *Job {
	now := time.Now()
	job := &Job{
		ID:        generateULID(),
		DocID:     ContentHashHex(data)[:16],
		Status:    StatusQueued,
		Phase:     "queued",
		Filename:  filename,
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
	job.SetFileData(data)
	return job
}

// Submit queues a new job for processing.
func (o *Orchestrator) Submit(job *Job) error {
	o.jobs.Put(job)

	o.stopMu.RLock()
	defer o.stopMu.RUnlock()
	if o.stopped {
		job.SetStatus(StatusFailed, "shutting_down")
		return fmt.Errorf("pipeline is shutting down")
	}

	select {
	case o.queue <- job:
		return nil
	default:
		job.SetStatus(StatusFailed, "queue_full")
		return fmt.Errorf("job queue is full (%d)", o.cfg.MaxQueueSize)
	}
}

// GetJob returns a job by ID.
func (o *Orchestrator) GetJob(id string) *Job {
	return o.jobs.Get(id)
}

// ListJobs returns snapshots of all live jobs, newest first.
func (o *Orchestrator) ListJobs() []JobSnapshot {
	return o.jobs.List()
}

// QueueDepth returns current queue depth.
func (o *Orchestrator) QueueDepth() int {
	return len(o.queue)
}

// Stats returns the shared solve stats recorder.
func (o *Orchestrator) Stats() *stats.SolveStats {
	return o.stats
}
