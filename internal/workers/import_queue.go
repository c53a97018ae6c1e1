// Package workers holds the Mee6 import queue and its single worker. One
// import runs at a time system-wide, a deliberate backpressure choice that
// trades import latency for protection of the third-party API and the store.
package workers

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/Fripe070/experienced/internal/common"
	"github.com/Fripe070/experienced/internal/metrics"
)

// ImportJob is one pending request to migrate a guild's legacy levels.
type ImportJob struct {
	ID      string
	GuildID uint64
	Token   string
}

// ImportQueue is a mutex-guarded FIFO of pending import jobs. Enqueue is
// non-blocking and safe for arbitrarily many concurrent command handlers;
// only the worker dequeues.
type ImportQueue struct {
	mu      sync.Mutex
	jobs    []ImportJob
	pending map[string]struct{}
	signal  chan struct{}
	metrics *metrics.MetricsRegistry
}

func NewImportQueue(reg *metrics.MetricsRegistry) *ImportQueue {
	return &ImportQueue{
		pending: make(map[string]struct{}),
		signal:  make(chan struct{}, 1),
		metrics: reg,
	}
}

func jobKey(guildID uint64, token string) string {
	return common.FormatID(guildID) + ":" + token
}

// Enqueue appends a job and returns it, or ok=false when an identical
// (guild, token) pair is already waiting.
func (q *ImportQueue) Enqueue(guildID uint64, token string) (ImportJob, bool) {
	key := jobKey(guildID, token)

	q.mu.Lock()
	if _, dup := q.pending[key]; dup {
		q.mu.Unlock()
		return ImportJob{}, false
	}
	job := ImportJob{ID: uuid.NewString(), GuildID: guildID, Token: token}
	q.jobs = append(q.jobs, job)
	q.pending[key] = struct{}{}
	q.metrics.ImportQueueDepth.Set(float64(len(q.jobs)))
	q.mu.Unlock()

	select {
	case q.signal <- struct{}{}:
	default:
	}
	return job, true
}

// Depth returns the number of waiting jobs.
func (q *ImportQueue) Depth() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.jobs)
}

// dequeueOrWait pops the oldest job, blocking until one is available or the
// context ends. Only the worker loop calls this. A dequeued pair may be
// re-enqueued while its import is still running; dedup only covers waiting
// jobs.
func (q *ImportQueue) dequeueOrWait(ctx context.Context) (ImportJob, error) {
	for {
		q.mu.Lock()
		if len(q.jobs) > 0 {
			job := q.jobs[0]
			q.jobs = q.jobs[1:]
			delete(q.pending, jobKey(job.GuildID, job.Token))
			q.metrics.ImportQueueDepth.Set(float64(len(q.jobs)))
			q.mu.Unlock()
			return job, nil
		}
		q.mu.Unlock()

		select {
		case <-ctx.Done():
			return ImportJob{}, ctx.Err()
		case <-q.signal:
		}
	}
}
