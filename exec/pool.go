// Package exec provides the default execution-context collaborator: a
// bounded worker pool that runs blocking filesystem calls submitted by the
// futures dispatch bridge.
package exec

import (
	"errors"
	"sync"

	"github.com/brettbedarf/filefutures"
	"github.com/brettbedarf/filefutures/config"
	"github.com/brettbedarf/filefutures/internal/util"
	"github.com/puzpuzpuz/xsync/v4"
)

var (
	// ErrQueueFull is returned by Submit when the work queue is saturated
	ErrQueueFull = errors.New("exec: work queue full")

	// ErrClosed is returned by Submit after the pool was closed
	ErrClosed = errors.New("exec: pool closed")
)

// Pool is a bounded worker pool satisfying [filefutures.Executor]. Submit
// never blocks: a saturated queue refuses the work item so the caller's
// polling thread is never stalled by dispatch.
type Pool struct {
	mu        sync.RWMutex // protects jobs vs Close
	jobs      chan func()
	closed    bool
	wg        sync.WaitGroup
	submitted *xsync.Counter
	completed *xsync.Counter
	logger    util.Logger
}

// NewPool starts cfg.Workers workers behind a cfg.QueueDepth deep queue
func NewPool(cfg *config.Config) *Pool {
	p := &Pool{
		jobs:      make(chan func(), cfg.QueueDepth),
		submitted: xsync.NewCounter(),
		completed: xsync.NewCounter(),
		logger:    util.GetLogger("exec.Pool"),
	}

	p.wg.Add(cfg.Workers)
	for range cfg.Workers {
		go p.worker()
	}
	p.logger.Debug().Int("workers", cfg.Workers).Int("queueDepth", cfg.QueueDepth).Msg("Pool started")
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for fn := range p.jobs {
		fn()
		p.completed.Inc()
	}
}

// Submit enqueues fn for execution on a worker. It never blocks; a full
// queue or closed pool is reported as an error for the caller to surface.
func (p *Pool) Submit(fn func()) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrClosed
	}
	select {
	case p.jobs <- fn:
		p.submitted.Inc()
		return nil
	default:
		return ErrQueueFull
	}
}

// Close stops intake and waits for already-accepted work to drain.
// Subsequent Submit calls return ErrClosed.
func (p *Pool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.jobs)
	p.mu.Unlock()

	p.wg.Wait()
	p.logger.Debug().
		Int64("submitted", p.submitted.Value()).
		Int64("completed", p.completed.Value()).
		Msg("Pool drained")
}

// Stats reports lifetime submitted and completed job counts
func (p *Pool) Stats() (submitted, completed int64) {
	return p.submitted.Value(), p.completed.Value()
}

var _ filefutures.Executor = (*Pool)(nil)
