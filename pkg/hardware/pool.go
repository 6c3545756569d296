package hardware

import (
	"sync"
)

// Future state values
const (
	statePending = iota
	stateRunning
	stateDone
	stateCancelled
)

// Future tracks one job submitted to the pool. A future can only be
// cancelled while it is still queued; once a worker picks the job up
// it runs to completion.
type Future struct {
	mu    sync.Mutex
	state int
	done  chan struct{}
}

// Cancel marks a queued future cancelled so no worker will run it.
// It returns false when the job already started or finished.
func (f *Future) Cancel() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != statePending {
		return false
	}
	f.state = stateCancelled
	close(f.done)
	return true
}

// Running reports whether a worker is currently executing the job.
func (f *Future) Running() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state == stateRunning
}

// Cancelled reports whether the future was cancelled before starting.
func (f *Future) Cancelled() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state == stateCancelled
}

// Done returns a channel closed when the job finishes or is cancelled.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

func (f *Future) start() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != statePending {
		return false
	}
	f.state = stateRunning
	return true
}

func (f *Future) finish() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = stateDone
	close(f.done)
}

type job struct {
	fn     func()
	future *Future
}

// Pool is a fixed-size in-process worker pool. GPU schemes share the
// device, so the pool stays small instead of scaling with cores.
type Pool struct {
	jobs chan *job
	wg   sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// NewPool starts a pool with the given number of workers.
func NewPool(workers int) *Pool {
	if workers < 1 {
		workers = 1
	}
	p := &Pool{jobs: make(chan *job, 128)}
	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for j := range p.jobs {
		if !j.future.start() {
			continue
		}
		j.fn()
		j.future.finish()
	}
}

// Submit queues fn for execution and returns its future. A nil future
// means the pool is already shut down.
func (p *Pool) Submit(fn func()) *Future {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	f := &Future{done: make(chan struct{})}
	p.jobs <- &job{fn: fn, future: f}
	return f
}

// Shutdown stops accepting jobs and waits for running ones to finish.
func (p *Pool) Shutdown() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	p.mu.Unlock()

	close(p.jobs)
	p.wg.Wait()
}
