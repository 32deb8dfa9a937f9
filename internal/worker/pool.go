// Package worker runs document analyses concurrently for batch mode
// and paces outbound requests per host.
package worker

import (
	"context"
	"sync"

	"github.com/pkoval/redline/internal/model"
)

// Runner turns one batch source, a file path or URL, into an analysis.
type Runner interface {
	Run(ctx context.Context, source string) (*model.AnalysisResult, error)
}

// Outcome pairs a batch source with its analysis or error.
type Outcome struct {
	Source string
	Result *model.AnalysisResult
	Err    error
}

// Pool fans sources out to a fixed number of analysis workers.
type Pool struct {
	workers   int
	runner    Runner
	jobs      chan string
	outcomes  chan Outcome
	wg        sync.WaitGroup
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
}

// NewPool creates a pool of workers executing r. Worker counts below
// one are raised to one. Cancelling ctx stops in-flight work.
func NewPool(ctx context.Context, workers int, r Runner) *Pool {
	if workers <= 0 {
		workers = 1
	}

	ctx, cancel := context.WithCancel(ctx)

	return &Pool{
		workers:  workers,
		runner:   r,
		jobs:     make(chan string, workers*2),
		outcomes: make(chan Outcome, workers*2),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start launches the workers.
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.ctx.Done():
			return
		case source, ok := <-p.jobs:
			if !ok {
				return
			}
			result, err := p.runner.Run(p.ctx, source)
			select {
			case p.outcomes <- Outcome{Source: source, Result: result, Err: err}:
			case <-p.ctx.Done():
				return
			}
		}
	}
}

// Submit queues one source. Calls after Shutdown are dropped.
func (p *Pool) Submit(source string) {
	select {
	case <-p.ctx.Done():
	case p.jobs <- source:
	}
}

// Wait closes the queue, waits for the workers, and returns every
// outcome in completion order.
func (p *Pool) Wait() []Outcome {
	close(p.jobs)

	go func() {
		p.wg.Wait()
		p.closeOutcomes()
	}()

	var outcomes []Outcome
	for out := range p.outcomes {
		outcomes = append(outcomes, out)
	}
	return outcomes
}

// Shutdown cancels in-flight work and releases the workers.
func (p *Pool) Shutdown() {
	p.cancel()
	p.wg.Wait()
	p.closeOutcomes()
}

func (p *Pool) closeOutcomes() {
	p.closeOnce.Do(func() {
		close(p.outcomes)
	})
}
