// Package worker provides a bounded pool of goroutines that assemble
// country records concurrently.
package worker

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/zoyakhan/covidfactors/internal/models"
)

// BuildFunc assembles the full record for one country
type BuildFunc func(ctx context.Context, country string) (models.CountryRecord, error)

// Pool manages a pool of workers that build country records concurrently
type Pool struct {
	// workers is the number of concurrent workers
	workers int

	// build assembles a single country record
	build BuildFunc

	// inputCh receives country names to build
	inputCh <-chan string

	// outputCh sends build results
	outputCh chan *models.BuildResult

	// wg waits for all workers to complete
	wg sync.WaitGroup

	// ctx is the context for cancellation
	ctx context.Context

	// cancel cancels the context
	cancel context.CancelFunc

	// started indicates if the pool has been started
	started bool

	// mu protects started flag
	mu sync.Mutex
}

// Config holds configuration for the worker pool
type Config struct {
	// Workers is the number of concurrent workers (0 = NumCPU)
	Workers int

	// Build assembles a single country record
	Build BuildFunc

	// InputChannel receives country names to build
	InputChannel <-chan string

	// OutputBufferSize is the size of the output channel buffer
	OutputBufferSize int
}

// NewPool creates a new worker pool
func NewPool(ctx context.Context, config Config) *Pool {
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	if config.OutputBufferSize <= 0 {
		config.OutputBufferSize = config.Workers * 2
	}

	ctx, cancel := context.WithCancel(ctx)

	return &Pool{
		workers:  config.Workers,
		build:    config.Build,
		inputCh:  config.InputChannel,
		outputCh: make(chan *models.BuildResult, config.OutputBufferSize),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start starts the worker pool
func (p *Pool) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return fmt.Errorf("pool already started")
	}
	if p.build == nil {
		return fmt.Errorf("pool has no build function")
	}

	p.started = true

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}

	// Close the output channel once every worker has drained. The derived
	// context is released here too, so a pool that finishes normally does
	// not hold it until GC.
	go func() {
		p.wg.Wait()
		p.cancel()
		close(p.outputCh)
	}()

	return nil
}

// worker builds records from the input channel
func (p *Pool) worker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.ctx.Done():
			return

		case country, ok := <-p.inputCh:
			if !ok {
				return
			}

			result := p.buildCountry(country)

			select {
			case p.outputCh <- result:
			case <-p.ctx.Done():
				return
			}
		}
	}
}

// buildCountry builds a single record and measures duration
func (p *Pool) buildCountry(country string) *models.BuildResult {
	startTime := time.Now()

	record, err := p.build(p.ctx, country)

	duration := time.Since(startTime)

	if err != nil {
		return models.NewFailedResult(country, err, duration)
	}

	return models.NewBuiltResult(country, record, duration)
}

// Results returns the output channel for build results
func (p *Pool) Results() <-chan *models.BuildResult {
	return p.outputCh
}

// Stop cancels in-flight work
func (p *Pool) Stop() {
	p.cancel()
}

// Wait waits for all workers to complete
func (p *Pool) Wait() {
	p.wg.Wait()
}

// WorkerCount returns the number of workers in the pool
func (p *Pool) WorkerCount() int {
	return p.workers
}
