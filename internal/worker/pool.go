package worker

import (
	"context"
	"sync"
)

type Task func(ctx context.Context) error

type Result struct {
	Err error
}

// Pool runs submitted tasks on a fixed number of goroutines. Batch scoring
// has no ordering dependency between postings, so tasks complete in any
// order; callers collect their own outputs through the task closures.
type Pool struct {
	workers int
	tasks   chan Task
	wg      sync.WaitGroup
}

func NewPool(workers, buffer int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	if buffer < 0 {
		buffer = 0
	}
	return &Pool{
		workers: workers,
		tasks:   make(chan Task, buffer),
	}
}

func (p *Pool) Submit(t Task) {
	if p == nil || t == nil {
		return
	}
	p.tasks <- t
}

func (p *Pool) Close() {
	if p == nil {
		return
	}
	close(p.tasks)
}

func (p *Pool) Run(ctx context.Context) <-chan Result {
	buf := p.workers * 64
	if buf < 1 {
		buf = 1
	}
	out := make(chan Result, buf)
	if p == nil {
		close(out)
		return out
	}

	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go func() {
			defer p.wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case t, ok := <-p.tasks:
					if !ok {
						return
					}
					if t == nil {
						continue
					}
					err := t(ctx)
					select {
					case <-ctx.Done():
						return
					case out <- Result{Err: err}:
					}
				}
			}
		}()
	}

	go func() {
		p.wg.Wait()
		close(out)
	}()

	return out
}
