package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

func TestPool_RunsAllTasks(t *testing.T) {
	p := NewPool(4, 16)

	var done atomic.Int64
	for i := 0; i < 16; i++ {
		p.Submit(func(ctx context.Context) error {
			done.Add(1)
			return nil
		})
	}
	p.Close()

	results := 0
	for res := range p.Run(context.Background()) {
		if res.Err != nil {
			t.Fatalf("unexpected err: %v", res.Err)
		}
		results++
	}
	if results != 16 {
		t.Fatalf("expected 16 results, got %d", results)
	}
	if done.Load() != 16 {
		t.Fatalf("expected 16 tasks executed, got %d", done.Load())
	}
}

func TestPool_PropagatesTaskErrors(t *testing.T) {
	p := NewPool(2, 4)
	boom := errors.New("boom")

	p.Submit(func(ctx context.Context) error { return boom })
	p.Submit(func(ctx context.Context) error { return nil })
	p.Close()

	failures := 0
	for res := range p.Run(context.Background()) {
		if res.Err != nil {
			failures++
		}
	}
	if failures != 1 {
		t.Fatalf("expected 1 failure, got %d", failures)
	}
}

func TestPool_ZeroWorkersDefaultsToOne(t *testing.T) {
	p := NewPool(0, 1)
	p.Submit(func(ctx context.Context) error { return nil })
	p.Close()

	count := 0
	for range p.Run(context.Background()) {
		count++
	}
	if count != 1 {
		t.Fatalf("expected 1 result, got %d", count)
	}
}
