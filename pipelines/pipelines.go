// Package pipelines provides the concurrent stages used to run Monte Carlo experiments. Each stage has an input channel
// and an output channel:
//
//	Stage[S,T any](ctx context.Context, in <-chan S, ...) <-chan T
//
// Every stage is a non-blocking call which starts one or more goroutines. Those goroutines close the output channel and
// exit when the input channel is closed or the context is cancelled.
//
// By default a stage runs on a single goroutine and returns an unbuffered channel. WithBuffer and WithPool change that.
package pipelines

import (
	"context"
	"sync"
)

// Generate starts a pipeline stage which sends the integers 0, 1, ..., n-1 in order. Its output is typically the input
// of a pooled Map stage, where each integer identifies a single trial.
func Generate(ctx context.Context, n int, opts ...Option) <-chan int {
	conf := configure(opts)
	conf.workers = 1 // ordering matters to callers; a pool would only interleave sends.
	return doWithConf(ctx, func(ctx context.Context, out chan int) {
		for i := 0; i < n; i++ {
			select {
			case <-ctx.Done():
				return
			case out <- i:
			}
		}
	}, conf)
}

// Map starts a pipeline stage which converts a "chan S" to a "chan T", by converting each S to exactly one T. It
// applies f to every value received from the input channel and sends the result to the output channel. When run on a
// pool, results may arrive in any order.
func Map[S, T any](ctx context.Context, in <-chan S, f func(S) T, opts ...Option) <-chan T {
	return doWithConf(ctx, func(ctx context.Context, out chan T) {
		for {
			select {
			case <-ctx.Done():
				return
			case s, ok := <-in:
				if !ok {
					return
				}
				select {
				case <-ctx.Done():
					return
				case out <- f(s):
				}
			}
		}
	}, configure(opts))
}

// Reduce folds every value received from in into an accumulator, starting from init. Reduce blocks the caller until
// the input channel is closed or the provided context is cancelled.
// An error is returned if and only if the provided context was cancelled before the input channel was closed.
func Reduce[S, T any](ctx context.Context, in <-chan S, init T, f func(T, S) T) (T, error) {
	result := init
	for {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		case s, ok := <-in:
			if !ok {
				return result, nil
			}
			result = f(result, s)
		}
	}
}

// An Option is passed to optionally configure a pipeline stage.
type Option func(*config)

// WithBuffer configures a pipeline stage to return a buffered output channel with a buffer of the provided size.
func WithBuffer(size int) Option {
	return func(conf *config) {
		conf.bufferSize = size
	}
}

// WithPool configures a pipeline stage to run on a parallel worker pool of the given size. All workers are kept alive
// until the input channel is closed or the provided context is cancelled. Sizes below 1 are treated as 1.
func WithPool(numWorkers int) Option {
	return func(conf *config) {
		conf.workers = numWorkers
	}
}

// WithWaitGroup configures a pipeline stage to add a value to the provided WaitGroup for each goroutine started by the
// stage, and signal Done when each goroutine has completed.
func WithWaitGroup(wg *sync.WaitGroup) Option {
	return func(conf *config) {
		conf.wg = wg
	}
}

type config struct {
	// bufferSize is the size of the buffer of the output channel.
	bufferSize int
	// workers is the number of goroutines on which to run this stage.
	workers int
	// wg is a sync.WaitGroup to decrement when this stage is halted.
	wg *sync.WaitGroup
}

func configure(opts []Option) config {
	result := config{workers: 1}
	for _, opt := range opts {
		opt(&result)
	}
	if result.workers < 1 {
		result.workers = 1
	}
	return result
}

// doWithConf runs doIt on conf.workers goroutines and closes the output channel once all of them have returned.
func doWithConf[T any](ctx context.Context, doIt func(context.Context, chan T), conf config) <-chan T {
	out := make(chan T, conf.bufferSize)
	var running sync.WaitGroup
	for i := 0; i < conf.workers; i++ {
		running.Add(1)
		if conf.wg != nil {
			conf.wg.Add(1)
		}
		go func() {
			defer func() {
				running.Done()
				if conf.wg != nil {
					conf.wg.Done()
				}
			}()
			doIt(ctx, out)
		}()
	}
	go func() {
		running.Wait()
		close(out)
	}()
	return out
}
