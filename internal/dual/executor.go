// Package dual switches individual operations between an in-memory mock
// data source and the persistent store, with fallback-on-failure
// semantics for reads.
package dual

import (
	"context"
	"log"
)

// Strategy selects which data source an operation consults.
type Strategy int

const (
	// StrategyAuto consults the executor's mock-by-default flag. When the
	// flag is off and the real operation fails, the result falls back to
	// the mock operation instead of surfacing the error.
	StrategyAuto Strategy = iota

	// StrategyMock always runs the mock operation.
	StrategyMock

	// StrategyReal always runs the real operation; failures propagate.
	StrategyReal
)

func (s Strategy) String() string {
	switch s {
	case StrategyMock:
		return "mock"
	case StrategyReal:
		return "real"
	default:
		return "auto"
	}
}

// Executor holds the process-wide mock-by-default flag. It is configured
// once at startup (from USE_MOCK) and read-only afterwards.
type Executor struct {
	useMock bool
}

// NewExecutor creates an executor. useMock selects the mock source for
// every StrategyAuto read and every mutation.
func NewExecutor(useMock bool) *Executor {
	return &Executor{useMock: useMock}
}

// UseMockByDefault reports whether the executor routes auto operations
// and mutations to the mock source.
func (e *Executor) UseMockByDefault() bool {
	return e.useMock
}

// Op is a single-shot operation against one data source. Once issued it
// runs to completion or failure; there is no cancellation beyond what
// the operation itself derives from ctx.
type Op[T any] func(ctx context.Context) (T, error)

// Execute runs a read operation against the source selected by strategy.
//
// Under StrategyAuto with the mock flag off, a failing realOp is logged
// and the mockOp result is returned in its place. Callers must be aware
// that an auto read may therefore silently originate from synthetic
// data after a live failure; this trades strict correctness for
// availability on read paths. There is exactly one fallback attempt.
func Execute[T any](ctx context.Context, e *Executor, strategy Strategy, mockOp, realOp Op[T]) (T, error) {
	useMock := e.useMock
	switch strategy {
	case StrategyMock:
		useMock = true
	case StrategyReal:
		useMock = false
	}

	if useMock {
		return mockOp(ctx)
	}

	result, err := realOp(ctx)
	if err != nil && strategy == StrategyAuto {
		log.Printf("dual: real data source failed, falling back to mock: %v", err)
		return mockOp(ctx)
	}
	return result, err
}

// ExecuteMutation runs a write operation. Exactly one of mockOp/realOp
// executes, selected solely by the mock-by-default flag. A failed real
// mutation surfaces as an error and is never retried against the mock:
// mutating the wrong backing store invisibly is unacceptable even where
// reads tolerate it. Mock mutations affect the in-memory graph only.
func ExecuteMutation[T any](ctx context.Context, e *Executor, mockOp, realOp Op[T]) (T, error) {
	if e.useMock {
		return mockOp(ctx)
	}
	return realOp(ctx)
}
