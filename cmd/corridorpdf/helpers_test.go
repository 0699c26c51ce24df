package main

// Notes:
// - This file contains mocks shared by the CLI tests.
// No coverage gaps: this is test infrastructure, not production code.

import (
	"bytes"
	"context"
	"sync"
	"time"

	corridorpdf "github.com/alnah/go-corridorpdf"
)

// ---------------------------------------------------------------------------
// Mock Implementations - For unit testing
// ---------------------------------------------------------------------------

// mockConverter records inputs and returns a fixed result.
type mockConverter struct {
	mu     sync.Mutex
	inputs []corridorpdf.Input
	pdf    []byte
	err    error
}

func (m *mockConverter) Convert(_ context.Context, in corridorpdf.Input) (*corridorpdf.Result, error) {
	m.mu.Lock()
	m.inputs = append(m.inputs, in)
	m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}
	res := &corridorpdf.Result{PDF: m.pdf, Pages: 1, RequestID: "req-1"}
	if in.HTML {
		res.HTML = []byte("<html></html>")
	}
	return res, nil
}

func (m *mockConverter) calls() []corridorpdf.Input {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]corridorpdf.Input(nil), m.inputs...)
}

// mockPool hands out a single shared mockConverter.
type mockPool struct {
	conv       *mockConverter
	size       int
	acquireErr error

	mu       sync.Mutex
	acquired int
	released int
	closed   bool
	opts     int
}

func newMockPool(size int) *mockPool {
	return &mockPool{conv: &mockConverter{pdf: []byte("%PDF-1.4 mock")}, size: size}
}

func (p *mockPool) Acquire() (CLIConverter, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.acquireErr != nil {
		return nil, p.acquireErr
	}
	p.acquired++
	return p.conv, nil
}

func (p *mockPool) Release(CLIConverter) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.released++
}

func (p *mockPool) Size() int { return p.size }

func (p *mockPool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	return nil
}

// testEnv returns an environment with captured output, a fixed clock and
// a factory that always returns pool.
func testEnv(pool *mockPool) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	env := &Environment{
		Now:    func() time.Time { return time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC) },
		Stdout: stdout,
		Stderr: stderr,
		NewPool: func(size int, opts ...corridorpdf.Option) (Pool, error) {
			pool.mu.Lock()
			pool.opts = len(opts)
			pool.mu.Unlock()
			return pool, nil
		},
	}
	return env, stdout, stderr
}
