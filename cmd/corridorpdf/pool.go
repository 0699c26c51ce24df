package main

import (
	"context"
	"fmt"

	corridorpdf "github.com/alnah/go-corridorpdf"
)

// CLIConverter is the interface for the conversion service.
type CLIConverter interface {
	Convert(ctx context.Context, input corridorpdf.Input) (*corridorpdf.Result, error)
}

// Compile-time interface implementation check.
var _ CLIConverter = (*corridorpdf.Converter)(nil)

// Pool abstracts converter pool operations for testability.
type Pool interface {
	Acquire() (CLIConverter, error)
	Release(CLIConverter)
	Size() int
	Close() error
}

// converterPool adapts corridorpdf.ConverterPool to Pool.
type converterPool struct {
	pool *corridorpdf.ConverterPool
}

// Compile-time check that converterPool implements Pool.
var _ Pool = (*converterPool)(nil)

// newConverterPool creates a pool of size converters built with opts.
func newConverterPool(size int, opts ...corridorpdf.Option) (Pool, error) {
	p, err := corridorpdf.NewConverterPool(size, opts...)
	if err != nil {
		return nil, err
	}
	return &converterPool{pool: p}, nil
}

func (p *converterPool) Acquire() (CLIConverter, error) {
	conv, err := p.pool.Acquire()
	if err != nil {
		return nil, err
	}
	return conv, nil
}

func (p *converterPool) Release(c CLIConverter) {
	conv, ok := c.(*corridorpdf.Converter)
	if !ok {
		panic(fmt.Sprintf("converter pool: release of foreign converter %T", c))
	}
	p.pool.Release(conv)
}

func (p *converterPool) Size() int {
	return p.pool.Size()
}

func (p *converterPool) Close() error {
	return p.pool.Close()
}
