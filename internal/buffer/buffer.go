// Package buffer provides pooled scratch slices for transient search
// output. Uses sync.Pool for automatic memory reuse so the scalar
// bridge and batch composition paths allocate nothing in steady state.
package buffer

import "sync"

// Pool hands out scratch slices of a single element type.
// Released slices are recycled across goroutines.
type Pool[T any] struct {
	p sync.Pool
}

// NewPool creates an empty Pool.
func NewPool[T any]() *Pool[T] {
	return &Pool[T]{
		p: sync.Pool{
			New: func() any {
				s := make([]T, 0, 1)
				return &s
			},
		},
	}
}

// Acquire returns a slice of length n. Contents are unspecified; every
// element is expected to be overwritten before it is read.
func (p *Pool[T]) Acquire(n int) []T {
	sp := p.p.Get().(*[]T)
	if cap(*sp) < n {
		*sp = make([]T, n)
	}
	return (*sp)[:n]
}

// Release returns a slice obtained from Acquire to the pool.
// The caller must not touch the slice afterwards.
func (p *Pool[T]) Release(s []T) {
	s = s[:0]
	p.p.Put(&s)
}
