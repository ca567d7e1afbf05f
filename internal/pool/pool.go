// Package pool provides object pooling for cyarg parsing.
// Used by the token cursor for reusing token buffers across parses and
// reducing GC pressure; no logical parse state survives a Put.
package pool

import "sync"

// Pool provides a generic, type-safe object pool.
type Pool[T any] struct {
	pool  sync.Pool
	reset func(*T) // Optional reset function called before reuse
}

// NewPool creates a new generic pool with the given factory function.
func NewPool[T any](factory func() *T) *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return factory()
			},
		},
	}
}

// NewPoolWithReset creates a pool with a reset function called before reuse.
func NewPoolWithReset[T any](factory func() *T, reset func(*T)) *Pool[T] {
	p := NewPool(factory)
	p.reset = reset
	return p
}

// Get retrieves an object from the pool or creates a new one.
func (p *Pool[T]) Get() *T {
	obj := p.pool.Get().(*T)
	if p.reset != nil {
		p.reset(obj)
	}
	return obj
}

// Put returns an object to the pool for reuse.
func (p *Pool[T]) Put(obj *T) {
	if obj == nil {
		return
	}
	p.pool.Put(obj)
}

// tokenBuffers pools the string slices that back token cursors. One
// parse borrows exactly one buffer; splicing may grow it, and the grown
// capacity is kept for the next parse.
var tokenBuffers = NewPoolWithReset(
	func() *[]string {
		buf := make([]string, 0, 32)
		return &buf
	},
	func(buf *[]string) {
		*buf = (*buf)[:0]
	},
)

// GetTokenBuffer returns an empty token buffer from the pool.
func GetTokenBuffer() *[]string {
	return tokenBuffers.Get()
}

// PutTokenBuffer returns a token buffer to the pool.
func PutTokenBuffer(buf *[]string) {
	if buf == nil {
		return
	}
	// Drop the token strings so pooled buffers do not pin them.
	full := (*buf)[:cap(*buf)]
	for i := range full {
		full[i] = ""
	}
	tokenBuffers.Put(buf)
}
