package lexer

import "sync"

// Token-slice pools, tiered by estimated source size, to avoid a fresh
// allocation per parse for the common small/medium source case.
// Tokenize always returns a freshly sized owned slice; the pooled
// scratch buffer is only used internally while scanning and is returned
// to its pool before Tokenize returns.
var (
	smallSlicePool = sync.Pool{
		New: func() interface{} {
			slice := make([]rawToken, 0, 64)
			return &slice
		},
	}
	mediumSlicePool = sync.Pool{
		New: func() interface{} {
			slice := make([]rawToken, 0, 512)
			return &slice
		},
	}
	largeSlicePool = sync.Pool{
		New: func() interface{} {
			slice := make([]rawToken, 0, 4096)
			return &slice
		},
	}
)

func getTokenSlice(estimatedSize int) *[]rawToken {
	switch {
	case estimatedSize <= 64:
		return smallSlicePool.Get().(*[]rawToken)
	case estimatedSize <= 512:
		return mediumSlicePool.Get().(*[]rawToken)
	default:
		return largeSlicePool.Get().(*[]rawToken)
	}
}

func putTokenSlice(slice *[]rawToken) {
	*slice = (*slice)[:0]
	switch c := cap(*slice); {
	case c <= 64:
		smallSlicePool.Put(slice)
	case c <= 512:
		mediumSlicePool.Put(slice)
	case c <= 4096:
		largeSlicePool.Put(slice)
	default:
		// Grew past every tier; let the GC reclaim it rather than pollute
		// a pool with an oversized buffer.
	}
}
