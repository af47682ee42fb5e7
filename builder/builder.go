package builder

import "context"

// Builder yields a finished T.
type Builder[T any] interface {
	Build(ctx context.Context) (T, error)
}

// Assembler accumulates parts into a single in-progress product.
// An Assembler is not safe for concurrent use.
type Assembler interface {
	// Reset discards the in-progress product and starts an empty one.
	Reset()

	// AddPart appends token to the in-progress product.
	AddPart(token string)
}

// Finalizer is an Assembler that hands out what it assembled.
// Different Finalizers may produce entirely unrelated product shapes.
type Finalizer[P any] interface {
	Assembler

	// Finalize transfers the in-progress product to the caller and resets.
	// The assembler never refers to a finalized product again.
	Finalize() P
}
