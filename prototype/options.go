package prototype

import "go.uber.org/zap"

type entry[K any] struct {
	Tag       K
	Prototype Prototype
}

type option[K any] struct {
	Entries []entry[K]
	Logger  *zap.Logger
}

func newOption[K any](opts ...Option[K]) *option[K] {
	o := &option[K]{}
	for _, opt := range opts {
		opt(o)
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

type Option[K any] func(o *option[K])

// Register makes a copy of p the canonical instance for tag. A later Register
// for the same tag wins. A nil p is ignored.
func Register[K any](tag K, p Prototype) Option[K] {
	return func(o *option[K]) {
		if p == nil {
			return
		}
		o.Entries = append(o.Entries, entry[K]{Tag: tag, Prototype: p})
	}
}

func WithLogger[K any](logger *zap.Logger) Option[K] {
	return func(o *option[K]) {
		o.Logger = logger
	}
}
