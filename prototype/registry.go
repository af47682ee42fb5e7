package prototype

import (
	"context"

	"github.com/go-leo/creational/factory"
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var _ factory.Factory[Prototype, Tag] = (*Registry[Tag])(nil)

// Registry owns one canonical Prototype per tag and hands out deep copies of it.
// The canonical instances are fixed at construction and never handed out, so
// Clone is safe for concurrent use.
type Registry[K constraints.Ordered] struct {
	prototypes map[K]Prototype
	logger     *zap.Logger
}

// NewRegistry builds a Registry from Register options. The registry keeps deep
// copies, so the instances passed in stay owned by the caller.
func NewRegistry[K constraints.Ordered](opts ...Option[K]) *Registry[K] {
	o := newOption(opts...)
	prototypes := make(map[K]Prototype, len(o.Entries))
	for _, e := range o.Entries {
		prototypes[e.Tag] = e.Prototype.DeepCopy()
	}
	return &Registry[K]{prototypes: prototypes, logger: o.Logger}
}

// Default returns the registry holding PROTOTYPE_1 (50) and PROTOTYPE_2 (60).
func Default(opts ...Option[Tag]) *Registry[Tag] {
	opts = append([]Option[Tag]{
		Register(Prototype1, NewConcretePrototype1(Prototype1.String(), 50)),
		Register(Prototype2, NewConcretePrototype2(Prototype2.String(), 60)),
	}, opts...)
	return NewRegistry(opts...)
}

// Clone returns a deep copy of the canonical instance registered under tag.
func (r *Registry[K]) Clone(tag K) (Prototype, error) {
	canonical, ok := r.prototypes[tag]
	if !ok {
		r.logger.Debug("prototype not found", zap.Any("tag", tag))
		return nil, UnknownTagError{Tag: tag}
	}
	return canonical.DeepCopy(), nil
}

// Create is Clone for callers that only know factory.Factory.
func (r *Registry[K]) Create(ctx context.Context, tag K) (Prototype, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.Clone(tag)
}

// Contains reports whether tag is registered.
func (r *Registry[K]) Contains(tag K) bool {
	_, ok := r.prototypes[tag]
	return ok
}

// Tags returns the registered tags, sorted.
func (r *Registry[K]) Tags() []K {
	tags := maps.Keys(r.prototypes)
	slices.Sort(tags)
	return tags
}

func (r *Registry[K]) Len() int {
	return len(r.prototypes)
}
