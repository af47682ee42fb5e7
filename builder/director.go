package builder

import (
	"context"
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Director runs named recipes against whichever Assembler is bound to it.
// It borrows the Assembler and keeps no state between runs.
type Director struct {
	assembler Assembler
	recipes   map[string]Recipe
	options   *option
}

func NewDirector(opts ...Option) *Director {
	o := newOption(opts...)
	d := &Director{recipes: make(map[string]Recipe, len(o.Recipes)), options: o}
	decorators := append([]Decorator{Logging(o.Logger)}, o.Decorators...)
	for name, recipe := range o.Recipes {
		d.recipes[name] = Chain(name, recipe, decorators...)
	}
	return d
}

// Bind swaps in a and returns the previously bound Assembler.
func (d *Director) Bind(a Assembler) Assembler {
	old := d.assembler
	d.assembler = a
	return old
}

// Bound returns the bound Assembler, nil if none.
func (d *Director) Bound() Assembler {
	return d.assembler
}

// Run executes the recipe called name against the bound Assembler.
func (d *Director) Run(ctx context.Context, name string) error {
	if d.assembler == nil {
		return ErrNoAssembler
	}
	recipe, ok := d.recipes[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownRecipe, name)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return recipe.Run(ctx, d.assembler)
}

func (d *Director) BuildMinimalViableProduct(ctx context.Context) error {
	return d.Run(ctx, MinimalViable)
}

func (d *Director) BuildFullFeaturedProduct(ctx context.Context) error {
	return d.Run(ctx, FullFeatured)
}

// Recipes returns the defined recipe names, sorted.
func (d *Director) Recipes() []string {
	names := maps.Keys(d.recipes)
	slices.Sort(names)
	return names
}

// Construct binds a to d for one run of recipe and returns the finalized product.
// The previous binding is restored afterwards. On error nothing is finalized.
func Construct[P any](ctx context.Context, d *Director, a Finalizer[P], recipe string) (P, error) {
	old := d.Bind(a)
	defer d.Bind(old)
	if err := d.Run(ctx, recipe); err != nil {
		var p P
		return p, err
	}
	return a.Finalize(), nil
}
