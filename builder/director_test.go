package builder

import (
	"context"
	"errors"
	"testing"

	"github.com/go-leo/creational/product"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestDirector_Recipes(t *testing.T) {
	ctx := context.Background()
	a := NewListAssembler()
	d := NewDirector()
	assert.Nil(t, d.Bind(a))
	assert.Same(t, a, d.Bound())

	require.NoError(t, d.BuildMinimalViableProduct(ctx))
	assert.Equal(t, []string{"PartA1"}, a.Finalize().Parts())

	require.NoError(t, d.BuildFullFeaturedProduct(ctx))
	assert.Equal(t, []string{"PartA1", "PartB1", "PartC1"}, a.Finalize().Parts())

	assert.Equal(t, []string{FullFeatured, MinimalViable}, d.Recipes())
}

func TestDirector_RecipeEquivalence(t *testing.T) {
	a := NewListAssembler()
	d := NewDirector()
	d.Bind(a)
	require.NoError(t, d.Run(context.Background(), FullFeatured))
	fromRecipe := a.Finalize()

	a.AddPart("PartA1")
	a.AddPart("PartB1")
	a.AddPart("PartC1")
	manual := a.Finalize()

	if diff := cmp.Diff(manual.Parts(), fromRecipe.Parts()); diff != "" {
		t.Errorf("recipe mismatch (-manual +recipe):\n%s", diff)
	}
	assert.True(t, manual.SameValueAs(fromRecipe))
}

func TestDirector_Rebind(t *testing.T) {
	ctx := context.Background()
	list := NewListAssembler()
	manifest := NewManifestAssembler()
	list.AddPart("PartZ9")

	d := NewDirector()
	d.Bind(list)
	old := d.Bind(manifest)
	assert.Same(t, list, old)
	assert.Equal(t, 1, list.Len())

	require.NoError(t, d.BuildFullFeaturedProduct(ctx))
	require.NoError(t, d.BuildMinimalViableProduct(ctx))
	m := manifest.Finalize()
	assert.Equal(t, 2, m.Quantity("PartA1"))
	assert.Equal(t, 1, m.Quantity("PartC1"))
	assert.Equal(t, []string{"PartZ9"}, list.Finalize().Parts())
}

func TestDirector_Errors(t *testing.T) {
	ctx := context.Background()
	d := NewDirector()
	assert.ErrorIs(t, d.Run(ctx, FullFeatured), ErrNoAssembler)

	a := NewListAssembler()
	d.Bind(a)
	err := d.Run(ctx, "deluxe")
	assert.ErrorIs(t, err, ErrUnknownRecipe)
	assert.Contains(t, err.Error(), `"deluxe"`)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	assert.ErrorIs(t, d.Run(cancelled, FullFeatured), context.Canceled)
	assert.Equal(t, 0, a.Len())
}

func TestDirector_WithRecipe(t *testing.T) {
	ctx := context.Background()
	d := NewDirector(
		WithSteps("custom", "PartA1", "PartC1"),
		WithRecipe(MinimalViable, nil),
	)
	assert.Equal(t, []string{"custom", FullFeatured}, d.Recipes())

	a := NewListAssembler()
	d.Bind(a)
	require.NoError(t, d.Run(ctx, "custom"))
	assert.Equal(t, []string{"PartA1", "PartC1"}, a.Finalize().Parts())
	assert.ErrorIs(t, d.BuildMinimalViableProduct(ctx), ErrUnknownRecipe)
}

func TestDirector_Decorators(t *testing.T) {
	var calls []string
	trace := func(label string) Decorator {
		return func(name string, recipe Recipe) Recipe {
			return RecipeFunc(func(ctx context.Context, a Assembler) error {
				calls = append(calls, label+":"+name)
				return recipe.Run(ctx, a)
			})
		}
	}
	d := NewDirector(WithDecorators(trace("outer"), trace("inner")))
	d.Bind(NewListAssembler())
	require.NoError(t, d.Run(context.Background(), MinimalViable))
	assert.Equal(t, []string{"outer:" + MinimalViable, "inner:" + MinimalViable}, calls)
}

func TestDirector_Logging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	boom := errors.New("boom")
	d := NewDirector(
		WithLogger(zap.New(core)),
		WithRecipe("broken", RecipeFunc(func(context.Context, Assembler) error { return boom })),
	)
	d.Bind(NewListAssembler())

	require.NoError(t, d.Run(context.Background(), FullFeatured))
	assert.ErrorIs(t, d.Run(context.Background(), "broken"), boom)

	done := logs.FilterMessage("recipe done").All()
	require.Len(t, done, 1)
	assert.Equal(t, FullFeatured, done[0].ContextMap()["recipe"])
	assert.Equal(t, 1, logs.FilterMessage("recipe failed").Len())
}

func TestConstruct(t *testing.T) {
	ctx := context.Background()
	d := NewDirector()
	previous := NewListAssembler()
	d.Bind(previous)

	p, err := Construct[*product.Product](ctx, d, NewListAssembler(), FullFeatured)
	require.NoError(t, err)
	assert.Equal(t, "Product parts: PartA1, PartB1, PartC1", p.String())
	assert.Same(t, previous, d.Bound())

	m, err := Construct[*product.Manifest](ctx, d, NewManifestAssembler(), MinimalViable)
	require.NoError(t, err)
	assert.Equal(t, 1, m.Quantity("PartA1"))

	_, err = Construct[*product.Product](ctx, d, NewListAssembler(), "missing")
	assert.ErrorIs(t, err, ErrUnknownRecipe)
}

func TestChain(t *testing.T) {
	var order []int
	mark := func(i int) Decorator {
		return func(_ string, recipe Recipe) Recipe {
			return RecipeFunc(func(ctx context.Context, a Assembler) error {
				order = append(order, i)
				return recipe.Run(ctx, a)
			})
		}
	}
	a := NewListAssembler()
	err := Chain("x", NewSteps("PartA1"), mark(1), mark(2), mark(3)).Run(context.Background(), a)
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, order)
	assert.Equal(t, 1, a.Len())
}
