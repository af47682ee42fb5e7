package builder

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

const (
	// MinimalViable adds PartA1 only.
	MinimalViable = "minimal-viable"

	// FullFeatured adds PartA1, PartB1 and PartC1.
	FullFeatured = "full-featured"
)

// Recipe is a fixed sequence of assembly steps, independent of the Assembler running it.
type Recipe interface {
	Run(ctx context.Context, a Assembler) error
}

// The RecipeFunc type is an adapter to allow the use of ordinary functions as Recipe.
type RecipeFunc func(ctx context.Context, a Assembler) error

// Run calls f(ctx, a).
func (f RecipeFunc) Run(ctx context.Context, a Assembler) error {
	return f(ctx, a)
}

// Steps is a Recipe adding each token in order.
type Steps []string

// NewSteps copies tokens into a Steps recipe.
func NewSteps(tokens ...string) Steps {
	return slices.Clone(tokens)
}

func (s Steps) Run(_ context.Context, a Assembler) error {
	for _, token := range s {
		a.AddPart(token)
	}
	return nil
}

// Decorator wraps a named recipe, adding some functionality before or after it runs.
type Decorator func(name string, recipe Recipe) Recipe

// Chain decorates recipe with all decorators, the first one being outermost.
func Chain(name string, recipe Recipe, decorators ...Decorator) Recipe {
	for i := len(decorators) - 1; i >= 0; i-- {
		recipe = decorators[i](name, recipe)
	}
	return recipe
}

// Logging logs each recipe run at debug level.
func Logging(logger *zap.Logger) Decorator {
	return func(name string, recipe Recipe) Recipe {
		return RecipeFunc(func(ctx context.Context, a Assembler) error {
			start := time.Now()
			err := recipe.Run(ctx, a)
			if err != nil {
				logger.Warn("recipe failed", zap.String("recipe", name), zap.Error(err))
				return err
			}
			logger.Debug("recipe done", zap.String("recipe", name), zap.Duration("took", time.Since(start)))
			return nil
		})
	}
}

func defaultRecipes() map[string]Recipe {
	return map[string]Recipe{
		MinimalViable: NewSteps("PartA1"),
		FullFeatured:  NewSteps("PartA1", "PartB1", "PartC1"),
	}
}
