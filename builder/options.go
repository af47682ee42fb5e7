package builder

import "go.uber.org/zap"

type option struct {
	Recipes    map[string]Recipe
	Logger     *zap.Logger
	Decorators []Decorator
}

func newOption(opts ...Option) *option {
	o := &option{Recipes: defaultRecipes()}
	for _, opt := range opts {
		opt(o)
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

type Option func(*option)

// WithRecipe defines or replaces the recipe called name. A nil recipe removes it.
func WithRecipe(name string, recipe Recipe) Option {
	return func(o *option) {
		if recipe == nil {
			delete(o.Recipes, name)
			return
		}
		o.Recipes[name] = recipe
	}
}

// WithSteps defines the recipe called name as tokens added in order.
func WithSteps(name string, tokens ...string) Option {
	return WithRecipe(name, NewSteps(tokens...))
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *option) {
		o.Logger = logger
	}
}

// WithDecorators wraps every recipe, after the logging decorator.
func WithDecorators(decorators ...Decorator) Option {
	return func(o *option) {
		o.Decorators = append(o.Decorators, decorators...)
	}
}
