package builder

import "errors"

var (
	// ErrNoAssembler Director run before any Assembler was bound
	ErrNoAssembler = errors.New("builder: no assembler bound")

	// ErrUnknownRecipe recipe name is not defined on the Director
	ErrUnknownRecipe = errors.New("builder: unknown recipe")
)
