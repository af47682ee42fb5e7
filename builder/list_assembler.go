package builder

import (
	"context"

	"github.com/go-leo/creational/product"
)

var _ Finalizer[*product.Product] = (*ListAssembler)(nil)

var _ Builder[*product.Product] = (*ListAssembler)(nil)

// ListAssembler assembles a product.Product whose parts keep insertion order.
// The zero value is ready to use.
type ListAssembler struct {
	draft *product.Draft
}

func NewListAssembler() *ListAssembler {
	a := &ListAssembler{}
	a.Reset()
	return a
}

func (a *ListAssembler) Reset() {
	a.draft = product.NewDraft()
}

func (a *ListAssembler) AddPart(token string) {
	a.current().Add(token)
}

func (a *ListAssembler) Finalize() *product.Product {
	p := a.current().Seal()
	a.Reset()
	return p
}

// Build finalizes unless ctx is already done, in which case the in-progress
// product is left untouched.
func (a *ListAssembler) Build(ctx context.Context) (*product.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return a.Finalize(), nil
}

// Len returns the number of parts in the in-progress product.
func (a *ListAssembler) Len() int {
	return a.current().Len()
}

func (a *ListAssembler) current() *product.Draft {
	if a.draft == nil {
		a.draft = product.NewDraft()
	}
	return a.draft
}
