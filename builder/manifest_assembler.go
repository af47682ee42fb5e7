package builder

import (
	"context"

	"github.com/go-leo/creational/product"
)

var _ Finalizer[*product.Manifest] = (*ManifestAssembler)(nil)

var _ Builder[*product.Manifest] = (*ManifestAssembler)(nil)

// ManifestAssembler tallies parts into a product.Manifest.
// The zero value is ready to use.
type ManifestAssembler struct {
	parts []string
}

func NewManifestAssembler() *ManifestAssembler {
	return &ManifestAssembler{}
}

func (a *ManifestAssembler) Reset() {
	a.parts = nil
}

func (a *ManifestAssembler) AddPart(token string) {
	a.parts = append(a.parts, token)
}

func (a *ManifestAssembler) Finalize() *product.Manifest {
	m := product.NewManifest(a.parts...)
	a.Reset()
	return m
}

func (a *ManifestAssembler) Build(ctx context.Context) (*product.Manifest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return a.Finalize(), nil
}
