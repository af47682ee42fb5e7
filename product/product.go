package product

import (
	"strings"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"golang.org/x/exp/slices"
)

// Product is the result of an assembly sequence.
// Products compare by identity with SameIdentityAs and by content with SameValueAs.
// A Product handed out by an assembler is never touched by that assembler again.
type Product struct {
	id    uuid.UUID
	parts []string
}

// New returns a Product holding a copy of parts.
func New(parts ...string) *Product {
	return &Product{id: uuid.New(), parts: slices.Clone(parts)}
}

// Identity return the identity of this product.
func (p *Product) Identity() uuid.UUID {
	return p.id
}

// SameIdentityAs return true if the identities are the same, regardless of parts.
func (p *Product) SameIdentityAs(other *Product) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.id == other.id
}

// SameValueAs return true if both products hold the same parts in the same order.
func (p *Product) SameValueAs(other *Product) bool {
	if p == nil || other == nil {
		return p == other
	}
	return slices.Equal(p.parts, other.parts)
}

// Parts returns a copy of the parts in insertion order.
func (p *Product) Parts() []string {
	return slices.Clone(p.parts)
}

// Len returns the number of parts.
func (p *Product) Len() int {
	return len(p.parts)
}

func (p *Product) String() string {
	return "Product parts: " + strings.Join(p.parts, ", ")
}

func (p *Product) MarshalJSON() ([]byte, error) {
	return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(p.view())
}

func (p *Product) MarshalYAML() (any, error) {
	return p.view(), nil
}

type productView struct {
	ID    string   `json:"id" yaml:"id"`
	Parts []string `json:"parts" yaml:"parts"`
}

func (p *Product) view() productView {
	parts := p.Parts()
	if parts == nil {
		parts = []string{}
	}
	return productView{ID: p.id.String(), Parts: parts}
}
