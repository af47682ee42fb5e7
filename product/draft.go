package product

import "github.com/google/uuid"

// Draft is a Product under construction. It is owned by exactly one assembler.
type Draft struct {
	parts []string
}

// NewDraft returns an empty Draft.
func NewDraft() *Draft {
	return &Draft{}
}

// Add appends part to the draft.
func (d *Draft) Add(part string) {
	d.parts = append(d.parts, part)
}

// Len returns the number of parts added so far.
func (d *Draft) Len() int {
	return len(d.parts)
}

// Seal hands the accumulated parts to a new Product without copying them.
// The draft is left empty and shares nothing with the returned Product.
func (d *Draft) Seal() *Product {
	p := &Product{id: uuid.New(), parts: d.parts}
	d.parts = nil
	return p
}
