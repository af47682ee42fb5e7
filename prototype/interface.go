package prototype

// Prototype is an object that can produce an independent deep copy of itself.
// Callers holding only a Prototype never need to know its concrete variant.
type Prototype interface {
	// Name returns the name the prototype was created with.
	Name() string

	// Field returns the shared scalar field.
	Field() float64

	// Apply sets the shared scalar field on this instance only.
	Apply(value float64)

	// DeepCopy returns a new instance of the same concrete variant, sharing no
	// mutable state with the receiver.
	DeepCopy() Prototype
}

// base carries the state every variant shares.
type base struct {
	name  string
	field float64
}

func (b *base) Name() string {
	return b.name
}

func (b *base) Field() float64 {
	return b.field
}

func (b *base) Apply(value float64) {
	b.field = value
}
