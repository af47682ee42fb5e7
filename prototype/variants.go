package prototype

import "golang.org/x/exp/slices"

var _ Prototype = (*ConcretePrototype1)(nil)

var _ Prototype = (*ConcretePrototype2)(nil)

// ConcretePrototype1 carries one scalar of its own besides the shared field.
type ConcretePrototype1 struct {
	base
	concrete float64
}

func NewConcretePrototype1(name string, concrete float64) *ConcretePrototype1 {
	return &ConcretePrototype1{base: base{name: name}, concrete: concrete}
}

// Concrete returns the variant's own scalar.
func (p *ConcretePrototype1) Concrete() float64 {
	return p.concrete
}

func (p *ConcretePrototype1) DeepCopy() Prototype {
	copied := *p
	return &copied
}

// ConcretePrototype2 carries a scalar and a list of labels of its own.
type ConcretePrototype2 struct {
	base
	concrete float64
	labels   []string
}

func NewConcretePrototype2(name string, concrete float64, labels ...string) *ConcretePrototype2 {
	return &ConcretePrototype2{base: base{name: name}, concrete: concrete, labels: slices.Clone(labels)}
}

// Concrete returns the variant's own scalar.
func (p *ConcretePrototype2) Concrete() float64 {
	return p.concrete
}

// Label appends label to this instance.
func (p *ConcretePrototype2) Label(label string) {
	p.labels = append(p.labels, label)
}

// Labels returns a copy of the labels.
func (p *ConcretePrototype2) Labels() []string {
	return slices.Clone(p.labels)
}

func (p *ConcretePrototype2) DeepCopy() Prototype {
	copied := *p
	copied.labels = slices.Clone(p.labels)
	return &copied
}
