package prototype

// Snapshot is a read-only view of a Prototype for display.
type Snapshot struct {
	Name    string  `json:"name" yaml:"name"`
	Variant string  `json:"variant" yaml:"variant"`
	Field   float64 `json:"field" yaml:"field"`
}

// Describe takes a Snapshot of p.
func Describe(p Prototype) Snapshot {
	return Snapshot{Name: p.Name(), Variant: Variant(p), Field: p.Field()}
}

// Variant names the concrete variant of p.
func Variant(p Prototype) string {
	switch p.(type) {
	case *ConcretePrototype1:
		return "ConcretePrototype1"
	case *ConcretePrototype2:
		return "ConcretePrototype2"
	case *MessagePrototype:
		return "MessagePrototype"
	default:
		return "unknown"
	}
}
