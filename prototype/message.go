package prototype

import (
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

var _ Prototype = (*MessagePrototype)(nil)

// FieldKey is the attribute holding the shared scalar field of a MessagePrototype.
const FieldKey = "field"

// MessagePrototype keeps its state in a protobuf Struct, so arbitrary nested
// attributes survive a deep copy.
type MessagePrototype struct {
	name  string
	state *structpb.Struct
}

// NewMessagePrototype builds a MessagePrototype from attrs. Values must be
// accepted by structpb.NewValue.
func NewMessagePrototype(name string, attrs map[string]any) (*MessagePrototype, error) {
	state, err := structpb.NewStruct(attrs)
	if err != nil {
		return nil, err
	}
	return &MessagePrototype{name: name, state: state}, nil
}

func (p *MessagePrototype) Name() string {
	return p.name
}

func (p *MessagePrototype) Field() float64 {
	return p.state.GetFields()[FieldKey].GetNumberValue()
}

func (p *MessagePrototype) Apply(value float64) {
	p.Set(FieldKey, structpb.NewNumberValue(value))
}

// Set stores value under key on this instance.
func (p *MessagePrototype) Set(key string, value *structpb.Value) {
	if p.state == nil {
		p.state = &structpb.Struct{}
	}
	if p.state.Fields == nil {
		p.state.Fields = make(map[string]*structpb.Value)
	}
	p.state.Fields[key] = value
}

// Attributes returns the state as plain Go values.
func (p *MessagePrototype) Attributes() map[string]any {
	return p.state.AsMap()
}

func (p *MessagePrototype) DeepCopy() Prototype {
	return &MessagePrototype{name: p.name, state: proto.Clone(p.state).(*structpb.Struct)}
}
