package prototype

import "strconv"

// Tag selects one of the canonical prototypes in the default registry.
type Tag int

const (
	Prototype1 Tag = iota
	Prototype2
)

var tagNames = map[Tag]string{
	Prototype1: "PROTOTYPE_1",
	Prototype2: "PROTOTYPE_2",
}

func (t Tag) String() string {
	if name, ok := tagNames[t]; ok {
		return name
	}
	return "Tag(" + strconv.Itoa(int(t)) + ")"
}

// ParseTag returns the Tag whose String is s.
func ParseTag(s string) (Tag, error) {
	for tag, name := range tagNames {
		if name == s {
			return tag, nil
		}
	}
	return 0, UnknownTagError{Tag: s}
}
