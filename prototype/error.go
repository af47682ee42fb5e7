package prototype

import (
	"errors"
	"fmt"
)

// ErrUnknownTag tag is not registered
var ErrUnknownTag = errors.New("prototype: unknown tag")

// UnknownTagError reports which tag was asked for. It matches ErrUnknownTag with errors.Is.
type UnknownTagError struct {
	Tag any
}

func (e UnknownTagError) Error() string {
	return fmt.Sprintf("prototype: unknown tag %v", e.Tag)
}

func (e UnknownTagError) Unwrap() error {
	return ErrUnknownTag
}
