package vector

import "errors"

var (
	ErrIndexOutOfRange  = errors.New("vector component index out of range")
	ErrDimension        = errors.New("wrong number of vector components")
	ErrUnknownComponent = errors.New("unknown vector component")
)
