package events

import "errors"

// ErrPayloadType is returned by PayloadAs when the stored payload does
// not have the requested type.
var ErrPayloadType = errors.New("invalid event payload conversion")

// PayloadAs converts an `any` payload back to its concrete type. It is
// the companion of AnyEventList, whose handlers all receive `any`.
func PayloadAs[T any](payload any) (T, error) {
	if v, ok := payload.(T); ok {
		return v, nil
	}
	var zero T
	return zero, ErrPayloadType
}
