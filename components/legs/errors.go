package legs

import (
	"github.com/pkg/errors"
)

var (
	// ErrJointIndexOutOfRange is returned when a joint index isn't one of
	// Base, Shoulder or Elbow.
	ErrJointIndexOutOfRange = errors.New("joint index out of range")

	// ErrLegIndexOutOfRange is returned when a leg index isn't in [0, NumLegs).
	ErrLegIndexOutOfRange = errors.New("leg index out of range")
)
