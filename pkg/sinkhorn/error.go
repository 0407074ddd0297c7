package sinkhorn

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration signals an out-of-range Scaler parameter,
// ex: a non-positive iteration cap.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// ErrInvalidInput signals an input matrix that cannot be balanced,
// ex: a non-square matrix.
var ErrInvalidInput = errors.New("invalid input")

// NegativeEntryError signals a negative-valued matrix entry
// where disallowed.
//
// It matches ErrInvalidInput under errors.Is.
type NegativeEntryError struct {
	Row, Col int
	Value    float64
}

func (e NegativeEntryError) Error() string {
	return fmt.Sprintf("negative entry %#v at (%d, %d) not allowed",
		e.Value, e.Row, e.Col)
}

func (e NegativeEntryError) Is(target error) bool {
	return target == ErrInvalidInput
}
