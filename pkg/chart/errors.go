package chart

import (
	"errors"
	"fmt"
)

var (
	ErrConfigurationMismatch = errors.New("configuration mismatch")
	ErrNotAttached           = errors.New("surface is not attached")
)

// Array names used in MismatchError.
const (
	ArrayColumnHeights   = "column heights"
	ArrayColumnColors    = "column colors"
	ArrayXAxisLabels     = "x-axis labels"
	ArrayColumnTopLabels = "column top labels"
	ArrayYAxisLabels     = "y-axis labels"
)

// Cardinality names used in MismatchError.
const (
	CardinalityColumns    = "number of columns"
	CardinalityItemsYAxis = "number of items on the y-axis"
)

// MismatchError is returned when a dataset array does not have exactly as
// many elements as the cardinality it is drawn against.
type MismatchError struct {
	Array       string
	Cardinality string
	Want        int
	Got         int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s: the size of the %s array (%d) cannot be different from the %s (%d)",
		ErrConfigurationMismatch, e.Array, e.Got, e.Cardinality, e.Want)
}

func (e *MismatchError) Is(target error) bool {
	return target == ErrConfigurationMismatch
}

func checkLen(array, cardinality string, want, got int) error {
	if want == got {
		return nil
	}
	return &MismatchError{Array: array, Cardinality: cardinality, Want: want, Got: got}
}
