package vec

import "fmt"

// RangeError reports a checked access outside [0, Len).
type RangeError struct {
	Index int
	Len   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("vec: index %d out of range [0, %d)", e.Index, e.Len)
}
