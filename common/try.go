package common

import "fmt"

// Try runs f and converts a panic into an error.
func Try[T any](f func() T) (result T, err error) {
	defer func() {
		if r := recover(); r != nil {
			switch r := r.(type) {
			case error:
				err = r
			default:
				err = fmt.Errorf("%v", r)
			}
		}
	}()
	return f(), nil
}
