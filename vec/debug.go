package vec

import (
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
)

var (
	// Debug enables operation tracing for the package.
	Debug = false

	DebugWriter io.Writer = os.Stdout
)

func debugf(format string, args ...interface{}) {
	if Debug {
		_, err := fmt.Fprintf(DebugWriter, format, args...)
		if err != nil {
			panic(err)
		}
	}
}

// Dump writes a full rendering of v's contents to w.
func (v Vec[T]) Dump(w io.Writer) {
	spew.Fdump(w, v.data)
}
