package checkpointer

import (
	"fmt"
	"time"
)

// timeLayout sorts lexically in the order files were written
const timeLayout = "20060102T150405.000000000"

// FileTimer returns a function which will append to a filename the UTC
// time of the call and the number of previous calls. Including the
// call count keeps names unique when the clock does not advance
// between checkpoints.
func FileTimer(filename, extension string) func() string {
	var calls int
	return func() string {
		calls++
		stamp := time.Now().UTC().Format(timeLayout)
		return fmt.Sprintf("%v-%v-%d%v", filename, stamp, calls, extension)
	}
}
