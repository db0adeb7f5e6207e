package trace

import (
	"io"
	"os"
	"time"
)

// now is replaced in tests to get stable timestamps.
var now = time.Now

func isStdStream(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (f == os.Stdout || f == os.Stderr)
}
