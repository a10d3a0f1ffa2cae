package design

import (
	"fmt"
	"path/filepath"
	"runtime"
)

// codeLoc walks the call stack to the first frame outside this package's
// own source files. Builder entry points call this once, at construction
// time, so the location recorded is the caller's call site, not some
// internal helper's.
func codeLoc() string {
	for skip := 2; skip < 64; skip++ {
		_, file, line, ok := runtime.Caller(skip)
		if !ok {
			break
		}
		if filepath.Base(filepath.Dir(filepath.ToSlash(file))) != "design" {
			return fmt.Sprintf("%s:%d", filepath.Base(file), line)
		}
	}
	return "unknown location"
}
