// Package diag provides the optional diagnostic sink used by lib/aligned
// and lib/freelist. It is never on the correctness path: every call site
// tolerates the default, discarding logger.
//
// The teacher repository (piotrnar-gocoin) never imports a structured
// logging library anywhere in its tree, logging instead with plain fmt or
// println (client/log.go, others/sys/stuff.go). No other repository in the
// retrieval pack demonstrates a logging dependency that would fit a
// leaf-level, allocation-hot package, so this wraps the standard library's
// log.Logger rather than reaching for a third-party logger.
package diag

import (
	"io"
	"log"
	"sync/atomic"
)

var logger atomic.Pointer[log.Logger]

func init() {
	logger.Store(log.New(io.Discard, "", 0))
}

// SetOutput redirects diagnostic output. Passing io.Discard (the default)
// silences all diagnostics.
func SetOutput(w io.Writer) {
	logger.Store(log.New(w, "", log.LstdFlags))
}

// Debugf records a debug-severity diagnostic. It never affects control
// flow or return values of the caller.
func Debugf(format string, args ...any) {
	logger.Load().Printf("DEBUG "+format, args...)
}

// Errorf records an error-severity diagnostic. It never affects control
// flow or return values of the caller; callers still return their own
// error/nil result independently.
func Errorf(format string, args ...any) {
	logger.Load().Printf("ERROR "+format, args...)
}
