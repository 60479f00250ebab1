package cyk

import "log"

// debugEnabled gates the verbose derivation trace below.
var debugEnabled bool

// SetDebug turns the package's verbose derivation trace on or off. Off by
// default. When on, CNF construction logs each Pair and each new Implicit
// it creates, and each parse logs its token count and shortest value;
// individual Lead and Pair applications during the CYK fill are not logged.
func SetDebug(enabled bool) {
	debugEnabled = enabled
}

func debugf(format string, args ...interface{}) {
	if debugEnabled {
		log.Printf("cyk: "+format, args...)
	}
}
