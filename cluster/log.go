package cluster

// Logf is the package-level diagnostic logger used when Options.Logf is nil.
// It discards everything until replaced with SetLogger.
var Logf func(format string, args ...any) = discard

// SetLogger replaces the package logger. Passing nil restores the no-op logger.
func SetLogger(f func(format string, args ...any)) {
	if f == nil {
		Logf = discard
		return
	}
	Logf = f
}

func discard(string, ...any) {}
