package chksum

// SetIsTerminalForTest replaces the terminal predicate and returns a function
// restoring the original one.
func SetIsTerminalForTest(fn func(stream any) bool) (restore func()) {
	saved := isTerminal
	isTerminal = fn
	return func() { isTerminal = saved }
}
