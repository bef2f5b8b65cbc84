package errcode

// Error code convention:
// - 0: no error
// - 4xxx: recoverable warnings (a resource was skipped but the operation continued)
// - 5xxx: system errors (the operation had to abort)
const (
	OK              = 0
	ResourceMissing = 4004
	SystemError     = 5000
)
