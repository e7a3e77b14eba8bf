package service

// Error tags a failed service operation with what was being attempted.
// The wrapped error is usually a *store.Error; callers surface the
// message and may retry the action, nothing retries automatically.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return "failed to " + e.Op + ": " + e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }
