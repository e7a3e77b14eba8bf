package store

// Kind classifies what a store operation was doing when it failed.
type Kind string

const (
	KindOpen  Kind = "open"
	KindExec  Kind = "execute"
	KindQuery Kind = "query"
)

// Error is a database failure carrying the engine's diagnostic. An open
// failure is fatal at startup; exec/query failures abort one operation
// and leave the store usable.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindOpen:
		return "failed to open database: " + e.Err.Error()
	case KindExec:
		return "failed to execute statement: " + e.Err.Error()
	default:
		return "failed to query database: " + e.Err.Error()
	}
}

func (e *Error) Unwrap() error { return e.Err }

// ExecError wraps an engine error from a write statement.
func ExecError(err error) *Error { return &Error{Kind: KindExec, Err: err} }

// QueryError wraps an engine error from a read statement.
func QueryError(err error) *Error { return &Error{Kind: KindQuery, Err: err} }
