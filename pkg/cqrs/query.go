package cqrs

// Query represents a request for information that does not change the
// state of the system. Queries are named in present tense (e.g., "GetAppEnv").
type Query interface {
	NameProvider
}

// QueryHandler defines the interface for handling queries.
type QueryHandler[Q Query, R any] interface {
	// Handle executes the query and returns the result or an error.
	Handle(query Q) (R, error)
}

// QueryBus dispatches queries to their registered handlers.
type QueryBus interface {
	// Dispatch sends a query to its handler and returns the result.
	Dispatch(query Query) (interface{}, error)

	// Register registers a query handler.
	Register(handler interface{}) error

	// Shutdown initiates a graceful shutdown; new queries are rejected
	// while running ones complete.
	Shutdown()

	// WaitForCompletion blocks until all active queries have finished.
	WaitForCompletion()
}
