package cqrs

// Command represents a request that changes the state of the system.
// Commands are named with verbs in imperative form (e.g., "ResolveApp").
type Command interface {
	NameProvider
}

// CommandHandler defines the interface for handling commands.
type CommandHandler[C Command] interface {
	// Handle executes the command and returns an error if it fails.
	Handle(cmd C) error
}

// CommandBus dispatches commands to their registered handlers.
type CommandBus interface {
	// Dispatch sends a command to its handler.
	Dispatch(cmd Command) error

	// Register registers a command handler.
	Register(handler interface{}) error

	// Shutdown initiates a graceful shutdown; new commands are rejected
	// while running ones complete.
	Shutdown()

	// WaitForCompletion blocks until all active commands have finished.
	WaitForCompletion()
}
