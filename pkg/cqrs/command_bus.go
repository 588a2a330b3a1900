package cqrs

import (
	"context"
	"errors"
	"fmt"
	"reflect"
)

// ErrCommandBusShuttingDown is returned when a command is dispatched to a
// bus that is shutting down.
var ErrCommandBusShuttingDown = errors.New("command bus is shutting down")

// DefaultCommandBus is the standard CommandBus implementation.
type DefaultCommandBus struct {
	*Bus
}

// NewCommandBus creates a command bus that shuts down gracefully when the
// provided context is cancelled.
func NewCommandBus(ctx context.Context) *DefaultCommandBus {
	b := &DefaultCommandBus{Bus: NewBus("command")}

	if ctx != nil {
		go func() {
			<-ctx.Done()
			b.Shutdown()
		}()
	}
	return b
}

// Register registers a command handler. The handler's Handle method must
// accept a single Command and return an error.
func (b *DefaultCommandBus) Register(handler interface{}) error {
	handlerType := reflect.TypeOf(handler)
	if handlerType == nil {
		return fmt.Errorf("handler must not be nil")
	}
	if method, ok := handlerType.MethodByName("Handle"); !ok {
		return fmt.Errorf("handler %T does not implement a Handle method", handler)
	} else if method.Type.NumOut() != 1 {
		return fmt.Errorf("Handle method of %T must return exactly one value (an error)", handler)
	}

	_, err := b.Bus.Register(handler)
	return err
}

// Dispatch sends a command to its handler and returns the handler's error.
func (b *DefaultCommandBus) Dispatch(cmd Command) error {
	if b.IsShuttingDown() {
		return ErrCommandBusShuttingDown
	}

	handler, exists := b.GetHandler(cmd.Name())
	if !exists {
		return fmt.Errorf("no handler registered for command %s", cmd.Name())
	}

	b.trackMessage()
	defer b.finishMessage()

	results := reflect.ValueOf(handler).MethodByName("Handle").
		Call([]reflect.Value{reflect.ValueOf(cmd)})

	if len(results) > 0 && !results[0].IsNil() {
		return results[0].Interface().(error)
	}
	return nil
}
