package cqrs

import (
	"context"
	"errors"
	"fmt"
	"reflect"
)

// ErrQueryBusShuttingDown is returned when a query is dispatched to a bus
// that is shutting down.
var ErrQueryBusShuttingDown = errors.New("query bus is shutting down")

// DefaultQueryBus is the standard QueryBus implementation.
type DefaultQueryBus struct {
	*Bus
}

// NewQueryBus creates a query bus that shuts down gracefully when the
// provided context is cancelled.
func NewQueryBus(ctx context.Context) *DefaultQueryBus {
	b := &DefaultQueryBus{Bus: NewBus("query")}

	if ctx != nil {
		go func() {
			<-ctx.Done()
			b.Shutdown()
		}()
	}
	return b
}

// Register registers a query handler. The handler's Handle method must
// accept a single Query and return a result and an error.
func (b *DefaultQueryBus) Register(handler interface{}) error {
	handlerType := reflect.TypeOf(handler)
	if handlerType == nil {
		return fmt.Errorf("handler must not be nil")
	}
	if method, ok := handlerType.MethodByName("Handle"); !ok {
		return fmt.Errorf("handler %T does not implement a Handle method", handler)
	} else if method.Type.NumOut() != 2 {
		return fmt.Errorf("Handle method of %T must return exactly two values (result and error)", handler)
	}

	_, err := b.Bus.Register(handler)
	return err
}

// Dispatch sends a query to its handler and returns the result.
func (b *DefaultQueryBus) Dispatch(query Query) (interface{}, error) {
	if b.IsShuttingDown() {
		return nil, ErrQueryBusShuttingDown
	}

	handler, exists := b.GetHandler(query.Name())
	if !exists {
		return nil, fmt.Errorf("no handler registered for query %s", query.Name())
	}

	b.trackMessage()
	defer b.finishMessage()

	results := reflect.ValueOf(handler).MethodByName("Handle").
		Call([]reflect.Value{reflect.ValueOf(query)})

	if !results[1].IsNil() {
		return nil, results[1].Interface().(error)
	}
	return results[0].Interface(), nil
}
