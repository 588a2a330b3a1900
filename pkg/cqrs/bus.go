// Package cqrs implements the Command Query Responsibility Segregation
// pattern: commands mutate platform state, queries read it, and a bus routes
// each message to its single registered handler.
package cqrs

import (
	"fmt"
	"reflect"
	"sync"
)

// NameProvider identifies a message (command or query) by name. Names are
// unique per bus and are what handlers register under.
type NameProvider interface {
	// Name returns the name of the message.
	Name() string
}

// Bus is the shared routing core used by both the command and query buses.
type Bus struct {
	handlers       map[string]interface{}
	mutex          sync.RWMutex
	isShuttingDown bool
	activeMessages sync.WaitGroup
	busType        string // "command" or "query"
}

// NewBus creates a Bus of the given type ("command" or "query").
func NewBus(busType string) *Bus {
	return &Bus{
		handlers: make(map[string]interface{}),
		busType:  busType,
	}
}

// Register stores a handler under the name of the message its Handle method
// accepts. The handler must be a pointer to a struct with a Handle method
// whose single parameter implements NameProvider.
func (b *Bus) Register(handler interface{}) (string, error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	handlerType := reflect.TypeOf(handler)
	if handlerType == nil || handlerType.Kind() != reflect.Ptr {
		return "", fmt.Errorf("handler must be a pointer to a struct, got %T", handler)
	}

	handleMethod, exists := handlerType.MethodByName("Handle")
	if !exists {
		return "", fmt.Errorf("handler %T does not implement a Handle method", handler)
	}
	if handleMethod.Type.NumIn() != 2 { // receiver + message
		return "", fmt.Errorf("Handle method of %T must take exactly one %s", handler, b.busType)
	}

	messageType := handleMethod.Type.In(1)
	messageInstance := reflect.New(messageType).Elem().Interface()
	named, ok := messageInstance.(NameProvider)
	if !ok {
		return "", fmt.Errorf("%s type %s does not implement NameProvider", b.busType, messageType)
	}

	name := named.Name()
	if _, taken := b.handlers[name]; taken {
		return "", fmt.Errorf("handler for %s %s already registered", b.busType, name)
	}
	b.handlers[name] = handler
	return name, nil
}

// GetHandler returns the handler registered under the message name.
func (b *Bus) GetHandler(name string) (interface{}, bool) {
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	handler, exists := b.handlers[name]
	return handler, exists
}

// Shutdown marks the bus as shutting down. In-flight messages finish,
// new dispatches are rejected.
func (b *Bus) Shutdown() {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.isShuttingDown = true
}

// IsShuttingDown reports whether Shutdown has been called.
func (b *Bus) IsShuttingDown() bool {
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	return b.isShuttingDown
}

// WaitForCompletion blocks until every active message has finished.
// Call after Shutdown to drain the bus.
func (b *Bus) WaitForCompletion() {
	b.activeMessages.Wait()
}

func (b *Bus) trackMessage()  { b.activeMessages.Add(1) }
func (b *Bus) finishMessage() { b.activeMessages.Done() }
