package runner

import (
	"context"
	"sync"
)

// Call records one invocation made through a Mock.
type Call struct {
	Name     string
	Args     []string
	Attached bool
}

// Mock implements Runner for testing.
type Mock struct {
	mu    sync.Mutex
	calls []Call

	// Handler, when set, produces the result of each call.
	Handler func(call Call) (Result, error)
}

// NewMock creates a Mock whose calls all succeed.
func NewMock() *Mock {
	return &Mock{}
}

// Run implements Runner.
func (m *Mock) Run(_ context.Context, name string, args ...string) (Result, error) {
	return m.record(Call{Name: name, Args: args})
}

// RunAttached implements Runner.
func (m *Mock) RunAttached(_ context.Context, name string, args ...string) (Result, error) {
	return m.record(Call{Name: name, Args: args, Attached: true})
}

func (m *Mock) record(call Call) (Result, error) {
	m.mu.Lock()
	m.calls = append(m.calls, call)
	handler := m.Handler
	m.mu.Unlock()

	if handler == nil {
		return Result{}, nil
	}
	return handler(call)
}

// Calls returns the recorded invocations.
func (m *Mock) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Call(nil), m.calls...)
}
