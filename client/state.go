package client

import (
	"fmt"
	"sync"
	"time"
)

// FutureState is the lifecycle state of an asynchronous operation.
type FutureState int

const (
	// PENDING indicates the task is queued for a worker.
	PENDING FutureState = iota
	// RUNNING indicates the synchronous operation is executing.
	RUNNING
	// SUCCEEDED indicates the operation returned a response.
	SUCCEEDED
	// FAILED indicates the operation returned an error.
	FAILED
)

// String returns the string representation of the future state.
func (fs FutureState) String() string {
	switch fs {
	case PENDING:
		return "PENDING"
	case RUNNING:
		return "RUNNING"
	case SUCCEEDED:
		return "SUCCEEDED"
	case FAILED:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}

// Terminal reports whether no further transition is possible.
func (fs FutureState) Terminal() bool {
	return fs == SUCCEEDED || fs == FAILED
}

// StateTransition represents a change in future state.
//
// Standard Metadata Keys:
//   - request_id: string - ID shared by the future and its request
//   - operation: string - operation name, e.g. "READ"
type StateTransition struct {
	// From is the previous state.
	From FutureState

	// To is the new current state.
	To FutureState

	// Timestamp is when the transition occurred.
	Timestamp time.Time

	// Error is the failure that completed the future, for FAILED.
	Error error

	// Duration is how long the previous state was held.
	Duration time.Duration

	// Metadata contains additional context about the transition.
	Metadata map[string]interface{}
}

// StateChangeHandler is called when a future changes state.
type StateChangeHandler func(transition StateTransition)

// StateManager guards the state of one future.
type StateManager struct {
	current        FutureState
	lastTransition time.Time
	handlers       []StateChangeHandler
	mu             sync.RWMutex
}

// NewStateManager creates a new state manager in PENDING state.
func NewStateManager() *StateManager {
	return &StateManager{
		current:        PENDING,
		lastTransition: time.Now(),
		handlers:       make([]StateChangeHandler, 0),
	}
}

// TransitionTo attempts to transition to a new state.
// Returns error if the transition is illegal.
//
// Legal transitions:
//   - PENDING → RUNNING
//   - RUNNING → SUCCEEDED
//   - RUNNING → FAILED
func (sm *StateManager) TransitionTo(newState FutureState, err error, metadata map[string]interface{}) error {
	sm.mu.Lock()

	if !sm.isLegalTransition(sm.current, newState) {
		from := sm.current
		sm.mu.Unlock()
		return fmt.Errorf("illegal state transition: %s → %s", from, newState)
	}

	now := time.Now()
	transition := StateTransition{
		From:      sm.current,
		To:        newState,
		Timestamp: now,
		Error:     err,
		Duration:  now.Sub(sm.lastTransition),
		Metadata:  metadata,
	}

	sm.current = newState
	sm.lastTransition = now

	// Notify handlers without the lock to prevent deadlocks
	handlers := make([]StateChangeHandler, len(sm.handlers))
	copy(handlers, sm.handlers)
	sm.mu.Unlock()

	for _, handler := range handlers {
		handler(transition)
	}
	return nil
}

func (sm *StateManager) isLegalTransition(from, to FutureState) bool {
	switch from {
	case PENDING:
		return to == RUNNING
	case RUNNING:
		return to == SUCCEEDED || to == FAILED
	default:
		return false
	}
}

// OnStateChange registers a handler to be called on state transitions.
func (sm *StateManager) OnStateChange(handler StateChangeHandler) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.handlers = append(sm.handlers, handler)
}

// GetState returns the current state (thread-safe).
func (sm *StateManager) GetState() FutureState {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.current
}

// Since returns how long the current state has been held.
func (sm *StateManager) Since() time.Duration {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return time.Since(sm.lastTransition)
}
