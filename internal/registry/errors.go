package registry

import "fmt"

// SessionIDError is raised for an unknown session id, or for a duplicate id
// on NewSession when force is not set.
type SessionIDError struct {
	SessionID string
	Reason    string
}

func (e *SessionIDError) Error() string {
	return fmt.Sprintf("session id %q: %s", e.SessionID, e.Reason)
}

// AddressError is raised when a worker address is required but unset, or
// set when it should not be.
type AddressError struct {
	SessionID string
	Reason    string
}

func (e *AddressError) Error() string {
	return fmt.Sprintf("address error for session %q: %s", e.SessionID, e.Reason)
}

// CycleError is raised for a malformed cycle list: empty or not strictly
// ascending. No upper bound on a cycle value is checked.
type CycleError struct {
	Reason string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("invalid cycle request: %s", e.Reason)
}

// RollbackError is raised when a rollback is attempted with no snapshot to
// roll back to.
type RollbackError struct {
	SessionID string
}

func (e *RollbackError) Error() string {
	return fmt.Sprintf("no snapshot to rollback to for session %q", e.SessionID)
}

// CheckinError is raised when a worker fails to check in within
// CheckinWaitTimeout.
type CheckinError struct {
	SessionID string
}

func (e *CheckinError) Error() string {
	return fmt.Sprintf("worker for session %q did not check in within %s", e.SessionID, CheckinWaitTimeout)
}

// SessionKillError is raised when a subprocess termination attempt fails.
type SessionKillError struct {
	SessionID string
	Cause     error
}

func (e *SessionKillError) Error() string {
	return fmt.Sprintf("failed to kill worker for session %q: %v", e.SessionID, e.Cause)
}

func (e *SessionKillError) Unwrap() error { return e.Cause }
