package models

import "fmt"

// OutcomeStatus classifies the result of a campus operation
type OutcomeStatus string

const (
	OutcomeOK                OutcomeStatus = "OK"
	OutcomeCreated           OutcomeStatus = "CREATED"
	OutcomeAlreadyPresent    OutcomeStatus = "ALREADY_PRESENT"
	OutcomeNotFound          OutcomeStatus = "NOT_FOUND"
	OutcomeInsufficientStock OutcomeStatus = "INSUFFICIENT_STOCK"
	OutcomeNotAllocated      OutcomeStatus = "NOT_ALLOCATED"
	OutcomeUnavailable       OutcomeStatus = "UNAVAILABLE"
)

// Outcome reports what an operation did. Expected business conditions
// (duplicate member, empty shelf, free room) come back as an Outcome with a
// non-OK status and leave state untouched; they are never errors.
type Outcome struct {
	Status  OutcomeStatus `json:"status"`
	Message string        `json:"message"`
}

// NewOutcome builds an outcome with a formatted message
func NewOutcome(status OutcomeStatus, format string, args ...interface{}) Outcome {
	return Outcome{Status: status, Message: fmt.Sprintf(format, args...)}
}

// OK reports whether the operation changed state as requested
func (o Outcome) OK() bool {
	return o.Status == OutcomeOK || o.Status == OutcomeCreated
}

// String returns the message
func (o Outcome) String() string {
	return o.Message
}
