package services

import "fmt"

// ValidationError means user input failed a local invariant. It is surfaced
// inline and never sent to the network.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// ServiceError carries a non-success reply from an external service. The
// upstream status and body are preserved verbatim for logging.
type ServiceError struct {
	Service string
	Status  int
	Body    string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s API error %d: %s", e.Service, e.Status, e.Body)
}

// PersistenceError reports a failed store operation. Stage says which write
// failed ("header" or "items"); Partial means the meal header was already
// committed when the failure happened, so part of the data survived.
type PersistenceError struct {
	Stage   string
	Partial bool
	Err     error
}

func (e *PersistenceError) Error() string {
	if e.Partial {
		return fmt.Sprintf("persistence failed at %s stage (meal partially saved): %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("persistence failed at %s stage: %v", e.Stage, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
