package order

import (
	"fmt"

	"grocery/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct delivery workflow.
//
// State transitions:
//
//	Pending ──┬──> Assigned ──┬──> InTransit ──> Delivered
//	          │      │   │
//	          │      └───┘ (reassignment allowed)
//	          │
//	          └──> Cancelled <── Assigned
//
// Cancelled is reachable from Pending and Assigned only. Delivered and
// Cancelled are final states with no further transitions.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is placed at checkout.
	// Orders in this status are waiting to be assigned to a rider.
	Pending

	// Assigned indicates the order has been assigned to a rider.
	// Orders can be reassigned while in this status.
	Assigned

	// InTransit indicates the rider has picked up the order for delivery.
	InTransit

	// Delivered indicates the order reached the customer.
	// This is a final state with no further transitions allowed.
	Delivered

	// Cancelled indicates the order was cancelled before pickup.
	// This is a final state with no further transitions allowed.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Assigned:  "Assigned",
		InTransit: "InTransit",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Assigned:  "Assigned",
		InTransit: "InTransit",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// StatusFromString parses a status from its string representation.
// Returns an error for unrecognized values, so free-form status strings
// from the API can never reach the domain.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// Valid statuses are: Pending, Assigned, InTransit, Delivered, Cancelled.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Returns "Unknown" for invalid status values.
// This method implements the fmt.Stringer interface.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsFinal reports whether no further transitions are allowed.
func (s Status) IsFinal() bool {
	return s == Delivered || s == Cancelled
}

// ValidateAssign checks if the status allows rider assignment without
// performing the transition.
//
// Valid statuses for assignment:
//   - Pending (initial assignment)
//   - Assigned (reassignment to a different rider)
func (s Status) ValidateAssign() error {
	if s != Pending && s != Assigned {
		return errs.NewStateIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to assign", s.String()),
		)
	}
	return nil
}

// ValidateCanHaveRider validates the consistency between order status and
// rider assignment.
//
// Business rules:
//   - Pending orders must not have a rider assigned
//   - Assigned, InTransit and Delivered orders must have a rider assigned
//   - Cancelled orders may or may not have one, depending on when they
//     were cancelled
func (s Status) ValidateCanHaveRider(rider bool) error {
	if !rider && (s == Assigned || s == InTransit || s == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no rider", s.String()),
		)
	}

	if rider && s == Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a rider", s.String()),
		)
	}

	return nil
}

// Assign transitions the status to Assigned.
//
// Valid transitions:
//   - Pending -> Assigned (initial assignment)
//   - Assigned -> Assigned (reassignment to a different rider)
func (s Status) Assign() (Status, error) {
	if err := s.ValidateAssign(); err != nil {
		return 0, err
	}

	return Assigned, nil
}

// StartTransit transitions the status to InTransit.
//
// Valid transitions:
//   - Assigned -> InTransit (rider picked up the order)
func (s Status) StartTransit() (Status, error) {
	if s != Assigned {
		return 0, errs.NewStateIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to start transit", s.String()),
		)
	}

	return InTransit, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - InTransit -> Delivered (order handed to the customer)
func (s Status) Deliver() (Status, error) {
	if s != InTransit {
		return 0, errs.NewStateIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}

	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//   - Assigned -> Cancelled
//
// Orders already in transit or completed cannot be cancelled.
func (s Status) Cancel() (Status, error) {
	if s != Pending && s != Assigned {
		return 0, errs.NewStateIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}

	return Cancelled, nil
}

// TransitionTo validates and performs a transition to the target status
// according to the transition table. Used by the status update operation,
// which receives a requested target rather than a named action.
func (s Status) TransitionTo(target Status) (Status, error) {
	switch target {
	case Assigned:
		return s.Assign()
	case InTransit:
		return s.StartTransit()
	case Delivered:
		return s.Deliver()
	case Cancelled:
		return s.Cancel()
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid transition target", target.String()),
		)
	}
}
