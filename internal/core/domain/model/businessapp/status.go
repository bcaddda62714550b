package businessapp

import (
	"fmt"

	"grocery/internal/pkg/errs"
)

// Status represents the review state of a business application.
// It implements a state machine with defined transitions so applications
// follow the correct onboarding workflow.
//
// State transitions:
//
//	Pending ──┬──> Approved
//	          │
//	          └──> Rejected ──> Pending
//	                       (resubmission)
//
// Approved is a terminal state. A rejected application may be resubmitted,
// which starts a fresh review cycle in Pending.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status after submission.
	// Applications in this status are waiting for administrator review.
	Pending

	// Approved indicates the application passed review and a business was created.
	// This is a terminal state with no further transitions allowed.
	Approved

	// Rejected indicates the application failed review.
	// The applicant may resubmit, which moves the application back to Pending.
	Rejected
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "Unknown",
		Pending:  "Pending",
		Approved: "Approved",
		Rejected: "Rejected",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:  "Pending",
		Approved: "Approved",
		Rejected: "Rejected",
	}
}

// StatusFromString parses a status from its string representation.
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
// Valid statuses are: Pending, Approved, Rejected.
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

// IsTerminal reports whether the status ends the current review cycle.
// Approved and Rejected are terminal; a terminal application is never
// re-opened in place except through an explicit resubmission.
func (s Status) IsTerminal() bool {
	return s == Approved || s == Rejected
}

// Approve transitions the status to Approved.
//
// Valid transitions:
//   - Pending -> Approved
//
// Returns (0, error) if the application is not currently Pending,
// so approving twice fails on the second call.
func (s Status) Approve() (Status, error) {
	if s != Pending {
		return 0, errs.NewStateIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to approve", s.String()),
		)
	}

	return Approved, nil
}

// Reject transitions the status to Rejected.
//
// Valid transitions:
//   - Pending -> Rejected
//
// Returns (0, error) if the application is not currently Pending.
func (s Status) Reject() (Status, error) {
	if s != Pending {
		return 0, errs.NewStateIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to reject", s.String()),
		)
	}

	return Rejected, nil
}

// Resubmit transitions the status back to Pending for a new review cycle.
//
// Valid transitions:
//   - Rejected -> Pending (new cycle after rejection)
//   - Pending -> Pending (amending a submission still under review)
//
// Returns (0, error) if the application is Approved or invalid.
func (s Status) Resubmit() (Status, error) {
	if s != Pending && s != Rejected {
		return 0, errs.NewStateIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to resubmit", s.String()),
		)
	}

	return Pending, nil
}
