package donation

import (
	"GiveBridge-Backend/domain"
)

type Status string

const (
	StatusPending   Status = "Pending"
	StatusAccepted  Status = "Accepted"
	StatusRejected  Status = "Rejected"
	StatusCompleted Status = "Completed"
)

// MinRejectionReasonLen is the shortest rejection reason an NGO may submit.
const MinRejectionReasonLen = 10

// allowedTransitions is the single source of truth for the donation
// lifecycle. Rejected and Completed are terminal.
var allowedTransitions = map[Status]map[Status]bool{
	StatusPending: {
		StatusAccepted: true,
		StatusRejected: true,
	},
	StatusAccepted: {
		StatusCompleted: true,
	},
}

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusAccepted, StatusRejected, StatusCompleted:
		return Status(s), nil
	}
	return "", domain.ErrInvalidTransition
}

func CanTransition(from, to Status) bool {
	return allowedTransitions[from][to]
}
