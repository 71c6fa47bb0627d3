package models

import "strings"

// Reschedule request lifecycle status identifiers as stored in m_loan_reschedule_request.status_enum.
const (
	RescheduleStatusInvalid  = 0
	RescheduleStatusPending  = 100
	RescheduleStatusApproved = 200
	RescheduleStatusRejected = 300
)

// RescheduleRequestStatus is the enumerated status of a reschedule request with convenience flags.
type RescheduleRequestStatus struct {
	ID              int64  `json:"id"`
	Code            string `json:"code"`
	Value           string `json:"value"`
	PendingApproval bool   `json:"pendingApproval"`
	Approved        bool   `json:"approved"`
	Rejected        bool   `json:"rejected"`
}

// RescheduleStatusFromID resolves a status identifier into its enumerated form.
func RescheduleStatusFromID(id int) RescheduleRequestStatus {
	switch id {
	case RescheduleStatusPending:
		return RescheduleRequestStatus{
			ID:              RescheduleStatusPending,
			Code:            "loanStatusType.submitted.and.pending.approval",
			Value:           "Submitted and pending approval",
			PendingApproval: true,
		}
	case RescheduleStatusApproved:
		return RescheduleRequestStatus{
			ID:       RescheduleStatusApproved,
			Code:     "loanStatusType.approved",
			Value:    "Approved",
			Approved: true,
		}
	case RescheduleStatusRejected:
		return RescheduleRequestStatus{
			ID:       RescheduleStatusRejected,
			Code:     "loanStatusType.rejected",
			Value:    "Rejected",
			Rejected: true,
		}
	default:
		return RescheduleRequestStatus{
			ID:    RescheduleStatusInvalid,
			Code:  "loanStatusType.invalid",
			Value: "Invalid",
		}
	}
}

// RescheduleCommand names a status filter accepted by listing endpoints.
type RescheduleCommand string

const (
	RescheduleCommandPending  RescheduleCommand = "pending"
	RescheduleCommandApproved RescheduleCommand = "approved"
	RescheduleCommandRejected RescheduleCommand = "rejected"
	RescheduleCommandAll      RescheduleCommand = "all"
)

// ParseRescheduleCommand normalises a raw command. Empty input means all.
func ParseRescheduleCommand(raw string) (RescheduleCommand, bool) {
	switch cmd := RescheduleCommand(strings.ToLower(strings.TrimSpace(raw))); cmd {
	case "":
		return RescheduleCommandAll, true
	case RescheduleCommandPending, RescheduleCommandApproved, RescheduleCommandRejected, RescheduleCommandAll:
		return cmd, true
	default:
		return cmd, false
	}
}

// StatusID returns the status identifier the command filters on, or nil for all.
func (c RescheduleCommand) StatusID() *int {
	var id int
	switch c {
	case RescheduleCommandPending:
		id = RescheduleStatusPending
	case RescheduleCommandApproved:
		id = RescheduleStatusApproved
	case RescheduleCommandRejected:
		id = RescheduleStatusRejected
	default:
		return nil
	}
	return &id
}
