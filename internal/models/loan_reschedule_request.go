package models

// RescheduleRequestTimeline records who submitted, approved or rejected a request and when.
type RescheduleRequestTimeline struct {
	SubmittedOnDate      *Date   `json:"submittedOnDate,omitempty"`
	SubmittedByUsername  *string `json:"submittedByUsername,omitempty"`
	SubmittedByFirstname *string `json:"submittedByFirstname,omitempty"`
	SubmittedByLastname  *string `json:"submittedByLastname,omitempty"`
	ApprovedOnDate       *Date   `json:"approvedOnDate,omitempty"`
	ApprovedByUsername   *string `json:"approvedByUsername,omitempty"`
	ApprovedByFirstname  *string `json:"approvedByFirstname,omitempty"`
	ApprovedByLastname   *string `json:"approvedByLastname,omitempty"`
	RejectedOnDate       *Date   `json:"rejectedOnDate,omitempty"`
	RejectedByUsername   *string `json:"rejectedByUsername,omitempty"`
	RejectedByFirstname  *string `json:"rejectedByFirstname,omitempty"`
	RejectedByLastname   *string `json:"rejectedByLastname,omitempty"`
}

// LoanRescheduleRequest is one m_loan_reschedule_request row joined with its loan, client,
// reason code value and the app users that acted on it.
type LoanRescheduleRequest struct {
	ID                        int64   `db:"id"`
	LoanID                    int64   `db:"loan_id"`
	StatusEnum                int     `db:"status_enum"`
	RescheduleFromInstallment *int    `db:"reschedule_from_installment"`
	RescheduleFromDate        *Date   `db:"reschedule_from_date"`
	RecalculateInterest       *bool   `db:"recalculate_interest"`
	ReasonCodeValueID         *int64  `db:"reschedule_reason_cv_id"`
	ReasonCodeValueName       *string `db:"reschedule_reason_cv_value"`
	ReasonComment             *string `db:"reschedule_reason_comment"`
	ChangeSchedule            *bool   `db:"change_schedule"`
	RepayEvery                *int    `db:"repay_every"`
	RepaymentFrequencyType    *int    `db:"repayment_frequency_type"`
	FirstDateForSemi          *Date   `db:"first_date_for_semi"`
	SecondDateForSemi         *Date   `db:"second_date_for_semi"`

	ClientID          *int64  `db:"client_id"`
	ClientName        *string `db:"client_name"`
	LoanAccountNumber *string `db:"loan_account_number"`

	SubmittedOnDate      *Date   `db:"submitted_on_date"`
	SubmittedByUsername  *string `db:"submitted_by_username"`
	SubmittedByFirstname *string `db:"submitted_by_firstname"`
	SubmittedByLastname  *string `db:"submitted_by_lastname"`
	ApprovedOnDate       *Date   `db:"approved_on_date"`
	ApprovedByUsername   *string `db:"approved_by_username"`
	ApprovedByFirstname  *string `db:"approved_by_firstname"`
	ApprovedByLastname   *string `db:"approved_by_lastname"`
	RejectedOnDate       *Date   `db:"rejected_on_date"`
	RejectedByUsername   *string `db:"rejected_by_username"`
	RejectedByFirstname  *string `db:"rejected_by_firstname"`
	RejectedByLastname   *string `db:"rejected_by_lastname"`
}

// Status resolves the stored status identifier.
func (r *LoanRescheduleRequest) Status() RescheduleRequestStatus {
	return RescheduleStatusFromID(r.StatusEnum)
}

// ReasonCode returns the reschedule reason, nil when the request has none.
func (r *LoanRescheduleRequest) ReasonCode() *CodeValue {
	if r.ReasonCodeValueID == nil {
		return nil
	}
	cv := &CodeValue{ID: *r.ReasonCodeValueID, Active: true}
	if r.ReasonCodeValueName != nil {
		cv.Name = *r.ReasonCodeValueName
	}
	return cv
}

// FrequencyType returns the new repayment frequency, nil when unchanged.
func (r *LoanRescheduleRequest) FrequencyType() *EnumOption {
	if r.RepaymentFrequencyType == nil {
		return nil
	}
	option := PeriodFrequencyTypeFromID(*r.RepaymentFrequencyType)
	return &option
}

// ScheduleChanged reports the stored change_schedule flag, false when unset.
func (r *LoanRescheduleRequest) ScheduleChanged() bool {
	return r.ChangeSchedule != nil && *r.ChangeSchedule
}

// Timeline collects the submission, approval and rejection trail.
func (r *LoanRescheduleRequest) Timeline() *RescheduleRequestTimeline {
	return &RescheduleRequestTimeline{
		SubmittedOnDate:      r.SubmittedOnDate,
		SubmittedByUsername:  r.SubmittedByUsername,
		SubmittedByFirstname: r.SubmittedByFirstname,
		SubmittedByLastname:  r.SubmittedByLastname,
		ApprovedOnDate:       r.ApprovedOnDate,
		ApprovedByUsername:   r.ApprovedByUsername,
		ApprovedByFirstname:  r.ApprovedByFirstname,
		ApprovedByLastname:   r.ApprovedByLastname,
		RejectedOnDate:       r.RejectedOnDate,
		RejectedByUsername:   r.RejectedByUsername,
		RejectedByFirstname:  r.RejectedByFirstname,
		RejectedByLastname:   r.RejectedByLastname,
	}
}

// LoanRescheduleFilter constrains listing queries.
type LoanRescheduleFilter struct {
	LoanID   *int64
	StatusID *int
	Limit    int
	Offset   int
}
