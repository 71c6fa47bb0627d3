package dto

import (
	"encoding/json"

	"github.com/noah-isme/loan-reschedule-api/internal/models"
)

// RescheduleRequestDetailParams carries every attribute of a loan reschedule request
// as resolved by the query layer.
type RescheduleRequestDetailParams struct {
	ID                            *int64
	LoanID                        int64
	Status                        *models.RescheduleRequestStatus
	RescheduleFromInstallment     *int
	RescheduleFromDate            *models.Date
	RescheduleReasonCode          *models.CodeValue
	RescheduleReasonComment       *string
	Timeline                      *models.RescheduleRequestTimeline
	ClientName                    *string
	LoanAccountNumber             *string
	ClientID                      *int64
	RecalculateInterest           *bool
	ChangeSchedule                bool
	RepayEvery                    *int
	RepaymentPeriodFrequencyType  *models.EnumOption
	FirstDateForSemi              *models.Date
	SecondDateForSemi             *models.Date
	RescheduleReasons             []models.CodeValue
	LoanTermVariations            []models.LoanTermVariation
	RepaymentFrequencyTypeOptions []models.EnumOption
}

// RescheduleRequestTemplateParams carries the client/account context and schedule change
// fields used to pre-fill a new reschedule request.
type RescheduleRequestTemplateParams struct {
	ID                           *int64
	LoanID                       int64
	Status                       *models.RescheduleRequestStatus
	ClientName                   *string
	LoanAccountNumber            *string
	ClientID                     *int64
	RescheduleFromDate           *models.Date
	RescheduleReasonCode         *models.CodeValue
	ChangeSchedule               bool
	RepayEvery                   *int
	RepaymentPeriodFrequencyType *models.EnumOption
	FirstDateForSemi             *models.Date
	SecondDateForSemi            *models.Date
}

// RescheduleRequestView is a read-only snapshot of a loan reschedule request.
// It never changes after construction and may be read concurrently.
type RescheduleRequestView struct {
	id                            *int64
	loanID                        int64
	clientID                      *int64
	clientName                    *string
	loanAccountNumber             *string
	status                        *models.RescheduleRequestStatus
	rescheduleFromInstallment     *int
	rescheduleFromDate            *models.Date
	recalculateInterest           *bool
	rescheduleReasonCode          *models.CodeValue
	timeline                      *models.RescheduleRequestTimeline
	rescheduleReasonComment       *string
	changeSchedule                bool
	repayEvery                    *int
	repaymentPeriodFrequencyType  *models.EnumOption
	firstDateForSemi              *models.Date
	secondDateForSemi             *models.Date
	rescheduleReasons             []models.CodeValue
	loanTermVariations            []models.LoanTermVariation
	repaymentFrequencyTypeOptions []models.EnumOption
}

// NewRescheduleRequestDetail builds the full view returned when a request is retrieved.
// Values are stored as given; nothing is validated.
func NewRescheduleRequestDetail(p RescheduleRequestDetailParams) *RescheduleRequestView {
	return &RescheduleRequestView{
		id:                            p.ID,
		loanID:                        p.LoanID,
		status:                        p.Status,
		rescheduleFromInstallment:     p.RescheduleFromInstallment,
		rescheduleFromDate:            p.RescheduleFromDate,
		rescheduleReasonCode:          p.RescheduleReasonCode,
		rescheduleReasonComment:       p.RescheduleReasonComment,
		timeline:                      p.Timeline,
		clientName:                    p.ClientName,
		loanAccountNumber:             p.LoanAccountNumber,
		clientID:                      p.ClientID,
		recalculateInterest:           p.RecalculateInterest,
		changeSchedule:                p.ChangeSchedule,
		repayEvery:                    p.RepayEvery,
		repaymentPeriodFrequencyType:  p.RepaymentPeriodFrequencyType,
		firstDateForSemi:              p.FirstDateForSemi,
		secondDateForSemi:             p.SecondDateForSemi,
		rescheduleReasons:             cloneSlice(p.RescheduleReasons),
		loanTermVariations:            cloneSlice(p.LoanTermVariations),
		repaymentFrequencyTypeOptions: cloneSlice(p.RepaymentFrequencyTypeOptions),
	}
}

// NewRescheduleRequestTemplate builds the partial view used to pre-fill a creation form.
// Installment, comment, timeline, recalculate-interest and every lookup collection stay absent.
func NewRescheduleRequestTemplate(p RescheduleRequestTemplateParams) *RescheduleRequestView {
	return &RescheduleRequestView{
		id:                            p.ID,
		loanID:                        p.LoanID,
		status:                        p.Status,
		clientName:                    p.ClientName,
		loanAccountNumber:             p.LoanAccountNumber,
		clientID:                      p.ClientID,
		rescheduleFromDate:            p.RescheduleFromDate,
		rescheduleReasonCode:          p.RescheduleReasonCode,
		changeSchedule:                p.ChangeSchedule,
		repayEvery:                    p.RepayEvery,
		repaymentPeriodFrequencyType:  p.RepaymentPeriodFrequencyType,
		firstDateForSemi:              p.FirstDateForSemi,
		secondDateForSemi:             p.SecondDateForSemi,
		rescheduleFromInstallment:     nil,
		rescheduleReasonComment:       nil,
		timeline:                      nil,
		recalculateInterest:           nil,
		rescheduleReasons:             nil,
		loanTermVariations:            nil,
		repaymentFrequencyTypeOptions: nil,
	}
}

// ID returns the request identifier, nil when the view carries none.
func (v *RescheduleRequestView) ID() *int64 { return v.id }

// LoanID returns the loan the request was raised against.
func (v *RescheduleRequestView) LoanID() int64 { return v.loanID }

// ClientID returns the owning client, nil when unknown.
func (v *RescheduleRequestView) ClientID() *int64 { return v.clientID }

// ClientName returns the display name of the owning client.
func (v *RescheduleRequestView) ClientName() *string { return v.clientName }

// LoanAccountNumber returns the external account number of the loan.
func (v *RescheduleRequestView) LoanAccountNumber() *string { return v.loanAccountNumber }

// Status returns the lifecycle status with its derived flags.
func (v *RescheduleRequestView) Status() *models.RescheduleRequestStatus { return v.status }

// RescheduleFromInstallment returns the first installment affected, nil on templates.
func (v *RescheduleRequestView) RescheduleFromInstallment() *int { return v.rescheduleFromInstallment }

// RescheduleFromDate returns the date from which the schedule changes.
func (v *RescheduleRequestView) RescheduleFromDate() *models.Date { return v.rescheduleFromDate }

// RecalculateInterest reports whether interest is recalculated; an unset flag reads as false.
func (v *RescheduleRequestView) RecalculateInterest() bool {
	return v.recalculateInterest != nil && *v.recalculateInterest
}

// RescheduleReasonCode returns the reason code value chosen for the request.
func (v *RescheduleRequestView) RescheduleReasonCode() *models.CodeValue {
	return v.rescheduleReasonCode
}

// RescheduleReasonComment returns the free-text reason, nil on templates.
func (v *RescheduleRequestView) RescheduleReasonComment() *string { return v.rescheduleReasonComment }

// Timeline returns who acted on the request and when, nil on templates.
func (v *RescheduleRequestView) Timeline() *models.RescheduleRequestTimeline { return v.timeline }

// ChangeSchedule reports whether the repayment schedule itself is altered.
func (v *RescheduleRequestView) ChangeSchedule() bool { return v.changeSchedule }

// RepayEvery returns the new repayment interval, nil when unchanged.
func (v *RescheduleRequestView) RepayEvery() *int { return v.repayEvery }

// RepaymentPeriodFrequencyType returns the unit of RepayEvery.
func (v *RescheduleRequestView) RepaymentPeriodFrequencyType() *models.EnumOption {
	return v.repaymentPeriodFrequencyType
}

// FirstDateForSemi returns the first monthly date of a semi-monthly schedule.
func (v *RescheduleRequestView) FirstDateForSemi() *models.Date { return v.firstDateForSemi }

// SecondDateForSemi returns the second monthly date of a semi-monthly schedule.
func (v *RescheduleRequestView) SecondDateForSemi() *models.Date { return v.secondDateForSemi }

// RescheduleReasons returns a copy of the reason lookup options, nil when absent.
func (v *RescheduleRequestView) RescheduleReasons() []models.CodeValue {
	return cloneSlice(v.rescheduleReasons)
}

// LoanTermVariations returns a copy of the term variations, nil when absent.
func (v *RescheduleRequestView) LoanTermVariations() []models.LoanTermVariation {
	return cloneSlice(v.loanTermVariations)
}

// RepaymentFrequencyTypeOptions returns a copy of the frequency options, nil when absent.
func (v *RescheduleRequestView) RepaymentFrequencyTypeOptions() []models.EnumOption {
	return cloneSlice(v.repaymentFrequencyTypeOptions)
}

// rescheduleRequestWire is the JSON shape of a view. Collection pointers distinguish an
// absent collection (omitted) from an empty one (emitted as []).
type rescheduleRequestWire struct {
	ID                            *int64                            `json:"id,omitempty"`
	LoanID                        int64                             `json:"loanId"`
	ClientID                      *int64                            `json:"clientId,omitempty"`
	ClientName                    *string                           `json:"clientName,omitempty"`
	LoanAccountNumber             *string                           `json:"loanAccountNumber,omitempty"`
	StatusEnum                    *models.RescheduleRequestStatus   `json:"statusEnum,omitempty"`
	RescheduleFromInstallment     *int                              `json:"rescheduleFromInstallment,omitempty"`
	RescheduleFromDate            *models.Date                      `json:"rescheduleFromDate,omitempty"`
	RecalculateInterest           *bool                             `json:"recalculateInterest,omitempty"`
	RescheduleReasonCodeValue     *models.CodeValue                 `json:"rescheduleReasonCodeValue,omitempty"`
	Timeline                      *models.RescheduleRequestTimeline `json:"timeline,omitempty"`
	RescheduleReasonComment       *string                           `json:"rescheduleReasonComment,omitempty"`
	ChangeSchedule                bool                              `json:"changeSchedule"`
	RepayEvery                    *int                              `json:"repayEvery,omitempty"`
	RepaymentPeriodFrequencyType  *models.EnumOption                `json:"repaymentPeriodFrequencyType,omitempty"`
	FirstDateForSemi              *models.Date                      `json:"firstDateForSemi,omitempty"`
	SecondDateForSemi             *models.Date                      `json:"secondDateForSemi,omitempty"`
	RescheduleReasons             *[]models.CodeValue               `json:"rescheduleReasons,omitempty"`
	LoanTermVariationsData        *[]models.LoanTermVariation       `json:"loanTermVariationsData,omitempty"`
	RepaymentFrequencyTypeOptions *[]models.EnumOption              `json:"repaymentFrequencyTypeOptions,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (v *RescheduleRequestView) MarshalJSON() ([]byte, error) {
	return json.Marshal(rescheduleRequestWire{
		ID:                            v.id,
		LoanID:                        v.loanID,
		ClientID:                      v.clientID,
		ClientName:                    v.clientName,
		LoanAccountNumber:             v.loanAccountNumber,
		StatusEnum:                    v.status,
		RescheduleFromInstallment:     v.rescheduleFromInstallment,
		RescheduleFromDate:            v.rescheduleFromDate,
		RecalculateInterest:           v.recalculateInterest,
		RescheduleReasonCodeValue:     v.rescheduleReasonCode,
		Timeline:                      v.timeline,
		RescheduleReasonComment:       v.rescheduleReasonComment,
		ChangeSchedule:                v.changeSchedule,
		RepayEvery:                    v.repayEvery,
		RepaymentPeriodFrequencyType:  v.repaymentPeriodFrequencyType,
		FirstDateForSemi:              v.firstDateForSemi,
		SecondDateForSemi:             v.secondDateForSemi,
		RescheduleReasons:             slicePtr(v.rescheduleReasons),
		LoanTermVariationsData:        slicePtr(v.loanTermVariations),
		RepaymentFrequencyTypeOptions: slicePtr(v.repaymentFrequencyTypeOptions),
	})
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func slicePtr[T any](in []T) *[]T {
	if in == nil {
		return nil
	}
	return &in
}
