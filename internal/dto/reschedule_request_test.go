package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/loan-reschedule-api/internal/models"
)

func int64Ptr(v int64) *int64 { return &v }
func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
func boolPtr(v bool) *bool    { return &v }

func pendingStatus() *models.RescheduleRequestStatus {
	return &models.RescheduleRequestStatus{ID: 100, Code: "100", Value: "Pending Approval", PendingApproval: true}
}

func detailScenario() RescheduleRequestDetailParams {
	return RescheduleRequestDetailParams{
		ID:                            int64Ptr(10),
		LoanID:                        5,
		Status:                        pendingStatus(),
		RescheduleFromInstallment:     intPtr(3),
		RescheduleFromDate:            models.DatePtr(2024, time.January, 15),
		RescheduleReasonCode:          &models.CodeValue{ID: 1, Name: "Client Request"},
		RescheduleReasonComment:       strPtr("Client requested change"),
		Timeline:                      nil,
		ClientName:                    strPtr("Jane Doe"),
		LoanAccountNumber:             strPtr("LN0001"),
		ClientID:                      int64Ptr(2),
		RecalculateInterest:           nil,
		ChangeSchedule:                true,
		RepayEvery:                    intPtr(2),
		RepaymentPeriodFrequencyType:  &models.EnumOption{ID: 1, Value: "Weeks"},
		RescheduleReasons:             []models.CodeValue{},
		LoanTermVariations:            []models.LoanTermVariation{},
		RepaymentFrequencyTypeOptions: []models.EnumOption{},
	}
}

func TestRescheduleRequestDetailReturnsInputsUnchanged(t *testing.T) {
	p := detailScenario()
	view := NewRescheduleRequestDetail(p)

	require.NotNil(t, view.ID())
	assert.Equal(t, int64(10), *view.ID())
	assert.Equal(t, int64(5), view.LoanID())
	assert.Same(t, p.Status, view.Status())
	assert.Equal(t, 3, *view.RescheduleFromInstallment())
	assert.True(t, view.RescheduleFromDate().Equal(models.NewDate(2024, time.January, 15)))
	assert.Equal(t, "Client Request", view.RescheduleReasonCode().Name)
	assert.Equal(t, "Client requested change", *view.RescheduleReasonComment())
	assert.Nil(t, view.Timeline())
	assert.Equal(t, "Jane Doe", *view.ClientName())
	assert.Equal(t, "LN0001", *view.LoanAccountNumber())
	assert.Equal(t, int64(2), *view.ClientID())
	assert.False(t, view.RecalculateInterest())
	assert.True(t, view.ChangeSchedule())
	assert.Equal(t, 2, *view.RepayEvery())
	assert.Equal(t, "Weeks", view.RepaymentPeriodFrequencyType().Value)
	assert.Nil(t, view.FirstDateForSemi())
	assert.Nil(t, view.SecondDateForSemi())
	assert.NotNil(t, view.RescheduleReasons())
	assert.Empty(t, view.RescheduleReasons())
	assert.NotNil(t, view.LoanTermVariations())
	assert.Empty(t, view.LoanTermVariations())
	assert.NotNil(t, view.RepaymentFrequencyTypeOptions())
	assert.Empty(t, view.RepaymentFrequencyTypeOptions())
}

func TestRescheduleRequestDetailCarriesLookups(t *testing.T) {
	timeline := &models.RescheduleRequestTimeline{
		SubmittedOnDate:     models.DatePtr(2024, time.January, 10),
		SubmittedByUsername: strPtr("mifos"),
	}
	variation := models.LoanTermVariation{
		ID:           7,
		TermType:     models.TermVariationTypeFromID(models.TermVariationInterestRate),
		DecimalValue: decimal.NewNullDecimal(decimal.RequireFromString("12.5")),
	}
	p := detailScenario()
	p.Timeline = timeline
	p.FirstDateForSemi = models.DatePtr(2024, time.February, 1)
	p.SecondDateForSemi = models.DatePtr(2024, time.February, 15)
	p.RescheduleReasons = []models.CodeValue{{ID: 1, Name: "Client Request"}, {ID: 2, Name: "Disaster"}}
	p.LoanTermVariations = []models.LoanTermVariation{variation}
	p.RepaymentFrequencyTypeOptions = models.RepaymentFrequencyTypeOptions()

	view := NewRescheduleRequestDetail(p)
	assert.Same(t, timeline, view.Timeline())
	assert.Equal(t, "2024-02-01", view.FirstDateForSemi().String())
	assert.Equal(t, "2024-02-15", view.SecondDateForSemi().String())
	assert.Equal(t, p.RescheduleReasons, view.RescheduleReasons())
	assert.Equal(t, []models.LoanTermVariation{variation}, view.LoanTermVariations())
	assert.Len(t, view.RepaymentFrequencyTypeOptions(), 3)
}

func TestRescheduleRequestDetailIsolatedFromCallerSlices(t *testing.T) {
	p := detailScenario()
	p.RescheduleReasons = []models.CodeValue{{ID: 1, Name: "Client Request"}}
	view := NewRescheduleRequestDetail(p)

	p.RescheduleReasons[0].Name = "changed"
	read := view.RescheduleReasons()
	read[0].Name = "changed again"

	assert.Equal(t, "Client Request", view.RescheduleReasons()[0].Name)
}

func TestRecalculateInterestDefaultsToFalse(t *testing.T) {
	cases := []struct {
		name string
		in   *bool
		want bool
	}{
		{name: "absent", in: nil, want: false},
		{name: "true", in: boolPtr(true), want: true},
		{name: "false", in: boolPtr(false), want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := detailScenario()
			p.RecalculateInterest = tc.in
			assert.Equal(t, tc.want, NewRescheduleRequestDetail(p).RecalculateInterest())
		})
	}
}

func TestRescheduleRequestTemplateLeavesDetailFieldsAbsent(t *testing.T) {
	view := NewRescheduleRequestTemplate(RescheduleRequestTemplateParams{
		ID:                 nil,
		LoanID:             5,
		Status:             pendingStatus(),
		ClientName:         strPtr("Jane Doe"),
		LoanAccountNumber:  strPtr("LN0001"),
		ClientID:           int64Ptr(2),
		RescheduleFromDate: models.DatePtr(2024, time.January, 15),
		ChangeSchedule:     false,
	})

	assert.Nil(t, view.ID())
	assert.Equal(t, int64(5), view.LoanID())
	assert.Equal(t, "Jane Doe", *view.ClientName())
	assert.Equal(t, "LN0001", *view.LoanAccountNumber())
	assert.Equal(t, int64(2), *view.ClientID())
	assert.Equal(t, "2024-01-15", view.RescheduleFromDate().String())
	assert.Nil(t, view.RescheduleReasonCode())
	assert.False(t, view.ChangeSchedule())
	assert.Nil(t, view.RepayEvery())
	assert.Nil(t, view.RepaymentPeriodFrequencyType())

	assert.Nil(t, view.Timeline())
	assert.Nil(t, view.RescheduleReasonComment())
	assert.Nil(t, view.RescheduleFromInstallment())
	assert.False(t, view.RecalculateInterest())
	assert.Nil(t, view.RescheduleReasons())
	assert.Nil(t, view.LoanTermVariations())
	assert.Nil(t, view.RepaymentFrequencyTypeOptions())
}

func TestRescheduleRequestTemplateCarriesScheduleChange(t *testing.T) {
	weeks := models.PeriodFrequencyTypeFromID(models.PeriodFrequencyWeeks)
	view := NewRescheduleRequestTemplate(RescheduleRequestTemplateParams{
		ID:                           int64Ptr(11),
		LoanID:                       6,
		RescheduleReasonCode:         &models.CodeValue{ID: 4, Name: "Harvest delay"},
		ChangeSchedule:               true,
		RepayEvery:                   intPtr(2),
		RepaymentPeriodFrequencyType: &weeks,
		FirstDateForSemi:             models.DatePtr(2024, time.March, 1),
		SecondDateForSemi:            models.DatePtr(2024, time.March, 16),
	})

	assert.Equal(t, int64(11), *view.ID())
	assert.Nil(t, view.Status())
	assert.True(t, view.ChangeSchedule())
	assert.Equal(t, 2, *view.RepayEvery())
	assert.Equal(t, "Weeks", view.RepaymentPeriodFrequencyType().Value)
	assert.Equal(t, "Harvest delay", view.RescheduleReasonCode().Name)
	assert.Equal(t, "2024-03-01", view.FirstDateForSemi().String())
	assert.Equal(t, "2024-03-16", view.SecondDateForSemi().String())
}

func TestRescheduleRequestViewJSONDetail(t *testing.T) {
	view := NewRescheduleRequestDetail(detailScenario())
	raw, err := json.Marshal(view)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.JSONEq(t, `10`, string(decoded["id"]))
	assert.JSONEq(t, `5`, string(decoded["loanId"]))
	assert.JSONEq(t, `"2024-01-15"`, string(decoded["rescheduleFromDate"]))
	assert.JSONEq(t, `"Client requested change"`, string(decoded["rescheduleReasonComment"]))
	assert.JSONEq(t, `true`, string(decoded["changeSchedule"]))
	assert.JSONEq(t, `[]`, string(decoded["rescheduleReasons"]))
	assert.JSONEq(t, `[]`, string(decoded["loanTermVariationsData"]))
	assert.JSONEq(t, `[]`, string(decoded["repaymentFrequencyTypeOptions"]))
	assert.Contains(t, decoded, "statusEnum")
	assert.Contains(t, decoded, "rescheduleReasonCodeValue")
	assert.NotContains(t, decoded, "recalculateInterest")
	assert.NotContains(t, decoded, "timeline")
	assert.NotContains(t, decoded, "firstDateForSemi")
}

func TestRescheduleRequestViewJSONTemplate(t *testing.T) {
	view := NewRescheduleRequestTemplate(RescheduleRequestTemplateParams{
		LoanID:            5,
		Status:            pendingStatus(),
		ClientName:        strPtr("Jane Doe"),
		LoanAccountNumber: strPtr("LN0001"),
		ClientID:          int64Ptr(2),
	})
	raw, err := json.Marshal(view)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &decoded))

	for _, key := range []string{
		"id", "rescheduleFromInstallment", "rescheduleReasonComment", "timeline", "recalculateInterest",
		"rescheduleReasons", "loanTermVariationsData", "repaymentFrequencyTypeOptions",
	} {
		assert.NotContains(t, decoded, key)
	}
	assert.JSONEq(t, `false`, string(decoded["changeSchedule"]))
	assert.JSONEq(t, `"Jane Doe"`, string(decoded["clientName"]))
	assert.JSONEq(t, `2`, string(decoded["clientId"]))
}
