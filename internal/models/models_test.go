package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSONAndScan(t *testing.T) {
	d := NewDate(2024, time.January, 15)
	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-15"`, string(raw))

	var decoded Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-02-29"`), &decoded))
	assert.True(t, decoded.Equal(NewDate(2024, time.February, 29)))
	assert.Error(t, json.Unmarshal([]byte(`"15/01/2024"`), &decoded))

	var scanned Date
	require.NoError(t, scanned.Scan(time.Date(2024, time.March, 1, 23, 59, 0, 0, time.UTC)))
	assert.Equal(t, "2024-03-01", scanned.String())
	require.NoError(t, scanned.Scan([]byte("2024-03-02 00:00:00")))
	assert.Equal(t, "2024-03-02", scanned.String())
	require.NoError(t, scanned.Scan("2024-03-03T00:00:00Z"))
	assert.Equal(t, "2024-03-03", scanned.String())
	assert.Error(t, scanned.Scan(42))
}

func TestRescheduleStatusFromID(t *testing.T) {
	cases := []struct {
		id       int
		pending  bool
		approved bool
		rejected bool
	}{
		{id: RescheduleStatusPending, pending: true},
		{id: RescheduleStatusApproved, approved: true},
		{id: RescheduleStatusRejected, rejected: true},
		{id: 999},
	}
	for _, tc := range cases {
		status := RescheduleStatusFromID(tc.id)
		assert.Equal(t, tc.pending, status.PendingApproval, tc.id)
		assert.Equal(t, tc.approved, status.Approved, tc.id)
		assert.Equal(t, tc.rejected, status.Rejected, tc.id)
	}
	assert.Equal(t, int64(RescheduleStatusInvalid), RescheduleStatusFromID(999).ID)
}

func TestParseRescheduleCommand(t *testing.T) {
	cmd, ok := ParseRescheduleCommand("")
	require.True(t, ok)
	assert.Equal(t, RescheduleCommandAll, cmd)
	assert.Nil(t, cmd.StatusID())

	cmd, ok = ParseRescheduleCommand(" Approved ")
	require.True(t, ok)
	require.NotNil(t, cmd.StatusID())
	assert.Equal(t, RescheduleStatusApproved, *cmd.StatusID())

	_, ok = ParseRescheduleCommand("archived")
	assert.False(t, ok)
}

func TestLoanRescheduleRequestDerivedFields(t *testing.T) {
	months := PeriodFrequencyMonths
	name := "Client Request"
	id := int64(4)
	row := LoanRescheduleRequest{
		StatusEnum:             RescheduleStatusRejected,
		ReasonCodeValueID:      &id,
		ReasonCodeValueName:    &name,
		RepaymentFrequencyType: &months,
	}

	assert.True(t, row.Status().Rejected)
	assert.Equal(t, &CodeValue{ID: 4, Name: "Client Request", Active: true}, row.ReasonCode())
	assert.Equal(t, "Months", row.FrequencyType().Value)
	assert.False(t, row.ScheduleChanged())
	assert.Nil(t, row.Timeline().RejectedOnDate)

	row.ReasonCodeValueID = nil
	row.RepaymentFrequencyType = nil
	assert.Nil(t, row.ReasonCode())
	assert.Nil(t, row.FrequencyType())
}

func TestTermVariationLookups(t *testing.T) {
	assert.Equal(t, "loanTermType.dueDate", TermVariationTypeFromID(TermVariationDueDate).Code)
	assert.Equal(t, "loanTermType.invalid", TermVariationTypeFromID(77).Code)
	assert.Equal(t, int64(-1), PeriodFrequencyTypeFromID(9).ID)
	assert.Len(t, RepaymentFrequencyTypeOptions(), 3)
}
