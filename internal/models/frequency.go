package models

// Period frequency identifiers used for repayment intervals.
const (
	PeriodFrequencyDays   = 0
	PeriodFrequencyWeeks  = 1
	PeriodFrequencyMonths = 2
	PeriodFrequencyYears  = 3
)

// PeriodFrequencyTypeFromID resolves a repayment frequency identifier.
func PeriodFrequencyTypeFromID(id int) EnumOption {
	switch id {
	case PeriodFrequencyDays:
		return EnumOption{ID: PeriodFrequencyDays, Code: "repaymentFrequency.periodFrequencyType.days", Value: "Days"}
	case PeriodFrequencyWeeks:
		return EnumOption{ID: PeriodFrequencyWeeks, Code: "repaymentFrequency.periodFrequencyType.weeks", Value: "Weeks"}
	case PeriodFrequencyMonths:
		return EnumOption{ID: PeriodFrequencyMonths, Code: "repaymentFrequency.periodFrequencyType.months", Value: "Months"}
	case PeriodFrequencyYears:
		return EnumOption{ID: PeriodFrequencyYears, Code: "repaymentFrequency.periodFrequencyType.years", Value: "Years"}
	default:
		return EnumOption{ID: -1, Code: "repaymentFrequency.periodFrequencyType.invalid", Value: "Invalid"}
	}
}

// RepaymentFrequencyTypeOptions lists the frequencies a rescheduled loan may switch to.
func RepaymentFrequencyTypeOptions() []EnumOption {
	return []EnumOption{
		PeriodFrequencyTypeFromID(PeriodFrequencyDays),
		PeriodFrequencyTypeFromID(PeriodFrequencyWeeks),
		PeriodFrequencyTypeFromID(PeriodFrequencyMonths),
	}
}
